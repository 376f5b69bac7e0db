package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireMethod(t *testing.T) {
	called := false
	h := requireMethod(http.MethodPost, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	})

	tests := []struct {
		name       string
		method     string
		wantStatus int
		wantCalled bool
	}{
		{"matching method passes through", http.MethodPost, http.StatusCreated, true},
		{"preflight is accepted", http.MethodOptions, http.StatusOK, false},
		{"other method is rejected", http.MethodGet, http.StatusMethodNotAllowed, false},
		{"delete is rejected", http.MethodDelete, http.StatusMethodNotAllowed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(tt.method, "/auth/register", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestCorsAllowsClientHeaders(t *testing.T) {
	opts := corsOptions()

	for _, h := range []string{
		"Content-Type",
		"Authorization",
		"X-Platform",
		"X-App-Version",
		"X-Session-Id",
		"X-Device-Locale",
	} {
		assert.Contains(t, opts.AllowedHeaders, h)
	}
}
