package reminders

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"studyplan-backend/internal/analytics"
	"studyplan-backend/internal/auth"
)

func GetRemindersHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rems, err := store.GetReminders(r.Context(), uid)
		if err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if rems == nil {
			rems = []Reminder{}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rems)
	}
}

func CreateReminderHandler(store *Store, dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			ID       string `json:"id"`
			Text     string `json:"text"`
			RemindAt string `json:"remindAt"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		if body.ID == "" {
			body.ID = uuid.NewString()
		}
		rem := Reminder{ID: body.ID, Text: strings.TrimSpace(body.Text), RemindAt: body.RemindAt}
		if err := rem.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		existing, err := store.GetReminders(r.Context(), uid)
		if err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		if err := store.SaveReminder(r.Context(), uid, rem); err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), dbx, env, "reminder_created", map[string]any{
			"reminder_id": rem.ID,
			"remind_at":   rem.RemindAt,
			"text_len":    len(rem.Text),
		})

		// respond with the full collection re-sorted around the new
		// entry, the shape the list is rendered from
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(InsertSorted(existing, rem))
	}
}

func DeleteReminderHandler(store *Store, dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id required", http.StatusBadRequest)
			return
		}

		if err := store.DeleteReminder(r.Context(), uid, id); err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), dbx, env, "reminder_deleted", map[string]any{
			"reminder_id": id,
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}
