package settings

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"studyplan-backend/internal/analytics"
	"studyplan-backend/internal/auth"
	"studyplan-backend/internal/tasks"
)

func GetColorsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		colors, err := store.GetPriorityColors(r.Context(), uid)
		if err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(colors)
	}
}

func SaveColorsHandler(store *Store, dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var colors PriorityColors
		if err := json.NewDecoder(r.Body).Decode(&colors); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := store.SavePriorityColors(r.Context(), uid, colors); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), dbx, env, "colors_saved", map[string]any{})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(colors)
	}
}

func GetSortHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		cfg, err := store.GetSortConfig(r.Context(), uid)
		if err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(cfg)
	}
}

// SelectSortHandler is the sort control: the client sends the key the
// user clicked and gets back the resulting config after the toggle
// policy is applied.
func SelectSortHandler(store *Store, dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			Key string `json:"key"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		key, ok := tasks.ParseSortKey(body.Key)
		if !ok {
			http.Error(w, "invalid sort key", http.StatusBadRequest)
			return
		}

		cfg, err := store.SelectSortKey(r.Context(), uid, key)
		if err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), dbx, env, "sort_changed", map[string]any{
			"key":       cfg.Key,
			"direction": cfg.Direction,
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(cfg)
	}
}

func GetThemeHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		theme, err := store.GetTheme(r.Context(), uid)
		if err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"theme": theme})
	}
}

func SaveThemeHandler(store *Store, dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			Theme string `json:"theme"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		if err := store.SaveTheme(r.Context(), uid, body.Theme); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), dbx, env, "theme_changed", map[string]any{
			"theme": body.Theme,
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"theme": body.Theme})
	}
}
