package tasks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"studyplan-backend/internal/analytics"
	"studyplan-backend/internal/auth"
)

// PlanGenerator produces draft tasks for a study topic. A failed or
// malformed generation surfaces as an empty draft list, never an error.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, topic string) []Draft
}

func GetTasksHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ts, err := store.GetTasks(r.Context(), uid)
		if err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		if keyParam := r.URL.Query().Get("sort"); keyParam != "" {
			key, ok := ParseSortKey(keyParam)
			if !ok {
				http.Error(w, "invalid sort key", http.StatusBadRequest)
				return
			}
			cfg := SortConfig{Key: key, Direction: key.DefaultDirection()}
			if dir := SortDirection(r.URL.Query().Get("dir")); dir == Ascending || dir == Descending {
				cfg.Direction = dir
			}
			ts = SortTasks(ts, cfg)
		}

		if ts == nil {
			ts = []Task{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ts)
	}
}

func SaveTaskHandler(store *Store, dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var t Task
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.Status == "" {
			t.Status = StatusToDo
		}
		if err := t.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := store.SaveTask(r.Context(), uid, t); err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), dbx, env, "task_created", map[string]any{
			"task_id":  t.ID,
			"priority": t.Priority,
			"due_date": t.DueDate,
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(t)
	}
}

func SaveTasksBatchHandler(store *Store, dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var ts []Task
		if err := json.NewDecoder(r.Body).Decode(&ts); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		for i := range ts {
			if err := ts[i].Validate(); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		if err := store.SaveTasksBatch(r.Context(), uid, ts); err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ts)
	}
}

func SetTaskStatusHandler(store *Store, dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			TaskID string     `json:"task_id"`
			Status TaskStatus `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if body.TaskID == "" {
			http.Error(w, "task_id required", http.StatusBadRequest)
			return
		}
		if !body.Status.IsValid() {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}

		t, err := store.PatchTask(r.Context(), uid, body.TaskID, map[string]any{
			"status": body.Status,
		})
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), dbx, env, "task_status_changed", map[string]any{
			"task_id": t.ID,
			"status":  t.Status,
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(t)
	}
}

func SetTaskPriorityHandler(store *Store, dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			TaskID   string `json:"task_id"`
			Priority string `json:"priority"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if body.TaskID == "" {
			http.Error(w, "task_id required", http.StatusBadRequest)
			return
		}
		p, err := ParsePriority(body.Priority)
		if err != nil {
			http.Error(w, "invalid priority", http.StatusBadRequest)
			return
		}

		t, err := store.PatchTask(r.Context(), uid, body.TaskID, map[string]any{
			"priority": p,
		})
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), dbx, env, "task_priority_changed", map[string]any{
			"task_id":  t.ID,
			"priority": t.Priority,
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(t)
	}
}

func DeleteTaskHandler(store *Store, dbx *sql.DB) http.HandlerFunc {
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

		if err := store.DeleteTask(r.Context(), uid, id); err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), dbx, env, "task_deleted", map[string]any{
			"task_id": id,
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

func TaskSummaryHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ts, err := store.GetTasks(r.Context(), uid)
		if err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(CountByStatus(ts))
	}
}

// GeneratePlanHandler asks the generator for a plan, schedules the
// drafts and batch-saves them. A degraded (empty) plan returns an
// empty array, not an error.
func GeneratePlanHandler(store *Store, gen PlanGenerator, dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			Topic string `json:"topic"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		topic := strings.TrimSpace(body.Topic)
		if topic == "" {
			http.Error(w, "topic required", http.StatusBadRequest)
			return
		}

		drafts := gen.GeneratePlan(r.Context(), topic)
		created := ScheduleDrafts(drafts, time.Now())

		if len(created) > 0 {
			if err := store.SaveTasksBatch(r.Context(), uid, created); err != nil {
				http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		_ = analytics.Log(r.Context(), dbx, env, "plan_generated", map[string]any{
			"topic":      topic,
			"task_count": len(created),
		})

		if created == nil {
			created = []Task{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(created)
	}
}
