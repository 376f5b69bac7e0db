package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"studyplan-backend/internal/ai"
	"studyplan-backend/internal/auth"
	"studyplan-backend/internal/config"
	"studyplan-backend/internal/db"
	"studyplan-backend/internal/reminders"
	"studyplan-backend/internal/settings"
	"studyplan-backend/internal/tasks"
)

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.ConnString())
	if err != nil {
		log.Fatal("failed to connect DB:", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatal("failed to ensure schema:", err)
	}
	log.Println("connected to PostgreSQL")

	secret := []byte(cfg.JWTSecret)
	mw := auth.New(secret)

	gemini := ai.New(cfg.GeminiKey, cfg.GeminiModel)
	taskStore := tasks.NewStore(database)
	reminderStore := reminders.NewStore(database)
	settingsStore := settings.NewStore(database)

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// ----- AUTH -----
	mux.HandleFunc("/auth/register", requireMethod(http.MethodPost, auth.RegisterHandler(database, secret)))
	mux.HandleFunc("/auth/login", requireMethod(http.MethodPost, auth.LoginHandler(database, secret)))
	mux.HandleFunc("/auth/me", requireMethod(http.MethodGet, mw.Wrap(auth.MeHandler(database))))
	mux.HandleFunc("/auth/logout", requireMethod(http.MethodPost, mw.Wrap(auth.LogoutHandler())))
	mux.HandleFunc("/auth/signin-error", requireMethod(http.MethodPost, auth.SignInErrorHandler()))

	// ----- TASKS -----
	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			mw.Wrap(tasks.GetTasksHandler(taskStore))(w, r)
		case http.MethodPost:
			mw.Wrap(tasks.SaveTaskHandler(taskStore, database))(w, r)
		case http.MethodDelete:
			mw.Wrap(tasks.DeleteTaskHandler(taskStore, database))(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/tasks/batch", requireMethod(http.MethodPost, mw.Wrap(tasks.SaveTasksBatchHandler(taskStore, database))))
	mux.HandleFunc("/tasks/status", requireMethod(http.MethodPatch, mw.Wrap(tasks.SetTaskStatusHandler(taskStore, database))))
	mux.HandleFunc("/tasks/priority", requireMethod(http.MethodPatch, mw.Wrap(tasks.SetTaskPriorityHandler(taskStore, database))))
	mux.HandleFunc("/tasks/summary", requireMethod(http.MethodGet, mw.Wrap(tasks.TaskSummaryHandler(taskStore))))

	// ----- PLAN -----
	mux.HandleFunc("/plan", requireMethod(http.MethodPost, mw.Wrap(tasks.GeneratePlanHandler(taskStore, gemini, database))))

	// ----- REMINDERS -----
	mux.HandleFunc("/reminders", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			mw.Wrap(reminders.GetRemindersHandler(reminderStore))(w, r)
		case http.MethodPost:
			mw.Wrap(reminders.CreateReminderHandler(reminderStore, database))(w, r)
		case http.MethodDelete:
			mw.Wrap(reminders.DeleteReminderHandler(reminderStore, database))(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// ----- SETTINGS -----
	mux.HandleFunc("/settings/colors", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			mw.Wrap(settings.GetColorsHandler(settingsStore))(w, r)
		case http.MethodPut:
			mw.Wrap(settings.SaveColorsHandler(settingsStore, database))(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/settings/theme", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			mw.Wrap(settings.GetThemeHandler(settingsStore))(w, r)
		case http.MethodPut:
			mw.Wrap(settings.SaveThemeHandler(settingsStore, database))(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/settings/sort", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			mw.Wrap(settings.GetSortHandler(settingsStore))(w, r)
		case http.MethodPut:
			mw.Wrap(settings.SelectSortHandler(settingsStore, database))(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	c := cors.New(corsOptions())

	handler := c.Handler(mux)

	log.Println("API server is running on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, handler))
}

func corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Platform", "X-App-Version", "X-Session-Id", "X-Device-Locale"},
		AllowCredentials: true,
	}
}

// requireMethod guards single-method routes; OPTIONS passes through
// for CORS preflight.
func requireMethod(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case method:
			h(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
