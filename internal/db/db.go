package db

import (
	"database/sql"

	_ "github.com/lib/pq"
)

func Connect(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates the tables the API needs if they are missing.
// Entity documents live in jsonb so partial saves can merge at the
// top-key level.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id           TEXT PRIMARY KEY,
			email        TEXT UNIQUE NOT NULL,
			password     TEXT NOT NULL,
			display_name TEXT,
			photo_url    TEXT,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS task_docs (
			user_id    TEXT NOT NULL,
			id         TEXT NOT NULL,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, id)
		)`,
		`CREATE TABLE IF NOT EXISTS reminder_docs (
			user_id    TEXT NOT NULL,
			id         TEXT NOT NULL,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, id)
		)`,
		`CREATE TABLE IF NOT EXISTS settings_docs (
			user_id    TEXT NOT NULL,
			name       TEXT NOT NULL,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS analytics_events (
			id         BIGSERIAL PRIMARY KEY,
			event_name TEXT NOT NULL,
			event_time TIMESTAMPTZ NOT NULL,
			user_id    TEXT NOT NULL,
			session_id TEXT,
			platform   TEXT,
			app_version TEXT,
			device_locale TEXT,
			properties JSONB
		)`,
	}

	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
