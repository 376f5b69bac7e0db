package tasks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrTaskNotFound reports a patch against an id the user does not own.
var ErrTaskNotFound = errors.New("task not found")

// Store persists per-user task documents. Writes through SaveTask and
// PatchTask merge at the top-key level so a partial document never
// clobbers fields it does not carry; batch writes overwrite wholesale.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetTasks(ctx context.Context, userID string) ([]Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT doc FROM task_docs WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		var t Task
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("decode task doc: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) SaveTask(ctx context.Context, userID string, t Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	doc, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return s.mergeDoc(ctx, userID, t.ID, doc)
}

// PatchTask merges the given fields into the stored document and
// returns the merged task.
func (s *Store) PatchTask(ctx context.Context, userID, id string, fields map[string]any) (Task, error) {
	doc, err := json.Marshal(fields)
	if err != nil {
		return Task{}, err
	}

	var raw []byte
	err = s.db.QueryRowContext(ctx, `
		UPDATE task_docs
		SET doc = doc || $3::jsonb, updated_at = now()
		WHERE user_id = $1 AND id = $2
		RETURNING doc
	`, userID, id, doc).Scan(&raw)
	if err == sql.ErrNoRows {
		return Task{}, fmt.Errorf("task %s: %w", id, ErrTaskNotFound)
	}
	if err != nil {
		return Task{}, fmt.Errorf("patch task: %w", err)
	}

	var t Task
	if err := json.Unmarshal(raw, &t); err != nil {
		return Task{}, fmt.Errorf("decode task doc: %w", err)
	}
	return t, nil
}

// SaveTasksBatch inserts every task in one transaction, full overwrite
// per item. Used when a generated plan lands.
func (s *Store) SaveTasksBatch(ctx context.Context, userID string, ts []Task) error {
	if len(ts) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer tx.Rollback()

	for _, t := range ts {
		if err := t.Validate(); err != nil {
			return err
		}
		doc, err := json.Marshal(t)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO task_docs (user_id, id, doc)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, id) DO UPDATE SET
				doc = EXCLUDED.doc,
				updated_at = now()
		`, userID, t.ID, doc); err != nil {
			return fmt.Errorf("batch insert task %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

// DeleteTask is idempotent: deleting an unknown id is not an error.
func (s *Store) DeleteTask(ctx context.Context, userID, id string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM task_docs WHERE user_id = $1 AND id = $2
	`, userID, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (s *Store) mergeDoc(ctx context.Context, userID, id string, doc []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO task_docs (user_id, id, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, id) DO UPDATE SET
			doc = task_docs.doc || EXCLUDED.doc,
			updated_at = now()
	`, userID, id, doc)
	if err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}
