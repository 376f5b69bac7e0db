package reminders

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Store persists per-user reminder documents. Reminders are saved as
// full overwrites; there is no partial-update path for them.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetReminders returns the user's reminders sorted ascending by
// remind time.
func (s *Store) GetReminders(ctx context.Context, userID string) ([]Reminder, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT doc FROM reminder_docs WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query reminders: %w", err)
	}
	defer rows.Close()

	var out []Reminder
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		var rem Reminder
		if err := json.Unmarshal(raw, &rem); err != nil {
			return nil, fmt.Errorf("decode reminder doc: %w", err)
		}
		out = append(out, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return SortByRemindAt(out), nil
}

func (s *Store) SaveReminder(ctx context.Context, userID string, r Reminder) error {
	if err := r.Validate(); err != nil {
		return err
	}
	doc, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reminder_docs (user_id, id, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, id) DO UPDATE SET
			doc = EXCLUDED.doc,
			updated_at = now()
	`, userID, r.ID, doc)
	if err != nil {
		return fmt.Errorf("save reminder: %w", err)
	}
	return nil
}

// DeleteReminder is idempotent: deleting an unknown id is not an error.
func (s *Store) DeleteReminder(ctx context.Context, userID, id string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM reminder_docs WHERE user_id = $1 AND id = $2
	`, userID, id)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}
