package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"studyplan-backend/internal/tasks"
)

const (
	docPriorityColors = "priorityColors"
	docTheme          = "theme"
	docSortConfig     = "sortConfig"
)

// Themes persist per user across sessions; sign-out never resets them.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Store persists per-user singleton settings documents.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetPriorityColors returns the user's colors merged with defaults. On
// first access it writes the defaults so the document always exists
// afterwards.
func (s *Store) GetPriorityColors(ctx context.Context, userID string) (PriorityColors, error) {
	raw, err := s.getDoc(ctx, userID, docPriorityColors)
	if err == sql.ErrNoRows {
		defaults := DefaultPriorityColors()
		if err := s.putDoc(ctx, userID, docPriorityColors, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query colors: %w", err)
	}

	var stored PriorityColors
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("decode colors doc: %w", err)
	}
	return ResolveColors(stored), nil
}

// SavePriorityColors overwrites the whole document. Merge-with-defaults
// happens only on read.
func (s *Store) SavePriorityColors(ctx context.Context, userID string, colors PriorityColors) error {
	if err := colors.Validate(); err != nil {
		return err
	}
	return s.putDoc(ctx, userID, docPriorityColors, colors)
}

func (s *Store) GetTheme(ctx context.Context, userID string) (string, error) {
	raw, err := s.getDoc(ctx, userID, docTheme)
	if err == sql.ErrNoRows {
		return ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("query theme: %w", err)
	}

	var doc struct {
		Theme string `json:"theme"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("decode theme doc: %w", err)
	}
	if doc.Theme != ThemeDark {
		return ThemeLight, nil
	}
	return ThemeDark, nil
}

func (s *Store) SaveTheme(ctx context.Context, userID, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("invalid theme %q", theme)
	}
	return s.putDoc(ctx, userID, docTheme, map[string]string{"theme": theme})
}

// GetSortConfig returns the user's task-list sort preference, falling
// back to the default (dueDate ascending) when none is stored or the
// stored value no longer names a valid key.
func (s *Store) GetSortConfig(ctx context.Context, userID string) (tasks.SortConfig, error) {
	raw, err := s.getDoc(ctx, userID, docSortConfig)
	if err == sql.ErrNoRows {
		return tasks.DefaultSortConfig(), nil
	}
	if err != nil {
		return tasks.SortConfig{}, fmt.Errorf("query sort config: %w", err)
	}

	var cfg tasks.SortConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return tasks.SortConfig{}, fmt.Errorf("decode sort config doc: %w", err)
	}
	if _, ok := tasks.ParseSortKey(string(cfg.Key)); !ok {
		return tasks.DefaultSortConfig(), nil
	}
	if cfg.Direction != tasks.Ascending && cfg.Direction != tasks.Descending {
		cfg.Direction = cfg.Key.DefaultDirection()
	}
	return cfg, nil
}

// SelectSortKey applies the sort-control toggle policy against the
// stored preference and persists the result.
func (s *Store) SelectSortKey(ctx context.Context, userID string, key tasks.SortKey) (tasks.SortConfig, error) {
	current, err := s.GetSortConfig(ctx, userID)
	if err != nil {
		return tasks.SortConfig{}, err
	}

	next := current.Select(key)
	if err := s.putDoc(ctx, userID, docSortConfig, next); err != nil {
		return tasks.SortConfig{}, err
	}
	return next, nil
}

func (s *Store) getDoc(ctx context.Context, userID, name string) ([]byte, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT doc FROM settings_docs WHERE user_id = $1 AND name = $2
	`, userID, name).Scan(&raw)
	return raw, err
}

func (s *Store) putDoc(ctx context.Context, userID, name string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO settings_docs (user_id, name, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, name) DO UPDATE SET
			doc = EXCLUDED.doc,
			updated_at = now()
	`, userID, name, doc)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
