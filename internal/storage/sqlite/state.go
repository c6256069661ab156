package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/zoneline/internal/constants"
)

// GetSelection returns the persisted label, or "" when none was saved.
func (s *Store) GetSelection() (string, error) {
	v, _, err := s.get(constants.StateKeySelection)
	return v, err
}

func (s *Store) SaveSelection(label string) error {
	return s.set(constants.StateKeySelection, label)
}

// GetLoadedAt returns when a configuration was last loaded, or the zero
// time.
func (s *Store) GetLoadedAt() (time.Time, error) {
	v, ok, err := s.get(constants.StateKeyLoadedAt)
	if err != nil || !ok {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", constants.StateKeyLoadedAt, err)
	}
	return t, nil
}

func (s *Store) SaveLoadedAt(t time.Time) error {
	return s.set(constants.StateKeyLoadedAt, t.UTC().Format(time.RFC3339))
}

func (s *Store) get(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, fmt.Errorf("state database not open")
	}
	var value string
	err := s.db.QueryRow("SELECT value FROM state WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) set(key, value string) error {
	if s.db == nil {
		return fmt.Errorf("state database not open")
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO state (key, value, updated_at) VALUES (?, ?, ?)",
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
