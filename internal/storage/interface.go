package storage

import "time"

// Provider persists segment state between runs of the one-shot commands.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	Path() string

	// Selection
	GetSelection() (string, error)
	SaveSelection(label string) error

	// Config bookkeeping
	GetLoadedAt() (time.Time, error)
	SaveLoadedAt(time.Time) error
}
