package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jonathan/resume-builder/internal/envelope"
	"github.com/jonathan/resume-builder/internal/session"
)

// SessionKey is the key the session record is stored under.
const SessionKey = "resumeBuilderData"

// DefaultInterval is the autosave period.
const DefaultInterval = 10 * time.Second

// Load restores the stored session record into s. A missing record leaves
// the session untouched; a malformed one restores whatever could be read.
func Load(ctx context.Context, store Store, s *session.Session) error {
	data, err := store.Get(ctx, SessionKey)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	doc, tpl, theme := envelope.DecodeRecord(data)
	s.Restore(doc, tpl, theme)
	return nil
}

// Save writes the current session record.
func Save(ctx context.Context, store Store, s *session.Session) error {
	_, err := save(ctx, store, s)
	return err
}

func save(ctx context.Context, store Store, s *session.Session) (uint64, error) {
	snap := s.Snapshot()
	data, err := envelope.EncodeRecord(snap.Document, snap.Template, snap.Theme)
	if err != nil {
		return 0, err
	}
	if err := store.Put(ctx, SessionKey, data); err != nil {
		return 0, fmt.Errorf("failed to save session: %w", err)
	}
	return snap.Revision, nil
}

// Autosaver saves a session periodically and once more when stopped.
// Failures are logged and retried on the next tick; they never reach the
// editing path.
type Autosaver struct {
	store    Store
	session  *session.Session
	interval time.Duration

	mu    sync.Mutex
	saved uint64
	dirty bool
}

// NewAutosaver creates an autosaver. A non-positive interval uses
// DefaultInterval.
func NewAutosaver(store Store, s *session.Session, interval time.Duration) *Autosaver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Autosaver{
		store:    store,
		session:  s,
		interval: interval,
		saved:    s.Revision(),
	}
}

// Run saves on every tick until ctx is done, then saves a final time.
func (a *Autosaver) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// the run context is already cancelled
			if err := a.SaveNow(context.Background()); err != nil {
				log.Printf("[autosave] final save failed: %v", err)
			}
			return nil
		case <-ticker.C:
			if !a.pending() {
				continue
			}
			if err := a.SaveNow(ctx); err != nil {
				log.Printf("[autosave] save failed: %v", err)
			}
		}
	}
}

// SaveNow saves the session immediately, whether or not it changed.
func (a *Autosaver) SaveNow(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	rev, err := save(ctx, a.store, a.session)
	if err != nil {
		a.dirty = true
		return err
	}
	a.saved = rev
	a.dirty = false
	return nil
}

// pending reports whether the session changed since the last successful
// save, or the last save failed.
func (a *Autosaver) pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dirty || a.session.Revision() != a.saved
}
