package sqlite

import (
	"context"
	"fmt"

	"github.com/Lekha1657/fedfproject/internal/persistence"
)

// SessionRepository stores the zero-or-one current session document. Clearing
// removes the document entirely rather than writing an empty snapshot.
type SessionRepository struct {
	store *Store
}

// NewSessionRepository creates a SessionRepository backed by the store.
func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// CurrentSession returns the persisted session snapshot, if any.
func (r *SessionRepository) CurrentSession(ctx context.Context) (persistence.Session, bool, error) {
	var session persistence.Session
	found, err := r.store.loadValue(ctx, keySession, &session)
	if err != nil {
		return persistence.Session{}, false, fmt.Errorf("failed to load session: %w", err)
	}
	if !found {
		return persistence.Session{}, false, nil
	}
	return session, true, nil
}

// SaveSession replaces the persisted session snapshot.
func (r *SessionRepository) SaveSession(ctx context.Context, session persistence.Session) error {
	if err := r.store.storeValue(ctx, keySession, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// ClearSession removes the persisted session snapshot.
func (r *SessionRepository) ClearSession(ctx context.Context) error {
	if err := r.store.deleteValue(ctx, keySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
