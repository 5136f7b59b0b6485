package sqlite

import (
	"context"
	"fmt"
)

// PreferenceRepository stores presentation preferences. Dark mode defaults to
// off when nothing has been stored.
type PreferenceRepository struct {
	store *Store
}

// NewPreferenceRepository creates a PreferenceRepository backed by the store.
func NewPreferenceRepository(store *Store) *PreferenceRepository {
	return &PreferenceRepository{store: store}
}

// DarkMode reports whether the dark theme is enabled.
func (r *PreferenceRepository) DarkMode(ctx context.Context) (bool, error) {
	var enabled bool
	if _, err := r.store.loadValue(ctx, keyTheme, &enabled); err != nil {
		return false, fmt.Errorf("failed to load theme preference: %w", err)
	}
	return enabled, nil
}

// SetDarkMode stores the dark theme preference.
func (r *PreferenceRepository) SetDarkMode(ctx context.Context, enabled bool) error {
	if err := r.store.storeValue(ctx, keyTheme, enabled); err != nil {
		return fmt.Errorf("failed to save theme preference: %w", err)
	}
	return nil
}
