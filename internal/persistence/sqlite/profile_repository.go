package sqlite

import (
	"context"
	"fmt"

	"github.com/Lekha1657/fedfproject/internal/persistence"
)

// ProfileRepository stores the legacy single-record profile mirror. When the
// document is absent or unreadable, reads fall back to the guest profile.
type ProfileRepository struct {
	store *Store
}

// NewProfileRepository creates a ProfileRepository backed by the store.
func NewProfileRepository(store *Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

// GetProfile returns the stored profile mirror, seeding the guest profile
// when absent.
func (r *ProfileRepository) GetProfile(ctx context.Context) (persistence.Profile, error) {
	var profile persistence.Profile
	found, err := r.store.loadValue(ctx, keyProfile, &profile)
	if err != nil {
		return persistence.Profile{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if !found {
		return persistence.SeedProfile(), nil
	}
	if profile.Participation == nil {
		profile.Participation = []persistence.ParticipationEntry{}
	}
	return profile, nil
}

// PutProfile replaces the stored profile mirror.
func (r *ProfileRepository) PutProfile(ctx context.Context, profile persistence.Profile) error {
	if profile.Participation == nil {
		profile.Participation = []persistence.ParticipationEntry{}
	}
	if err := r.store.storeValue(ctx, keyProfile, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
