package application

import (
	"context"
	"fmt"
)

// PreferenceRepository persists presentation preferences.
type PreferenceRepository interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, enabled bool) error
}

// PreferenceService stores the theme preference. Light is the default.
type PreferenceService struct {
	preferences PreferenceRepository
}

// NewPreferenceService constructs a PreferenceService.
func NewPreferenceService(preferences PreferenceRepository) *PreferenceService {
	return &PreferenceService{preferences: preferences}
}

// DarkMode reports whether the dark theme is enabled.
func (s *PreferenceService) DarkMode(ctx context.Context) (bool, error) {
	if s == nil {
		return false, fmt.Errorf("PreferenceService is nil")
	}
	if s.preferences == nil {
		return false, nil
	}
	return s.preferences.DarkMode(ctx)
}

// SetDarkMode persists the theme choice.
func (s *PreferenceService) SetDarkMode(ctx context.Context, enabled bool) error {
	if s == nil {
		return fmt.Errorf("PreferenceService is nil")
	}
	if s.preferences == nil {
		return fmt.Errorf("preference repository not configured")
	}
	return s.preferences.SetDarkMode(ctx, enabled)
}
