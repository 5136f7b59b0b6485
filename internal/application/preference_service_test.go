package application

import (
	"context"
	"testing"
)

type preferenceRepoStub struct {
	darkMode bool
}

func (s *preferenceRepoStub) DarkMode(_ context.Context) (bool, error) {
	return s.darkMode, nil
}

func (s *preferenceRepoStub) SetDarkMode(_ context.Context, enabled bool) error {
	s.darkMode = enabled
	return nil
}

func TestPreferenceService_DarkModeRoundTrip(t *testing.T) {
	t.Parallel()

	service := NewPreferenceService(&preferenceRepoStub{})

	enabled, err := service.DarkMode(context.Background())
	if err != nil {
		t.Fatalf("DarkMode returned error: %v", err)
	}
	if enabled {
		t.Fatal("light theme must be the default")
	}

	if err := service.SetDarkMode(context.Background(), true); err != nil {
		t.Fatalf("SetDarkMode returned error: %v", err)
	}
	enabled, err = service.DarkMode(context.Background())
	if err != nil {
		t.Fatalf("DarkMode returned error: %v", err)
	}
	if !enabled {
		t.Fatal("dark theme was not stored")
	}
}
