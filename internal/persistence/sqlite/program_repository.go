package sqlite

import (
	"context"
	"fmt"

	"github.com/Lekha1657/fedfproject/internal/persistence"
)

// ProgramRepository stores the ordered program catalog. When the document is
// absent or unreadable, reads fall back to the built-in starter catalog.
type ProgramRepository struct {
	store *Store
}

// NewProgramRepository creates a ProgramRepository backed by the store.
func NewProgramRepository(store *Store) *ProgramRepository {
	return &ProgramRepository{store: store}
}

// ListPrograms returns the stored catalog, seeding defaults when absent.
func (r *ProgramRepository) ListPrograms(ctx context.Context) ([]persistence.Program, error) {
	var programs []persistence.Program
	found, err := r.store.loadValue(ctx, keyPrograms, &programs)
	if err != nil {
		return nil, fmt.Errorf("failed to load programs: %w", err)
	}
	if !found {
		return persistence.SeedPrograms(), nil
	}
	if programs == nil {
		programs = []persistence.Program{}
	}
	return programs, nil
}

// SavePrograms replaces the stored catalog.
func (r *ProgramRepository) SavePrograms(ctx context.Context, programs []persistence.Program) error {
	if programs == nil {
		programs = []persistence.Program{}
	}
	if err := r.store.storeValue(ctx, keyPrograms, programs); err != nil {
		return fmt.Errorf("failed to save programs: %w", err)
	}
	return nil
}
