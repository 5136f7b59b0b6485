package sqlite

import (
	"context"
	"fmt"

	"github.com/Lekha1657/fedfproject/internal/persistence"
)

// CalendarRepository stores the ordered calendar event collection.
type CalendarRepository struct {
	store *Store
}

// NewCalendarRepository creates a CalendarRepository backed by the store.
func NewCalendarRepository(store *Store) *CalendarRepository {
	return &CalendarRepository{store: store}
}

// ListEvents returns every stored calendar event in stored order.
func (r *CalendarRepository) ListEvents(ctx context.Context) ([]persistence.CalendarEvent, error) {
	var events []persistence.CalendarEvent
	if _, err := r.store.loadValue(ctx, keyCalendar, &events); err != nil {
		return nil, fmt.Errorf("failed to load calendar events: %w", err)
	}
	if events == nil {
		events = []persistence.CalendarEvent{}
	}
	return events, nil
}

// SaveEvents replaces the stored calendar event collection.
func (r *CalendarRepository) SaveEvents(ctx context.Context, events []persistence.CalendarEvent) error {
	if events == nil {
		events = []persistence.CalendarEvent{}
	}
	if err := r.store.storeValue(ctx, keyCalendar, events); err != nil {
		return fmt.Errorf("failed to save calendar events: %w", err)
	}
	return nil
}
