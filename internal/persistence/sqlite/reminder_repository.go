package sqlite

import (
	"context"
	"fmt"

	"github.com/Lekha1657/fedfproject/internal/persistence"
)

// ReminderRepository stores the ordered reminder collection.
type ReminderRepository struct {
	store *Store
}

// NewReminderRepository creates a ReminderRepository backed by the store.
func NewReminderRepository(store *Store) *ReminderRepository {
	return &ReminderRepository{store: store}
}

// ListReminders returns every stored reminder in stored order.
func (r *ReminderRepository) ListReminders(ctx context.Context) ([]persistence.Reminder, error) {
	var reminders []persistence.Reminder
	if _, err := r.store.loadValue(ctx, keyReminders, &reminders); err != nil {
		return nil, fmt.Errorf("failed to load reminders: %w", err)
	}
	if reminders == nil {
		reminders = []persistence.Reminder{}
	}
	return reminders, nil
}

// SaveReminders replaces the stored reminder collection.
func (r *ReminderRepository) SaveReminders(ctx context.Context, reminders []persistence.Reminder) error {
	if reminders == nil {
		reminders = []persistence.Reminder{}
	}
	if err := r.store.storeValue(ctx, keyReminders, reminders); err != nil {
		return fmt.Errorf("failed to save reminders: %w", err)
	}
	return nil
}
