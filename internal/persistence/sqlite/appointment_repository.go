package sqlite

import (
	"context"
	"fmt"

	"github.com/Lekha1657/fedfproject/internal/persistence"
)

// AppointmentRepository stores the ordered appointment collection.
type AppointmentRepository struct {
	store *Store
}

// NewAppointmentRepository creates an AppointmentRepository backed by the store.
func NewAppointmentRepository(store *Store) *AppointmentRepository {
	return &AppointmentRepository{store: store}
}

// ListAppointments returns every stored appointment in stored order.
func (r *AppointmentRepository) ListAppointments(ctx context.Context) ([]persistence.Appointment, error) {
	var appointments []persistence.Appointment
	if _, err := r.store.loadValue(ctx, keyAppointments, &appointments); err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	if appointments == nil {
		appointments = []persistence.Appointment{}
	}
	return appointments, nil
}

// SaveAppointments replaces the stored appointment collection.
func (r *AppointmentRepository) SaveAppointments(ctx context.Context, appointments []persistence.Appointment) error {
	if appointments == nil {
		appointments = []persistence.Appointment{}
	}
	if err := r.store.storeValue(ctx, keyAppointments, appointments); err != nil {
		return fmt.Errorf("failed to save appointments: %w", err)
	}
	return nil
}
