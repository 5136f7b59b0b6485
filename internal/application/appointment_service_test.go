package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type appointmentRepoStub struct {
	appointments []Appointment
}

func (s *appointmentRepoStub) ListAppointments(_ context.Context) ([]Appointment, error) {
	return append([]Appointment{}, s.appointments...), nil
}

func (s *appointmentRepoStub) SaveAppointments(_ context.Context, appointments []Appointment) error {
	s.appointments = append([]Appointment{}, appointments...)
	return nil
}

func newAppointmentService(t *testing.T) (*AppointmentService, *appointmentRepoStub, *calendarRepoStub) {
	t.Helper()

	appointments := &appointmentRepoStub{}
	calendar := &calendarRepoStub{}
	ids := 0
	service := NewAppointmentService(appointments, calendar, NewBuiltinOfferingCatalog(), func() string {
		ids++
		return fmt.Sprintf("id-%d", ids)
	})
	return service, appointments, calendar
}

func TestAppointmentService_Book(t *testing.T) {
	t.Parallel()

	slot := time.Date(2024, time.October, 3, 14, 0, 0, 0, time.UTC)

	t.Run("requires a signed-in principal", func(t *testing.T) {
		t.Parallel()

		service, appointments, _ := newAppointmentService(t)
		_, err := service.Book(context.Background(), BookAppointmentParams{
			Principal: Principal{},
			Input:     AppointmentInput{ServiceID: "svc-counseling-1", Date: slot},
		})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
		if len(appointments.appointments) != 0 {
			t.Fatal("rejected booking must not be stored")
		}
	})

	t.Run("resolves the offering and mirrors the calendar", func(t *testing.T) {
		t.Parallel()

		service, appointments, calendar := newAppointmentService(t)
		appt, err := service.Book(context.Background(), BookAppointmentParams{
			Principal: student(),
			Input:     AppointmentInput{ServiceID: "svc-counseling-1", Date: slot, Note: " first visit "},
		})
		if err != nil {
			t.Fatalf("Book returned error: %v", err)
		}

		if appt.SessionID != "svc-counseling-1" {
			t.Fatalf("unexpected session reference: %q", appt.SessionID)
		}
		if appt.Title == "Session" || appt.Provider == "Provider" {
			t.Fatalf("known offering must resolve labels, got %+v", appt)
		}
		if appt.Note != "first visit" {
			t.Fatalf("unexpected note: %q", appt.Note)
		}

		if len(appointments.appointments) != 1 {
			t.Fatalf("expected one stored appointment, got %d", len(appointments.appointments))
		}
		if len(calendar.events) != 1 {
			t.Fatalf("expected one mirrored event, got %d", len(calendar.events))
		}
		event := calendar.events[0]
		if event.ProgramID != appt.SessionID || !event.Date.Equal(slot) || event.UserEmail != "jane@student.edu" {
			t.Fatalf("unexpected mirrored event: %+v", event)
		}
	})

	t.Run("unknown offering books with placeholder labels", func(t *testing.T) {
		t.Parallel()

		service, _, _ := newAppointmentService(t)
		appt, err := service.Book(context.Background(), BookAppointmentParams{
			Principal: student(),
			Input:     AppointmentInput{ServiceID: "svc-unknown", Date: slot},
		})
		if err != nil {
			t.Fatalf("Book returned error: %v", err)
		}
		if appt.Title != "Session" || appt.Provider != "Provider" || appt.Category != "" {
			t.Fatalf("expected placeholder labels, got %+v", appt)
		}
	})

	t.Run("newest booking lands at the head", func(t *testing.T) {
		t.Parallel()

		service, appointments, _ := newAppointmentService(t)
		for i := 0; i < 2; i++ {
			if _, err := service.Book(context.Background(), BookAppointmentParams{
				Principal: student(),
				Input:     AppointmentInput{ServiceID: "svc-fitness-1", Date: slot.Add(time.Duration(i) * time.Hour)},
			}); err != nil {
				t.Fatalf("Book %d returned error: %v", i, err)
			}
		}
		if !appointments.appointments[0].Date.After(appointments.appointments[1].Date) {
			t.Fatalf("expected newest first, got %+v", appointments.appointments)
		}
	})

	t.Run("validates service and date", func(t *testing.T) {
		t.Parallel()

		service, _, _ := newAppointmentService(t)
		_, err := service.Book(context.Background(), BookAppointmentParams{Principal: student()})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestAppointmentService_Cancel(t *testing.T) {
	t.Parallel()

	slot := time.Date(2024, time.October, 3, 14, 0, 0, 0, time.UTC)

	t.Run("removes the appointment and its mirrored events only", func(t *testing.T) {
		t.Parallel()

		service, appointments, calendar := newAppointmentService(t)

		first, err := service.Book(context.Background(), BookAppointmentParams{
			Principal: student(),
			Input:     AppointmentInput{ServiceID: "svc-counseling-1", Date: slot},
		})
		if err != nil {
			t.Fatalf("Book returned error: %v", err)
		}
		if _, err := service.Book(context.Background(), BookAppointmentParams{
			Principal: student(),
			Input:     AppointmentInput{ServiceID: "svc-nutrition-1", Date: slot.Add(time.Hour)},
		}); err != nil {
			t.Fatalf("second Book returned error: %v", err)
		}

		if err := service.Cancel(context.Background(), first.ID); err != nil {
			t.Fatalf("Cancel returned error: %v", err)
		}

		if len(appointments.appointments) != 1 {
			t.Fatalf("expected one remaining appointment, got %d", len(appointments.appointments))
		}
		if appointments.appointments[0].SessionID != "svc-nutrition-1" {
			t.Fatalf("wrong appointment survived: %+v", appointments.appointments[0])
		}
		if len(calendar.events) != 1 || calendar.events[0].ProgramID != "svc-nutrition-1" {
			t.Fatalf("expected only the other booking's event, got %+v", calendar.events)
		}
	})

	t.Run("cancelling an unknown id is ErrNotFound", func(t *testing.T) {
		t.Parallel()

		service, _, _ := newAppointmentService(t)
		if err := service.Cancel(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestBuiltinOfferingCatalog(t *testing.T) {
	t.Parallel()

	catalog := NewBuiltinOfferingCatalog()

	offerings := catalog.Offerings()
	if len(offerings) == 0 {
		t.Fatal("expected a non-empty catalog")
	}

	offering, ok := catalog.Find("svc-counseling-1")
	if !ok {
		t.Fatal("expected svc-counseling-1 to resolve")
	}
	if offering.Title == "" || offering.Provider == "" {
		t.Fatalf("incomplete offering: %+v", offering)
	}

	if _, ok := catalog.Find("svc-unknown"); ok {
		t.Fatal("unknown id must not resolve")
	}

	// Mutating the returned slice must not corrupt the catalog.
	offerings[0].Title = "mutated"
	if fresh := catalog.Offerings(); fresh[0].Title == "mutated" {
		t.Fatal("Offerings must return a copy")
	}
}
