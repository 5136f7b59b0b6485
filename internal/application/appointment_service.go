package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// AppointmentRepository persists the ordered appointment collection.
type AppointmentRepository interface {
	ListAppointments(ctx context.Context) ([]Appointment, error)
	SaveAppointments(ctx context.Context, appointments []Appointment) error
}

// OfferingCatalog resolves bookable services. The catalog is read-only.
type OfferingCatalog interface {
	Offerings() []ServiceOffering
	Find(id string) (ServiceOffering, bool)
}

// AppointmentService books and cancels service appointments, mirroring each
// booking onto the calendar.
type AppointmentService struct {
	appointments AppointmentRepository
	calendar     CalendarRepository
	catalog      OfferingCatalog
	idGenerator  func() string
	logger       *slog.Logger
}

// NewAppointmentService constructs an AppointmentService with the provided dependencies.
func NewAppointmentService(appointments AppointmentRepository, calendar CalendarRepository, catalog OfferingCatalog, idGenerator func() string) *AppointmentService {
	return NewAppointmentServiceWithLogger(appointments, calendar, catalog, idGenerator, nil)
}

// NewAppointmentServiceWithLogger constructs an AppointmentService with a specified logger.
func NewAppointmentServiceWithLogger(appointments AppointmentRepository, calendar CalendarRepository, catalog OfferingCatalog, idGenerator func() string, logger *slog.Logger) *AppointmentService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &AppointmentService{
		appointments: appointments,
		calendar:     calendar,
		catalog:      catalog,
		idGenerator:  idGenerator,
		logger:       defaultLogger(logger),
	}
}

func (s *AppointmentService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "AppointmentService", operation, attrs...)
}

// Offerings returns the bookable service catalog.
func (s *AppointmentService) Offerings() []ServiceOffering {
	if s == nil || s.catalog == nil {
		return nil
	}
	return s.catalog.Offerings()
}

// List returns all appointments, newest first. The presentation layer
// narrows them to the signed-in user.
func (s *AppointmentService) List(ctx context.Context) ([]Appointment, error) {
	if s == nil {
		return nil, fmt.Errorf("AppointmentService is nil")
	}
	if s.appointments == nil {
		return nil, nil
	}
	return s.appointments.ListAppointments(ctx)
}

// Book records an appointment for the signed-in principal, resolving the
// offering's title, provider, and category, and prepends a mirrored
// calendar event. The event's ProgramID carries the service reference.
func (s *AppointmentService) Book(ctx context.Context, params BookAppointmentParams) (appt Appointment, err error) {
	if s == nil {
		err = fmt.Errorf("AppointmentService is nil")
		return
	}
	if s.appointments == nil {
		err = fmt.Errorf("appointment repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "Book", "email", params.Principal.Email, "service_id", params.Input.ServiceID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to book appointment", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("appointment_id", appt.ID).InfoContext(ctx, "appointment booked")
	}()

	if !params.Principal.SignedIn() {
		err = ErrUnauthorized
		return
	}

	vErr := validateAppointmentInput(params.Input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	// The offering may be unknown; the placeholder labels mirror the
	// legacy behavior instead of rejecting the booking.
	title, provider, category := "Session", "Provider", ""
	if s.catalog != nil {
		if offering, ok := s.catalog.Find(params.Input.ServiceID); ok {
			title = offering.Title
			provider = offering.Provider
			category = offering.Category
		}
	}

	appt = Appointment{
		ID:        s.idGenerator(),
		SessionID: params.Input.ServiceID,
		Title:     title,
		Provider:  provider,
		Category:  category,
		UserEmail: params.Principal.Email,
		Date:      params.Input.Date,
		Note:      strings.TrimSpace(params.Input.Note),
	}

	var existing []Appointment
	existing, err = s.appointments.ListAppointments(ctx)
	if err != nil {
		appt = Appointment{}
		return
	}
	if err = s.appointments.SaveAppointments(ctx, append([]Appointment{appt}, existing...)); err != nil {
		appt = Appointment{}
		return
	}

	if s.calendar != nil {
		var events []CalendarEvent
		events, err = s.calendar.ListEvents(ctx)
		if err != nil {
			return
		}
		event := CalendarEvent{
			ID:        s.idGenerator(),
			ProgramID: appt.SessionID,
			Title:     appt.Title,
			Date:      appt.Date,
			UserEmail: appt.UserEmail,
		}
		err = s.calendar.SaveEvents(ctx, append([]CalendarEvent{event}, events...))
	}
	return
}

// Cancel removes the appointment and every calendar event matching its
// (service reference, date, user email) triple. The broad triple match is
// retained: duplicate events for the same slot all go.
func (s *AppointmentService) Cancel(ctx context.Context, appointmentID string) (err error) {
	if s == nil {
		return fmt.Errorf("AppointmentService is nil")
	}
	if s.appointments == nil {
		return fmt.Errorf("appointment repository not configured")
	}

	logger := s.loggerWith(ctx, "Cancel", "appointment_id", appointmentID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to cancel appointment", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "appointment cancelled")
	}()

	var appointments []Appointment
	appointments, err = s.appointments.ListAppointments(ctx)
	if err != nil {
		return
	}

	var cancelled *Appointment
	kept := make([]Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.ID == appointmentID && cancelled == nil {
			removed := a
			cancelled = &removed
			continue
		}
		kept = append(kept, a)
	}
	if cancelled == nil {
		err = ErrNotFound
		return
	}

	if err = s.appointments.SaveAppointments(ctx, kept); err != nil {
		return
	}

	if s.calendar != nil {
		var events []CalendarEvent
		events, err = s.calendar.ListEvents(ctx)
		if err != nil {
			return
		}
		remaining := make([]CalendarEvent, 0, len(events))
		for _, e := range events {
			if e.ProgramID == cancelled.SessionID && e.Date.Equal(cancelled.Date) && e.UserEmail == cancelled.UserEmail {
				continue
			}
			remaining = append(remaining, e)
		}
		err = s.calendar.SaveEvents(ctx, remaining)
	}
	return
}

func validateAppointmentInput(input AppointmentInput) *ValidationError {
	vErr := &ValidationError{}

	if strings.TrimSpace(input.ServiceID) == "" {
		vErr.add("service_id", "service is required")
	}
	if input.Date.IsZero() {
		vErr.add("date", "date is required")
	}

	return vErr
}
