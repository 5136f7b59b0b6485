package application

import (
	"context"
	"fmt"
	"log/slog"
)

// CalendarService exposes the per-user calendar view. Event creation and
// removal happen as side effects of joins, leaves, bookings, and
// cancellations; this service only reads.
type CalendarService struct {
	calendar CalendarRepository
	logger   *slog.Logger
}

// NewCalendarService constructs a CalendarService with the provided dependencies.
func NewCalendarService(calendar CalendarRepository) *CalendarService {
	return NewCalendarServiceWithLogger(calendar, nil)
}

// NewCalendarServiceWithLogger constructs a CalendarService with a specified logger.
func NewCalendarServiceWithLogger(calendar CalendarRepository, logger *slog.Logger) *CalendarService {
	return &CalendarService{calendar: calendar, logger: defaultLogger(logger)}
}

// EventsFor returns the acting principal's calendar events in stored order.
// Guests see none; events created while signed out stay invisible.
func (s *CalendarService) EventsFor(ctx context.Context, principal Principal) ([]CalendarEvent, error) {
	if s == nil {
		return nil, fmt.Errorf("CalendarService is nil")
	}
	if s.calendar == nil || !principal.SignedIn() {
		return nil, nil
	}

	events, err := s.calendar.ListEvents(ctx)
	if err != nil {
		serviceLogger(ctx, s.logger, "CalendarService", "EventsFor").ErrorContext(ctx, "failed to list events", "error", err)
		return nil, err
	}

	owned := make([]CalendarEvent, 0, len(events))
	for _, e := range events {
		if e.UserEmail == principal.Email {
			owned = append(owned, e)
		}
	}
	return owned, nil
}
