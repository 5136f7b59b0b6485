package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Lekha1657/fedfproject/internal/application"
)

type calendarService interface {
	EventsFor(ctx context.Context, principal application.Principal) ([]application.CalendarEvent, error)
}

type CalendarHandler struct {
	service   calendarService
	responder responder
	logger    *slog.Logger
}

func NewCalendarHandler(service calendarService, logger *slog.Logger) *CalendarHandler {
	base := defaultLogger(logger)
	return &CalendarHandler{service: service, responder: newResponder(base), logger: base}
}

// Events returns the calendar events owned by the current identity. Guests
// receive an empty list.
func (h *CalendarHandler) Events(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())

	events, err := h.service.EventsFor(r.Context(), principal)
	if err != nil {
		handlerLogger(r.Context(), h.logger, "CalendarHandler", "Events").ErrorContext(r.Context(), "failed to list events", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]calendarEventDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, calendarEventDTO{
			ID:        event.ID,
			ProgramID: event.ProgramID,
			Title:     event.Title,
			Date:      event.Date.UTC().Format(time.RFC3339),
			UserEmail: event.UserEmail,
		})
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, dtos)
}

type calendarEventDTO struct {
	ID        string `json:"id"`
	ProgramID string `json:"programId"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	UserEmail string `json:"userEmail"`
}
