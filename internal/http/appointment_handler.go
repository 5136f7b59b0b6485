package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Lekha1657/fedfproject/internal/application"
)

type appointmentService interface {
	Offerings() []application.ServiceOffering
	List(ctx context.Context) ([]application.Appointment, error)
	Book(ctx context.Context, params application.BookAppointmentParams) (application.Appointment, error)
	Cancel(ctx context.Context, appointmentID string) error
}

type AppointmentHandler struct {
	service   appointmentService
	responder responder
	logger    *slog.Logger
}

func NewAppointmentHandler(service appointmentService, logger *slog.Logger) *AppointmentHandler {
	base := defaultLogger(logger)
	return &AppointmentHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *AppointmentHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "AppointmentHandler", operation, attrs...)
}

// Offerings returns the fixed bookable service catalog.
func (h *AppointmentHandler) Offerings(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	offerings := h.service.Offerings()
	dtos := make([]offeringDTO, 0, len(offerings))
	for _, offering := range offerings {
		dtos = append(dtos, offeringDTO{
			ID:       offering.ID,
			Title:    offering.Title,
			Provider: offering.Provider,
			Category: offering.Category,
		})
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, dtos)
}

// List returns every booked appointment, newest first.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	appointments, err := h.service.List(r.Context())
	if err != nil {
		h.log(r.Context(), "List").ErrorContext(r.Context(), "failed to list appointments", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]appointmentDTO, 0, len(appointments))
	for _, appointment := range appointments {
		dtos = append(dtos, appointmentToDTO(appointment))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, dtos)
}

// Book reserves an offering for the signed-in identity.
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req bookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Book", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode booking request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if err := req.Validate(); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusUnprocessableEntity, err)
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusUnprocessableEntity, err)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	logger := h.log(r.Context(), "Book", "service_id", req.ServiceID, "email", principal.Email)

	appointment, err := h.service.Book(r.Context(), application.BookAppointmentParams{
		Principal: principal,
		Input: application.AppointmentInput{
			ServiceID: strings.TrimSpace(req.ServiceID),
			Date:      date,
			Note:      strings.TrimSpace(req.Note),
		},
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to book appointment", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("appointment_id", appointment.ID).InfoContext(r.Context(), "appointment booked")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, appointmentToDTO(appointment))
}

// Cancel removes an appointment and its mirrored calendar events.
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	appointmentID, ok := ResourceIDFromContext(r.Context())
	if !ok || appointmentID == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidID)
		return
	}

	logger := h.log(r.Context(), "Cancel", "appointment_id", appointmentID)

	if err := h.service.Cancel(r.Context(), appointmentID); err != nil {
		logger.ErrorContext(r.Context(), "failed to cancel appointment", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "appointment cancelled")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

type offeringDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Provider string `json:"provider"`
	Category string `json:"category"`
}

type appointmentDTO struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	Title     string `json:"title"`
	Provider  string `json:"provider"`
	Category  string `json:"category"`
	UserEmail string `json:"userEmail"`
	Date      string `json:"date"`
	Note      string `json:"note,omitempty"`
}

func appointmentToDTO(appointment application.Appointment) appointmentDTO {
	return appointmentDTO{
		ID:        appointment.ID,
		SessionID: appointment.SessionID,
		Title:     appointment.Title,
		Provider:  appointment.Provider,
		Category:  appointment.Category,
		UserEmail: appointment.UserEmail,
		Date:      appointment.Date.UTC().Format(time.RFC3339),
		Note:      appointment.Note,
	}
}
