package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Lekha1657/fedfproject/internal/application"
)

type reminderService interface {
	ListFor(ctx context.Context, principal application.Principal) ([]application.Reminder, error)
	Add(ctx context.Context, params application.AddReminderParams) (application.Reminder, error)
	Remove(ctx context.Context, reminderID string) error
}

type ReminderHandler struct {
	service   reminderService
	responder responder
	logger    *slog.Logger
}

func NewReminderHandler(service reminderService, logger *slog.Logger) *ReminderHandler {
	base := defaultLogger(logger)
	return &ReminderHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *ReminderHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "ReminderHandler", operation, attrs...)
}

// List returns the reminders owned by the current identity.
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())

	reminders, err := h.service.ListFor(r.Context(), principal)
	if err != nil {
		h.log(r.Context(), "List").ErrorContext(r.Context(), "failed to list reminders", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]reminderDTO, 0, len(reminders))
	for _, reminder := range reminders {
		dtos = append(dtos, reminderToDTO(reminder))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, dtos)
}

// Add stores a reminder owned by the current identity.
func (h *ReminderHandler) Add(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req reminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Add", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode reminder request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if err := req.Validate(); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusUnprocessableEntity, err)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	logger := h.log(r.Context(), "Add", "title", req.Title, "email", principal.Email)

	reminder, err := h.service.Add(r.Context(), application.AddReminderParams{
		Principal: principal,
		Input: application.ReminderInput{
			Title: strings.TrimSpace(req.Title),
			Date:  strings.TrimSpace(req.Date),
			Time:  strings.TrimSpace(req.Time),
			Type:  application.ReminderType(strings.TrimSpace(req.Type)),
		},
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to add reminder", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("reminder_id", reminder.ID).InfoContext(r.Context(), "reminder added")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, reminderToDTO(reminder))
}

// Remove deletes a reminder by identifier.
func (h *ReminderHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	reminderID, ok := ResourceIDFromContext(r.Context())
	if !ok || reminderID == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidID)
		return
	}

	logger := h.log(r.Context(), "Remove", "reminder_id", reminderID)

	if err := h.service.Remove(r.Context(), reminderID); err != nil {
		logger.ErrorContext(r.Context(), "failed to remove reminder", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "reminder removed")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

type reminderDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time,omitempty"`
	Type      string `json:"type"`
	UserEmail string `json:"userEmail"`
}

func reminderToDTO(reminder application.Reminder) reminderDTO {
	return reminderDTO{
		ID:        reminder.ID,
		Title:     reminder.Title,
		Date:      reminder.Date,
		Time:      reminder.Time,
		Type:      string(reminder.Type),
		UserEmail: reminder.UserEmail,
	}
}
