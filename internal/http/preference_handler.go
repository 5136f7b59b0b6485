package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Lekha1657/fedfproject/internal/application"
)

type preferenceService interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, enabled bool) error
}

type PreferenceHandler struct {
	service   preferenceService
	responder responder
	logger    *slog.Logger
}

func NewPreferenceHandler(service preferenceService, logger *slog.Logger) *PreferenceHandler {
	base := defaultLogger(logger)
	return &PreferenceHandler{service: service, responder: newResponder(base), logger: base}
}

// Theme returns the stored theme preference.
func (h *PreferenceHandler) Theme(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	enabled, err := h.service.DarkMode(r.Context())
	if err != nil {
		handlerLogger(r.Context(), h.logger, "PreferenceHandler", "Theme").ErrorContext(r.Context(), "failed to load theme preference", "error", err)
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, themeResponse{DarkMode: enabled})
}

// SetTheme stores the theme preference.
func (h *PreferenceHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlerLogger(r.Context(), h.logger, "PreferenceHandler", "SetTheme", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode theme request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	if err := h.service.SetDarkMode(r.Context(), req.DarkMode); err != nil {
		handlerLogger(r.Context(), h.logger, "PreferenceHandler", "SetTheme").ErrorContext(r.Context(), "failed to save theme preference", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, themeResponse{DarkMode: req.DarkMode})
}

type themeResponse struct {
	DarkMode bool `json:"darkMode"`
}
