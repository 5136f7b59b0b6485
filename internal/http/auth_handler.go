package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Lekha1657/fedfproject/internal/application"
)

type sessionService interface {
	Login(ctx context.Context, params application.LoginParams) (application.LoginResult, error)
	Signup(ctx context.Context, params application.SignupParams) (application.LoginResult, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (application.Session, bool, error)
	RoleFor(email string) application.Role
}

type AuthHandler struct {
	service   sessionService
	responder responder
	logger    *slog.Logger
}

func NewAuthHandler(service sessionService, logger *slog.Logger) *AuthHandler {
	base := defaultLogger(logger)
	return &AuthHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *AuthHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "AuthHandler", operation, attrs...)
}

// Login establishes the persisted session from email and password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Login", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode login request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if err := req.Validate(); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusUnprocessableEntity, err)
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	logger := h.log(r.Context(), "Login", "email", email)

	result, err := h.service.Login(r.Context(), application.LoginParams{
		Email:    email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) || errors.Is(err, application.ErrAccountNotFound) {
			logger.ErrorContext(r.Context(), "login rejected", "error", err, "error_kind", application.ErrorKind(err))
		} else {
			logger.ErrorContext(r.Context(), "login failed", "error", err, "error_kind", application.ErrorKind(err))
		}
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("student_id", result.Session.StudentID).InfoContext(r.Context(), "user signed in")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, loginResponse{
		Session: sessionToDTO(result.Session),
		Role:    string(result.Role),
	})
}

// Signup registers a new account and signs it in.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Signup", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode signup request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if err := req.Validate(); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusUnprocessableEntity, err)
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	logger := h.log(r.Context(), "Signup", "email", email)

	result, err := h.service.Signup(r.Context(), application.SignupParams{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: req.Password,
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "signup failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("student_id", result.Session.StudentID).InfoContext(r.Context(), "account registered")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, loginResponse{
		Session: sessionToDTO(result.Session),
		Role:    string(result.Role),
	})
}

// Logout clears the persisted session. Profile and participation data stay.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "Logout")
	if err := h.service.Logout(r.Context()); err != nil {
		logger.ErrorContext(r.Context(), "failed to sign out", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "session cleared")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Current returns the persisted session snapshot and the derived role.
func (h *AuthHandler) Current(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	session, ok, err := h.service.Current(r.Context())
	if err != nil {
		h.log(r.Context(), "Current").ErrorContext(r.Context(), "failed to load session", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	if !ok {
		h.responder.writeJSON(r.Context(), w, http.StatusOK, currentSessionResponse{Role: string(application.RoleGuest)})
		return
	}

	dto := sessionToDTO(session)
	h.responder.writeJSON(r.Context(), w, http.StatusOK, currentSessionResponse{
		Session: &dto,
		Role:    string(h.service.RoleFor(session.Email)),
	})
}

type participationDTO struct {
	ProgramID string `json:"id"`
	Date      string `json:"date"`
}

type sessionDTO struct {
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	StudentID     string             `json:"studentId"`
	Participation []participationDTO `json:"participation"`
}

type loginResponse struct {
	Session sessionDTO `json:"session"`
	Role    string     `json:"role"`
}

type currentSessionResponse struct {
	Session *sessionDTO `json:"session,omitempty"`
	Role    string      `json:"role"`
}

func sessionToDTO(session application.Session) sessionDTO {
	dto := sessionDTO{
		Name:          session.Name,
		Email:         session.Email,
		StudentID:     session.StudentID,
		Participation: make([]participationDTO, 0, len(session.Participation)),
	}
	for _, entry := range session.Participation {
		dto.Participation = append(dto.Participation, participationDTO{
			ProgramID: entry.ProgramID,
			Date:      entry.Date.UTC().Format(time.RFC3339),
		})
	}
	return dto
}
