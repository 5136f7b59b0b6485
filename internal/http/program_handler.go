package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Lekha1657/fedfproject/internal/application"
)

type programService interface {
	List(ctx context.Context) ([]application.Program, error)
	Search(ctx context.Context, query string) ([]application.Program, error)
	Join(ctx context.Context, principal application.Principal, programID string) error
	Leave(ctx context.Context, principal application.Principal, programID string) error
	Create(ctx context.Context, params application.CreateProgramParams) (application.Program, error)
	Update(ctx context.Context, params application.UpdateProgramParams) (application.Program, error)
	Delete(ctx context.Context, principal application.Principal, programID string) error
}

type ProgramHandler struct {
	service   programService
	responder responder
	logger    *slog.Logger
}

func NewProgramHandler(service programService, logger *slog.Logger) *ProgramHandler {
	base := defaultLogger(logger)
	return &ProgramHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *ProgramHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "ProgramHandler", operation, attrs...)
}

// List returns the catalog, optionally filtered by the q query parameter.
func (h *ProgramHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))

	var (
		programs []application.Program
		err      error
	)
	if query == "" {
		programs, err = h.service.List(r.Context())
	} else {
		programs, err = h.service.Search(r.Context(), query)
	}
	if err != nil {
		h.log(r.Context(), "List").ErrorContext(r.Context(), "failed to list programs", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]programDTO, 0, len(programs))
	for _, program := range programs {
		dtos = append(dtos, programToDTO(program))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, dtos)
}

// Join records the current identity as a participant of the program.
func (h *ProgramHandler) Join(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	programID, ok := ResourceIDFromContext(r.Context())
	if !ok || programID == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidID)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	logger := h.log(r.Context(), "Join", "program_id", programID, "email", principal.Email)

	if err := h.service.Join(r.Context(), principal, programID); err != nil {
		logger.ErrorContext(r.Context(), "failed to join program", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "program joined")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Leave removes the current identity from the program participants.
func (h *ProgramHandler) Leave(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	programID, ok := ResourceIDFromContext(r.Context())
	if !ok || programID == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidID)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	logger := h.log(r.Context(), "Leave", "program_id", programID, "email", principal.Email)

	if err := h.service.Leave(r.Context(), principal, programID); err != nil {
		logger.ErrorContext(r.Context(), "failed to leave program", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "program left")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Create adds a catalog program. Administrators only.
func (h *ProgramHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req programRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode program request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if err := req.Validate(); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusUnprocessableEntity, err)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	logger := h.log(r.Context(), "Create", "title", req.Title, "email", principal.Email)

	program, err := h.service.Create(r.Context(), application.CreateProgramParams{
		Principal: principal,
		Input:     programInputFromRequest(req),
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to create program", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("program_id", program.ID).InfoContext(r.Context(), "program created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, programToDTO(program))
}

// Update edits an existing catalog program. Administrators only.
func (h *ProgramHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	programID, ok := ResourceIDFromContext(r.Context())
	if !ok || programID == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidID)
		return
	}

	var req programRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Update", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode program request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if err := req.Validate(); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusUnprocessableEntity, err)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	logger := h.log(r.Context(), "Update", "program_id", programID, "email", principal.Email)

	program, err := h.service.Update(r.Context(), application.UpdateProgramParams{
		Principal: principal,
		ProgramID: programID,
		Input:     programInputFromRequest(req),
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to update program", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "program updated")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, programToDTO(program))
}

// Delete removes a catalog program. Administrators only.
func (h *ProgramHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	programID, ok := ResourceIDFromContext(r.Context())
	if !ok || programID == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidID)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	logger := h.log(r.Context(), "Delete", "program_id", programID, "email", principal.Email)

	if err := h.service.Delete(r.Context(), principal, programID); err != nil {
		logger.ErrorContext(r.Context(), "failed to delete program", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "program deleted")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

type programDTO struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Short        string `json:"short"`
	Long         string `json:"long"`
	Category     string `json:"category"`
	Duration     string `json:"duration"`
	Participants int    `json:"participants"`
}

func programToDTO(program application.Program) programDTO {
	return programDTO{
		ID:           program.ID,
		Title:        program.Title,
		Short:        program.Short,
		Long:         program.Long,
		Category:     program.Category,
		Duration:     program.Duration,
		Participants: program.Participants,
	}
}

func programInputFromRequest(req programRequest) application.ProgramInput {
	return application.ProgramInput{
		Title:    strings.TrimSpace(req.Title),
		Short:    strings.TrimSpace(req.Short),
		Long:     strings.TrimSpace(req.Long),
		Category: strings.TrimSpace(req.Category),
		Duration: strings.TrimSpace(req.Duration),
	}
}
