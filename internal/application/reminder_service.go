package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// ReminderRepository persists the ordered reminder collection.
type ReminderRepository interface {
	ListReminders(ctx context.Context) ([]Reminder, error)
	SaveReminders(ctx context.Context, reminders []Reminder) error
}

// ReminderService manages user calendar reminders. Reminders are
// independent of programs and appointments; adding or removing one never
// touches another collection.
type ReminderService struct {
	reminders   ReminderRepository
	idGenerator func() string
	logger      *slog.Logger
}

// NewReminderService constructs a ReminderService with the provided dependencies.
func NewReminderService(reminders ReminderRepository, idGenerator func() string) *ReminderService {
	return NewReminderServiceWithLogger(reminders, idGenerator, nil)
}

// NewReminderServiceWithLogger constructs a ReminderService with a specified logger.
func NewReminderServiceWithLogger(reminders ReminderRepository, idGenerator func() string, logger *slog.Logger) *ReminderService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &ReminderService{reminders: reminders, idGenerator: idGenerator, logger: defaultLogger(logger)}
}

func (s *ReminderService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "ReminderService", operation, attrs...)
}

// Add prepends a reminder owned by the acting principal.
func (s *ReminderService) Add(ctx context.Context, params AddReminderParams) (reminder Reminder, err error) {
	if s == nil {
		err = fmt.Errorf("ReminderService is nil")
		return
	}
	if s.reminders == nil {
		err = fmt.Errorf("reminder repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "Add", "email", params.Principal.Email)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to add reminder", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("reminder_id", reminder.ID).InfoContext(ctx, "reminder added")
	}()

	if !params.Principal.SignedIn() {
		err = ErrUnauthorized
		return
	}

	input := params.Input
	if input.Type == "" {
		input.Type = ReminderTypeResource
	}

	vErr := validateReminderInput(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	reminder = Reminder{
		ID:        s.idGenerator(),
		Title:     strings.TrimSpace(input.Title),
		Date:      input.Date,
		Time:      input.Time,
		Type:      input.Type,
		UserEmail: params.Principal.Email,
	}

	var existing []Reminder
	existing, err = s.reminders.ListReminders(ctx)
	if err != nil {
		reminder = Reminder{}
		return
	}
	if err = s.reminders.SaveReminders(ctx, append([]Reminder{reminder}, existing...)); err != nil {
		reminder = Reminder{}
	}
	return
}

// Remove deletes a reminder by id.
func (s *ReminderService) Remove(ctx context.Context, reminderID string) error {
	if s == nil {
		return fmt.Errorf("ReminderService is nil")
	}
	if s.reminders == nil {
		return fmt.Errorf("reminder repository not configured")
	}

	logger := s.loggerWith(ctx, "Remove", "reminder_id", reminderID)

	reminders, err := s.reminders.ListReminders(ctx)
	if err != nil {
		return err
	}

	kept := make([]Reminder, 0, len(reminders))
	for _, r := range reminders {
		if r.ID == reminderID {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == len(reminders) {
		logger.ErrorContext(ctx, "reminder not found", "error_kind", ErrorKind(ErrNotFound))
		return ErrNotFound
	}

	if err := s.reminders.SaveReminders(ctx, kept); err != nil {
		logger.ErrorContext(ctx, "failed to remove reminder", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "reminder removed")
	return nil
}

// ListFor returns the acting principal's reminders in stored order. Guests
// own no reminders.
func (s *ReminderService) ListFor(ctx context.Context, principal Principal) ([]Reminder, error) {
	if s == nil {
		return nil, fmt.Errorf("ReminderService is nil")
	}
	if s.reminders == nil || !principal.SignedIn() {
		return nil, nil
	}

	reminders, err := s.reminders.ListReminders(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]Reminder, 0, len(reminders))
	for _, r := range reminders {
		if r.UserEmail == principal.Email {
			owned = append(owned, r)
		}
	}
	return owned, nil
}

func validateReminderInput(input ReminderInput) *ValidationError {
	vErr := &ValidationError{}

	if strings.TrimSpace(input.Title) == "" {
		vErr.add("title", "title is required")
	}
	if strings.TrimSpace(input.Date) == "" {
		vErr.add("date", "date is required")
	}
	if !ValidReminderType(input.Type) {
		vErr.add("type", "type is not a known reminder type")
	}

	return vErr
}
