package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ProgramRepository persists the ordered program catalog as a whole, the
// way the durable store keys it.
type ProgramRepository interface {
	ListPrograms(ctx context.Context) ([]Program, error)
	SavePrograms(ctx context.Context, programs []Program) error
}

// CalendarRepository persists the ordered calendar event collection.
type CalendarRepository interface {
	ListEvents(ctx context.Context) ([]CalendarEvent, error)
	SaveEvents(ctx context.Context, events []CalendarEvent) error
}

// ParticipantDirectory exposes the account operations join and leave need
// to keep stored participation coherent.
type ParticipantDirectory interface {
	Lookup(ctx context.Context, email string) (UserAccount, error)
	UpdateParticipation(ctx context.Context, email string, entries []ParticipationEntry) (UserAccount, error)
}

// joinLeadTime is the fixed scheduling placeholder for joined programs: the
// mirrored calendar entry lands one week out, not on a user-chosen date.
const joinLeadTime = 7 * 24 * time.Hour

// ProgramService orchestrates the program catalog: browsing, membership,
// and administrator CRUD.
type ProgramService struct {
	programs    ProgramRepository
	calendar    CalendarRepository
	directory   ParticipantDirectory
	state       SessionStateRepository
	mirror      ProfileMirrorRepository
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewProgramService constructs a ProgramService with the provided dependencies.
func NewProgramService(programs ProgramRepository, calendar CalendarRepository, directory ParticipantDirectory, state SessionStateRepository, mirror ProfileMirrorRepository, idGenerator func() string, now func() time.Time) *ProgramService {
	return NewProgramServiceWithLogger(programs, calendar, directory, state, mirror, idGenerator, now, nil)
}

// NewProgramServiceWithLogger constructs a ProgramService with a specified logger.
func NewProgramServiceWithLogger(programs ProgramRepository, calendar CalendarRepository, directory ParticipantDirectory, state SessionStateRepository, mirror ProfileMirrorRepository, idGenerator func() string, now func() time.Time, logger *slog.Logger) *ProgramService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &ProgramService{
		programs:    programs,
		calendar:    calendar,
		directory:   directory,
		state:       state,
		mirror:      mirror,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

func (s *ProgramService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "ProgramService", operation, attrs...)
}

// List returns the catalog in stored order.
func (s *ProgramService) List(ctx context.Context) ([]Program, error) {
	if s == nil {
		return nil, fmt.Errorf("ProgramService is nil")
	}
	if s.programs == nil {
		return nil, nil
	}
	return s.programs.ListPrograms(ctx)
}

// Search filters the catalog by a case-insensitive substring match on title
// or category. A blank query returns the full catalog.
func (s *ProgramService) Search(ctx context.Context, query string) ([]Program, error) {
	programs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return programs, nil
	}

	matched := make([]Program, 0, len(programs))
	for _, p := range programs {
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Category), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Join increments the program's participant counter, records participation
// for the acting identity, and mirrors the join on the calendar.
//
// Joining twice double-counts; membership is not deduplicated. A join on an
// unknown program id leaves the catalog untouched but still records the
// participation entry and a placeholder calendar event, so weak references
// can dangle from birth.
func (s *ProgramService) Join(ctx context.Context, principal Principal, programID string) (err error) {
	if s == nil {
		return fmt.Errorf("ProgramService is nil")
	}

	logger := s.loggerWith(ctx, "Join", "program_id", programID, "email", principal.Email)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to join program", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "program joined")
	}()

	title := "Program"
	if s.programs != nil {
		var programs []Program
		programs, err = s.programs.ListPrograms(ctx)
		if err != nil {
			return
		}
		for i := range programs {
			if programs[i].ID == programID {
				programs[i].Participants++
				title = programs[i].Title
				if err = s.programs.SavePrograms(ctx, programs); err != nil {
					return
				}
				break
			}
		}
	}

	entry := ParticipationEntry{ProgramID: programID, Date: s.now().Add(joinLeadTime)}

	if principal.SignedIn() && s.directory != nil {
		var account UserAccount
		account, err = s.directory.Lookup(ctx, principal.Email)
		if err != nil {
			return
		}
		account, err = s.directory.UpdateParticipation(ctx, principal.Email, append(account.Participation, entry))
		if err != nil {
			return
		}
		if err = s.refreshSession(ctx, account); err != nil {
			return
		}
	}

	if err = s.appendMirrorEntry(ctx, entry); err != nil {
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
			ProgramID: programID,
			Title:     title,
			Date:      entry.Date,
			UserEmail: principal.Email,
		}
		err = s.calendar.SaveEvents(ctx, append([]CalendarEvent{event}, events...))
	}
	return
}

// Leave decrements the participant counter with a floor of zero, removes
// every matching participation entry, and removes the mirrored calendar
// events. When nobody is signed in the event match falls back to program id
// alone, as the legacy behavior did.
func (s *ProgramService) Leave(ctx context.Context, principal Principal, programID string) (err error) {
	if s == nil {
		return fmt.Errorf("ProgramService is nil")
	}

	logger := s.loggerWith(ctx, "Leave", "program_id", programID, "email", principal.Email)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to leave program", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "program left")
	}()

	if s.programs != nil {
		var programs []Program
		programs, err = s.programs.ListPrograms(ctx)
		if err != nil {
			return
		}
		for i := range programs {
			if programs[i].ID == programID {
				if programs[i].Participants > 0 {
					programs[i].Participants--
				}
				if err = s.programs.SavePrograms(ctx, programs); err != nil {
					return
				}
				break
			}
		}
	}

	if principal.SignedIn() && s.directory != nil {
		var account UserAccount
		account, err = s.directory.Lookup(ctx, principal.Email)
		if err != nil {
			return
		}
		account, err = s.directory.UpdateParticipation(ctx, principal.Email, withoutProgram(account.Participation, programID))
		if err != nil {
			return
		}
		if err = s.refreshSession(ctx, account); err != nil {
			return
		}
	}

	if err = s.dropMirrorEntries(ctx, programID); err != nil {
		return
	}

	if s.calendar != nil {
		var events []CalendarEvent
		events, err = s.calendar.ListEvents(ctx)
		if err != nil {
			return
		}
		kept := make([]CalendarEvent, 0, len(events))
		for _, e := range events {
			if e.ProgramID == programID && (!principal.SignedIn() || e.UserEmail == principal.Email) {
				continue
			}
			kept = append(kept, e)
		}
		err = s.calendar.SaveEvents(ctx, kept)
	}
	return
}

// Create adds a program to the catalog head with a fresh id and a zero
// participant count. Administrators only.
func (s *ProgramService) Create(ctx context.Context, params CreateProgramParams) (program Program, err error) {
	if s == nil {
		err = fmt.Errorf("ProgramService is nil")
		return
	}

	logger := s.loggerWith(ctx, "Create", "email", params.Principal.Email)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create program", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("program_id", program.ID).InfoContext(ctx, "program created")
	}()

	if !params.Principal.IsAdmin() {
		err = ErrUnauthorized
		return
	}

	vErr := validateProgramInput(params.Input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	program = Program{
		ID:       s.idGenerator(),
		Title:    strings.TrimSpace(params.Input.Title),
		Short:    strings.TrimSpace(params.Input.Short),
		Long:     strings.TrimSpace(params.Input.Long),
		Category: strings.TrimSpace(params.Input.Category),
		Duration: strings.TrimSpace(params.Input.Duration),
	}

	if s.programs == nil {
		return
	}

	var programs []Program
	programs, err = s.programs.ListPrograms(ctx)
	if err != nil {
		program = Program{}
		return
	}
	if err = s.programs.SavePrograms(ctx, append([]Program{program}, programs...)); err != nil {
		program = Program{}
		return
	}
	return
}

// Update merges the supplied fields over an existing program. The
// participant counter is never edited this way.
func (s *ProgramService) Update(ctx context.Context, params UpdateProgramParams) (program Program, err error) {
	if s == nil {
		err = fmt.Errorf("ProgramService is nil")
		return
	}
	if s.programs == nil {
		err = fmt.Errorf("program repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "Update", "email", params.Principal.Email, "program_id", params.ProgramID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to update program", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "program updated")
	}()

	if !params.Principal.IsAdmin() {
		err = ErrUnauthorized
		return
	}

	vErr := validateProgramInput(params.Input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	var programs []Program
	programs, err = s.programs.ListPrograms(ctx)
	if err != nil {
		return
	}

	for i := range programs {
		if programs[i].ID != params.ProgramID {
			continue
		}
		programs[i].Title = strings.TrimSpace(params.Input.Title)
		programs[i].Short = strings.TrimSpace(params.Input.Short)
		programs[i].Long = strings.TrimSpace(params.Input.Long)
		programs[i].Category = strings.TrimSpace(params.Input.Category)
		programs[i].Duration = strings.TrimSpace(params.Input.Duration)
		if err = s.programs.SavePrograms(ctx, programs); err != nil {
			return
		}
		program = programs[i]
		return
	}

	err = ErrNotFound
	return
}

// Delete removes the program record only. Participation entries and
// calendar events referencing the id are left dangling; cascading cleanup
// would change observable state shape.
func (s *ProgramService) Delete(ctx context.Context, principal Principal, programID string) error {
	if s == nil {
		return fmt.Errorf("ProgramService is nil")
	}
	if s.programs == nil {
		return fmt.Errorf("program repository not configured")
	}
	if !principal.IsAdmin() {
		return ErrUnauthorized
	}

	logger := s.loggerWith(ctx, "Delete", "email", principal.Email, "program_id", programID)

	programs, err := s.programs.ListPrograms(ctx)
	if err != nil {
		return err
	}

	kept := make([]Program, 0, len(programs))
	for _, p := range programs {
		if p.ID == programID {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == len(programs) {
		logger.ErrorContext(ctx, "program not found", "error_kind", ErrorKind(ErrNotFound))
		return ErrNotFound
	}

	if err := s.programs.SavePrograms(ctx, kept); err != nil {
		logger.ErrorContext(ctx, "failed to delete program", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "program deleted")
	return nil
}

func (s *ProgramService) refreshSession(ctx context.Context, account UserAccount) error {
	if s.state == nil {
		return nil
	}
	session, ok, err := s.state.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if !ok || session.Email != account.Email {
		return nil
	}
	return s.state.SaveSession(ctx, sessionSnapshot(account))
}

func (s *ProgramService) appendMirrorEntry(ctx context.Context, entry ParticipationEntry) error {
	if s.mirror == nil {
		return nil
	}
	profile, err := s.mirror.Profile(ctx)
	if err != nil {
		return err
	}
	profile.Participation = append(profile.Participation, entry)
	return s.mirror.SaveProfile(ctx, profile)
}

func (s *ProgramService) dropMirrorEntries(ctx context.Context, programID string) error {
	if s.mirror == nil {
		return nil
	}
	profile, err := s.mirror.Profile(ctx)
	if err != nil {
		return err
	}
	profile.Participation = withoutProgram(profile.Participation, programID)
	return s.mirror.SaveProfile(ctx, profile)
}

func withoutProgram(entries []ParticipationEntry, programID string) []ParticipationEntry {
	kept := make([]ParticipationEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ProgramID == programID {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

func validateProgramInput(input ProgramInput) *ValidationError {
	vErr := &ValidationError{}

	if strings.TrimSpace(input.Title) == "" {
		vErr.add("title", "title is required")
	}
	if strings.TrimSpace(input.Short) == "" {
		vErr.add("short", "short description is required")
	}
	if strings.TrimSpace(input.Long) == "" {
		vErr.add("long", "long description is required")
	}

	return vErr
}
