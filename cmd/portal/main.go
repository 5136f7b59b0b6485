package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/Lekha1657/fedfproject/internal/application"
	"github.com/Lekha1657/fedfproject/internal/config"
	httptransport "github.com/Lekha1657/fedfproject/internal/http"
	"github.com/Lekha1657/fedfproject/internal/persistence"
	"github.com/Lekha1657/fedfproject/internal/persistence/sqlite"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A local .env is optional; the process environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	storage, err := sqlite.Open(cfg.SQLiteDSN, logger)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := storage.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := storage.Migrate(context.Background()); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	idGenerator := uuid.NewString
	now := time.Now

	accountRepo := newAccountRepositoryAdapter(sqlite.NewAccountRepository(storage))
	sessionRepo := newSessionRepositoryAdapter(sqlite.NewSessionRepository(storage))
	profileRepo := newProfileRepositoryAdapter(sqlite.NewProfileRepository(storage))
	programRepo := newProgramRepositoryAdapter(sqlite.NewProgramRepository(storage))
	calendarRepo := newCalendarRepositoryAdapter(sqlite.NewCalendarRepository(storage))
	appointmentRepo := newAppointmentRepositoryAdapter(sqlite.NewAppointmentRepository(storage))
	reminderRepo := newReminderRepositoryAdapter(sqlite.NewReminderRepository(storage))
	preferenceRepo := sqlite.NewPreferenceRepository(storage)

	roles := application.NewRoleResolver(cfg.AdminEmail, cfg.StudentDomain)

	credentialService := application.NewCredentialServiceWithLogger(accountRepo, now, logger)
	sessionService := application.NewSessionServiceWithLogger(credentialService, sessionRepo, profileRepo, roles, logger)
	programService := application.NewProgramServiceWithLogger(programRepo, calendarRepo, credentialService, sessionRepo, profileRepo, idGenerator, now, logger)
	appointmentService := application.NewAppointmentServiceWithLogger(appointmentRepo, calendarRepo, application.NewBuiltinOfferingCatalog(), idGenerator, logger)
	calendarService := application.NewCalendarServiceWithLogger(calendarRepo, logger)
	reminderService := application.NewReminderServiceWithLogger(reminderRepo, idGenerator, logger)
	preferenceService := application.NewPreferenceService(preferenceRepo)

	if _, err := credentialService.EnsureBootstrapAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Error("failed to ensure bootstrap administrator", "error", err)
		os.Exit(1)
	}

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Auth:         httptransport.NewAuthHandler(sessionService, logger),
		Programs:     httptransport.NewProgramHandler(programService, logger),
		Appointments: httptransport.NewAppointmentHandler(appointmentService, logger),
		Calendar:     httptransport.NewCalendarHandler(calendarService, logger),
		Reminders:    httptransport.NewReminderHandler(reminderService, logger),
		Preferences:  httptransport.NewPreferenceHandler(preferenceService, logger),
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
			httptransport.ResolvePrincipal(sessionService, logger),
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("portal API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

// ----------------------------- adapters -----------------------------
//
// The adapters translate between the application layer's domain types and
// the persistence layer's record types, and map persistence sentinels onto
// the application's.

type accountRepositoryAdapter struct {
	repo persistence.AccountRepository
}

func newAccountRepositoryAdapter(repo persistence.AccountRepository) *accountRepositoryAdapter {
	return &accountRepositoryAdapter{repo: repo}
}

func (a *accountRepositoryAdapter) GetAccount(ctx context.Context, email string) (application.AccountCredentials, error) {
	stored, err := a.repo.GetAccount(ctx, email)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return application.AccountCredentials{}, application.ErrAccountNotFound
		}
		return application.AccountCredentials{}, err
	}
	return toApplicationCredentials(stored), nil
}

func (a *accountRepositoryAdapter) PutAccount(ctx context.Context, account application.AccountCredentials) error {
	return a.repo.PutAccount(ctx, toPersistenceAccount(account))
}

type sessionRepositoryAdapter struct {
	repo persistence.SessionRepository
}

func newSessionRepositoryAdapter(repo persistence.SessionRepository) *sessionRepositoryAdapter {
	return &sessionRepositoryAdapter{repo: repo}
}

func (a *sessionRepositoryAdapter) CurrentSession(ctx context.Context) (application.Session, bool, error) {
	stored, found, err := a.repo.CurrentSession(ctx)
	if err != nil || !found {
		return application.Session{}, false, err
	}
	return application.Session{
		Name:          stored.Name,
		Email:         stored.Email,
		StudentID:     stored.StudentID,
		Participation: toApplicationParticipation(stored.Participation),
	}, true, nil
}

func (a *sessionRepositoryAdapter) SaveSession(ctx context.Context, session application.Session) error {
	return a.repo.SaveSession(ctx, persistence.Session{
		Name:          session.Name,
		Email:         session.Email,
		StudentID:     session.StudentID,
		Participation: toPersistenceParticipation(session.Participation),
	})
}

func (a *sessionRepositoryAdapter) ClearSession(ctx context.Context) error {
	return a.repo.ClearSession(ctx)
}

type profileRepositoryAdapter struct {
	repo persistence.ProfileRepository
}

func newProfileRepositoryAdapter(repo persistence.ProfileRepository) *profileRepositoryAdapter {
	return &profileRepositoryAdapter{repo: repo}
}

func (a *profileRepositoryAdapter) Profile(ctx context.Context) (application.Profile, error) {
	stored, err := a.repo.GetProfile(ctx)
	if err != nil {
		return application.Profile{}, err
	}
	return application.Profile{
		Name:          stored.Name,
		Email:         stored.Email,
		StudentID:     stored.StudentID,
		Participation: toApplicationParticipation(stored.Participation),
	}, nil
}

func (a *profileRepositoryAdapter) SaveProfile(ctx context.Context, profile application.Profile) error {
	return a.repo.PutProfile(ctx, persistence.Profile{
		Name:          profile.Name,
		Email:         profile.Email,
		StudentID:     profile.StudentID,
		Participation: toPersistenceParticipation(profile.Participation),
	})
}

type programRepositoryAdapter struct {
	repo persistence.ProgramRepository
}

func newProgramRepositoryAdapter(repo persistence.ProgramRepository) *programRepositoryAdapter {
	return &programRepositoryAdapter{repo: repo}
}

func (a *programRepositoryAdapter) ListPrograms(ctx context.Context) ([]application.Program, error) {
	stored, err := a.repo.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}
	programs := make([]application.Program, 0, len(stored))
	for _, program := range stored {
		programs = append(programs, application.Program(program))
	}
	return programs, nil
}

func (a *programRepositoryAdapter) SavePrograms(ctx context.Context, programs []application.Program) error {
	stored := make([]persistence.Program, 0, len(programs))
	for _, program := range programs {
		stored = append(stored, persistence.Program(program))
	}
	return a.repo.SavePrograms(ctx, stored)
}

type calendarRepositoryAdapter struct {
	repo persistence.CalendarRepository
}

func newCalendarRepositoryAdapter(repo persistence.CalendarRepository) *calendarRepositoryAdapter {
	return &calendarRepositoryAdapter{repo: repo}
}

func (a *calendarRepositoryAdapter) ListEvents(ctx context.Context) ([]application.CalendarEvent, error) {
	stored, err := a.repo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	events := make([]application.CalendarEvent, 0, len(stored))
	for _, event := range stored {
		events = append(events, application.CalendarEvent(event))
	}
	return events, nil
}

func (a *calendarRepositoryAdapter) SaveEvents(ctx context.Context, events []application.CalendarEvent) error {
	stored := make([]persistence.CalendarEvent, 0, len(events))
	for _, event := range events {
		stored = append(stored, persistence.CalendarEvent(event))
	}
	return a.repo.SaveEvents(ctx, stored)
}

type appointmentRepositoryAdapter struct {
	repo persistence.AppointmentRepository
}

func newAppointmentRepositoryAdapter(repo persistence.AppointmentRepository) *appointmentRepositoryAdapter {
	return &appointmentRepositoryAdapter{repo: repo}
}

func (a *appointmentRepositoryAdapter) ListAppointments(ctx context.Context) ([]application.Appointment, error) {
	stored, err := a.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	appointments := make([]application.Appointment, 0, len(stored))
	for _, appointment := range stored {
		appointments = append(appointments, application.Appointment(appointment))
	}
	return appointments, nil
}

func (a *appointmentRepositoryAdapter) SaveAppointments(ctx context.Context, appointments []application.Appointment) error {
	stored := make([]persistence.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		stored = append(stored, persistence.Appointment(appointment))
	}
	return a.repo.SaveAppointments(ctx, stored)
}

type reminderRepositoryAdapter struct {
	repo persistence.ReminderRepository
}

func newReminderRepositoryAdapter(repo persistence.ReminderRepository) *reminderRepositoryAdapter {
	return &reminderRepositoryAdapter{repo: repo}
}

func (a *reminderRepositoryAdapter) ListReminders(ctx context.Context) ([]application.Reminder, error) {
	stored, err := a.repo.ListReminders(ctx)
	if err != nil {
		return nil, err
	}
	reminders := make([]application.Reminder, 0, len(stored))
	for _, reminder := range stored {
		reminders = append(reminders, application.Reminder{
			ID:        reminder.ID,
			Title:     reminder.Title,
			Date:      reminder.Date,
			Time:      reminder.Time,
			Type:      application.ReminderType(reminder.Type),
			UserEmail: reminder.UserEmail,
		})
	}
	return reminders, nil
}

func (a *reminderRepositoryAdapter) SaveReminders(ctx context.Context, reminders []application.Reminder) error {
	stored := make([]persistence.Reminder, 0, len(reminders))
	for _, reminder := range reminders {
		stored = append(stored, persistence.Reminder{
			ID:        reminder.ID,
			Title:     reminder.Title,
			Date:      reminder.Date,
			Time:      reminder.Time,
			Type:      string(reminder.Type),
			UserEmail: reminder.UserEmail,
		})
	}
	return a.repo.SaveReminders(ctx, stored)
}

// ----------------------------- conversions -----------------------------

func toApplicationCredentials(stored persistence.UserAccount) application.AccountCredentials {
	return application.AccountCredentials{
		Account: application.UserAccount{
			Name:          stored.Name,
			Email:         stored.Email,
			StudentID:     stored.StudentID,
			Participation: toApplicationParticipation(stored.Participation),
		},
		PasswordHash: stored.PasswordHash,
	}
}

func toPersistenceAccount(account application.AccountCredentials) persistence.UserAccount {
	return persistence.UserAccount{
		Name:          account.Account.Name,
		Email:         account.Account.Email,
		StudentID:     account.Account.StudentID,
		Participation: toPersistenceParticipation(account.Account.Participation),
		PasswordHash:  account.PasswordHash,
	}
}

func toApplicationParticipation(stored []persistence.ParticipationEntry) []application.ParticipationEntry {
	entries := make([]application.ParticipationEntry, 0, len(stored))
	for _, entry := range stored {
		entries = append(entries, application.ParticipationEntry(entry))
	}
	return entries
}

func toPersistenceParticipation(entries []application.ParticipationEntry) []persistence.ParticipationEntry {
	stored := make([]persistence.ParticipationEntry, 0, len(entries))
	for _, entry := range entries {
		stored = append(stored, persistence.ParticipationEntry(entry))
	}
	return stored
}
