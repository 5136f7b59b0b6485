package testfixtures

import (
	"context"
	"strings"
	"sync"

	"github.com/Lekha1657/fedfproject/internal/application"
)

// In-memory repository implementations satisfying the application layer
// interfaces. Every method is safe for concurrent use.

// MemoryAccountRepository keeps credential records keyed by lowercased email.
type MemoryAccountRepository struct {
	mu       sync.Mutex
	accounts map[string]application.AccountCredentials
}

// NewMemoryAccountRepository constructs a repository preloaded with the
// supplied records.
func NewMemoryAccountRepository(seed ...application.AccountCredentials) *MemoryAccountRepository {
	repo := &MemoryAccountRepository{accounts: map[string]application.AccountCredentials{}}
	for _, account := range seed {
		repo.accounts[strings.ToLower(account.Account.Email)] = account
	}
	return repo
}

// GetAccount retrieves the account registered under email.
func (r *MemoryAccountRepository) GetAccount(_ context.Context, email string) (application.AccountCredentials, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return application.AccountCredentials{}, application.ErrAccountNotFound
	}
	return account, nil
}

// PutAccount inserts or replaces the account stored under its email.
func (r *MemoryAccountRepository) PutAccount(_ context.Context, account application.AccountCredentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[strings.ToLower(strings.TrimSpace(account.Account.Email))] = account
	return nil
}

// Len reports the number of stored accounts.
func (r *MemoryAccountRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts)
}

// MemorySessionRepository keeps the zero-or-one current session snapshot.
type MemorySessionRepository struct {
	mu      sync.Mutex
	session application.Session
	present bool
}

// NewMemorySessionRepository constructs an empty session repository.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{}
}

// CurrentSession returns the stored snapshot, if any.
func (r *MemorySessionRepository) CurrentSession(_ context.Context) (application.Session, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session, r.present, nil
}

// SaveSession replaces the stored snapshot.
func (r *MemorySessionRepository) SaveSession(_ context.Context, session application.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = session
	r.present = true
	return nil
}

// ClearSession removes the stored snapshot.
func (r *MemorySessionRepository) ClearSession(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = application.Session{}
	r.present = false
	return nil
}

// MemoryProfileRepository keeps the single-record profile mirror. Reads
// default to the guest profile until something is stored.
type MemoryProfileRepository struct {
	mu      sync.Mutex
	profile application.Profile
	present bool
}

// NewMemoryProfileRepository constructs an empty profile repository.
func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{}
}

// Profile returns the stored mirror, or the guest profile when unset.
func (r *MemoryProfileRepository) Profile(_ context.Context) (application.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.present {
		return application.Profile{Name: "Guest Student", Participation: []application.ParticipationEntry{}}, nil
	}
	return r.profile, nil
}

// SaveProfile replaces the stored mirror.
func (r *MemoryProfileRepository) SaveProfile(_ context.Context, profile application.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = profile
	r.present = true
	return nil
}

// MemoryProgramRepository keeps the ordered program catalog.
type MemoryProgramRepository struct {
	mu       sync.Mutex
	programs []application.Program
}

// NewMemoryProgramRepository constructs a repository preloaded with the
// supplied catalog.
func NewMemoryProgramRepository(seed ...application.Program) *MemoryProgramRepository {
	return &MemoryProgramRepository{programs: append([]application.Program{}, seed...)}
}

// ListPrograms returns the stored catalog.
func (r *MemoryProgramRepository) ListPrograms(_ context.Context) ([]application.Program, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]application.Program{}, r.programs...), nil
}

// SavePrograms replaces the stored catalog.
func (r *MemoryProgramRepository) SavePrograms(_ context.Context, programs []application.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs = append([]application.Program{}, programs...)
	return nil
}

// MemoryCalendarRepository keeps the ordered calendar event collection.
type MemoryCalendarRepository struct {
	mu     sync.Mutex
	events []application.CalendarEvent
}

// NewMemoryCalendarRepository constructs a repository preloaded with the
// supplied events.
func NewMemoryCalendarRepository(seed ...application.CalendarEvent) *MemoryCalendarRepository {
	return &MemoryCalendarRepository{events: append([]application.CalendarEvent{}, seed...)}
}

// ListEvents returns the stored events.
func (r *MemoryCalendarRepository) ListEvents(_ context.Context) ([]application.CalendarEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]application.CalendarEvent{}, r.events...), nil
}

// SaveEvents replaces the stored events.
func (r *MemoryCalendarRepository) SaveEvents(_ context.Context, events []application.CalendarEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append([]application.CalendarEvent{}, events...)
	return nil
}

// MemoryAppointmentRepository keeps the ordered appointment collection.
type MemoryAppointmentRepository struct {
	mu           sync.Mutex
	appointments []application.Appointment
}

// NewMemoryAppointmentRepository constructs a repository preloaded with the
// supplied appointments.
func NewMemoryAppointmentRepository(seed ...application.Appointment) *MemoryAppointmentRepository {
	return &MemoryAppointmentRepository{appointments: append([]application.Appointment{}, seed...)}
}

// ListAppointments returns the stored appointments.
func (r *MemoryAppointmentRepository) ListAppointments(_ context.Context) ([]application.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]application.Appointment{}, r.appointments...), nil
}

// SaveAppointments replaces the stored appointments.
func (r *MemoryAppointmentRepository) SaveAppointments(_ context.Context, appointments []application.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments = append([]application.Appointment{}, appointments...)
	return nil
}

// MemoryReminderRepository keeps the ordered reminder collection.
type MemoryReminderRepository struct {
	mu        sync.Mutex
	reminders []application.Reminder
}

// NewMemoryReminderRepository constructs a repository preloaded with the
// supplied reminders.
func NewMemoryReminderRepository(seed ...application.Reminder) *MemoryReminderRepository {
	return &MemoryReminderRepository{reminders: append([]application.Reminder{}, seed...)}
}

// ListReminders returns the stored reminders.
func (r *MemoryReminderRepository) ListReminders(_ context.Context) ([]application.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]application.Reminder{}, r.reminders...), nil
}

// SaveReminders replaces the stored reminders.
func (r *MemoryReminderRepository) SaveReminders(_ context.Context, reminders []application.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reminders = append([]application.Reminder{}, reminders...)
	return nil
}

// MemoryPreferenceRepository keeps the theme preference.
type MemoryPreferenceRepository struct {
	mu       sync.Mutex
	darkMode bool
}

// NewMemoryPreferenceRepository constructs a repository with the light theme.
func NewMemoryPreferenceRepository() *MemoryPreferenceRepository {
	return &MemoryPreferenceRepository{}
}

// DarkMode reports whether the dark theme is enabled.
func (r *MemoryPreferenceRepository) DarkMode(_ context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.darkMode, nil
}

// SetDarkMode stores the dark theme preference.
func (r *MemoryPreferenceRepository) SetDarkMode(_ context.Context, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.darkMode = enabled
	return nil
}
