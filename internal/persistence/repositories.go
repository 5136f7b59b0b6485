package persistence

import "context"

// Each collection is an independently persisted document: reads return the
// whole collection and writes replace it, mirroring the key-value boundary
// the store exposes.

// AccountRepository stores credential records keyed by email.
type AccountRepository interface {
	GetAccount(ctx context.Context, email string) (UserAccount, error)
	PutAccount(ctx context.Context, account UserAccount) error
}

// SessionRepository stores the zero-or-one current session snapshot.
type SessionRepository interface {
	CurrentSession(ctx context.Context) (Session, bool, error)
	SaveSession(ctx context.Context, session Session) error
	ClearSession(ctx context.Context) error
}

// ProgramRepository stores the ordered program catalog.
type ProgramRepository interface {
	ListPrograms(ctx context.Context) ([]Program, error)
	SavePrograms(ctx context.Context, programs []Program) error
}

// CalendarRepository stores the ordered calendar event collection.
type CalendarRepository interface {
	ListEvents(ctx context.Context) ([]CalendarEvent, error)
	SaveEvents(ctx context.Context, events []CalendarEvent) error
}

// AppointmentRepository stores the ordered appointment collection.
type AppointmentRepository interface {
	ListAppointments(ctx context.Context) ([]Appointment, error)
	SaveAppointments(ctx context.Context, appointments []Appointment) error
}

// ReminderRepository stores the ordered reminder collection.
type ReminderRepository interface {
	ListReminders(ctx context.Context) ([]Reminder, error)
	SaveReminders(ctx context.Context, reminders []Reminder) error
}

// ProfileRepository stores the legacy single-record profile mirror.
type ProfileRepository interface {
	GetProfile(ctx context.Context) (Profile, error)
	PutProfile(ctx context.Context, profile Profile) error
}

// PreferenceRepository stores presentation preferences.
type PreferenceRepository interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, enabled bool) error
}
