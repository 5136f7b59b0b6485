package application

import "time"

// Role classifies an identity derived from its email address.
type Role string

const (
	// RoleAdmin identifies the single configured administrator identity.
	RoleAdmin Role = "admin"
	// RoleStudent identifies authenticated users under the student email domain.
	RoleStudent Role = "student"
	// RoleMember identifies any other authenticated user.
	RoleMember Role = "member"
	// RoleGuest identifies the unauthenticated state.
	RoleGuest Role = "guest"
)

// Principal represents the identity invoking a service method.
type Principal struct {
	Email string
	Role  Role
}

// SignedIn reports whether the principal carries an authenticated identity.
func (p Principal) SignedIn() bool {
	return p.Email != ""
}

// IsAdmin reports whether the principal holds the administrator role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// ParticipationEntry records a joined program together with its scheduled date.
type ParticipationEntry struct {
	ProgramID string
	Date      time.Time
}

// UserAccount is the redacted view of a registered account. The password
// digest never leaves the credential service.
type UserAccount struct {
	Name          string
	Email         string
	StudentID     string
	Participation []ParticipationEntry
}

// AccountCredentials models the authentication attributes persisted for an account.
type AccountCredentials struct {
	Account      UserAccount
	PasswordHash string
}

// Session is the at-most-one persisted snapshot of the signed-in account.
// It is a point-in-time copy, not a live reference.
type Session struct {
	Name          string
	Email         string
	StudentID     string
	Participation []ParticipationEntry
}

// Profile is the legacy single-record mirror of the signed-in user's
// participation, kept for the presentation layer's profile view.
type Profile struct {
	Name          string
	Email         string
	StudentID     string
	Participation []ParticipationEntry
}

// Program is a catalog entry users can join.
type Program struct {
	ID           string
	Title        string
	Short        string
	Long         string
	Category     string
	Duration     string
	Participants int
}

// ProgramInput captures caller provided program fields for admin CRUD.
type ProgramInput struct {
	Title    string
	Short    string
	Long     string
	Category string
	Duration string
}

// CalendarEvent mirrors a join or booking on the calendar. ProgramID and
// UserEmail are weak references and may dangle.
type CalendarEvent struct {
	ID        string
	ProgramID string
	Title     string
	Date      time.Time
	UserEmail string
}

// ServiceOffering is a bookable service in the read-only offerings catalog.
type ServiceOffering struct {
	ID       string
	Title    string
	Provider string
	Category string
}

// Appointment is a booked service session. SessionID references a
// ServiceOffering and is not integrity-checked.
type Appointment struct {
	ID        string
	SessionID string
	Title     string
	Provider  string
	Category  string
	UserEmail string
	Date      time.Time
	Note      string
}

// AppointmentInput captures caller provided booking fields.
type AppointmentInput struct {
	ServiceID string
	Date      time.Time
	Note      string
}

// ReminderType enumerates the reminder categories offered by the calendar.
type ReminderType string

const (
	ReminderTypeResource    ReminderType = "resource"
	ReminderTypeAppointment ReminderType = "appointment"
	ReminderTypeProgram     ReminderType = "program"
	ReminderTypeOther       ReminderType = "other"
)

// ValidReminderType reports whether t is one of the fixed reminder categories.
func ValidReminderType(t ReminderType) bool {
	switch t {
	case ReminderTypeResource, ReminderTypeAppointment, ReminderTypeProgram, ReminderTypeOther:
		return true
	}
	return false
}

// Reminder is a user-managed calendar note. Date is a calendar day, not an
// instant, so it stays a plain string alongside the clock time.
type Reminder struct {
	ID        string
	Title     string
	Date      string
	Time      string
	Type      ReminderType
	UserEmail string
}

// ReminderInput captures caller provided reminder fields.
type ReminderInput struct {
	Title string
	Date  string
	Time  string
	Type  ReminderType
}

// RegisterParams wraps the data required to register an account.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// LoginParams wraps the data required to establish a session.
type LoginParams struct {
	Email    string
	Password string
}

// SignupParams wraps the data required to register and immediately sign in.
type SignupParams struct {
	Name     string
	Email    string
	Password string
}

// LoginResult captures the outcome of a successful login or signup.
type LoginResult struct {
	Session Session
	Role    Role
}

// CreateProgramParams wraps the data required to add a catalog program.
type CreateProgramParams struct {
	Principal Principal
	Input     ProgramInput
}

// UpdateProgramParams wraps the data required to edit a catalog program.
type UpdateProgramParams struct {
	Principal Principal
	ProgramID string
	Input     ProgramInput
}

// BookAppointmentParams wraps the data required to book an appointment.
type BookAppointmentParams struct {
	Principal Principal
	Input     AppointmentInput
}

// AddReminderParams wraps the data required to add a reminder.
type AddReminderParams struct {
	Principal Principal
	Input     ReminderInput
}
