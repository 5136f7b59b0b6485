package persistence

import "time"

// Record shapes serialized into the durable key-value store. The JSON tags
// match the documents written by the browser-era releases so an existing
// store keeps loading.

// ParticipationEntry records a joined program and its scheduled date.
type ParticipationEntry struct {
	ProgramID string    `json:"id"`
	Date      time.Time `json:"date"`
}

// UserAccount is the stored credential record, keyed by email inside the
// users document. The digest is persisted here and nowhere else.
type UserAccount struct {
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	StudentID     string               `json:"studentId"`
	Participation []ParticipationEntry `json:"participation"`
	PasswordHash  string               `json:"passwordHash"`
}

// Session is the redacted snapshot of the signed-in account.
type Session struct {
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	StudentID     string               `json:"studentId"`
	Participation []ParticipationEntry `json:"participation"`
}

// Profile is the legacy single-record mirror of the signed-in user.
type Profile struct {
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	StudentID     string               `json:"studentId"`
	Participation []ParticipationEntry `json:"participation"`
}

// Program is a catalog entry.
type Program struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Short        string `json:"short"`
	Long         string `json:"long"`
	Category     string `json:"category"`
	Duration     string `json:"duration"`
	Participants int    `json:"participants"`
}

// CalendarEvent mirrors a join or booking. ProgramID and UserEmail are weak
// references; either may dangle.
type CalendarEvent struct {
	ID        string    `json:"id"`
	ProgramID string    `json:"programId"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	UserEmail string    `json:"userEmail"`
}

// Appointment is a booked service session.
type Appointment struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Title     string    `json:"title"`
	Provider  string    `json:"provider"`
	Category  string    `json:"category"`
	UserEmail string    `json:"userEmail"`
	Date      time.Time `json:"date"`
	Note      string    `json:"note,omitempty"`
}

// Reminder is a user calendar note. Date is a calendar day string, not an
// instant.
type Reminder struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	UserEmail string `json:"userEmail"`
}
