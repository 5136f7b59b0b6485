// Package testfixtures provides deterministic fixtures and in-memory
// repository implementations shared by the service and handler tests.
package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Lekha1657/fedfproject/internal/application"
)

var (
	accountCounter uint64
	programCounter uint64
)

var referenceTime = time.Date(2024, time.September, 2, 10, 30, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// ---------------------------- Account fixtures ----------------------------

// AccountFixture represents a deterministic registered account.
type AccountFixture struct {
	Name          string
	Email         string
	StudentID     string
	Participation []application.ParticipationEntry
	PasswordHash  string
}

// AccountOption configures the generated account fixture.
type AccountOption func(*AccountFixture)

// NewAccountFixture returns a deterministic account fixture with optional
// overrides. The digest matches the password "pass123" hashed with the
// production hasher unless overridden.
func NewAccountFixture(opts ...AccountOption) AccountFixture {
	idx := atomic.AddUint64(&accountCounter, 1)
	fixture := AccountFixture{
		Name:          fmt.Sprintf("Student %03d", idx),
		Email:         fmt.Sprintf("student%03d@student.edu", idx),
		StudentID:     fmt.Sprintf("S%06d", idx),
		Participation: []application.ParticipationEntry{},
		PasswordHash:  application.HashPassword("pass123"),
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithAccountName overrides the generated display name.
func WithAccountName(name string) AccountOption {
	return func(f *AccountFixture) {
		f.Name = name
	}
}

// WithAccountEmail overrides the generated email.
func WithAccountEmail(email string) AccountOption {
	return func(f *AccountFixture) {
		f.Email = email
	}
}

// WithAccountPassword stores the digest of the supplied password.
func WithAccountPassword(password string) AccountOption {
	return func(f *AccountFixture) {
		f.PasswordHash = application.HashPassword(password)
	}
}

// WithParticipation sets the participation entries on the fixture.
func WithParticipation(entries ...application.ParticipationEntry) AccountOption {
	return func(f *AccountFixture) {
		f.Participation = entries
	}
}

// Account returns the fixture as a redacted application.UserAccount.
func (f AccountFixture) Account() application.UserAccount {
	return application.UserAccount{
		Name:          f.Name,
		Email:         f.Email,
		StudentID:     f.StudentID,
		Participation: f.Participation,
	}
}

// Credentials returns the fixture as application.AccountCredentials.
func (f AccountFixture) Credentials() application.AccountCredentials {
	return application.AccountCredentials{
		Account:      f.Account(),
		PasswordHash: f.PasswordHash,
	}
}

// Session returns the redacted session snapshot for the fixture.
func (f AccountFixture) Session() application.Session {
	return application.Session{
		Name:          f.Name,
		Email:         f.Email,
		StudentID:     f.StudentID,
		Participation: f.Participation,
	}
}

// ---------------------------- Program fixtures ----------------------------

// ProgramFixture represents a deterministic catalog entry.
type ProgramFixture struct {
	ID           string
	Title        string
	Short        string
	Long         string
	Category     string
	Duration     string
	Participants int
}

// ProgramOption configures the generated program fixture.
type ProgramOption func(*ProgramFixture)

// NewProgramFixture returns a deterministic program fixture with optional
// overrides.
func NewProgramFixture(opts ...ProgramOption) ProgramFixture {
	idx := atomic.AddUint64(&programCounter, 1)
	fixture := ProgramFixture{
		ID:           fmt.Sprintf("prog-%03d", idx),
		Title:        fmt.Sprintf("Program %03d", idx),
		Short:        "Short description",
		Long:         "Longer description of the program contents.",
		Category:     "Fitness",
		Duration:     "6 weeks",
		Participants: int(idx % 50),
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithProgramID overrides the generated program ID.
func WithProgramID(id string) ProgramOption {
	return func(f *ProgramFixture) {
		f.ID = id
	}
}

// WithProgramTitle overrides the generated title.
func WithProgramTitle(title string) ProgramOption {
	return func(f *ProgramFixture) {
		f.Title = title
	}
}

// WithProgramCategory overrides the generated category.
func WithProgramCategory(category string) ProgramOption {
	return func(f *ProgramFixture) {
		f.Category = category
	}
}

// WithProgramParticipants overrides the generated participant count.
func WithProgramParticipants(count int) ProgramOption {
	return func(f *ProgramFixture) {
		f.Participants = count
	}
}

// Program returns the fixture as an application.Program.
func (f ProgramFixture) Program() application.Program {
	return application.Program{
		ID:           f.ID,
		Title:        f.Title,
		Short:        f.Short,
		Long:         f.Long,
		Category:     f.Category,
		Duration:     f.Duration,
		Participants: f.Participants,
	}
}
