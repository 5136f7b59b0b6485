package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
)

// AccountRepository captures the persistence interactions for stored credentials.
type AccountRepository interface {
	GetAccount(ctx context.Context, email string) (AccountCredentials, error)
	PutAccount(ctx context.Context, account AccountCredentials) error
}

// PasswordHasher computes the one-way digest stored for a password.
type PasswordHasher func(password string) string

// PasswordVerifier compares a stored digest with a candidate password.
type PasswordVerifier func(storedHash, password string) error

// CredentialService owns the per-email credential records: registration,
// verification, and the bootstrap administrator.
type CredentialService struct {
	accounts       AccountRepository
	hashPassword   PasswordHasher
	verifyPassword PasswordVerifier
	now            func() time.Time
	logger         *slog.Logger
}

// NewCredentialService constructs a CredentialService with the provided dependencies.
func NewCredentialService(accounts AccountRepository, now func() time.Time) *CredentialService {
	return NewCredentialServiceWithLogger(accounts, now, nil)
}

// NewCredentialServiceWithLogger constructs a CredentialService with a specified logger.
func NewCredentialServiceWithLogger(accounts AccountRepository, now func() time.Time, logger *slog.Logger) *CredentialService {
	if now == nil {
		now = time.Now
	}
	return &CredentialService{
		accounts:       accounts,
		hashPassword:   HashPassword,
		verifyPassword: VerifyPassword,
		now:            now,
		logger:         defaultLogger(logger),
	}
}

func (s *CredentialService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "CredentialService", operation, attrs...)
}

// Register creates a credential record for a new email. The returned account
// is redacted; the digest stays inside the store.
func (s *CredentialService) Register(ctx context.Context, params RegisterParams) (account UserAccount, err error) {
	if s == nil {
		err = fmt.Errorf("CredentialService is nil")
		return
	}
	if s.accounts == nil {
		err = fmt.Errorf("account repository not configured")
		return
	}

	email := normalizeEmail(params.Email)
	logger := s.loggerWith(ctx, "Register", "email", email)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "registration failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("student_id", account.StudentID).InfoContext(ctx, "account registered")
	}()

	vErr := validateRegisterParams(email, params.Password)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	if _, lookupErr := s.accounts.GetAccount(ctx, email); lookupErr == nil {
		err = ErrDuplicateAccount
		return
	} else if !errors.Is(lookupErr, ErrAccountNotFound) {
		err = lookupErr
		return
	}

	account = UserAccount{
		Name:          strings.TrimSpace(params.Name),
		Email:         email,
		StudentID:     studentIDAt(s.now()),
		Participation: []ParticipationEntry{},
	}

	record := AccountCredentials{
		Account:      account,
		PasswordHash: s.hashPassword(params.Password),
	}
	if err = s.accounts.PutAccount(ctx, record); err != nil {
		account = UserAccount{}
		return
	}

	return
}

// Verify checks a password against the stored digest for an email. It keeps
// the missing-account and wrong-password cases distinct so the presentation
// layer can surface different messages.
func (s *CredentialService) Verify(ctx context.Context, email, password string) (account UserAccount, err error) {
	if s == nil {
		err = fmt.Errorf("CredentialService is nil")
		return
	}
	if s.accounts == nil {
		err = fmt.Errorf("account repository not configured")
		return
	}

	normalized := normalizeEmail(email)
	logger := s.loggerWith(ctx, "Verify", "email", normalized)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "verification failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("student_id", account.StudentID).InfoContext(ctx, "credentials verified")
	}()

	if normalized == "" || password == "" {
		err = ErrInvalidCredentials
		return
	}

	var record AccountCredentials
	record, err = s.accounts.GetAccount(ctx, normalized)
	if err != nil {
		return
	}

	if err = s.verifyPassword(record.PasswordHash, password); err != nil {
		err = ErrInvalidCredentials
		return
	}

	account = cloneAccount(record.Account)
	return
}

// Lookup returns the redacted account for an email.
func (s *CredentialService) Lookup(ctx context.Context, email string) (UserAccount, error) {
	if s == nil {
		return UserAccount{}, fmt.Errorf("CredentialService is nil")
	}
	if s.accounts == nil {
		return UserAccount{}, fmt.Errorf("account repository not configured")
	}

	record, err := s.accounts.GetAccount(ctx, normalizeEmail(email))
	if err != nil {
		return UserAccount{}, err
	}
	return cloneAccount(record.Account), nil
}

// UpdateParticipation replaces the participation entries stored for an
// account, keeping the credential record coherent with join and leave
// operations. The updated redacted account is returned.
func (s *CredentialService) UpdateParticipation(ctx context.Context, email string, entries []ParticipationEntry) (UserAccount, error) {
	if s == nil {
		return UserAccount{}, fmt.Errorf("CredentialService is nil")
	}
	if s.accounts == nil {
		return UserAccount{}, fmt.Errorf("account repository not configured")
	}

	normalized := normalizeEmail(email)
	record, err := s.accounts.GetAccount(ctx, normalized)
	if err != nil {
		return UserAccount{}, err
	}

	record.Account.Participation = cloneParticipation(entries)
	if err := s.accounts.PutAccount(ctx, record); err != nil {
		return UserAccount{}, err
	}

	return cloneAccount(record.Account), nil
}

// EnsureBootstrapAdmin registers the administrator account when absent and
// returns the stored record unchanged when it already exists. It must run
// once at process start, before any login is attempted.
func (s *CredentialService) EnsureBootstrapAdmin(ctx context.Context, email, password string) (account UserAccount, err error) {
	if s == nil {
		err = fmt.Errorf("CredentialService is nil")
		return
	}
	if s.accounts == nil {
		err = fmt.Errorf("account repository not configured")
		return
	}

	normalized := normalizeEmail(email)
	logger := s.loggerWith(ctx, "EnsureBootstrapAdmin", "email", normalized)

	record, lookupErr := s.accounts.GetAccount(ctx, normalized)
	if lookupErr == nil {
		logger.InfoContext(ctx, "bootstrap admin already present")
		account = cloneAccount(record.Account)
		return
	}
	if !errors.Is(lookupErr, ErrAccountNotFound) {
		err = lookupErr
		return
	}

	account, err = s.Register(ctx, RegisterParams{Name: "Admin", Email: normalized, Password: password})
	if err != nil {
		return
	}
	logger.InfoContext(ctx, "bootstrap admin created")
	return
}

// studentIDAt derives the generated student identifier from the creation
// instant: "S" followed by the last six digits of the unix-millisecond
// timestamp. Unique in practice, not by construction.
func studentIDAt(t time.Time) string {
	return fmt.Sprintf("S%06d", t.UnixMilli()%1_000_000)
}

func validateRegisterParams(email, password string) *ValidationError {
	vErr := &ValidationError{}

	if email == "" {
		vErr.add("email", "email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		vErr.add("email", "email is invalid")
	}
	if password == "" {
		vErr.add("password", "password is required")
	}

	return vErr
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneAccount(account UserAccount) UserAccount {
	account.Participation = cloneParticipation(account.Participation)
	return account
}

func cloneParticipation(entries []ParticipationEntry) []ParticipationEntry {
	out := make([]ParticipationEntry, len(entries))
	copy(out, entries)
	return out
}
