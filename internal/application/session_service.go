package application

import (
	"context"
	"fmt"
	"log/slog"
)

// CredentialGateway captures the credential operations the session manager
// delegates to.
type CredentialGateway interface {
	Register(ctx context.Context, params RegisterParams) (UserAccount, error)
	Verify(ctx context.Context, email, password string) (UserAccount, error)
}

// SessionStateRepository persists the zero-or-one current session snapshot.
type SessionStateRepository interface {
	CurrentSession(ctx context.Context) (Session, bool, error)
	SaveSession(ctx context.Context, session Session) error
	ClearSession(ctx context.Context) error
}

// ProfileMirrorRepository persists the legacy single-record profile view.
type ProfileMirrorRepository interface {
	Profile(ctx context.Context) (Profile, error)
	SaveProfile(ctx context.Context, profile Profile) error
}

// SessionService tracks the single signed-in identity and keeps the profile
// mirror in step with it.
type SessionService struct {
	credentials CredentialGateway
	state       SessionStateRepository
	mirror      ProfileMirrorRepository
	roles       *RoleResolver
	logger      *slog.Logger
}

// NewSessionService constructs a SessionService with the provided dependencies.
func NewSessionService(credentials CredentialGateway, state SessionStateRepository, mirror ProfileMirrorRepository, roles *RoleResolver) *SessionService {
	return NewSessionServiceWithLogger(credentials, state, mirror, roles, nil)
}

// NewSessionServiceWithLogger constructs a SessionService with a specified logger.
func NewSessionServiceWithLogger(credentials CredentialGateway, state SessionStateRepository, mirror ProfileMirrorRepository, roles *RoleResolver, logger *slog.Logger) *SessionService {
	if roles == nil {
		roles = NewRoleResolver("", "")
	}
	return &SessionService{
		credentials: credentials,
		state:       state,
		mirror:      mirror,
		roles:       roles,
		logger:      defaultLogger(logger),
	}
}

func (s *SessionService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "SessionService", operation, attrs...)
}

// Login verifies credentials and establishes the session snapshot. The
// credential store's error is returned unchanged for display.
func (s *SessionService) Login(ctx context.Context, params LoginParams) (result LoginResult, err error) {
	if s == nil {
		err = fmt.Errorf("SessionService is nil")
		return
	}
	if s.credentials == nil {
		err = fmt.Errorf("credential gateway not configured")
		return
	}

	email := normalizeEmail(params.Email)
	logger := s.loggerWith(ctx, "Login", "email", email)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "login failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("role", result.Role).InfoContext(ctx, "login succeeded")
	}()

	var account UserAccount
	account, err = s.credentials.Verify(ctx, email, params.Password)
	if err != nil {
		return
	}

	session := sessionSnapshot(account)
	if err = s.saveSession(ctx, session); err != nil {
		return
	}
	if err = s.syncMirror(ctx, account); err != nil {
		return
	}

	result = LoginResult{Session: session, Role: s.roles.Resolve(account.Email)}
	return
}

// Signup registers a new account and immediately establishes its session;
// there is no separate login step.
func (s *SessionService) Signup(ctx context.Context, params SignupParams) (result LoginResult, err error) {
	if s == nil {
		err = fmt.Errorf("SessionService is nil")
		return
	}
	if s.credentials == nil {
		err = fmt.Errorf("credential gateway not configured")
		return
	}

	email := normalizeEmail(params.Email)
	logger := s.loggerWith(ctx, "Signup", "email", email)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "signup failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("role", result.Role).InfoContext(ctx, "signup succeeded")
	}()

	var account UserAccount
	account, err = s.credentials.Register(ctx, RegisterParams{Name: params.Name, Email: email, Password: params.Password})
	if err != nil {
		return
	}

	session := sessionSnapshot(account)
	if err = s.saveSession(ctx, session); err != nil {
		return
	}

	// A fresh signup resets the mirror outright rather than merging.
	if s.mirror != nil {
		if err = s.mirror.SaveProfile(ctx, Profile{
			Name:          account.Name,
			Email:         account.Email,
			StudentID:     account.StudentID,
			Participation: []ParticipationEntry{},
		}); err != nil {
			return
		}
	}

	result = LoginResult{Session: session, Role: s.roles.Resolve(account.Email)}
	return
}

// Logout clears the session unconditionally. Other persisted collections
// are untouched.
func (s *SessionService) Logout(ctx context.Context) error {
	if s == nil {
		return fmt.Errorf("SessionService is nil")
	}
	if s.state == nil {
		return fmt.Errorf("session state repository not configured")
	}

	logger := s.loggerWith(ctx, "Logout")
	if err := s.state.ClearSession(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to clear session", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "session cleared")
	return nil
}

// Current returns the persisted session snapshot, if any.
func (s *SessionService) Current(ctx context.Context) (Session, bool, error) {
	if s == nil {
		return Session{}, false, fmt.Errorf("SessionService is nil")
	}
	if s.state == nil {
		return Session{}, false, nil
	}
	return s.state.CurrentSession(ctx)
}

// CurrentPrincipal derives the acting principal from the persisted session.
// Without a session the guest principal is returned.
func (s *SessionService) CurrentPrincipal(ctx context.Context) (Principal, error) {
	session, ok, err := s.Current(ctx)
	if err != nil {
		return Principal{}, err
	}
	if !ok {
		return Principal{Role: RoleGuest}, nil
	}
	return s.roles.PrincipalFor(session.Email), nil
}

// RoleFor exposes role derivation for callers that hold only an email.
func (s *SessionService) RoleFor(email string) Role {
	if s == nil {
		return RoleGuest
	}
	return s.roles.Resolve(email)
}

func (s *SessionService) saveSession(ctx context.Context, session Session) error {
	if s.state == nil {
		return nil
	}
	return s.state.SaveSession(ctx, session)
}

// syncMirror overlays the authenticated account onto the stored profile,
// preserving any unrelated mirror fields.
func (s *SessionService) syncMirror(ctx context.Context, account UserAccount) error {
	if s.mirror == nil {
		return nil
	}
	profile, err := s.mirror.Profile(ctx)
	if err != nil {
		return err
	}
	profile.Name = account.Name
	profile.Email = account.Email
	profile.StudentID = account.StudentID
	profile.Participation = cloneParticipation(account.Participation)
	return s.mirror.SaveProfile(ctx, profile)
}

func sessionSnapshot(account UserAccount) Session {
	return Session{
		Name:          account.Name,
		Email:         account.Email,
		StudentID:     account.StudentID,
		Participation: cloneParticipation(account.Participation),
	}
}
