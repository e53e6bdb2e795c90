package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gameon-app/gameon-go/internal/domain/user"
	"github.com/gameon-app/gameon-go/internal/session"
)

// AuthService exchanges credentials for a bearer token and keeps the result
// in the session file. Everything else trusts the stored token until the
// backend says otherwise.
type AuthService struct {
	gateway  Gateway
	sessions *session.Store
}

func NewAuthService(gateway Gateway, sessions *session.Store) *AuthService {
	return &AuthService{
		gateway:  gateway,
		sessions: sessions,
	}
}

func (s *AuthService) Login(ctx context.Context, creds user.Credentials) (user.AuthUser, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return user.AuthUser{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	authed, err := s.gateway.Login(ctx, creds)
	if err != nil {
		return user.AuthUser{}, fmt.Errorf("login: %w", err)
	}
	if err := s.persist(authed); err != nil {
		return user.AuthUser{}, err
	}
	return authed, nil
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (user.AuthUser, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	if err := validate.StructCtx(ctx, input); err != nil {
		return user.AuthUser{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	authed, err := s.gateway.Register(ctx, input)
	if err != nil {
		return user.AuthUser{}, fmt.Errorf("register: %w", err)
	}
	if err := s.persist(authed); err != nil {
		return user.AuthUser{}, err
	}
	return authed, nil
}

func (s *AuthService) Logout(_ context.Context) error {
	if err := s.sessions.Clear(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Current returns the locally stored login, without a network round.
func (s *AuthService) Current(_ context.Context) (session.Session, bool, error) {
	sess, ok, err := s.sessions.Load()
	if err != nil {
		return session.Session{}, false, fmt.Errorf("load session: %w", err)
	}
	return sess, ok, nil
}

// Verify asks the backend whether the stored token is still accepted. A
// rejected token clears the session so the next command starts logged out.
func (s *AuthService) Verify(ctx context.Context) (user.LoginStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Verify")
	defer span.End()

	if _, ok, err := s.sessions.Load(); err != nil {
		return user.LoginStatus{}, fmt.Errorf("load session: %w", err)
	} else if !ok {
		return user.LoginStatus{}, nil
	}

	status, err := s.gateway.IsLoggedIn(ctx)
	if err != nil {
		return user.LoginStatus{}, fmt.Errorf("verify login: %w", err)
	}
	if !status.IsLoggedIn {
		if err := s.sessions.Clear(); err != nil {
			return status, fmt.Errorf("clear stale session: %w", err)
		}
	}
	return status, nil
}

func (s *AuthService) persist(authed user.AuthUser) error {
	if authed.Token == "" || authed.ID <= 0 {
		return fmt.Errorf("%w: backend returned no usable token", ErrDependencyUnavailable)
	}
	err := s.sessions.Save(session.Session{
		Token:  authed.Token,
		UserID: authed.ID,
		Name:   authed.Name,
		Email:  authed.Email,
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}
