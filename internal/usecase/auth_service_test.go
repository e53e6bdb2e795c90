package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gameon-app/gameon-go/internal/domain/user"
	"github.com/gameon-app/gameon-go/internal/session"
)

func newSessionStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestAuthServiceLoginPersistsSession(t *testing.T) {
	gateway := newStubGateway()
	gateway.loginFn = func(_ context.Context, creds user.Credentials) (user.AuthUser, error) {
		return user.AuthUser{
			Profile: user.Profile{ID: 7, Name: "Asha Rao", Email: creds.Email},
			Token:   "tok-abc",
		}, nil
	}

	sessions := newSessionStore(t)
	svc := NewAuthService(gateway, sessions)

	authed, err := svc.Login(context.Background(), user.Credentials{Email: "asha@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if authed.Token != "tok-abc" {
		t.Fatalf("unexpected token %q", authed.Token)
	}

	sess, ok, err := svc.Current(context.Background())
	if err != nil || !ok {
		t.Fatalf("current session: ok=%v err=%v", ok, err)
	}
	if sess.UserID != 7 || sess.Token != "tok-abc" {
		t.Fatalf("unexpected session: %+v", sess)
	}

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok, _ := svc.Current(context.Background()); ok {
		t.Fatalf("session must be gone after logout")
	}
}

func TestAuthServiceLoginValidatesCredentials(t *testing.T) {
	gateway := newStubGateway()
	svc := NewAuthService(gateway, newSessionStore(t))

	if _, err := svc.Login(context.Background(), user.Credentials{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if gateway.callCount("Login") != 0 {
		t.Fatalf("blank credentials must not reach the gateway")
	}
}

func TestAuthServiceLoginRejectsTokenlessResponse(t *testing.T) {
	gateway := newStubGateway()
	gateway.loginFn = func(context.Context, user.Credentials) (user.AuthUser, error) {
		return user.AuthUser{Profile: user.Profile{ID: 7}}, nil
	}
	svc := NewAuthService(gateway, newSessionStore(t))

	_, err := svc.Login(context.Background(), user.Credentials{Email: "asha@example.com", Password: "hunter22"})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestAuthServiceRegister(t *testing.T) {
	gateway := newStubGateway()
	gateway.registerFn = func(_ context.Context, in RegisterInput) (user.AuthUser, error) {
		return user.AuthUser{
			Profile: user.Profile{ID: 9, Name: in.Name, Email: in.Email, Sports: in.Sports},
			Token:   "tok-new",
		}, nil
	}
	svc := NewAuthService(gateway, newSessionStore(t))

	if _, err := svc.Register(context.Background(), RegisterInput{Name: "Vikram"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("incomplete registration: expected ErrInvalidInput, got %v", err)
	}

	authed, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Vikram Shetty",
		Email:    "vikram@example.com",
		Password: "correct-horse",
		Phone:    "+91-9000000000",
		Sports:   map[string]string{"chess": "Advanced"},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if authed.ID != 9 || authed.Token != "tok-new" {
		t.Fatalf("unexpected auth user: %+v", authed)
	}

	sess, ok, _ := svc.Current(context.Background())
	if !ok || sess.UserID != 9 {
		t.Fatalf("registration must persist the session, got %+v ok=%v", sess, ok)
	}
}

func TestAuthServiceVerifyClearsStaleSession(t *testing.T) {
	gateway := newStubGateway()
	gateway.isLoggedInFn = func(context.Context) (user.LoginStatus, error) {
		return user.LoginStatus{IsLoggedIn: false}, nil
	}

	sessions := newSessionStore(t)
	if err := sessions.Save(session.Session{Token: "tok-stale", UserID: 7}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	svc := NewAuthService(gateway, sessions)

	status, err := svc.Verify(context.Background())
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if status.IsLoggedIn {
		t.Fatalf("expected logged-out status")
	}
	if _, ok, _ := sessions.Load(); ok {
		t.Fatalf("stale session must be cleared")
	}
}

func TestAuthServiceVerifySkipsNetworkWhenLoggedOut(t *testing.T) {
	gateway := newStubGateway()
	svc := NewAuthService(gateway, newSessionStore(t))

	status, err := svc.Verify(context.Background())
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if status.IsLoggedIn {
		t.Fatalf("expected logged-out status")
	}
	if gateway.callCount("IsLoggedIn") != 0 {
		t.Fatalf("verify without a session must not reach the gateway")
	}
}
