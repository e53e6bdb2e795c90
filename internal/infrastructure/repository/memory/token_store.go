package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/gameon-app/gameon-go/internal/domain/user"
	"github.com/gameon-app/gameon-go/internal/platform/id"
	"github.com/gameon-app/gameon-go/internal/usecase"
)

// TokenStore issues opaque bearer tokens and resolves them back to users.
// It doubles as the httpapi TokenVerifier.
type TokenStore struct {
	mu        sync.RWMutex
	generator id.Generator
	users     user.Repository
	byToken   map[string]int64
}

func NewTokenStore(generator id.Generator, users user.Repository) *TokenStore {
	if generator == nil {
		generator = id.NewRandomGenerator()
	}
	return &TokenStore{
		generator: generator,
		users:     users,
		byToken:   make(map[string]int64),
	}
}

func (s *TokenStore) Issue(_ context.Context, userID int64) (string, error) {
	token, err := s.generator.NewID()
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.mu.Lock()
	s.byToken[token] = userID
	s.mu.Unlock()
	return token, nil
}

func (s *TokenStore) Revoke(_ context.Context, token string) {
	s.mu.Lock()
	delete(s.byToken, token)
	s.mu.Unlock()
}

func (s *TokenStore) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	s.mu.RLock()
	userID, ok := s.byToken[token]
	s.mu.RUnlock()
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown access token", usecase.ErrUnauthorized)
	}

	profile, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: token owner is gone", usecase.ErrUnauthorized)
	}

	return user.Principal{UserID: profile.ID, Name: profile.Name}, nil
}
