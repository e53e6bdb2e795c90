package app

import (
	"fmt"
	"net/http"

	"github.com/gameon-app/gameon-go/internal/config"
	"github.com/gameon-app/gameon-go/internal/infrastructure/repository/memory"
	"github.com/gameon-app/gameon-go/internal/interfaces/httpapi"
	idgen "github.com/gameon-app/gameon-go/internal/platform/id"
	"github.com/gameon-app/gameon-go/internal/platform/logging"
)

// NewHTTPServer assembles the seeded in-memory GameON backend. It exists so
// the CLI has a real wire surface to talk to during development.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	requestRepo := memory.NewRequestRepository(memory.SeedRequests())
	participantRepo := memory.NewParticipantRepository(memory.SeedParticipants())
	ratingRepo := memory.NewRatingRepository(memory.SeedRatings())
	tokens := memory.NewTokenStore(idgen.NewRandomGenerator(), userRepo)

	handler := httpapi.NewHandler(httpapi.HandlerConfig{
		Logger:       logger,
		Requests:     requestRepo,
		Participants: participantRepo,
		Ratings:      ratingRepo,
		Users:        userRepo,
		Tokens:       tokens,
		Verifier:     tokens,
	})
	router := httpapi.NewRouter(handler, tokens, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
