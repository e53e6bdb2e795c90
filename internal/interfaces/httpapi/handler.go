package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/gameon-app/gameon-go/internal/domain/participant"
	"github.com/gameon-app/gameon-go/internal/domain/rating"
	"github.com/gameon-app/gameon-go/internal/domain/request"
	"github.com/gameon-app/gameon-go/internal/domain/user"
	"github.com/gameon-app/gameon-go/internal/platform/logging"
	"github.com/gameon-app/gameon-go/internal/usecase"
)

// TokenIssuer mints bearer tokens at login and registration.
type TokenIssuer interface {
	Issue(ctx context.Context, userID int64) (string, error)
}

type HandlerConfig struct {
	Logger       *logging.Logger
	Requests     request.Repository
	Participants participant.Repository
	Ratings      rating.Repository
	Users        user.Repository
	Tokens       TokenIssuer
	Verifier     TokenVerifier
}

type Handler struct {
	logger       *logging.Logger
	requests     request.Repository
	participants participant.Repository
	ratings      rating.Repository
	users        user.Repository
	tokens       TokenIssuer
	verifier     TokenVerifier
	validate     *validator.Validate
}

func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		logger:       logger,
		requests:     cfg.Requests,
		participants: cfg.Participants,
		ratings:      cfg.Ratings,
		users:        cfg.Users,
		tokens:       cfg.Tokens,
		verifier:     cfg.Verifier,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeBody(r *http.Request, target any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: malformed request body", usecase.ErrInvalidInput)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	_, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, err.Error())
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

// withHostContact rehydrates host identity fields from the user store so a
// profile edit is visible on already-created requests.
func (h *Handler) withHostContact(ctx context.Context, item request.PlayRequest) request.PlayRequest {
	host, err := h.users.GetByID(ctx, item.HostUserID)
	if err != nil {
		return item
	}
	item.HostName = host.Name
	item.HostEmail = host.Email
	item.HostPhone = host.Phone
	return item
}
