package gameon

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/gameon-app/gameon-go/internal/domain/participant"
	"github.com/gameon-app/gameon-go/internal/domain/rating"
	"github.com/gameon-app/gameon-go/internal/domain/request"
	"github.com/gameon-app/gameon-go/internal/domain/user"
	"github.com/gameon-app/gameon-go/internal/platform/logging"
	"github.com/gameon-app/gameon-go/internal/platform/resilience"
	"github.com/gameon-app/gameon-go/internal/usecase"
)

const (
	defaultBaseURL   = "http://localhost:8080"
	maxResponseBytes = 4 << 20
)

var bearerHeaderRegex = regexp.MustCompile(`(?i)bearer\s+[^\s"']+`)

// TokenSource supplies the bearer token for each call. An empty token means
// the call goes out unauthenticated; the backend decides what that is allowed
// to see.
type TokenSource interface {
	Token() string
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Tokens         TokenSource
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the GameON backend. Every call is a single attempt: a
// failure surfaces to the caller and local state stays as it was, there is no
// transparent retry.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	tokens         TokenSource
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

var _ usecase.Gateway = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		tokens:         cfg.Tokens,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) ListRequests(ctx context.Context) ([]request.PlayRequest, error) {
	var out []request.PlayRequest
	if err := c.doJSON(ctx, http.MethodGet, "/requests", nil, &out); err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return out, nil
}

func (c *Client) ListJoinedRequestIDs(ctx context.Context) ([]int64, error) {
	var envelope struct {
		JoinedRequests []int64 `json:"joined_requests"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/request/joined", nil, &envelope); err != nil {
		return nil, fmt.Errorf("list joined requests: %w", err)
	}
	return envelope.JoinedRequests, nil
}

func (c *Client) GetRequest(ctx context.Context, id int64) (request.PlayRequest, error) {
	var out request.PlayRequest
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/request/%d", id), nil, &out); err != nil {
		return request.PlayRequest{}, fmt.Errorf("get request id=%d: %w", id, err)
	}
	return out, nil
}

func (c *Client) CreateRequest(ctx context.Context, input usecase.CreateRequestInput) (request.PlayRequest, error) {
	var out request.PlayRequest
	if err := c.doJSON(ctx, http.MethodPost, "/request", input, &out); err != nil {
		return request.PlayRequest{}, fmt.Errorf("create request: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteRequest(ctx context.Context, id int64) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/request/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete request id=%d: %w", id, err)
	}
	return nil
}

func (c *Client) ListParticipants(ctx context.Context, requestID int64) ([]participant.Participant, error) {
	var out []participant.Participant
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/request/%d/participants", requestID), nil, &out); err != nil {
		return nil, fmt.Errorf("list participants request_id=%d: %w", requestID, err)
	}
	return out, nil
}

func (c *Client) JoinRequest(ctx context.Context, userID, requestID int64) (participant.Participant, error) {
	body := map[string]int64{
		"user_id":    userID,
		"request_id": requestID,
	}
	var out participant.Participant
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/request/%d/accept", requestID), body, &out); err != nil {
		return participant.Participant{}, fmt.Errorf("join request id=%d: %w", requestID, err)
	}
	return out, nil
}

func (c *Client) AcceptParticipant(ctx context.Context, requestID, participantUserID int64) error {
	body := map[string]int64{"user_id": participantUserID}
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/request/%d/confirm", requestID), body, nil); err != nil {
		return fmt.Errorf("accept participant request_id=%d: %w", requestID, err)
	}
	return nil
}

func (c *Client) RejectParticipant(ctx context.Context, participantID int64) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/participants/%d", participantID), nil, nil); err != nil {
		return fmt.Errorf("reject participant id=%d: %w", participantID, err)
	}
	return nil
}

func (c *Client) SubmitRating(ctx context.Context, input usecase.SubmitRatingInput) (rating.Rating, error) {
	var out rating.Rating
	if err := c.doJSON(ctx, http.MethodPost, "/ratings", input, &out); err != nil {
		return rating.Rating{}, fmt.Errorf("submit rating: %w", err)
	}
	return out, nil
}

func (c *Client) ListUserRatings(ctx context.Context, userID int64) ([]rating.CompleteRating, error) {
	var out []rating.CompleteRating
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/user/%d/ratings", userID), nil, &out); err != nil {
		return nil, fmt.Errorf("list ratings user_id=%d: %w", userID, err)
	}
	return out, nil
}

func (c *Client) GetUserProfile(ctx context.Context, userID int64) (user.Profile, error) {
	var out user.Profile
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/user/%d", userID), nil, &out); err != nil {
		return user.Profile{}, fmt.Errorf("get profile user_id=%d: %w", userID, err)
	}
	return out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (user.Profile, error) {
	var out user.Profile
	if err := c.doJSON(ctx, http.MethodPost, "/profile/update", input, &out); err != nil {
		return user.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return out, nil
}

func (c *Client) Login(ctx context.Context, creds user.Credentials) (user.AuthUser, error) {
	var out user.AuthUser
	if err := c.doJSON(ctx, http.MethodPost, "/login", creds, &out); err != nil {
		return user.AuthUser{}, fmt.Errorf("login: %w", err)
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, input usecase.RegisterInput) (user.AuthUser, error) {
	var out user.AuthUser
	if err := c.doJSON(ctx, http.MethodPost, "/register", input, &out); err != nil {
		return user.AuthUser{}, fmt.Errorf("register: %w", err)
	}
	return out, nil
}

func (c *Client) IsLoggedIn(ctx context.Context) (user.LoginStatus, error) {
	var out user.LoginStatus
	if err := c.doJSON(ctx, http.MethodGet, "/islogin", nil, &out); err != nil {
		return user.LoginStatus{}, fmt.Errorf("check login: %w", err)
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "gameon circuit breaker rejected request", "state", c.breaker.State(), "path", path)
			return fmt.Errorf("%w: backend is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	raw, err := c.executeRequest(ctx, method, c.baseURL+path, body)
	if c.circuitEnabled {
		if err != nil && isCircuitFailure(err) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return err
	}

	if target == nil || len(raw) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrap(err, "decode backend payload")
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, method, fullURL string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := sonic.Marshal(body)
		if err != nil {
			return nil, crerr.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")
	if body != nil {
		req.Header.Set("content-type", "application/json")
	}
	token := ""
	if c.tokens != nil {
		token = strings.TrimSpace(c.tokens.Token())
	}
	if token != "" {
		req.Header.Set("authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		sendErr := fmt.Errorf("%w: send request: %s", usecase.ErrDependencyUnavailable, sanitizeSensitiveText(err.Error(), token))
		c.logger.WarnContext(ctx, "gameon request failed", "method", method, "url", fullURL, "error", sendErr)
		return nil, sendErr
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", usecase.ErrDependencyUnavailable, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	statusErr := fmt.Errorf("%w: backend status=%d body=%s", mapStatusError(resp.StatusCode), resp.StatusCode, abbreviateBody(raw))
	if resp.StatusCode >= http.StatusInternalServerError {
		c.logger.WarnContext(ctx, "gameon backend error", "method", method, "url", fullURL, "status", resp.StatusCode)
	}
	return nil, statusErr
}

func mapStatusError(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return usecase.ErrUnauthorized
	case status == http.StatusNotFound:
		return usecase.ErrNotFound
	case status >= 400 && status < 500:
		return usecase.ErrInvalidInput
	default:
		return usecase.ErrDependencyUnavailable
	}
}

// isCircuitFailure only trips the breaker for backend unavailability; the
// caller's own 4xx mistakes are not the backend's health problem.
func isCircuitFailure(err error) bool {
	return stderrors.Is(err, usecase.ErrDependencyUnavailable)
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return bearerHeaderRegex.ReplaceAllString(value, "Bearer REDACTED")
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
