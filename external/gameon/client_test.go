package gameon

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/gameon-app/gameon-go/internal/platform/resilience"
	"github.com/gameon-app/gameon-go/internal/usecase"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestClient(srv *httptest.Server, token string) *Client {
	return NewClient(ClientConfig{
		HTTPClient:     srv.Client(),
		BaseURL:        srv.URL,
		Tokens:         staticToken(token),
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	})
}

func TestClientListRequests_SendsBearerAndDecodes(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/requests" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
			t.Fatalf("unexpected authorization header: %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"user_id":10,"name":"Asha Rao","sport":{"Tennis":"Basic"},"location":"Indiranagar Court 2","time":"2026-03-15T10:00:00Z","court_price":100,"status":"Open"},
			{"id":2,"user_id":11,"name":"Vikram Shetty","sport":{"Chess":"Advanced"},"location":"Koramangala Club","time":"2026-03-16T10:00:00Z","court_price":0,"status":"Completed"}
		]`))
	}))
	defer srv.Close()

	client := newTestClient(srv, "tok-abc")

	items, err := client.ListRequests(context.Background())
	if err != nil {
		t.Fatalf("list requests: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(items))
	}
	if items[0].ID != 1 || items[0].HostName != "Asha Rao" || !items[0].IsOpen() {
		t.Fatalf("unexpected first request: %+v", items[0])
	}
	if items[1].SportName() != "Chess" || items[1].SportLevel() != "Advanced" {
		t.Fatalf("unexpected sport mapping: %+v", items[1])
	}
	if items[0].Scheduled.UTC() != time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected scheduled time: %v", items[0].Scheduled)
	}
}

func TestClientListJoinedRequestIDs_UnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/request/joined" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"joined_requests":[3,7,11]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, "tok-abc")

	ids, err := client.ListJoinedRequestIDs(context.Background())
	if err != nil {
		t.Fatalf("list joined: %v", err)
	}
	if len(ids) != 3 || ids[0] != 3 || ids[2] != 11 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestClientJoinRequest_PostsMembershipBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/request/42/accept" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}

		var body map[string]int64
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode join body: %v", err)
		}
		if body["user_id"] != 20 || body["request_id"] != 42 {
			t.Fatalf("unexpected join body: %v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"request_id":42,"user_id":20,"name":"Vikram Shetty","status":"Pending"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, "tok-abc")

	joined, err := client.JoinRequest(context.Background(), 20, 42)
	if err != nil {
		t.Fatalf("join request: %v", err)
	}
	if joined.ID != 7 || string(joined.Status) != "Pending" {
		t.Fatalf("unexpected participant: %+v", joined)
	}
}

func TestClientMapsBackendStatuses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, usecase.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, usecase.ErrUnauthorized},
		{"not found", http.StatusNotFound, usecase.ErrNotFound},
		{"unprocessable", http.StatusUnprocessableEntity, usecase.ErrInvalidInput},
		{"server error", http.StatusInternalServerError, usecase.ErrDependencyUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			}))
			defer srv.Close()

			client := newTestClient(srv, "tok-abc")

			_, err := client.GetRequest(context.Background(), 1)
			if !errors.Is(err, tc.want) {
				t.Fatalf("status %d: expected %v, got %v", tc.status, tc.want, err)
			}
		})
	}
}

func TestClientFailedCallIsSingleAttempt(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv, "tok-abc")

	if _, err := client.ListRequests(context.Background()); err == nil {
		t.Fatalf("expected error from failing backend")
	}
	if calls.Load() != 1 {
		t.Fatalf("a failed call must not be retried, saw %d attempts", calls.Load())
	}
}

func TestClientCircuitBreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		Tokens:     staticToken("tok-abc"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	for i := 0; i < 2; i++ {
		if _, err := client.ListRequests(context.Background()); err == nil {
			t.Fatalf("attempt %d should fail", i)
		}
	}
	seen := calls.Load()

	_, err := client.ListRequests(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("open breaker must report dependency unavailable, got %v", err)
	}
	if calls.Load() != seen {
		t.Fatalf("open breaker must not reach the backend, saw %d extra calls", calls.Load()-seen)
	}
}

func TestClientClientErrorsDoNotTripBreaker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		Tokens:     staticToken("tok-abc"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	for i := 0; i < 5; i++ {
		if _, err := client.GetRequest(context.Background(), 99); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("attempt %d: expected ErrNotFound, got %v", i, err)
		}
	}
	if calls.Load() != 5 {
		t.Fatalf("4xx responses must not open the breaker, saw %d calls", calls.Load())
	}
}

func TestClientRedactsTokenInErrors(t *testing.T) {
	t.Parallel()

	value := sanitizeSensitiveText(`dial failed: header Bearer tok-secret rejected`, "tok-secret")
	if value != "dial failed: header Bearer REDACTED rejected" {
		t.Fatalf("token must be redacted, got %q", value)
	}
}
