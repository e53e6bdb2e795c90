package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gameon-app/gameon-go/internal/domain/request"
	"github.com/gameon-app/gameon-go/internal/domain/user"
	"github.com/gameon-app/gameon-go/internal/platform/cache"
)

func newProfileService(t *testing.T, gateway Gateway) *ProfileService {
	t.Helper()
	svc, err := NewProfileService(gateway, cache.NewStore(time.Minute), 2)
	if err != nil {
		t.Fatalf("new profile service: %v", err)
	}
	t.Cleanup(svc.Close)
	return svc
}

func TestProfileServiceGetCaches(t *testing.T) {
	gateway := newStubGateway()
	gateway.getProfileFn = func(_ context.Context, userID int64) (user.Profile, error) {
		return user.Profile{ID: userID, Name: "Asha Rao", Sports: map[string]string{"tennis": "Basic"}}, nil
	}
	svc := newProfileService(t, gateway)

	for i := 0; i < 3; i++ {
		got, err := svc.Get(context.Background(), 10)
		if err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
		if got.ID != 10 || got.Name != "Asha Rao" {
			t.Fatalf("unexpected profile: %+v", got)
		}
	}
	if calls := gateway.callCount("GetUserProfile"); calls != 1 {
		t.Fatalf("repeat gets must hit the cache, saw %d fetches", calls)
	}

	if _, err := svc.Get(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing user id, got %v", err)
	}
}

func TestProfileServiceUpdateRefreshesCache(t *testing.T) {
	gateway := newStubGateway()
	gateway.getProfileFn = func(_ context.Context, userID int64) (user.Profile, error) {
		return user.Profile{ID: userID, Name: "Old Name"}, nil
	}
	gateway.updateProfileFn = func(_ context.Context, in UpdateProfileInput) (user.Profile, error) {
		return user.Profile{ID: 10, Name: in.Name, Email: in.Email, Phone: in.Phone, Sports: in.Sports}, nil
	}
	svc := newProfileService(t, gateway)

	if _, err := svc.Get(context.Background(), 10); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	if _, err := svc.Update(context.Background(), UpdateProfileInput{Name: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("incomplete update: expected ErrInvalidInput, got %v", err)
	}

	updated, err := svc.Update(context.Background(), UpdateProfileInput{
		Name:   "Asha R",
		Email:  "asha@example.com",
		Phone:  "+91-9000000001",
		Sports: map[string]string{"tennis": "Intermediate"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Asha R" {
		t.Fatalf("unexpected updated profile: %+v", updated)
	}

	got, err := svc.Get(context.Background(), 10)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Name != "Asha R" {
		t.Fatalf("cache must hold the updated profile, got %+v", got)
	}
	if calls := gateway.callCount("GetUserProfile"); calls != 1 {
		t.Fatalf("update must refresh the cache in place, saw %d fetches", calls)
	}
}

func TestProfileServicePrefetchHosts(t *testing.T) {
	gateway := newStubGateway()
	gateway.getProfileFn = func(_ context.Context, userID int64) (user.Profile, error) {
		return user.Profile{ID: userID}, nil
	}
	svc := newProfileService(t, gateway)

	items := []request.PlayRequest{
		{ID: 1, HostUserID: 10},
		{ID: 2, HostUserID: 11},
		{ID: 3, HostUserID: 10},
		{ID: 4},
	}
	svc.PrefetchHosts(context.Background(), items)

	if calls := gateway.callCount("GetUserProfile"); calls != 2 {
		t.Fatalf("prefetch must fetch each distinct host once, saw %d fetches", calls)
	}

	if _, err := svc.Get(context.Background(), 11); err != nil {
		t.Fatalf("get after prefetch: %v", err)
	}
	if calls := gateway.callCount("GetUserProfile"); calls != 2 {
		t.Fatalf("prefetched profile must be served from cache, saw %d fetches", calls)
	}
}
