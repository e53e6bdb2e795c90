package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/gameon-app/gameon-go/internal/domain/request"
	"github.com/gameon-app/gameon-go/internal/domain/user"
	"github.com/gameon-app/gameon-go/internal/platform/cache"
)

const profileCachePrefix = "profile:"

// ProfileService reads and edits user profiles. Host profiles shown on the
// dashboard are warmed through a bounded worker pool so a long request list
// does not fan out into an unbounded burst of profile fetches.
type ProfileService struct {
	gateway Gateway
	store   *cache.Store
	workers *ants.Pool
}

func NewProfileService(gateway Gateway, store *cache.Store, prefetchWorkers int) (*ProfileService, error) {
	if prefetchWorkers <= 0 {
		prefetchWorkers = 4
	}
	workers, err := ants.NewPool(prefetchWorkers)
	if err != nil {
		return nil, fmt.Errorf("create profile prefetch pool: %w", err)
	}
	return &ProfileService{
		gateway: gateway,
		store:   store,
		workers: workers,
	}, nil
}

func (s *ProfileService) Close() {
	if s.workers != nil {
		s.workers.Release()
	}
}

func (s *ProfileService) Get(ctx context.Context, userID int64) (user.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.Get")
	defer span.End()

	if userID <= 0 {
		return user.Profile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	key := fmt.Sprintf("%s%d", profileCachePrefix, userID)
	loaded, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		profile, loadErr := s.gateway.GetUserProfile(ctx, userID)
		if loadErr != nil {
			return nil, fmt.Errorf("get profile: %w", loadErr)
		}
		return profile, nil
	})
	if err != nil {
		return user.Profile{}, err
	}

	profile, ok := loaded.(user.Profile)
	if !ok {
		return user.Profile{}, fmt.Errorf("%w: unexpected cached profile type", ErrDependencyUnavailable)
	}
	return profile, nil
}

func (s *ProfileService) Update(ctx context.Context, input UpdateProfileInput) (user.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.Update")
	defer span.End()

	if err := validate.StructCtx(ctx, input); err != nil {
		return user.Profile{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.gateway.UpdateProfile(ctx, input)
	if err != nil {
		return user.Profile{}, fmt.Errorf("update profile: %w", err)
	}

	if updated.ID > 0 {
		s.store.Set(ctx, fmt.Sprintf("%s%d", profileCachePrefix, updated.ID), updated)
	}
	return updated, nil
}

// PrefetchHosts warms the profile cache for every distinct host in the given
// collection. Failures are dropped; the dashboard falls back to a lazy fetch
// when it actually needs the profile.
func (s *ProfileService) PrefetchHosts(ctx context.Context, items []request.PlayRequest) {
	seen := make(map[int64]struct{}, len(items))

	var wg sync.WaitGroup
	for _, item := range items {
		hostID := item.HostUserID
		if hostID <= 0 {
			continue
		}
		if _, ok := seen[hostID]; ok {
			continue
		}
		seen[hostID] = struct{}{}

		wg.Add(1)
		if err := s.workers.Submit(func() {
			defer wg.Done()
			_, _ = s.Get(ctx, hostID)
		}); err != nil {
			wg.Done()
		}
	}
	wg.Wait()
}
