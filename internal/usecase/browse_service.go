package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/gameon-app/gameon-go/internal/domain/browse"
	"github.com/gameon-app/gameon-go/internal/domain/request"
	"github.com/gameon-app/gameon-go/internal/platform/cache"
)

const requestCollectionCacheKey = "requests:all"

// BrowseSnapshot is everything the dashboard needs to render one frame: the
// full collection, the facets derived from it, and the viewer's joined set.
type BrowseSnapshot struct {
	Requests  []request.PlayRequest
	SportTabs []string
	Locations []string
	MaxPrice  float64
	Joined    browse.JoinedSet
}

// BrowseService loads the request collection and the viewer's participations,
// reconciles the local join state, and answers filtered views over the
// result. All filtering is local; the gateway is only hit to refresh.
type BrowseService struct {
	gateway Gateway
	state   *JoinState
	store   *cache.Store
}

func NewBrowseService(gateway Gateway, state *JoinState, store *cache.Store) *BrowseService {
	return &BrowseService{
		gateway: gateway,
		state:   state,
		store:   store,
	}
}

// Refresh pulls the collection and the joined ids in one round, each on its
// own goroutine. The joined set is replaced wholesale; a failed refresh
// leaves the previous state untouched.
func (s *BrowseService) Refresh(ctx context.Context) (BrowseSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BrowseService.Refresh")
	defer span.End()

	var (
		items     []request.PlayRequest
		joinedIDs []int64
	)

	group := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	group.Go(func(ctx context.Context) error {
		listed, err := s.gateway.ListRequests(ctx)
		if err != nil {
			return fmt.Errorf("list requests: %w", err)
		}
		items = listed
		return nil
	})
	group.Go(func(ctx context.Context) error {
		ids, err := s.gateway.ListJoinedRequestIDs(ctx)
		if err != nil {
			return fmt.Errorf("list joined requests: %w", err)
		}
		joinedIDs = ids
		return nil
	})
	if err := group.Wait(); err != nil {
		return BrowseSnapshot{}, err
	}

	for i := range items {
		items[i].Status = request.NormalizeStatus(string(items[i].Status))
	}

	s.state.Replace(joinedIDs)
	if s.store != nil {
		s.store.Set(ctx, requestCollectionCacheKey, items)
	}

	return s.snapshot(items), nil
}

// Browse answers a filtered, sorted view over the cached collection. When the
// cache is cold it falls through to a full Refresh first.
func (s *BrowseService) Browse(
	ctx context.Context,
	criteria browse.Criteria,
	mode browse.ViewMode,
	sortBy browse.SortOption,
	viewerID int64,
) ([]request.PlayRequest, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BrowseService.Browse")
	defer span.End()

	items, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	return browse.Visible(items, criteria, mode, sortBy, viewerID, s.state.Snapshot()), nil
}

// Snapshot returns the current frame without forcing a network round when the
// cache is warm.
func (s *BrowseService) Snapshot(ctx context.Context) (BrowseSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BrowseService.Snapshot")
	defer span.End()

	items, err := s.collection(ctx)
	if err != nil {
		return BrowseSnapshot{}, err
	}
	return s.snapshot(items), nil
}

// Invalidate drops the cached collection so the next read refetches. Called
// after every membership- or lifecycle-changing action.
func (s *BrowseService) Invalidate(ctx context.Context) {
	if s.store != nil {
		s.store.Delete(ctx, requestCollectionCacheKey)
	}
}

func (s *BrowseService) collection(ctx context.Context) ([]request.PlayRequest, error) {
	if s.store == nil {
		snap, err := s.Refresh(ctx)
		if err != nil {
			return nil, err
		}
		return snap.Requests, nil
	}
	if cached, ok := s.store.Get(ctx, requestCollectionCacheKey); ok {
		if items, valid := cached.([]request.PlayRequest); valid {
			return items, nil
		}
	}
	snap, err := s.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Requests, nil
}

func (s *BrowseService) snapshot(items []request.PlayRequest) BrowseSnapshot {
	return BrowseSnapshot{
		Requests:  items,
		SportTabs: browse.SportTabs(items),
		Locations: browse.Locations(items),
		MaxPrice:  browse.MaxCourtPrice(items),
		Joined:    s.state.Snapshot(),
	}
}
