package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gameon-app/gameon-go/internal/domain/rating"
)

type RatingRepository struct {
	mu     sync.RWMutex
	items  map[int64]rating.Rating
	nextID int64
}

func NewRatingRepository(seed []rating.Rating) *RatingRepository {
	items := make(map[int64]rating.Rating, len(seed))
	var maxID int64
	for _, item := range seed {
		items[item.ID] = item
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	return &RatingRepository{items: items, nextID: maxID}
}

func (r *RatingRepository) Create(_ context.Context, item rating.Rating) (rating.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	r.items[item.ID] = item
	return item, nil
}

func (r *RatingRepository) ListForUser(_ context.Context, userID int64) ([]rating.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]rating.Rating, 0)
	for _, item := range r.items {
		if item.GivenTo == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
