package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/gameon-app/gameon-go/internal/domain/request"
	"github.com/gameon-app/gameon-go/internal/usecase"
)

type RequestRepository struct {
	mu     sync.RWMutex
	items  map[int64]request.PlayRequest
	nextID int64
}

func NewRequestRepository(seed []request.PlayRequest) *RequestRepository {
	items := make(map[int64]request.PlayRequest, len(seed))
	var maxID int64
	for _, item := range seed {
		items[item.ID] = item
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	return &RequestRepository{items: items, nextID: maxID}
}

func (r *RequestRepository) List(_ context.Context) ([]request.PlayRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]request.PlayRequest, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, cloneRequest(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *RequestRepository) Get(_ context.Context, id int64) (request.PlayRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return request.PlayRequest{}, fmt.Errorf("%w: play request %d", usecase.ErrNotFound, id)
	}
	return cloneRequest(item), nil
}

func (r *RequestRepository) Create(_ context.Context, item request.PlayRequest) (request.PlayRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	if item.Status == "" {
		item.Status = request.StatusOpen
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	r.items[item.ID] = cloneRequest(item)
	return cloneRequest(item), nil
}

func (r *RequestRepository) UpdateStatus(_ context.Context, id int64, status request.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return fmt.Errorf("%w: play request %d", usecase.ErrNotFound, id)
	}
	item.Status = status
	r.items[id] = item
	return nil
}

func (r *RequestRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: play request %d", usecase.ErrNotFound, id)
	}
	delete(r.items, id)
	return nil
}

func cloneRequest(item request.PlayRequest) request.PlayRequest {
	out := item
	if item.Sport != nil {
		out.Sport = maps.Clone(item.Sport)
	}
	return out
}
