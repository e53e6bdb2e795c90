package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gameon-app/gameon-go/internal/domain/participant"
	"github.com/gameon-app/gameon-go/internal/usecase"
)

type ParticipantRepository struct {
	mu     sync.RWMutex
	items  map[int64]participant.Participant
	nextID int64
}

func NewParticipantRepository(seed []participant.Participant) *ParticipantRepository {
	items := make(map[int64]participant.Participant, len(seed))
	var maxID int64
	for _, item := range seed {
		items[item.ID] = item
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	return &ParticipantRepository{items: items, nextID: maxID}
}

func (r *ParticipantRepository) Get(_ context.Context, id int64) (participant.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return participant.Participant{}, fmt.Errorf("%w: participant %d", usecase.ErrNotFound, id)
	}
	return item, nil
}

func (r *ParticipantRepository) ListByRequest(_ context.Context, requestID int64) ([]participant.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]participant.Participant, 0)
	for _, item := range r.items {
		if item.RequestID == requestID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ParticipantRepository) ListByUser(_ context.Context, userID int64) ([]participant.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]participant.Participant, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ParticipantRepository) Create(_ context.Context, item participant.Participant) (participant.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.RequestID == item.RequestID && existing.UserID == item.UserID && existing.Status != participant.StatusCancelled {
			return participant.Participant{}, fmt.Errorf("%w: user %d already joined request %d", usecase.ErrInvalidInput, item.UserID, item.RequestID)
		}
	}

	r.nextID++
	item.ID = r.nextID
	if item.Status == "" {
		item.Status = participant.StatusPending
	}

	r.items[item.ID] = item
	return item, nil
}

func (r *ParticipantRepository) UpdateStatus(_ context.Context, id int64, status participant.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return fmt.Errorf("%w: participant %d", usecase.ErrNotFound, id)
	}
	item.Status = status
	r.items[id] = item
	return nil
}
