package participant

import "context"

type Repository interface {
	Get(ctx context.Context, id int64) (Participant, error)
	ListByRequest(ctx context.Context, requestID int64) ([]Participant, error)
	ListByUser(ctx context.Context, userID int64) ([]Participant, error)
	Create(ctx context.Context, item Participant) (Participant, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
}
