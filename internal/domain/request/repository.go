package request

import "context"

type Repository interface {
	List(ctx context.Context) ([]PlayRequest, error)
	Get(ctx context.Context, id int64) (PlayRequest, error)
	Create(ctx context.Context, item PlayRequest) (PlayRequest, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	Delete(ctx context.Context, id int64) error
}
