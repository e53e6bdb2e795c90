package rating

import "context"

type Repository interface {
	Create(ctx context.Context, item Rating) (Rating, error)
	ListForUser(ctx context.Context, userID int64) ([]Rating, error)
}
