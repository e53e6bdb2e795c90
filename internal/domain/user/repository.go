package user

import "context"

type Repository interface {
	Create(ctx context.Context, profile Profile, password string) (Profile, error)
	GetByID(ctx context.Context, id int64) (Profile, error)
	GetByEmail(ctx context.Context, email string) (Profile, error)
	Authenticate(ctx context.Context, email, password string) (Profile, error)
	Update(ctx context.Context, profile Profile) (Profile, error)
}
