package usecase

import (
	"context"

	"github.com/gameon-app/gameon-go/internal/domain/participant"
	"github.com/gameon-app/gameon-go/internal/domain/rating"
	"github.com/gameon-app/gameon-go/internal/domain/request"
	"github.com/gameon-app/gameon-go/internal/domain/user"
)

// CreateRequestInput is the payload for hosting a new play request.
type CreateRequestInput struct {
	UserID     int64             `json:"user_id" validate:"required,gt=0"`
	Sport      map[string]string `json:"sport" validate:"required,min=1"`
	Location   string            `json:"location" validate:"required"`
	Time       string            `json:"time" validate:"required"`
	CourtPrice float64           `json:"court_price" validate:"gte=0"`
}

// SubmitRatingInput is the payload for rating a fellow participant.
type SubmitRatingInput struct {
	GivenBy   int64  `json:"given_by" validate:"required,gt=0"`
	GivenTo   int64  `json:"given_to" validate:"required,gt=0"`
	RequestID int64  `json:"request_id" validate:"required,gt=0"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback  string `json:"feedback,omitempty" validate:"omitempty,max=1000"`
}

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Name     string            `json:"name" validate:"required,max=100"`
	Email    string            `json:"email" validate:"required,email"`
	Password string            `json:"password" validate:"required,min=8"`
	Phone    string            `json:"phone_number" validate:"required,min=7,max=20"`
	Sports   map[string]string `json:"sports" validate:"required,min=1"`
}

// UpdateProfileInput is the payload for editing the viewer's profile.
type UpdateProfileInput struct {
	Name   string            `json:"name" validate:"required,max=100"`
	Email  string            `json:"email" validate:"required,email"`
	Phone  string            `json:"phone_number" validate:"required,min=7,max=20"`
	Sports map[string]string `json:"sports" validate:"required,min=1"`
}

// Gateway is the remote data surface of the GameON backend. The client holds
// read-through copies of everything behind it; all lifecycle state is
// server-authoritative.
type Gateway interface {
	ListRequests(ctx context.Context) ([]request.PlayRequest, error)
	ListJoinedRequestIDs(ctx context.Context) ([]int64, error)
	GetRequest(ctx context.Context, id int64) (request.PlayRequest, error)
	CreateRequest(ctx context.Context, input CreateRequestInput) (request.PlayRequest, error)
	DeleteRequest(ctx context.Context, id int64) error

	ListParticipants(ctx context.Context, requestID int64) ([]participant.Participant, error)
	JoinRequest(ctx context.Context, userID, requestID int64) (participant.Participant, error)
	AcceptParticipant(ctx context.Context, requestID, participantUserID int64) error
	RejectParticipant(ctx context.Context, participantID int64) error

	SubmitRating(ctx context.Context, input SubmitRatingInput) (rating.Rating, error)
	ListUserRatings(ctx context.Context, userID int64) ([]rating.CompleteRating, error)

	GetUserProfile(ctx context.Context, userID int64) (user.Profile, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (user.Profile, error)

	Login(ctx context.Context, creds user.Credentials) (user.AuthUser, error)
	Register(ctx context.Context, input RegisterInput) (user.AuthUser, error)
	IsLoggedIn(ctx context.Context) (user.LoginStatus, error)
}
