package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/gameon-app/gameon-go/internal/domain/participant"
	"github.com/gameon-app/gameon-go/internal/domain/rating"
	"github.com/gameon-app/gameon-go/internal/domain/request"
)

// RatingService submits ratings between participants of a finished play and
// reads rating history. The eligibility checks run against records the caller
// already holds, so an ineligible attempt never reaches the gateway.
type RatingService struct {
	gateway Gateway
	now     func() time.Time
}

func NewRatingService(gateway Gateway) *RatingService {
	return &RatingService{
		gateway: gateway,
		now:     time.Now,
	}
}

// Submit records a rating from one participant to another. The play must be
// in the past and the rated participant must have been confirmed by the host.
func (s *RatingService) Submit(
	ctx context.Context,
	input SubmitRatingInput,
	target request.PlayRequest,
	ratee participant.Participant,
) (rating.Rating, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.Submit")
	defer span.End()

	if err := validate.StructCtx(ctx, input); err != nil {
		return rating.Rating{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !rating.InRange(input.Rating) {
		return rating.Rating{}, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, rating.Min, rating.Max)
	}
	if input.GivenBy == input.GivenTo {
		return rating.Rating{}, fmt.Errorf("%w: cannot rate yourself", ErrInvalidInput)
	}
	if target.ID != input.RequestID {
		return rating.Rating{}, fmt.Errorf("%w: rating references request %d but record is %d", ErrInvalidInput, input.RequestID, target.ID)
	}
	if target.Scheduled.IsZero() || target.Scheduled.After(s.now()) {
		return rating.Rating{}, fmt.Errorf("%w: play time has not passed for request %d", ErrRatingNotAllowed, target.ID)
	}
	if ratee.UserID != input.GivenTo || !ratee.IsConfirmed() {
		return rating.Rating{}, fmt.Errorf("%w: user %d was not a confirmed participant", ErrRatingNotAllowed, input.GivenTo)
	}

	submitted, err := s.gateway.SubmitRating(ctx, input)
	if err != nil {
		return rating.Rating{}, fmt.Errorf("submit rating: %w", err)
	}
	return submitted, nil
}

// History lists the ratings a user has received, newest first as the gateway
// returns them.
func (s *RatingService) History(ctx context.Context, userID int64) ([]rating.CompleteRating, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.History")
	defer span.End()

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	listed, err := s.gateway.ListUserRatings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return listed, nil
}
