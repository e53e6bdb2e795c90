package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gameon-app/gameon-go/internal/domain/participant"
	"github.com/gameon-app/gameon-go/internal/domain/rating"
	"github.com/gameon-app/gameon-go/internal/domain/request"
)

var ratingNow = time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

func completedPlay() request.PlayRequest {
	return request.PlayRequest{
		ID:         42,
		HostUserID: 10,
		Sport:      map[string]string{"Tennis": "Basic"},
		Location:   "Indiranagar Court 2",
		Scheduled:  ratingNow.Add(-2 * time.Hour),
		Status:     request.StatusCompleted,
	}
}

func confirmedRatee() participant.Participant {
	return participant.Participant{ID: 7, RequestID: 42, UserID: 20, Name: "Vikram Shetty", Status: participant.StatusConfirmed}
}

func ratingInput() SubmitRatingInput {
	return SubmitRatingInput{GivenBy: 10, GivenTo: 20, RequestID: 42, Rating: 4, Feedback: "solid backhand"}
}

func newRatingServiceAt(gateway Gateway, now time.Time) *RatingService {
	svc := NewRatingService(gateway)
	svc.now = func() time.Time { return now }
	return svc
}

func TestRatingServiceSubmit(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		gateway := newStubGateway()
		gateway.submitRatingFn = func(_ context.Context, in SubmitRatingInput) (rating.Rating, error) {
			return rating.Rating{ID: 1, GivenBy: in.GivenBy, GivenTo: in.GivenTo, RequestID: in.RequestID, Rating: in.Rating}, nil
		}
		svc := newRatingServiceAt(gateway, ratingNow)

		got, err := svc.Submit(context.Background(), ratingInput(), completedPlay(), confirmedRatee())
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if got.ID != 1 || got.Rating != 4 {
			t.Fatalf("unexpected rating: %+v", got)
		}
	})

	t.Run("before play time", func(t *testing.T) {
		gateway := newStubGateway()
		svc := newRatingServiceAt(gateway, ratingNow)

		target := completedPlay()
		target.Scheduled = ratingNow.Add(2 * time.Hour)

		_, err := svc.Submit(context.Background(), ratingInput(), target, confirmedRatee())
		if !errors.Is(err, ErrRatingNotAllowed) {
			t.Fatalf("expected ErrRatingNotAllowed, got %v", err)
		}
		if gateway.totalCalls() != 0 {
			t.Fatalf("early rating must not reach the gateway")
		}
	})

	t.Run("unconfirmed participant", func(t *testing.T) {
		gateway := newStubGateway()
		svc := newRatingServiceAt(gateway, ratingNow)

		ratee := confirmedRatee()
		ratee.Status = participant.StatusPending

		_, err := svc.Submit(context.Background(), ratingInput(), completedPlay(), ratee)
		if !errors.Is(err, ErrRatingNotAllowed) {
			t.Fatalf("expected ErrRatingNotAllowed, got %v", err)
		}
		if gateway.totalCalls() != 0 {
			t.Fatalf("rating an unconfirmed participant must not reach the gateway")
		}
	})

	t.Run("self rating", func(t *testing.T) {
		svc := newRatingServiceAt(newStubGateway(), ratingNow)

		input := ratingInput()
		input.GivenTo = input.GivenBy
		ratee := confirmedRatee()
		ratee.UserID = input.GivenBy

		if _, err := svc.Submit(context.Background(), input, completedPlay(), ratee); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("value out of range", func(t *testing.T) {
		svc := newRatingServiceAt(newStubGateway(), ratingNow)

		input := ratingInput()
		input.Rating = 6

		if _, err := svc.Submit(context.Background(), input, completedPlay(), confirmedRatee()); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("mismatched request record", func(t *testing.T) {
		svc := newRatingServiceAt(newStubGateway(), ratingNow)

		target := completedPlay()
		target.ID = 99

		if _, err := svc.Submit(context.Background(), ratingInput(), target, confirmedRatee()); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestRatingServiceHistory(t *testing.T) {
	gateway := newStubGateway()
	gateway.listRatingsFn = func(_ context.Context, userID int64) ([]rating.CompleteRating, error) {
		return []rating.CompleteRating{{ID: 1, GivenTo: userID, GivenByName: "Asha Rao", Rating: 5}}, nil
	}
	svc := NewRatingService(gateway)

	got, err := svc.History(context.Background(), 20)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 1 || got[0].GivenByName != "Asha Rao" {
		t.Fatalf("unexpected history: %+v", got)
	}

	if _, err := svc.History(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing user id, got %v", err)
	}
}
