package usecase

import (
	"context"
	"sync"

	"github.com/gameon-app/gameon-go/internal/domain/participant"
	"github.com/gameon-app/gameon-go/internal/domain/rating"
	"github.com/gameon-app/gameon-go/internal/domain/request"
	"github.com/gameon-app/gameon-go/internal/domain/user"
)

// stubGateway counts every call so tests can assert which remote operations
// ran. Unset function fields answer with zero values.
type stubGateway struct {
	mu    sync.Mutex
	calls map[string]int

	listRequestsFn   func(ctx context.Context) ([]request.PlayRequest, error)
	listJoinedFn     func(ctx context.Context) ([]int64, error)
	getRequestFn     func(ctx context.Context, id int64) (request.PlayRequest, error)
	createRequestFn  func(ctx context.Context, input CreateRequestInput) (request.PlayRequest, error)
	deleteRequestFn  func(ctx context.Context, id int64) error
	listPartsFn      func(ctx context.Context, requestID int64) ([]participant.Participant, error)
	joinRequestFn    func(ctx context.Context, userID, requestID int64) (participant.Participant, error)
	acceptFn         func(ctx context.Context, requestID, participantUserID int64) error
	rejectFn         func(ctx context.Context, participantID int64) error
	submitRatingFn   func(ctx context.Context, input SubmitRatingInput) (rating.Rating, error)
	listRatingsFn    func(ctx context.Context, userID int64) ([]rating.CompleteRating, error)
	getProfileFn     func(ctx context.Context, userID int64) (user.Profile, error)
	updateProfileFn  func(ctx context.Context, input UpdateProfileInput) (user.Profile, error)
	loginFn          func(ctx context.Context, creds user.Credentials) (user.AuthUser, error)
	registerFn       func(ctx context.Context, input RegisterInput) (user.AuthUser, error)
	isLoggedInFn     func(ctx context.Context) (user.LoginStatus, error)
}

func newStubGateway() *stubGateway {
	return &stubGateway{calls: make(map[string]int)}
}

func (g *stubGateway) record(name string) {
	g.mu.Lock()
	g.calls[name]++
	g.mu.Unlock()
}

func (g *stubGateway) callCount(name string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[name]
}

func (g *stubGateway) totalCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	total := 0
	for _, n := range g.calls {
		total += n
	}
	return total
}

func (g *stubGateway) ListRequests(ctx context.Context) ([]request.PlayRequest, error) {
	g.record("ListRequests")
	if g.listRequestsFn != nil {
		return g.listRequestsFn(ctx)
	}
	return nil, nil
}

func (g *stubGateway) ListJoinedRequestIDs(ctx context.Context) ([]int64, error) {
	g.record("ListJoinedRequestIDs")
	if g.listJoinedFn != nil {
		return g.listJoinedFn(ctx)
	}
	return nil, nil
}

func (g *stubGateway) GetRequest(ctx context.Context, id int64) (request.PlayRequest, error) {
	g.record("GetRequest")
	if g.getRequestFn != nil {
		return g.getRequestFn(ctx, id)
	}
	return request.PlayRequest{}, nil
}

func (g *stubGateway) CreateRequest(ctx context.Context, input CreateRequestInput) (request.PlayRequest, error) {
	g.record("CreateRequest")
	if g.createRequestFn != nil {
		return g.createRequestFn(ctx, input)
	}
	return request.PlayRequest{}, nil
}

func (g *stubGateway) DeleteRequest(ctx context.Context, id int64) error {
	g.record("DeleteRequest")
	if g.deleteRequestFn != nil {
		return g.deleteRequestFn(ctx, id)
	}
	return nil
}

func (g *stubGateway) ListParticipants(ctx context.Context, requestID int64) ([]participant.Participant, error) {
	g.record("ListParticipants")
	if g.listPartsFn != nil {
		return g.listPartsFn(ctx, requestID)
	}
	return nil, nil
}

func (g *stubGateway) JoinRequest(ctx context.Context, userID, requestID int64) (participant.Participant, error) {
	g.record("JoinRequest")
	if g.joinRequestFn != nil {
		return g.joinRequestFn(ctx, userID, requestID)
	}
	return participant.Participant{}, nil
}

func (g *stubGateway) AcceptParticipant(ctx context.Context, requestID, participantUserID int64) error {
	g.record("AcceptParticipant")
	if g.acceptFn != nil {
		return g.acceptFn(ctx, requestID, participantUserID)
	}
	return nil
}

func (g *stubGateway) RejectParticipant(ctx context.Context, participantID int64) error {
	g.record("RejectParticipant")
	if g.rejectFn != nil {
		return g.rejectFn(ctx, participantID)
	}
	return nil
}

func (g *stubGateway) SubmitRating(ctx context.Context, input SubmitRatingInput) (rating.Rating, error) {
	g.record("SubmitRating")
	if g.submitRatingFn != nil {
		return g.submitRatingFn(ctx, input)
	}
	return rating.Rating{}, nil
}

func (g *stubGateway) ListUserRatings(ctx context.Context, userID int64) ([]rating.CompleteRating, error) {
	g.record("ListUserRatings")
	if g.listRatingsFn != nil {
		return g.listRatingsFn(ctx, userID)
	}
	return nil, nil
}

func (g *stubGateway) GetUserProfile(ctx context.Context, userID int64) (user.Profile, error) {
	g.record("GetUserProfile")
	if g.getProfileFn != nil {
		return g.getProfileFn(ctx, userID)
	}
	return user.Profile{}, nil
}

func (g *stubGateway) UpdateProfile(ctx context.Context, input UpdateProfileInput) (user.Profile, error) {
	g.record("UpdateProfile")
	if g.updateProfileFn != nil {
		return g.updateProfileFn(ctx, input)
	}
	return user.Profile{}, nil
}

func (g *stubGateway) Login(ctx context.Context, creds user.Credentials) (user.AuthUser, error) {
	g.record("Login")
	if g.loginFn != nil {
		return g.loginFn(ctx, creds)
	}
	return user.AuthUser{}, nil
}

func (g *stubGateway) Register(ctx context.Context, input RegisterInput) (user.AuthUser, error) {
	g.record("Register")
	if g.registerFn != nil {
		return g.registerFn(ctx, input)
	}
	return user.AuthUser{}, nil
}

func (g *stubGateway) IsLoggedIn(ctx context.Context) (user.LoginStatus, error) {
	g.record("IsLoggedIn")
	if g.isLoggedInFn != nil {
		return g.isLoggedInFn(ctx)
	}
	return user.LoginStatus{}, nil
}
