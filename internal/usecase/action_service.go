package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/gameon-app/gameon-go/internal/domain/participant"
	"github.com/gameon-app/gameon-go/internal/domain/request"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type cacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// ActionService drives the membership and lifecycle actions: hosting,
// cancelling, joining, and the host-side accept/reject. Every successful
// mutation re-pulls the joined set from the gateway and drops the cached
// collection, so the next render reflects server truth rather than a locally
// patched guess.
type ActionService struct {
	gateway Gateway
	state   *JoinState
	cache   cacheInvalidator
}

func NewActionService(gateway Gateway, state *JoinState, cache cacheInvalidator) *ActionService {
	return &ActionService{
		gateway: gateway,
		state:   state,
		cache:   cache,
	}
}

// Join enrols the viewer as a pending participant. The open check and the
// already-joined check run against local state first; a request that is not
// Open is rejected without touching the network.
func (s *ActionService) Join(ctx context.Context, viewerID int64, target request.PlayRequest) (participant.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActionService.Join")
	defer span.End()

	if viewerID <= 0 || target.ID <= 0 {
		return participant.Participant{}, fmt.Errorf("%w: viewer and request ids are required", ErrInvalidInput)
	}
	if !target.IsOpen() {
		return participant.Participant{}, fmt.Errorf("%w: request %d is %s", ErrNotJoinable, target.ID, target.Status)
	}
	if target.HostUserID == viewerID {
		return participant.Participant{}, fmt.Errorf("%w: host cannot join own request", ErrInvalidInput)
	}
	if s.state.Has(target.ID) {
		return participant.Participant{}, fmt.Errorf("%w: already joined request %d", ErrInvalidInput, target.ID)
	}

	joined, err := s.gateway.JoinRequest(ctx, viewerID, target.ID)
	if err != nil {
		return participant.Participant{}, fmt.Errorf("join request: %w", err)
	}

	s.refreshJoinState(ctx)
	return joined, nil
}

// Create hosts a new play request on behalf of the viewer.
func (s *ActionService) Create(ctx context.Context, input CreateRequestInput) (request.PlayRequest, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActionService.Create")
	defer span.End()

	if err := validate.StructCtx(ctx, input); err != nil {
		return request.PlayRequest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.gateway.CreateRequest(ctx, input)
	if err != nil {
		return request.PlayRequest{}, fmt.Errorf("create request: %w", err)
	}

	s.invalidate(ctx)
	return created, nil
}

// Delete cancels a hosted request. Only the host may cancel.
func (s *ActionService) Delete(ctx context.Context, viewerID int64, target request.PlayRequest) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActionService.Delete")
	defer span.End()

	if target.ID <= 0 {
		return fmt.Errorf("%w: request id is required", ErrInvalidInput)
	}
	if target.HostUserID != viewerID {
		return fmt.Errorf("%w: only the host can cancel request %d", ErrUnauthorized, target.ID)
	}

	if err := s.gateway.DeleteRequest(ctx, target.ID); err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	s.refreshJoinState(ctx)
	return nil
}

// Participants lists everyone enrolled on a request, pending and confirmed.
func (s *ActionService) Participants(ctx context.Context, requestID int64) ([]participant.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActionService.Participants")
	defer span.End()

	if requestID <= 0 {
		return nil, fmt.Errorf("%w: request id is required", ErrInvalidInput)
	}

	listed, err := s.gateway.ListParticipants(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return listed, nil
}

// Accept confirms a pending participant. Only the host of the request may
// accept.
func (s *ActionService) Accept(ctx context.Context, viewerID int64, target request.PlayRequest, participantUserID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActionService.Accept")
	defer span.End()

	if target.ID <= 0 || participantUserID <= 0 {
		return fmt.Errorf("%w: request and participant ids are required", ErrInvalidInput)
	}
	if target.HostUserID != viewerID {
		return fmt.Errorf("%w: only the host can accept on request %d", ErrUnauthorized, target.ID)
	}

	if err := s.gateway.AcceptParticipant(ctx, target.ID, participantUserID); err != nil {
		return fmt.Errorf("accept participant: %w", err)
	}

	s.invalidate(ctx)
	return nil
}

// Reject removes a participant record. Only the host of the request may
// reject.
func (s *ActionService) Reject(ctx context.Context, viewerID int64, target request.PlayRequest, participantID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActionService.Reject")
	defer span.End()

	if target.ID <= 0 || participantID <= 0 {
		return fmt.Errorf("%w: request and participant ids are required", ErrInvalidInput)
	}
	if target.HostUserID != viewerID {
		return fmt.Errorf("%w: only the host can reject on request %d", ErrUnauthorized, target.ID)
	}

	if err := s.gateway.RejectParticipant(ctx, participantID); err != nil {
		return fmt.Errorf("reject participant: %w", err)
	}

	s.invalidate(ctx)
	return nil
}

// refreshJoinState re-pulls the joined ids after a membership change. A
// failed re-pull keeps the previous snapshot; the next dashboard refresh
// heals it.
func (s *ActionService) refreshJoinState(ctx context.Context) {
	if ids, err := s.gateway.ListJoinedRequestIDs(ctx); err == nil {
		s.state.Replace(ids)
	}
	s.invalidate(ctx)
}

func (s *ActionService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
