package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gameon-app/gameon-go/internal/domain/participant"
	"github.com/gameon-app/gameon-go/internal/domain/request"
	"github.com/gameon-app/gameon-go/internal/usecase"
)

type joinRequestBody struct {
	UserID    int64 `json:"user_id" validate:"required,gt=0"`
	RequestID int64 `json:"request_id" validate:"required,gt=0"`
}

type confirmParticipantBody struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRequests")
	defer span.End()

	items, err := h.requests.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list requests failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]request.PlayRequest, 0, len(items))
	for _, item := range items {
		out = append(out, h.withHostContact(ctx, item))
	}

	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRequest")
	defer span.End()

	requestID, err := pathID(r, "requestID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.requests.Get(ctx, requestID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, h.withHostContact(ctx, item))
}

func (h *Handler) ListJoinedRequests(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListJoinedRequests")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	memberships, err := h.participants.ListByUser(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list joined requests failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	joined := make([]int64, 0, len(memberships))
	for _, membership := range memberships {
		if membership.Status == participant.StatusCancelled {
			continue
		}
		joined = append(joined, membership.RequestID)
	}

	writeJSON(ctx, w, http.StatusOK, map[string][]int64{"joined_requests": joined})
}

func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateRequest")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var input usecase.CreateRequestInput
	if err := h.decodeBody(r, &input); err != nil {
		writeError(ctx, w, err)
		return
	}
	input.UserID = principal.UserID
	if err := h.validateRequest(ctx, input); err != nil {
		writeError(ctx, w, err)
		return
	}

	scheduled, err := time.Parse(time.RFC3339, input.Time)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: time must be RFC3339", usecase.ErrInvalidInput))
		return
	}

	created, err := h.requests.Create(ctx, request.PlayRequest{
		HostUserID: principal.UserID,
		Sport:      input.Sport,
		Location:   input.Location,
		Scheduled:  scheduled,
		CourtPrice: input.CourtPrice,
		Status:     request.StatusOpen,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create request failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, h.withHostContact(ctx, created))
}

func (h *Handler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteRequest")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	requestID, err := pathID(r, "requestID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.requests.Get(ctx, requestID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if item.HostUserID != principal.UserID {
		writeError(ctx, w, fmt.Errorf("%w: only the host can delete a request", usecase.ErrUnauthorized))
		return
	}

	if err := h.requests.Delete(ctx, requestID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusNoContent, nil)
}

func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListParticipants")
	defer span.End()

	requestID, err := pathID(r, "requestID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if _, err := h.requests.Get(ctx, requestID); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.participants.ListByRequest(ctx, requestID)
	if err != nil {
		h.logger.WarnContext(ctx, "list participants failed", "request_id", requestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) JoinRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinRequest")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	requestID, err := pathID(r, "requestID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var body joinRequestBody
	if err := h.decodeBody(r, &body); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, body); err != nil {
		writeError(ctx, w, err)
		return
	}
	if body.UserID != principal.UserID {
		writeError(ctx, w, fmt.Errorf("%w: cannot join on behalf of another user", usecase.ErrUnauthorized))
		return
	}
	if body.RequestID != requestID {
		writeError(ctx, w, fmt.Errorf("%w: request id mismatch", usecase.ErrInvalidInput))
		return
	}

	item, err := h.requests.Get(ctx, requestID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !item.IsOpen() {
		writeError(ctx, w, fmt.Errorf("%w: request %d is %s", usecase.ErrInvalidInput, requestID, item.Status))
		return
	}
	if item.HostUserID == principal.UserID {
		writeError(ctx, w, fmt.Errorf("%w: hosts cannot join their own request", usecase.ErrInvalidInput))
		return
	}

	created, err := h.participants.Create(ctx, participant.Participant{
		RequestID: requestID,
		UserID:    principal.UserID,
		Name:      principal.Name,
		Status:    participant.StatusPending,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "join request failed", "request_id", requestID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, created)
}

func (h *Handler) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ConfirmParticipant")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	requestID, err := pathID(r, "requestID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var body confirmParticipantBody
	if err := h.decodeBody(r, &body); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, body); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.requests.Get(ctx, requestID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if item.HostUserID != principal.UserID {
		writeError(ctx, w, fmt.Errorf("%w: only the host can accept participants", usecase.ErrUnauthorized))
		return
	}

	memberships, err := h.participants.ListByRequest(ctx, requestID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var target *participant.Participant
	for i := range memberships {
		if memberships[i].UserID == body.UserID && memberships[i].Status != participant.StatusCancelled {
			target = &memberships[i]
			break
		}
	}
	if target == nil {
		writeError(ctx, w, fmt.Errorf("%w: user %d has not joined request %d", usecase.ErrNotFound, body.UserID, requestID))
		return
	}

	if err := h.participants.UpdateStatus(ctx, target.ID, participant.StatusConfirmed); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.requests.UpdateStatus(ctx, requestID, request.StatusAccepted); err != nil {
		writeError(ctx, w, err)
		return
	}

	target.Status = participant.StatusConfirmed
	writeJSON(ctx, w, http.StatusOK, target)
}

func (h *Handler) RejectParticipant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RejectParticipant")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	participantID, err := pathID(r, "participantID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	membership, err := h.participants.Get(ctx, participantID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.requests.Get(ctx, membership.RequestID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if item.HostUserID != principal.UserID {
		writeError(ctx, w, fmt.Errorf("%w: only the host can reject participants", usecase.ErrUnauthorized))
		return
	}

	if err := h.participants.UpdateStatus(ctx, participantID, participant.StatusCancelled); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusNoContent, nil)
}
