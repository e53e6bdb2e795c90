package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gameon-app/gameon-go/internal/domain/rating"
	"github.com/gameon-app/gameon-go/internal/usecase"
)

func (h *Handler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitRating")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var input usecase.SubmitRatingInput
	if err := h.decodeBody(r, &input); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, input); err != nil {
		writeError(ctx, w, err)
		return
	}
	if input.GivenBy != principal.UserID {
		writeError(ctx, w, fmt.Errorf("%w: cannot rate on behalf of another user", usecase.ErrUnauthorized))
		return
	}
	if input.GivenBy == input.GivenTo {
		writeError(ctx, w, fmt.Errorf("%w: cannot rate yourself", usecase.ErrInvalidInput))
		return
	}

	if _, err := h.requests.Get(ctx, input.RequestID); err != nil {
		writeError(ctx, w, err)
		return
	}
	if _, err := h.users.GetByID(ctx, input.GivenTo); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.ratings.Create(ctx, rating.Rating{
		GivenBy:   input.GivenBy,
		GivenTo:   input.GivenTo,
		RequestID: input.RequestID,
		Rating:    input.Rating,
		Feedback:  input.Feedback,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit rating failed", "request_id", input.RequestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, created)
}

func (h *Handler) ListUserRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUserRatings")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if _, err := h.users.GetByID(ctx, userID); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.ratings.ListForUser(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list ratings failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]rating.CompleteRating, 0, len(items))
	for _, item := range items {
		complete := rating.CompleteRating{
			ID:        item.ID,
			GivenBy:   item.GivenBy,
			GivenTo:   item.GivenTo,
			RequestID: item.RequestID,
			Rating:    item.Rating,
			Feedback:  item.Feedback,
			CreatedAt: item.CreatedAt,
		}
		if giver, err := h.users.GetByID(ctx, item.GivenBy); err == nil {
			complete.GivenByName = giver.Name
		}
		if played, err := h.requests.Get(ctx, item.RequestID); err == nil {
			complete.Sport = played.Sport
		}
		out = append(out, complete)
	}

	writeJSON(ctx, w, http.StatusOK, out)
}
