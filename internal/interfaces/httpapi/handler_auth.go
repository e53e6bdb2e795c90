package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gameon-app/gameon-go/internal/domain/user"
	"github.com/gameon-app/gameon-go/internal/usecase"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Register")
	defer span.End()

	var input usecase.RegisterInput
	if err := h.decodeBody(r, &input); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, input); err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.users.Create(ctx, user.Profile{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Sports: input.Sports,
	}, input.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "register failed", "email", input.Email, "error", err)
		writeError(ctx, w, err)
		return
	}

	token, err := h.tokens.Issue(ctx, profile.ID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, user.AuthUser{Profile: profile, Token: token})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var creds user.Credentials
	if err := h.decodeBody(r, &creds); err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.users.Authenticate(ctx, creds.Email, creds.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "email", creds.Email, "error", err)
		writeError(ctx, w, err)
		return
	}

	token, err := h.tokens.Issue(ctx, profile.ID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, user.AuthUser{Profile: profile, Token: token})
}

// IsLoggedIn answers 200 for both outcomes; an absent or stale token is a
// negative answer, not an authorization failure.
func (h *Handler) IsLoggedIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IsLoggedIn")
	defer span.End()

	token, err := bearerToken(r)
	if err != nil {
		writeJSON(ctx, w, http.StatusOK, user.LoginStatus{IsLoggedIn: false})
		return
	}

	principal, err := h.verifier.VerifyAccessToken(ctx, token)
	if err != nil {
		writeJSON(ctx, w, http.StatusOK, user.LoginStatus{IsLoggedIn: false})
		return
	}

	writeJSON(ctx, w, http.StatusOK, user.LoginStatus{IsLoggedIn: true, UserID: &principal.UserID})
}

func (h *Handler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUserProfile")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.users.GetByID(ctx, userID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateProfile")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var input usecase.UpdateProfileInput
	if err := h.decodeBody(r, &input); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, input); err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.users.Update(ctx, user.Profile{
		ID:     principal.UserID,
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Sports: input.Sports,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "profile update failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, profile)
}
