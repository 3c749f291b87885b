package http

import (
	"net/http"

	"github.com/nibbleworks/forkful/internal/recipes/service"
	"github.com/nibbleworks/forkful/pkg/httpx"
	"github.com/nibbleworks/forkful/pkg/recipesdk"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleRegister creates a new user account.
//
//	@Summary		Register a new user
//	@Description	Creates an account with email, password and optional display name. The email's domain part is stored lower-cased.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		recipesdk.RegisterUserRequest	true	"Registration payload"
//	@Success		201		{object}	recipesdk.UserResponse
//	@Failure		400		{object}	recipesdk.ValidationErrorResponse	"Validation failure"
//	@Failure		500		{object}	recipesdk.ErrorResponse
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req recipesdk.RegisterUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	ve := &recipesdk.ValidationError{}
	if req.Email == "" {
		ve.Add("email", "this field is required")
	}
	if req.Password == "" {
		ve.Add("password", "this field is required")
	}
	if !ve.Empty() {
		ve.WriteError(w)
		return
	}

	u, err := h.UserService.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}

// HandleGetMe returns the authenticated user's profile.
//
//	@Summary	Get own profile
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	recipesdk.UserResponse
//	@Failure	401	{object}	recipesdk.ErrorResponse	"Invalid or missing token"
//	@Router		/v1/users/me [get].
func (h *UsersHandler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	u, err := h.UserService.GetProfile(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandleUpdateMe applies a partial update to the authenticated user.
//
//	@Summary		Update own profile
//	@Description	Absent fields are left untouched. Sending a password re-hashes the credential.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		recipesdk.UpdateUserRequest	true	"Partial profile update"
//	@Success		200		{object}	recipesdk.UserResponse
//	@Failure		400		{object}	recipesdk.ValidationErrorResponse
//	@Failure		401		{object}	recipesdk.ErrorResponse
//	@Router			/v1/users/me [patch].
func (h *UsersHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req recipesdk.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	u, err := h.UserService.UpdateProfile(ctx, httpx.UserIDFromContext(ctx), service.UpdateProfileParams{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}
