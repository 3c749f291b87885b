package http

import (
	"net/http"

	"github.com/nibbleworks/forkful/internal/recipes/service"
	"github.com/nibbleworks/forkful/pkg/httpx"
	"github.com/nibbleworks/forkful/pkg/recipesdk"
)

type TokenHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP exchanges email and password for an opaque API token.
//
//	@Summary		Issue an API token
//	@Description	Verifies the credentials and returns a bearer token. The response never reveals whether the email exists.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		recipesdk.TokenRequest	true	"Credentials"
//	@Success		200		{object}	recipesdk.TokenResponse
//	@Failure		400		{object}	recipesdk.ValidationErrorResponse
//	@Failure		401		{object}	recipesdk.ErrorResponse	"Credentials rejected"
//	@Router			/v1/users/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req recipesdk.TokenRequest
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

	token, ttl, err := h.TokenService.IssueToken(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, recipesdk.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(ttl.Seconds()),
	})
}
