package http

import (
	"net/http"
	"strconv"

	"github.com/nibbleworks/forkful/internal/recipes/domain"
	"github.com/nibbleworks/forkful/internal/recipes/service"
	"github.com/nibbleworks/forkful/pkg/httpx"
	"github.com/nibbleworks/forkful/pkg/recipesdk"
)

// AttributesHandler serves both /v1/tags and /v1/ingredients; the kind picks
// the backing table.
type AttributesHandler struct {
	AttributeService *service.AttributeService
	Kind             domain.Kind
}

func attributeIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		recipesdk.ErrNotFound.WriteError(w)
		return 0, false
	}
	return id, true
}

// HandleList lists the caller's tags or ingredients.
//
//	@Summary		List tags
//	@Description	Returns the caller's tags ordered by name descending. With assigned_only=1 only tags linked to at least one recipe are returned.
//	@Tags			Attributes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			assigned_only	query		int	false	"1 to restrict to assigned records"
//	@Success		200				{array}		recipesdk.AttributeResponse
//	@Failure		401				{object}	recipesdk.ErrorResponse
//	@Router			/v1/tags [get].
func (h *AttributesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assignedOnly := r.URL.Query().Get("assigned_only") == "1"

	attrs, err := h.AttributeService.List(ctx, httpx.UserIDFromContext(ctx), h.Kind, assignedOnly)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAttributeResponses(attrs))
}

// HandleUpdate renames a tag or ingredient.
//
//	@Summary	Rename a tag
//	@Tags		Attributes
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Record ID"
//	@Param		request	body		recipesdk.UpdateAttributeRequest	true	"New name"
//	@Success	200		{object}	recipesdk.AttributeResponse
//	@Failure	400		{object}	recipesdk.ValidationErrorResponse
//	@Failure	401		{object}	recipesdk.ErrorResponse
//	@Failure	404		{object}	recipesdk.ErrorResponse
//	@Router		/v1/tags/{id} [patch].
func (h *AttributesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := attributeIDFromPath(w, r)
	if !ok {
		return
	}

	var req recipesdk.UpdateAttributeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if req.Name == "" {
		recipesdk.NewValidationError("name", "this field is required").WriteError(w)
		return
	}

	attr, err := h.AttributeService.UpdateName(ctx, httpx.UserIDFromContext(ctx), h.Kind, id, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, recipesdk.AttributeResponse{ID: attr.ID, Name: attr.Name})
}

// HandleDelete removes a tag or ingredient; recipes keep their other
// associations.
//
//	@Summary	Delete a tag
//	@Tags		Attributes
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Record ID"
//	@Success	204	"Deleted"
//	@Failure	401	{object}	recipesdk.ErrorResponse
//	@Failure	404	{object}	recipesdk.ErrorResponse
//	@Router		/v1/tags/{id} [delete].
func (h *AttributesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := attributeIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.AttributeService.Delete(ctx, httpx.UserIDFromContext(ctx), h.Kind, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
