package http

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/nibbleworks/forkful/internal/recipes/service"
	"github.com/nibbleworks/forkful/pkg/httpx"
	"github.com/nibbleworks/forkful/pkg/recipesdk"
)

// maxImageBytes caps recipe image uploads at 10 MiB.
const maxImageBytes = 10 << 20

type RecipeImageHandler struct {
	RecipeService *service.RecipeService
}

// ServeHTTP accepts a multipart image upload for a recipe.
//
//	@Summary		Upload a recipe image
//	@Description	Accepts a multipart form with an "image" field. The content is sniffed; anything that is not an image is rejected. A previously stored image is replaced.
//	@Tags			Recipes
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		int		true	"Recipe ID"
//	@Param			image	formData	file	true	"Image file"
//	@Success		200		{object}	recipesdk.UploadImageResponse
//	@Failure		400		{object}	recipesdk.ValidationErrorResponse	"Missing or non-image payload"
//	@Failure		401		{object}	recipesdk.ErrorResponse
//	@Failure		404		{object}	recipesdk.ErrorResponse
//	@Router			/v1/recipes/{id}/image [post].
func (h *RecipeImageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := recipeIDFromPath(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		recipesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		recipesdk.NewValidationError("image", "this field is required").WriteError(w)
		return
	}
	defer file.Close()

	// Sniff the real content type from the payload; the client-provided
	// header is not trusted.
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		recipesdk.ErrServerError.WriteError(w)
		return
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		recipesdk.NewValidationError("image", "upload a valid image").WriteError(w)
		return
	}

	payload := io.MultiReader(bytes.NewReader(head), file)
	rec, err := h.RecipeService.UploadImage(ctx, httpx.UserIDFromContext(ctx), id, contentType, payload, -1)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, recipesdk.UploadImageResponse{
		ID:    rec.ID,
		Image: rec.ImageRef,
	})
}
