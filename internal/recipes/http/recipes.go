package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nibbleworks/forkful/internal/recipes/domain"
	"github.com/nibbleworks/forkful/internal/recipes/service"
	"github.com/nibbleworks/forkful/pkg/httpx"
	"github.com/nibbleworks/forkful/pkg/recipesdk"
)

type RecipesHandler struct {
	RecipeService *service.RecipeService
}

// recipeIDFromPath parses the {id} path segment. Non-numeric IDs are
// indistinguishable from missing recipes.
func recipeIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		recipesdk.ErrNotFound.WriteError(w)
		return 0, false
	}
	return id, true
}

// refNames validates a list of attribute references and extracts the names.
// Order is preserved; empty names fail validation.
func refNames(refs []recipesdk.AttributeRef, field string, ve *recipesdk.ValidationError) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.Name == "" {
			ve.Add(field, "names must not be blank")
			return nil
		}
		names = append(names, ref.Name)
	}
	return names
}

func parsePriceField(s string, ve *recipesdk.ValidationError) domain.Price {
	p, err := domain.ParsePrice(s)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPriceNegative):
			ve.Add("price", "price must not be negative")
		case errors.Is(err, domain.ErrPriceTooLarge):
			ve.Add("price", "price must not exceed 999.99")
		default:
			ve.Add("price", "enter a decimal with at most two fractional digits")
		}
	}
	return p
}

// filterIDs parses a comma-separated ID list query parameter. Any
// non-integer token fails the whole parameter.
func filterIDs(r *http.Request, param string, ve *recipesdk.ValidationError) []int64 {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return nil
	}
	ids, err := httpx.ParseIDList(raw)
	if err != nil {
		ve.Add(param, "expected a comma-separated list of integer ids")
		return nil
	}
	return ids
}

// HandleList returns the caller's recipes, newest first.
//
//	@Summary		List recipes
//	@Description	Returns the caller's recipes in summary shape (no description). The tags and ingredients parameters each take a comma-separated list of IDs and narrow the result to recipes linked to at least one of them.
//	@Tags			Recipes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			tags		query		string	false	"Comma-separated tag IDs"
//	@Param			ingredients	query		string	false	"Comma-separated ingredient IDs"
//	@Success		200			{array}		recipesdk.RecipeSummary
//	@Failure		400			{object}	recipesdk.ValidationErrorResponse	"Malformed filter"
//	@Failure		401			{object}	recipesdk.ErrorResponse
//	@Router			/v1/recipes [get].
func (h *RecipesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ve := &recipesdk.ValidationError{}
	tagIDs := filterIDs(r, "tags", ve)
	ingredientIDs := filterIDs(r, "ingredients", ve)
	if !ve.Empty() {
		ve.WriteError(w)
		return
	}

	recipes, err := h.RecipeService.List(ctx, httpx.UserIDFromContext(ctx), tagIDs, ingredientIDs)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]recipesdk.RecipeSummary, len(recipes))
	for i, rec := range recipes {
		out[i] = toRecipeSummary(rec)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate creates a recipe for the caller.
//
//	@Summary		Create a recipe
//	@Description	Nested tag and ingredient names are resolved against the caller's existing records and created on first use. Ownership always comes from the token, never the payload.
//	@Tags			Recipes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		recipesdk.CreateRecipeRequest	true	"Recipe payload"
//	@Success		201		{object}	recipesdk.RecipeDetail
//	@Failure		400		{object}	recipesdk.ValidationErrorResponse
//	@Failure		401		{object}	recipesdk.ErrorResponse
//	@Router			/v1/recipes [post].
func (h *RecipesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req recipesdk.CreateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	ve := &recipesdk.ValidationError{}
	params := service.CreateRecipeParams{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	}

	if req.Title == "" {
		ve.Add("title", "this field is required")
	}
	switch {
	case req.TimeMinutes == nil:
		ve.Add("time_minutes", "this field is required")
	case *req.TimeMinutes < 0:
		ve.Add("time_minutes", "must not be negative")
	default:
		params.TimeMinutes = *req.TimeMinutes
	}
	if req.Price == nil {
		ve.Add("price", "this field is required")
	} else {
		params.Price = parsePriceField(*req.Price, ve)
	}
	if req.Tags != nil {
		params.Tags = refNames(*req.Tags, "tags", ve)
	}
	if req.Ingredients != nil {
		params.Ingredients = refNames(*req.Ingredients, "ingredients", ve)
	}
	if !ve.Empty() {
		ve.WriteError(w)
		return
	}

	rec, err := h.RecipeService.Create(ctx, httpx.UserIDFromContext(ctx), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toRecipeDetail(rec))
}

// HandleGet returns one recipe in detail shape.
//
//	@Summary	Get a recipe
//	@Tags		Recipes
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Recipe ID"
//	@Success	200	{object}	recipesdk.RecipeDetail
//	@Failure	401	{object}	recipesdk.ErrorResponse
//	@Failure	404	{object}	recipesdk.ErrorResponse	"Missing, or owned by someone else"
//	@Router		/v1/recipes/{id} [get].
func (h *RecipesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := recipeIDFromPath(w, r)
	if !ok {
		return
	}

	rec, err := h.RecipeService.Get(ctx, httpx.UserIDFromContext(ctx), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRecipeDetail(rec))
}

// HandlePut replaces a recipe. The scalar fields title, time_minutes and
// price are required; association lists follow the same clear-vs-omit rules
// as PATCH.
//
//	@Summary	Replace a recipe
//	@Tags		Recipes
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Recipe ID"
//	@Param		request	body		recipesdk.UpdateRecipeRequest	true	"Full recipe payload"
//	@Success	200		{object}	recipesdk.RecipeDetail
//	@Failure	400		{object}	recipesdk.ValidationErrorResponse
//	@Failure	401		{object}	recipesdk.ErrorResponse
//	@Failure	404		{object}	recipesdk.ErrorResponse
//	@Router		/v1/recipes/{id} [put].
func (h *RecipesHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

// HandlePatch applies a sparse update to a recipe.
//
//	@Summary		Update a recipe
//	@Description	Absent fields are left untouched. For tags and ingredients an empty list clears the associations while keeping the records; a non-empty list replaces them.
//	@Tags			Recipes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Recipe ID"
//	@Param			request	body		recipesdk.UpdateRecipeRequest	true	"Partial recipe payload"
//	@Success		200		{object}	recipesdk.RecipeDetail
//	@Failure		400		{object}	recipesdk.ValidationErrorResponse
//	@Failure		401		{object}	recipesdk.ErrorResponse
//	@Failure		404		{object}	recipesdk.ErrorResponse
//	@Router			/v1/recipes/{id} [patch].
func (h *RecipesHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *RecipesHandler) update(w http.ResponseWriter, r *http.Request, full bool) {
	ctx := r.Context()

	id, ok := recipeIDFromPath(w, r)
	if !ok {
		return
	}

	var req recipesdk.UpdateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	ve := &recipesdk.ValidationError{}
	params := service.UpdateRecipeParams{
		Link:        req.Link,
		Description: req.Description,
	}

	if full {
		if req.Title == nil {
			ve.Add("title", "this field is required")
		}
		if req.TimeMinutes == nil {
			ve.Add("time_minutes", "this field is required")
		}
		if req.Price == nil {
			ve.Add("price", "this field is required")
		}
	}

	if req.Title != nil {
		if *req.Title == "" {
			ve.Add("title", "this field may not be blank")
		}
		params.Title = req.Title
	}
	if req.TimeMinutes != nil {
		if *req.TimeMinutes < 0 {
			ve.Add("time_minutes", "must not be negative")
		}
		params.TimeMinutes = req.TimeMinutes
	}
	if req.Price != nil {
		p := parsePriceField(*req.Price, ve)
		params.Price = &p
	}
	if req.Tags != nil {
		names := refNames(*req.Tags, "tags", ve)
		params.Tags = &names
	}
	if req.Ingredients != nil {
		names := refNames(*req.Ingredients, "ingredients", ve)
		params.Ingredients = &names
	}
	if !ve.Empty() {
		ve.WriteError(w)
		return
	}

	rec, err := h.RecipeService.Update(ctx, httpx.UserIDFromContext(ctx), id, params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRecipeDetail(rec))
}

// HandleDelete removes a recipe.
//
//	@Summary	Delete a recipe
//	@Tags		Recipes
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Recipe ID"
//	@Success	204	"Deleted"
//	@Failure	401	{object}	recipesdk.ErrorResponse
//	@Failure	404	{object}	recipesdk.ErrorResponse
//	@Router		/v1/recipes/{id} [delete].
func (h *RecipesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := recipeIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.RecipeService.Delete(ctx, httpx.UserIDFromContext(ctx), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
