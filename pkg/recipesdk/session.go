package recipesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Session is an authenticated view of the API, bound to one bearer token.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the opaque bearer token backing this session.
func (s *Session) Token() string { return s.token }

func (s *Session) doAuthRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.token)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

func (s *Session) doAuthJSON(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return s.doAuthRequest(ctx, method, path, bytes.NewReader(buf), map[string]string{
		"Content-Type": "application/json",
	})
}

// ============================================================================
// Profile
// ============================================================================

// GetProfile retrieves the authenticated user's profile.
func (s *Session) GetProfile(ctx context.Context) (*UserResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/users/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeResponse(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial update to the authenticated user.
func (s *Session) UpdateProfile(ctx context.Context, req UpdateUserRequest) (*UserResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPatch, "/v1/users/me", req)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeResponse(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// ============================================================================
// Recipes
// ============================================================================

// ListRecipes returns the caller's recipes, optionally narrowed by tag and
// ingredient IDs.
func (s *Session) ListRecipes(ctx context.Context, tagIDs, ingredientIDs []int64) ([]RecipeSummary, error) {
	path := "/v1/recipes"
	query := url.Values{}
	if len(tagIDs) > 0 {
		query.Set("tags", joinIDs(tagIDs))
	}
	if len(ingredientIDs) > 0 {
		query.Set("ingredients", joinIDs(ingredientIDs))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var recipes []RecipeSummary
	if err := decodeResponse(resp, &recipes, http.StatusOK); err != nil {
		return nil, err
	}
	return recipes, nil
}

// CreateRecipe creates a recipe.
func (s *Session) CreateRecipe(ctx context.Context, req CreateRecipeRequest) (*RecipeDetail, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/recipes", req)
	if err != nil {
		return nil, err
	}

	var recipe RecipeDetail
	if err := decodeResponse(resp, &recipe, http.StatusCreated); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipe retrieves one recipe in detail shape.
func (s *Session) GetRecipe(ctx context.Context, id int64) (*RecipeDetail, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/recipes/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var recipe RecipeDetail
	if err := decodeResponse(resp, &recipe, http.StatusOK); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe applies a sparse update.
func (s *Session) UpdateRecipe(ctx context.Context, id int64, req UpdateRecipeRequest) (*RecipeDetail, error) {
	return s.updateRecipe(ctx, http.MethodPatch, id, req)
}

// ReplaceRecipe replaces a recipe; title, time_minutes and price are
// required.
func (s *Session) ReplaceRecipe(ctx context.Context, id int64, req UpdateRecipeRequest) (*RecipeDetail, error) {
	return s.updateRecipe(ctx, http.MethodPut, id, req)
}

func (s *Session) updateRecipe(ctx context.Context, method string, id int64, req UpdateRecipeRequest) (*RecipeDetail, error) {
	resp, err := s.doAuthJSON(ctx, method, fmt.Sprintf("/v1/recipes/%d", id), req)
	if err != nil {
		return nil, err
	}

	var recipe RecipeDetail
	if err := decodeResponse(resp, &recipe, http.StatusOK); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe removes a recipe.
func (s *Session) DeleteRecipe(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, fmt.Sprintf("/v1/recipes/%d", id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// UploadRecipeImage uploads an image for a recipe as a multipart form.
func (s *Session) UploadRecipeImage(ctx context.Context, id int64, filename string, image io.Reader) (*UploadImageResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, fmt.Sprintf("/v1/recipes/%d/image", id), &buf,
		map[string]string{"Content-Type": mw.FormDataContentType()})
	if err != nil {
		return nil, err
	}

	var uploaded UploadImageResponse
	if err := decodeResponse(resp, &uploaded, http.StatusOK); err != nil {
		return nil, err
	}
	return &uploaded, nil
}

// ============================================================================
// Tags / Ingredients
// ============================================================================

// ListTags lists the caller's tags; with assignedOnly only tags linked to a
// recipe are returned.
func (s *Session) ListTags(ctx context.Context, assignedOnly bool) ([]AttributeResponse, error) {
	return s.listAttributes(ctx, "/v1/tags", assignedOnly)
}

// ListIngredients mirrors ListTags for ingredients.
func (s *Session) ListIngredients(ctx context.Context, assignedOnly bool) ([]AttributeResponse, error) {
	return s.listAttributes(ctx, "/v1/ingredients", assignedOnly)
}

func (s *Session) listAttributes(ctx context.Context, path string, assignedOnly bool) ([]AttributeResponse, error) {
	if assignedOnly {
		path += "?assigned_only=1"
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var attrs []AttributeResponse
	if err := decodeResponse(resp, &attrs, http.StatusOK); err != nil {
		return nil, err
	}
	return attrs, nil
}

// RenameTag renames a tag.
func (s *Session) RenameTag(ctx context.Context, id int64, name string) (*AttributeResponse, error) {
	return s.renameAttribute(ctx, fmt.Sprintf("/v1/tags/%d", id), name)
}

// RenameIngredient renames an ingredient.
func (s *Session) RenameIngredient(ctx context.Context, id int64, name string) (*AttributeResponse, error) {
	return s.renameAttribute(ctx, fmt.Sprintf("/v1/ingredients/%d", id), name)
}

func (s *Session) renameAttribute(ctx context.Context, path, name string) (*AttributeResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPatch, path, UpdateAttributeRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var attr AttributeResponse
	if err := decodeResponse(resp, &attr, http.StatusOK); err != nil {
		return nil, err
	}
	return &attr, nil
}

// DeleteTag removes a tag.
func (s *Session) DeleteTag(ctx context.Context, id int64) error {
	return s.deleteAttribute(ctx, fmt.Sprintf("/v1/tags/%d", id))
}

// DeleteIngredient removes an ingredient.
func (s *Session) DeleteIngredient(ctx context.Context, id int64) error {
	return s.deleteAttribute(ctx, fmt.Sprintf("/v1/ingredients/%d", id))
}

func (s *Session) deleteAttribute(ctx context.Context, path string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
