package recipesdk

// ============================================================================
// Users
// ============================================================================

// RegisterUserRequest creates a new user account.
type RegisterUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// UpdateUserRequest updates the authenticated user. Absent fields are left
// untouched; the password hash is only recomputed when a password is sent.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Name     *string `json:"name,omitempty"`
}

// UserResponse is the public shape of a user. The credential never appears.
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenRequest exchanges email+password for an API token.
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the opaque bearer token.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"` // always "Bearer"
	ExpiresIn int64  `json:"expires_in"` // seconds until expiry
}

// ============================================================================
// Recipes
// ============================================================================

// AttributeRef names a tag or ingredient inside a recipe payload. Records are
// created on demand, so only the name is accepted.
type AttributeRef struct {
	Name string `json:"name"`
}

// CreateRecipeRequest creates a recipe. Price is a decimal string with at
// most two fractional digits, e.g. "5.25".
type CreateRecipeRequest struct {
	Title       string          `json:"title"`
	TimeMinutes *int            `json:"time_minutes"`
	Price       *string         `json:"price"`
	Link        string          `json:"link,omitempty"`
	Description string          `json:"description,omitempty"`
	Tags        *[]AttributeRef `json:"tags,omitempty"`
	Ingredients *[]AttributeRef `json:"ingredients,omitempty"`
}

// UpdateRecipeRequest updates a recipe. nil fields are left untouched. For
// Tags/Ingredients: nil leaves associations alone, an empty list clears them,
// a non-empty list replaces them.
type UpdateRecipeRequest struct {
	Title       *string         `json:"title,omitempty"`
	TimeMinutes *int            `json:"time_minutes,omitempty"`
	Price       *string         `json:"price,omitempty"`
	Link        *string         `json:"link,omitempty"`
	Description *string         `json:"description,omitempty"`
	Tags        *[]AttributeRef `json:"tags,omitempty"`
	Ingredients *[]AttributeRef `json:"ingredients,omitempty"`
}

// AttributeResponse is the public shape of a tag or ingredient.
type AttributeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RecipeSummary is the list shape of a recipe; it omits the description.
type RecipeSummary struct {
	ID          int64               `json:"id"`
	Title       string              `json:"title"`
	TimeMinutes int                 `json:"time_minutes"`
	Price       string              `json:"price"`
	Link        string              `json:"link"`
	Tags        []AttributeResponse `json:"tags"`
	Ingredients []AttributeResponse `json:"ingredients"`
	Image       string              `json:"image,omitempty"`
}

// RecipeDetail is the item shape of a recipe.
type RecipeDetail struct {
	RecipeSummary
	Description string `json:"description"`
}

// UploadImageResponse reports the stored image reference.
type UploadImageResponse struct {
	ID    int64  `json:"id"`
	Image string `json:"image"`
}

// ============================================================================
// Tags / Ingredients
// ============================================================================

// UpdateAttributeRequest renames a tag or ingredient.
type UpdateAttributeRequest struct {
	Name string `json:"name"`
}

// ============================================================================
// System
// ============================================================================

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}
