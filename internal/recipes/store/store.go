package store

import (
	"context"
	"errors"

	"github.com/nibbleworks/forkful/internal/recipes/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Tokens() Tokens
	Recipes() Recipes
	Tags() Attributes
	Ingredients() Attributes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run the multi-step recipe writes atomically.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during token issuance. The email must already
	// be normalized by the caller.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser persists email, name, password hash and the active/staff
	// flags, bumping updated_at. Returns ErrAlreadyExists when the new
	// email is taken.
	UpdateUser(ctx context.Context, u domain.User) error
}

type Tokens interface {
	// CreateToken stores a new API token record.
	CreateToken(ctx context.Context, t domain.APIToken) error

	// GetTokenByHash returns the token by its fingerprint.
	GetTokenByHash(ctx context.Context, hash string) (domain.APIToken, error)

	// RevokeToken flips revoked=1 for the token with the given fingerprint.
	RevokeToken(ctx context.Context, hash string) error

	// DeleteExpiredTokens removes expired and revoked tokens (housekeeping).
	DeleteExpiredTokens(ctx context.Context) error
}

type Recipes interface {
	// CreateRecipe inserts a recipe and returns its generated ID.
	// Associations are linked separately.
	CreateRecipe(ctx context.Context, r domain.Recipe) (int64, error)

	// GetRecipe returns the owner's recipe with tags and ingredients
	// resolved. A recipe owned by someone else yields ErrNotFound, same as
	// a missing ID.
	GetRecipe(ctx context.Context, ownerID string, id int64) (domain.Recipe, error)

	// ListRecipes returns the owner's recipes, newest first, hydrated and
	// de-duplicated. Non-empty tagIDs/ingredientIDs each restrict the
	// result to recipes linked to at least one of the given IDs; both
	// filters combine as an intersection.
	ListRecipes(ctx context.Context, ownerID string, tagIDs, ingredientIDs []int64) ([]domain.Recipe, error)

	// UpdateRecipe persists the scalar recipe fields (owner-scoped).
	UpdateRecipe(ctx context.Context, r domain.Recipe) error

	// DeleteRecipe removes the owner's recipe and its associations.
	DeleteRecipe(ctx context.Context, ownerID string, id int64) error

	// SetRecipeImage updates the stored image reference (owner-scoped).
	SetRecipeImage(ctx context.Context, ownerID string, id int64, ref string) error

	// LinkTag associates a tag with a recipe; linking twice is a no-op.
	LinkTag(ctx context.Context, recipeID, tagID int64) error

	// ClearTags removes all tag associations without touching tag records.
	ClearTags(ctx context.Context, recipeID int64) error

	// LinkIngredient / ClearIngredients mirror the tag operations.
	LinkIngredient(ctx context.Context, recipeID, ingredientID int64) error
	ClearIngredients(ctx context.Context, recipeID int64) error
}

// Attributes is the shared repository contract for tags and ingredients; the
// two tables are structurally identical.
type Attributes interface {
	// GetByOwnerAndName looks up the (owner, name) natural key.
	GetByOwnerAndName(ctx context.Context, ownerID, name string) (domain.Attribute, error)

	// Create inserts a record and returns its generated ID. A duplicate
	// (owner, name) pair yields ErrAlreadyExists; the get-or-create logic
	// recovers by re-fetching.
	Create(ctx context.Context, ownerID, name string) (int64, error)

	// GetByID returns the owner's record by ID.
	GetByID(ctx context.Context, ownerID string, id int64) (domain.Attribute, error)

	// List returns the owner's records ordered by name descending. When
	// assignedOnly is set, only records with at least one recipe
	// association are returned.
	List(ctx context.Context, ownerID string, assignedOnly bool) ([]domain.Attribute, error)

	// UpdateName renames the owner's record. A name collision within the
	// owner yields ErrAlreadyExists.
	UpdateName(ctx context.Context, ownerID string, id int64, name string) error

	// Delete removes the owner's record; associations cascade.
	Delete(ctx context.Context, ownerID string, id int64) error
}
