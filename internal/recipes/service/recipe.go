package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nibbleworks/forkful/internal/recipes/domain"
	"github.com/nibbleworks/forkful/internal/recipes/media"
	"github.com/nibbleworks/forkful/internal/recipes/store"
	"github.com/nibbleworks/forkful/pkg/idx"
	"github.com/nibbleworks/forkful/pkg/slogx"
)

// RecipeService owns all recipe reads and writes, including the get-or-create
// reconciliation of tag and ingredient names nested in recipe payloads.
type RecipeService struct {
	Store store.Store
	Media media.Store
}

// CreateRecipeParams carries a new recipe. Tag and ingredient names are
// reconciled against the owner's existing records.
type CreateRecipeParams struct {
	Title       string
	TimeMinutes int
	Price       domain.Price
	Link        string
	Description string
	Tags        []string
	Ingredients []string
}

// UpdateRecipeParams is a partial recipe update. Nil fields are untouched.
// For Tags and Ingredients the distinction matters twice over: nil leaves the
// associations alone, an empty slice clears them (the records survive), and a
// non-empty slice replaces them via reconciliation.
type UpdateRecipeParams struct {
	Title       *string
	TimeMinutes *int
	Price       *domain.Price
	Link        *string
	Description *string
	Tags        *[]string
	Ingredients *[]string
}

// Create inserts a recipe for the owner, reconciling any nested tag and
// ingredient names, and returns the hydrated result. The whole write is one
// transaction.
func (s *RecipeService) Create(ctx context.Context, ownerID string, p CreateRecipeParams) (domain.Recipe, error) {
	var result domain.Recipe

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		id, err := tx.Recipes().CreateRecipe(ctx, domain.Recipe{
			UserID:      ownerID,
			Title:       p.Title,
			TimeMinutes: p.TimeMinutes,
			Price:       p.Price,
			Link:        p.Link,
			Description: p.Description,
		})
		if err != nil {
			return err
		}

		for _, name := range p.Tags {
			tagID, err := getOrCreate(ctx, tx.Tags(), ownerID, name)
			if err != nil {
				return err
			}
			if err := tx.Recipes().LinkTag(ctx, id, tagID); err != nil {
				return err
			}
		}
		for _, name := range p.Ingredients {
			ingID, err := getOrCreate(ctx, tx.Ingredients(), ownerID, name)
			if err != nil {
				return err
			}
			if err := tx.Recipes().LinkIngredient(ctx, id, ingID); err != nil {
				return err
			}
		}

		result, err = tx.Recipes().GetRecipe(ctx, ownerID, id)
		return err
	})
	if err != nil {
		return domain.Recipe{}, err
	}
	return result, nil
}

// Get returns the owner's recipe with associations resolved. Foreign recipes
// are indistinguishable from missing ones.
func (s *RecipeService) Get(ctx context.Context, ownerID string, id int64) (domain.Recipe, error) {
	return s.Store.Recipes().GetRecipe(ctx, ownerID, id)
}

// List returns the owner's recipes, newest first. Non-empty tagIDs and
// ingredientIDs each narrow the result to recipes matching at least one of
// the given IDs.
func (s *RecipeService) List(ctx context.Context, ownerID string, tagIDs, ingredientIDs []int64) ([]domain.Recipe, error) {
	return s.Store.Recipes().ListRecipes(ctx, ownerID, tagIDs, ingredientIDs)
}

// Update applies a partial update to the owner's recipe and returns the
// hydrated result.
func (s *RecipeService) Update(ctx context.Context, ownerID string, id int64, p UpdateRecipeParams) (domain.Recipe, error) {
	var result domain.Recipe

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		rec, err := tx.Recipes().GetRecipe(ctx, ownerID, id)
		if err != nil {
			return err
		}

		if p.Title != nil {
			rec.Title = *p.Title
		}
		if p.TimeMinutes != nil {
			rec.TimeMinutes = *p.TimeMinutes
		}
		if p.Price != nil {
			rec.Price = *p.Price
		}
		if p.Link != nil {
			rec.Link = *p.Link
		}
		if p.Description != nil {
			rec.Description = *p.Description
		}

		if err := tx.Recipes().UpdateRecipe(ctx, rec); err != nil {
			return err
		}

		if p.Tags != nil {
			if err := tx.Recipes().ClearTags(ctx, id); err != nil {
				return err
			}
			for _, name := range *p.Tags {
				tagID, err := getOrCreate(ctx, tx.Tags(), ownerID, name)
				if err != nil {
					return err
				}
				if err := tx.Recipes().LinkTag(ctx, id, tagID); err != nil {
					return err
				}
			}
		}
		if p.Ingredients != nil {
			if err := tx.Recipes().ClearIngredients(ctx, id); err != nil {
				return err
			}
			for _, name := range *p.Ingredients {
				ingID, err := getOrCreate(ctx, tx.Ingredients(), ownerID, name)
				if err != nil {
					return err
				}
				if err := tx.Recipes().LinkIngredient(ctx, id, ingID); err != nil {
					return err
				}
			}
		}

		result, err = tx.Recipes().GetRecipe(ctx, ownerID, id)
		return err
	})
	if err != nil {
		return domain.Recipe{}, err
	}
	return result, nil
}

// Delete removes the owner's recipe. A stored image is removed from media
// storage best-effort after the row is gone.
func (s *RecipeService) Delete(ctx context.Context, ownerID string, id int64) error {
	rec, err := s.Store.Recipes().GetRecipe(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.Store.Recipes().DeleteRecipe(ctx, ownerID, id); err != nil {
		return err
	}

	if rec.ImageRef != "" && s.Media != nil {
		if err := s.Media.Remove(ctx, rec.ImageRef); err != nil {
			slogx.FromContext(ctx).Warn("failed to remove recipe image",
				slog.Int64("recipe_id", id), slog.Any("error", err))
		}
	}
	return nil
}

// UploadImage stores a new image for the owner's recipe and updates the
// stored reference. A previously stored image is removed best-effort.
func (s *RecipeService) UploadImage(ctx context.Context, ownerID string, id int64, contentType string, r io.Reader, size int64) (domain.Recipe, error) {
	rec, err := s.Store.Recipes().GetRecipe(ctx, ownerID, id)
	if err != nil {
		return domain.Recipe{}, err
	}

	name := fmt.Sprintf("recipes/%d/%s%s", id, idx.New(), imageExt(contentType))
	ref, err := s.Media.Save(ctx, name, contentType, r, size)
	if err != nil {
		return domain.Recipe{}, err
	}

	if err := s.Store.Recipes().SetRecipeImage(ctx, ownerID, id, ref); err != nil {
		_ = s.Media.Remove(ctx, ref)
		return domain.Recipe{}, err
	}

	if rec.ImageRef != "" && rec.ImageRef != ref {
		if err := s.Media.Remove(ctx, rec.ImageRef); err != nil {
			slogx.FromContext(ctx).Warn("failed to remove replaced recipe image",
				slog.Int64("recipe_id", id), slog.Any("error", err))
		}
	}

	return s.Store.Recipes().GetRecipe(ctx, ownerID, id)
}

// getOrCreate resolves an attribute name to its record ID within the owner's
// namespace, creating the record on first use. A concurrent insert of the
// same (owner, name) pair loses the unique-index race and recovers by
// re-fetching.
func getOrCreate(ctx context.Context, repo store.Attributes, ownerID, name string) (int64, error) {
	a, err := repo.GetByOwnerAndName(ctx, ownerID, name)
	if err == nil {
		return a.ID, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return 0, err
	}

	id, err := repo.Create(ctx, ownerID, name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, store.ErrAlreadyExists) {
		return 0, err
	}

	a, err = repo.GetByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return 0, err
	}
	return a.ID, nil
}

func imageExt(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".img"
	}
}
