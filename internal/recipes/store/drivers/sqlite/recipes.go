package sqlite

import (
	"context"
	"strings"

	"github.com/nibbleworks/forkful/internal/recipes/domain"
)

type recipesRepo struct {
	db dbtx
}

const recipeColumns = `id, user_id, title, description, time_minutes, price_cents, link, image_ref, created_at, updated_at`

func (r *recipesRepo) CreateRecipe(ctx context.Context, rec domain.Recipe) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO recipes (user_id, title, description, time_minutes, price_cents, link)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.UserID, rec.Title, rec.Description, rec.TimeMinutes, rec.Price.Cents(), rec.Link)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *recipesRepo) GetRecipe(ctx context.Context, ownerID string, id int64) (domain.Recipe, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = ? AND user_id = ?`, id, ownerID)
	rec, err := scanRecipe(row)
	if err != nil {
		return domain.Recipe{}, err
	}

	if err := r.hydrate(ctx, []*domain.Recipe{&rec}); err != nil {
		return domain.Recipe{}, err
	}
	return rec, nil
}

func (r *recipesRepo) ListRecipes(ctx context.Context, ownerID string, tagIDs, ingredientIDs []int64) ([]domain.Recipe, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + recipeColumns + ` FROM recipes WHERE user_id = ?`)
	args := []any{ownerID}

	// Membership subqueries keep the result set free of join duplicates.
	if len(tagIDs) > 0 {
		sb.WriteString(` AND id IN (SELECT recipe_id FROM recipe_tags WHERE tag_id IN (` +
			placeholders(len(tagIDs)) + `))`)
		for _, id := range tagIDs {
			args = append(args, id)
		}
	}
	if len(ingredientIDs) > 0 {
		sb.WriteString(` AND id IN (SELECT recipe_id FROM recipe_ingredients WHERE ingredient_id IN (` +
			placeholders(len(ingredientIDs)) + `))`)
		for _, id := range ingredientIDs {
			args = append(args, id)
		}
	}

	sb.WriteString(` ORDER BY id DESC`)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := []domain.Recipe{}
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ptrs := make([]*domain.Recipe, len(recipes))
	for i := range recipes {
		ptrs[i] = &recipes[i]
	}
	if err := r.hydrate(ctx, ptrs); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipesRepo) UpdateRecipe(ctx context.Context, rec domain.Recipe) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE recipes
		 SET title = ?, description = ?, time_minutes = ?, price_cents = ?, link = ?,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ?`,
		rec.Title, rec.Description, rec.TimeMinutes, rec.Price.Cents(), rec.Link,
		rec.ID, rec.UserID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *recipesRepo) DeleteRecipe(ctx context.Context, ownerID string, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM recipes WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *recipesRepo) SetRecipeImage(ctx context.Context, ownerID string, id int64, ref string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE recipes SET image_ref = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ?`, ref, id, ownerID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *recipesRepo) LinkTag(ctx context.Context, recipeID, tagID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)`,
		recipeID, tagID)
	return err
}

func (r *recipesRepo) ClearTags(ctx context.Context, recipeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM recipe_tags WHERE recipe_id = ?`, recipeID)
	return err
}

func (r *recipesRepo) LinkIngredient(ctx context.Context, recipeID, ingredientID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO recipe_ingredients (recipe_id, ingredient_id) VALUES (?, ?)`,
		recipeID, ingredientID)
	return err
}

func (r *recipesRepo) ClearIngredients(ctx context.Context, recipeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM recipe_ingredients WHERE recipe_id = ?`, recipeID)
	return err
}

// hydrate resolves tag and ingredient associations for the given recipes in
// two queries rather than one pair per recipe.
func (r *recipesRepo) hydrate(ctx context.Context, recipes []*domain.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Recipe, len(recipes))
	args := make([]any, 0, len(recipes))
	for _, rec := range recipes {
		rec.Tags = []domain.Attribute{}
		rec.Ingredients = []domain.Attribute{}
		byID[rec.ID] = rec
		args = append(args, rec.ID)
	}
	ph := placeholders(len(recipes))

	tagRows, err := r.db.QueryContext(ctx,
		`SELECT rt.recipe_id, t.id, t.user_id, t.name
		 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id
		 WHERE rt.recipe_id IN (`+ph+`) ORDER BY t.name`, args...)
	if err != nil {
		return err
	}
	if err := collectAssociations(tagRows, byID, func(rec *domain.Recipe, a domain.Attribute) {
		rec.Tags = append(rec.Tags, a)
	}); err != nil {
		return err
	}

	ingRows, err := r.db.QueryContext(ctx,
		`SELECT ri.recipe_id, i.id, i.user_id, i.name
		 FROM recipe_ingredients ri JOIN ingredients i ON i.id = ri.ingredient_id
		 WHERE ri.recipe_id IN (`+ph+`) ORDER BY i.name`, args...)
	if err != nil {
		return err
	}
	return collectAssociations(ingRows, byID, func(rec *domain.Recipe, a domain.Attribute) {
		rec.Ingredients = append(rec.Ingredients, a)
	})
}

func collectAssociations(rows rowsCloser, byID map[int64]*domain.Recipe, add func(*domain.Recipe, domain.Attribute)) error {
	defer rows.Close()
	for rows.Next() {
		var recipeID int64
		var a domain.Attribute
		if err := rows.Scan(&recipeID, &a.ID, &a.UserID, &a.Name); err != nil {
			return err
		}
		if rec, ok := byID[recipeID]; ok {
			add(rec, a)
		}
	}
	return rows.Err()
}

type rowsCloser interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error
}

func scanRecipe(row rowScanner) (domain.Recipe, error) {
	var rec domain.Recipe
	var cents int64
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Title, &rec.Description, &rec.TimeMinutes,
		&cents, &rec.Link, &rec.ImageRef, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return domain.Recipe{}, mapNotFound(err)
	}
	rec.Price = domain.PriceFromCents(cents)
	return rec, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
