package service

import (
	"context"
	"strings"
	"testing"

	"github.com/nibbleworks/forkful/internal/recipes/domain"
	"github.com/nibbleworks/forkful/internal/recipes/media"
	"github.com/nibbleworks/forkful/internal/recipes/store"
	"github.com/stretchr/testify/require"
)

func attributeNames(attrs []domain.Attribute) []string {
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.Name
	}
	return names
}

func TestCreateRecipeWithNestedAttributes(t *testing.T) {
	s := newTestStore(t)
	recipes := &RecipeService{Store: s}
	ctx := context.Background()

	u := registerUser(t, s, "cook@example.com")

	rec, err := recipes.Create(ctx, u.ID, CreateRecipeParams{
		Title:       "Pavlova",
		TimeMinutes: 90,
		Price:       domain.Price(1550),
		Tags:        []string{"Dessert", "Party"},
		Ingredients: []string{"Egg whites", "Sugar"},
	})
	require.NoError(t, err)
	require.Equal(t, u.ID, rec.UserID)
	require.ElementsMatch(t, []string{"Dessert", "Party"}, attributeNames(rec.Tags))
	require.ElementsMatch(t, []string{"Egg whites", "Sugar"}, attributeNames(rec.Ingredients))
}

func TestCreateRecipeReusesExistingAttributes(t *testing.T) {
	s := newTestStore(t)
	recipes := &RecipeService{Store: s}
	ctx := context.Background()

	u := registerUser(t, s, "cook@example.com")

	first, err := recipes.Create(ctx, u.ID, CreateRecipeParams{
		Title: "Curry", TimeMinutes: 40, Price: domain.Price(900),
		Tags: []string{"Dinner"},
	})
	require.NoError(t, err)

	second, err := recipes.Create(ctx, u.ID, CreateRecipeParams{
		Title: "Stir fry", TimeMinutes: 20, Price: domain.Price(700),
		Tags: []string{"Dinner"},
	})
	require.NoError(t, err)

	// Same name resolves to the same record, not a duplicate.
	require.Equal(t, first.Tags[0].ID, second.Tags[0].ID)

	all, err := s.Tags().List(ctx, u.ID, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestCreateRecipeDuplicateNamesInPayload(t *testing.T) {
	s := newTestStore(t)
	recipes := &RecipeService{Store: s}
	ctx := context.Background()

	u := registerUser(t, s, "cook@example.com")

	rec, err := recipes.Create(ctx, u.ID, CreateRecipeParams{
		Title: "Toast", TimeMinutes: 5, Price: domain.Price(100),
		Tags: []string{"Breakfast", "Breakfast"},
	})
	require.NoError(t, err)
	require.Len(t, rec.Tags, 1)

	all, err := s.Tags().List(ctx, u.ID, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestAttributeReuseIsPerOwner(t *testing.T) {
	s := newTestStore(t)
	recipes := &RecipeService{Store: s}
	ctx := context.Background()

	u1 := registerUser(t, s, "one@example.com")
	u2 := registerUser(t, s, "two@example.com")

	r1, err := recipes.Create(ctx, u1.ID, CreateRecipeParams{
		Title: "Soup", TimeMinutes: 30, Price: domain.Price(400),
		Tags: []string{"Vegan"},
	})
	require.NoError(t, err)

	r2, err := recipes.Create(ctx, u2.ID, CreateRecipeParams{
		Title: "Salad", TimeMinutes: 10, Price: domain.Price(300),
		Tags: []string{"Vegan"},
	})
	require.NoError(t, err)

	// Same name, different owners: two distinct records.
	require.NotEqual(t, r1.Tags[0].ID, r2.Tags[0].ID)
}

func TestUpdateRecipeOmittedAttributesUntouched(t *testing.T) {
	s := newTestStore(t)
	recipes := &RecipeService{Store: s}
	ctx := context.Background()

	u := registerUser(t, s, "cook@example.com")

	rec, err := recipes.Create(ctx, u.ID, CreateRecipeParams{
		Title: "Pie", TimeMinutes: 60, Price: domain.Price(1200),
		Tags:        []string{"Dessert"},
		Ingredients: []string{"Apples"},
	})
	require.NoError(t, err)

	title := "Apple Pie"
	updated, err := recipes.Update(ctx, u.ID, rec.ID, UpdateRecipeParams{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Apple Pie", updated.Title)
	require.Equal(t, []string{"Dessert"}, attributeNames(updated.Tags))
	require.Equal(t, []string{"Apples"}, attributeNames(updated.Ingredients))
	// Untouched scalars survive too.
	require.Equal(t, 60, updated.TimeMinutes)
	require.Equal(t, domain.Price(1200), updated.Price)
}

func TestUpdateRecipeEmptyListClearsAssociationsOnly(t *testing.T) {
	s := newTestStore(t)
	recipes := &RecipeService{Store: s}
	ctx := context.Background()

	u := registerUser(t, s, "cook@example.com")

	rec, err := recipes.Create(ctx, u.ID, CreateRecipeParams{
		Title: "Pie", TimeMinutes: 60, Price: domain.Price(1200),
		Tags: []string{"Dessert", "Winter"},
	})
	require.NoError(t, err)

	empty := []string{}
	updated, err := recipes.Update(ctx, u.ID, rec.ID, UpdateRecipeParams{Tags: &empty})
	require.NoError(t, err)
	require.Empty(t, updated.Tags)

	// The tag records themselves survive for later reuse.
	all, err := s.Tags().List(ctx, u.ID, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestUpdateRecipeReplacesAttributeSet(t *testing.T) {
	s := newTestStore(t)
	recipes := &RecipeService{Store: s}
	ctx := context.Background()

	u := registerUser(t, s, "cook@example.com")

	rec, err := recipes.Create(ctx, u.ID, CreateRecipeParams{
		Title: "Bowl", TimeMinutes: 15, Price: domain.Price(850),
		Ingredients: []string{"Rice", "Beans"},
	})
	require.NoError(t, err)

	repl := []string{"Rice", "Tofu"}
	updated, err := recipes.Update(ctx, u.ID, rec.ID, UpdateRecipeParams{Ingredients: &repl})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Rice", "Tofu"}, attributeNames(updated.Ingredients))

	// "Beans" is unlinked but its record remains.
	all, err := s.Ingredients().List(ctx, u.ID, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestUpdateForeignRecipeNotFoundAndUnmodified(t *testing.T) {
	s := newTestStore(t)
	recipes := &RecipeService{Store: s}
	ctx := context.Background()

	owner := registerUser(t, s, "owner@example.com")
	intruder := registerUser(t, s, "intruder@example.com")

	rec, err := recipes.Create(ctx, owner.ID, CreateRecipeParams{
		Title: "Secret Sauce", TimeMinutes: 5, Price: domain.Price(250),
	})
	require.NoError(t, err)

	title := "Stolen"
	_, err = recipes.Update(ctx, intruder.ID, rec.ID, UpdateRecipeParams{Title: &title})
	require.ErrorIs(t, err, store.ErrNotFound)

	err = recipes.Delete(ctx, intruder.ID, rec.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := recipes.Get(ctx, owner.ID, rec.ID)
	require.NoError(t, err)
	require.Equal(t, "Secret Sauce", got.Title)
}

func TestListRecipesIsOwnerScoped(t *testing.T) {
	s := newTestStore(t)
	recipes := &RecipeService{Store: s}
	ctx := context.Background()

	u1 := registerUser(t, s, "one@example.com")
	u2 := registerUser(t, s, "two@example.com")

	_, err := recipes.Create(ctx, u1.ID, CreateRecipeParams{
		Title: "Mine", TimeMinutes: 10, Price: domain.Price(100),
	})
	require.NoError(t, err)
	_, err = recipes.Create(ctx, u2.ID, CreateRecipeParams{
		Title: "Theirs", TimeMinutes: 10, Price: domain.Price(100),
	})
	require.NoError(t, err)

	got, err := recipes.List(ctx, u1.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Mine", got[0].Title)
}

func TestListRecipesCombinedFilters(t *testing.T) {
	s := newTestStore(t)
	recipes := &RecipeService{Store: s}
	ctx := context.Background()

	u := registerUser(t, s, "cook@example.com")

	mk := func(title string, tags, ings []string) domain.Recipe {
		rec, err := recipes.Create(ctx, u.ID, CreateRecipeParams{
			Title: title, TimeMinutes: 10, Price: domain.Price(100),
			Tags: tags, Ingredients: ings,
		})
		require.NoError(t, err)
		return rec
	}

	both := mk("both", []string{"Vegan"}, []string{"Tofu"})
	mk("tag only", []string{"Vegan"}, nil)
	mk("ingredient only", nil, []string{"Tofu"})

	tagID := both.Tags[0].ID
	ingID := both.Ingredients[0].ID

	got, err := recipes.List(ctx, u.ID, []int64{tagID}, []int64{ingID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, both.ID, got[0].ID)
}

func TestDeleteRecipeRemovesStoredImage(t *testing.T) {
	s := newTestStore(t)
	ms, err := media.NewFSStore(t.TempDir())
	require.NoError(t, err)
	recipes := &RecipeService{Store: s, Media: ms}
	ctx := context.Background()

	u := registerUser(t, s, "cook@example.com")

	rec, err := recipes.Create(ctx, u.ID, CreateRecipeParams{
		Title: "Shot", TimeMinutes: 1, Price: domain.Price(50),
	})
	require.NoError(t, err)

	withImage, err := recipes.UploadImage(ctx, u.ID, rec.ID, "image/jpeg", strings.NewReader("jpegdata"), 8)
	require.NoError(t, err)
	require.NotEmpty(t, withImage.ImageRef)

	require.NoError(t, recipes.Delete(ctx, u.ID, rec.ID))

	_, err = recipes.Get(ctx, u.ID, rec.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUploadImageReplacesPrevious(t *testing.T) {
	s := newTestStore(t)
	ms, err := media.NewFSStore(t.TempDir())
	require.NoError(t, err)
	recipes := &RecipeService{Store: s, Media: ms}
	ctx := context.Background()

	u := registerUser(t, s, "cook@example.com")

	rec, err := recipes.Create(ctx, u.ID, CreateRecipeParams{
		Title: "Shot", TimeMinutes: 1, Price: domain.Price(50),
	})
	require.NoError(t, err)

	first, err := recipes.UploadImage(ctx, u.ID, rec.ID, "image/png", strings.NewReader("one"), 3)
	require.NoError(t, err)
	second, err := recipes.UploadImage(ctx, u.ID, rec.ID, "image/png", strings.NewReader("two"), 3)
	require.NoError(t, err)
	require.NotEqual(t, first.ImageRef, second.ImageRef)
}

func TestGetOrCreateRecoversFromInsertRace(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := registerUser(t, s, "race@example.com")

	// First resolution creates the record.
	id1, err := getOrCreate(ctx, s.Tags(), u.ID, "Spicy")
	require.NoError(t, err)

	// A lost insert race surfaces as ErrAlreadyExists from Create; the
	// second resolution must land on the same record via re-fetch.
	id2, err := getOrCreate(ctx, s.Tags(), u.ID, "Spicy")
	require.NoError(t, err)
	require.Equal(t, id1, id2)

	_, err = s.Tags().Create(ctx, u.ID, "Spicy")
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}
