package service

import (
	"context"
	"testing"

	"github.com/nibbleworks/forkful/internal/recipes/domain"
	"github.com/nibbleworks/forkful/internal/recipes/store"
	"github.com/stretchr/testify/require"
)

func TestListAttributesOrderedNameDescending(t *testing.T) {
	s := newTestStore(t)
	attrs := &AttributeService{Store: s}
	ctx := context.Background()

	u := registerUser(t, s, "cook@example.com")

	for _, name := range []string{"Apple", "Zucchini", "Mango"} {
		_, err := s.Ingredients().Create(ctx, u.ID, name)
		require.NoError(t, err)
	}

	got, err := attrs.List(ctx, u.ID, domain.KindIngredient, false)
	require.NoError(t, err)
	require.Equal(t, []string{"Zucchini", "Mango", "Apple"}, attributeNames(got))
}

func TestListAttributesAssignedOnly(t *testing.T) {
	s := newTestStore(t)
	attrs := &AttributeService{Store: s}
	recipes := &RecipeService{Store: s}
	ctx := context.Background()

	u := registerUser(t, s, "cook@example.com")

	_, err := recipes.Create(ctx, u.ID, CreateRecipeParams{
		Title: "Salad", TimeMinutes: 10, Price: domain.Price(500),
		Tags: []string{"Lunch"},
	})
	require.NoError(t, err)
	_, err = s.Tags().Create(ctx, u.ID, "Unused")
	require.NoError(t, err)

	got, err := attrs.List(ctx, u.ID, domain.KindTag, true)
	require.NoError(t, err)
	require.Equal(t, []string{"Lunch"}, attributeNames(got))
}

// The assigned filter checks for any recipe association without re-checking
// the recipe's owner, so a foreign recipe linking an attribute at the SQL
// level marks it assigned for its owner. API writes are owner-scoped and
// cannot create such a link, but the filter behaviour is deliberate.
func TestListAttributesAssignedOnlyIgnoresRecipeOwner(t *testing.T) {
	s := newTestStore(t)
	attrs := &AttributeService{Store: s}
	recipes := &RecipeService{Store: s}
	ctx := context.Background()

	owner := registerUser(t, s, "owner@example.com")
	other := registerUser(t, s, "other@example.com")

	tagID, err := s.Tags().Create(ctx, owner.ID, "Shared")
	require.NoError(t, err)

	rec, err := recipes.Create(ctx, other.ID, CreateRecipeParams{
		Title: "Borrower", TimeMinutes: 5, Price: domain.Price(100),
	})
	require.NoError(t, err)
	require.NoError(t, s.Recipes().LinkTag(ctx, rec.ID, tagID))

	got, err := attrs.List(ctx, owner.ID, domain.KindTag, true)
	require.NoError(t, err)
	require.Equal(t, []string{"Shared"}, attributeNames(got))

	// The foreign link never leaks the tag into the other user's listing.
	got, err = attrs.List(ctx, other.ID, domain.KindTag, true)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestUpdateAttributeName(t *testing.T) {
	s := newTestStore(t)
	attrs := &AttributeService{Store: s}
	ctx := context.Background()

	u := registerUser(t, s, "cook@example.com")

	id, err := s.Tags().Create(ctx, u.ID, "Dessret")
	require.NoError(t, err)

	got, err := attrs.UpdateName(ctx, u.ID, domain.KindTag, id, "Dessert")
	require.NoError(t, err)
	require.Equal(t, "Dessert", got.Name)
}

func TestUpdateAttributeNameCollision(t *testing.T) {
	s := newTestStore(t)
	attrs := &AttributeService{Store: s}
	ctx := context.Background()

	u := registerUser(t, s, "cook@example.com")

	_, err := s.Tags().Create(ctx, u.ID, "Dinner")
	require.NoError(t, err)
	id, err := s.Tags().Create(ctx, u.ID, "Supper")
	require.NoError(t, err)

	_, err = attrs.UpdateName(ctx, u.ID, domain.KindTag, id, "Dinner")
	require.ErrorIs(t, err, ErrNameTaken)
}

func TestUpdateForeignAttributeNotFound(t *testing.T) {
	s := newTestStore(t)
	attrs := &AttributeService{Store: s}
	ctx := context.Background()

	owner := registerUser(t, s, "owner@example.com")
	intruder := registerUser(t, s, "intruder@example.com")

	id, err := s.Ingredients().Create(ctx, owner.ID, "Truffle")
	require.NoError(t, err)

	_, err = attrs.UpdateName(ctx, intruder.ID, domain.KindIngredient, id, "Mushroom")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = attrs.Delete(ctx, intruder.ID, domain.KindIngredient, id)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Untouched for the owner.
	got, err := s.Ingredients().GetByID(ctx, owner.ID, id)
	require.NoError(t, err)
	require.Equal(t, "Truffle", got.Name)
}

func TestDeleteAttributeKeepsRecipes(t *testing.T) {
	s := newTestStore(t)
	attrs := &AttributeService{Store: s}
	recipes := &RecipeService{Store: s}
	ctx := context.Background()

	u := registerUser(t, s, "cook@example.com")

	rec, err := recipes.Create(ctx, u.ID, CreateRecipeParams{
		Title: "Roast", TimeMinutes: 120, Price: domain.Price(2000),
		Tags: []string{"Sunday"},
	})
	require.NoError(t, err)

	require.NoError(t, attrs.Delete(ctx, u.ID, domain.KindTag, rec.Tags[0].ID))

	got, err := recipes.Get(ctx, u.ID, rec.ID)
	require.NoError(t, err)
	require.Empty(t, got.Tags)
}
