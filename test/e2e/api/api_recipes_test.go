package api_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/nibbleworks/forkful/pkg/recipesdk"
	"github.com/stretchr/testify/require"
)

// pngMagic is a minimal payload that sniffs as image/png.
var pngMagic = []byte("\x89PNG\r\n\x1a\n" + "fake image body")

// TestRecipeCRUDRoundtrip exercises create, read, update and delete through
// the public API.
func TestRecipeCRUDRoundtrip(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := recipesdk.NewSDKClient(baseURL)
	session := registerAndLogin(t, client, "crud@example.com")

	created, err := session.CreateRecipe(t.Context(), recipesdk.CreateRecipeRequest{
		Title:       "Thai Green Curry",
		TimeMinutes: intPtr(35),
		Price:       strPtr("12.50"),
		Description: "Fragrant and spicy",
		Tags:        attrRefs("thai", "dinner"),
		Ingredients: attrRefs("coconut milk", "green chilli"),
	})
	require.NoError(t, err)
	require.Equal(t, "Thai Green Curry", created.Title)
	require.Equal(t, "12.50", created.Price)
	require.Len(t, created.Tags, 2)
	require.Len(t, created.Ingredients, 2)

	fetched, err := session.GetRecipe(t.Context(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, "Fragrant and spicy", fetched.Description)

	patched, err := session.UpdateRecipe(t.Context(), created.ID, recipesdk.UpdateRecipeRequest{
		Title: strPtr("Thai Red Curry"),
	})
	require.NoError(t, err)
	require.Equal(t, "Thai Red Curry", patched.Title)
	require.Len(t, patched.Tags, 2, "Omitted tag list should leave associations untouched")

	require.NoError(t, session.DeleteRecipe(t.Context(), created.ID))

	_, err = session.GetRecipe(t.Context(), created.ID)
	assertAPIError(t, err, http.StatusNotFound, "Deleted recipe should be gone")
}

// TestRecipeListFilters verifies comma-separated tag and ingredient ID
// filters intersect.
func TestRecipeListFilters(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := recipesdk.NewSDKClient(baseURL)
	session := registerAndLogin(t, client, "filters@example.com")

	curry, err := session.CreateRecipe(t.Context(), recipesdk.CreateRecipeRequest{
		Title:       "Curry",
		TimeMinutes: intPtr(30),
		Price:       strPtr("9.00"),
		Tags:        attrRefs("dinner"),
		Ingredients: attrRefs("rice"),
	})
	require.NoError(t, err)

	toast, err := session.CreateRecipe(t.Context(), recipesdk.CreateRecipeRequest{
		Title:       "Toast",
		TimeMinutes: intPtr(5),
		Price:       strPtr("1.50"),
		Tags:        attrRefs("breakfast"),
	})
	require.NoError(t, err)

	all, err := session.ListRecipes(t.Context(), nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, toast.ID, all[0].ID, "Newest recipe should come first")

	dinnerTag := curry.Tags[0].ID
	riceIngredient := curry.Ingredients[0].ID

	filtered, err := session.ListRecipes(t.Context(), []int64{dinnerTag}, []int64{riceIngredient})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, curry.ID, filtered[0].ID)

	none, err := session.ListRecipes(t.Context(), []int64{toast.Tags[0].ID}, []int64{riceIngredient})
	require.NoError(t, err)
	require.Empty(t, none, "Filters should intersect, not union")
}

// TestRecipeAssociationUpdateRules verifies the three association update
// modes: omitted leaves alone, empty clears, non-empty replaces.
func TestRecipeAssociationUpdateRules(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := recipesdk.NewSDKClient(baseURL)
	session := registerAndLogin(t, client, "assoc@example.com")

	recipe, err := session.CreateRecipe(t.Context(), recipesdk.CreateRecipeRequest{
		Title:       "Stew",
		TimeMinutes: intPtr(90),
		Price:       strPtr("7.25"),
		Tags:        attrRefs("winter", "slow"),
	})
	require.NoError(t, err)

	replaced, err := session.UpdateRecipe(t.Context(), recipe.ID, recipesdk.UpdateRecipeRequest{
		Tags: attrRefs("summer"),
	})
	require.NoError(t, err)
	require.Len(t, replaced.Tags, 1)
	require.Equal(t, "summer", replaced.Tags[0].Name)

	cleared, err := session.UpdateRecipe(t.Context(), recipe.ID, recipesdk.UpdateRecipeRequest{
		Tags: attrRefs(),
	})
	require.NoError(t, err)
	require.Empty(t, cleared.Tags)

	// Unlinked tag records survive the clear.
	tags, err := session.ListTags(t.Context(), false)
	require.NoError(t, err)
	require.Len(t, tags, 3)
}

// TestRecipeReplaceRequiresScalars verifies PUT demands title, time_minutes
// and price while PATCH does not.
func TestRecipeReplaceRequiresScalars(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := recipesdk.NewSDKClient(baseURL)
	session := registerAndLogin(t, client, "replace@example.com")

	recipe, err := session.CreateRecipe(t.Context(), recipesdk.CreateRecipeRequest{
		Title:       "Soup",
		TimeMinutes: intPtr(20),
		Price:       strPtr("4.00"),
	})
	require.NoError(t, err)

	_, err = session.ReplaceRecipe(t.Context(), recipe.ID, recipesdk.UpdateRecipeRequest{
		Title: strPtr("Broth"),
	})
	assertValidationError(t, err, "time_minutes", "price")

	replaced, err := session.ReplaceRecipe(t.Context(), recipe.ID, recipesdk.UpdateRecipeRequest{
		Title:       strPtr("Broth"),
		TimeMinutes: intPtr(25),
		Price:       strPtr("4.50"),
	})
	require.NoError(t, err)
	require.Equal(t, "Broth", replaced.Title)
	require.Equal(t, "4.50", replaced.Price)
}

// TestRecipeOwnershipIsolation verifies one user's recipes are invisible to
// another, reads and writes alike.
func TestRecipeOwnershipIsolation(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := recipesdk.NewSDKClient(baseURL)
	owner := registerAndLogin(t, client, "owner@example.com")
	other := registerAndLogin(t, client, "other@example.com")

	recipe, err := owner.CreateRecipe(t.Context(), recipesdk.CreateRecipeRequest{
		Title:       "Secret Sauce",
		TimeMinutes: intPtr(10),
		Price:       strPtr("99.99"),
	})
	require.NoError(t, err)

	_, err = other.GetRecipe(t.Context(), recipe.ID)
	assertAPIError(t, err, http.StatusNotFound, "Foreign recipe should read as missing")

	_, err = other.UpdateRecipe(t.Context(), recipe.ID, recipesdk.UpdateRecipeRequest{
		Title: strPtr("Stolen Sauce"),
	})
	assertAPIError(t, err, http.StatusNotFound, "Foreign recipe should not be writable")

	err = other.DeleteRecipe(t.Context(), recipe.ID)
	assertAPIError(t, err, http.StatusNotFound, "Foreign recipe should not be deletable")

	intact, err := owner.GetRecipe(t.Context(), recipe.ID)
	require.NoError(t, err)
	require.Equal(t, "Secret Sauce", intact.Title)
}

// TestRecipeImageUpload verifies a real image is accepted and a non-image is
// rejected.
func TestRecipeImageUpload(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := recipesdk.NewSDKClient(baseURL)
	session := registerAndLogin(t, client, "photos@example.com")

	recipe, err := session.CreateRecipe(t.Context(), recipesdk.CreateRecipeRequest{
		Title:       "Pancakes",
		TimeMinutes: intPtr(15),
		Price:       strPtr("3.00"),
	})
	require.NoError(t, err)

	_, err = session.UploadRecipeImage(t.Context(), recipe.ID, "notes.txt", bytes.NewReader([]byte("just text")))
	assertValidationError(t, err, "image")

	uploaded, err := session.UploadRecipeImage(t.Context(), recipe.ID, "pancakes.png", bytes.NewReader(pngMagic))
	require.NoError(t, err)
	require.Equal(t, recipe.ID, uploaded.ID)
	require.NotEmpty(t, uploaded.Image)

	detail, err := session.GetRecipe(t.Context(), recipe.ID)
	require.NoError(t, err)
	require.Equal(t, uploaded.Image, detail.Image)
}
