package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nibbleworks/forkful/internal/recipes/domain"
	"github.com/nibbleworks/forkful/internal/recipes/service"
	"github.com/nibbleworks/forkful/internal/recipes/store"
	"github.com/nibbleworks/forkful/pkg/recipesdk"
	"github.com/nibbleworks/forkful/pkg/slogx"
)

// decodeJSON parses a request body into dst, rejecting unknown fields and
// trailing garbage. A value of the wrong JSON type for a named field comes
// back as a ValidationError on that field.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return recipesdk.NewValidationError(typeErr.Field, "wrong type for this field")
		}
		return err
	}
	if dec.More() {
		return errors.New("unexpected trailing data")
	}
	return nil
}

// writeDecodeError renders a decodeJSON failure: field-level when the decoder
// could name the offending field, the generic envelope otherwise.
func writeDecodeError(w http.ResponseWriter, err error) {
	var ve *recipesdk.ValidationError
	if errors.As(err, &ve) {
		ve.WriteError(w)
		return
	}
	recipesdk.ErrInvalidRequest.WriteError(w)
}

// writeError maps service and store errors onto the wire error vocabulary.
// Anything unrecognized is logged and collapsed into a 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *recipesdk.ValidationError
	if errors.As(err, &ve) {
		ve.WriteError(w)
		return
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		recipesdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		recipesdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrInvalidToken):
		recipesdk.ErrInvalidToken.WriteError(w)
	case errors.Is(err, service.ErrEmailInvalid):
		recipesdk.NewValidationError("email", "enter a valid email address").WriteError(w)
	case errors.Is(err, service.ErrEmailTaken):
		recipesdk.NewValidationError("email", "a user with that email already exists").WriteError(w)
	case errors.Is(err, service.ErrPasswordTooShort):
		recipesdk.NewValidationError("password", "password must be at least 5 characters").WriteError(w)
	case errors.Is(err, service.ErrNameTaken):
		recipesdk.NewValidationError("name", "a record with that name already exists").WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		recipesdk.ErrServerError.WriteError(w)
	}
}

func toUserResponse(u domain.User) recipesdk.UserResponse {
	return recipesdk.UserResponse{Email: u.Email, Name: u.Name}
}

func toAttributeResponses(attrs []domain.Attribute) []recipesdk.AttributeResponse {
	out := make([]recipesdk.AttributeResponse, len(attrs))
	for i, a := range attrs {
		out[i] = recipesdk.AttributeResponse{ID: a.ID, Name: a.Name}
	}
	return out
}

func toRecipeSummary(rec domain.Recipe) recipesdk.RecipeSummary {
	return recipesdk.RecipeSummary{
		ID:          rec.ID,
		Title:       rec.Title,
		TimeMinutes: rec.TimeMinutes,
		Price:       rec.Price.String(),
		Link:        rec.Link,
		Tags:        toAttributeResponses(rec.Tags),
		Ingredients: toAttributeResponses(rec.Ingredients),
		Image:       rec.ImageRef,
	}
}

func toRecipeDetail(rec domain.Recipe) recipesdk.RecipeDetail {
	return recipesdk.RecipeDetail{
		RecipeSummary: toRecipeSummary(rec),
		Description:   rec.Description,
	}
}
