package service

import (
	"context"
	"errors"

	"github.com/nibbleworks/forkful/internal/recipes/domain"
	"github.com/nibbleworks/forkful/internal/recipes/store"
)

var ErrNameTaken = errors.New("name_taken")

// AttributeService manages tags and ingredients directly, outside of recipe
// payloads. The two kinds share every code path; only the backing repository
// differs.
type AttributeService struct {
	Store store.Store
}

func (s *AttributeService) repo(kind domain.Kind) store.Attributes {
	if kind == domain.KindIngredient {
		return s.Store.Ingredients()
	}
	return s.Store.Tags()
}

// List returns the owner's attributes of the given kind, ordered by name
// descending. With assignedOnly set, only attributes linked to at least one
// recipe are returned.
func (s *AttributeService) List(ctx context.Context, ownerID string, kind domain.Kind, assignedOnly bool) ([]domain.Attribute, error) {
	return s.repo(kind).List(ctx, ownerID, assignedOnly)
}

// UpdateName renames the owner's attribute and returns the updated record.
// Renaming onto an existing name of the same owner yields ErrNameTaken.
func (s *AttributeService) UpdateName(ctx context.Context, ownerID string, kind domain.Kind, id int64, name string) (domain.Attribute, error) {
	repo := s.repo(kind)

	if err := repo.UpdateName(ctx, ownerID, id, name); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Attribute{}, ErrNameTaken
		}
		return domain.Attribute{}, err
	}
	return repo.GetByID(ctx, ownerID, id)
}

// Delete removes the owner's attribute; recipe associations go with it,
// recipes themselves are untouched.
func (s *AttributeService) Delete(ctx context.Context, ownerID string, kind domain.Kind, id int64) error {
	return s.repo(kind).Delete(ctx, ownerID, id)
}
