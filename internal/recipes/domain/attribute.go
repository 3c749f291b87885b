package domain

// Attribute is a tag or ingredient record. The two are structurally
// identical: owned by exactly one user, unique per (owner, name), created
// implicitly as a side effect of recipe writes and never auto-deleted when
// unlinked from a recipe.
type Attribute struct {
	ID     int64
	UserID string
	Name   string
}

// Kind distinguishes the two attribute tables where code paths are shared.
type Kind string

const (
	KindTag        Kind = "tag"
	KindIngredient Kind = "ingredient"
)
