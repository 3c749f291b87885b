package domain

import "time"

// Recipe is owned by exactly one user. Ownership is fixed at creation and
// never assignable from a payload.
type Recipe struct {
	ID          int64
	UserID      string
	Title       string
	Description string
	TimeMinutes int
	Price       Price
	Link        string
	ImageRef    string // media store reference, empty until an image is uploaded
	Tags        []Attribute
	Ingredients []Attribute
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
