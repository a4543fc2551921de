package product

import "errors"

var (
	ErrNotFound        = errors.New("product not found")
	ErrSlugExists      = errors.New("slug already exists")
	ErrValidation      = errors.New("validation failed")
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Product represents a catalog row. JSON tags follow the snake_case wire
// contract of the public API. Timestamps are RFC3339 strings in UTC;
// is_featured and is_new are stored as 0/1.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	MainImage   *string `json:"main_image"`
	IsFeatured  int     `json:"is_featured"`
	IsNew       int     `json:"is_new"`
	CategoryID  *int    `json:"category_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// Input carries the mutable product fields of a create or update request.
// Each field is tri-state (absent, null, set) so a partial update can tell
// "clear this column" apart from "leave it alone".
type Input struct {
	Name        OptString `json:"name"`
	Slug        OptString `json:"slug"`
	Description OptString `json:"description"`
	Price       OptNumber `json:"price"`
	Stock       OptNumber `json:"stock"`
	MainImage   OptString `json:"main_image"`
	IsFeatured  OptBool   `json:"is_featured"`
	IsNew       OptBool   `json:"is_new"`
	CategoryID  OptNumber `json:"category_id"`
}

// Change is one column assignment of a partial update. The service emits
// changes in a fixed field order so the generated statement is stable.
type Change struct {
	Column string
	Value  any
}
