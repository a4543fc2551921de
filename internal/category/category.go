package category

import "errors"

var ErrNotFound = errors.New("category not found")

// Category is a catalog grouping a product may belong to.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
