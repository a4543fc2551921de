package product

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// Page echoes the pagination actually applied after clamping.
type Page struct {
	Page    int
	PerPage int
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of products ordered by descending id. Page is
// clamped to >= 1; perPage falls back to the default when missing and is
// capped at 100.
func (s *Service) List(page, perPage int) ([]Product, Page, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	items, err := s.repo.List(perPage, (page-1)*perPage)
	if err != nil {
		return nil, Page{}, err
	}
	return items, Page{Page: page, PerPage: perPage}, nil
}

// GetByID looks up a single product. A non-positive id is a validation
// fault; a missing row is ErrNotFound.
func (s *Service) GetByID(id int) (Product, error) {
	if id <= 0 {
		return Product{}, fmt.Errorf("%w: invalid product id", ErrValidation)
	}
	return s.repo.GetByID(id)
}

// ListByIDs returns the current rows for the given product ids, skipping
// ids that no longer exist. Used to re-price a client cart snapshot.
func (s *Service) ListByIDs(ids []int) ([]Product, error) {
	valid := make([]int, 0, len(ids))
	for _, id := range ids {
		if id > 0 {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return []Product{}, nil
	}
	return s.repo.ListByIDs(valid)
}

// Create validates and inserts a new catalog row, returning the freshly
// read record.
func (s *Service) Create(in Input) (Product, error) {
	name := strings.TrimSpace(in.Name.Value)
	slug := strings.TrimSpace(in.Slug.Value)
	if name == "" || slug == "" || !in.Price.Valid || !in.Stock.Valid {
		return Product{}, fmt.Errorf("%w: name, slug, price and stock are required", ErrValidation)
	}

	price, err := in.Price.Float64()
	if err != nil {
		return Product{}, fmt.Errorf("%w: price and stock must be numeric", ErrValidation)
	}
	stock, err := in.Stock.Int()
	if err != nil {
		return Product{}, fmt.Errorf("%w: price and stock must be numeric", ErrValidation)
	}
	if price < 0 || stock < 0 {
		return Product{}, fmt.Errorf("%w: price and stock must be non-negative", ErrValidation)
	}

	categoryID, err := optionalCategoryID(in.CategoryID)
	if err != nil {
		return Product{}, err
	}

	if _, err := s.repo.GetBySlug(slug); err == nil {
		return Product{}, ErrSlugExists
	} else if err != ErrNotFound {
		return Product{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	p := Product{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(in.Description.Value),
		Price:       price,
		Stock:       stock,
		MainImage:   optionalString(in.MainImage),
		IsFeatured:  boolToInt(in.IsFeatured.Value),
		IsNew:       boolToInt(in.IsNew.Value),
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.Create(p)
}

// Update applies a field-presence diff: only fields present in the input
// are written, an explicit null or empty value clears a nullable column,
// and any invalid numeric value fails the whole call before a single
// column is touched.
func (s *Service) Update(id int, in Input) (Product, error) {
	if id <= 0 {
		return Product{}, fmt.Errorf("%w: invalid product id", ErrValidation)
	}

	var changes []Change
	if in.Name.Set {
		changes = append(changes, Change{"name", strings.TrimSpace(in.Name.Value)})
	}
	if in.Slug.Set {
		changes = append(changes, Change{"slug", strings.TrimSpace(in.Slug.Value)})
	}
	if in.Description.Set {
		changes = append(changes, Change{"description", strings.TrimSpace(in.Description.Value)})
	}
	if in.Price.Set {
		price, err := in.Price.Float64()
		if !in.Price.Valid || err != nil {
			return Product{}, fmt.Errorf("%w: price must be numeric", ErrValidation)
		}
		if price < 0 {
			return Product{}, fmt.Errorf("%w: price must be non-negative", ErrValidation)
		}
		changes = append(changes, Change{"price", price})
	}
	if in.Stock.Set {
		stock, err := in.Stock.Int()
		if !in.Stock.Valid || err != nil {
			return Product{}, fmt.Errorf("%w: stock must be numeric", ErrValidation)
		}
		if stock < 0 {
			return Product{}, fmt.Errorf("%w: stock must be non-negative", ErrValidation)
		}
		changes = append(changes, Change{"stock", stock})
	}
	if in.MainImage.Set {
		if v := optionalString(in.MainImage); v != nil {
			changes = append(changes, Change{"main_image", *v})
		} else {
			changes = append(changes, Change{"main_image", nil})
		}
	}
	if in.IsFeatured.Set {
		changes = append(changes, Change{"is_featured", boolToInt(in.IsFeatured.Value)})
	}
	if in.IsNew.Set {
		changes = append(changes, Change{"is_new", boolToInt(in.IsNew.Value)})
	}
	if in.CategoryID.Set {
		categoryID, err := optionalCategoryID(in.CategoryID)
		if err != nil {
			return Product{}, err
		}
		if categoryID != nil {
			changes = append(changes, Change{"category_id", *categoryID})
		} else {
			changes = append(changes, Change{"category_id", nil})
		}
	}

	if len(changes) == 0 {
		return Product{}, ErrNothingToUpdate
	}

	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, changes, now)
}

// Delete removes a row unconditionally; no dependent-record checks are
// performed.
func (s *Service) Delete(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid product id", ErrValidation)
	}
	return s.repo.Delete(id)
}

func optionalString(o OptString) *string {
	if !o.Valid {
		return nil
	}
	v := strings.TrimSpace(o.Value)
	if v == "" {
		return nil
	}
	return &v
}

func optionalCategoryID(o OptNumber) (*int, error) {
	if !o.Set || !o.Valid {
		return nil, nil
	}
	n, err := o.Int()
	if err != nil {
		return nil, fmt.Errorf("%w: category_id must be numeric", ErrValidation)
	}
	return &n, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
