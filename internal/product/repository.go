package product

import (
	"sort"
	"sync"
)

type Repository interface {
	List(limit, offset int) ([]Product, error)
	GetByID(id int) (Product, error)
	GetBySlug(slug string) (Product, error)
	ListByIDs(ids []int) ([]Product, error)
	Create(p Product) (Product, error)
	Update(id int, changes []Change, updatedAt string) (Product, error)
	Delete(id int) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
	nextID  int
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Product, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, p := range seed {
		r.storage = append(r.storage, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List(limit, offset int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := make([]Product, len(r.storage))
	copy(sorted, r.storage)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID > sorted[j].ID })

	if offset >= len(sorted) {
		return []Product{}, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], nil
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySlug(slug string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.storage {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) ListByIDs(ids []int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	out := make([]Product, 0, len(ids))
	for _, p := range r.storage {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id int, changes []Change, updatedAt string) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.storage {
		if r.storage[i].ID != id {
			continue
		}
		p := r.storage[i]
		for _, change := range changes {
			applyChange(&p, change)
		}
		p.UpdatedAt = updatedAt
		r.storage[i] = p
		return p, nil
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func applyChange(p *Product, change Change) {
	switch change.Column {
	case "name":
		p.Name = change.Value.(string)
	case "slug":
		p.Slug = change.Value.(string)
	case "description":
		p.Description = change.Value.(string)
	case "price":
		p.Price = change.Value.(float64)
	case "stock":
		p.Stock = change.Value.(int)
	case "main_image":
		if change.Value == nil {
			p.MainImage = nil
		} else {
			v := change.Value.(string)
			p.MainImage = &v
		}
	case "is_featured":
		p.IsFeatured = change.Value.(int)
	case "is_new":
		p.IsNew = change.Value.(int)
	case "category_id":
		if change.Value == nil {
			p.CategoryID = nil
		} else {
			v := change.Value.(int)
			p.CategoryID = &v
		}
	}
}
