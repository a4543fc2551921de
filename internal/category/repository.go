package category

import "sync"

type Repository interface {
	List() ([]Category, error)
	GetBySlug(slug string) (Category, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Category
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Category, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Category, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetBySlug(slug string) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.storage {
		if c.Slug == slug {
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}
