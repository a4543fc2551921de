package category

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every category ordered by id.
func (s *Service) List() ([]Category, error) {
	return s.repo.List()
}

func (s *Service) GetBySlug(slug string) (Category, error) {
	if slug == "" {
		return Category{}, ErrNotFound
	}
	return s.repo.GetBySlug(slug)
}
