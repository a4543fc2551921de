package category

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCategoriesQuery    = `SELECT id, name, slug FROM categories ORDER BY id`
	getCategoryBySlugQuery = `SELECT id, name, slug FROM categories WHERE slug = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetBySlug(slug string) (Category, error) {
	var c Category
	err := r.db.QueryRow(getCategoryBySlugQuery, slug).Scan(&c.ID, &c.Name, &c.Slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return Category{}, ErrNotFound
		}
		return Category{}, err
	}
	return c, nil
}
