package category

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
)

func seedCategories() []Category {
	return []Category{
		{ID: 1, Name: "Koşu", Slug: "kosu"},
		{ID: 2, Name: "Fitness", Slug: "fitness"},
	}
}

func makeApp(seed []Category) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(seed))).RegisterPublicRoutes(app)
	return app
}

func TestListCategories(t *testing.T) {
	app := makeApp(seedCategories())

	res, err := app.Test(httptest.NewRequest("GET", "/api/categories", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var out struct {
		OK    bool       `json:"ok"`
		Count int        `json:"count"`
		Items []Category `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !out.OK || out.Count != 2 || len(out.Items) != 2 {
		t.Fatalf("unexpected envelope: %+v", out)
	}
	if out.Items[0].Slug != "kosu" {
		t.Fatalf("unexpected first item: %+v", out.Items[0])
	}
}

func TestGetCategoryBySlug(t *testing.T) {
	app := makeApp(seedCategories())

	res, _ := app.Test(httptest.NewRequest("GET", "/api/categories/fitness", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var out struct {
		Success  bool     `json:"success"`
		Category Category `json:"category"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !out.Success || out.Category.ID != 2 {
		t.Fatalf("unexpected payload: %+v", out)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/categories/yok", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for a missing slug, got %d", res.StatusCode)
	}
}

func TestPostgresListCategories(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(listCategoriesQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(1, "Koşu", "kosu").
			AddRow(2, "Fitness", "fitness"))

	items, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 || items[1].Name != "Fitness" {
		t.Fatalf("unexpected rows: %+v", items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresGetCategoryBySlugNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(getCategoryBySlugQuery)).
		WithArgs("yok").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetBySlug("yok"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
