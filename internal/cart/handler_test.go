package cart

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/omaatv/eticaret-projem/internal/product"
)

type stubCatalog struct {
	items []product.Product
	err   error
	got   []int
}

func (s *stubCatalog) ListByIDs(ids []int) ([]product.Product, error) {
	s.got = ids
	return s.items, s.err
}

func quoteApp(catalog *stubCatalog) *fiber.App {
	app := fiber.New()
	NewHandler(catalog).RegisterRoutes(app)
	return app
}

func TestQuoteReturnsCurrentRows(t *testing.T) {
	catalog := &stubCatalog{items: []product.Product{
		{ID: 3, Slug: "kosu-ayakkabisi", Price: 1299},
	}}
	app := quoteApp(catalog)

	req := httptest.NewRequest("POST", "/api/cart/quote", strings.NewReader(`{"ids":[3,7]}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var out struct {
		OK    bool              `json:"ok"`
		Count int               `json:"count"`
		Items []product.Product `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !out.OK || out.Count != 1 || len(out.Items) != 1 {
		t.Fatalf("unexpected envelope: %+v", out)
	}
	if out.Items[0].Price != 1299 {
		t.Fatalf("expected the current catalog price, got %v", out.Items[0].Price)
	}
	if len(catalog.got) != 2 || catalog.got[0] != 3 || catalog.got[1] != 7 {
		t.Fatalf("catalog queried with wrong ids: %v", catalog.got)
	}
}

func TestQuoteRejectsMalformedBody(t *testing.T) {
	catalog := &stubCatalog{}
	app := quoteApp(catalog)

	req := httptest.NewRequest("POST", "/api/cart/quote", strings.NewReader(`{"ids":`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestQuoteHidesCatalogErrors(t *testing.T) {
	catalog := &stubCatalog{err: errors.New("pq: connection refused")}
	app := quoteApp(catalog)

	req := httptest.NewRequest("POST", "/api/cart/quote", strings.NewReader(`{"ids":[1]}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.StatusCode)
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if strings.Contains(out.Message, "pq:") {
		t.Fatalf("driver errors must not leak: %q", out.Message)
	}
}
