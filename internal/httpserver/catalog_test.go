package httpserver

import (
	"errors"
	"net/http"
	"testing"

	"modernshop/internal/domain"
)

func TestCategoriesIncludeTranslationKey(t *testing.T) {
	catalog := &stubCatalog{categories: []domain.Category{
		{ID: 1, Name: "קפה", Slug: "coffee"},
		{ID: 2, Name: "Other", Slug: "gadgets"},
	}}
	router := testRouter(t, Deps{Catalog: catalog})

	rec := do(router, http.MethodGet, "/api/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decode[[]map[string]any](t, rec)
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if got[0]["translationKey"] != "category_coffee" || got[1]["translationKey"] != "categories" {
		t.Fatalf("unexpected translation keys %v", got)
	}
	if got[0]["slug"] != "coffee" || got[0]["name"] != "קפה" {
		t.Fatalf("category fields should be flattened, got %v", got[0])
	}
}

func TestCategoriesEmptyListIsArray(t *testing.T) {
	router := testRouter(t, Deps{Catalog: &stubCatalog{}})
	rec := do(router, http.MethodGet, "/api/categories", "")
	if rec.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	router := testRouter(t, Deps{Catalog: &stubCatalog{}})
	rec := do(router, http.MethodGet, "/api/categories/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decode[errorResponse](t, rec); body.Message != "Category not found" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestProductRoutes(t *testing.T) {
	p := domain.Product{ID: 3, Name: "Pistachios", Slug: "premium-pistachios", Price: domain.MustMoney("12.99"), Rating: domain.MustRating("4.7")}
	catalog := &stubCatalog{products: []domain.Product{p}, product: &p}
	router := testRouter(t, Deps{Catalog: catalog})

	for _, path := range []string{"/api/products", "/api/products/featured", "/api/products/new-arrivals", "/api/products/sale", "/api/products/category/4"} {
		rec := do(router, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
		got := decode[[]map[string]any](t, rec)
		if len(got) != 1 || got[0]["price"] != "12.99" || got[0]["rating"] != "4.7" {
			t.Fatalf("%s: unexpected body %v", path, got)
		}
	}
	if catalog.lastCatID != 4 {
		t.Fatalf("expected category id 4, got %d", catalog.lastCatID)
	}

	rec := do(router, http.MethodGet, "/api/products/premium-pistachios", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decode[map[string]any](t, rec); got["slug"] != "premium-pistachios" {
		t.Fatalf("unexpected product %v", got)
	}
}

func TestProductsByCategoryRejectsNonInteger(t *testing.T) {
	router := testRouter(t, Deps{Catalog: &stubCatalog{}})
	rec := do(router, http.MethodGet, "/api/products/category/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetProductNotFoundAndFailure(t *testing.T) {
	router := testRouter(t, Deps{Catalog: &stubCatalog{}})
	if rec := do(router, http.MethodGet, "/api/products/nope", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	router = testRouter(t, Deps{Catalog: &stubCatalog{err: errors.New("db down")}})
	rec := do(router, http.MethodGet, "/api/products", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := decode[errorResponse](t, rec); body.Message != "Failed to fetch products" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}
