package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"modernshop/internal/domain"
	"modernshop/internal/repository"
	"modernshop/internal/repository/pgtest"
	"modernshop/internal/seed"
	cartsvc "modernshop/internal/service/cart"
	catalogsvc "modernshop/internal/service/catalog"
	ordersvc "modernshop/internal/service/order"
)

type recordingNotifier struct {
	mu     sync.Mutex
	orders []domain.Order
}

func (r *recordingNotifier) OrderCreated(_ context.Context, o domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
	return nil
}

type storefront struct {
	router   *gin.Engine
	store    *repository.Store
	orders   *ordersvc.Service
	notifier *recordingNotifier
}

func newStorefront(t *testing.T, store *repository.Store) *storefront {
	t.Helper()
	ctx := context.Background()
	if _, err := seed.Apply(ctx, store.Categories, store.Products, seed.Options{Reset: true}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	n := &recordingNotifier{}
	orders := ordersvc.New(store.Orders, n, time.Second, zap.NewNop())

	gin.SetMode(gin.TestMode)
	router, err := buildRouter(zap.NewNop(), Deps{
		Catalog: catalogsvc.New(store.Categories, store.Products),
		Cart:    cartsvc.New(store.Cart, store.Products, zap.NewNop()),
		Orders:  orders,
		Ready:   store.Ping,
	}, Options{})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return &storefront{router: router, store: store, orders: orders, notifier: n}
}

func exerciseStorefront(t *testing.T, sf *storefront) {
	t.Helper()
	ctx := context.Background()

	rec := do(sf.router, http.MethodGet, "/api/products/featured", "")
	featured := decode[[]domain.Product](t, rec)
	if len(featured) != 6 {
		t.Fatalf("expected 6 featured products, got %d", len(featured))
	}

	pistachios, err := sf.store.Products.GetBySlug(ctx, "premium-pistachios")
	if err != nil {
		t.Fatalf("lookup product: %v", err)
	}
	wine, err := sf.store.Products.GetBySlug(ctx, "israeli-wine")
	if err != nil {
		t.Fatalf("lookup product: %v", err)
	}

	add := func(productID int64, qty int) domain.CartItem {
		rec := do(sf.router, http.MethodPost, "/api/cart", fmt.Sprintf(`{"productId":%d,"quantity":%d,"sessionId":"sess-e2e"}`, productID, qty))
		if rec.Code != http.StatusCreated {
			t.Fatalf("add to cart: %d %s", rec.Code, rec.Body.String())
		}
		return decode[domain.CartItem](t, rec)
	}
	first := add(pistachios.ID, 1)
	merged := add(pistachios.ID, 2)
	if merged.ID != first.ID || merged.Quantity != 3 {
		t.Fatalf("expected merge into item %d with qty 3, got %+v", first.ID, merged)
	}
	wineItem := add(wine.ID, 1)

	rec = do(sf.router, http.MethodGet, "/api/cart/sess-e2e/summary", "")
	summary := decode[map[string]any](t, rec)
	if summary["total"] != "68.96" || summary["count"] != float64(4) {
		t.Fatalf("unexpected summary %v", summary)
	}

	rec = do(sf.router, http.MethodPatch, fmt.Sprintf("/api/cart/%d", wineItem.ID), `{"quantity":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove via quantity 0: %d", rec.Code)
	}
	rec = do(sf.router, http.MethodGet, "/api/cart/sess-e2e", "")
	lines := decode[[]domain.CartLine](t, rec)
	if len(lines) != 1 || lines[0].Product.Slug != "premium-pistachios" {
		t.Fatalf("unexpected cart %+v", lines)
	}

	order := fmt.Sprintf(`{
		"customerName": "Dana Levi", "email": "dana@example.com", "address": "12 Herzl St",
		"city": "Haifa", "state": "North", "postalCode": "3303000", "country": "Israel",
		"phone": "0541234567", "totalAmount": "38.97",
		"items": [{"id": %d, "name": %q, "price": "12.99", "quantity": 3}]
	}`, pistachios.ID, pistachios.Name)
	rec = do(sf.router, http.MethodPost, "/api/orders", order)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create order: %d %s", rec.Code, rec.Body.String())
	}
	created := decode[domain.Order](t, rec)

	rec = do(sf.router, http.MethodDelete, "/api/cart/session/sess-e2e", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("clear cart: %d", rec.Code)
	}

	// The stored snapshot is independent of later catalog changes.
	changed := *pistachios
	changed.Price = domain.MustMoney("99.00")
	if _, err := sf.store.Products.Upsert(ctx, changed); err != nil {
		t.Fatalf("reprice: %v", err)
	}
	rec = do(sf.router, http.MethodGet, fmt.Sprintf("/api/orders/%d", created.ID), "")
	fetched := decode[domain.Order](t, rec)
	if fetched.Items[0].Price.String() != "12.99" || fetched.TotalAmount.String() != "38.97" {
		t.Fatalf("order snapshot changed: %+v", fetched)
	}

	waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := sf.orders.Wait(waitCtx); err != nil {
		t.Fatalf("wait notifications: %v", err)
	}
	if len(sf.notifier.orders) != 1 || sf.notifier.orders[0].ID != created.ID {
		t.Fatalf("expected one notification for order %d", created.ID)
	}

	// A cart row whose product disappeared is reported, not dropped.
	add(wine.ID, 1)
	if _, err := sf.store.Products.Delete(ctx, wine.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	rec = do(sf.router, http.MethodGet, "/api/cart/sess-e2e", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for inconsistent cart, got %d", rec.Code)
	}
}

func TestStorefront_Memory(t *testing.T) {
	exerciseStorefront(t, newStorefront(t, repository.NewMemory()))
}

func TestStorefront_Postgres(t *testing.T) {
	pool := pgtest.Pool(t)
	exerciseStorefront(t, newStorefront(t, repository.NewPostgres(pool, zap.NewNop())))
}

func TestStorefront_MergeBeyondLimitRejected(t *testing.T) {
	sf := newStorefront(t, repository.NewMemory())
	p, err := sf.store.Products.GetBySlug(context.Background(), "bamba-snacks")
	if err != nil {
		t.Fatalf("lookup product: %v", err)
	}

	body := func(qty int64) string {
		return fmt.Sprintf(`{"productId":%d,"quantity":%d,"sessionId":"sess-max"}`, p.ID, qty)
	}
	if rec := do(sf.router, http.MethodPost, "/api/cart", body(domain.MaxCartQuantity)); rec.Code != http.StatusCreated {
		t.Fatalf("add at limit: %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(sf.router, http.MethodPost, "/api/cart", body(1)); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for merge beyond limit, got %d", rec.Code)
	}
	if rec := do(sf.router, http.MethodPost, "/api/cart", body(9223372036854775807)); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized quantity, got %d", rec.Code)
	}

	lines := decode[[]domain.CartLine](t, do(sf.router, http.MethodGet, "/api/cart/sess-max", ""))
	if len(lines) != 1 || lines[0].Quantity != domain.MaxCartQuantity {
		t.Fatalf("stored quantity changed: %+v", lines)
	}
}
