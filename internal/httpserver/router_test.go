package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"coffeesaf/internal/cart"
	"coffeesaf/internal/domain"
	"coffeesaf/internal/loyalty"
	checkoutsvc "coffeesaf/internal/service/checkout"
)

type stubCatalog struct {
	items      []domain.CoffeeItem
	categories []string
	err        error
}

func (s *stubCatalog) ListAll(_ context.Context) ([]domain.CoffeeItem, error) {
	return s.items, s.err
}

func (s *stubCatalog) ListByCategory(_ context.Context, category string) ([]domain.CoffeeItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.CoffeeItem
	for _, it := range s.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stubCatalog) ListCategories(_ context.Context) ([]string, error) {
	return s.categories, s.err
}

func (s *stubCatalog) GetByID(_ context.Context, id int64) (*domain.CoffeeItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, it := range s.items {
		if it.ID == id {
			found := it
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

type recordingNotifier struct {
	sent chan string
}

func (r *recordingNotifier) Send(_ context.Context, text string) error {
	r.sent <- text
	return nil
}

type testEnv struct {
	router   *gin.Engine
	cart     *cart.Store
	loyalty  *loyalty.Tracker
	notifier *recordingNotifier
}

func newTestEnv(catalog *stubCatalog) *testEnv {
	gin.SetMode(gin.TestMode)
	logger := log.New(io.Discard, "", 0)

	cartStore := cart.NewStore()
	tracker := loyalty.NewTracker()
	notifier := &recordingNotifier{sent: make(chan string, 1)}
	checkout := checkoutsvc.New(cartStore, tracker, notifier, logger)

	router := buildRouter(logger, nil, Deps{
		CatalogSvc:  catalog,
		Cart:        cartStore,
		Loyalty:     tracker,
		CheckoutSvc: checkout,
	})
	return &testEnv{router: router, cart: cartStore, loyalty: tracker, notifier: notifier}
}

func menuStub() *stubCatalog {
	return &stubCatalog{
		items: []domain.CoffeeItem{
			{ID: 1, Name: "Эспрессо", Type: "Классический", PriceS: "90 ₽", PriceM: "120 ₽", PriceL: "150 ₽", Category: "Эспрессо"},
			{ID: 2, Name: "Капучино", Type: "Стандарт", PriceS: "180 ₽", PriceM: "210 ₽", PriceL: "240 ₽", Category: "Капучино"},
		},
		categories: []string{"Эспрессо", "Капучино"},
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(menuStub())
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyzWithoutDB(t *testing.T) {
	env := newTestEnv(menuStub())
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestListCoffee(t *testing.T) {
	env := newTestEnv(menuStub())
	req := httptest.NewRequest(http.MethodGet, "/api/coffee", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Items []domain.CoffeeItem `json:"items"`
	}
	decode(t, rec, &resp)
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp.Items))
	}
}

func TestListCoffeeByCategory(t *testing.T) {
	env := newTestEnv(menuStub())
	req := httptest.NewRequest(http.MethodGet, "/api/coffee?category=Капучино", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	var resp struct {
		Items []domain.CoffeeItem `json:"items"`
	}
	decode(t, rec, &resp)
	if len(resp.Items) != 1 || resp.Items[0].ID != 2 {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
}

func TestGetCoffeeNotFound(t *testing.T) {
	env := newTestEnv(menuStub())
	req := httptest.NewRequest(http.MethodGet, "/api/coffee/99", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetCoffeeBadID(t *testing.T) {
	env := newTestEnv(menuStub())
	req := httptest.NewRequest(http.MethodGet, "/api/coffee/latte", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListCategories(t *testing.T) {
	env := newTestEnv(menuStub())
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	var resp struct {
		Categories []string `json:"categories"`
	}
	decode(t, rec, &resp)
	if len(resp.Categories) != 2 {
		t.Fatalf("unexpected categories: %+v", resp.Categories)
	}
}
