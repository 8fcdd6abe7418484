package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	cartsvc "github.com/lumora-labs/storefront-backend/internal/cart"
	productsvc "github.com/lumora-labs/storefront-backend/internal/products"
	"github.com/lumora-labs/storefront-backend/internal/selections"
	"github.com/lumora-labs/storefront-backend/pkg/config"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubProductService struct{}

func (stubProductService) GetProduct(ctx context.Context, productID uuid.UUID) (*productsvc.ProductDetailDTO, error) {
	detail := &productsvc.ProductDetailDTO{}
	detail.ID = productID
	return detail, nil
}

func (stubProductService) ListProducts(ctx context.Context, input productsvc.ListProductsInput) (*productsvc.ProductListPageDTO, error) {
	return &productsvc.ProductListPageDTO{Products: []productsvc.ProductSummary{}}, nil
}

type stubSelectionService struct{}

func (stubSelectionService) GetSelection(ctx context.Context, sessionID string, productID uuid.UUID) (*selections.SelectionView, error) {
	return &selections.SelectionView{ProductID: productID}, nil
}

func (stubSelectionService) SelectAttribute(ctx context.Context, sessionID string, productID uuid.UUID, name, value string) (*selections.SelectionView, error) {
	return &selections.SelectionView{ProductID: productID}, nil
}

func (stubSelectionService) ResetSelection(ctx context.Context, sessionID string, productID uuid.UUID) error {
	return nil
}

type stubCartService struct{}

func (stubCartService) AddItem(ctx context.Context, sessionID string, input cartsvc.AddItemInput) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{SessionID: sessionID, Status: "active"}, nil
}

func (stubCartService) GetActiveCart(ctx context.Context, sessionID string) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{SessionID: sessionID, Status: "active"}, nil
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	return NewRouter(
		cfg,
		nil,
		stubPinger{},
		stubPinger{},
		prometheus.NewRegistry(),
		stubProductService{},
		stubSelectionService{},
		stubCartService{},
	)
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := testRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
		if env := resp.Header().Get("X-Lumora-Env"); env != "test" {
			t.Fatalf("%s: expected env header, got %q", path, env)
		}
	}
}

func TestRouterPublicPing(t *testing.T) {
	router := testRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/public/ping", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRouterMetricsExposed(t *testing.T) {
	router := testRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRouterProductRoutes(t *testing.T) {
	router := testRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("list: expected 200 got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/products/"+uuid.NewString(), nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("detail: expected 200 got %d", resp.Code)
	}
}

func TestRouterSelectionRequiresSession(t *testing.T) {
	router := testRouter(t)
	target := "/api/v1/products/" + uuid.NewString() + "/selection"

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, target, nil))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without session header, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("X-Session-Id", "sess-1")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with session header, got %d", resp.Code)
	}
}

func TestRouterCartRoutes(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("X-Session-Id", "sess-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("cart get: expected 200 got %d", resp.Code)
	}

	body := `{"product_id":"` + uuid.NewString() + `","quantity":1}`
	req = httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	req.Header.Set("X-Session-Id", "sess-1")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("cart add: expected 201 got %d", resp.Code)
	}
}
