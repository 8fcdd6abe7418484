package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lumora-labs/storefront-backend/api/controllers"
	"github.com/lumora-labs/storefront-backend/api/middleware"
	cartsvc "github.com/lumora-labs/storefront-backend/internal/cart"
	productsvc "github.com/lumora-labs/storefront-backend/internal/products"
	"github.com/lumora-labs/storefront-backend/internal/selections"
	"github.com/lumora-labs/storefront-backend/pkg/config"
	"github.com/lumora-labs/storefront-backend/pkg/db"
	"github.com/lumora-labs/storefront-backend/pkg/logger"
	"github.com/lumora-labs/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	registry *prometheus.Registry,
	productService productsvc.Service,
	selectionService selections.Service,
	cartService cartsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, redisP, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(productService, logg))
			r.Get("/{productId}", controllers.ProductDetail(productService, logg))

			r.Route("/{productId}/selection", func(r chi.Router) {
				r.Use(middleware.RequireSession(logg))
				r.Get("/", controllers.SelectionGet(selectionService, logg))
				r.Post("/", controllers.SelectionApply(selectionService, logg))
				r.Delete("/", controllers.SelectionReset(selectionService, logg))
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.RequireSession(logg))
			r.Get("/", controllers.CartGet(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Get("/ping", controllers.SessionPing())
		})
	})

	return r
}
