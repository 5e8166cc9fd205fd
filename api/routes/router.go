package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sunlinkenergy/sunlink-backend/api/controllers"
	"github.com/sunlinkenergy/sunlink-backend/api/middleware"
	"github.com/sunlinkenergy/sunlink-backend/internal/store"
	"github.com/sunlinkenergy/sunlink-backend/pkg/config"
	"github.com/sunlinkenergy/sunlink-backend/pkg/logger"
	"github.com/sunlinkenergy/sunlink-backend/pkg/metrics"
	"github.com/sunlinkenergy/sunlink-backend/pkg/storage/local"
)

// NewRouter assembles the storefront's HTTP surfaces over the shared store.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	st *store.Store,
	storage local.Pinger,
	wa controllers.CheckoutNotifier,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	var httpMetrics *metrics.HTTPMetrics
	if registry != nil {
		httpMetrics = metrics.NewHTTPMetrics(registry)
	}

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, storage))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(st, logg))
			r.Get("/featured", controllers.FeaturedProducts(st, logg))
			r.Get("/{productId}", controllers.GetProduct(st, logg))
			r.Get("/{productId}/share", controllers.ShareProduct(st, cfg.App.BaseURL, logg))
		})
		r.Get("/categories", controllers.ListCategories())

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(st, logg))
			r.Delete("/", controllers.ClearCart(st, logg))
			r.Post("/items", controllers.AddCartItem(st, logg))
			r.Patch("/items/{productId}", controllers.UpdateCartItem(st, logg))
			r.Delete("/items/{productId}", controllers.RemoveCartItem(st, logg))
		})

		r.Post("/checkout", controllers.Checkout(st, wa, logg))

		r.Route("/admin", func(r chi.Router) {
			r.Get("/products", controllers.AdminListProducts(st, logg))
			r.Post("/products", controllers.AdminCreateProduct(st, logg))
			r.Patch("/products/{productId}", controllers.AdminUpdateProduct(st, logg))
			r.Delete("/products/{productId}", controllers.AdminDeleteProduct(st, logg))
			r.Get("/checkouts", controllers.AdminListCheckouts(st, logg))
			r.Get("/stats", controllers.AdminStats(st, logg))
		})
	})

	return r
}
