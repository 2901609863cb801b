package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magieskin/storefront-backend/api/controllers"
	"github.com/magieskin/storefront-backend/api/middleware"
	"github.com/magieskin/storefront-backend/internal/orders"
	"github.com/magieskin/storefront-backend/pkg/config"
	"github.com/magieskin/storefront-backend/pkg/logger"
)

// RouterParams carries everything the HTTP surface depends on. Optional
// dependencies (redis, registry) may be nil.
type RouterParams struct {
	Config       *config.Config
	Logger       *logger.Logger
	OrderService orders.Service
	Mailer       controllers.OrderMailer
	Chat         controllers.ChatResponder
	RateLimiter  middleware.CounterStore
	Registry     *prometheus.Registry
	ReadyChecks  map[string]controllers.Pinger
}

// NewRouter assembles the storefront API.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	orderPolicy := middleware.NewRateLimitPolicy(
		"order",
		cfg.RateLimit.OrderWindow,
		cfg.RateLimit.OrderIPLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.ReadyChecks))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Get("/products", controllers.ListProducts())
	r.With(middleware.RateLimit(orderPolicy, p.RateLimiter, logg)).
		Post("/order", controllers.PlaceOrder(p.OrderService, logg))
	r.Post("/order-email", controllers.SendOrderEmail(p.Mailer, logg))
	r.Post("/chat", controllers.Chat(p.Chat, logg))

	r.Post("/admin-auth", controllers.AdminAuth(cfg.Admin, logg))
	r.Route("/admin-orders", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(cfg.Admin, logg))
		r.Get("/", controllers.AdminListOrders(p.OrderService, logg))
		r.Patch("/", controllers.AdminUpdateOrder(p.OrderService, logg))
	})

	return r
}
