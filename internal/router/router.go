package router

import (
	"net/http"

	"meal-pickup/internal/handler"
	"meal-pickup/internal/metrics"
	"meal-pickup/internal/middleware"

	"github.com/rs/zerolog"
)

// Options holds the pieces of the router that vary by deployment.
type Options struct {
	// Auth gates the admin routes.
	Auth middleware.Authorizer
	// Limiter throttles order placement and admin login. Nil disables throttling.
	Limiter *middleware.RateLimiter
	// Static serves the storefront assets for every path no API route claims. Nil disables it.
	Static http.Handler
	// MetricsEnabled exposes /metrics.
	MetricsEnabled bool
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	publicHandler *handler.PublicHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
	opts Options,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	if opts.MetricsEnabled {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	throttled := func(h http.HandlerFunc) http.Handler {
		if opts.Limiter == nil {
			return h
		}
		return opts.Limiter.Handler(h)
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.AdminAuth(opts.Auth, logger)(h)
	}

	// Storefront
	mux.HandleFunc("GET /api/public", publicHandler.Get)
	mux.Handle("POST /api/orders", throttled(orderHandler.Create))

	// Admin panel
	mux.Handle("POST /api/admin/login", throttled(adminHandler.Login))
	mux.Handle("GET /api/admin/data", admin(adminHandler.Data))
	mux.Handle("PUT /api/admin/business", admin(adminHandler.UpdateBusiness))
	mux.Handle("PUT /api/admin/today", admin(adminHandler.UpdateTodaysMeal))
	mux.Handle("POST /api/admin/menu", admin(adminHandler.CreateMenuItem))
	mux.Handle("PUT /api/admin/menu/{id}", admin(adminHandler.UpdateMenuItem))
	mux.Handle("DELETE /api/admin/menu/{id}", admin(adminHandler.DeleteMenuItem))
	mux.Handle("PATCH /api/admin/orders/{id}", admin(adminHandler.UpdateOrder))

	// Everything else is the single-page app.
	if opts.Static != nil {
		mux.Handle("GET /", opts.Static)
	}

	// Apply middleware in order: Recovery -> Logging -> Metrics -> CORS
	var handler http.Handler = mux
	handler = middleware.CORS(handler)
	if opts.MetricsEnabled {
		handler = middleware.Metrics(handler)
	}
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
