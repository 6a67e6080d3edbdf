package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/hapkiduki/inventory-go/internal/application/dto"
	"github.com/hapkiduki/inventory-go/internal/application/port"
	"github.com/hapkiduki/inventory-go/internal/interfaces/http/middleware"
)

// readyTimeout bounds the store ping behind /ready.
const readyTimeout = 2 * time.Second

// Options configures the router and its middleware stack.
type Options struct {
	Version            string
	CORSAllowedOrigins []string
	RequestTimeout     time.Duration
	MaxRequestSize     int64
	DefaultPageSize    int

	// RateLimit enables per-client limiting when non-nil
	RateLimit *middleware.RateLimiterConfig

	// StartedAt is reported as uptime by /health
	StartedAt time.Time
}

// Services are the use cases served over HTTP.
type Services struct {
	Categories CategoryService
	Products   ProductService
	SKUs       SKUService

	// Store is pinged by /ready
	Store port.HealthChecker
}

// NewRouter builds the chi router with the middleware stack, health
// endpoints and the /api routes.
//
// Parameters:
//   - opts: router options
//   - svc: services to expose
//   - log: structured logger
//
// Returns:
//   - http.Handler: the root handler
func NewRouter(opts Options, svc Services, log port.Logger) http.Handler {
	r := chi.NewRouter()

	// Order matters! Middleware is executed in the order added.
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recoverer(log))
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-API-Version"},
		MaxAge:         300,
	}))
	if opts.RateLimit != nil {
		r.Use(middleware.RateLimiter(*opts.RateLimit))
	}
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.APIVersion(opts.Version))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.MaxBodySize(opts.MaxRequestSize))

	r.Get("/health", healthHandler(opts))
	r.Get("/ready", readyHandler(svc.Store))

	skus := NewSKUHandler(svc.SKUs, log)
	r.Route("/api", func(r chi.Router) {
		r.Mount("/categories", NewCategoryHandler(svc.Categories, log).Routes())
		r.Mount("/products", NewProductHandler(svc.Products, skus, log, opts.DefaultPageSize).Routes())
	})

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	return r
}

func healthHandler(opts Options) http.HandlerFunc {
	started := opts.StartedAt
	if started.IsZero() {
		started = time.Now()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, dto.HealthResponse{
			Status:  "healthy",
			Version: opts.Version,
			Uptime:  time.Since(started).Round(time.Second).String(),
		})
	}
}

// readyHandler reports 503 while the store cannot be reached.
func readyHandler(store port.HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := dto.HealthResponse{Status: "ready", Checks: map[string]dto.HealthCheckResult{}}
		if store == nil {
			render.JSON(w, r, resp)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		start := time.Now()
		err := store.Ping(ctx)
		check := dto.HealthCheckResult{Status: "up", ResponseTime: time.Since(start).Milliseconds()}
		if err != nil {
			check.Status = "down"
			check.Message = err.Error()
			resp.Status = "not_ready"
			render.Status(r, http.StatusServiceUnavailable)
		}
		resp.Checks["store"] = check
		render.JSON(w, r, resp)
	}
}
