package http

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"rsvp/internal/delivery/http/controllers"
	"rsvp/internal/delivery/http/helpers"
	"rsvp/internal/delivery/http/middleware"
	"rsvp/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// healthTimeout bounds the readiness check behind GET /healthz.
const healthTimeout = 2 * time.Second

// RouterDeps holds everything NewRouter wires into routes.
type RouterDeps struct {
	Logger        *slog.Logger
	Confirmations *controllers.ConfirmationController
	Admin         *controllers.AdminController
	AdminAuth     domain.AdminAuthService
	// Limiter throttles the public write endpoints; nil disables rate limiting.
	Limiter *middleware.RateLimiter
	// Metrics serves GET /metrics; nil leaves the route unregistered.
	Metrics http.Handler
	// Ping reports whether the backing store is reachable.
	Ping func(ctx context.Context) error
	// Static holds index.html, the wasm form bundle and its assets. It is
	// served at GET / and under /static/; nil leaves both unregistered.
	Static fs.FS
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(d RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()
	limit := func(h http.HandlerFunc) http.HandlerFunc {
		if d.Limiter == nil {
			return h
		}
		return d.Limiter.Limit(h)
	}
	requireAdmin := middleware.RequireAdmin(d.AdminAuth, d.Logger)

	// Guests
	mux.HandleFunc("POST /confirmar-presenca", limit(d.Confirmations.Confirm))

	// Admin
	mux.HandleFunc("POST /admin/login", limit(d.Admin.Login))
	mux.HandleFunc("GET /admin/confirmados", requireAdmin(d.Admin.List))
	mux.HandleFunc("GET /admin/confirmados/csv", requireAdmin(d.Admin.ExportCSV))

	// Operations
	mux.HandleFunc("GET /healthz", healthz(d.Ping))
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics)
	}

	// Page
	if d.Static != nil {
		mux.HandleFunc("GET /{$}", index(d.Static))
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(d.Static)))
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// Handler wraps the router with the middleware chain shared by every route.
// Metrics sits innermost so it sees the pattern the mux matched.
func Handler(mux *http.ServeMux, logger *slog.Logger, allowedOrigins []string, metrics *middleware.Metrics) http.Handler {
	var h http.Handler = mux
	if metrics != nil {
		h = metrics.Middleware(h)
	}
	h = middleware.LoggingMiddleware(logger, h)
	h = middleware.RequestID(h)
	return middleware.CORS(allowedOrigins, h)
}

func healthz(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := ping(ctx); err != nil {
				helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "database unreachable")
				return
			}
		}
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func index(static fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, static, "index.html")
	}
}
