package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quotely/quotely-api/internal/adapters/http/handlers"
	"github.com/quotely/quotely-api/internal/adapters/http/middleware"
	"github.com/quotely/quotely-api/internal/platform/config"
	"github.com/quotely/quotely-api/internal/platform/telemetry"
	"github.com/quotely/quotely-api/internal/ports"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// Tokens verifies bearer tokens on protected routes.
	Tokens ports.TokenIssuer

	// RootHandler serves the service banner.
	RootHandler *handlers.RootHandler

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// AuthHandler handles signup and login.
	AuthHandler *handlers.AuthHandler

	// QuoteHandler handles the quote catalog.
	QuoteHandler *handlers.QuoteHandler

	// ProverbHandler handles the proverb catalog.
	ProverbHandler *handlers.ProverbHandler

	// FavoritesHandler handles per-user favorites.
	FavoritesHandler *handlers.FavoritesHandler

	// LikesHandler handles like toggling.
	LikesHandler *handlers.LikesHandler

	// DashboardHandler handles aggregate views.
	DashboardHandler *handlers.DashboardHandler

	// ProfileHandler handles user profiles.
	ProfileHandler *handlers.ProfileHandler

	// ContactHandler handles the contact form and newsletter signups.
	ContactHandler *handlers.ContactHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline (applied per-route or globally)
//
// Route groups:
//   - / (root): service banner
//   - /-/ (internal): health endpoints, no auth required
//   - /api/ (public API): catalog, auth, contact endpoints
//   - /api/ + bearer token: favorites, likes, dashboard, profile updates
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	if cfg.RootHandler != nil {
		cfg.RootHandler.RegisterRootRoutes(engine)
	}

	// Register health endpoints (no auth, no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	// Setup API routes with timeout
	api := engine.Group("/api")
	if cfg.Timeout > 0 {
		api.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	setupAPIRoutes(api, cfg)
}

// setupAPIRoutes registers business API routes.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	// Public routes. The contact form accepts anonymous submissions but
	// links signed-in callers to their profile, so it resolves the token
	// when one is present.
	cfg.AuthHandler.RegisterAuthRoutes(rg)
	cfg.QuoteHandler.RegisterQuoteRoutes(rg)
	cfg.ProverbHandler.RegisterProverbRoutes(rg)

	contact := rg.Group("")
	contact.Use(middleware.OptionalAuth(cfg.Tokens))
	cfg.ContactHandler.RegisterContactRoutes(contact)

	// Protected routes require a valid bearer token.
	protected := rg.Group("")
	protected.Use(middleware.RequireAuth(cfg.Tokens))
	cfg.FavoritesHandler.RegisterFavoriteRoutes(protected)
	cfg.LikesHandler.RegisterLikeRoutes(protected)
	cfg.DashboardHandler.RegisterDashboardRoutes(protected)

	// Profile reads are public, updates are owner-only.
	cfg.ProfileHandler.RegisterProfileRoutes(rg, protected)
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
// Useful for testing or lightweight deployments.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}
