package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/devportal"
	"github.com/dmitrymomot/devportal/config"
	"github.com/dmitrymomot/devportal/handlers"
	"github.com/dmitrymomot/devportal/middlewares"
	"github.com/dmitrymomot/devportal/pkg/cookie"
	"github.com/dmitrymomot/devportal/pkg/logger"
	"github.com/dmitrymomot/devportal/pkg/session"
	"github.com/dmitrymomot/devportal/routes"
	"github.com/dmitrymomot/devportal/views"
)

// sentryFlushTimeout bounds how long shutdown waits for buffered events.
const sentryFlushTimeout = 2 * time.Second

// Portal is the assembled application.
type Portal struct {
	app      *devportal.App
	registry session.Registry
	table    *routes.Table
	log      *slog.Logger
	cfg      config.Config
}

// New wires the route table, the visitor registry, middleware and handlers
// into one application. Nothing is global: every dependency is built here
// and passed down.
func New(cfg config.Config, log *slog.Logger) (*Portal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNope()
	}

	registry := session.NewMemoryRegistry(
		session.WithIdleTTL(cfg.Session.IdleTTL),
		session.WithCleanupInterval(cfg.Session.CleanupInterval),
		session.WithMaxVisitors(cfg.Session.MaxVisitors),
	)

	table := routes.Default()

	p := &Portal{
		registry: registry,
		table:    table,
		log:      log,
		cfg:      cfg,
	}

	p.app = devportal.New(
		devportal.WithLogger(log),
		devportal.WithSessions(registry,
			cookie.WithName(cfg.Cookie.Name),
			cookie.WithSecret(cfg.Cookie.Secret),
			cookie.WithMaxAge(int(cfg.Cookie.MaxAge/time.Second)),
			cookie.WithSecure(cfg.Cookie.Secure),
		),
		devportal.WithMiddleware(
			middlewares.RequestID(),
			middlewares.AccessLog(middlewares.WithSkipPaths("/health/", "/static/")),
			middlewares.Recover(),
		),
		devportal.WithStaticFiles("/static/", views.Assets, "static"),
		devportal.WithHealthChecks(
			devportal.WithReadinessCheck("content", views.Check),
			devportal.WithReadinessCheck("sessions", p.registryCheck),
		),
		devportal.WithHandlers(table, handlers.NewSession(table)),
		devportal.WithNotFoundHandler(table.NotFound),
		devportal.WithMethodNotAllowedHandler(table.MethodNotAllowed),
		devportal.WithErrorHandler(p.handleError),
	)

	log.Info("portal configured",
		slog.Int("routes", len(table.Entries())),
		slog.Bool("signed_cookies", cfg.Cookie.Secret != ""),
		slog.Bool("debug", cfg.Debug),
	)

	return p, nil
}

// Handler returns the root HTTP handler.
func (p *Portal) Handler() http.Handler {
	return p.app.Handler()
}

// Routes returns the route table.
func (p *Portal) Routes() *routes.Table {
	return p.table
}

// Run serves on the configured address until ctx is cancelled or the
// process receives SIGINT/SIGTERM, then shuts down gracefully.
func (p *Portal) Run(ctx context.Context) error {
	return p.app.Run(p.cfg.Address,
		devportal.WithContext(ctx),
		devportal.Logger(p.log),
		devportal.ShutdownTimeout(p.cfg.ShutdownTimeout),
		devportal.ShutdownHook(p.Close),
		devportal.ShutdownHook(logger.FlushSentry(sentryFlushTimeout)),
	)
}

// Close releases the visitor registry.
func (p *Portal) Close(context.Context) error {
	return p.registry.Close()
}

func (p *Portal) registryCheck(ctx context.Context) error {
	_, err := p.registry.Get(ctx, "")
	if errors.Is(err, session.ErrClosed) {
		return err
	}
	return nil
}

// handleError renders JSON for /api/ paths and the error page elsewhere.
func (p *Portal) handleError(c devportal.Context, err error) error {
	code := http.StatusInternalServerError
	title := http.StatusText(code)
	message := "Something went wrong. Please try again."

	if httpErr := devportal.AsHTTPError(err); httpErr != nil {
		code = httpErr.Code
		title = httpErr.StatusText()
		message = httpErr.Message
	}

	if code >= http.StatusInternalServerError {
		c.LogError("request failed", slog.Int("status", code), slog.Any("error", err))
	} else {
		c.LogDebug("request rejected", slog.Int("status", code), slog.Any("error", err))
	}

	requestID := middlewares.GetRequestID(c)

	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return c.JSON(code, errorResponse{Error: message, Code: code, RequestID: requestID})
	}

	return c.Render(code, views.Document(p.table.Data(c), views.ErrorPage(code, title, message)))
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
	Code      int    `json:"code"`
}
