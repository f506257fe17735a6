package internal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/devportal/pkg/session"
)

// Component is the interface for renderable templates.
// It is satisfied by templ.Component.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Context provides request/response access and helper methods.
// It also implements context.Context by delegating to the request context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the wrapped http.ResponseWriter.
	Response() http.ResponseWriter

	// Param returns the URL parameter value by name.
	Param(name string) string

	// Form returns the form value by name.
	Form(name string) string

	// Header returns the request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// JSON writes a JSON response with the given status code.
	JSON(code int, v any) error

	// String writes a plain text response with the given status code.
	String(code int, s string) error

	// NoContent writes a response with no body.
	NoContent(code int) error

	// Redirect redirects to url with the given status code.
	Redirect(code int, url string) error

	// Render writes an HTML component with the given status code.
	Render(code int, component Component) error

	// Error builds an HTTPError without writing a response.
	// Return it from the handler to reach the error handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Written reports whether the response header has been sent.
	Written() bool

	// Logger returns the application logger.
	Logger() *slog.Logger

	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a value on the request context for downstream handlers.
	Set(key, value any)

	// Get returns a value stored with Set.
	Get(key any) any

	// Session returns a snapshot of the visitor's session.
	// Visitors without a cookie get the unauthenticated session.
	Session() session.Session

	// Store returns the visitor's store, creating the visitor if needed.
	// Returns session.ErrNotConfigured if sessions are not enabled.
	Store() (*session.Store, error)

	// RotateSession issues a new visitor token, keeping the store.
	RotateSession() error
}

// requestContext implements the Context interface.
type requestContext struct {
	request  *http.Request
	response *ResponseWriter
	logger   *slog.Logger
	sessions *SessionManager

	visitor       *session.Visitor
	token         string
	visitorLoaded bool
}

func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	return &requestContext{
		request:  r,
		response: NewResponseWriter(w),
		logger:   app.logger,
		sessions: app.sessions,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.response
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Form(name string) string {
	return c.request.FormValue(name)
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.response.Header().Set(name, value)
}

func (c *requestContext) JSON(code int, v any) error {
	c.response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.response.WriteHeader(code)
	_, err := io.WriteString(c.response, s)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	return nil
}

func (c *requestContext) Redirect(code int, url string) error {
	http.Redirect(c.response, c.request, url, code)
	return nil
}

func (c *requestContext) Render(code int, component Component) error {
	c.response.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.response.WriteHeader(code)
	return component.Render(c.request.Context(), c.response)
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(code, message, opts...)
}

func (c *requestContext) Written() bool {
	return c.response.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}

// loadVisitor resolves the cookie once per context.
func (c *requestContext) loadVisitor() (*session.Visitor, error) {
	if c.sessions == nil {
		return nil, session.ErrNotConfigured
	}
	if c.visitorLoaded {
		return c.visitor, nil
	}

	token, v, err := c.sessions.Load(c.request.Context(), c.request)
	if err != nil {
		return nil, err
	}

	c.token, c.visitor, c.visitorLoaded = token, v, true
	return v, nil
}

func (c *requestContext) Session() session.Session {
	v, err := c.loadVisitor()
	if err != nil {
		if c.sessions != nil {
			c.LogWarn("failed to load visitor", slog.Any("error", err))
		}
		return session.Session{}
	}
	if v == nil {
		return session.Session{}
	}
	return v.Store.State()
}

func (c *requestContext) Store() (*session.Store, error) {
	v, err := c.loadVisitor()
	if err != nil {
		return nil, err
	}

	if v == nil {
		token, created, err := c.sessions.Create(c.request.Context(), c.response)
		if err != nil {
			return nil, err
		}
		c.token, c.visitor = token, created
		v = created
	}

	return v.Store, nil
}

func (c *requestContext) RotateSession() error {
	if _, err := c.Store(); err != nil {
		return err
	}

	token, err := c.sessions.Rotate(c.request.Context(), c.response, c.token)
	if err != nil {
		return err
	}

	c.token = token
	return nil
}
