// Package internal provides the core types behind the devportal web kernel.
//
// Import "github.com/dmitrymomot/devportal" instead, which re-exports the
// public API.
//
// # Core Types
//
//   - App: owns routing, middleware and graceful shutdown
//   - Context: request/response access plus the visitor's session
//   - Router: interface handlers use to declare routes
//   - Handler: implemented by types that declare routes
//   - HandlerFunc: route handler signature returning an error
//   - Middleware: wraps handlers with cross-cutting behavior
//   - SessionManager: binds per-visitor session stores to a cookie
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed to any function that
// expects one:
//
//	func (h *Handler) state(c internal.Context) error {
//	    return c.JSON(http.StatusOK, c.Session())
//	}
//
// # Sessions
//
// WithSessions enables one session.Store per visitor. Reading never creates
// a visitor: Session returns the unauthenticated state for unknown browsers.
// Store creates the visitor on first use and sets the cookie, so call it
// before writing the response body.
//
//	func (h *Handler) login(c internal.Context) error {
//	    store, err := c.Store()
//	    if err != nil {
//	        return err
//	    }
//	    if err := store.Login(id, creds); err != nil {
//	        return c.Error(http.StatusUnprocessableEntity, "invalid credentials", internal.WithError(err))
//	    }
//	    if err := c.RotateSession(); err != nil {
//	        return err
//	    }
//	    return c.Redirect(http.StatusSeeOther, "/home")
//	}
//
// # Error Handling
//
// Handlers return errors; the App passes them to the ErrorHandler set with
// WithErrorHandler. HTTPError carries the status code and user-facing
// message. Without an ErrorHandler, HTTPErrors become plain-text responses
// and anything else becomes a 500.
package internal
