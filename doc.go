// Package devportal is the web kernel of the developer portal.
//
// It wraps chi with a handler signature that returns errors, a Context that
// exposes the visitor's authentication session, and a graceful-shutdown
// runtime. The portal itself is assembled in the bootstrap package.
//
// # Quick Start
//
//	app := devportal.New(
//	    devportal.WithLogger(log),
//	    devportal.WithSessions(session.NewMemoryRegistry()),
//	    devportal.WithHandlers(routes.Default()),
//	)
//	if err := app.Run(":8080", devportal.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement Routes and receive dependencies through constructors:
//
//	type SessionHandler struct{}
//
//	func (h *SessionHandler) Routes(r devportal.Router) {
//	    r.GET("/api/session", h.state)
//	}
//
//	func (h *SessionHandler) state(c devportal.Context) error {
//	    return c.JSON(http.StatusOK, c.Session())
//	}
//
// # Sessions
//
// Every browser gets its own session.Store, found through a signed cookie.
// Reading the session never creates a visitor; Context.Store does.
package devportal
