package internal

// Handler declares routes on a router.
//
// Example:
//
//	type SessionHandler struct{}
//
//	func (h *SessionHandler) Routes(r internal.Router) {
//	    r.POST("/login", h.login)
//	    r.POST("/logout", h.logout)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the error to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
//
// Example:
//
//	func RequireSession(next internal.HandlerFunc) internal.HandlerFunc {
//	    return func(c internal.Context) error {
//	        if !c.Session().IsAuthenticated() {
//	            return c.Redirect(http.StatusSeeOther, "/login")
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
