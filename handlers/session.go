package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/devportal"
	"github.com/dmitrymomot/devportal/pkg/session"
	"github.com/dmitrymomot/devportal/routes"
	"github.com/dmitrymomot/devportal/views"
)

// maxDispatchBody bounds the JSON accepted by the dispatch endpoint.
const maxDispatchBody = 64 << 10

// Session exposes the visitor's session store over HTTP.
type Session struct {
	table *routes.Table
}

// NewSession creates the session handler. table supplies the pages and
// navigation used when the login form is re-rendered.
func NewSession(table *routes.Table) *Session {
	return &Session{table: table}
}

func (h *Session) Routes(r devportal.Router) {
	r.GET("/api/session", h.state)
	r.POST("/api/session/dispatch", h.dispatch)
	r.POST("/login", h.login)
	r.POST("/logout", h.logout)
}

// state returns the current snapshot. It never creates a visitor.
func (h *Session) state(c devportal.Context) error {
	return c.JSON(http.StatusOK, c.Session())
}

// dispatch applies a JSON action. Actions are validated before the visitor
// is resolved, so rejected requests and LOGOUT from an anonymous client never
// create a visitor.
func (h *Session) dispatch(c devportal.Context) error {
	body := http.MaxBytesReader(c.Response(), c.Request().Body, maxDispatchBody)

	var action session.Action
	if err := json.NewDecoder(body).Decode(&action); err != nil {
		return c.Error(http.StatusBadRequest, "Request body must be a JSON action.", devportal.WithError(err))
	}
	if err := action.Validate(); err != nil {
		return c.Error(http.StatusBadRequest, err.Error(), devportal.WithError(err))
	}

	if action.Type == session.ActionLogout && !c.Session().IsAuthenticated() {
		return c.JSON(http.StatusOK, c.Session())
	}

	store, err := c.Store()
	if err != nil {
		return err
	}
	if err := store.DispatchContext(c, action); err != nil {
		return err
	}

	if action.Type == session.ActionLogin {
		if err := c.RotateSession(); err != nil {
			return err
		}
	}

	return c.JSON(http.StatusOK, store.State())
}

func (h *Session) login(c devportal.Context) error {
	form := views.LoginForm{
		ID:    strings.TrimSpace(c.Form("id")),
		Level: strings.TrimSpace(c.Form("level")),
	}
	token := strings.TrimSpace(c.Form("token"))

	level, err := strconv.Atoi(form.Level)
	switch {
	case form.ID == "":
		form.Error = "User ID is required."
	case token == "":
		form.Error = "Token is required."
	case err != nil || level < 0:
		form.Error = "Access level must be a whole number of zero or more."
	}
	if form.Error != "" {
		return h.renderLogin(c, http.StatusUnprocessableEntity, form)
	}

	store, err := c.Store()
	if err != nil {
		return err
	}

	if err := store.DispatchContext(c, session.LoginAction(form.ID, session.Credentials{Token: token, Level: level})); err != nil {
		if errors.Is(err, session.ErrInvalidPayload) {
			form.Error = "Those credentials were not accepted."
			return h.renderLogin(c, http.StatusUnprocessableEntity, form)
		}
		return err
	}

	if err := c.RotateSession(); err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/home")
}

func (h *Session) logout(c devportal.Context) error {
	if c.Session().IsAuthenticated() {
		store, err := c.Store()
		if err != nil {
			return err
		}
		if err := store.DispatchContext(c, session.LogoutAction()); err != nil {
			return err
		}
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Session) renderLogin(c devportal.Context, code int, form views.LoginForm) error {
	d := h.table.Data(c)
	d.Path = "/login"
	d.Login = form
	return c.Render(code, views.Document(d, views.Login))
}
