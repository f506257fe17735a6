package views

import (
	"context"
	"embed"
	"errors"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/devportal/pkg/content"
	"github.com/dmitrymomot/devportal/pkg/session"
)

// AppName is shown in the header and appended to page titles.
const AppName = "Device Portal"

// Assets holds the stylesheet served under /static/.
//
//go:embed static
var Assets embed.FS

//go:embed content
var copyFS embed.FS

var library = content.New(copyFS, "content")

// Page is a renderable screen.
type Page interface {
	// Title is the page's own title, without the app name.
	Title() string

	// Body renders the page inside the layout mount point.
	Body(d Data) templ.Component
}

// Data is everything a page may show for one request.
type Data struct {
	Session   session.Session
	Path      string
	RequestID string
	Nav       []NavLink
	Login     LoginForm
}

// NavLink is one entry of the header navigation.
type NavLink struct {
	Path  string
	Label string
}

// LoginForm carries values echoed back into the login form.
type LoginForm struct {
	ID    string
	Level string
	Error string
}

// Document renders p inside the layout.
func Document(d Data, p Page) templ.Component {
	return layout(d, p)
}

// Check renders every bundled document once. It is used as a readiness check.
func Check(context.Context) error {
	var errs []error
	for _, name := range docNames {
		if _, err := library.Get(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
