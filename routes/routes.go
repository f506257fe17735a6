package routes

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/devportal"
	"github.com/dmitrymomot/devportal/middlewares"
	"github.com/dmitrymomot/devportal/views"
)

// Table validation errors.
var (
	ErrEmptyTable     = errors.New("routes: table has no entries")
	ErrInvalidPath    = errors.New("routes: path must start with /")
	ErrEmptyName      = errors.New("routes: name is required")
	ErrDuplicatePath  = errors.New("routes: duplicate path")
	ErrDuplicateName  = errors.New("routes: duplicate name")
	ErrPageIsRequired = errors.New("routes: page is required")
)

// Entry binds a URL path and a symbolic name to a page.
type Entry struct {
	Page views.Page
	Path string
	Name string
}

// Table is an immutable, ordered list of entries.
type Table struct {
	entries []Entry
	byPath  map[string]int
	byName  map[string]int
}

// Default returns the portal's five routes in their canonical order.
func Default() *Table {
	t, err := New(
		Entry{Path: "/account", Name: "Account", Page: views.Account},
		Entry{Path: "/device", Name: "Device", Page: views.Device},
		Entry{Path: "/profile", Name: "Profile", Page: views.Profile},
		Entry{Path: "/home", Name: "Home", Page: views.Home},
		Entry{Path: "/login", Name: "Login", Page: views.Login},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// New builds a table. Paths and names must be unique; paths are matched exactly.
func New(entries ...Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		entries: slices.Clone(entries),
		byPath:  make(map[string]int, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}

	for i, e := range t.entries {
		switch {
		case !strings.HasPrefix(e.Path, "/"):
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, e.Path)
		case e.Name == "":
			return nil, fmt.Errorf("%w: %q", ErrEmptyName, e.Path)
		case e.Page == nil:
			return nil, fmt.Errorf("%w: %q", ErrPageIsRequired, e.Path)
		}
		if _, ok := t.byPath[e.Path]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePath, e.Path)
		}
		if _, ok := t.byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		t.byPath[e.Path] = i
		t.byName[e.Name] = i
	}

	return t, nil
}

// Resolve returns the entry whose path equals path exactly.
func (t *Table) Resolve(path string) (Entry, bool) {
	i, ok := t.byPath[path]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Named returns the entry with the given name.
func (t *Table) Named(name string) (Entry, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Nav returns the header navigation in table order.
func (t *Table) Nav() []views.NavLink {
	nav := make([]views.NavLink, len(t.entries))
	for i, e := range t.entries {
		nav[i] = views.NavLink{Path: e.Path, Label: e.Name}
	}
	return nav
}

// Data builds view data for the current request.
func (t *Table) Data(c devportal.Context) views.Data {
	return views.Data{
		Session:   c.Session(),
		Path:      c.Request().URL.Path,
		RequestID: middlewares.GetRequestID(c),
		Nav:       t.Nav(),
	}
}

// Routes registers GET for every entry.
func (t *Table) Routes(r devportal.Router) {
	for _, e := range t.entries {
		r.GET(e.Path, t.page(e))
	}
}

func (t *Table) page(e Entry) devportal.HandlerFunc {
	return func(c devportal.Context) error {
		return c.Render(http.StatusOK, views.Document(t.Data(c), e.Page))
	}
}

// NotFound renders the not-found page with a 404.
func (t *Table) NotFound(c devportal.Context) error {
	return c.Render(http.StatusNotFound, views.Document(t.Data(c), views.NotFound))
}

// MethodNotAllowed answers 405 for known paths hit with an unsupported method.
func (t *Table) MethodNotAllowed(c devportal.Context) error {
	return c.Error(http.StatusMethodNotAllowed, "This page does not support "+c.Request().Method+" requests.")
}
