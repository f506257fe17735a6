package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devportal"
	"github.com/dmitrymomot/devportal/routes"
	"github.com/dmitrymomot/devportal/views"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	table := routes.Default()
	entries := table.Entries()

	want := []struct {
		path string
		name string
		page views.Page
	}{
		{"/account", "Account", views.Account},
		{"/device", "Device", views.Device},
		{"/profile", "Profile", views.Profile},
		{"/home", "Home", views.Home},
		{"/login", "Login", views.Login},
	}

	require.Len(t, entries, len(want))
	for i, w := range want {
		require.Equal(t, w.path, entries[i].Path)
		require.Equal(t, w.name, entries[i].Name)
		require.Same(t, w.page, entries[i].Page)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	table := routes.Default()

	byPath, ok := table.Resolve("/profile")
	require.True(t, ok)
	byName, ok := table.Named("Profile")
	require.True(t, ok)
	require.Equal(t, byName, byPath)

	for _, path := range []string{"/unknown", "/", "", "/home/", "/HOME", "home"} {
		_, ok := table.Resolve(path)
		require.False(t, ok, path)
	}

	_, ok = table.Named("profile")
	require.False(t, ok)
}

func TestEntriesIsACopy(t *testing.T) {
	t.Parallel()

	table := routes.Default()
	entries := table.Entries()
	entries[0].Path = "/hacked"

	e, ok := table.Resolve("/account")
	require.True(t, ok)
	require.Equal(t, "Account", e.Name)
	require.Equal(t, "/account", table.Entries()[0].Path)
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []routes.Entry
		want    error
	}{
		{name: "empty", want: routes.ErrEmptyTable},
		{name: "relative path", entries: []routes.Entry{{Path: "home", Name: "Home", Page: views.Home}}, want: routes.ErrInvalidPath},
		{name: "no name", entries: []routes.Entry{{Path: "/home", Page: views.Home}}, want: routes.ErrEmptyName},
		{name: "no page", entries: []routes.Entry{{Path: "/home", Name: "Home"}}, want: routes.ErrPageIsRequired},
		{
			name: "duplicate path",
			entries: []routes.Entry{
				{Path: "/home", Name: "Home", Page: views.Home},
				{Path: "/home", Name: "Start", Page: views.Home},
			},
			want: routes.ErrDuplicatePath,
		},
		{
			name: "duplicate name",
			entries: []routes.Entry{
				{Path: "/home", Name: "Home", Page: views.Home},
				{Path: "/start", Name: "Home", Page: views.Home},
			},
			want: routes.ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := routes.New(tt.entries...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTable_Serve(t *testing.T) {
	t.Parallel()

	table := routes.Default()
	app := devportal.New(
		devportal.WithHandlers(table),
		devportal.WithNotFoundHandler(table.NotFound),
		devportal.WithMethodNotAllowedHandler(table.MethodNotAllowed),
	)

	for _, e := range table.Entries() {
		t.Run(e.Name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, e.Path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			require.Contains(t, rec.Body.String(), "<title>"+views.ComposeTitle(e.Page.Title())+"</title>")
			require.Contains(t, rec.Body.String(), `<div id="app">`)
		})
	}

	t.Run("unknown path", func(t *testing.T) {
		t.Parallel()

		for _, path := range []string{"/unknown", "/", "/home/"} {
			rec := httptest.NewRecorder()
			app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			require.Equal(t, http.StatusNotFound, rec.Code, path)
			require.Contains(t, rec.Body.String(), `href="/login">Go to login</a>`, path)
		}
	})

	t.Run("wrong method", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/home", nil))
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestNav(t *testing.T) {
	t.Parallel()

	nav := routes.Default().Nav()
	require.Len(t, nav, 5)
	require.Equal(t, views.NavLink{Path: "/account", Label: "Account"}, nav[0])
	require.Equal(t, views.NavLink{Path: "/login", Label: "Login"}, nav[4])
}
