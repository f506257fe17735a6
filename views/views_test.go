package views

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devportal/pkg/session"
)

func render(t *testing.T, d Data, p Page) string {
	t.Helper()

	var b strings.Builder
	require.NoError(t, Document(d, p).Render(context.Background(), &b))
	return b.String()
}

func signedIn(t *testing.T, id string, level int) session.Session {
	t.Helper()

	s := session.NewStore()
	require.NoError(t, s.Login(id, session.Credentials{Token: "secret-token", Level: level}))
	return s.State()
}

func TestComposeTitle(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Device | "+AppName, ComposeTitle("Device"))
	require.Equal(t, AppName, ComposeTitle(""))
}

func TestDocument_LayoutMountPoint(t *testing.T) {
	t.Parallel()

	nav := []NavLink{{Path: "/home", Label: "Home"}, {Path: "/device", Label: "Device"}}
	got := render(t, Data{Path: "/device", Nav: nav, RequestID: "req-1"}, Device)

	require.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
	require.Contains(t, got, `<div id="app"><section class="page page-device">`)
	require.Contains(t, got, "<title>Device | "+AppName+"</title>")
	require.Contains(t, got, `<a href="/device" class="active" aria-current="page">Device</a>`)
	require.Contains(t, got, `<a href="/home">Home</a>`)
	require.Contains(t, got, `href="/login">Sign in</a>`)
	require.Contains(t, got, "req-1")
}

func TestPages_RenderCopy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page    Page
		title   string
		heading string
	}{
		{Account, "Account", "<h1>Account</h1>"},
		{Device, "Device", "<h1>Device</h1>"},
		{Profile, "Profile", "<h1>Profile</h1>"},
		{Home, "Home", "<h1>Welcome</h1>"},
		{Login, "Login", "<h1>Sign in</h1>"},
		{NotFound, "Page not found", "<h1>Page not found</h1>"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.title, tt.page.Title())
			require.Contains(t, render(t, Data{}, tt.page), tt.heading)
		})
	}
}

func TestPages_SessionAware(t *testing.T) {
	t.Parallel()

	d := Data{Session: signedIn(t, "alice<script>", 3)}
	got := render(t, d, Profile)

	require.Contains(t, got, "Signed in as <strong>alice&lt;script&gt;</strong> with access level 3.")
	require.Contains(t, got, `action="/logout"`)
	require.NotContains(t, got, "secret-token")
	require.NotContains(t, got, "alice<script>")
}

func TestLogin_Form(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		got := render(t, Data{}, Login)
		require.Contains(t, got, `<form class="login" method="post" action="/login">`)
		require.Contains(t, got, `name="level" type="number" min="0" required value="0"`)
		require.NotContains(t, got, `role="alert"`)
	})

	t.Run("echoes input and error", func(t *testing.T) {
		t.Parallel()

		got := render(t, Data{Login: LoginForm{ID: `bob"`, Level: "2", Error: "Token is required."}}, Login)
		require.Contains(t, got, `value="bob&#34;"`)
		require.Contains(t, got, `value="2"`)
		require.Contains(t, got, `<p class="error" role="alert">Token is required.</p>`)
	})

	t.Run("signed in", func(t *testing.T) {
		t.Parallel()

		got := render(t, Data{Session: signedIn(t, "carol", 1)}, Login)
		require.NotContains(t, got, `class="login"`)
		require.Contains(t, got, "Signed in as <strong>carol</strong>")
	})
}

func TestNotFound_LinksToLogin(t *testing.T) {
	t.Parallel()

	got := render(t, Data{Path: "/nope<b>"}, NotFound)
	require.Contains(t, got, `href="/login">Go to login</a>`)
	require.Contains(t, got, "<code>/nope&lt;b&gt;</code>")
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	got := render(t, Data{}, ErrorPage(500, "Internal Server Error", "Something broke."))
	require.Contains(t, got, "<h1>500 Internal Server Error</h1>")
	require.Contains(t, got, "<p>Something broke.</p>")
}

func TestCheck(t *testing.T) {
	t.Parallel()

	require.NoError(t, Check(context.Background()))
}

func TestPagesAreDistinct(t *testing.T) {
	t.Parallel()

	pages := []Page{Account, Device, Profile, Home, Login, NotFound}
	seen := make(map[Page]bool)
	for _, p := range pages {
		require.False(t, seen[p])
		seen[p] = true
	}
}
