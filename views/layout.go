package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// ComposeTitle appends the app name to a page title.
func ComposeTitle(title string) string {
	if title == "" {
		return AppName
	}
	return title + " | " + AppName
}

func layout(d Data, p Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw(`<title>`)
		hw.text(ComposeTitle(p.Title()))
		hw.raw(`</title><link rel="stylesheet" href="/static/portal.css"></head><body>`)

		hw.raw(`<header class="topbar"><a class="brand" href="/home">`)
		hw.text(AppName)
		hw.raw(`</a>`)
		writeNav(hw, d)
		writeAccount(hw, d)
		hw.raw(`</header>`)

		hw.raw(`<main><div id="app">`)
		hw.render(ctx, p.Body(d))
		hw.raw(`</div></main>`)

		if d.RequestID != "" {
			hw.raw(`<footer><small>Request `)
			hw.text(d.RequestID)
			hw.raw(`</small></footer>`)
		}

		hw.raw(`</body></html>`)
		return hw.err
	})
}

func writeNav(hw *htmlWriter, d Data) {
	if len(d.Nav) == 0 {
		return
	}
	hw.raw(`<nav><ul>`)
	for _, link := range d.Nav {
		hw.raw(`<li><a href="`)
		hw.text(link.Path)
		hw.raw(`"`)
		if link.Path == d.Path {
			hw.raw(` class="active" aria-current="page"`)
		}
		hw.raw(`>`)
		hw.text(link.Label)
		hw.raw(`</a></li>`)
	}
	hw.raw(`</ul></nav>`)
}

func writeAccount(hw *htmlWriter, d Data) {
	if !d.Session.IsAuthenticated() {
		hw.raw(`<a class="signin" href="/login">Sign in</a>`)
		return
	}
	hw.raw(`<form class="signout" method="post" action="/logout"><span>`)
	hw.text(d.Session.ID())
	hw.raw(`</span><button type="submit">Sign out</button></form>`)
}

// sessionSummary describes who is signed in, for page bodies.
func sessionSummary(hw *htmlWriter, d Data) {
	if !d.Session.IsAuthenticated() {
		hw.raw(`<p class="session">You are not signed in. <a href="/login">Sign in</a></p>`)
		return
	}
	hw.raw(`<p class="session">Signed in as <strong>`)
	hw.text(d.Session.ID())
	hw.raw(`</strong>`)
	if level, ok := d.Session.Level(); ok {
		hw.raw(` with access level `)
		hw.text(strconv.Itoa(level))
	}
	hw.raw(`.</p>`)
}
