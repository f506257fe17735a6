package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Pages. Values are pointers so they compare by identity.
var (
	Account  Page = &docPage{title: "Account", doc: "account"}
	Device   Page = &docPage{title: "Device", doc: "device"}
	Profile  Page = &docPage{title: "Profile", doc: "profile"}
	Home     Page = &docPage{title: "Home", doc: "home"}
	Login    Page = &loginPage{}
	NotFound Page = &notFoundPage{}
)

var docNames = []string{"account", "device", "profile", "home", "login", "notfound"}

// docPage renders a markdown document followed by the session summary.
type docPage struct {
	title string
	doc   string
}

func (p *docPage) Title() string { return p.title }

func (p *docPage) Body(d Data) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		doc, err := library.Get(p.doc)
		if err != nil {
			return err
		}

		hw := &htmlWriter{w: w}
		hw.raw(`<section class="page page-`)
		hw.text(p.doc)
		hw.raw(`">`)
		hw.raw(doc.HTML)
		sessionSummary(hw, d)
		hw.raw(`</section>`)
		return hw.err
	})
}

type loginPage struct{}

func (*loginPage) Title() string { return "Login" }

func (*loginPage) Body(d Data) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		doc, err := library.Get("login")
		if err != nil {
			return err
		}

		hw := &htmlWriter{w: w}
		hw.raw(`<section class="page page-login">`)
		hw.raw(doc.HTML)

		if d.Session.IsAuthenticated() {
			sessionSummary(hw, d)
			hw.raw(`<form method="post" action="/logout"><button type="submit">Sign out</button></form>`)
			hw.raw(`</section>`)
			return hw.err
		}

		if d.Login.Error != "" {
			hw.raw(`<p class="error" role="alert">`)
			hw.text(d.Login.Error)
			hw.raw(`</p>`)
		}

		level := d.Login.Level
		if level == "" {
			level = "0"
		}

		hw.raw(`<form class="login" method="post" action="/login">`)
		hw.raw(`<label for="id">User ID</label><input id="id" name="id" type="text" autocomplete="username" required value="`)
		hw.text(d.Login.ID)
		hw.raw(`">`)
		hw.raw(`<label for="token">Token</label><input id="token" name="token" type="password" autocomplete="current-password" required>`)
		hw.raw(`<label for="level">Access level</label><input id="level" name="level" type="number" min="0" required value="`)
		hw.text(level)
		hw.raw(`">`)
		hw.raw(`<button type="submit">Sign in</button></form></section>`)
		return hw.err
	})
}

type notFoundPage struct{}

func (*notFoundPage) Title() string { return "Page not found" }

func (*notFoundPage) Body(d Data) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		doc, err := library.Get("notfound")
		if err != nil {
			return err
		}

		hw := &htmlWriter{w: w}
		hw.raw(`<section class="page page-notfound">`)
		hw.raw(doc.HTML)
		if d.Path != "" {
			hw.raw(`<p>Nothing lives at <code>`)
			hw.text(d.Path)
			hw.raw(`</code>.</p>`)
		}
		hw.raw(`<p><a class="button" href="/login">Go to login</a></p></section>`)
		return hw.err
	})
}

// ErrorPage renders a status code and a user-facing message.
func ErrorPage(code int, title, message string) Page {
	return &errorPage{code: code, title: title, message: message}
}

type errorPage struct {
	title   string
	message string
	code    int
}

func (p *errorPage) Title() string { return p.title }

func (p *errorPage) Body(Data) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section class="page page-error"><h1>`)
		hw.text(strconv.Itoa(p.code))
		hw.raw(` `)
		hw.text(p.title)
		hw.raw(`</h1><p>`)
		hw.text(p.message)
		hw.raw(`</p><p><a href="/home">Back to home</a></p></section>`)
		return hw.err
	})
}
