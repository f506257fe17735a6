// Package sanitizer cleans untrusted text and rendered HTML.
package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy  *bluemonday.Policy
	contentPolicy *bluemonday.Policy
	initOnce      sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Page copy: headings, paragraphs, lists, tables, emphasis, code and links.
		contentPolicy = bluemonday.NewPolicy()
		contentPolicy.AllowStandardURLs()
		contentPolicy.AllowElements(
			"h1", "h2", "h3", "h4",
			"p", "br", "hr",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote", "del",
			"table", "thead", "tbody", "tr", "th", "td",
		)
		contentPolicy.AllowAttrs("href").OnElements("a")
		contentPolicy.RequireNoFollowOnLinks(true)
	})
}

// Text strips all markup and surrounding whitespace and returns plain,
// unescaped text. Escape it again when writing HTML.
func Text(s string) string {
	initPolicies()
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// Content keeps basic formatting and links and removes everything else,
// including scripts, event handlers and javascript: URLs.
func Content(s string) string {
	initPolicies()
	return contentPolicy.Sanitize(s)
}
