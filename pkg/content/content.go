package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dmitrymomot/devportal/pkg/cache"
	"github.com/dmitrymomot/devportal/pkg/sanitizer"
)

var (
	ErrNotFound           = errors.New("content: document not found")
	ErrInvalidFrontmatter = errors.New("content: invalid frontmatter")
	ErrRenderFailed       = errors.New("content: render failed")
)

// Doc is a rendered markdown document.
type Doc struct {
	Title   string
	Summary string
	HTML    string // sanitized
}

// Library renders markdown documents from a filesystem on first use and
// caches the result.
type Library struct {
	fs   fs.FS
	md   goldmark.Markdown
	docs *cache.Memory[*Doc]
	dir  string
}

// New creates a library reading "<name>.md" files from dir inside fsys.
//
// Example:
//
//	//go:embed docs
//	var docsFS embed.FS
//
//	lib := content.New(docsFS, "docs")
//	doc, err := lib.Get("home")
func New(fsys fs.FS, dir string) *Library {
	if dir == "" {
		dir = "."
	}
	return &Library{
		fs:  fsys,
		dir: dir,
		md:  goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough)),
		// Rendered docs never expire, so no janitor runs.
		docs: cache.NewMemory[*Doc](cache.WithCleanupInterval(0)),
	}
}

// Get returns the named document, rendering it on first access.
// Concurrent first accesses render once.
func (l *Library) Get(name string) (*Doc, error) {
	if strings.ContainsAny(name, `/\`) || name == "" {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	ctx := context.Background()
	return l.docs.GetOrSet(ctx, name, func(ctx context.Context) (*Doc, time.Duration, error) {
		if doc, err := l.docs.Get(ctx, name); err == nil {
			return doc, cache.NoExpiration, nil
		}

		raw, err := fs.ReadFile(l.fs, path.Join(l.dir, name+".md"))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
		}

		doc, err := l.render(raw)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", name, err)
		}
		return doc, cache.NoExpiration, nil
	})
}

func (l *Library) render(raw []byte) (*Doc, error) {
	fm, body, err := splitFrontmatter(raw)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := l.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	return &Doc{
		Title:   sanitizer.Text(fm.Title),
		Summary: sanitizer.Text(fm.Summary),
		HTML:    sanitizer.Content(buf.String()),
	}, nil
}
