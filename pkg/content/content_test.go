package content_test

import (
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devportal/pkg/content"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"docs/home.md": &fstest.MapFile{Data: []byte(
			"---\ntitle: Welcome\nsummary: Start here\n---\n# Devices\n\nManage your **fleet**.\n",
		)},
		"docs/plain.md":  &fstest.MapFile{Data: []byte("Just text.\n")},
		"docs/broken.md": &fstest.MapFile{Data: []byte("---\ntitle: [unclosed\n---\nbody\n")},
		"docs/open.md":   &fstest.MapFile{Data: []byte("---\ntitle: x\n")},
		"docs/xss.md":    &fstest.MapFile{Data: []byte("Hi <script>alert(1)</script> <a href=\"javascript:alert(1)\">x</a>\n")},
	}
}

func TestLibrary_Get(t *testing.T) {
	t.Parallel()

	lib := content.New(testFS(), "docs")

	doc, err := lib.Get("home")
	require.NoError(t, err)
	require.Equal(t, "Welcome", doc.Title)
	require.Equal(t, "Start here", doc.Summary)
	require.Contains(t, doc.HTML, "<h1")
	require.Contains(t, doc.HTML, "<strong>fleet</strong>")

	again, err := lib.Get("home")
	require.NoError(t, err)
	require.Same(t, doc, again)

	plain, err := lib.Get("plain")
	require.NoError(t, err)
	require.Empty(t, plain.Title)
	require.Contains(t, plain.HTML, "Just text.")
}

func TestLibrary_Errors(t *testing.T) {
	t.Parallel()

	lib := content.New(testFS(), "docs")

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{name: "missing", doc: "nope", want: content.ErrNotFound},
		{name: "traversal", doc: "../docs/home", want: content.ErrNotFound},
		{name: "empty", doc: "", want: content.ErrNotFound},
		{name: "bad yaml", doc: "broken", want: content.ErrInvalidFrontmatter},
		{name: "unclosed", doc: "open", want: content.ErrInvalidFrontmatter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := lib.Get(tt.doc)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLibrary_Sanitizes(t *testing.T) {
	t.Parallel()

	doc, err := content.New(testFS(), "docs").Get("xss")
	require.NoError(t, err)
	require.NotContains(t, doc.HTML, "<script")
	require.NotContains(t, doc.HTML, "javascript:")
}

func TestLibrary_ConcurrentGet(t *testing.T) {
	t.Parallel()

	lib := content.New(testFS(), "docs")

	var wg sync.WaitGroup
	docs := make([]*content.Doc, 16)
	for i := range docs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := lib.Get("home")
			if err == nil {
				docs[i] = doc
			}
		}()
	}
	wg.Wait()

	for _, d := range docs {
		require.Same(t, docs[0], d)
	}
}
