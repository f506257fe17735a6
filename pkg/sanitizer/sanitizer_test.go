package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devportal/pkg/sanitizer"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "u1", want: "u1"},
		{name: "trims", in: "  u1 \n", want: "u1"},
		{name: "strips tags", in: "<b>u1</b>", want: "u1"},
		{name: "drops script", in: "<script>alert(1)</script>", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "keeps ampersand", in: "ops&dev", want: "ops&dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, sanitizer.Text(tt.in))
		})
	}
}

func TestContent(t *testing.T) {
	t.Parallel()

	t.Run("keeps formatting", func(t *testing.T) {
		t.Parallel()
		in := "<h2>Devices</h2><p>See <a href=\"/device\">devices</a>.</p>"
		out := sanitizer.Content(in)
		require.Contains(t, out, "<h2>Devices</h2>")
		require.Contains(t, out, `href="/device"`)
		require.Contains(t, out, `rel="nofollow"`)
	})

	t.Run("removes active content", func(t *testing.T) {
		t.Parallel()
		in := `<p onclick="x()">hi</p><script>alert(1)</script><a href="javascript:alert(1)">x</a>`
		out := sanitizer.Content(in)
		require.NotContains(t, out, "onclick")
		require.NotContains(t, out, "<script")
		require.NotContains(t, out, "javascript:")
	})
}
