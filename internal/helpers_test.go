package internal_test

import (
	"context"
	"io"
	"strings"
)

// componentFunc adapts a string builder callback to internal.Component.
type componentFunc func(ctx context.Context, w *strings.Builder)

func (f componentFunc) Render(ctx context.Context, w io.Writer) error {
	var b strings.Builder
	f(ctx, &b)
	_, err := io.WriteString(w, b.String())
	return err
}
