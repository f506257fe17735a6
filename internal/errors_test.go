package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devportal/internal"
)

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("wrapped", func(t *testing.T) {
		t.Parallel()

		httpErr := internal.ErrUnprocessable("bad credentials")
		err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", httpErr))

		require.True(t, internal.IsHTTPError(err))
		require.Same(t, httpErr, internal.AsHTTPError(err))
	})

	t.Run("unrelated", func(t *testing.T) {
		t.Parallel()

		require.False(t, internal.IsHTTPError(errors.New("boom")))
		require.Nil(t, internal.AsHTTPError(nil))
	})
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	cause := errors.New("store rejected payload")
	err := internal.NewHTTPError(http.StatusNotFound, "no such page",
		internal.WithError(cause),
		internal.WithRequestID("req-1"),
	)

	require.Equal(t, "no such page", err.Error())
	require.ErrorIs(t, err, cause)
	require.Equal(t, "req-1", err.RequestID)
	require.Equal(t, "Not Found", err.StatusText())

	err = internal.ErrInternal("oops", internal.WithTitle("Broken"))
	require.Equal(t, http.StatusInternalServerError, err.Code)
	require.Equal(t, "Broken", err.StatusText())

	require.Equal(t, http.StatusBadRequest, internal.ErrBadRequest("x").Code)
	require.Equal(t, http.StatusNotFound, internal.ErrNotFound("x").Code)
	require.Equal(t, http.StatusMethodNotAllowed, internal.ErrMethodNotAllowed("x").Code)
}
