package session_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devportal/pkg/session"
)

func TestDispatch(t *testing.T) {
	t.Parallel()

	t.Run("LOGIN from wire form", func(t *testing.T) {
		t.Parallel()

		var a session.Action
		raw := `{"type":"LOGIN","payload":{"id":"u1","auth":{"token":"tok-abc","level":2}}}`
		require.NoError(t, json.Unmarshal([]byte(raw), &a))

		s := session.NewStore()
		require.NoError(t, s.Dispatch(a))

		out, err := json.Marshal(s.State())
		require.NoError(t, err)
		require.JSONEq(t, `{"id":"u1","auth":{"token":"tok-abc","level":2}}`, string(out))
	})

	t.Run("LOGOUT from wire form", func(t *testing.T) {
		t.Parallel()

		s := session.NewStore()
		require.NoError(t, s.Dispatch(session.LoginAction("u1", session.Credentials{Token: "t", Level: 1})))

		var a session.Action
		require.NoError(t, json.Unmarshal([]byte(`{"type":"LOGOUT"}`), &a))
		require.NoError(t, s.Dispatch(a))

		out, err := json.Marshal(s.State())
		require.NoError(t, err)
		require.JSONEq(t, `{"id":null,"auth":{"token":null,"level":null}}`, string(out))
	})

	t.Run("level zero is a valid level", func(t *testing.T) {
		t.Parallel()

		s := session.NewStore()
		require.NoError(t, s.Dispatch(session.LoginAction("u1", session.Credentials{Token: "t", Level: 0})))

		level, ok := s.State().Level()
		require.True(t, ok)
		require.Zero(t, level)
	})

	t.Run("unknown action", func(t *testing.T) {
		t.Parallel()

		s := session.NewStore()
		err := s.Dispatch(session.Action{Type: "REFRESH"})
		require.ErrorIs(t, err, session.ErrUnknownAction)
	})
}

func TestDispatch_InvalidPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "no payload", raw: `{"type":"LOGIN"}`},
		{name: "missing id", raw: `{"type":"LOGIN","payload":{"auth":{"token":"t","level":1}}}`},
		{name: "null id", raw: `{"type":"LOGIN","payload":{"id":null,"auth":{"token":"t","level":1}}}`},
		{name: "missing auth", raw: `{"type":"LOGIN","payload":{"id":"u1"}}`},
		{name: "missing token", raw: `{"type":"LOGIN","payload":{"id":"u1","auth":{"level":1}}}`},
		{name: "missing level", raw: `{"type":"LOGIN","payload":{"id":"u1","auth":{"token":"t"}}}`},
		{name: "empty id", raw: `{"type":"LOGIN","payload":{"id":"","auth":{"token":"t","level":1}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var a session.Action
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &a))

			s := session.NewStore()
			err := s.Dispatch(a)
			require.ErrorIs(t, err, session.ErrInvalidPayload)
			require.Equal(t, session.Session{}, s.State())
		})
	}
}

func TestAction_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, session.LogoutAction().Validate())
	require.NoError(t, session.LoginAction("u1", session.Credentials{Token: "t", Level: 0}).Validate())
	require.ErrorIs(t, session.Action{Type: "BOGUS"}.Validate(), session.ErrUnknownAction)
	require.ErrorIs(t, session.Action{Type: session.ActionLogin}.Validate(), session.ErrInvalidPayload)
	require.ErrorIs(t, session.LoginAction("u1", session.Credentials{}).Validate(), session.ErrInvalidPayload)
}

func TestAction_LevelMustBeInteger(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		`{"type":"LOGIN","payload":{"id":"u1","auth":{"token":"t","level":"admin"}}}`,
		`{"type":"LOGIN","payload":{"id":"u1","auth":{"token":"t","level":2.5}}}`,
	} {
		var a session.Action
		require.Error(t, json.Unmarshal([]byte(raw), &a), raw)
	}
}
