package internal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/devportal/pkg/cookie"
	"github.com/dmitrymomot/devportal/pkg/logger"
	"github.com/dmitrymomot/devportal/pkg/session"
)

// SessionManager binds visitors in a registry to a browser cookie.
type SessionManager struct {
	registry session.Registry
	cookies  *cookie.Manager
	logger   *slog.Logger
}

// NewSessionManager creates a SessionManager over the given registry.
// A nil cookie manager falls back to an unsigned default cookie.
func NewSessionManager(registry session.Registry, cookies *cookie.Manager) *SessionManager {
	if cookies == nil {
		cookies = cookie.New()
	}
	return &SessionManager{
		registry: registry,
		cookies:  cookies,
		logger:   logger.NewNope(),
	}
}

// SetLogger sets the logger used for lookup failures and mutation logs.
func (sm *SessionManager) SetLogger(l *slog.Logger) {
	if l != nil {
		sm.logger = l
	}
}

// Registry returns the underlying registry.
func (sm *SessionManager) Registry() session.Registry {
	return sm.registry
}

// Load returns the visitor named by the request cookie.
// A missing, forged or stale cookie yields a nil visitor and no error.
func (sm *SessionManager) Load(ctx context.Context, r *http.Request) (string, *session.Visitor, error) {
	token, err := sm.cookies.Read(r)
	switch {
	case errors.Is(err, cookie.ErrNotFound):
		return "", nil, nil
	case errors.Is(err, cookie.ErrBadSig):
		sm.logger.WarnContext(ctx, "rejected visitor cookie", slog.String("reason", "bad signature"))
		return "", nil, nil
	case err != nil:
		return "", nil, err
	}

	v, err := sm.registry.Get(ctx, token)
	if errors.Is(err, session.ErrNotFound) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}
	return token, v, nil
}

// Create registers a new visitor and sets its cookie on w.
func (sm *SessionManager) Create(ctx context.Context, w http.ResponseWriter) (string, *session.Visitor, error) {
	token, v, err := sm.registry.Create(ctx)
	if err != nil {
		return "", nil, err
	}

	visitorID := v.ID
	log := sm.logger
	v.Store.Subscribe(func(ctx context.Context, m session.Mutation, state session.Session) {
		log.InfoContext(ctx, "session mutation",
			slog.String("type", string(m.Type)),
			slog.String("visitor_id", visitorID),
			slog.Bool("authenticated", state.IsAuthenticated()),
		)
	})

	sm.cookies.Write(w, token)
	sm.logger.DebugContext(ctx, "visitor created", slog.String("visitor_id", v.ID))
	return token, v, nil
}

// Rotate re-keys the visitor under a fresh token and updates the cookie.
func (sm *SessionManager) Rotate(ctx context.Context, w http.ResponseWriter, token string) (string, error) {
	next, err := sm.registry.Rotate(ctx, token)
	if err != nil {
		return "", err
	}
	sm.cookies.Write(w, next)
	return next, nil
}
