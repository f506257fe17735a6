package session

import "errors"

// Session errors.
var (
	// ErrInvalidPayload is returned when a LOGIN payload is missing a field.
	// The store state is left untouched.
	ErrInvalidPayload = errors.New("session: invalid payload")

	// ErrUnknownAction is returned by Dispatch for an action type other than LOGIN or LOGOUT.
	ErrUnknownAction = errors.New("session: unknown action")

	// ErrNotFound is returned when a visitor token is unknown or has expired.
	ErrNotFound = errors.New("session: not found")

	// ErrClosed is returned when a registry is used after Close.
	ErrClosed = errors.New("session: registry closed")

	// ErrNotConfigured is returned when session functionality is used
	// but no registry was configured on the app.
	ErrNotConfigured = errors.New("session: not configured")
)
