package session

import "fmt"

// ActionType names a store operation.
type ActionType string

// Store actions.
const (
	ActionLogin  ActionType = "LOGIN"
	ActionLogout ActionType = "LOGOUT"
)

// Action is a named request to change the store.
//
// Wire form:
//
//	{"type": "LOGIN", "payload": {"id": "u1", "auth": {"token": "tok-abc", "level": 2}}}
//	{"type": "LOGOUT"}
type Action struct {
	Payload *LoginPayload `json:"payload,omitempty"`
	Type    ActionType    `json:"type"`
}

// LoginPayload is the LOGIN action payload.
// Fields are pointers so that a missing field can be told apart from a zero value.
type LoginPayload struct {
	ID   *string      `json:"id"`
	Auth *PayloadAuth `json:"auth"`
}

// PayloadAuth is the auth part of a LOGIN payload.
type PayloadAuth struct {
	Token *string `json:"token"`
	Level *int    `json:"level"`
}

// LoginAction builds a LOGIN action.
func LoginAction(userID string, auth Credentials) Action {
	return Action{
		Type: ActionLogin,
		Payload: &LoginPayload{
			ID:   &userID,
			Auth: &PayloadAuth{Token: &auth.Token, Level: &auth.Level},
		},
	}
}

// LogoutAction builds a LOGOUT action.
func LogoutAction() Action {
	return Action{Type: ActionLogout}
}

// Validate checks the action without touching any store.
// It returns ErrUnknownAction or ErrInvalidPayload exactly as Dispatch would.
func (a Action) Validate() error {
	switch a.Type {
	case ActionLogin:
		_, _, err := a.Payload.credentials()
		return err
	case ActionLogout:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
}

// credentials extracts Login arguments, rejecting missing or empty fields.
func (p *LoginPayload) credentials() (string, Credentials, error) {
	switch {
	case p == nil:
		return "", Credentials{}, fmt.Errorf("%w: payload is required", ErrInvalidPayload)
	case p.ID == nil:
		return "", Credentials{}, fmt.Errorf("%w: id is required", ErrInvalidPayload)
	case p.Auth == nil:
		return "", Credentials{}, fmt.Errorf("%w: auth is required", ErrInvalidPayload)
	case p.Auth.Token == nil:
		return "", Credentials{}, fmt.Errorf("%w: auth.token is required", ErrInvalidPayload)
	case p.Auth.Level == nil:
		return "", Credentials{}, fmt.Errorf("%w: auth.level is required", ErrInvalidPayload)
	case *p.ID == "":
		return "", Credentials{}, fmt.Errorf("%w: id is required", ErrInvalidPayload)
	case *p.Auth.Token == "":
		return "", Credentials{}, fmt.Errorf("%w: auth.token is required", ErrInvalidPayload)
	}
	return *p.ID, Credentials{Token: *p.Auth.Token, Level: *p.Auth.Level}, nil
}
