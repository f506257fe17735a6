package session

// Session is the authentication state of one visitor.
// A nil field means "unauthenticated"; the three fields are always all nil
// or all non-nil.
type Session struct {
	UserID *string `json:"id"`
	Auth   Auth    `json:"auth"`
}

// Auth holds the credential and authorization level of an authenticated session.
type Auth struct {
	Token *string `json:"token"`
	Level *int    `json:"level"`
}

// Credentials is the auth payload supplied to Login.
//
// Level is a whole number. On the wire it must be a JSON integer; strings
// such as "admin" or fractions such as 2.5 fail to decode and the action is
// rejected before it reaches a store.
type Credentials struct {
	Token string `json:"token"`
	Level int    `json:"level"`
}

// IsAuthenticated returns true if the session carries a user.
func (s Session) IsAuthenticated() bool {
	return s.UserID != nil
}

// ID returns the user id or an empty string for an unauthenticated session.
func (s Session) ID() string {
	if s.UserID == nil {
		return ""
	}
	return *s.UserID
}

// Token returns the auth token or an empty string.
func (s Session) Token() string {
	if s.Auth.Token == nil {
		return ""
	}
	return *s.Auth.Token
}

// Level returns the authorization level and whether one is set.
func (s Session) Level() (int, bool) {
	if s.Auth.Level == nil {
		return 0, false
	}
	return *s.Auth.Level, true
}

// clone returns a copy that shares no pointers with s.
func (s Session) clone() Session {
	if !s.IsAuthenticated() {
		return Session{}
	}
	return authenticated(*s.UserID, Credentials{Token: *s.Auth.Token, Level: *s.Auth.Level})
}

func authenticated(userID string, auth Credentials) Session {
	return Session{
		UserID: &userID,
		Auth: Auth{
			Token: &auth.Token,
			Level: &auth.Level,
		},
	}
}
