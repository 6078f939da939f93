package domain

// Session is the server-side record of an authenticated principal. It is
// persisted in the session store keyed by an opaque token; the client only
// ever sees the token.
type Session struct {
	User    string `json:"user"`
	Role    Role   `json:"role"`
	IsAdmin bool   `json:"is_admin"`
}

// NewSession builds a session for username, normalizing the raw role name.
// Role normalization happens here and only here.
func NewSession(username, rawRole string) *Session {
	role := RoleFromString(rawRole)
	return &Session{
		User:    username,
		Role:    role,
		IsAdmin: role.IsAdmin(),
	}
}

// Active reports whether the session belongs to a logged-in user.
func (s *Session) Active() bool {
	return s != nil && s.User != ""
}
