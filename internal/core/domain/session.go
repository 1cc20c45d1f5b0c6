package domain

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrIncompleteSession  = errors.New("session state is incomplete")
	ErrServiceUnavailable = errors.New("identity service unavailable")
	ErrUnexpectedResponse = errors.New("unexpected identity service response")
)

// LoginState is the position of a browser session in the login flow.
type LoginState string

const (
	StateAnonymous      LoginState = "anonymous"
	StateAuthenticating LoginState = "authenticating"
	StateAuthenticated  LoginState = "authenticated"
	StateLoggedOut      LoginState = "logged_out"
)

// SessionState is the identity held server-side for one browser session.
// A stored session always has all five fields populated.
type SessionState struct {
	Token    string `json:"token" bson:"token"`
	Username string `json:"username" bson:"username"`
	FullName string `json:"fullName" bson:"full_name"`
	Role     string `json:"role" bson:"role"`
	Email    string `json:"email" bson:"email"`
}

// NewSessionState copies the public fields of a login result.
func NewSessionState(r *LoginResult) SessionState {
	return SessionState{
		Token:    r.Token,
		Username: r.Username,
		FullName: r.FullName,
		Role:     r.Role,
		Email:    r.Email,
	}
}

// Complete reports whether the state satisfies the all-or-nothing invariant.
func (s *SessionState) Complete() bool {
	return s != nil &&
		!IsBlank(s.Token) &&
		!IsBlank(s.Username) &&
		!IsBlank(s.FullName) &&
		!IsBlank(s.Role) &&
		!IsBlank(s.Email)
}
