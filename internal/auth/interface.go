package auth

// AuthService manages user accounts and the single process-wide session.
type AuthService interface {
	// Register creates a user. ErrDuplicateEmail leaves the collection untouched.
	// An empty role defaults to RoleRegular.
	Register(email, password, name string, role Role) (*User, error)
	// Login validates credentials against an active user. On success it
	// replaces the current session and returns it with a signed bearer token;
	// on failure the existing session is left untouched.
	Login(email, password string) (*Session, string, error)
	// Logout clears the current session. Idempotent.
	Logout()
	// Current returns the session, or nil when anonymous.
	Current() *Session
	// ParseToken rebuilds the caller's session from a bearer token.
	ParseToken(token string) (*Session, error)

	ListUsers() ([]User, error)
	DeactivateUser(id string) error
}
