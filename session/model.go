package session

// Session defines a public type used by mujairAuth APIs.
//
// Session instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Session struct {
	SessionID string
	Username  string
	Role      string
	Email     string

	CreatedAt int64
	ExpiresAt int64
}
