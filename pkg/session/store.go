package session

import "context"

// Store defines the interface for session persistence. Implementations must
// be safe for concurrent use and provide read-your-writes consistency per
// token: a Get following an Update or Delete for the same token observes the
// new state.
type Store interface {
	// Create stores a new session
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by token
	Get(ctx context.Context, token string) (*Session, error)

	// Update replaces an existing session
	Update(ctx context.Context, session *Session) error

	// Delete removes a session by token
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all expired sessions
	DeleteExpired(ctx context.Context) error
}
