package ports

import "context"

// SessionState is a read-only lookup into host-managed session state.
// A missing key is reported through ok=false and is never an error.
type SessionState interface {
	Get(ctx context.Context, key string) (value any, ok bool)
}

// SessionStore is the writable side of session state, owned by the host.
type SessionStore interface {
	SessionState

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value any) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
