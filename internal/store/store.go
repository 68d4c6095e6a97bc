// Package store holds the small process-wide documents (guardians, last
// location, memory) and the key-value backends that persist them.
package store

import "context"

// Document keys.
const (
	KeyGuardians    = "guardians"
	KeyLastLocation = "last_location"
	KeyMemory       = "memory"
)

// Backend is a key-value snapshot store. Load returns domain.ErrNotFound
// when the key has never been saved.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Ping(ctx context.Context) error
}
