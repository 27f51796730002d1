// Package store provides the durable attribute store keyed by user identity.
package store

import "context"

// AttributeStore persists the allow-listed profile attributes across
// sessions. A single user has at most one active session, so last-write-wins
// per user id is sufficient; no transactional guarantee is assumed.
type AttributeStore interface {
	// Load returns the stored attributes for the user. A miss returns an
	// empty map, never an error.
	Load(ctx context.Context, userID string) (map[string]any, error)

	// Save overwrites the stored attributes for the user wholesale.
	Save(ctx context.Context, userID string, attrs map[string]any) error

	// Ping verifies store connectivity.
	Ping(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}
