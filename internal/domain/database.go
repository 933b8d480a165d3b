package domain

import "context"

// Database is the storage lifecycle contract: apply pending schema
// migrations at startup, release the connection at shutdown. Repository
// access lives on the concrete store, not here.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
