// Package metadata persists small string values (the session token pair) in
// the local SQLite database.
package metadata

import (
	"context"
)

// Repository is a key/value store. Get reports ok=false for missing keys;
// deleting a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
}
