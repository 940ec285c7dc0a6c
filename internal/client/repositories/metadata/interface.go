// Package metadata is the durable key/value store backing the client
// session. It plays the role a browser's localStorage plays for a web
// client: small named values that survive restarts.
package metadata

import (
	"context"
)

// Repository is a key/value store. Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
