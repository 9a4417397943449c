package metadata

import (
	"context"
)

// Repository is the local key/value table the client keeps its session in.
type Repository interface {
	// Get returns the value under key; found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set inserts or overwrites key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes keys; absent keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
