// Package metadata is the key/value table of the client database. The
// credential store keeps the bearer token here.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns found == false, and no error, when key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
