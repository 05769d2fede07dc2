// Package metadata stores small key/value pairs in the client's local
// database: the persisted session and similar single-value state.
package metadata

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
