package storages

import "context"

// Store is a string key-value store. Get reports ok=false when the
// key has never been set.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
}
