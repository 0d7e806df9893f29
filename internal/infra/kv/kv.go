// Package kv provides the key-value persistence collaborator the stores
// are built on. Every backend offers the same three operations over a
// single shared key space; each operation is individually atomic, but
// there is no transaction spanning keys.
package kv

import "context"

// Store is the persistence contract. Implementations must tolerate
// concurrent calls; callers must not assume synchronous media underneath.
type Store interface {
	// Get retrieves the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes the value for key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
