// Package storage provides the app-local persistent key/value store that
// backs the cart, the session token and the admin display profile. Values
// are opaque byte blobs; callers own their serialization.
package storage

import "errors"

var ErrNotFound = errors.New("storage: key not found")

// Store is the persistence contract shared by all app state.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Remove deletes the value under key. Removing an absent key is a no-op.
	Remove(key string) error
}
