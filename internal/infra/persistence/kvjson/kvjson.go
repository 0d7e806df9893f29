// Package kvjson contains the concrete implementation of the persistence
// layer: each repository serializes its whole collection as a JSON blob
// under one key of the backing key-value store.
package kvjson

// Persisted key names. These are local storage keys, not a protocol
// contract with other systems.
const (
	registryKey  = "user-registry"
	sessionKey   = "current-session"
	favoritesKey = "favorites-collection"
)
