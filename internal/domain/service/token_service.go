// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit
// within a single entity.
package service

// TokenService issues the opaque session tokens handed to the UI layer on
// login and registration. Tokens are a convenience carried alongside the
// session record; the persisted session itself is the source of truth.
type TokenService interface {
	// Issue creates a new session token for the given user ID.
	Issue(userID string) (string, error)

	// Verify checks a token and returns the user ID it was issued for.
	Verify(token string) (string, error)
}

// CredentialVerifier compares a submitted password against the stored one.
// This abstracts the comparison policy away from the identity service.
type CredentialVerifier interface {
	// Verify reports whether the submitted password matches the stored one.
	Verify(submitted, stored string) bool
}
