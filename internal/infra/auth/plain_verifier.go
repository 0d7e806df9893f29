package auth

import (
	"crypto/subtle"

	"matchday/internal/domain/service"
)

// plainVerifier implements service.CredentialVerifier with an exact
// byte-for-byte comparison against the stored password. Passwords are kept
// in clear text in local storage; this mirrors the device-storage behavior
// being reimplemented and is unsuitable for server-side multi-user
// authentication.
type plainVerifier struct{}

// NewPlainVerifier is the constructor for plainVerifier.
func NewPlainVerifier() service.CredentialVerifier {
	return plainVerifier{}
}

// Verify reports whether the submitted password matches the stored one.
func (plainVerifier) Verify(submitted, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(stored)) == 1
}
