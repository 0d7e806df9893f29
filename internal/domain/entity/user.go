// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is a record in the local user registry. The registry is the only
// place the password is kept; it is stored as entered, matching the
// behavior of the device storage this replaces. Records are created at
// registration time and never mutated or deleted afterwards.
type User struct {
	ID        string `json:"id"`        // Unique identifier, assigned at registration.
	FirstName string `json:"firstName"` // The user's given name.
	LastName  string `json:"lastName"`  // The user's family name.
	Email     string `json:"email"`     // Login identifier, unique case-insensitively within the registry.
	Password  string `json:"password"`  // Stored in clear text; compared byte-for-byte at login.
}

// Session is the currently authenticated user's public record. It is a
// projection of a registry User with the password stripped, held under its
// own storage key so it can be cleared independently on logout.
type Session struct {
	UserID    string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Token     string `json:"token,omitempty"` // Opaque session token issued at login/registration.
}

// NewSession derives the session projection for a registry user.
// The password is never copied into the session.
func NewSession(user *User, token string) *Session {
	return &Session{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Token:     token,
	}
}
