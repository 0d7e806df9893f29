// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"matchday/internal/domain/entity"
)

// RegisterInput defines the data required to register a new user. The
// form layer validates these before submitting; the identity service
// re-checks them defensively.
type RegisterInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// IdentityUsecase manages the local user registry and the single active
// session.
//
// The session moves through three states: unknown at process start, then
// authenticated or anonymous after RestoreSession, with Login/Register
// moving to authenticated and Logout back to anonymous.
type IdentityUsecase interface {
	// Register adds a new user to the registry and opens a session for
	// them. Fails when the email is already registered (case-insensitive)
	// or when storage is unavailable.
	Register(ctx context.Context, input *RegisterInput) (*entity.Session, error)

	// Login opens a session for the registry user matching the email
	// (case-insensitive) and password (exact).
	Login(ctx context.Context, input *LoginInput) (*entity.Session, error)

	// Logout clears the persisted session. It is best-effort: storage
	// errors are logged, never surfaced.
	Logout(ctx context.Context)

	// RestoreSession reads the persisted session, once at startup. It is
	// idempotent and has no side effects beyond the read. Returns nil when
	// no session is persisted or storage is unreadable.
	RestoreSession(ctx context.Context) *entity.Session
}
