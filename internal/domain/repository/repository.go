// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
//
// Each store owns a single key in the backing key-value storage and reads
// or writes its collection as a whole; there is no cross-key transaction.
// The identity and favorites stores use disjoint keys and never contend.
package repository

import (
	"context"
	"errors"

	"matchday/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session is persisted.
var ErrSessionNotFound = errors.New("no persisted session")

// UserRepository persists the local user registry as one unit.
type UserRepository interface {
	// Load retrieves the full registry. An absent key yields an empty
	// registry, not an error.
	Load(ctx context.Context) ([]entity.User, error)

	// Save overwrites the full registry.
	Save(ctx context.Context, users []entity.User) error
}

// SessionRepository persists the single active session.
type SessionRepository interface {
	// Load retrieves the persisted session, or ErrSessionNotFound when the
	// key is absent.
	Load(ctx context.Context) (*entity.Session, error)

	// Save overwrites the persisted session.
	Save(ctx context.Context, session *entity.Session) error

	// Clear removes the persisted session. Clearing an absent session is
	// not an error.
	Clear(ctx context.Context) error
}

// FavoriteRepository persists the favorites collection as one unit,
// preserving element order.
type FavoriteRepository interface {
	// Load retrieves the persisted collection. An absent key yields an
	// empty collection, not an error.
	Load(ctx context.Context) ([]entity.Favorite, error)

	// Save overwrites the persisted collection.
	Save(ctx context.Context, favorites []entity.Favorite) error
}
