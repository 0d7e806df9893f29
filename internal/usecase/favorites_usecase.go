package usecase

import (
	"context"

	"matchday/internal/domain/entity"
)

// FavoritesUsecase maintains the in-memory favorites collection and keeps
// it consistent with persisted storage. The in-memory collection is the
// source of truth for the process lifetime: mutations apply synchronously
// and persistence happens behind them through a serialized write queue,
// so persisted state never reflects writes out of issuance order.
type FavoritesUsecase interface {
	// Rehydrate loads the persisted collection into memory, once at
	// startup. Absent or unparsable state yields an empty collection.
	// Persisted entries are loaded verbatim; duplicates in a corrupted
	// blob are not removed until a later mutation.
	Rehydrate(ctx context.Context)

	// Add appends the favorite unless one with the same kind and identity
	// already exists; the existing record keeps its fields (first write
	// wins). Returns ErrValidationFailed for a favorite without identity.
	Add(ctx context.Context, favorite entity.Favorite) error

	// Remove drops every entry matching the identity. Removing an absent
	// identity is a no-op.
	Remove(ctx context.Context, kind entity.FavoriteKind, id string)

	// Clear empties the collection.
	Clear(ctx context.Context)

	// List returns the collection in insertion order.
	List() []entity.Favorite

	// IsFavorite reports whether the identity is in the collection.
	IsFavorite(kind entity.FavoriteKind, id string) bool

	// Subscribe registers a change listener invoked with the new
	// collection after every mutation. The returned function removes the
	// listener.
	Subscribe(fn func([]entity.Favorite)) (unsubscribe func())
}
