package kvjson

import (
	"context"
	"encoding/json"

	"matchday/internal/domain/entity"
	"matchday/internal/domain/repository"
	"matchday/internal/infra/kv"

	"github.com/pkg/errors"
)

// favoriteRepository implements repository.FavoriteRepository over a kv.Store.
type favoriteRepository struct {
	store kv.Store
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(store kv.Store) repository.FavoriteRepository {
	return &favoriteRepository{store: store}
}

// Load retrieves the persisted collection in stored order. The collection
// is loaded verbatim; invariants such as dedup are re-established by the
// favorites service on subsequent mutations, not here.
func (repo *favoriteRepository) Load(ctx context.Context) ([]entity.Favorite, error) {
	raw, ok, err := repo.store.Get(ctx, favoritesKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read favorites collection")
	}
	if !ok {
		return []entity.Favorite{}, nil
	}

	var favorites []entity.Favorite
	if err := json.Unmarshal([]byte(raw), &favorites); err != nil {
		return nil, errors.Wrap(err, "failed to decode favorites collection")
	}

	return favorites, nil
}

// Save overwrites the persisted collection.
func (repo *favoriteRepository) Save(ctx context.Context, favorites []entity.Favorite) error {
	raw, err := json.Marshal(favorites)
	if err != nil {
		return errors.Wrap(err, "failed to encode favorites collection")
	}

	if err := repo.store.Set(ctx, favoritesKey, string(raw)); err != nil {
		return errors.Wrap(err, "failed to write favorites collection")
	}

	return nil
}
