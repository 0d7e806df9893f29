package kvjson

import (
	"context"
	"encoding/json"

	"matchday/internal/domain/entity"
	"matchday/internal/domain/repository"
	"matchday/internal/infra/kv"

	"github.com/pkg/errors"
)

// userRepository implements repository.UserRepository over a kv.Store.
type userRepository struct {
	store kv.Store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store kv.Store) repository.UserRepository {
	return &userRepository{store: store}
}

// Load retrieves the full registry. An absent key is an empty registry.
func (repo *userRepository) Load(ctx context.Context) ([]entity.User, error) {
	raw, ok, err := repo.store.Get(ctx, registryKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read user registry")
	}
	if !ok {
		return []entity.User{}, nil
	}

	var users []entity.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, errors.Wrap(err, "failed to decode user registry")
	}

	return users, nil
}

// Save overwrites the full registry.
func (repo *userRepository) Save(ctx context.Context, users []entity.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return errors.Wrap(err, "failed to encode user registry")
	}

	if err := repo.store.Set(ctx, registryKey, string(raw)); err != nil {
		return errors.Wrap(err, "failed to write user registry")
	}

	return nil
}
