package kvjson

import (
	"context"
	"encoding/json"

	"matchday/internal/domain/entity"
	"matchday/internal/domain/repository"
	"matchday/internal/infra/kv"

	"github.com/pkg/errors"
)

// sessionRepository implements repository.SessionRepository over a kv.Store.
type sessionRepository struct {
	store kv.Store
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(store kv.Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

// Load retrieves the persisted session.
func (repo *sessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	raw, ok, err := repo.store.Get(ctx, sessionKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
	}
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	var session entity.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return &session, nil
}

// Save overwrites the persisted session.
func (repo *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := repo.store.Set(ctx, sessionKey, string(raw)); err != nil {
		return errors.Wrap(err, "failed to write session")
	}

	return nil
}

// Clear removes the persisted session.
func (repo *sessionRepository) Clear(ctx context.Context) error {
	if err := repo.store.Remove(ctx, sessionKey); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}
