package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"matchday/internal/domain/entity"
	"matchday/internal/domain/repository"
	"matchday/internal/infra/kv"
	"matchday/internal/infra/persistence/kvjson"
	"matchday/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubTokens avoids pulling signing configuration into service tests.
type stubTokens struct{}

func (stubTokens) Issue(userID string) (string, error) { return "tok-" + userID, nil }

func (stubTokens) Verify(token string) (string, error) { return "", errors.New("not implemented") }

// exactVerifier mirrors the production comparison policy.
type exactVerifier struct{}

func (exactVerifier) Verify(submitted, stored string) bool { return submitted == stored }

func newIdentityService(t *testing.T, store kv.Store) usecase.IdentityUsecase {
	t.Helper()

	return NewIdentityService(IdentityServiceParams{
		UserRepo:    kvjson.NewUserRepository(store),
		SessionRepo: kvjson.NewSessionRepository(store),
		Verifier:    exactVerifier{},
		Tokens:      stubTokens{},
		Logger:      testLogger(),
	})
}

func newFavoritesService(t *testing.T, store kv.Store) usecase.FavoritesUsecase {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	srv := NewFavoritesService(FavoritesServiceParams{
		Lifecycle: lc,
		Repo:      kvjson.NewFavoriteRepository(store),
		Logger:    testLogger(),
	})
	lc.RequireStart()
	t.Cleanup(func() { lc.RequireStop() })

	return srv
}

// failingStore rejects every operation, for storage failure paths.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage offline")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("storage offline")
}

func (failingStore) Remove(context.Context, string) error {
	return errors.New("storage offline")
}

// failingFavoriteRepo loads fine but refuses writes.
type failingFavoriteRepo struct {
	loaded []entity.Favorite
}

func (r *failingFavoriteRepo) Load(context.Context) ([]entity.Favorite, error) {
	return r.loaded, nil
}

func (r *failingFavoriteRepo) Save(context.Context, []entity.Favorite) error {
	return errors.New("storage offline")
}

var _ repository.FavoriteRepository = (*failingFavoriteRepo)(nil)
