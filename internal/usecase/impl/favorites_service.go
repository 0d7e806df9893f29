package impl

import (
	"context"
	"log/slog"
	"sync"

	"matchday/internal/domain/entity"
	domainerrors "matchday/internal/domain/errors"
	"matchday/internal/domain/repository"
	"matchday/internal/usecase"

	"go.uber.org/fx"
)

// favoritesService implements the FavoritesUsecase interface. The
// in-memory collection is owned exclusively by this service; mutations
// apply under the lock and the whole collection is re-persisted through
// the write queue after each one.
type favoritesService struct {
	repo   repository.FavoriteRepository
	queue  *writeQueue
	logger *slog.Logger

	mu        sync.RWMutex
	favorites []entity.Favorite
	listeners map[int]func([]entity.Favorite)
	nextID    int
}

// FavoritesServiceParams holds dependencies for favoritesService, injected by Fx.
type FavoritesServiceParams struct {
	fx.In
	fx.Lifecycle

	Repo   repository.FavoriteRepository
	Logger *slog.Logger
}

// NewFavoritesService is the constructor for favoritesService. The write
// queue is drained on shutdown so the last mutation reaches storage.
func NewFavoritesService(params FavoritesServiceParams) usecase.FavoritesUsecase {
	srv := &favoritesService{
		repo:      params.Repo,
		queue:     newWriteQueue("favorites", params.Logger),
		logger:    params.Logger,
		favorites: []entity.Favorite{},
		listeners: make(map[int]func([]entity.Favorite)),
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			srv.queue.Close()

			return nil
		},
	})

	return srv
}

// Rehydrate loads the persisted collection verbatim. Unreadable state
// starts the collection empty; duplicates in a corrupted blob survive
// until the next mutation re-persists a clean collection.
func (srv *favoritesService) Rehydrate(ctx context.Context) {
	favorites, err := srv.repo.Load(ctx)
	if err != nil {
		srv.logger.Warn("Failed to rehydrate favorites, starting empty", slog.Any("error", err))
		favorites = []entity.Favorite{}
	}

	srv.mu.Lock()
	srv.favorites = favorites
	srv.mu.Unlock()

	srv.logger.Info("Favorites rehydrated", slog.Int("count", len(favorites)))
}

// Add appends the favorite unless its identity is already present. The
// existing record keeps its fields: a re-add with different display data
// does not refresh them.
func (srv *favoritesService) Add(ctx context.Context, favorite entity.Favorite) error {
	if favorite.ID == "" || favorite.Kind == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("favorite has no identity")
	}

	srv.mu.Lock()
	for i := range srv.favorites {
		if srv.favorites[i].Is(favorite.Kind, favorite.ID) {
			srv.mu.Unlock()

			return nil
		}
	}
	srv.favorites = append(srv.favorites, favorite)
	snapshot := srv.snapshotLocked()
	srv.mu.Unlock()

	srv.afterMutation(snapshot)

	return nil
}

// Remove drops every entry matching the identity.
func (srv *favoritesService) Remove(_ context.Context, kind entity.FavoriteKind, id string) {
	srv.mu.Lock()
	kept := srv.favorites[:0]
	for _, favorite := range srv.favorites {
		if !favorite.Is(kind, id) {
			kept = append(kept, favorite)
		}
	}
	changed := len(kept) != len(srv.favorites)
	srv.favorites = kept
	snapshot := srv.snapshotLocked()
	srv.mu.Unlock()

	if changed {
		srv.afterMutation(snapshot)
	}
}

// Clear empties the collection.
func (srv *favoritesService) Clear(_ context.Context) {
	srv.mu.Lock()
	srv.favorites = []entity.Favorite{}
	snapshot := srv.snapshotLocked()
	srv.mu.Unlock()

	srv.afterMutation(snapshot)
}

// List returns the collection in insertion order.
func (srv *favoritesService) List() []entity.Favorite {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.snapshotLocked()
}

// IsFavorite reports whether the identity is in the collection.
func (srv *favoritesService) IsFavorite(kind entity.FavoriteKind, id string) bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	for i := range srv.favorites {
		if srv.favorites[i].Is(kind, id) {
			return true
		}
	}

	return false
}

// Subscribe registers a change listener. Listeners run synchronously after
// each mutation, in the caller's goroutine.
func (srv *favoritesService) Subscribe(fn func([]entity.Favorite)) func() {
	srv.mu.Lock()
	id := srv.nextID
	srv.nextID++
	srv.listeners[id] = fn
	srv.mu.Unlock()

	return func() {
		srv.mu.Lock()
		delete(srv.listeners, id)
		srv.mu.Unlock()
	}
}

// snapshotLocked copies the collection; callers must hold the lock.
func (srv *favoritesService) snapshotLocked() []entity.Favorite {
	snapshot := make([]entity.Favorite, len(srv.favorites))
	copy(snapshot, srv.favorites)

	return snapshot
}

// afterMutation notifies listeners and schedules persistence of the
// snapshot. Persistence failures are logged by the queue and otherwise
// ignored: memory remains the source of truth.
func (srv *favoritesService) afterMutation(snapshot []entity.Favorite) {
	srv.mu.RLock()
	listeners := make([]func([]entity.Favorite), 0, len(srv.listeners))
	for _, fn := range srv.listeners {
		listeners = append(listeners, fn)
	}
	srv.mu.RUnlock()

	for _, fn := range listeners {
		fn(snapshot)
	}

	srv.queue.Enqueue(func(ctx context.Context) error {
		return srv.repo.Save(ctx, snapshot)
	})
}

// Flush blocks until pending persistence writes complete. Exposed for
// callers that need storage to be settled, such as shutdown paths.
func (srv *favoritesService) Flush() {
	srv.queue.Flush()
}
