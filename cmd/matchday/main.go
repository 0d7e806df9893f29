package main

import (
	"context"
	"log/slog"
	"os"

	"matchday/config"
	"matchday/internal/delivery"
	deliveryhttp "matchday/internal/delivery/http"
	"matchday/internal/delivery/http/middleware"
	"matchday/internal/delivery/http/router/handler"
	"matchday/internal/infra/auth"
	"matchday/internal/infra/kv"
	logs "matchday/internal/infra/log"
	"matchday/internal/infra/persistence/kvjson"
	"matchday/internal/infra/sportsdb"
	"matchday/internal/usecase"
	"matchday/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			rehydrateStores,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newKVStore,
	)
}

// newKVStore selects the key-value persistence backend from config.
func newKVStore(lc fx.Lifecycle, cfg *config.Config) (kv.Store, error) {
	switch cfg.Storage.Provider {
	case "memory":
		return kv.NewMemoryStore(), nil
	case "sqlite":
		store, err := kv.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return store.Close()
			},
		})

		return store, nil
	case "file":
		return kv.NewFileStore(cfg.Storage.Path)
	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Storage.Provider)
	}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			kvjson.NewUserRepository,
			kvjson.NewSessionRepository,
			kvjson.NewFavoriteRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenService,
			auth.NewPlainVerifier,
			sportsdb.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewFavoritesService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewFavoritesHandler,
			handler.NewCatalogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				deliveryhttp.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// rehydrateStores loads persisted state into memory before the delivery
// layer starts serving.
func rehydrateStores(ctx context.Context, favorites usecase.FavoritesUsecase, identity usecase.IdentityUsecase, logger *slog.Logger) {
	favorites.Rehydrate(ctx)

	if session := identity.RestoreSession(ctx); session != nil {
		logger.Info("Session restored", slog.String("userID", session.UserID))
	} else {
		logger.Info("No persisted session, starting anonymous")
	}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
