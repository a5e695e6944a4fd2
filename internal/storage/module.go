package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/gearmart/orderdesk/internal/config"
	"github.com/gearmart/orderdesk/internal/domain/repository"
	"github.com/gearmart/orderdesk/internal/normalize"
	"github.com/gearmart/orderdesk/internal/storage/file"
	"github.com/gearmart/orderdesk/internal/storage/postgres"
	"github.com/gearmart/orderdesk/internal/storage/redis"
)

// Module wires the blob backend selected by configuration and the order store.
var Module = fx.Options(
	fx.Provide(newBlobStore),
	fx.Provide(newStore),
	fx.Invoke(registerLifecycle),
)

type blobParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newBlobStore(p blobParams) (repository.BlobStore, error) {
	switch p.Config.StorageBackend {
	case config.BackendPostgres:
		return postgres.New(p.Ctx, p.Config.DatabaseURI, p.Config.OrdersKey, p.Logger)
	case config.BackendRedis:
		return redis.New(p.Config.RedisAddr, p.Config.OrdersKey), nil
	default:
		return file.New(p.Config.StorageFile), nil
	}
}

type storeParams struct {
	fx.In

	Blob       repository.BlobStore
	Normalizer *normalize.Normalizer
	Logger     *slog.Logger
}

func newStore(p storeParams) *Store {
	return New(p.Blob, p.Normalizer, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, blob repository.BlobStore) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			switch b := blob.(type) {
			case *postgres.Store:
				b.Close()
			case *redis.Store:
				return b.Close()
			}
			return nil
		},
	})
}
