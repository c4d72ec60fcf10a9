package store

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/feefeefee/internal/config"
	storedomain "github.com/smallbiznis/feefeefee/internal/store/domain"
	"github.com/smallbiznis/feefeefee/internal/store/memory"
	"github.com/smallbiznis/feefeefee/internal/store/redisstore"
	"github.com/smallbiznis/feefeefee/internal/store/repository"
	"github.com/smallbiznis/feefeefee/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("store",
	fx.Provide(New),
)

type params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Log       *zap.Logger
}

// New selects the snapshot backend named by STORE_BACKEND.
func New(p params) (storedomain.Store, error) {
	log := p.Log.Named("store")

	switch p.Config.StoreBackend {
	case config.StoreMemory:
		log.Info("using memory store")
		return memory.New(), nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     p.Config.RedisAddr,
			Password: p.Config.RedisPassword,
			DB:       p.Config.RedisDB,
		})
		p.Lifecycle.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return fmt.Errorf("ping redis %s: %w", p.Config.RedisAddr, err)
				}
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		log.Info("using redis store", zap.String("addr", p.Config.RedisAddr))
		return redisstore.New(client, p.Config.RedisPrefix), nil

	default:
		conn, err := db.Open(p.Config)
		if err != nil {
			return nil, err
		}
		if err := repository.Migrate(conn); err != nil {
			return nil, err
		}
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				sqlDB, err := conn.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		})
		log.Info("using sql store", zap.String("dialect", conn.Dialector.Name()))
		return repository.NewRepository(conn), nil
	}
}
