package redis_client

import (
	"github.com/init-pkg/excel-import/internal/config"
	"github.com/redis/go-redis/v9"
)

func New(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Infrastructure.Redis.Addr,
		Password: cfg.Infrastructure.Redis.Password,
		DB:       cfg.Infrastructure.Redis.DB,
	})
}
