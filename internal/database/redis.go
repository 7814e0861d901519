package database

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/qs3c/codegen_go_server/config"
)

// NewRedis 建立缓存连接并探活。仅在 cache.enabled 时由 main 调用
func NewRedis(cfg *config.CacheConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
