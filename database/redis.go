package database

import (
	"context"
	"fmt"
	"time"

	"backend_tigo/config"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// InitRedis connects to Redis and checks the connection
func InitRedis(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.URL != "" {
		parsed, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		opts = parsed
	}
	opts.PoolSize = cfg.Redis.MaxConns
	opts.MinIdleConns = 2
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolTimeout = 4 * time.Second
	opts.IdleTimeout = 300 * time.Second

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.WithField("addr", opts.Addr).Info("connected to redis")
	return client, nil
}

// RateLimitCheck counts one hit for key in a fixed window and reports whether it is within limit
func RateLimitCheck(ctx context.Context, client *redis.Client, key string, limit int64, window time.Duration) (bool, error) {
	key = fmt.Sprintf("ratelimit:%s", key)

	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}

	return count <= limit, nil
}
