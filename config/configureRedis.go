package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// InitRedisServer connects to Redis and verifies the connection with a ping.
// The search cache and background jobs are optional features, so a failure is
// returned to the caller instead of panicking; main decides whether to run
// without them.
func InitRedisServer(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     GetEnv("REDIS_ADDRESS"),
		Password: "",
		DB:       0,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return client, nil
}
