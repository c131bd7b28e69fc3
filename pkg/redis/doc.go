// Package redis provides Redis connection helpers with retry and healthcheck
// support, used to back the Redis session store.
//
//	cfg := redis.Config{ConnectionURL: "redis://localhost:6379/0", RetryAttempts: 3}
//	client, err := redis.Connect(ctx, cfg)
package redis
