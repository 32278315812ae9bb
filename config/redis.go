package config

import (
	rd "github.com/redis/go-redis/v9"
)

var Redis *rd.Client

// ConnectRedis creates the client used for sync-endpoint rate limiting.
// Redis is optional: with no REDIS_ADDR the limiter stays disabled.
func ConnectRedis() {
	if App.RedisAddr == "" {
		return
	}
	Redis = rd.NewClient(&rd.Options{
		Addr: App.RedisAddr,
		DB:   App.RedisDB,
	})
}
