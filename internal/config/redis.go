package config

// Redis backs the auth rate limiter and the catalogue response cache.  When
// Redis cannot be reached at startup the client is nil and both middlewares
// degrade to pass-through.

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TLS      bool
}

func setRedisDefaults(v *viper.Viper) {
	v.SetDefault("redis-addr", "localhost:6379")
	v.SetDefault("redis-password", "")
	v.SetDefault("redis-db", 0)
	v.SetDefault("redis-tls", false)
}

func loadRedisConfig(v *viper.Viper) RedisConfig {
	return RedisConfig{
		Addr:     v.GetString("redis-addr"),
		Password: v.GetString("redis-password"),
		DB:       v.GetInt("redis-db"),
		TLS:      v.GetBool("redis-tls"),
	}
}

// NewRedisClient instantiates a Redis client and pings it with a short
// timeout.  It returns nil on failure.
func NewRedisClient(cfg RedisConfig) *redis.Client {
	var tlsConf *tls.Config
	if cfg.TLS {
		tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      cfg.Addr,
		Password:  cfg.Password,
		DB:        cfg.DB,
		TLSConfig: tlsConf,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}
