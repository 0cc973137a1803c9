package config

import (
	"time"

	"github.com/spf13/viper"
)

// CacheConfig configures the catalogue read cache.  Responses larger than
// MaxBodyBytes are served but not stored.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

func setCacheDefaults(v *viper.Viper) {
	v.SetDefault("cache-enabled", true)
	v.SetDefault("cache-ttl", 30*time.Second)
	v.SetDefault("cache-prefix", "catalogue")
	v.SetDefault("cache-max-body-bytes", 1<<20)
}

func loadCacheConfig(v *viper.Viper) CacheConfig {
	c := CacheConfig{
		Enabled:      v.GetBool("cache-enabled"),
		TTL:          v.GetDuration("cache-ttl"),
		Prefix:       v.GetString("cache-prefix"),
		MaxBodyBytes: v.GetInt("cache-max-body-bytes"),
	}
	if c.TTL <= 0 {
		c.TTL = 30 * time.Second
	}
	return c
}
