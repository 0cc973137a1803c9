package config

import (
	"time"

	"github.com/spf13/viper"
)

// RateLimitConfig bounds the attempts a client or a mail may make on the auth
// routes within one window.
type RateLimitConfig struct {
	Enabled  bool
	Attempts int
	Window   time.Duration
	Prefix   string
}

func setRateLimitDefaults(v *viper.Viper) {
	v.SetDefault("rate-limit-enabled", true)
	v.SetDefault("rate-limit-attempts", 10)
	v.SetDefault("rate-limit-window", 15*time.Minute)
	v.SetDefault("rate-limit-prefix", "attempts")
}

func loadRateLimitConfig(v *viper.Viper) RateLimitConfig {
	c := RateLimitConfig{
		Enabled:  v.GetBool("rate-limit-enabled"),
		Attempts: v.GetInt("rate-limit-attempts"),
		Window:   v.GetDuration("rate-limit-window"),
		Prefix:   v.GetString("rate-limit-prefix"),
	}
	if c.Attempts < 1 {
		c.Attempts = 1
	}
	if c.Window <= 0 {
		c.Window = time.Minute
	}
	return c
}
