// Package config reads the process configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all process-level settings. Everything that changes at
// runtime (like the startup synchronization flag) lives in the settings
// table instead.
type Config struct {
	// DSN is the sqlite file path, or a "host=..." postgres DSN.
	DSN  string `mapstructure:"dsn"`
	Port int    `mapstructure:"port"`

	Provider struct {
		URL     string        `mapstructure:"url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"provider"`

	SMTP struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		From     string `mapstructure:"from"`
		To       string `mapstructure:"to"`
	} `mapstructure:"smtp"`
}

// Load reads the configuration from environment variables. Every key
// has a default, so an empty environment yields a working local setup.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("dsn", "data/gorm.db")
	v.SetDefault("port", 8080)
	v.SetDefault("provider.url", "http://localhost:9101")
	v.SetDefault("provider.timeout", 5*time.Minute)
	v.SetDefault("smtp.host", "localhost")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "bankwatch <noreply@localhost>")
	v.SetDefault("smtp.to", "")

	v.SetEnvPrefix("bankwatch")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not parse configuration: %w", err)
	}

	return &cfg, nil
}
