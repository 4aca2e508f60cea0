package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the process-wide configuration, read from config.yaml and
// environment variables.
type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Database struct {
		Primary struct {
			DSN string `mapstructure:"dsn"`
		} `mapstructure:"primary"`
	} `mapstructure:"database"`

	History struct {
		Path     string `mapstructure:"path"`
		Disabled bool   `mapstructure:"disabled"`
	} `mapstructure:"history"`

	// AutoTag controls the vlog create/update integration points.
	AutoTag struct {
		Enabled bool `mapstructure:"enabled"`
		// MinDescriptionLength gates tag generation on vlog
		// creation only; updates skip the length check.
		MinDescriptionLength int `mapstructure:"min_description_length"`
		MaxTags              int `mapstructure:"max_tags"`
		MaxPhrases           int `mapstructure:"max_phrases"`
	} `mapstructure:"autotag"`

	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Worker struct {
		Concurrency int            `mapstructure:"concurrency"`
		Queues      map[string]int `mapstructure:"queues"`
	} `mapstructure:"worker"`
}

// LoadConfig reads config.yaml from the working directory, applies
// defaults and environment overrides, and unmarshals the result.
// A missing config file is not an error; defaults and env vars apply.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("server.addr", "localhost")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("history.path", "vlogtagger_history.db")
	viper.SetDefault("autotag.enabled", true)
	viper.SetDefault("autotag.min_description_length", 50)
	viper.SetDefault("autotag.max_tags", 8)
	viper.SetDefault("autotag.max_phrases", 5)
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("worker.concurrency", 5)
	viper.SetDefault("worker.queues", map[string]int{"default": 1})

	viper.AutomaticEnv()
	viper.BindEnv("database.primary.dsn", "VLOGTAGGER_DATABASE_DSN")
	viper.BindEnv("redis.address", "VLOGTAGGER_REDIS_ADDRESS")
	viper.BindEnv("redis.password", "VLOGTAGGER_REDIS_PASSWORD")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; rely on defaults and env vars.
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
