// Package config loads the client configuration from YAML with viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Outputs OutputsConfig `mapstructure:"outputs"`
}

type APIConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1"`
}

// Timeout returns the request timeout applied to every API call.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type SessionConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

type OutputsConfig struct {
	ExportDirectory string `mapstructure:"export_directory"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flashdeck")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	v.SetDefault("api.base_url", "http://localhost:8080/api")
	v.SetDefault("api.timeout_seconds", 10)
	v.SetDefault("session.file", filepath.Join(home, ".config", "flashdeck", "session.json"))
	v.SetDefault("outputs.export_directory", "exports")

	// The deployment's API address usually comes from the environment
	// rather than the config file.
	if err := v.BindEnv("api.base_url", "FLASHDECK_API_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHDECK_API_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
