package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
}

// APIConfig holds destination backend settings.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// LogConfig holds diagnostic log settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error fatal"`
}

// ServerConfig holds settings for the local fixture server.
type ServerConfig struct {
	Addr     string `mapstructure:"addr" validate:"required"`
	DataFile string `mapstructure:"data_file"`
}

// Load reads configuration from file and env. Env var overrides use prefix VIAGENS_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "http://localhost:3000")
	v.SetDefault("api.timeout", "0s")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "viagens", "viagens.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("server.addr", ":3000")
	v.SetDefault("server.data_file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("VIAGENS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "viagens"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VIAGENS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks field constraints declared on Config.
func Validate(c Config) error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
