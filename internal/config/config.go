package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Model  ModelConfig
	Flash  FlashConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type ModelConfig struct {
	Path string
}

type FlashConfig struct {
	Secret string
}

type LoggerConfig struct {
	Level  string
	Format string
	// File enables a rotating log file next to stdout when set.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Load reads configuration from defaults, an optional config file given
// with --config, and the environment, in increasing precedence. An explicit
// --model flag wins over all of them.
func Load(args []string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 5000)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("MODEL_PATH", "diabetes-prediction-rfc-model.json")
	v.SetDefault("FLASH_SECRET", "diabetes_predictor_secret_key")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("LOGGER_FILE", "")
	v.SetDefault("LOGGER_MAX_SIZE_MB", 50)
	v.SetDefault("LOGGER_MAX_BACKUPS", 3)

	fs := pflag.NewFlagSet("diabetes-predictor", pflag.ContinueOnError)
	configFile := fs.String("config", "", "path to a YAML config file")
	fs.String("model", "", "path to the classifier artifact")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if f := fs.Lookup("model"); f != nil && f.Changed {
		v.Set("MODEL_PATH", f.Value.String())
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host:    v.GetString("SERVER_HOST"),
			Port:    v.GetInt("SERVER_PORT"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Model: ModelConfig{
			Path: v.GetString("MODEL_PATH"),
		},
		Flash: FlashConfig{
			Secret: v.GetString("FLASH_SECRET"),
		},
		Logger: LoggerConfig{
			Level:      v.GetString("LOGGER_LEVEL"),
			Format:     v.GetString("LOGGER_FORMAT"),
			File:       v.GetString("LOGGER_FILE"),
			MaxSizeMB:  v.GetInt("LOGGER_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOGGER_MAX_BACKUPS"),
		},
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.Flash.Secret == "" {
		return nil, fmt.Errorf("flash secret must not be empty")
	}

	return cfg, nil
}
