package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen       string   `yaml:"listen"`
	BasePath     string   `yaml:"basePath"`
	DatabasePath string   `yaml:"databasePath"`
	AuthToken    string   `yaml:"authToken"`
	CorsOrigins  []string `yaml:"corsOrigins"`
	LogLevel     string   `yaml:"logLevel"`
}

func DefaultConfig() Config {
	return Config{
		Listen:       ":8080",
		BasePath:     "/api/" + ApiVersion,
		DatabasePath: "spreadsheet.db",
		CorsOrigins:  []string{"*"},
		LogLevel:     "info",
	}
}

// LoadConfig layers defaults, the optional YAML file and the environment,
// in that order.
func LoadConfig(configPath string, lookupEnv func(string) (string, bool)) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return config, fmt.Errorf("config: %w", err)
		}
		if err = yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("config %s: %w", configPath, err)
		}
	}

	ApplyEnvOverrides(&config, lookupEnv)
	return config, nil
}

func ApplyEnvOverrides(config *Config, lookupEnv func(string) (string, bool)) {
	if value, ok := lookupEnv("LISTEN_ADDR"); ok && value != "" {
		config.Listen = value
	}
	if value, ok := lookupEnv("BASE_PATH"); ok && value != "" {
		config.BasePath = value
	}
	if value, ok := lookupEnv("DATABASE_FILEPATH"); ok && value != "" {
		config.DatabasePath = value
	}
	if value, ok := lookupEnv("AUTH_TOKEN"); ok {
		config.AuthToken = value
	}
	if value, ok := lookupEnv("CORS_ORIGINS"); ok && value != "" {
		origins := make([]string, 0)
		for _, origin := range strings.Split(value, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		config.CorsOrigins = origins
	}
	if value, ok := lookupEnv("LOG_LEVEL"); ok && value != "" {
		config.LogLevel = value
	}
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
