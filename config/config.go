package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".buildstock"))
		}

		// Check /etc
		v.AddConfigPath("/etc/buildstock/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Data service defaults
	v.SetDefault("base_path", "/api/v0/")
	v.SetDefault("phases.staging.api.host", "localhost")
	v.SetDefault("phases.staging.api.port", 8000)

	// Nominatim defaults
	v.SetDefault("nominatim.host", "localhost")
	v.SetDefault("nominatim.port", 8080)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if len(cfg.Phases) == 0 {
		return fmt.Errorf("at least one phase must be configured")
	}

	for name, phase := range cfg.Phases {
		if phase.API.Host == "" {
			return fmt.Errorf("phases.%s.api.host is required", name)
		}
		if phase.API.Port <= 0 || phase.API.Port > 65535 {
			return fmt.Errorf("phases.%s.api.port is invalid: %d", name, phase.API.Port)
		}
	}

	if cfg.BasePath == "" {
		return fmt.Errorf("base_path is required")
	}

	// Credentials are optional but must come as a pair when given at all;
	// a half-set pair is almost always a configuration mistake.
	// The client itself tolerates it and falls back to read-only mode.

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
