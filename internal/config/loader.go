package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"tripctl/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/tripctl"
	configFileName = "config.yaml"
)

func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads configuration from the specified directory. A missing
// config.yaml is not an error: the defaults apply and callers rely on flags,
// environment variables and prompts instead. A malformed file is an error,
// silently discarding a file the user wrote would hide typos.
func LoadConfig(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		logging.Info("ConfigLoader", "Error loading config.yaml from %s: %s", configFilePath, err)
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	logging.Debug("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}

// ApplyEnvOverrides layers TRIPCTL_* environment variables over cfg. The
// environment wins over the file; command-line flags are applied later by the
// command layer and win over both.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TRIPCTL_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("TRIPCTL_CLIENT_ID"); v != "" {
		cfg.Auth.ClientID = v
	}
	if v := os.Getenv("TRIPCTL_USERNAME"); v != "" {
		cfg.Auth.Username = v
	}
	if v := os.Getenv("TRIPCTL_PASSWORD"); v != "" {
		cfg.Auth.Password = v
	}
	if v := os.Getenv("TRIPCTL_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = debug
		}
	}
}

// Load reads the user config from the default location and applies the
// environment on top. This is the entry point the command layer uses.
func Load() (Config, error) {
	cfg, err := LoadConfig(GetDefaultConfigPathOrPanic())
	if err != nil {
		return Config{}, err
	}
	ApplyEnvOverrides(&cfg)
	return cfg, nil
}
