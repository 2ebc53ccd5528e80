package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"taskdeck/pkg/models"
)

// configName is the tool config file read from the base path.
const configName = ".taskdeckrc"

// ConfigManager loads and bootstraps the tool-level configuration file.
type ConfigManager interface {
	Load() (*models.AppConfig, error)
	WriteDefault() (string, error)
}

// viperConfigManager implements ConfigManager using Viper for reading the
// YAML config file.
type viperConfigManager struct {
	basePath string
}

// NewConfigManager creates a ConfigManager that reads .taskdeckrc relative
// to basePath.
func NewConfigManager(basePath string) ConfigManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultAppConfig returns an AppConfig populated with sensible defaults.
func defaultAppConfig() *models.AppConfig {
	return &models.AppConfig{
		Backend:        models.BackendFile,
		EventLog:       true,
		EventLogBudget: 20,
	}
}

// Load reads .taskdeckrc from the base path. A missing file returns
// defaults; a malformed file is an error.
func (cm *viperConfigManager) Load() (*models.AppConfig, error) {
	cfg := defaultAppConfig()

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("backend", cfg.Backend)
	v.SetDefault("event_log", cfg.EventLog)
	v.SetDefault("event_log_budget", cfg.EventLogBudget)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", configName, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configName, err)
	}
	switch cfg.Backend {
	case models.BackendFile, models.BackendSQLite:
	default:
		return nil, fmt.Errorf("parsing %s: unknown backend %q", configName, cfg.Backend)
	}
	return cfg, nil
}

// WriteDefault writes a default .taskdeckrc into the base path and returns
// the written path. An existing file is left alone.
func (cm *viperConfigManager) WriteDefault() (string, error) {
	path := filepath.Join(cm.basePath, configName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	data, err := yaml.Marshal(defaultAppConfig())
	if err != nil {
		return "", fmt.Errorf("encoding default config: %w", err)
	}
	header := []byte("# taskdeck configuration\n# backend: file | sqlite\n")
	if err := os.MkdirAll(cm.basePath, 0o750); err != nil {
		return "", fmt.Errorf("creating base path: %w", err)
	}
	if err := os.WriteFile(path, append(header, data...), 0o600); err != nil {
		return "", fmt.Errorf("writing default config: %w", err)
	}
	return path, nil
}
