package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// GlobalConfig holds the configuration of the running command.
var GlobalConfig *Config        //nolint:gochecknoglobals // Singleton pattern for configuration
var globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects GlobalConfig

// SetGlobalConfig installs cfg as the global configuration.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	GlobalConfig = cfg
}

// ResetGlobalConfigForTest resets the global config for testing purposes.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}

// GetGlobalConfig returns the global configuration, falling back to defaults.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	cfg := GlobalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if GlobalConfig == nil {
		GlobalConfig = New()
	}
	return GlobalConfig
}

// GetConfigDir returns the artable configuration directory (ARTABLE_HOME or ~/.artable).
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".artable"), nil
}

// GetConfigPath returns the default config file path.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// EnsureLogDir ensures the directory for the configured log file exists.
// If no log file is configured, it does nothing.
func EnsureLogDir() error {
	cfg := GetGlobalConfig()
	if cfg.Logging.File == "" {
		return nil
	}
	logDir := filepath.Dir(cfg.Logging.File)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}
