package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/artable/internal/artwork"
)

// Environment variables that override the config file.
const (
	EnvHome        = "ARTABLE_HOME"
	EnvAPIURL      = "ARTABLE_API_URL"
	EnvUserAgent   = "ARTABLE_USER_AGENT"
	EnvLogLevel    = "ARTABLE_LOG_LEVEL"
	EnvLogFormat   = "ARTABLE_LOG_FORMAT"
	EnvLogFile     = "ARTABLE_LOG_FILE"
	EnvMetricsAddr = "ARTABLE_METRICS_ADDR"
)

const (
	configFileName = "config.yaml"
	logFileName    = "artable.log"
	defaultLevel   = "info"
	formatJSON     = "json"
	formatConsole  = "console"
)

// Config is the artable configuration.
type Config struct {
	API     APIConfig     `yaml:"api"     json:"api"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`
}

// APIConfig configures the artworks endpoint.
type APIConfig struct {
	BaseURL   string `yaml:"base_url"   json:"base_url"`
	UserAgent string `yaml:"user_agent" json:"user_agent"`
}

// LoggingConfig configures diagnostics.
type LoggingConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file"   json:"file"`
}

// MetricsConfig configures the optional Prometheus endpoint.
type MetricsConfig struct {
	// Listen is the address for /metrics, e.g. "127.0.0.1:9464". Empty disables it.
	Listen string `yaml:"listen" json:"listen"`
}

// New returns the default configuration.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills empty fields. Shallow merges replace whole sections,
// so this runs again after every merge.
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = artwork.DefaultBaseURL
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = artwork.DefaultUserAgent
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = formatJSON
	}
	if c.Logging.File == "" {
		if dir, err := GetConfigDir(); err == nil {
			c.Logging.File = filepath.Join(dir, "logs", logFileName)
		}
	}
}

// Load reads path (when it exists) over the defaults and applies environment
// overrides. An empty path means the default location. A missing file is not
// an error.
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil {
		if mergeErr := MergeFile(cfg, path); mergeErr != nil {
			return nil, mergeErr
		}
		cfg.applyDefaults()
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config file %s: %w", path, err)
	}

	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv applies environment overrides using lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(env string, dst *string) {
		if v, ok := lookup(env); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(EnvAPIURL, &c.API.BaseURL)
	set(EnvUserAgent, &c.API.UserAgent)
	set(EnvLogLevel, &c.Logging.Level)
	set(EnvLogFormat, &c.Logging.Format)
	set(EnvLogFile, &c.Logging.File)
	set(EnvMetricsAddr, &c.Metrics.Listen)
}

// Validate checks the configuration for values the client cannot use.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url: %q must be an absolute http(s) URL", c.API.BaseURL)
	}

	switch strings.ToLower(c.Logging.Format) {
	case formatJSON, formatConsole:
	default:
		return fmt.Errorf("logging.format: %q must be %q or %q", c.Logging.Format, formatJSON, formatConsole)
	}
	return nil
}

// YAML renders the configuration as YAML.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(data), nil
}
