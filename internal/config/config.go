// Package config loads reviewsense service settings from a YAML file and
// REVIEWSENSE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tsawler/reviewsense"
)

// EnvPrefix prefixes every environment override, e.g. REVIEWSENSE_SERVER_ADDR.
const EnvPrefix = "REVIEWSENSE"

// Classifier kinds.
const (
	ClassifierVader = "vader"
	ClassifierHTTP  = "http"
)

// Config holds all service configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Lexicon    LexiconConfig    `mapstructure:"lexicon"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Log        LogConfig        `mapstructure:"log"`
	Input      InputConfig      `mapstructure:"input"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// ClassifierConfig selects and configures the base classifier. Endpoint
// overrides the hosted URL derived from Model.
type ClassifierConfig struct {
	Kind     string        `mapstructure:"kind"`
	Endpoint string        `mapstructure:"endpoint"`
	Token    string        `mapstructure:"token"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// LexiconConfig points at an external lexicon.
type LexiconConfig struct {
	// Path to a YAML lexicon. Empty means the built-in lexicon.
	Path string `mapstructure:"path"`
}

// CacheConfig configures the prediction cache.
type CacheConfig struct {
	// Path to the sqlite cache. Empty disables caching.
	Path string `mapstructure:"path"`
}

// LogConfig sets the logrus level and formatter (text or json).
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// InputConfig controls how batch text is cut into reviews.
type InputConfig struct {
	Split string `mapstructure:"split"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":5001")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 120*time.Second)
	v.SetDefault("classifier.kind", ClassifierVader)
	v.SetDefault("classifier.endpoint", "")
	v.SetDefault("classifier.token", "")
	v.SetDefault("classifier.model", reviewsense.DefaultInferenceModel)
	v.SetDefault("classifier.timeout", 30*time.Second)
	v.SetDefault("lexicon.path", "")
	v.SetDefault("cache.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("input.split", string(reviewsense.SplitLines))
}

// NewViper returns a viper instance with defaults and environment overrides
// in place. When path is set the file must exist; otherwise reviewsense.yaml
// is looked up in the working directory and skipped if absent.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		return v, nil
	}

	v.AddConfigPath(".")
	v.SetConfigName("reviewsense")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	return v, nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server.addr is required")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return errors.New("server timeouts must not be negative")
	}

	switch c.Classifier.Kind {
	case ClassifierVader:
	case ClassifierHTTP:
		if c.Classifier.Endpoint == "" && c.Classifier.Model == "" {
			return errors.New("classifier.endpoint or classifier.model is required for the http classifier")
		}
	default:
		return fmt.Errorf("classifier.kind must be %q or %q, got %q", ClassifierVader, ClassifierHTTP, c.Classifier.Kind)
	}
	if c.Classifier.Timeout < 0 {
		return errors.New("classifier.timeout must not be negative")
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	if _, err := reviewsense.ParseSplitMode(c.Input.Split); err != nil {
		return fmt.Errorf("input.split: %w", err)
	}
	return nil
}

// ClassifierEndpoint returns the configured endpoint, or the hosted URL of
// the configured model.
func (c ClassifierConfig) ClassifierEndpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return reviewsense.HuggingFaceEndpoint(c.Model)
}

// NewLogger builds a logrus logger from the log settings.
func (c LogConfig) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)
	if c.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}
