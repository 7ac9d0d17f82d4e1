package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v, err := NewViper("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, ":5001", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, ClassifierVader, cfg.Classifier.Kind)
	assert.Equal(t, 30*time.Second, cfg.Classifier.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "lines", cfg.Input.Split)
	assert.Empty(t, cfg.Cache.Path)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviewsense.yaml")
	data := `
server:
  addr: ":8080"
  read_timeout: 5s
classifier:
  kind: http
  model: my-org/hinglish-sst
  timeout: 2s
log:
  level: debug
  format: json
input:
  split: sentences
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, ClassifierHTTP, cfg.Classifier.Kind)
	assert.Equal(t, 2*time.Second, cfg.Classifier.Timeout)
	assert.Equal(t, "https://api-inference.huggingface.co/models/my-org/hinglish-sst", cfg.Classifier.ClassifierEndpoint())
	assert.Equal(t, "sentences", cfg.Input.Split)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("REVIEWSENSE_SERVER_ADDR", ":9000")
	t.Setenv("REVIEWSENSE_CLASSIFIER_TOKEN", "secret")

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "secret", cfg.Classifier.Token)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:     ServerConfig{Addr: ":5001"},
			Classifier: ClassifierConfig{Kind: ClassifierVader},
			Log:        LogConfig{Level: "info", Format: "text"},
			Input:      InputConfig{Split: "lines"},
		}
	}

	tests := []struct {
		desc    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty addr", func(c *Config) { c.Server.Addr = " " }, true},
		{"negative read timeout", func(c *Config) { c.Server.ReadTimeout = -time.Second }, true},
		{"unknown classifier", func(c *Config) { c.Classifier.Kind = "bert" }, true},
		{"http without target", func(c *Config) { c.Classifier.Kind = ClassifierHTTP }, true},
		{"http with endpoint", func(c *Config) {
			c.Classifier.Kind = ClassifierHTTP
			c.Classifier.Endpoint = "http://localhost:8000/classify"
		}, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"bad split", func(c *Config) { c.Input.Split = "paragraphs" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := LogConfig{Level: "warn", Format: "json"}.NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	_, err = LogConfig{Level: "nope"}.NewLogger()
	assert.Error(t, err)
}
