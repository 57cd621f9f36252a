// Package config holds all codegem configuration. A config file is
// optional; defaults plus environment overrides are enough to run.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted at startup.
const (
	EnvAPIKey    = "GEMINI_API_KEY"
	EnvProModel  = "CODEGEM_PRO_MODEL"
	EnvFastModel = "CODEGEM_FAST_MODEL"
)

// Config holds all codegem configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Cache   CacheConfig   `yaml:"cache"`
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig identifies the server on the wire.
type ServerConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	ResponseTag string `yaml:"response_tag"`
}

// GeminiConfig configures the generation backend.
type GeminiConfig struct {
	APIKey          string `yaml:"api_key"`
	ProModel        string `yaml:"pro_model"`
	FastModel       string `yaml:"fast_model"`
	MaxOutputTokens int32  `yaml:"max_output_tokens"`
}

// CacheConfig configures the response cache.
type CacheConfig struct {
	TTL        string `yaml:"ttl"`
	MaxEntries int    `yaml:"max_entries"`
}

// InputConfig configures the input resolver.
type InputConfig struct {
	MaxTextLength int `yaml:"max_text_length"`
}

// LoggingConfig configures the stderr logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration the server ships with.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Name:        "gemini-coding",
			Version:     "1.0.0",
			ResponseTag: "🤖 GEMINI RESPONSE:\n\n",
		},
		Gemini: GeminiConfig{
			ProModel:        "gemini-2.5-pro-preview-06-05",
			FastModel:       "gemini-2.5-flash",
			MaxOutputTokens: 8192,
		},
		Cache: CacheConfig{
			TTL:        "5m",
			MaxEntries: 100,
		},
		Input: InputConfig{
			MaxTextLength: 100000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the optional YAML config at path (skipped when path is empty
// or missing), then applies environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides layers environment variables over file/default values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv(EnvProModel); v != "" {
		c.Gemini.ProModel = v
	}
	if v := os.Getenv(EnvFastModel); v != "" {
		c.Gemini.FastModel = v
	}
}

// CacheTTL parses the cache TTL, falling back to the 5 minute default on
// an empty or malformed value.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}
