package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/makuralymi/Questionnaire-survey/internal/model"
)

// Auth holds the basic-auth credentials for the stats dashboard. The gate
// fails closed: with an empty password every stats request is rejected.
type Auth struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Config is the full server configuration. Every field has a default so an
// absent config file yields a runnable single-machine setup.
type Config struct {
	SurveyAddr string `yaml:"surveyAddr"` // submission listener
	StatsAddr  string `yaml:"statsAddr"`  // authenticated dashboard listener

	Store    string `yaml:"store"`    // "file" (default) or "sqlite"
	DataFile string `yaml:"dataFile"` // JSON array file, or sqlite database path

	Auth Auth `yaml:"auth"`

	// TrustProxyHeaders enables X-Forwarded-For / X-Real-Ip for client IP
	// capture. Spoofable: only meaningful behind a trusted reverse proxy.
	TrustProxyHeaders bool `yaml:"trustProxyHeaders"`

	// Schema overrides the built-in questionnaire shape when present.
	Schema *model.Schema `yaml:"schema"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		SurveyAddr:        ":1144",
		StatsAddr:         ":1145",
		Store:             "file",
		DataFile:          "data/responses.json",
		Auth:              Auth{User: "admin"},
		TrustProxyHeaders: true,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// ActiveSchema returns the configured schema, or the built-in questionnaire
// shape when none was supplied.
func (c Config) ActiveSchema() model.Schema {
	if c.Schema != nil {
		return *c.Schema
	}
	return model.DefaultSchema()
}
