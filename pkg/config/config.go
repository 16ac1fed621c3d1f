// Package config loads the assistant's settings from a YAML file, an
// optional .env file and the process environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "wellness.yaml"

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	LLM     LLMConfig     `yaml:"llm"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Export  ExportConfig  `yaml:"export"`
}

type StorageConfig struct {
	// Backend is one of sqlite, postgres or json.
	Backend  string `yaml:"backend"`
	Path     string `yaml:"path"`
	JSONPath string `yaml:"json_path"`
	URL      string `yaml:"url,omitempty"`
}

type LLMConfig struct {
	// Provider is one of gemini, openai or claude. Empty disables the
	// model and leaves advice on the rule-based fallback.
	Provider       string `yaml:"provider"`
	Model          string `yaml:"model,omitempty"`
	APIKey         string `yaml:"api_key,omitempty"`
	BaseURL        string `yaml:"base_url,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Debug  bool   `yaml:"debug"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

var (
	validBackends  = []string{"sqlite", "postgres", "json"}
	validProviders = []string{"", "gemini", "openai", "claude"}
	validLevels    = []string{"debug", "info", "warn", "error"}
	validFormats   = []string{"json", "console"}
)

// providerKeys maps providers to their key variables. When LLM_PROVIDER is
// unset the last provider with a key wins.
var providerKeys = []struct {
	provider string
	env      string
}{
	{"gemini", "GEMINI_API_KEY"},
	{"openai", "OPENAI_API_KEY"},
	{"claude", "ANTHROPIC_API_KEY"},
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:  "sqlite",
			Path:     filepath.Join("data", "wellness.db"),
			JSONPath: filepath.Join("data", "habits.json"),
		},
		LLM: LLMConfig{
			TimeoutSeconds: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{Port: 8080},
		Export: ExportConfig{Dir: "exports"},
	}
}

// Load reads path (a missing file means defaults), then .env, then the
// environment, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv loads variables that are not already set in the environment.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays environment variables onto c.
func (c *Config) ApplyEnv() {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
	if provider != "" {
		c.LLM.Provider = provider
		for _, pk := range providerKeys {
			if pk.provider == provider {
				if key := os.Getenv(pk.env); key != "" {
					c.LLM.APIKey = key
				}
			}
		}
	} else {
		for _, pk := range providerKeys {
			if key := os.Getenv(pk.env); key != "" {
				c.LLM.Provider = pk.provider
				c.LLM.APIKey = key
			}
		}
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}

	if v := os.Getenv("DATABASE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Storage.URL = v
		c.Storage.Backend = "postgres"
	}
	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = strings.ToLower(v)
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.Debug = b
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("EXPORT_DIR"); v != "" {
		c.Export.Dir = v
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if !contains(validBackends, c.Storage.Backend) {
		return fmt.Errorf("unsupported storage backend %q (supported: %s)", c.Storage.Backend, strings.Join(validBackends, ", "))
	}
	if c.Storage.Backend == "postgres" && c.Storage.URL == "" {
		return fmt.Errorf("postgres storage requires a url (set DATABASE_URL)")
	}
	if !contains(validProviders, c.LLM.Provider) {
		return fmt.Errorf("unsupported LLM provider %q (supported: gemini, openai, claude)", c.LLM.Provider)
	}
	if !contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("unsupported log level %q (supported: %s)", c.Logging.Level, strings.Join(validLevels, ", "))
	}
	if !contains(validFormats, c.Logging.Format) {
		return fmt.Errorf("unsupported log format %q (supported: %s)", c.Logging.Format, strings.Join(validFormats, ", "))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// Save writes c as YAML, creating parent directories. API keys are not
// written so that a generated file is safe to share.
func (c *Config) Save(path string) error {
	out := *c
	out.LLM.APIKey = ""
	out.Storage.URL = ""

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
