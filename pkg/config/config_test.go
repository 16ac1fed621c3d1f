package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "LLM_PROVIDER", "LLM_MODEL",
	"DATABASE_PATH", "DATABASE_URL", "STORAGE_BACKEND", "LOG_LEVEL", "DEBUG", "PORT", "EXPORT_DIR",
}

// clearEnv blanks every variable Load reads; empty values are ignored.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "wellness.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  backend: json
  json_path: /tmp/habits.json
llm:
  provider: openai
  model: gpt-4o
logging:
  level: debug
  format: json
server:
  port: 9000
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/habits.json", cfg.Storage.JSONPath)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 60, cfg.LLM.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, c *Config)
	}{
		{
			name: "gemini key selects gemini",
			env:  map[string]string{"GEMINI_API_KEY": "g"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "gemini", c.LLM.Provider)
				assert.Equal(t, "g", c.LLM.APIKey)
			},
		},
		{
			name: "later keys take precedence",
			env:  map[string]string{"GEMINI_API_KEY": "g", "OPENAI_API_KEY": "o", "ANTHROPIC_API_KEY": "a"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "claude", c.LLM.Provider)
				assert.Equal(t, "a", c.LLM.APIKey)
			},
		},
		{
			name: "explicit provider picks its own key",
			env:  map[string]string{"LLM_PROVIDER": "OpenAI", "GEMINI_API_KEY": "g", "OPENAI_API_KEY": "o", "LLM_MODEL": "gpt-4o"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "openai", c.LLM.Provider)
				assert.Equal(t, "o", c.LLM.APIKey)
				assert.Equal(t, "gpt-4o", c.LLM.Model)
			},
		},
		{
			name: "database url switches to postgres",
			env:  map[string]string{"DATABASE_URL": "postgres://localhost/wellness"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "postgres", c.Storage.Backend)
				assert.Equal(t, "postgres://localhost/wellness", c.Storage.URL)
			},
		},
		{
			name: "scalar overrides",
			env:  map[string]string{"DATABASE_PATH": "x.db", "LOG_LEVEL": "WARN", "DEBUG": "true", "PORT": "3000", "EXPORT_DIR": "out"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "x.db", c.Storage.Path)
				assert.Equal(t, "warn", c.Logging.Level)
				assert.True(t, c.Logging.Debug)
				assert.Equal(t, 3000, c.Server.Port)
				assert.Equal(t, "out", c.Export.Dir)
			},
		},
		{
			name: "malformed numbers are ignored",
			env:  map[string]string{"PORT": "eighty", "DEBUG": "maybe"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 8080, c.Server.Port)
				assert.False(t, c.Logging.Debug)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := Default()
			cfg.ApplyEnv()
			tt.check(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"backend", func(c *Config) { c.Storage.Backend = "mongo" }, "unsupported storage backend"},
		{"postgres without url", func(c *Config) { c.Storage.Backend = "postgres" }, "requires a url"},
		{"provider", func(c *Config) { c.LLM.Provider = "llama" }, "unsupported LLM provider"},
		{"level", func(c *Config) { c.Logging.Level = "trace" }, "unsupported log level"},
		{"format", func(c *Config) { c.Logging.Format = "xml" }, "unsupported log format"},
		{"port", func(c *Config) { c.Server.Port = 0 }, "invalid server port"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveRoundTripsWithoutSecrets(t *testing.T) {
	clearEnv(t)
	cfg := Default()
	cfg.LLM.Provider = "gemini"
	cfg.LLM.APIKey = "secret"
	cfg.Server.Port = 9999

	path := filepath.Join(t.TempDir(), "nested", "wellness.yaml")
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini", loaded.LLM.Provider)
	assert.Equal(t, 9999, loaded.Server.Port)
	assert.Empty(t, loaded.LLM.APIKey)
	assert.Equal(t, "secret", cfg.LLM.APIKey)
}

func TestLoadDotEnv(t *testing.T) {
	const key = "WELLNESS_DOTENV_PROBE"
	t.Cleanup(func() { os.Unsetenv(key) })

	require.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-dotenv\n"), 0o644))
	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv(key))
}
