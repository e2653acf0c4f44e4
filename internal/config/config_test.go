package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("base-url", "", "")
	fs.Duration("timeout", 0, "")
	fs.String("log-level", "", "")
	fs.Bool("strict", false, "")
	fs.Int("port", 0, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnchangedFlagsKeepDefaults(t *testing.T) {
	fs := testFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(LoadOptions{Flags: fs})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 8080, cfg.TwinPort)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"base_url": "http://localhost:9000",
		"timeout": "2s",
		"log_level": "debug",
		"strict": true
	}`)

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Strict)
}

func TestLoad_ConfigFileErrors(t *testing.T) {
	_, err := Load(LoadOptions{ConfigFile: "/nonexistent/path/config.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	path := writeFile(t, "config.json", `{ invalid json }`)
	_, err = Load(LoadOptions{ConfigFile: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EnvOverridesConfigFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"log_level": "debug", "twin_port": 9000}`)
	t.Setenv("API_DEMO_LOG_LEVEL", "error")
	t.Setenv("API_DEMO_TWIN_LATENCY", "250ms")

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 9000, cfg.TwinPort)
	assert.Equal(t, 250*time.Millisecond, cfg.TwinLatency)
}

func TestLoad_EnvFile(t *testing.T) {
	envFile := writeFile(t, ".env", "API_DEMO_USER_AGENT=from-env-file\nAPI_DEMO_NO_COLOR=true\n")
	t.Setenv("API_DEMO_NO_COLOR", "false")

	cfg, err := Load(LoadOptions{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "from-env-file", cfg.UserAgent)
	assert.False(t, cfg.NoColor, "the real environment wins over the env file")
}

func TestLoad_EnvFileDoesNotLeak(t *testing.T) {
	envFile := writeFile(t, ".env", "API_DEMO_USER_AGENT=from-env-file\nAPI_DEMO_LOG_LEVEL=debug\n")

	cfg, err := Load(LoadOptions{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "from-env-file", cfg.UserAgent)

	_, set := os.LookupEnv("API_DEMO_USER_AGENT")
	assert.False(t, set, "env file values stay out of the process environment")

	cfg, err = Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvFileOverridesConfigFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"log_level": "debug", "twin_port": 9000}`)
	envFile := writeFile(t, ".env", "API_DEMO_TWIN_PORT=9100\nOTHER_TOOL_SETTING=x\n")

	cfg, err := Load(LoadOptions{ConfigFile: path, EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9100, cfg.TwinPort)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load(LoadOptions{EnvFile: filepath.Join(t.TempDir(), "missing.env")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read env file")
}

func TestLoad_FlagsWin(t *testing.T) {
	t.Setenv("API_DEMO_BASE_URL", "http://from-env:1")
	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--base-url", "http://127.0.0.1:8080", "--timeout", "3s", "--port", "7070"}))

	cfg, err := Load(LoadOptions{Flags: fs})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, 7070, cfg.TwinPort)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad url", mutate: func(c *Config) { c.BaseURL = "not a url" }, wantErr: "BaseURL"},
		{name: "empty url", mutate: func(c *Config) { c.BaseURL = "" }, wantErr: "BaseURL"},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: "Timeout"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "LogLevel"},
		{name: "bad port", mutate: func(c *Config) { c.TwinPort = 70000 }, wantErr: "TwinPort"},
		{name: "negative latency", mutate: func(c *Config) { c.TwinLatency = -time.Second }, wantErr: "TwinLatency"},
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
			assert.Contains(t, err.Error(), "config error")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidValueFromEnv(t *testing.T) {
	t.Setenv("API_DEMO_LOG_LEVEL", "verbose")
	_, err := Load(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LogLevel")
}
