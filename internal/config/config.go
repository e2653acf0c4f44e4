// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "API_DEMO"

// DefaultBaseURL is the public placeholder API.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// Config is the resolved CLI configuration.
type Config struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	UserAgent string        `mapstructure:"user_agent"`
	LogLevel  string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Strict    bool          `mapstructure:"strict"`   // Validate response bodies against the embedded schemas
	NoColor   bool          `mapstructure:"no_color"` // Disable coloured output

	TwinPort    int           `mapstructure:"twin_port" validate:"min=0,max=65535"`
	TwinLatency time.Duration `mapstructure:"twin_latency" validate:"gte=0"`
}

// LoadOptions selects the optional sources layered over the defaults.
type LoadOptions struct {
	ConfigFile string // JSON config file
	EnvFile    string // dotenv file; real environment variables win over it
	Flags      *pflag.FlagSet
}

// flagKeys maps config keys to the CLI flags that override them.
var flagKeys = map[string]string{
	"base_url":     "base-url",
	"timeout":      "timeout",
	"user_agent":   "user-agent",
	"log_level":    "log-level",
	"strict":       "strict",
	"no_color":     "no-color",
	"twin_port":    "port",
	"twin_latency": "latency",
}

// Load resolves the configuration. Sources are applied in increasing priority:
// defaults, config file, env file, environment, changed flags.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key := range flagKeys {
		_ = v.BindEnv(key)
	}

	if opts.ConfigFile != "" {
		path, err := resolvePath(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	// The env file sits between the config file and the real environment.
	if opts.EnvFile != "" {
		values, err := readEnvFile(opts.EnvFile)
		if err != nil {
			return nil, err
		}
		if err := v.MergeConfigMap(values); err != nil {
			return nil, fmt.Errorf("failed to merge env file %s: %w", opts.EnvFile, err)
		}
	}

	if opts.Flags != nil {
		for key, name := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// readEnvFile returns the config keys set by a dotenv file. Only
// EnvPrefix variables are kept; the process environment is not modified.
func readEnvFile(path string) (map[string]any, error) {
	envMap, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	values := make(map[string]any)
	for name, val := range envMap {
		key, ok := strings.CutPrefix(name, EnvPrefix+"_")
		if !ok {
			continue
		}
		key = strings.ToLower(key)
		if _, known := flagKeys[key]; known {
			values[key] = val
		}
	}
	return values, nil
}

// Default returns the configuration used when no source overrides anything.
func Default() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		Timeout:     10 * time.Second,
		LogLevel:    "warn",
		TwinPort:    8080,
		TwinLatency: 0,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("user_agent", d.UserAgent)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("no_color", d.NoColor)
	v.SetDefault("twin_port", d.TwinPort)
	v.SetDefault("twin_latency", d.TwinLatency)
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return filepath.Join(cwd, path), nil
}
