// Package config loads shopctl configuration from a YAML file, environment
// variables and an optional .env file, in ascending precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Ahmed-As3ad/e-commerce/commerce"
)

const (
	envPrefix      = "SHOPCTL"
	configFileName = "config"
	appDirName     = "shopctl"

	// DefaultReturnURL is where the hosted checkout sends the browser back.
	DefaultReturnURL = "http://localhost:5173/"
)

// Config holds everything the CLI needs to talk to the commerce API.
type Config struct {
	// BaseURL is the commerce API endpoint.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// Timeout bounds every HTTP request.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	// TokenPath is the fixed location of the persisted bearer token.
	TokenPath string `mapstructure:"token_path" yaml:"token_path"`
	// ReturnURL is appended to checkout-session requests.
	ReturnURL string `mapstructure:"return_url" yaml:"return_url"`
	// Verbose enables debug logging of every request.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// Dir returns the per-user config directory for shopctl.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, appDirName)
}

// DefaultTokenPath is where the bearer token lives unless overridden.
func DefaultTokenPath() string {
	return filepath.Join(Dir(), "token.json")
}

// Load reads configuration. cfgFile overrides the default search location;
// pass "" to use <user-config-dir>/shopctl/config.yaml. A missing config
// file is not an error; defaults and environment apply.
func Load(cfgFile string) (*Config, error) {
	// .env is optional developer convenience; absence is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("base_url", commerce.DefaultBaseURL)
	v.SetDefault("timeout", commerce.DefaultTimeout)
	v.SetDefault("token_path", DefaultTokenPath())
	v.SetDefault("return_url", DefaultReturnURL)
	v.SetDefault("verbose", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Write persists the config as YAML at the given path, creating the parent
// directory if needed.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
