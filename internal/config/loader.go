package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given project root.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (ASSETSWEEP_*)
// 2. Config file (.assetsweep/config.yml or .assetsweep/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	// Set up config file search
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(l.rootDir, ".assetsweep"))

	// Enable environment variable overrides
	v.SetEnvPrefix("ASSETSWEEP")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., ASSETSWEEP_ASSETS_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("assets.prefix")
	v.BindEnv("scan.progress_every")

	setDefaults(v)

	// Try to read config file
	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("assets.roots", defaults.Assets.Roots)
	v.SetDefault("assets.extensions", defaults.Assets.Extensions)
	v.SetDefault("assets.prefix", defaults.Assets.Prefix)

	v.SetDefault("code.roots", defaults.Code.Roots)
	v.SetDefault("code.extensions", defaults.Code.Extensions)
	v.SetDefault("code.ignore_dirs", defaults.Code.IgnoreDirs)

	v.SetDefault("groups.direct", defaults.Groups.Direct)
	v.SetDefault("groups.alias", defaults.Groups.Alias)

	v.SetDefault("scan.progress_every", defaults.Scan.ProgressEvery)
}

// LoadConfig is a convenience function that creates a loader and loads config.
// It uses the current working directory as the project root.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific project root.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
