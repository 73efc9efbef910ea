package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/k1LoW/slicon/version"
)

var (
	homePath       string
	configHomePath string
	stateHomePath  string
)

type Config struct {
	// Font files or directories searched for the preferred font before the system font directories
	FontPaths []string `yaml:"fontPaths,omitempty" json:"fontPaths,omitempty"`
}

func init() {
	var err error
	homePath, err = os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
}

// Load loads the configuration from the config file.
// It searches for config files in the following order:
// 1. $XDG_CONFIG_HOME/slicon/config-{profile}.yml
// 2. $XDG_CONFIG_HOME/slicon/config.yml
// If no config file is found, it returns an empty Config struct.
func Load(profile string) (*Config, error) {
	var configBasePaths []string
	if profile != "" {
		configBasePaths = append(configBasePaths, filepath.Join(configPath(), fmt.Sprintf("config-%s", profile)))
	}
	configBasePaths = append(configBasePaths, filepath.Join(configPath(), "config"))
	cfg := &Config{}
	for _, basePath := range configBasePaths {
		for _, ext := range []string{".yml", ".yaml"} {
			configPath := basePath + ext
			if b, err := os.ReadFile(configPath); err == nil {
				if err := yaml.Unmarshal(b, cfg); err != nil {
					return nil, fmt.Errorf("failed to unmarshal config %s: %w", configPath, err)
				}
				cfg.expandHome()
				return cfg, nil
			}
		}
	}
	// If no config file is found, return an empty config
	return cfg, nil
}

// expandHome replaces a leading ~ in font paths with the home directory.
func (c *Config) expandHome() {
	for i, p := range c.FontPaths {
		if p == "~" {
			c.FontPaths[i] = homePath
			continue
		}
		if len(p) > 1 && p[0] == '~' && (p[1] == '/' || p[1] == filepath.Separator) {
			c.FontPaths[i] = filepath.Join(homePath, p[2:])
		}
	}
}

// configPath returns the path to the configuration directory.
func configPath() string {
	if configHomePath != "" {
		return configHomePath
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		configHomePath = filepath.Join(v, version.Name)
	} else {
		configHomePath = filepath.Join(homePath, ".config", version.Name)
	}
	return configHomePath
}

// StateHomePath returns the path to the state home directory.
func StateHomePath() string {
	if stateHomePath != "" {
		return stateHomePath
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		stateHomePath = filepath.Join(v, version.Name)
	} else {
		stateHomePath = filepath.Join(homePath, ".local", "state", version.Name)
	}
	return stateHomePath
}
