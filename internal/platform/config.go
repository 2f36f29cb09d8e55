package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the optional vault configuration file.
const ConfigFile = "config.yaml"

// Config holds the user-facing settings for a vault. Values are read
// from config.yaml in the vault root, then overridden by environment
// variables.
type Config struct {
	Vault       string `yaml:"vault" env:"SCRIB_VAULT"`
	ReadOnly    bool   `yaml:"read_only" env:"SCRIB_READ_ONLY"`
	SnapshotURL string `yaml:"snapshot_url" env:"SCRIB_SNAPSHOT_URL"`
	Sort        string `yaml:"sort" env:"SCRIB_SORT"`
	Addr        string `yaml:"addr" env:"SCRIB_ADDR"`
}

// DefaultConfig returns the baseline settings applied before any file
// or environment overrides.
func DefaultConfig() Config {
	return Config{
		Vault: ".",
		Sort:  "updated",
		Addr:  ":8787",
	}
}

// LoadConfig resolves the effective configuration for the given vault
// directory. Missing config.yaml is not an error; a malformed one is.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", ConfigFile, err)
		}
	case os.IsNotExist(err):
		// No file, defaults apply.
	default:
		return cfg, fmt.Errorf("reading %s: %w", ConfigFile, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}
