// Package config handles loading and parsing application configuration.
// It supports two sources for the YAML file (in priority order):
//  1. A command-line flag:      --config=/path/to/config.yaml
//  2. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//
// Without a file, settings are read from the environment alone and the
// env-default values apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/aanand-mishra/people-registry/internal/storage"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// Storage is embedded (not a pointer) so cfg.Storage.Format and the
	// promoted cfg.Format both work.
	Storage `yaml:"storage"`
}

// Storage holds the initial data-file settings. The interactive menu can
// change format and path at runtime.
type Storage struct {
	// Format is one of binary, xml, json, text, sqlite.
	Format string `yaml:"format" env:"STORAGE_FORMAT" env-default:"json"`

	// Path is the data file. Empty means data<ext> for the format.
	Path string `yaml:"path" env:"STORAGE_PATH"`

	// LockFiles serializes access to the data file within the process.
	LockFiles bool `yaml:"lock_files" env:"STORAGE_LOCK_FILES" env-default:"false"`
}

// StorageFormat parses Format.
func (s Storage) StorageFormat() (storage.Format, error) {
	return storage.ParseFormat(s.Format)
}

// DataPath returns Path, or the default file name of the format.
func (s Storage) DataPath() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	f, err := s.StorageFormat()
	if err != nil {
		return "", err
	}
	return f.DefaultPath(), nil
}

// Load reads the config from configPath, or from the environment alone
// when configPath is empty, and validates the storage format.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}
		// cleanenv.ReadConfig reads the YAML file, then applies env
		// overrides and env-default values.
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read config from env: %w", err)
	}

	if _, err := cfg.StorageFormat(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ResolvePath returns flagPath, or CONFIG_PATH when the flag is empty.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv("CONFIG_PATH")
}
