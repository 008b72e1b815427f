package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name, looked up in the working directory.
const FileName = "ledgerview.yaml"

// Config represents the top-level ledgerview.yaml configuration.
type Config struct {
	Currency string        `yaml:"currency"`
	Storage  StorageConfig `yaml:"storage"`
	Display  DisplayConfig `yaml:"display"`
	Log      LogConfig     `yaml:"log"`
}

// StorageConfig locates the snapshot slot.
type StorageConfig struct {
	Dir  string `yaml:"dir"`
	Slot string `yaml:"slot"`
}

// DisplayConfig controls terminal rendering.
type DisplayConfig struct {
	Style    string `yaml:"style"` // auto, dark, light, notty or markdown (no styling)
	WordWrap int    `yaml:"word_wrap"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a ledgerview.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads path, returning the defaults when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default() *Config {
	return &Config{
		Currency: "UGX",
		Storage: StorageConfig{
			Dir:  ".ledgerview",
			Slot: "financialData",
		},
		Display: DisplayConfig{
			Style:    "auto",
			WordWrap: 100,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
