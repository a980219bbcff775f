package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/snappier/internal/compressor"
	"github.com/mcncl/snappier/internal/errors"
	"github.com/mcncl/snappier/internal/transform"
)

// DefaultMaxAutoKeys keeps derived marker indexes to a single digit.
const DefaultMaxAutoKeys = 10

// Config represents the complete configuration for snappier
type Config struct {
	CustomJSONCompressionLogic bool              `yaml:"custom_json_compression_logic"`
	Keys                       []string          `yaml:"keys"`
	AutoKeys                   bool              `yaml:"auto_keys"`
	MaxAutoKeys                int               `yaml:"max_auto_keys"`
	VerifyTransform            bool              `yaml:"verify_transform"`
	Compression                CompressionConfig `yaml:"compression"`
	Output                     OutputConfig      `yaml:"output"`
	Dev                        DevConfig         `yaml:"dev"`
}

// CompressionConfig selects the block compressor
type CompressionConfig struct {
	Algorithm    string `yaml:"algorithm"`
	BoundaryScan bool   `yaml:"boundary_scan"`
}

// OutputConfig controls how encoded frames are written
type OutputConfig struct {
	Base64 bool `yaml:"base64"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		CustomJSONCompressionLogic: false,
		Keys:                       []string{},
		AutoKeys:                   false,
		MaxAutoKeys:                DefaultMaxAutoKeys,
		VerifyTransform:            false,
		Compression: CompressionConfig{
			Algorithm:    compressor.NameSnappy,
			BoundaryScan: false,
		},
		Output: OutputConfig{
			Base64: false,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file %s", path), err)
	}

	// Start with defaults
	cfg := NewConfig()

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file %s", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the compressor name, key table and auto-key limit
func (c *Config) Validate() error {
	if !compressor.Known(c.Compression.Algorithm) {
		return errors.NewConfigError(
			fmt.Sprintf("unknown compression algorithm %q", c.Compression.Algorithm),
			errors.ErrUnknownCompressor,
		)
	}
	if err := transform.ValidateKeys(c.Keys); err != nil {
		return errors.NewConfigError("invalid key table", err)
	}
	if c.MaxAutoKeys < 0 {
		return errors.NewConfigError(fmt.Sprintf("max_auto_keys must not be negative, got %d", c.MaxAutoKeys), nil)
	}
	if c.MaxAutoKeys > DefaultMaxAutoKeys {
		return errors.NewConfigError(
			fmt.Sprintf("max_auto_keys must be at most %d so marker indexes stay one digit, got %d", DefaultMaxAutoKeys, c.MaxAutoKeys),
			nil,
		)
	}
	return nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".snappier.yml", ".snappier.yaml", "snappier.yml", "snappier.yaml"}

	// Start from current directory
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		// Move up one directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// MergeConfigs merges CLI overrides into a base config.
// Non-empty values from override take precedence over base values.
// Boolean flags can only switch a feature on.
func MergeConfigs(base, override *Config) *Config {
	merged := *base // Start with a copy of base
	merged.Keys = append([]string(nil), base.Keys...)

	if len(override.Keys) > 0 {
		merged.Keys = append([]string(nil), override.Keys...)
	}
	if override.Compression.Algorithm != "" {
		merged.Compression.Algorithm = override.Compression.Algorithm
	}
	if override.MaxAutoKeys > 0 {
		merged.MaxAutoKeys = override.MaxAutoKeys
	}

	merged.CustomJSONCompressionLogic = base.CustomJSONCompressionLogic || override.CustomJSONCompressionLogic
	merged.AutoKeys = base.AutoKeys || override.AutoKeys
	merged.VerifyTransform = base.VerifyTransform || override.VerifyTransform
	merged.Compression.BoundaryScan = base.Compression.BoundaryScan || override.Compression.BoundaryScan
	merged.Output.Base64 = base.Output.Base64 || override.Output.Base64
	merged.Dev.Debug = base.Dev.Debug || override.Dev.Debug

	return &merged
}

// LoadConfigWithCLI loads config with CLI argument precedence.
// An empty configPath starts from the defaults.
func LoadConfigWithCLI(configPath string, cli *Config) (*Config, error) {
	// Start with defaults
	cfg := NewConfig()

	// Load config file if provided
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cli == nil {
		return cfg, nil
	}

	merged := MergeConfigs(cfg, cli)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}
