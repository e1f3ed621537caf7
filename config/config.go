// Package config loads the settings shared by ipchecksum and ipchecksum-test.
// Files are YAML or TOML, chosen by extension; command line flags override
// whatever a file sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
	cerrors "github.com/iamNilotpal/ipchecksum/pkg/errors"
)

type Config struct {
	CLI     CLIConfig     `yaml:"cli" toml:"cli"`
	Harness HarnessConfig `yaml:"harness" toml:"harness"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

// Settings of the checksum binary.
type CLIConfig struct {
	Strategy           string `yaml:"strategy" toml:"strategy"`                       // Index or name
	Decompress         bool   `yaml:"decompress" toml:"decompress"`                   // Checksum decoded zstd inputs, off by default
	DecoderConcurrency uint8  `yaml:"decoder_concurrency" toml:"decoder_concurrency"` // 0 means one per CPU
	MaxDecodedSize     uint64 `yaml:"max_decoded_size" toml:"max_decoded_size"`       // Bytes, 0 means 1GB
}

// Settings of the test harness. Empty Strategies means all of them; Timeout
// bounds a single run of the binary.
type HarnessConfig struct {
	Binary          string        `yaml:"binary" toml:"binary"`
	InputDir        string        `yaml:"input_dir" toml:"input_dir"`
	ExpectedPath    string        `yaml:"expected_path" toml:"expected_path"`
	Strategies      []string      `yaml:"strategies" toml:"strategies"`
	Parallelism     int           `yaml:"parallelism" toml:"parallelism"`
	Timeout         time.Duration `yaml:"timeout" toml:"timeout"`
	Color           bool          `yaml:"color" toml:"color"`
	InProcess       bool          `yaml:"in_process" toml:"in_process"`
	CacheExpiration time.Duration `yaml:"cache_expiration" toml:"cache_expiration"`
	JSON            bool          `yaml:"json" toml:"json"`
}

type LogConfig struct {
	Debug    bool   `yaml:"debug" toml:"debug"`
	Level    string `yaml:"level" toml:"level"`
	Encoding string `yaml:"encoding" toml:"encoding"`
}

// Returns a Config struct with the defaults both binaries run with when no
// file is given.
func DefaultConfig() *Config {
	return &Config{
		CLI: CLIConfig{
			Strategy: "0",
		},
		Harness: HarnessConfig{
			Binary:          "./IPchecksum",
			InputDir:        "input",
			ExpectedPath:    "expected_out.txt",
			Timeout:         30 * time.Second,
			Color:           true,
			CacheExpiration: 5 * time.Minute,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// Loads configuration from a YAML (.yaml, .yml) or TOML (.toml) file on top
// of DefaultConfig and validates the result.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	case ".toml":
		_, err = toml.Decode(string(data), config)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.CLI.Strategy) == "" {
		return cerrors.NewValidationError("cli.strategy", c.CLI.Strategy, errors.New("strategy is required"))
	}

	h := &c.Harness
	if h.Parallelism < 0 {
		return cerrors.NewValidationError("harness.parallelism", h.Parallelism, errors.New("must not be negative"))
	}
	if h.Timeout < 0 {
		return cerrors.NewValidationError("harness.timeout", h.Timeout, errors.New("must not be negative"))
	}
	if h.CacheExpiration < 0 {
		return cerrors.NewValidationError("harness.cache_expiration", h.CacheExpiration, errors.New("must not be negative"))
	}
	if !h.InProcess && strings.TrimSpace(h.Binary) == "" {
		return cerrors.NewValidationError("harness.binary", h.Binary, errors.New("required unless in_process is set"))
	}

	switch c.Log.Encoding {
	case "", "json", "console":
	default:
		return cerrors.NewValidationError("log.encoding", c.Log.Encoding, errors.New("must be json or console"))
	}

	return nil
}

// Compression converts the CLI settings into decompression options.
func (c *CLIConfig) Compression() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Enable:             c.Decompress,
		DecoderConcurrency: c.DecoderConcurrency,
		MaxDecodedSize:     c.MaxDecodedSize,
	}
}
