// Package config loads the settings of the ustr command from a TOML or YAML
// file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	ustr "github.com/42atomys/go-ustr"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings shared by all commands
type Config struct {
	// Target encoding for transcode: utf-8, utf-16 or utf-32
	Encoding string `toml:"encoding" yaml:"encoding"`
	// Byte order for written files: le, be or host
	ByteOrder string `toml:"byte_order" yaml:"byte_order"`
	// Whether written files start with a byte-order mark
	Mark bool `toml:"mark" yaml:"mark"`

	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(content, detectFormat(path))
}

// Parse decodes content in the given format, fills in defaults and
// validates the result.
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Encoding == "" {
		c.Encoding = "utf-8"
	}
	if c.ByteOrder == "" {
		c.ByteOrder = "host"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	if _, err := ParseEncoding(c.Encoding); err != nil {
		return err
	}
	if _, err := ParseByteOrder(c.ByteOrder); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

// ParseEncoding maps an encoding name to its unit width.
func ParseEncoding(name string) (ustr.Encoding, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "utf-8", "utf8":
		return ustr.EncodingUTF8, nil
	case "utf-16", "utf16":
		return ustr.EncodingUTF16, nil
	case "utf-32", "utf32":
		return ustr.EncodingUTF32, nil
	}
	return 0, fmt.Errorf("%w: encoding %q", ErrInvalid, name)
}

// ParseByteOrder maps le, be or host to a byte order.
func ParseByteOrder(name string) (ustr.ByteOrder, error) {
	switch strings.ToLower(name) {
	case "le", "little":
		return ustr.LittleEndian, nil
	case "be", "big":
		return ustr.BigEndian, nil
	case "host", "":
		return ustr.HostOrder, nil
	}
	return 0, fmt.Errorf("%w: byte_order %q", ErrInvalid, name)
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, name)
	}
	return level, nil
}
