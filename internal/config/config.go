package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdmath/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// Field length limits.
const (
	MaxCommandLength = 4096 // PATH_MAX on Linux
	MaxArgLength     = 1024
	MaxArgs          = 32
	MaxTagLength     = 32
)

// Config holds the converter invocation and output settings.
type Config struct {
	Converter ConverterConfig `yaml:"converter"`
	Inline    InlineConfig    `yaml:"inline"`
}

// ConverterConfig defines the external math converter command.
type ConverterConfig struct {
	Command string   `yaml:"command"` // Binary name or path (default: "pandoc")
	Args    []string `yaml:"args"`    // Arguments (default: ["--mathml"])
}

// InlineConfig defines how converted inline math is wrapped.
type InlineConfig struct {
	Tag string `yaml:"tag"` // Wrapper element (default: "span")
}

// Validate checks required fields and field lengths.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Converter.Command) == "" {
		return fmt.Errorf("%w: converter.command: required", ErrInvalidField)
	}
	if err := validateFieldLength("converter.command", c.Converter.Command, MaxCommandLength); err != nil {
		return err
	}

	if len(c.Converter.Args) > MaxArgs {
		return fmt.Errorf("%w: converter.args (%d items, max %d)", ErrFieldTooLong, len(c.Converter.Args), MaxArgs)
	}
	for i, arg := range c.Converter.Args {
		if err := validateFieldLength(fmt.Sprintf("converter.args[%d]", i), arg, MaxArgLength); err != nil {
			return err
		}
	}

	return validateFieldLength("inline.tag", c.Inline.Tag, MaxTagLength)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the built-in configuration: "pandoc --mathml" with
// inline math wrapped in <span>.
func DefaultConfig() *Config {
	return &Config{
		Converter: ConverterConfig{
			Command: "pandoc",
			Args:    []string{"--mathml"},
		},
		Inline: InlineConfig{Tag: "span"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file take their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills unset fields from DefaultConfig.
// A nil Args means unset; an explicit empty list is kept.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Converter.Command == "" {
		c.Converter.Command = def.Converter.Command
	}
	if c.Converter.Args == nil {
		c.Converter.Args = def.Converter.Args
	}
	if c.Inline.Tag == "" {
		c.Inline.Tag = def.Inline.Tag
	}
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists the files tried for a config name, in order:
// current directory, then the user config directory (go-mdmath/).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-mdmath", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
