// Package config loads the options of the spl command from TOML or YAML
// files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a configuration file
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// AST output styles
const (
	StyleTree  = "tree"
	StyleSexpr = "sexpr"
)

var ErrInvalidStyle = errors.New("invalid output style")

// Config holds the options of the spl command
type Config struct {
	Lexer  LexerConfig  `toml:"lexer" yaml:"lexer"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// LexerConfig holds scanner settings
type LexerConfig struct {
	Strict        bool `toml:"strict" yaml:"strict"`
	LogRecoveries bool `toml:"log_recoveries" yaml:"log_recoveries"`
}

// OutputConfig holds what gets printed and how
type OutputConfig struct {
	Tokens bool   `toml:"tokens" yaml:"tokens"`
	AST    bool   `toml:"ast" yaml:"ast"`
	Style  string `toml:"style" yaml:"style"`
	Color  bool   `toml:"color" yaml:"color"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			AST:   true,
			Style: StyleTree,
			Color: true,
		},
	}
}

// Load reads the configuration file at path. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return Parse(content, detectFormat(path))
}

// Parse decodes configuration content in the given format on top of the
// defaults and validates it.
func Parse(content []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that can't be expressed by the types alone
func (c *Config) Validate() error {
	switch c.Output.Style {
	case StyleTree, StyleSexpr:
		return nil
	}
	return fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidStyle, c.Output.Style, StyleTree, StyleSexpr)
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
