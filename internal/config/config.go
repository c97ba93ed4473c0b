package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcplabs/mcp-greeter/internal/logger"
)

// Config holds the optional greeter settings.
type Config struct {
	// Greeting overrides the first output line.
	Greeting string `yaml:"greeting"`
	// LogLevel is the stderr log verbosity (debug, info, warn, error, fatal).
	LogLevel string `yaml:"log_level"`
	// SkipWait disables the final "Press Enter" prompt for scripted runs.
	SkipWait bool `yaml:"skip_wait"`
}

const (
	// DefaultConfigFilename is the conventional filename for greeter settings.
	DefaultConfigFilename = "mcp-greeter-settings.yaml"

	// DefaultGreeting is the fixed first output line. The literal matches the
	// original build stub byte for byte; pipeline checks match on it.
	DefaultGreeting = "Hello from Windows MCP Server (C++)!"

	// DefaultLogLevel keeps stderr quiet unless something goes wrong.
	DefaultLogLevel = "warn"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownLogLevel is returned when the log level does not parse.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns settings that reproduce the stock greeter behavior.
func Default() *Config {
	return &Config{
		Greeting: DefaultGreeting,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads configuration from the provided path and validates it.
// An empty path means "no settings file" and yields the defaults without
// touching the filesystem; an explicit path that cannot be read is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills omitted fields with defaults and checks the rest.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	// Set default greeting if not specified
	if cfg.Greeting == "" {
		cfg.Greeting = DefaultGreeting
	}

	// Set default log level if not specified
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	return nil
}
