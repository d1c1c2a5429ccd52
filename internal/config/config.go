// Package config loads the optional shellbar YAML file and its companion
// dotenv file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Default values.
const (
	DefaultLogLevel = zerolog.InfoLevel
	DefaultTitle    = "shellbar"
	DefaultTooltip  = "shellbar"

	// EnvLogLevel overrides log_level when set.
	EnvLogLevel = "SHELLBAR_LOG_LEVEL"

	fileName = "config.yaml"
	envName  = "shellbar.env"
)

// Config holds the parsed shellbar configuration.
// All fields are optional; zero values represent defaults.
type Config struct {
	Version     int        `yaml:"version"`
	RawLogLevel string     `yaml:"log_level"` // zerolog level name, e.g. "debug"
	HTTPAddr    string     `yaml:"http_addr"` // serve tools over HTTP; empty means stdio
	RawFixPath  *bool      `yaml:"fix_path"`  // default true
	Tray        TrayConfig `yaml:"tray"`
}

// TrayConfig controls the tray icon labels.
type TrayConfig struct {
	Title   string `yaml:"title"`
	Tooltip string `yaml:"tooltip"`
}

// LogLevel returns the configured level, honouring SHELLBAR_LOG_LEVEL, or
// the default when neither parses.
func (c *Config) LogLevel() zerolog.Level {
	for _, raw := range []string{os.Getenv(EnvLogLevel), c.RawLogLevel} {
		if raw == "" {
			continue
		}
		if lvl, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			return lvl
		}
	}
	return DefaultLogLevel
}

// FixPath reports whether PATH should be taken from the login shell.
func (c *Config) FixPath() bool {
	if c.RawFixPath != nil {
		return *c.RawFixPath
	}
	return true
}

// Title returns the tray title or the default.
func (c *Config) Title() string {
	if c.Tray.Title != "" {
		return c.Tray.Title
	}
	return DefaultTitle
}

// Tooltip returns the tray tooltip or the default.
func (c *Config) Tooltip() string {
	if c.Tray.Tooltip != "" {
		return c.Tray.Tooltip
	}
	return DefaultTooltip
}

// LoadResult holds the parsed config and where it was looked for.
type LoadResult struct {
	Config  *Config
	Path    string // config file path, whether or not it exists
	EnvFile string // dotenv file that was applied; empty if none
}

// DefaultPath returns <UserConfigDir>/shellbar/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "shellbar", fileName), nil
}

// Load reads the config file at path, or at DefaultPath when path is empty.
// If the file does not exist, a default Config is returned.
// A shellbar.env file next to it is loaded into the process environment
// without overriding variables that are already set, so spawned scripts
// inherit it.
func Load(path string) (*LoadResult, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	res := &LoadResult{Config: &Config{}, Path: path}

	envFile := filepath.Join(filepath.Dir(path), envName)
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading %s: %w", envName, err)
		}
		res.EnvFile = envFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return res, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, res.Config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return res, nil
}
