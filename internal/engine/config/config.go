// Package config handles parsing and validation of lintreport configuration files.
package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/irahardianto/lintreport/internal/platform/logger"
	"gopkg.in/yaml.v3"
)

// DefaultTool is the analyzer binary invoked when none is configured.
const DefaultTool = "pylint"

// DefaultDirectories are the scan targets used when none are configured.
var DefaultDirectories = []string{"avocado", "optional_plugins"}

var (
	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrNoDirectories is returned when the directory list is empty.
	ErrNoDirectories = errors.New("no directories to scan")
)

// Config is the full set of run settings. It is built once at startup
// and not modified after validation.
type Config struct {
	Directories []string `yaml:"directories"`
	Consolidate bool     `yaml:"consolidate"`
	Verbose     bool     `yaml:"verbose"`
	Details     bool     `yaml:"details"`
	Tool        string   `yaml:"tool"`
	Args        []string `yaml:"args"`
	Image       string   `yaml:"image"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Directories: append([]string(nil), DefaultDirectories...),
		Tool:        DefaultTool,
	}
}

// Loader handles loading configuration from the file system.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a new Loader with the given file system.
func NewLoader(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads a YAML config file from path and layers it over Default().
// Keys absent from the file keep their default value. The result is not
// validated: flags may still override it, so callers validate last.
// Returns ErrConfigNotFound if the file does not exist.
func (l *Loader) Load(ctx context.Context, path string) (*Config, error) {
	logger.FromContext(ctx).Debug("loading config file", "path", path)
	path = filepath.Clean(path)

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if l.fs.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Load reads a config file using the real file system.
func Load(ctx context.Context, path string) (*Config, error) {
	return NewLoader(&RealFileSystem{}).Load(ctx, path)
}

// Validate checks the settings a scan run needs and reports every problem
// at once so users can fix them together.
func (c *Config) Validate() error {
	return errors.Join(c.directoryErrors(), c.ValidateTool())
}

// ValidateTool checks only the analyzer settings. Commands that never scan,
// such as a catalog listing, use it instead of Validate.
func (c *Config) ValidateTool() error {
	if strings.TrimSpace(c.Tool) == "" {
		return errors.New("tool must not be empty")
	}
	return nil
}

func (c *Config) directoryErrors() error {
	var errs []error

	if len(c.Directories) == 0 {
		errs = append(errs, ErrNoDirectories)
	}
	for i, dir := range c.Directories {
		if strings.TrimSpace(dir) == "" {
			errs = append(errs, fmt.Errorf("directory at position %d is empty", i+1))
			continue
		}
		// Only the working directory is mounted into the container.
		if c.Image != "" && filepath.IsAbs(dir) {
			errs = append(errs, fmt.Errorf("directory %q: absolute paths are not visible with --image; use a path relative to the working directory", dir))
		}
	}

	return errors.Join(errs...)
}
