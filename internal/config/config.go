// Package config loads and validates build configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-typst2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidFormat   = errors.New("invalid build format")
)

// Field length limits.
const (
	MaxBinLength  = 255  // Compiler binary name or path
	MaxPathLength = 1024 // Template and root paths
)

// Config holds all configuration for page builds.
type Config struct {
	Compiler CompilerConfig `yaml:"compiler"`
	Template TemplateConfig `yaml:"template"`
	Build    BuildConfig    `yaml:"build"`
}

// CompilerConfig defines external compiler options.
type CompilerConfig struct {
	Bin string `yaml:"bin"` // Binary name or path (empty = "typst" from PATH)
}

// TemplateConfig defines page template options.
type TemplateConfig struct {
	Path string `yaml:"path"` // Template file path (empty = install default)
}

// BuildConfig defines build behavior.
type BuildConfig struct {
	Root   string `yaml:"root"`   // Project root for the compiler (empty = install default)
	Format string `yaml:"format"` // "auto", "html", "svg" (empty = "auto")
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("compiler.bin", c.Compiler.Bin, MaxBinLength); err != nil {
		return err
	}
	if err := validateFieldLength("template.path", c.Template.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("build.root", c.Build.Root, MaxPathLength); err != nil {
		return err
	}

	switch strings.ToLower(c.Build.Format) {
	case "", "auto", "html", "svg":
		// valid
	default:
		return fmt.Errorf("%w: build.format %q (must be auto, html, or svg)", ErrInvalidFormat, c.Build.Format)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: typst from PATH,
// install-default template and root, auto format.
func DefaultConfig() *Config {
	return &Config{
		Compiler: CompilerConfig{Bin: ""},
		Template: TemplateConfig{Path: ""},
		Build:    BuildConfig{Root: "", Format: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/typst2html/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "typst2html", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
