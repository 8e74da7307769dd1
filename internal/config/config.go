// Package config loads and validates md2slides configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2slides/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// appDirName is the subdirectory of the user config dir searched for named
// configs.
const appDirName = "go-md2slides"

// Config holds all configuration for deck generation.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Deck      DeckConfig      `yaml:"deck"`
	Layout    LayoutConfig    `yaml:"layout"`
	Exercises ExercisesConfig `yaml:"exercises"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir    string `yaml:"dir"`    // output directory (empty = current)
	Suffix string `yaml:"suffix"` // output file suffix (default ".md")
}

// DeckConfig defines preamble metadata defaults.
type DeckConfig struct {
	Title    string `yaml:"title"`    // empty = derived from output name
	Author   string `yaml:"author"`
	Date     string `yaml:"date"`     // "auto", "auto:FORMAT", or literal
	ImageDir string `yaml:"imageDir"` // default "img"
}

// LayoutConfig defines page geometry defaults.
type LayoutConfig struct {
	MaxLines     int `yaml:"maxLines"`     // default 15
	CharsPerLine int `yaml:"charsPerLine"` // default 60
	MaxTitleLen  int `yaml:"maxTitleLen"`  // default 0 = unlimited
}

// ExercisesConfig defines companion-file options.
type ExercisesConfig struct {
	Save   bool   `yaml:"save"`   // default true
	Suffix string `yaml:"suffix"` // appended to the output name (default "-exercises")
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Suffix: ".md"},
		Deck:   DeckConfig{Date: "auto", ImageDir: "img"},
		Layout: LayoutConfig{MaxLines: 15, CharsPerLine: 60},
		Exercises: ExercisesConfig{
			Save:   true,
			Suffix: "-exercises",
		},
	}
}

// LoadConfig loads configuration from a file path or config name, layered
// over the defaults. If nameOrPath contains a path separator it is treated
// as a file path; otherwise it is searched in standard locations.
// Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml.
// Tries locations in order: current directory, user config dir.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDirName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
