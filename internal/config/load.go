package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jeduden/lintcoach/internal/lint"
	"gopkg.in/yaml.v3"
)

// FileName is the config file written by `lintcoach init`.
const FileName = ".lintcoach.yml"

// fileNames are tried in order in every directory Discover visits.
var fileNames = []string{FileName, ".lintcoach.yaml", ".lintcoach.toml"}

// Default commands quoted in the tips.
const (
	DefaultFixCommand  = "npm run fix"
	DefaultTestCommand = "npm run test"
)

// DefaultDocs maps each tool to its rule index.
var DefaultDocs = map[lint.Tool]string{
	lint.ESLint:       "https://eslint.org/docs/rules/",
	lint.Stylelint:    "https://stylelint.io/user-guide/rules/list/",
	lint.HTMLValidate: "https://html-validate.org/rules/index.html",
}

// Load reads and parses a config file at the given path. Files ending in
// .toml are decoded as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// lintcoach config file. It stops searching when it encounters a .git
// directory (the repository root) or reaches the filesystem root.
// Returns the path to the config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		for _, name := range fileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	docs := make(map[string]string, len(DefaultDocs))
	for tool, u := range DefaultDocs {
		docs[string(tool)] = u
	}
	return &Config{
		Color:       "auto",
		FixCommand:  DefaultFixCommand,
		TestCommand: DefaultTestCommand,
		Docs:        docs,
	}
}
