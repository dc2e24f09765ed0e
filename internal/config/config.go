package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jeduden/lintcoach/internal/lint"
	"github.com/jeduden/lintcoach/internal/style"
	"github.com/jeduden/lintcoach/internal/tips"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Color       string            `yaml:"color,omitempty" toml:"color,omitempty"`
	FixCommand  string            `yaml:"fix-command,omitempty" toml:"fix-command,omitempty"`
	TestCommand string            `yaml:"test-command,omitempty" toml:"test-command,omitempty"`
	Ignore      Patterns          `yaml:"ignore,omitempty" toml:"ignore,omitempty"`
	Docs        map[string]string `yaml:"docs,omitempty" toml:"docs,omitempty"`
}

// Patterns is a list of glob patterns. In YAML and TOML it may be written
// either as a single string or as a list of strings.
type Patterns []string

// UnmarshalYAML implements custom YAML unmarshalling for Patterns.
// It handles two forms:
//   - "dist/**"             -> ["dist/**"]
//   - ["dist/**", "*.min"]  -> ["dist/**", "*.min"]
func (p *Patterns) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return fmt.Errorf("invalid ignore pattern: %w", err)
		}
		*p = Patterns{s}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return fmt.Errorf("invalid ignore patterns: %w", err)
		}
		*p = list
		return nil
	}
	return fmt.Errorf("ignore must be a string or a list, got %v", value.Kind)
}

// UnmarshalTOML implements toml.Unmarshaler with the same two forms as
// UnmarshalYAML.
func (p *Patterns) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*p = Patterns{v}
		return nil
	case []any:
		list := make(Patterns, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("ignore pattern must be a string, got %T", item)
			}
			list = append(list, s)
		}
		*p = list
		return nil
	}
	return fmt.Errorf("ignore must be a string or a list, got %T", data)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := style.ParseMode(c.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	keys := make([]string, 0, len(c.Docs))
	for k := range c.Docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := lint.ParseTool(k); err != nil {
			return fmt.Errorf("docs: %w", err)
		}
	}
	for _, pat := range c.Ignore {
		if strings.TrimSpace(pat) == "" {
			return errors.New("ignore: empty pattern")
		}
	}
	return nil
}

// DocsURL returns the rule documentation URL for tool. The key may be
// written with any alias ParseTool accepts.
func (c *Config) DocsURL(tool lint.Tool) string {
	if u, ok := c.Docs[string(tool)]; ok {
		return u
	}
	for k, u := range c.Docs {
		if t, err := lint.ParseTool(k); err == nil && t == tool {
			return u
		}
	}
	return ""
}

// Tips returns the tips options for tool. Fixable is left for the
// formatter to decide.
func (c *Config) Tips(tool lint.Tool) tips.Options {
	return tips.Options{
		FixCommand:  c.FixCommand,
		TestCommand: c.TestCommand,
		DocsURL:     c.DocsURL(tool),
	}
}
