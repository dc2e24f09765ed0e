package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeduden/lintcoach/internal/lint"
	"gopkg.in/yaml.v3"
)

// --- Parsing tests ---

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseValidYAML(t *testing.T) {
	path := writeConfig(t, ".lintcoach.yml", `
color: never
fix-command: yarn lint --fix
test-command: yarn test
ignore:
  - "vendor/**"
  - "*.min.js"
docs:
  eslint: https://example.test/eslint/
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Color != "never" {
		t.Errorf("color: got %q", cfg.Color)
	}
	if cfg.FixCommand != "yarn lint --fix" || cfg.TestCommand != "yarn test" {
		t.Errorf("commands: got %q / %q", cfg.FixCommand, cfg.TestCommand)
	}
	if len(cfg.Ignore) != 2 || cfg.Ignore[0] != "vendor/**" {
		t.Errorf("ignore: got %v", cfg.Ignore)
	}
	if cfg.Docs["eslint"] != "https://example.test/eslint/" {
		t.Errorf("docs: got %v", cfg.Docs)
	}
}

func TestParseValidTOML(t *testing.T) {
	path := writeConfig(t, ".lintcoach.toml", `
color = "always"
fix-command = "pnpm fix"
ignore = ["dist/**"]

[docs]
stylelint = "https://example.test/stylelint/"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Color != "always" || cfg.FixCommand != "pnpm fix" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "dist/**" {
		t.Errorf("ignore: got %v", cfg.Ignore)
	}
	if cfg.Docs["stylelint"] != "https://example.test/stylelint/" {
		t.Errorf("docs: got %v", cfg.Docs)
	}
}

func TestIgnoreScalarForm(t *testing.T) {
	yml := writeConfig(t, ".lintcoach.yml", "ignore: \"build/**\"\n")
	cfg, err := Load(yml)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "build/**" {
		t.Errorf("yaml ignore: got %v", cfg.Ignore)
	}

	tml := writeConfig(t, ".lintcoach.toml", "ignore = \"build/**\"\n")
	cfg, err = Load(tml)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "build/**" {
		t.Errorf("toml ignore: got %v", cfg.Ignore)
	}
}

func TestIgnoreMappingRejected(t *testing.T) {
	path := writeConfig(t, ".lintcoach.yml", "ignore:\n  a: b\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for mapping ignore")
	}
}

func TestInvalidYAMLReturnsError(t *testing.T) {
	path := writeConfig(t, ".lintcoach.yml", "ignore: [[[invalid\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestInvalidTOMLReturnsError(t *testing.T) {
	path := writeConfig(t, ".lintcoach.toml", "color = \n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
	if !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadNonexistentFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/.lintcoach.yml"); err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

// --- Discovery tests ---

func TestDiscoverFindsInCurrentDir(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, FileName)
	if err := os.WriteFile(cfgPath, []byte("color: auto"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if found != cfgPath {
		t.Errorf("expected %s, got %s", cfgPath, found)
	}
}

func TestDiscoverFindsTOML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".lintcoach.toml")
	if err := os.WriteFile(cfgPath, []byte(`color = "auto"`), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if found != cfgPath {
		t.Errorf("expected %s, got %s", cfgPath, found)
	}
}

func TestDiscoverPrefersYAML(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{FileName, ".lintcoach.toml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(""), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	found, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if filepath.Base(found) != FileName {
		t.Errorf("expected %s, got %s", FileName, found)
	}
}

func TestDiscoverFindsInParentDir(t *testing.T) {
	parent := t.TempDir()
	child := filepath.Join(parent, "subdir")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(parent, FileName)
	if err := os.WriteFile(cfgPath, []byte("color: auto"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(child)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if found != cfgPath {
		t.Errorf("expected %s, got %s", cfgPath, found)
	}
}

func TestDiscoverStopsAtGitBoundary(t *testing.T) {
	// grandparent has config, parent has .git, child is startDir.
	grandparent := t.TempDir()
	parent := filepath.Join(grandparent, "repo")
	child := filepath.Join(parent, "src")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(parent, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(grandparent, FileName), []byte("color: auto"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(child)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if found != "" {
		t.Errorf("expected empty string (stopped at .git), got %s", found)
	}
}

func TestDiscoverStopsAtGitBoundaryWithConfigInRepo(t *testing.T) {
	repoRoot := t.TempDir()
	child := filepath.Join(repoRoot, "src")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(repoRoot, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(repoRoot, FileName)
	if err := os.WriteFile(cfgPath, []byte("color: auto"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(child)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if found != cfgPath {
		t.Errorf("expected %s, got %s", cfgPath, found)
	}
}

func TestDiscoverReturnsEmptyWhenNotFound(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if found != "" {
		t.Errorf("expected empty string, got %s", found)
	}
}

// --- Defaults and merge tests ---

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.FixCommand != "npm run fix" || cfg.TestCommand != "npm run test" {
		t.Errorf("unexpected commands: %+v", cfg)
	}
	for _, tool := range lint.Tools {
		if cfg.DocsURL(tool) == "" {
			t.Errorf("no default docs URL for %s", tool)
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDefaultsRoundTripYAML(t *testing.T) {
	data, err := yaml.Marshal(Defaults())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := writeConfig(t, FileName, string(data))
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DocsURL(lint.Stylelint) != DefaultDocs[lint.Stylelint] {
		t.Errorf("docs lost in round trip: %v", cfg.Docs)
	}
}

func TestMergeNilLoaded(t *testing.T) {
	defaults := Defaults()
	merged := Merge(defaults, nil)

	if merged.FixCommand != defaults.FixCommand {
		t.Errorf("fix-command: got %q", merged.FixCommand)
	}
	merged.Docs["eslint"] = "changed"
	if defaults.Docs["eslint"] == "changed" {
		t.Error("Merge must copy the docs map")
	}
}

func TestMergeLoadedWins(t *testing.T) {
	loaded := &Config{
		Color:      "never",
		FixCommand: "make fix",
		Ignore:     Patterns{"vendor/**"},
		Docs:       map[string]string{"eslint": "https://example.test/"},
	}

	merged := Merge(Defaults(), loaded)

	if merged.Color != "never" || merged.FixCommand != "make fix" {
		t.Errorf("loaded values lost: %+v", merged)
	}
	if merged.TestCommand != DefaultTestCommand {
		t.Errorf("unset test-command should keep default, got %q", merged.TestCommand)
	}
	if merged.DocsURL(lint.ESLint) != "https://example.test/" {
		t.Errorf("eslint docs: got %q", merged.DocsURL(lint.ESLint))
	}
	if merged.DocsURL(lint.HTMLValidate) != DefaultDocs[lint.HTMLValidate] {
		t.Errorf("htmlvalidate docs should keep default, got %q", merged.DocsURL(lint.HTMLValidate))
	}
	if len(merged.Ignore) != 1 {
		t.Errorf("ignore: got %v", merged.Ignore)
	}
}

// --- Validation and accessors ---

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty", Config{}, ""},
		{"color", Config{Color: "sometimes"}, "color"},
		{"docs tool", Config{Docs: map[string]string{"jshint": "x"}}, "docs"},
		{"docs alias", Config{Docs: map[string]string{"html-validate": "x"}}, ""},
		{"blank ignore", Config{Ignore: Patterns{" "}}, "ignore"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDocsURLAlias(t *testing.T) {
	cfg := &Config{Docs: map[string]string{"html-validate": "https://example.test/html/"}}
	if got := cfg.DocsURL(lint.HTMLValidate); got != "https://example.test/html/" {
		t.Errorf("got %q", got)
	}
	if got := cfg.DocsURL(lint.ESLint); got != "" {
		t.Errorf("expected empty URL, got %q", got)
	}
}

func TestTips(t *testing.T) {
	opts := Defaults().Tips(lint.ESLint)
	if opts.FixCommand != "npm run fix" || opts.TestCommand != "npm run test" {
		t.Errorf("unexpected commands: %+v", opts)
	}
	if opts.DocsURL != "https://eslint.org/docs/rules/" {
		t.Errorf("docs: got %q", opts.DocsURL)
	}
	if opts.Fixable {
		t.Error("Fixable must be left to the formatter")
	}
}
