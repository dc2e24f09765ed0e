package lint

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeReport(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveFiles_SingleFile(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "eslint.json")
	writeReport(t, report)

	files, err := ResolveFiles([]string{report})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0] != report {
		t.Errorf("expected %q, got %q", report, files[0])
	}
}

func TestResolveFiles_NonJSONFileExplicit(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "report.txt")
	writeReport(t, txt)

	// Explicit paths are returned whatever the extension.
	files, err := ResolveFiles([]string{txt})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
}

func TestResolveFiles_Directory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "sub", "c.json"),
		filepath.Join(dir, "node_modules", "pkg", "d.json"),
		filepath.Join(dir, ".cache", "e.json"),
	} {
		writeReport(t, name)
	}

	files, err := ResolveFiles([]string{dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should find a.json and sub/c.json only.
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		if strings.Contains(f, "node_modules") || strings.Contains(f, ".cache") {
			t.Errorf("unexpected file: %s", f)
		}
	}
}

func TestResolveFiles_DoublestarGlob(t *testing.T) {
	dir := t.TempDir()
	writeReport(t, filepath.Join(dir, "reports", "js", "eslint.json"))
	writeReport(t, filepath.Join(dir, "reports", "css", "stylelint.json"))
	writeReport(t, filepath.Join(dir, "reports", "notes.md"))

	files, err := ResolveFiles([]string{filepath.Join(dir, "reports", "**", "*.json")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	if !strings.HasSuffix(files[0], filepath.Join("css", "stylelint.json")) {
		t.Errorf("expected sorted output, got %v", files)
	}
}

func TestResolveFiles_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "eslint.json")
	writeReport(t, report)

	files, err := ResolveFiles([]string{report, dir, filepath.Join(dir, "*.json")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file after dedup, got %d: %v", len(files), files)
	}
}

func TestResolveFiles_Missing(t *testing.T) {
	_, err := ResolveFiles([]string{filepath.Join(t.TempDir(), "missing.json")})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
	if !strings.Contains(err.Error(), "cannot access") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResolveFiles_GlobNoMatches(t *testing.T) {
	files, err := ResolveFiles([]string{filepath.Join(t.TempDir(), "*.json")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}
