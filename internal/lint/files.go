package lint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// isReport returns true if the file extension is .json.
func isReport(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}

// hasGlobChars returns true if the string contains glob meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// ResolveFiles takes positional arguments and returns deduplicated, sorted
// report file paths. It supports individual files, directories (recursive
// *.json), and doublestar glob patterns such as reports/**/*.json. Returns
// an error for nonexistent paths that are not glob patterns.
func ResolveFiles(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	addFile := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		if err := resolveArg(arg, addFile); err != nil {
			return nil, err
		}
	}

	sort.Strings(result)
	return result, nil
}

// resolveArg resolves a single argument (glob, directory, or file) and calls
// addFile for each report found.
func resolveArg(arg string, addFile func(string)) error {
	if hasGlobChars(arg) {
		return resolveGlob(arg, addFile)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}

	if info.IsDir() {
		return addDirFiles(arg, addFile)
	}

	// Explicitly named files are accepted whatever their extension.
	addFile(arg)
	return nil
}

// resolveGlob expands a pattern and adds matching reports.
func resolveGlob(pattern string, addFile func(string)) error {
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return fmt.Errorf("invalid glob pattern %q", pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if info.IsDir() {
			if err := addDirFiles(m, addFile); err != nil {
				return err
			}
		} else if isReport(m) {
			addFile(m)
		}
	}
	return nil
}

// addDirFiles walks a directory and adds every report found.
func addDirFiles(dir string, addFile func(string)) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if isReport(path) {
			addFile(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking directory %q: %w", dir, err)
	}
	return nil
}
