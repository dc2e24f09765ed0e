// Package lintcoach exposes the embedded documentation for the supported
// linters.
package lintcoach

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tools/*/README.md
var toolsFS embed.FS

// ToolInfo holds the front matter of one tool README.
type ToolInfo struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Docs        string `yaml:"docs"`
}

// ListTools returns every documented tool sorted by ID.
func ListTools() ([]ToolInfo, error) {
	return listToolsFromFS(toolsFS)
}

// LookupTool returns the README body for the tool whose ID or name
// matches query, case-insensitively.
func LookupTool(query string) (string, error) {
	return lookupToolFromFS(toolsFS, query)
}

func listToolsFromFS(fsys fs.FS) ([]ToolInfo, error) {
	paths, err := fs.Glob(fsys, "tools/*/README.md")
	if err != nil {
		return nil, err
	}

	var tools []ToolInfo
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, err
		}
		info, _, ok := parseFrontMatter(data)
		if !ok {
			continue
		}
		tools = append(tools, info)
	}

	sort.Slice(tools, func(i, j int) bool { return tools[i].ID < tools[j].ID })
	return tools, nil
}

func lookupToolFromFS(fsys fs.FS, query string) (string, error) {
	paths, err := fs.Glob(fsys, "tools/*/README.md")
	if err != nil {
		return "", err
	}

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return "", err
		}
		info, body, ok := parseFrontMatter(data)
		if !ok {
			continue
		}
		dir := path.Base(path.Dir(p))
		if strings.EqualFold(info.ID, query) || strings.EqualFold(info.Name, query) || strings.EqualFold(dir, query) {
			return string(body), nil
		}
	}
	return "", fmt.Errorf("unknown tool %q", query)
}

// parseFrontMatter splits a README into its YAML front matter and body.
func parseFrontMatter(data []byte) (ToolInfo, []byte, bool) {
	const delim = "---\n"
	if !bytes.HasPrefix(data, []byte(delim)) {
		return ToolInfo{}, nil, false
	}
	rest := data[len(delim):]
	end := bytes.Index(rest, []byte("\n"+delim))
	if end < 0 {
		return ToolInfo{}, nil, false
	}

	var info ToolInfo
	if err := yaml.Unmarshal(rest[:end+1], &info); err != nil || info.ID == "" {
		return ToolInfo{}, nil, false
	}
	return info, rest[end+1+len(delim):], true
}
