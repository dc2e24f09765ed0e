package lint

import (
	"fmt"
	"io"
	"strings"
)

// Tool identifies the linter that produced a report.
type Tool string

// Supported tools.
const (
	ESLint       Tool = "eslint"
	Stylelint    Tool = "stylelint"
	HTMLValidate Tool = "htmlvalidate"
)

// Tools lists every supported tool in display order.
var Tools = []Tool{ESLint, Stylelint, HTMLValidate}

// ParseTool resolves a tool name. "html-validate" is accepted as an alias.
func ParseTool(name string) (Tool, error) {
	switch strings.ToLower(name) {
	case "eslint":
		return ESLint, nil
	case "stylelint":
		return Stylelint, nil
	case "htmlvalidate", "html-validate":
		return HTMLValidate, nil
	}
	return "", fmt.Errorf("unknown tool %q", name)
}

// Decode reads a JSON report written by the tool.
func (t Tool) Decode(r io.Reader) ([]FileResult, error) {
	switch t {
	case ESLint:
		return DecodeESLint(r)
	case Stylelint:
		return DecodeStylelint(r)
	case HTMLValidate:
		return DecodeHTMLValidate(r)
	}
	return nil, fmt.Errorf("unknown tool %q", string(t))
}
