package output

import (
	"encoding/json"
	"io"

	"github.com/jeduden/lintcoach/internal/lint"
)

// JSONFormatter outputs diagnostics as a flat JSON array.
type JSONFormatter struct{}

type jsonDiagnostic struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Fixable  bool   `json:"fixable"`
}

// Format writes one object per diagnostic as a pretty-printed JSON array,
// in input order. Results without diagnostics produce [].
func (f *JSONFormatter) Format(w io.Writer, results []lint.FileResult) error {
	items := make([]jsonDiagnostic, 0)
	for _, r := range results {
		for _, d := range r.Messages {
			severity := lint.Warning
			if d.IsError() {
				severity = lint.Error
			}
			items = append(items, jsonDiagnostic{
				File:     r.FilePath,
				Line:     d.Line,
				Column:   d.Column,
				Rule:     d.RuleID,
				Severity: string(severity),
				Message:  d.Message,
				Fixable:  d.Fixable,
			})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

var _ Formatter = (*JSONFormatter)(nil)
