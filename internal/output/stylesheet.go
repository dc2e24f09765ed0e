package output

import (
	"io"

	"github.com/jeduden/lintcoach/internal/lint"
	"github.com/jeduden/lintcoach/internal/style"
	"github.com/jeduden/lintcoach/internal/tips"
)

// StylesheetFormatter renders Stylelint results: the base report is
// produced by Base and generic tips are appended to it.
type StylesheetFormatter struct {
	Style style.Style
	// Base renders the per-file tables. Nil means StringFormatter.
	Base Renderer
	Tips tips.Options
}

// Render returns the base report followed by the tips, or "" when the
// base report is empty.
//
// The example quoted in the tips is the first warning of the first errored
// file, which need not be the first problem in the base report.
func (f *StylesheetFormatter) Render(results []lint.FileResult) string {
	st := styleOrPlain(f.Style)
	base := f.Base
	if base == nil {
		base = &StringFormatter{Style: st}
	}

	out := base.Render(results)
	if out == "" {
		return ""
	}

	ex, ok := ExampleFromErrored(results)
	if !ok {
		ex = tips.ExampleOf(lint.Diagnostic{})
	}
	// Stylelint reports carry no fixability counts, so the fix step is
	// always offered.
	opts := f.Tips
	opts.Fixable = true
	return out + tips.Render(st, tips.Generic, ex, opts) + "\n"
}

// Format writes the report to w.
func (f *StylesheetFormatter) Format(w io.Writer, results []lint.FileResult) error {
	return writeRendered(w, f, results)
}

var (
	_ Formatter = (*StylesheetFormatter)(nil)
	_ Renderer  = (*StylesheetFormatter)(nil)
)
