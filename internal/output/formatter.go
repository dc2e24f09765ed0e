package output

import (
	"fmt"
	"io"

	"github.com/jeduden/lintcoach/internal/lint"
	"github.com/jeduden/lintcoach/internal/style"
	"github.com/jeduden/lintcoach/internal/tips"
)

// Formatter defines the interface for outputting lint results.
type Formatter interface {
	Format(w io.Writer, results []lint.FileResult) error
}

// Renderer is implemented by formatters that build the whole report as a
// string. Render never returns a partial report: it is either complete or
// empty.
type Renderer interface {
	Render(results []lint.FileResult) string
}

// Output format names accepted by New.
const (
	FormatStylish = "stylish"
	FormatCompact = "compact"
	FormatJSON    = "json"
)

// New returns the formatter for tool in the given format. An empty format
// selects the stylish report.
func New(tool lint.Tool, format string, st style.Style, opts tips.Options) (Formatter, error) {
	switch format {
	case "", FormatStylish:
	case FormatCompact:
		return &CompactFormatter{Style: st}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want stylish, compact or json)", format)
	}

	switch tool {
	case lint.ESLint:
		return &ScriptFormatter{Style: st, Tips: opts}, nil
	case lint.Stylelint:
		return &StylesheetFormatter{Style: st, Tips: opts}, nil
	case lint.HTMLValidate:
		return &MarkupFormatter{Style: st, Tips: opts}, nil
	}
	return nil, fmt.Errorf("unknown tool %q", string(tool))
}

// writeRendered writes r's report to w. An empty report writes nothing.
func writeRendered(w io.Writer, r Renderer, results []lint.FileResult) error {
	out := r.Render(results)
	if out == "" {
		return nil
	}
	_, err := io.WriteString(w, out)
	return err
}

func styleOrPlain(st style.Style) style.Style {
	if st == nil {
		return style.Plain{}
	}
	return st
}
