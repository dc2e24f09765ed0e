package output

import (
	"io"
	"strings"

	"github.com/jeduden/lintcoach/internal/lint"
	"github.com/jeduden/lintcoach/internal/style"
	"github.com/jeduden/lintcoach/internal/tips"
)

// MarkupFormatter renders html-validate results. When the example
// diagnostic is a parser error the tips switch to a syntax checklist.
type MarkupFormatter struct {
	Style style.Style
	Tips  tips.Options
}

// Render returns the report, or "" when there are no problems.
func (f *MarkupFormatter) Render(results []lint.FileResult) string {
	t := Fold(results)
	if t.Total() == 0 {
		return ""
	}
	st := styleOrPlain(f.Style)

	var b strings.Builder
	b.WriteString("\n")
	writeFileTables(&b, st, results)
	b.WriteString(summaryLine(st, t))
	b.WriteString("\n")

	opts := f.Tips
	opts.Fixable = false
	b.WriteString(tips.Render(st, tips.Select(true, t.Example), t.Example, opts))

	return st.Paint(b.String(), style.Reset)
}

// Format writes the report to w.
func (f *MarkupFormatter) Format(w io.Writer, results []lint.FileResult) error {
	return writeRendered(w, f, results)
}

var (
	_ Formatter = (*MarkupFormatter)(nil)
	_ Renderer  = (*MarkupFormatter)(nil)
)
