package output

import (
	"io"
	"strings"

	"github.com/jeduden/lintcoach/internal/lint"
	"github.com/jeduden/lintcoach/internal/style"
	"github.com/jeduden/lintcoach/internal/tips"
)

// ScriptFormatter renders ESLint results as a stylish table followed by a
// summary, a fixable line and generic tips.
type ScriptFormatter struct {
	Style style.Style
	// Tips supplies the commands and docs URL; Fixable is computed.
	Tips tips.Options
}

// Render returns the report, or "" when there are no problems.
func (f *ScriptFormatter) Render(results []lint.FileResult) string {
	t := Fold(results)
	if t.Total() == 0 {
		return ""
	}
	st := styleOrPlain(f.Style)

	var b strings.Builder
	b.WriteString("\n")
	writeFileTables(&b, st, results)
	b.WriteString(summaryLine(st, t))
	if t.Fixable() > 0 {
		b.WriteString(fixableLine(st, t, f.Tips.FixCommand))
	}
	b.WriteString("\n")

	opts := f.Tips
	opts.Fixable = t.Fixable() > 0
	b.WriteString(tips.Render(st, tips.Generic, t.Example, opts))

	return st.Paint(b.String(), style.Reset)
}

// Format writes the report to w.
func (f *ScriptFormatter) Format(w io.Writer, results []lint.FileResult) error {
	return writeRendered(w, f, results)
}

var (
	_ Formatter = (*ScriptFormatter)(nil)
	_ Renderer  = (*ScriptFormatter)(nil)
)
