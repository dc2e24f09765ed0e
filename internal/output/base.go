package output

import (
	"fmt"
	"strings"

	"github.com/jeduden/lintcoach/internal/lint"
	"github.com/jeduden/lintcoach/internal/style"
)

// StringFormatter is the plain Stylelint report: one table per file with a
// severity symbol, the location, the text and the rule.
type StringFormatter struct {
	Style style.Style
}

// Render returns the report, or "" when no file has warnings.
func (f *StringFormatter) Render(results []lint.FileResult) string {
	st := styleOrPlain(f.Style)

	var (
		b                strings.Builder
		errors, warnings int
	)
	for _, r := range results {
		if !r.HasMessages() {
			continue
		}
		errors += r.ErrorCount
		warnings += r.WarningCount

		b.WriteString("\n")
		b.WriteString(st.Paint(r.FilePath, style.Underline))
		b.WriteString("\n")

		locs := locationCells(st, r.Messages)
		rows := make([][]string, len(r.Messages))
		for i, m := range r.Messages {
			rows[i] = []string{
				"",
				severitySymbol(st, m),
				locs[i],
				stylelintText(m),
				st.Paint(m.RuleID, style.Dim),
			}
		}
		b.WriteString(table(rows, nil))
		b.WriteString("\n")
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return ""
	}

	total := errors + warnings
	color := style.Yellow
	if errors > 0 {
		color = style.Red
	}
	totals := fmt.Sprintf("%d %s (%d %s, %d %s)",
		total, pluralize("problem", total),
		errors, pluralize("error", errors),
		warnings, pluralize("warning", warnings))

	return "\n" + out + "\n\n" + st.Paint(totals, color, style.Bold) + "\n\n"
}

func severitySymbol(st style.Style, d lint.Diagnostic) string {
	if d.IsError() {
		return st.Paint("✖", style.Red)
	}
	return st.Paint("⚠", style.Yellow)
}

// stylelintText strips the trailing "(rule)" Stylelint appends to every
// message, then the trailing period.
func stylelintText(d lint.Diagnostic) string {
	text := d.Message
	if d.RuleID != "" {
		text = strings.ReplaceAll(text, "("+d.RuleID+")", "")
		text = strings.TrimRight(text, " ")
	}
	return cleanMessage(text)
}

var _ Renderer = (*StringFormatter)(nil)
