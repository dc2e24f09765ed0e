package output

import (
	"fmt"

	"github.com/jeduden/lintcoach/internal/style"
)

// pluralize appends an "s" to word unless count is exactly one.
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// summaryLine renders the problem totals in the tally's summary color.
func summaryLine(st style.Style, t Tally) string {
	text := fmt.Sprintf("✖ %d %s (%d %s, %d %s)",
		t.Total(), pluralize("problem", t.Total()),
		t.Errors, pluralize("error", t.Errors),
		t.Warnings, pluralize("warning", t.Warnings))
	return st.Paint(text, t.SummaryColor, style.Bold) + "\n"
}

// fixableLine names the auto-fixable counts and the command that fixes
// them.
func fixableLine(st style.Style, t Tally, fixCommand string) string {
	text := fmt.Sprintf("  %d %s and %d %s potentially fixable by running `%s`.",
		t.FixableErrors, pluralize("error", t.FixableErrors),
		t.FixableWarnings, pluralize("warning", t.FixableWarnings),
		fixCommand)
	return st.Paint(text, t.SummaryColor, style.Bold) + "\n"
}
