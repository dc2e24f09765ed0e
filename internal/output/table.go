package output

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/jeduden/lintcoach/internal/lint"
	"github.com/jeduden/lintcoach/internal/style"
)

const cellSep = "  "

// table lays rows out in columns sized by visible width. Columns listed in
// right are right-aligned; all others are left-aligned. Trailing
// whitespace is trimmed from every line.
func table(rows [][]string, right map[int]bool) string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := style.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteString(cellSep)
			}
			pad := strings.Repeat(" ", widths[i]-style.Width(cell))
			if right[i] {
				b.WriteString(pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(pad)
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " \t"))
	}
	return strings.Join(lines, "\n")
}

// locationCells renders line:column tokens for msgs. The line number is
// right-aligned and the column left-aligned so the colons line up; only the
// digits are dimmed.
func locationCells(st style.Style, msgs []lint.Diagnostic) []string {
	lineW, colW := 0, 0
	for _, m := range msgs {
		lineW = max(lineW, len(strconv.Itoa(m.Line)))
		colW = max(colW, len(strconv.Itoa(m.Column)))
	}

	cells := make([]string, len(msgs))
	for i, m := range msgs {
		line, col := strconv.Itoa(m.Line), strconv.Itoa(m.Column)
		cells[i] = strings.Repeat(" ", lineW-len(line)) +
			st.Paint(line+":"+col, style.Dim) +
			strings.Repeat(" ", colW-len(col))
	}
	return cells
}

// cleanMessage drops a trailing period unless whitespace precedes it.
func cleanMessage(msg string) string {
	if !strings.HasSuffix(msg, ".") {
		return msg
	}
	body := []rune(strings.TrimSuffix(msg, "."))
	if len(body) == 0 || unicode.IsSpace(body[len(body)-1]) {
		return msg
	}
	return string(body)
}

// severityLabel returns the colored label for d.
func severityLabel(st style.Style, d lint.Diagnostic) string {
	if d.IsError() {
		return st.Paint("error", style.Red)
	}
	return st.Paint("warning", style.Yellow)
}

// writeFileTables renders the underlined header and the stylish table for
// every result that has diagnostics.
func writeFileTables(b *strings.Builder, st style.Style, results []lint.FileResult) {
	for _, r := range results {
		if !r.HasMessages() {
			continue
		}
		b.WriteString(st.Paint(r.FilePath, style.Underline))
		b.WriteString("\n")

		locs := locationCells(st, r.Messages)
		rows := make([][]string, len(r.Messages))
		for i, m := range r.Messages {
			rows[i] = []string{
				"",
				locs[i],
				severityLabel(st, m),
				cleanMessage(m.Message),
				st.Paint(m.RuleID, style.Dim),
			}
		}
		b.WriteString(table(rows, nil))
		b.WriteString("\n\n")
	}
}
