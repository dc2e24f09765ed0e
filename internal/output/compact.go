package output

import (
	"fmt"
	"io"

	"github.com/jeduden/lintcoach/internal/lint"
	"github.com/jeduden/lintcoach/internal/style"
)

// CompactFormatter outputs one line per diagnostic. With a coloring style
// the location is printed in cyan and the rule ID in yellow.
type CompactFormatter struct {
	Style style.Style
}

// Format writes each diagnostic in the pattern:
// file:line:col rule message
func (f *CompactFormatter) Format(w io.Writer, results []lint.FileResult) error {
	st := styleOrPlain(f.Style)
	for _, r := range results {
		for _, d := range r.Messages {
			loc := fmt.Sprintf("%s:%d:%d", r.FilePath, d.Line, d.Column)
			rule := d.RuleID
			if rule == "" {
				rule = "-"
			}
			_, err := fmt.Fprintf(w, "%s %s %s\n",
				st.Paint(loc, style.Cyan), st.Paint(rule, style.Yellow), d.Message)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

var _ Formatter = (*CompactFormatter)(nil)
