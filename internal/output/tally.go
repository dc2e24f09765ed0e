package output

import (
	"github.com/jeduden/lintcoach/internal/lint"
	"github.com/jeduden/lintcoach/internal/style"
	"github.com/jeduden/lintcoach/internal/tips"
)

// Tally is the state folded over a result set before anything is rendered.
type Tally struct {
	Errors          int
	Warnings        int
	FixableErrors   int
	FixableWarnings int

	// Example is the first diagnostic of the first result that has any.
	Example    tips.Example
	HasExample bool

	// SummaryColor turns red as soon as one diagnostic is an error.
	SummaryColor style.Attr
}

// Total returns errors plus warnings.
func (t Tally) Total() int { return t.Errors + t.Warnings }

// Fixable returns the number of auto-fixable diagnostics.
func (t Tally) Fixable() int { return t.FixableErrors + t.FixableWarnings }

// Fold aggregates results in a single pass. Results without diagnostics
// are skipped entirely.
func Fold(results []lint.FileResult) Tally {
	t := Tally{SummaryColor: style.Yellow}
	for _, r := range results {
		if !r.HasMessages() {
			continue
		}
		if !t.HasExample {
			t.Example = tips.ExampleOf(r.Messages[0])
			t.HasExample = true
		}
		t.Errors += r.ErrorCount
		t.Warnings += r.WarningCount
		t.FixableErrors += r.FixableErrorCount
		t.FixableWarnings += r.FixableWarningCount
		for _, d := range r.Messages {
			if d.IsError() {
				t.SummaryColor = style.Red
				break
			}
		}
	}
	return t
}

// ExampleFromErrored returns the first warning of the first errored
// result. Scanning stops at the first errored result even when it has no
// warnings.
func ExampleFromErrored(results []lint.FileResult) (tips.Example, bool) {
	for _, r := range results {
		if !r.Errored {
			continue
		}
		if !r.HasMessages() {
			return tips.Example{}, false
		}
		return tips.ExampleOf(r.Messages[0]), true
	}
	return tips.Example{}, false
}
