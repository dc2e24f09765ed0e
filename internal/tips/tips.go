// Package tips renders the "Tips to fix this" guidance appended to
// beginner-facing lint reports.
package tips

import (
	"strconv"
	"strings"

	"github.com/jeduden/lintcoach/internal/lint"
	"github.com/jeduden/lintcoach/internal/style"
)

// ParserErrorRule is the rule html-validate reports for markup it cannot
// parse.
const ParserErrorRule = "parser-error"

// Variant selects which block of guidance is rendered.
type Variant int

const (
	Generic Variant = iota
	MarkupSyntaxError
	MarkupOther
)

func (v Variant) String() string {
	switch v {
	case Generic:
		return "generic"
	case MarkupSyntaxError:
		return "markup-syntax-error"
	case MarkupOther:
		return "markup"
	}
	return "variant(" + strconv.Itoa(int(v)) + ")"
}

// Example holds the fields of one representative diagnostic quoted in the
// guidance.
type Example struct {
	Location string
	Line     string
	Message  string
	Rule     string
}

// ExampleOf builds the Example for d.
func ExampleOf(d lint.Diagnostic) Example {
	line := strconv.Itoa(d.Line)
	return Example{
		Location: line + ":" + strconv.Itoa(d.Column),
		Line:     line,
		Message:  d.Message,
		Rule:     d.RuleID,
	}
}

// Options carries the commands and links quoted in the guidance.
type Options struct {
	// Fixable adds the auto-fix step.
	Fixable     bool
	FixCommand  string
	TestCommand string
	DocsURL     string
}

// Select returns the variant for a report. Markup reports whose example
// is a parser error get the syntax checklist.
func Select(markup bool, ex Example) Variant {
	if !markup {
		return Generic
	}
	if ex.Rule == ParserErrorRule {
		return MarkupSyntaxError
	}
	return MarkupOther
}

// Render returns the heading followed by the body for v.
func Render(st style.Style, v Variant, ex Example, opts Options) string {
	w := &writer{st: st}
	w.line(st.Paint("\U0001F527 Tips to fix this:", style.Green, style.Bold))
	switch v {
	case MarkupSyntaxError:
		markupSyntax(w, ex)
	case MarkupOther:
		markupOther(w, ex, opts)
	default:
		generic(w, ex, opts)
	}
	return w.String()
}

func generic(w *writer, ex Example, opts Options) {
	if opts.Fixable {
		fixStep(w, opts)
	}
	walkthrough(w, ex, "This line is where the problem is.")
	lookup(w, ex, opts)
}

func markupOther(w *writer, ex Example, opts Options) {
	walkthrough(w, ex, "This line (or the line above it) is where the problem is.")
	w.line("   - Double check that you have ", w.em("closed your tags"), " in the right order.")
	lookup(w, ex, opts)
}

func markupSyntax(w *writer, ex Example) {
	w.line("   - This error is a ", w.dim(ParserErrorRule), ". It looks like nonsense, but it")
	w.line("     usually means that something is wrong with your ", w.em("syntax"), ".")
	w.line("   - First, ", w.em("find the file"), ". The file name and folder is underlined.")
	w.line("   - Then, look for the ", w.em("line and column number."), " It looks like this: ", w.dim(ex.Location))
	w.line("   - ", w.em("Find"), " the code in your file by using the first number: ", w.dim(ex.Line))
	w.line("     This line will be close to where the problem is. You can find")
	w.line("     line numbers to the left of your code in your text editor.")
	w.line("     Syntax errors are usually caused by ", w.em("the previous line of code."))
	w.line("   - Check very carefully for ", w.em("syntax errors"), " using these checklists.")
	w.line("     ☐ Does every ", w.em("opening tag"), w.dim(" (such as <p>)"), " have a matching")
	w.line("       ", w.em("closing tag"), w.dim(" (such as </p>)"), "?")
	w.line("     ☐ Do you have all of these characters in the ", w.em("right places"), "?")
	w.line("           ☐ Left bracket (starts a tag): ", w.dim("<"))
	w.line("           ☐ Right bracket (ends a tag): ", w.dim(">"))
	w.line("           ☐ Equals sign (sets an attribute value): ", w.dim("="))
	w.line("           ☐ Quotation marks (surrounds the attribute value): ", w.dim(`"`))
	w.line("     ☐ Do you see any ", w.em("odd highlighting"), " in your code editor?")
	w.line("       Check the line above it for possible issues.")
	w.line("   - If you still can't find the problem, ", w.em("try asking a classmate."))
	w.line()
	w.line("Here is a simple example of ", w.em("proper syntax"), " for a tag with an attribute")
	w.line("to help you double check. Look carefully for syntax differences in your")
	w.line("code, and note the placement of each of the characters in the line.")
	w.line()
	w.line(w.st.Paint("Code example: ", style.Bold), w.dim(`<a href="https://www.google.com">Google</a>`))
	w.line()
}

func fixStep(w *writer, opts Options) {
	w.line("   - Try running ", w.dim("`"+opts.FixCommand+"`"), " to resolve any errors")
	w.line("     that can be fixed automatically.")
}

func walkthrough(w *writer, ex Example, where string) {
	w.line("   - Look at each file ", w.em("one by one."), " The file name is underlined.")
	w.line("   - Start with the ", w.em("first"), " error in the file, and work your way down.")
	w.line("     Sometimes when you fix one error, it fixes other errors too.")
	w.line("   - Look for the ", w.em("line and column number."), " It looks like this: ", w.dim(ex.Location))
	w.line("   - ", w.em("Find"), " the code in your file by using the first number: ", w.dim(ex.Line))
	w.line("     ", where)
	w.line("   - ", w.em("Read"), " the message: ", w.dim(ex.Message))
	w.line("     Look to see ", w.em("how the message relates to your code."))
}

func lookup(w *writer, ex Example, opts Options) {
	w.line("   - If you are still unsure, try ", w.em("looking up"), " the rule name: ", w.dim(ex.Rule))
	w.line("     at ", w.st.Paint(opts.DocsURL, style.Cyan, style.Underline), ".")
	w.line("   - Rerun ", w.dim("`"+opts.TestCommand+"`"), " to see if you fixed the error.")
}

type writer struct {
	st style.Style
	b  strings.Builder
}

func (w *writer) line(parts ...string) {
	for _, p := range parts {
		w.b.WriteString(p)
	}
	w.b.WriteByte('\n')
}

func (w *writer) em(s string) string  { return w.st.Paint(s, style.Green, style.Bold) }
func (w *writer) dim(s string) string { return w.st.Paint(s, style.Dim) }

func (w *writer) String() string { return w.b.String() }
