package lint

// FileResult holds the diagnostics one linter run produced for one file.
type FileResult struct {
	FilePath string
	// Messages are kept in the order the linter reported them.
	Messages []Diagnostic

	ErrorCount          int
	WarningCount        int
	FixableErrorCount   int
	FixableWarningCount int

	// Errored is set by Stylelint when any diagnostic in the file is fatal.
	Errored bool
}

// HasMessages returns true if the result carries at least one diagnostic.
func (r FileResult) HasMessages() bool {
	return len(r.Messages) > 0
}
