package lint

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity indicates the severity level of a diagnostic.
type Severity string

// Severity levels.
const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

// UnmarshalJSON accepts both the numeric ESLint form (2 = error,
// 1 = warning) and the string form used by Stylelint.
func (s *Severity) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		switch n {
		case 2:
			*s = Error
		case 1:
			*s = Warning
		default:
			*s = ""
		}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("severity must be a number or a string: %w", err)
	}
	switch strings.ToLower(str) {
	case "error":
		*s = Error
	case "warning", "warn":
		*s = Warning
	default:
		*s = ""
	}
	return nil
}

// Diagnostic represents a single lint finding inside a FileResult.
// Line and Column are 1-based; 0 means the linter did not report one.
type Diagnostic struct {
	Line     int
	Column   int
	RuleID   string
	Severity Severity
	Fatal    bool
	Fixable  bool
	Message  string
}

// IsError reports whether the diagnostic counts as an error rather than
// a warning.
func (d Diagnostic) IsError() bool {
	return d.Fatal || d.Severity == Error
}
