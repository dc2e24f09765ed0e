package lint

import (
	"encoding/json"
	"fmt"
	"io"
)

// eslintResult mirrors one element of `eslint --format json`. html-validate's
// json formatter emits the same shape without the fixable counters.
type eslintResult struct {
	FilePath            string          `json:"filePath"`
	Messages            []eslintMessage `json:"messages"`
	ErrorCount          int             `json:"errorCount"`
	WarningCount        int             `json:"warningCount"`
	FixableErrorCount   int             `json:"fixableErrorCount"`
	FixableWarningCount int             `json:"fixableWarningCount"`
}

type eslintMessage struct {
	RuleID   string          `json:"ruleId"`
	Severity Severity        `json:"severity"`
	Fatal    bool            `json:"fatal"`
	Message  string          `json:"message"`
	Line     int             `json:"line"`
	Column   int             `json:"column"`
	Fix      json.RawMessage `json:"fix,omitempty"`
}

// stylelintResult mirrors one element of `stylelint --formatter json`.
type stylelintResult struct {
	Source   string             `json:"source"`
	Errored  bool               `json:"errored"`
	Warnings []stylelintWarning `json:"warnings"`
}

type stylelintWarning struct {
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

// DecodeESLint reads an ESLint JSON report.
func DecodeESLint(r io.Reader) ([]FileResult, error) {
	var raw []eslintResult
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding eslint report: %w", err)
	}
	return fromESLint(raw), nil
}

// DecodeHTMLValidate reads an html-validate JSON report.
func DecodeHTMLValidate(r io.Reader) ([]FileResult, error) {
	var raw []eslintResult
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding html-validate report: %w", err)
	}
	return fromESLint(raw), nil
}

// DecodeStylelint reads a Stylelint JSON report. Stylelint does not
// report per-file counters, so they are computed from the warnings.
func DecodeStylelint(r io.Reader) ([]FileResult, error) {
	var raw []stylelintResult
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding stylelint report: %w", err)
	}

	results := make([]FileResult, 0, len(raw))
	for _, sr := range raw {
		fr := FileResult{
			FilePath: sr.Source,
			Errored:  sr.Errored,
			Messages: make([]Diagnostic, 0, len(sr.Warnings)),
		}
		for _, w := range sr.Warnings {
			d := Diagnostic{
				Line:     w.Line,
				Column:   w.Column,
				RuleID:   w.Rule,
				Severity: w.Severity,
				Message:  w.Text,
			}
			if d.IsError() {
				fr.ErrorCount++
			} else {
				fr.WarningCount++
			}
			fr.Messages = append(fr.Messages, d)
		}
		results = append(results, fr)
	}
	return results, nil
}

func fromESLint(raw []eslintResult) []FileResult {
	results := make([]FileResult, 0, len(raw))
	for _, er := range raw {
		fr := FileResult{
			FilePath:            er.FilePath,
			ErrorCount:          er.ErrorCount,
			WarningCount:        er.WarningCount,
			FixableErrorCount:   er.FixableErrorCount,
			FixableWarningCount: er.FixableWarningCount,
			Messages:            make([]Diagnostic, 0, len(er.Messages)),
		}
		for _, m := range er.Messages {
			fr.Messages = append(fr.Messages, Diagnostic{
				Line:     m.Line,
				Column:   m.Column,
				RuleID:   m.RuleID,
				Severity: m.Severity,
				Fatal:    m.Fatal,
				Fixable:  len(m.Fix) > 0 && string(m.Fix) != "null",
				Message:  m.Message,
			})
		}
		results = append(results, fr)
	}
	return results
}
