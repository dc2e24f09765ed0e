package lint

import (
	"encoding/json"
	"testing"
)

func TestSeverityConstants(t *testing.T) {
	if Error != "error" {
		t.Errorf("expected Error to be %q, got %q", "error", Error)
	}
	if Warning != "warning" {
		t.Errorf("expected Warning to be %q, got %q", "warning", Warning)
	}
}

func TestSeverity_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{`2`, Error},
		{`1`, Warning},
		{`0`, ""},
		{`"error"`, Error},
		{`"warning"`, Warning},
		{`"WARNING"`, Warning},
		{`null`, ""},
	}
	for _, tt := range tests {
		var s Severity
		if err := json.Unmarshal([]byte(tt.in), &s); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if s != tt.want {
			t.Errorf("unmarshal %s: got %q, want %q", tt.in, s, tt.want)
		}
	}
}

func TestSeverity_UnmarshalJSONRejectsObjects(t *testing.T) {
	var s Severity
	if err := json.Unmarshal([]byte(`{"level":2}`), &s); err == nil {
		t.Fatal("expected error for object severity")
	}
}

func TestDiagnostic_IsError(t *testing.T) {
	if !(Diagnostic{Severity: Error}).IsError() {
		t.Error("severity error should be an error")
	}
	if !(Diagnostic{Severity: Warning, Fatal: true}).IsError() {
		t.Error("fatal diagnostic should be an error")
	}
	if (Diagnostic{Severity: Warning}).IsError() {
		t.Error("warning should not be an error")
	}
}

func TestFileResult_HasMessages(t *testing.T) {
	if (FileResult{FilePath: "a.js"}).HasMessages() {
		t.Error("empty result should have no messages")
	}
	r := FileResult{FilePath: "a.js", Messages: []Diagnostic{{Line: 1}}}
	if !r.HasMessages() {
		t.Error("expected HasMessages to be true")
	}
}
