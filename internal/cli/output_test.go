package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andywolf/skillmatrix/internal/matrix"
)

func TestAvailabilityLabel(t *testing.T) {
	tests := []struct {
		name  string
		avail matrix.Availability
		want  string
	}{
		{"selectable", matrix.Availability{Selectable: true}, ""},
		{"disabled", matrix.Availability{Disabled: true, DisabledReason: "pick one framework"}, "disabled: pick one framework"},
		{"disabled without reason", matrix.Availability{Disabled: true}, "disabled"},
		{"discouraged", matrix.Availability{Selectable: true, Discouraged: true, DiscouragedReason: "one store"}, "discouraged: one store"},
		{"recommended", matrix.Availability{Selectable: true, Recommended: true, RecommendedReason: "pairs well"}, "recommended: pairs well"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := availabilityLabel(tt.avail); got != tt.want {
				t.Errorf("availabilityLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	report := dependentsReport{Skill: "a", Dependents: []string{"b", "c"}}

	if err := writeYAML(&buf, report); err != nil {
		t.Fatalf("writeYAML() error: %v", err)
	}

	want := "skill: a\ndependents:\n  - b\n  - c\n"
	if buf.String() != want {
		t.Errorf("writeYAML() = %q, want %q", buf.String(), want)
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	printIssues(&buf, "Errors", []matrix.Issue{
		{Kind: matrix.IssueConflict, Message: "React conflicts with Vue: pick one framework"},
	})

	got := buf.String()
	if !strings.HasPrefix(got, "Errors:\n") {
		t.Errorf("printIssues() should start with the title, got %q", got)
	}
	if !strings.Contains(got, "[conflict] React conflicts with Vue") {
		t.Errorf("printIssues() missing issue line, got %q", got)
	}

	buf.Reset()
	printIssues(&buf, "Warnings", nil)
	if buf.Len() != 0 {
		t.Errorf("printIssues() with no issues should print nothing, got %q", buf.String())
	}
}
