package domain

import (
	"fmt"
	"testing"
)

func TestResultMergeAndSeverityQueries(t *testing.T) {
	var r Result
	r.Merge(Result{})
	if len(r.Violations) != 0 {
		t.Fatalf("merge of empty result added violations")
	}

	r.Merge(Result{Violations: []Violation{
		{Rule: "a", Severity: SeverityWarn},
		{Rule: "b", Severity: SeverityLog},
	}})
	r.Merge(Result{Violations: []Violation{{Rule: "c", Severity: SeverityBlock}}})

	if len(r.Violations) != 3 {
		t.Fatalf("violations = %d, want 3", len(r.Violations))
	}
	if !r.HasBlocking() {
		t.Fatalf("HasBlocking false despite block violation")
	}
	warnings := r.Warnings()
	if len(warnings) != 1 || warnings[0].Rule != "a" {
		t.Fatalf("Warnings = %+v", warnings)
	}
}

func TestIsNotFound(t *testing.T) {
	err := NotFoundError{Entity: EntityTeam, ID: "team_x"}
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound(direct) = false")
	}
	if !IsNotFound(fmt.Errorf("update: %w", err)) {
		t.Fatalf("IsNotFound(wrapped) = false")
	}
	if IsNotFound(fmt.Errorf("boom")) {
		t.Fatalf("IsNotFound(unrelated) = true")
	}
	if got := err.Error(); got != "team team_x not found" {
		t.Fatalf("Error() = %q", got)
	}
}
