package csp

import (
	"testing"

	"github.com/elireisman/binarycsp/pkg/constraints"
)

func TestSelectFirstUnassignedUsesIterationOrder(t *testing.T) {
	p := New([]string{"A", "B", "C"}, [][]string{{"1"}, {"1"}, {"1"}})
	a := newAssignment(p)
	a.Assign("A", "1")

	if got := selectVariable(FirstUnassigned, p, a); got != "B" {
		t.Fatalf("selectVariable(FirstUnassigned) = %q, want B", got)
	}
}

func TestSelectMRVPicksSmallestDomain(t *testing.T) {
	p := New([]string{"A", "B", "C"}, [][]string{{"1", "2", "3"}, {"1"}, {"1", "2"}})
	a := newAssignment(p)

	if got := selectVariable(MinimumRemainingValues, p, a); got != "B" {
		t.Fatalf("selectVariable(MRV) = %q, want B (domain size 1)", got)
	}
}

func TestSelectMRVBreaksTiesByDegree(t *testing.T) {
	// A and B both have domain size 2. B has higher degree (2 binary
	// constraints vs A's 1), so MRV must prefer B.
	p := New([]string{"A", "B", "C", "D"}, [][]string{{"1", "2"}, {"1", "2"}, {"1"}, {"1"}})
	p.AddBinary(constraints.NewNotEqual[string, string]("A", "C"))
	p.AddBinary(constraints.NewNotEqual[string, string]("B", "C"))
	p.AddBinary(constraints.NewNotEqual[string, string]("B", "D"))
	a := newAssignment(p)
	a.Assign("C", "1")
	a.Assign("D", "1")

	if got := selectVariable(MinimumRemainingValues, p, a); got != "B" {
		t.Fatalf("selectVariable(MRV) = %q, want B (higher degree breaks the tie)", got)
	}
}

func TestSelectMRVIgnoresAssignedVariables(t *testing.T) {
	p := New([]string{"A", "B"}, [][]string{{"1"}, {"1", "2"}})
	a := newAssignment(p)
	a.Assign("A", "1")

	if got := selectVariable(MinimumRemainingValues, p, a); got != "B" {
		t.Fatalf("selectVariable(MRV) = %q, want B", got)
	}
}
