package csp

import (
	"testing"

	"github.com/elireisman/binarycsp/pkg/constraints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardCheckPrunesInconsistentNeighborValues(t *testing.T) {
	p := New([]string{"A", "B"}, [][]string{{"1", "2"}, {"1", "2", "3"}})
	p.AddBinary(constraints.NewNotEqual[string, string]("A", "B"))
	a := newAssignment(p)
	a.Assign("A", "1")

	result := forwardCheck(p, a, "A", "1")
	require.True(t, result.ok)
	assert.ElementsMatch(t, []string{"2", "3"}, a.Domain("B"))
}

func TestForwardCheckSignalsWipeout(t *testing.T) {
	p := New([]string{"A", "B"}, [][]string{{"1", "2"}, {"1"}})
	p.AddBinary(constraints.NewNotEqual[string, string]("A", "B"))
	a := newAssignment(p)
	a.Assign("A", "1")

	result := forwardCheck(p, a, "A", "1")
	assert.False(t, result.ok)
	// Failure must leave domains untouched.
	assert.Equal(t, []string{"1"}, a.Domain("B"))
}

func TestForwardCheckIgnoresAssignedNeighbor(t *testing.T) {
	p := New([]string{"A", "B"}, [][]string{{"1", "2"}, {"1", "2"}})
	p.AddBinary(constraints.NewNotEqual[string, string]("A", "B"))
	a := newAssignment(p)
	a.Assign("B", "2")
	a.Assign("A", "1")

	result := forwardCheck(p, a, "A", "1")
	require.True(t, result.ok)
	assert.Empty(t, result.pruned)
}

func TestReviseRemovesUnsupportedValues(t *testing.T) {
	p := New([]string{"A", "B"}, [][]string{{"1"}, {"1", "2"}})
	c := constraints.NewNotEqual[string, string]("A", "B")
	a := newAssignment(p)

	result := revise(a, "A", "B", c)
	require.True(t, result.ok)
	assert.ElementsMatch(t, []string{"2"}, a.Domain("B"))
}

func TestReviseSignalsWipeoutWithoutMutating(t *testing.T) {
	p := New([]string{"A", "B"}, [][]string{{"1"}, {"1"}})
	c := constraints.NewNotEqual[string, string]("A", "B")
	a := newAssignment(p)

	result := revise(a, "A", "B", c)
	assert.False(t, result.ok)
	assert.Equal(t, []string{"1"}, a.Domain("B"))
}

func TestMACPrunesAtLeastAsMuchAsForwardCheck(t *testing.T) {
	// Chain X-Y-Z with disequality constraints. Fixing X=1 with domains
	// {1,2} everywhere leaves FC pruning only Y (X's direct neighbor);
	// MAC additionally propagates the consequence onto Z once Y is
	// forced to 2.
	build := func() (*Problem[string, string], *Assignment[string, string]) {
		p := New([]string{"X", "Y", "Z"}, [][]string{{"1", "2"}, {"1", "2"}, {"1", "2"}})
		p.AddBinary(constraints.NewNotEqual[string, string]("X", "Y"))
		p.AddBinary(constraints.NewNotEqual[string, string]("Y", "Z"))
		a := newAssignment(p)
		return p, a
	}

	pFC, aFC := build()
	fc := forwardCheck(pFC, aFC, "X", "1")
	require.True(t, fc.ok)

	pMAC, aMAC := build()
	mac := maintainArcConsistency(pMAC, aMAC, "X", "1")
	require.True(t, mac.ok)

	assert.Less(t, aMAC.DomainSize("Z"), aFC.DomainSize("Z"))
}

func TestMACRollsBackOnWipeout(t *testing.T) {
	// X and Y share domain {1}; forcing X=1 via MAC must fail and leave
	// every domain exactly as it started.
	p := New([]string{"X", "Y"}, [][]string{{"1"}, {"1"}})
	p.AddBinary(constraints.NewNotEqual[string, string]("X", "Y"))
	a := newAssignment(p)

	before := append([]string(nil), a.Domain("Y")...)
	result := maintainArcConsistency(p, a, "X", "1")
	assert.False(t, result.ok)
	assert.Equal(t, before, a.Domain("Y"))
}

func TestNoInferenceReturnsEmptySuccess(t *testing.T) {
	p := New([]string{"A"}, [][]string{{"1"}})
	a := newAssignment(p)

	result := infer(NoInference, p, a, "A", "1")
	require.True(t, result.ok)
	assert.Empty(t, result.pruned)
}
