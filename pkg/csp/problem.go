package csp

import (
	"fmt"
)

// Problem is the immutable description of a constraint-satisfaction
// instance: a fixed set of variables, each with an original domain, and
// two ordered constraint sequences.
//
// Generalizes the teacher's Problem[V, D] (pkg/csp/csp.go in
// generic-csp-go), which carried a single constraint list keyed by
// variable, into the unary/binary split spec.md §3 requires.
type Problem[V, D comparable] struct {
	variables []V
	domains   map[V][]D
	unary     []UnaryConstraint[V, D]
	binary    []BinaryConstraint[V, D]
}

// New constructs a Problem from parallel variable/domain lists. variables
// and domains must have the same length and matching order; New panics
// otherwise, since a length mismatch can only be a programmer error (see
// spec.md §7).
func New[V, D comparable](variables []V, domains [][]D) *Problem[V, D] {
	if len(variables) != len(domains) {
		panic(fmt.Sprintf("csp: %d variables but %d domains", len(variables), len(domains)))
	}

	p := &Problem[V, D]{
		variables: append([]V(nil), variables...),
		domains:   make(map[V][]D, len(variables)),
	}
	for i, v := range variables {
		p.domains[v] = append([]D(nil), domains[i]...)
	}
	return p
}

// Variables returns the problem's variables in construction order.
func (p *Problem[V, D]) Variables() []V {
	return p.variables
}

// Domain returns the original (immutable) domain of v.
func (p *Problem[V, D]) Domain(v V) []D {
	return p.domains[v]
}

// AddUnary attaches a unary constraint to the problem. Panics if the
// constraint does not affect any known variable — an out-of-contract
// reference per spec.md §7.
func (p *Problem[V, D]) AddUnary(c UnaryConstraint[V, D]) {
	matched := false
	for _, v := range p.variables {
		if c.Affects(v) {
			matched = true
			break
		}
	}
	if !matched {
		panic("csp: unary constraint does not affect any known variable")
	}
	p.unary = append(p.unary, c)
}

// AddBinary attaches a binary constraint to the problem. Panics if
// neither endpoint is a known variable.
func (p *Problem[V, D]) AddBinary(c BinaryConstraint[V, D]) {
	matched := false
	for _, v := range p.variables {
		if c.Affects(v) {
			matched = true
			break
		}
	}
	if !matched {
		panic("csp: binary constraint does not affect any known variable")
	}
	p.binary = append(p.binary, c)
}

// UnaryConstraintsOn returns every unary constraint affecting v, in
// insertion order.
func (p *Problem[V, D]) UnaryConstraintsOn(v V) []UnaryConstraint[V, D] {
	var out []UnaryConstraint[V, D]
	for _, c := range p.unary {
		if c.Affects(v) {
			out = append(out, c)
		}
	}
	return out
}

// BinaryConstraintsOn returns every binary constraint affecting v, in
// insertion order.
func (p *Problem[V, D]) BinaryConstraintsOn(v V) []BinaryConstraint[V, D] {
	var out []BinaryConstraint[V, D]
	for _, c := range p.binary {
		if c.Affects(v) {
			out = append(out, c)
		}
	}
	return out
}

// degree is the number of binary constraint occurrences mentioning v,
// counted once per constraint regardless of whether the other endpoint
// is assigned (Design Notes §9 "degree computation").
func (p *Problem[V, D]) degree(v V) int {
	count := 0
	for _, c := range p.binary {
		if c.Affects(v) {
			count++
		}
	}
	return count
}
