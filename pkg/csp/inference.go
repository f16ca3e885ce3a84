package csp

import (
	log "github.com/sirupsen/logrus"
)

// InferenceStrategy selects how the driver prunes domains after each
// tentative assignment.
type InferenceStrategy int

const (
	// NoInference performs plain backtracking with no pruning.
	NoInference InferenceStrategy = iota
	// ForwardCheck prunes values disallowed by the just-assigned
	// variable's binary constraints against unassigned neighbors.
	ForwardCheck
	// MaintainArcConsistency propagates arc consistency to a fixpoint
	// after the forward-check pass.
	MaintainArcConsistency
)

func infer[V, D comparable](strategy InferenceStrategy, p *Problem[V, D], a *Assignment[V, D], v V, x D) inferenceResult[V, D] {
	switch strategy {
	case ForwardCheck:
		return forwardCheck(p, a, v, x)
	case MaintainArcConsistency:
		return maintainArcConsistency(p, a, v, x)
	default:
		return succeededInference[V, D](nil)
	}
}

// forwardCheck implements spec.md §4.5.1. For every binary constraint
// affecting v whose other endpoint is unassigned, remove any value of
// the neighbor's domain inconsistent with (v, x). The wipeout check
// uses the pre-removal domain size at the moment a conflicting value is
// found (Design Notes §9), so it can fire before all conflicts in the
// pass have been enumerated.
//
// Grounded on original_source/BinaryCSP.py's forwardChecking.
func forwardCheck[V, D comparable](p *Problem[V, D], a *Assignment[V, D], v V, x D) inferenceResult[V, D] {
	var marked []prune[V, D]

	for _, c := range p.BinaryConstraintsOn(v) {
		other := c.Other(v)
		if a.IsAssigned(other) {
			continue
		}
		for _, y := range a.Domain(other) {
			if c.Valid(y, x) {
				continue
			}
			if a.DomainSize(other) <= 1 {
				log.WithFields(log.Fields{"var": v, "val": x, "other": other}).
					Trace("forward check: wipeout")
				return failedInference[V, D]()
			}
			marked = append(marked, prune[V, D]{variable: other, value: y})
		}
	}

	for _, m := range marked {
		a.pruneOne(m.variable, m.value)
	}
	return succeededInference(marked)
}

// arc is a worklist entry meaning "revise D[target] against D[source]
// under constraint".
type arc[V, D comparable] struct {
	source     V
	target     V
	constraint BinaryConstraint[V, D]
}

// revise implements spec.md §4.5.3: remove from D[t] every value
// unsupported by any value currently in D[s]. Returns failure without
// mutating if doing so would wipe out D[t].
//
// Grounded on original_source/BinaryCSP.py's revise.
func revise[V, D comparable](a *Assignment[V, D], s, t V, c BinaryConstraint[V, D]) inferenceResult[V, D] {
	var unsupported []D
	for _, tVal := range a.Domain(t) {
		supported := false
		for _, sVal := range a.Domain(s) {
			if c.Valid(sVal, tVal) {
				supported = true
				break
			}
		}
		if !supported {
			unsupported = append(unsupported, tVal)
		}
	}

	if len(unsupported) >= a.DomainSize(t) {
		return failedInference[V, D]()
	}

	pruned := make([]prune[V, D], 0, len(unsupported))
	for _, y := range unsupported {
		a.pruneOne(t, y)
		pruned = append(pruned, prune[V, D]{variable: t, value: y})
	}
	return succeededInference(pruned)
}

// maintainArcConsistency implements spec.md §4.5.2: seed a worklist from
// the forward-check pass against v, then propagate to a fixpoint.
//
// Grounded on original_source/BinaryCSP.py's maintainArcConsistency,
// cross-checked against the worklist shape in
// other_examples/.../arc_consistency.go (arc struct, FIFO queue of
// (source,target,constraint)).
func maintainArcConsistency[V, D comparable](p *Problem[V, D], a *Assignment[V, D], v V, x D) inferenceResult[V, D] {
	fc := forwardCheck(p, a, v, x)
	if !fc.ok {
		return failedInference[V, D]()
	}

	cumulative := append([]prune[V, D](nil), fc.pruned...)

	seen := make(map[V]bool)
	var queue []arc[V, D]
	for _, pr := range fc.pruned {
		if seen[pr.variable] {
			continue
		}
		seen[pr.variable] = true
		for _, c := range p.BinaryConstraintsOn(v) {
			if c.Other(v) == pr.variable {
				queue = append(queue, arc[V, D]{source: v, target: pr.variable, constraint: c})
			}
		}
	}

	rollback := func() {
		for i := len(cumulative) - 1; i >= 0; i-- {
			a.restoreOne(cumulative[i].variable, cumulative[i].value)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.source == v {
			// Marker step: enqueue t's outgoing arcs, no revision here.
			for _, c := range p.BinaryConstraintsOn(cur.target) {
				w := c.Other(cur.target)
				if w == cur.source || a.IsAssigned(w) {
					continue
				}
				queue = append(queue, arc[V, D]{source: cur.target, target: w, constraint: c})
			}
			continue
		}

		result := revise(a, cur.source, cur.target, cur.constraint)
		if !result.ok {
			log.WithFields(log.Fields{"var": v, "val": x, "arc": cur.target}).
				Trace("MAC: wipeout, rolling back")
			rollback()
			return failedInference[V, D]()
		}
		if len(result.pruned) == 0 {
			continue
		}

		cumulative = append(cumulative, result.pruned...)
		shrunk := make(map[V]bool)
		for _, pr := range result.pruned {
			shrunk[pr.variable] = true
		}
		for t := range shrunk {
			for _, c := range p.BinaryConstraintsOn(t) {
				w := c.Other(t)
				if w == cur.source || a.IsAssigned(w) {
					continue
				}
				queue = append(queue, arc[V, D]{source: w, target: t, constraint: c})
			}
		}
	}

	return succeededInference(cumulative)
}
