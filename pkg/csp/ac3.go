package csp

import (
	log "github.com/sirupsen/logrus"
)

// AC3 runs global arc-consistency preprocessing over every binary
// constraint before search begins. Prunings it makes are permanent
// structural simplifications of the problem, not part of any reversible
// inference record (spec.md §4.7). Returns false if the problem is
// unsatisfiable.
//
// Grounded on original_source/BinaryCSP.py's AC3, cross-checked against
// the worklist shape in other_examples/.../arc_consistency.go.
func AC3[V, D comparable](p *Problem[V, D], a *Assignment[V, D]) bool {
	var queue []arc[V, D]
	for _, v1 := range p.variables {
		for _, c := range p.BinaryConstraintsOn(v1) {
			v2 := c.Other(v1)
			queue = append(queue, arc[V, D]{source: v2, target: v1, constraint: c})
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		result := revise(a, cur.source, cur.target, cur.constraint)
		if !result.ok {
			log.WithFields(log.Fields{"source": cur.source, "target": cur.target}).
				Trace("AC-3: wipeout")
			return false
		}
		if len(result.pruned) == 0 {
			continue
		}

		shrunk := make(map[V]bool)
		for _, pr := range result.pruned {
			shrunk[pr.variable] = true
		}
		for t := range shrunk {
			for _, c := range p.BinaryConstraintsOn(t) {
				w := c.Other(t)
				if w == cur.source {
					continue
				}
				queue = append(queue, arc[V, D]{source: w, target: t, constraint: c})
			}
		}
	}

	return true
}
