package csp

import log "github.com/sirupsen/logrus"

// eliminateUnaryConstraints removes, for every variable and every unary
// constraint affecting it, any domain value the constraint rejects.
// These removals are permanent: they happen once, before search, and are
// never part of a reversible inference record. Returns false if any
// domain becomes empty, meaning the whole problem is unsatisfiable.
//
// Grounded on original_source/BinaryCSP.py's eliminateUnaryConstraints.
// Idempotent: a second run finds nothing left to remove.
func eliminateUnaryConstraints[V, D comparable](p *Problem[V, D], a *Assignment[V, D]) bool {
	for _, v := range p.variables {
		constraints := p.UnaryConstraintsOn(v)
		if len(constraints) == 0 {
			continue
		}
		var rejected []D
		for _, x := range a.Domain(v) {
			for _, c := range constraints {
				if !c.Valid(x) {
					rejected = append(rejected, x)
					break
				}
			}
		}
		for _, x := range rejected {
			a.pruneOne(v, x)
		}
		if a.DomainSize(v) == 0 {
			log.WithField("var", v).Trace("unary preprocessing: domain emptied")
			return false
		}
	}
	return true
}
