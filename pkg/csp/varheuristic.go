package csp

// VariableHeuristic selects which unassigned variable the driver should
// branch on next. The selector is never called once every variable is
// assigned — the driver's completeness check fires first.
type VariableHeuristic int

const (
	// FirstUnassigned returns the first unassigned variable in the
	// problem's iteration order.
	FirstUnassigned VariableHeuristic = iota
	// MinimumRemainingValues picks the unassigned variable with the
	// smallest current domain, breaking ties by highest degree and
	// then by iteration order.
	MinimumRemainingValues
)

func selectVariable[V, D comparable](h VariableHeuristic, p *Problem[V, D], a *Assignment[V, D]) V {
	switch h {
	case MinimumRemainingValues:
		return selectMRV(p, a)
	default:
		return selectFirstUnassigned(p, a)
	}
}

// Grounded on original_source/BinaryCSP.py's chooseFirstVariable.
func selectFirstUnassigned[V, D comparable](p *Problem[V, D], a *Assignment[V, D]) V {
	for _, v := range p.variables {
		if !a.IsAssigned(v) {
			return v
		}
	}
	var zero V
	return zero
}

// Grounded on original_source/BinaryCSP.py's minimumRemainingValuesHeuristic
// and calculateDegree.
func selectMRV[V, D comparable](p *Problem[V, D], a *Assignment[V, D]) V {
	var best V
	found := false
	bestSize := 0
	bestDegree := 0

	for _, v := range p.variables {
		if a.IsAssigned(v) {
			continue
		}
		size := a.DomainSize(v)
		degree := p.degree(v)

		switch {
		case !found:
			best, bestSize, bestDegree, found = v, size, degree, true
		case size < bestSize:
			best, bestSize, bestDegree = v, size, degree
		case size == bestSize && degree > bestDegree:
			best, bestSize, bestDegree = v, size, degree
		}
	}
	return best
}
