package csp

// ValueHeuristic selects the order in which a variable's candidate
// values are tried.
type ValueHeuristic int

const (
	// NaturalOrder tries D[v] in its own iteration order.
	NaturalOrder ValueHeuristic = iota
	// LeastConstrainingValue tries values that rule out fewer
	// neighbor-domain values first.
	LeastConstrainingValue
)

func orderValues[V, D comparable](h ValueHeuristic, p *Problem[V, D], a *Assignment[V, D], v V) []D {
	switch h {
	case LeastConstrainingValue:
		return leastConstrainingValue(p, a, v)
	default:
		return append([]D(nil), a.Domain(v)...)
	}
}

// leastConstrainingValue orders D[v] by ascending conflict count, using
// the source's insertion rule as the tie-break: a new value is placed
// at the first index whose stored conflict count is strictly greater
// than the new value's, i.e. after all equal-or-smaller-conflict values.
//
// Grounded on original_source/BinaryCSP.py's
// leastConstrainingValuesHeuristic.
func leastConstrainingValue[V, D comparable](p *Problem[V, D], a *Assignment[V, D], v V) []D {
	constraints := p.BinaryConstraintsOn(v)

	var values []D
	var conflicts []int

	for _, x := range a.Domain(v) {
		count := 0
		for _, c := range constraints {
			other := c.Other(v)
			for _, y := range a.Domain(other) {
				if !c.Valid(x, y) {
					count++
				}
			}
		}

		idx := len(values)
		for i, existing := range conflicts {
			if count < existing {
				idx = i
				break
			}
		}
		values = append(values, x)
		copy(values[idx+1:], values[idx:])
		values[idx] = x

		conflicts = append(conflicts, 0)
		copy(conflicts[idx+1:], conflicts[idx:])
		conflicts[idx] = count
	}
	return values
}
