package csp

// Consistent reports whether assigning x to v would violate no binary
// constraint against an already-assigned neighbor. Unary constraints are
// not rechecked here — they are enforced once during preprocessing (see
// preprocess.go) and never violated thereafter.
//
// Grounded on original_source/BinaryCSP.py's consistent().
func Consistent[V, D comparable](a *Assignment[V, D], p *Problem[V, D], v V, x D) bool {
	for _, c := range p.BinaryConstraintsOn(v) {
		other := c.Other(v)
		otherVal, ok := a.Value(other)
		if !ok {
			continue
		}
		if !c.Valid(x, otherVal) {
			return false
		}
	}
	return true
}
