// Package constraints implements the concrete unary/binary constraint
// kinds spec.md describes as external collaborators: the solver
// (pkg/csp) only ever depends on the UnaryConstraint/BinaryConstraint
// interfaces, never on this package.
package constraints

// binary is the shared (var1, var2) bookkeeping every BinaryConstraint
// implementation here embeds, mirroring
// original_source/BinaryCSP.py's BinaryConstraint base class.
type binary[V comparable] struct {
	var1, var2 V
}

func (b binary[V]) Affects(v V) bool {
	return v == b.var1 || v == b.var2
}

func (b binary[V]) Other(v V) V {
	if v == b.var1 {
		return b.var2
	}
	return b.var1
}

// unary is the shared single-variable bookkeeping every UnaryConstraint
// implementation here embeds.
type unary[V comparable] struct {
	v V
}

func (u unary[V]) Affects(v V) bool {
	return v == u.v
}

// Equal is satisfied when both endpoints hold the same value.
type Equal[V, D comparable] struct {
	binary[V]
}

// NewEqual builds an Equal constraint over (v1, v2).
func NewEqual[V, D comparable](v1, v2 V) Equal[V, D] {
	return Equal[V, D]{binary: binary[V]{var1: v1, var2: v2}}
}

func (Equal[V, D]) Valid(a, b D) bool {
	return a == b
}

// NotEqual is satisfied when both endpoints hold different values.
//
// Grounded on original_source/BinaryCSP.py's NotEqualConstraint.
type NotEqual[V, D comparable] struct {
	binary[V]
}

// NewNotEqual builds a NotEqual constraint over (v1, v2).
func NewNotEqual[V, D comparable](v1, v2 V) NotEqual[V, D] {
	return NotEqual[V, D]{binary: binary[V]{var1: v1, var2: v2}}
}

func (NotEqual[V, D]) Valid(a, b D) bool {
	return a != b
}
