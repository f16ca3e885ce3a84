package constraints

// Exclude is satisfied by any value other than Bad.
//
// Grounded on original_source/BinaryCSP.py's BadValueConstraint.
type Exclude[V, D comparable] struct {
	unary[V]
	Bad D
}

// NewExclude builds an Exclude constraint on v, rejecting bad.
func NewExclude[V, D comparable](v V, bad D) Exclude[V, D] {
	return Exclude[V, D]{unary: unary[V]{v: v}, Bad: bad}
}

func (c Exclude[V, D]) Valid(x D) bool {
	return x != c.Bad
}

// Pin is satisfied only by Good.
//
// Grounded on original_source/BinaryCSP.py's GoodValueConstraint.
type Pin[V, D comparable] struct {
	unary[V]
	Good D
}

// NewPin builds a Pin constraint on v, requiring good.
func NewPin[V, D comparable](v V, good D) Pin[V, D] {
	return Pin[V, D]{unary: unary[V]{v: v}, Good: good}
}

func (c Pin[V, D]) Valid(x D) bool {
	return x == c.Good
}
