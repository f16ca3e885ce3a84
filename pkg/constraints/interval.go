package constraints

import (
	"strconv"
	"strings"
)

// decodeInterval parses a "R<start>,<end>" token into its numeric
// bounds, per spec.md §4.1: the decoded payload is the substring after
// the first character, split on a comma.
func decodeInterval(token string) (start, end float64) {
	payload := token[1:]
	parts := strings.SplitN(payload, ",", 2)
	start, _ = strconv.ParseFloat(parts[0], 64)
	end, _ = strconv.ParseFloat(parts[1], 64)
	return start, end
}

// Schedule is a unary constraint on "R<start>,<end>" tokens requiring
// start >= Earliest and end <= Latest.
//
// Grounded on original_source/BinaryCSP.py's LazySchedule.
type Schedule[V comparable] struct {
	unary[V]
	Earliest float64
	Latest   float64
}

// NewSchedule builds a Schedule constraint on v with the given bounds.
func NewSchedule[V comparable](v V, earliest, latest float64) Schedule[V] {
	return Schedule[V]{unary: unary[V]{v: v}, Earliest: earliest, Latest: latest}
}

func (c Schedule[V]) Valid(x string) bool {
	start, end := decodeInterval(x)
	if start < c.Earliest {
		return false
	}
	if end > c.Latest {
		return false
	}
	return true
}

// NotOverlap is a binary constraint on "R<start>,<end>" tokens: two
// intervals sharing the same leading tag character must not overlap.
// Intervals with a different leading character never conflict.
//
// This preserves the original's stricter-than-half-open semantics
// exactly (Design Notes §9): a shared start, a shared end, or any
// interior overlap all count as a conflict.
//
// Grounded on original_source/BinaryCSP.py's NotOverlapConstraint.
type NotOverlap[V comparable] struct {
	binary[V]
}

// NewNotOverlap builds a NotOverlap constraint over (v1, v2).
func NewNotOverlap[V comparable](v1, v2 V) NotOverlap[V] {
	return NotOverlap[V]{binary: binary[V]{var1: v1, var2: v2}}
}

func (NotOverlap[V]) Valid(a, b string) bool {
	if a[0] != b[0] {
		return true
	}
	start1, end1 := decodeInterval(a)
	start2, end2 := decodeInterval(b)

	if start1 == start2 || (start1 > start2 && start1 < end2) {
		return false
	}
	if start2 > start1 && start2 < end1 {
		return false
	}
	if end1 == end2 || (end1 < end2 && end1 > start2) {
		return false
	}
	return true
}
