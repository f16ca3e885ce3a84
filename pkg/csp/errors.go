package csp

import "github.com/pkg/errors"

// ErrLengthMismatch is returned by NewValidated when the variable and
// domain lists it was given don't line up.
var ErrLengthMismatch = errors.New("csp: variables and domains must be the same length")

// NewValidated is the recoverable-error counterpart to New, for callers
// building a Problem from untrusted input (see internal/problemfile)
// where a panic would be inappropriate. Constraint/variable mismatches
// discovered later, in AddUnary/AddBinary, still panic: those are
// reachable only through the caller's own wiring code, not through
// external data.
func NewValidated[V, D comparable](variables []V, domains [][]D) (*Problem[V, D], error) {
	if len(variables) != len(domains) {
		return nil, errors.Wrapf(ErrLengthMismatch, "got %d variables, %d domains", len(variables), len(domains))
	}
	return New(variables, domains), nil
}
