package csp

import log "github.com/sirupsen/logrus"

// Config selects the strategies a solve call uses. The zero value
// (FirstUnassigned, NaturalOrder, NoInference, UseAC3: false) is plain
// chronological backtracking with no propagation.
type Config struct {
	Select VariableHeuristic
	Order  ValueHeuristic
	Infer  InferenceStrategy
	UseAC3 bool
}

// Solve searches for a total assignment satisfying every constraint in
// p, per the strategies in cfg. Returns the solution and true, or a nil
// map and false if the problem is unsatisfiable. Unsatisfiability is
// always reported this way, never via a returned error (spec.md §7).
//
// Grounded on original_source/BinaryCSP.py's solve().
func Solve[V, D comparable](p *Problem[V, D], cfg Config) (map[V]D, bool) {
	a := newAssignment(p)

	if !eliminateUnaryConstraints(p, a) {
		log.Trace("solve: unsatisfiable after unary preprocessing")
		return nil, false
	}

	if cfg.UseAC3 {
		if !AC3(p, a) {
			log.Trace("solve: unsatisfiable after AC-3")
			return nil, false
		}
	}

	var ok bool
	if cfg.Infer == NoInference {
		ok = backtrack(p, a, cfg)
	} else {
		ok = backtrackWithInference(p, a, cfg)
	}
	if !ok {
		return nil, false
	}
	return a.Extract(), true
}

// backtrack is the plain backtracking driver: no inference engine is
// invoked between a tentative assignment and the recursive call.
//
// Grounded on original_source/BinaryCSP.py's recursiveBacktracking.
func backtrack[V, D comparable](p *Problem[V, D], a *Assignment[V, D], cfg Config) bool {
	v := selectVariable(cfg.Select, p, a)
	values := orderValues(cfg.Order, p, a, v)

	for _, x := range values {
		if !Consistent(a, p, v, x) {
			continue
		}

		a.Assign(v, x)
		log.WithFields(log.Fields{"var": v, "val": x}).Trace("backtrack: tentative assignment")

		if a.IsComplete() {
			return true
		}

		if backtrack(p, a, cfg) {
			return true
		}
	}

	log.WithField("var", v).Trace("backtrack: no candidate left, unassigning")
	a.Unassign(v)
	return false
}

// backtrackWithInference is the with-inference backtracking driver
// (spec.md §4.8). Per spec.md Design Notes §9, the assignment is
// unassigned eagerly on a failed-inference candidate rather than left
// as a transient residual value until loop exhaustion — an
// implementation choice the spec explicitly recommends for clarity,
// with no observable difference since the next iteration would
// overwrite it anyway.
//
// Grounded on original_source/BinaryCSP.py's
// recursiveBacktrackingWithInferences.
func backtrackWithInference[V, D comparable](p *Problem[V, D], a *Assignment[V, D], cfg Config) bool {
	v := selectVariable(cfg.Select, p, a)
	values := orderValues(cfg.Order, p, a, v)

	for _, x := range values {
		if !Consistent(a, p, v, x) {
			continue
		}

		a.Assign(v, x)
		log.WithFields(log.Fields{"var": v, "val": x}).Trace("backtrack: tentative assignment")

		if a.IsComplete() {
			return true
		}

		result := infer(cfg.Infer, p, a, v, x)
		if !result.ok {
			log.WithFields(log.Fields{"var": v, "val": x}).Trace("backtrack: inference failed, trying next value")
			a.Unassign(v)
			continue
		}
		log.WithFields(log.Fields{"var": v, "val": x, "pruned": len(result.pruned)}).Trace("backtrack: inference succeeded")

		if backtrackWithInference(p, a, cfg) {
			return true
		}

		a.restore(result.pruned)
		a.Unassign(v)
	}

	log.WithField("var", v).Trace("backtrack: no candidate left, unassigning")
	a.Unassign(v)
	return false
}
