package csp

// prune is a single (variable, value) removal recorded by an inference
// step so it can be reversed on backtrack. See spec.md §3 "Inference
// record".
type prune[V, D comparable] struct {
	variable V
	value    D
}

// inferenceResult is the outcome of an inference engine invocation: a
// cumulative prune set, together with whether the branch is still
// viable. A nil/empty set with ok=true means "no pruning, but no
// failure" — the two must never be conflated (spec.md §7).
type inferenceResult[V, D comparable] struct {
	pruned []prune[V, D]
	ok     bool
}

func failedInference[V, D comparable]() inferenceResult[V, D] {
	return inferenceResult[V, D]{ok: false}
}

func succeededInference[V, D comparable](pruned []prune[V, D]) inferenceResult[V, D] {
	return inferenceResult[V, D]{pruned: pruned, ok: true}
}
