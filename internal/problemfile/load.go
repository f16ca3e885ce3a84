// Package problemfile decodes a YAML problem description into a
// csp.Problem. This is a file-format boundary external to the solver's
// core contract (spec.md §6); pkg/csp never imports it.
package problemfile

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/elireisman/binarycsp/pkg/constraints"
	"github.com/elireisman/binarycsp/pkg/csp"
)

// Document is the on-disk shape of a problem file.
type Document struct {
	Variables   []string            `yaml:"variables"`
	Domain      map[string][]string `yaml:"domain"`
	Constraints []ConstraintSpec    `yaml:"constraints"`
}

// ConstraintSpec names a concrete constraint kind and its operands. Unary
// kinds use Var, with Value (exclude, pin) or Earliest/Latest (schedule);
// binary kinds use Vars.
type ConstraintSpec struct {
	Kind     string   `yaml:"kind"`
	Var      string   `yaml:"var,omitempty"`
	Vars     []string `yaml:"vars,omitempty"`
	Value    string   `yaml:"value,omitempty"`
	Earliest float64  `yaml:"earliest,omitempty"`
	Latest   float64  `yaml:"latest,omitempty"`
}

// Load reads and decodes the problem file at path, builds a
// csp.Problem[string,string] from it, and wires each declared
// constraint via pkg/constraints. An unrecognized Kind, or a constraint
// referencing a variable the document never declared, is a programmer
// error returned wrapped with github.com/pkg/errors.
func Load(path string) (*csp.Problem[string, string], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "problemfile: reading %s", path)
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "problemfile: parsing %s", path)
	}

	return Build(doc)
}

// Build constructs a csp.Problem from an already-decoded Document.
func Build(doc Document) (*csp.Problem[string, string], error) {
	known := make(map[string]bool, len(doc.Variables))
	for _, v := range doc.Variables {
		known[v] = true
	}

	domains := make([][]string, len(doc.Variables))
	for i, v := range doc.Variables {
		d, ok := doc.Domain[v]
		if !ok {
			return nil, errors.Errorf("problemfile: variable %q has no domain entry", v)
		}
		domains[i] = d
	}

	problem, err := csp.NewValidated(doc.Variables, domains)
	if err != nil {
		return nil, errors.Wrap(err, "problemfile: building problem")
	}

	for i, spec := range doc.Constraints {
		if err := attach(problem, known, spec); err != nil {
			return nil, errors.Wrapf(err, "problemfile: constraint[%d]", i)
		}
	}

	return problem, nil
}

func attach(p *csp.Problem[string, string], known map[string]bool, spec ConstraintSpec) error {
	requireKnown := func(vars ...string) error {
		for _, v := range vars {
			if !known[v] {
				return errors.Errorf("unknown variable %q", v)
			}
		}
		return nil
	}

	switch spec.Kind {
	case "equal":
		if len(spec.Vars) != 2 {
			return errors.Errorf("kind %q requires exactly 2 vars", spec.Kind)
		}
		if err := requireKnown(spec.Vars...); err != nil {
			return err
		}
		p.AddBinary(constraints.NewEqual[string, string](spec.Vars[0], spec.Vars[1]))

	case "not-equal":
		if len(spec.Vars) != 2 {
			return errors.Errorf("kind %q requires exactly 2 vars", spec.Kind)
		}
		if err := requireKnown(spec.Vars...); err != nil {
			return err
		}
		p.AddBinary(constraints.NewNotEqual[string, string](spec.Vars[0], spec.Vars[1]))

	case "not-overlap":
		if len(spec.Vars) != 2 {
			return errors.Errorf("kind %q requires exactly 2 vars", spec.Kind)
		}
		if err := requireKnown(spec.Vars...); err != nil {
			return err
		}
		p.AddBinary(constraints.NewNotOverlap[string](spec.Vars[0], spec.Vars[1]))

	case "not-threatening":
		if len(spec.Vars) != 2 {
			return errors.Errorf("kind %q requires exactly 2 vars", spec.Kind)
		}
		if err := requireKnown(spec.Vars...); err != nil {
			return err
		}
		p.AddBinary(constraints.NewNotThreatening[string](spec.Vars[0], spec.Vars[1]))

	case "exclude":
		if err := requireKnown(spec.Var); err != nil {
			return err
		}
		p.AddUnary(constraints.NewExclude[string, string](spec.Var, spec.Value))

	case "pin":
		if err := requireKnown(spec.Var); err != nil {
			return err
		}
		p.AddUnary(constraints.NewPin[string, string](spec.Var, spec.Value))

	case "schedule":
		if err := requireKnown(spec.Var); err != nil {
			return err
		}
		p.AddUnary(constraints.NewSchedule[string](spec.Var, spec.Earliest, spec.Latest))

	default:
		return errors.Errorf("unrecognized constraint kind %q", spec.Kind)
	}

	return nil
}
