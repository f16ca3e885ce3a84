// Command cspsolve loads a YAML CSP problem file and runs the solver
// over it, with flags selecting the search strategies.
//
// Grounded on operator-framework/operator-lifecycle-manager's
// cmd/catalog/main.go (flag-driven bootstrap) restructured around
// cobra, as go-corset's cmd/ tree does.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/elireisman/binarycsp/internal/problemfile"
	"github.com/elireisman/binarycsp/pkg/csp"
)

var (
	selectFlag string
	orderFlag  string
	inferFlag  string
	useAC3     bool
	debug      bool
)

func main() {
	root := &cobra.Command{
		Use:   "cspsolve PROBLEM_FILE",
		Short: "Solve a binary constraint-satisfaction problem described in YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	root.Flags().StringVar(&selectFlag, "select", "mrv", "variable heuristic: first|mrv")
	root.Flags().StringVar(&orderFlag, "order", "lcv", "value heuristic: natural|lcv")
	root.Flags().StringVar(&inferFlag, "infer", "mac", "inference strategy: none|fc|mac")
	root.Flags().BoolVar(&useAC3, "ac3", true, "run AC-3 preprocessing before search")
	root.Flags().BoolVar(&debug, "debug", false, "trace every assignment, inference, and backtrack")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if debug {
		log.SetLevel(log.TraceLevel)
	}

	cfg, err := parseConfig()
	if err != nil {
		return err
	}

	problem, err := problemfile.Load(args[0])
	if err != nil {
		return err
	}

	solution, ok := csp.Solve(problem, cfg)
	if !ok {
		fmt.Println("no solution")
		os.Exit(1)
		return nil
	}

	for _, v := range problem.Variables() {
		fmt.Printf("%s = %s\n", v, solution[v])
	}
	return nil
}

func parseConfig() (csp.Config, error) {
	var cfg csp.Config

	switch selectFlag {
	case "first":
		cfg.Select = csp.FirstUnassigned
	case "mrv":
		cfg.Select = csp.MinimumRemainingValues
	default:
		return cfg, fmt.Errorf("unknown --select value %q", selectFlag)
	}

	switch orderFlag {
	case "natural":
		cfg.Order = csp.NaturalOrder
	case "lcv":
		cfg.Order = csp.LeastConstrainingValue
	default:
		return cfg, fmt.Errorf("unknown --order value %q", orderFlag)
	}

	switch inferFlag {
	case "none":
		cfg.Infer = csp.NoInference
	case "fc":
		cfg.Infer = csp.ForwardCheck
	case "mac":
		cfg.Infer = csp.MaintainArcConsistency
	default:
		return cfg, fmt.Errorf("unknown --infer value %q", inferFlag)
	}

	cfg.UseAC3 = useAC3
	return cfg, nil
}
