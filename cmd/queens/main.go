// Command queens solves the N-queens problem using pkg/csp, in the style
// of generic-csp-go's cmd/eight_queens demo, but rewired onto the full
// solver and the NotThreatening concrete constraint instead of a bespoke
// per-demo Satisfied function.
package main

import (
	"flag"
	"fmt"

	"github.com/elireisman/binarycsp/pkg/constraints"
	"github.com/elireisman/binarycsp/pkg/csp"
)

func main() {
	n := flag.Int("n", 8, "board size")
	flag.Parse()

	variables := make([]string, *n)
	for i := range variables {
		variables[i] = fmt.Sprintf("Q%d", i)
	}

	domains := make([][]string, *n)
	for i := range domains {
		row := make([]string, *n)
		for col := 0; col < *n; col++ {
			row[col] = fmt.Sprintf("%d%d", i, col)
		}
		domains[i] = row
	}

	problem := csp.New(variables, domains)
	for i := 0; i < *n; i++ {
		for j := i + 1; j < *n; j++ {
			problem.AddBinary(constraints.NewNotThreatening[string](variables[i], variables[j]))
		}
	}

	solution, ok := csp.Solve(problem, csp.Config{
		Select: csp.MinimumRemainingValues,
		Order:  csp.LeastConstrainingValue,
		Infer:  csp.MaintainArcConsistency,
		UseAC3: true,
	})
	if !ok {
		panic("no solution found")
	}

	fmt.Println("Solution:")
	for _, v := range variables {
		fmt.Printf("%s => %s\n", v, solution[v])
	}
}
