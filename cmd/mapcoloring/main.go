// Command mapcoloring solves the classic Canada-provinces map-coloring
// problem using pkg/csp.
//
// Grounded on generic-csp-go's cmd/map_coloring demo, rewired onto the
// new solver and the NotEqual concrete constraint in place of its
// bespoke per-demo Satisfied function.
package main

import (
	"fmt"

	"github.com/elireisman/binarycsp/pkg/constraints"
	"github.com/elireisman/binarycsp/pkg/csp"
)

var provinces = []string{
	"Yukon",
	"British Columbia",
	"Northwest Territories",
	"Nunavut",
	"Alberta",
	"Saskatchewan",
	"Manitoba",
	"Ontario",
	"Quebec",
	"Newfoundland and Labrador",
	"New Brunswick",
	"Nova Scotia",
	"Prince Edward Island",
}

var colors = []string{"Red", "Yellow", "Blue", "Green"}

var borders = [][2]string{
	{"Yukon", "British Columbia"},
	{"Yukon", "Northwest Territories"},
	{"British Columbia", "Alberta"},
	{"British Columbia", "Northwest Territories"},
	{"Northwest Territories", "Alberta"},
	{"Alberta", "Saskatchewan"},
	{"Saskatchewan", "Northwest Territories"},
	{"Nunavut", "Northwest Territories"},
	{"Saskatchewan", "Manitoba"},
	{"Manitoba", "Nunavut"},
	{"Manitoba", "Ontario"},
	{"Ontario", "Quebec"},
	{"Newfoundland and Labrador", "Quebec"},
	{"Newfoundland and Labrador", "Prince Edward Island"},
	{"Newfoundland and Labrador", "New Brunswick"},
	{"Newfoundland and Labrador", "Nova Scotia"},
	{"New Brunswick", "Quebec"},
	{"Nova Scotia", "New Brunswick"},
	{"Prince Edward Island", "New Brunswick"},
	{"Nova Scotia", "Prince Edward Island"},
}

func main() {
	domains := make([][]string, len(provinces))
	for i := range provinces {
		domains[i] = colors
	}

	problem := csp.New(provinces, domains)
	for _, border := range borders {
		problem.AddBinary(constraints.NewNotEqual[string, string](border[0], border[1]))
	}

	solution, ok := csp.Solve(problem, csp.Config{
		Select: csp.MinimumRemainingValues,
		Order:  csp.LeastConstrainingValue,
		Infer:  csp.ForwardCheck,
		UseAC3: true,
	})
	if !ok {
		panic("no solution found")
	}

	fmt.Println("Solution:")
	for _, p := range provinces {
		fmt.Printf("%s => %s\n", p, solution[p])
	}
}
