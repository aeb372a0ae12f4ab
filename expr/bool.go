package expr

import (
	"fmt"
	"sort"

	"github.com/xDarkicex/gatesym/core"
	"github.com/xDarkicex/gatesym/gate"
)

// EvaluateExpression parses expr, compiles it onto a throwaway Network with
// one gate.Switch per named variable, drives variables onto those
// switches, and reads the resulting gate back off after a drain. It exists
// so callers that only care about one assignment don't have to build a
// circuit by hand, but the value it reports is the real compiled circuit's
// output, not a parallel boolean evaluator's.
func EvaluateExpression(expr string, variables map[string]bool) (bool, error) {
	ast, err := Parse(expr)
	if err != nil {
		return false, err
	}

	net := core.NewNetwork()
	switches := make(map[string]gate.Gate, len(variables))
	for name, value := range variables {
		sw := gate.Switch(net)
		sw.Write(value)
		switches[name] = sw
	}

	out, err := Compile(net, ast, switches)
	if err != nil {
		return false, err
	}
	net.Drain()
	return out.Read(), nil
}

// ValidateExpression reports whether expr is syntactically valid.
func ValidateExpression(expr string) error {
	_, err := Parse(expr)
	return err
}

// exhaustiveCircuit compiles expr once onto a shared Network with one
// gate.Switch per name in variables (sorted, so results are reproducible),
// then returns a closure that enumerates every one of the 2^n assignments,
// calling visit with each row's output. Grounded on blocks.GenerateTruthTable's
// enumeration loop, retargeted here to drive a single compiled expression
// gate instead of a whole circuit's input/output gate slices.
func exhaustiveCircuit(expr string, variables []string) (func(visit func(assignment map[string]bool, output bool)), error) {
	ast, err := Parse(expr)
	if err != nil {
		return nil, err
	}

	names := append([]string(nil), variables...)
	sort.Strings(names)

	net := core.NewNetwork()
	switches := make(map[string]gate.Gate, len(names))
	for _, name := range names {
		switches[name] = gate.Switch(net)
	}

	out, err := Compile(net, ast, switches)
	if err != nil {
		return nil, err
	}

	n := len(names)
	return func(visit func(map[string]bool, bool)) {
		for i := 0; i < (1 << n); i++ {
			assignment := make(map[string]bool, n)
			for j, name := range names {
				value := (i>>j)&1 == 1
				switches[name].Write(value)
				assignment[name] = value
			}
			net.Drain()
			visit(assignment, out.Read())
		}
	}, nil
}

// Tautology reports whether expr's compiled circuit reads true under every
// assignment of variables.
func Tautology(expr string, variables []string) (bool, error) {
	enumerate, err := exhaustiveCircuit(expr, variables)
	if err != nil {
		return false, err
	}
	result := true
	enumerate(func(_ map[string]bool, output bool) {
		if !output {
			result = false
		}
	})
	return result, nil
}

// Contradiction reports whether expr's compiled circuit reads false under
// every assignment of variables.
func Contradiction(expr string, variables []string) (bool, error) {
	enumerate, err := exhaustiveCircuit(expr, variables)
	if err != nil {
		return false, err
	}
	result := true
	enumerate(func(_ map[string]bool, output bool) {
		if output {
			result = false
		}
	})
	return result, nil
}

// Contingency reports whether expr's compiled circuit is neither a
// Tautology nor a Contradiction over variables: true for some assignments,
// false for others.
func Contingency(expr string, variables []string) (bool, error) {
	enumerate, err := exhaustiveCircuit(expr, variables)
	if err != nil {
		return false, err
	}
	hasTrue, hasFalse := false, false
	enumerate(func(_ map[string]bool, output bool) {
		if output {
			hasTrue = true
		} else {
			hasFalse = true
		}
	})
	return hasTrue && hasFalse, nil
}

// CheckLaw reports whether lhs and rhs agree on every assignment of
// variables — the circuit-backed equivalent of checking an algebraic law
// like De Morgan's (NOT(A AND B) <-> (NOT A OR NOT B)) or distributivity
// (A AND (B OR C) <-> (A AND B) OR (A AND C)). It joins the two as
// "(lhs) <-> (rhs)" and hands that single expression to Tautology, so both
// sides are compiled into one circuit.
func CheckLaw(lhs, rhs string, variables []string) (bool, error) {
	return Tautology(fmt.Sprintf("(%s) <-> (%s)", lhs, rhs), variables)
}
