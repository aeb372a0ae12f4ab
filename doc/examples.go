// Package main demonstrates usage examples for the gatesym package.
// This file contains comprehensive examples showing how to use all
// the major features of the gatesym package.
package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/xDarkicex/gatesym"
	"github.com/xDarkicex/gatesym/blocks"
	"github.com/xDarkicex/gatesym/expr"
)

// ExampleBasicGates demonstrates the core NOR-derived gate functions.
// Shows how to tie, switch, and combine gates with And, Or, Xor, and Not.
func ExampleBasicGates() {
	fmt.Println("=== Basic Gates ===")

	net := gatesym.NewNetwork()
	a := gatesym.Switch(net)
	b := gatesym.Switch(net)
	a.Write(true)
	b.Write(false)

	and := gatesym.And(a, b)
	or := gatesym.Or(a, b)
	xor := gatesym.Xor(a, b)
	not := gatesym.Not(a)
	net.Drain()

	fmt.Printf("AND(true, false): %v\n", and.Read())
	fmt.Printf("OR(true, false): %v\n", or.Read())
	fmt.Printf("XOR(true, false): %v\n", xor.Read())
	fmt.Printf("NOT(true): %v\n", not.Read())

	fmt.Println()
}

// ExampleRippleAdder demonstrates blocks.RippleAdd over a bank of switches.
// Shows how to build and drain a multi-bit adder circuit.
func ExampleRippleAdder() {
	fmt.Println("=== 4-bit Ripple Adder ===")

	net := gatesym.NewNetwork()
	aWord := make([]gatesym.Gate, 4)
	bWord := make([]gatesym.Gate, 4)
	for i := range aWord {
		aWord[i] = gatesym.Switch(net)
		bWord[i] = gatesym.Switch(net)
	}

	writeWord := func(word []gatesym.Gate, value int) {
		for i, bit := range word {
			bit.Write(value&(1<<i) != 0)
		}
	}
	writeWord(aWord, 5)
	writeWord(bWord, 6)

	sum, carryOut := blocks.RippleAdd(aWord, bWord, gatesym.Tie(net, false))
	net.Drain()

	total := 0
	for i, bit := range sum {
		if bit.Read() {
			total |= 1 << i
		}
	}
	fmt.Printf("5 + 6 = %d (carry out: %v)\n", total, carryOut.Read())

	fmt.Println()
}

// ExampleRegister demonstrates a clocked Register that latches a word on
// the falling edge, the way blocks/latches.go builds it from GatedDLatch.
func ExampleRegister() {
	fmt.Println("=== Register ===")

	net := gatesym.NewNetwork()
	clock := gatesym.Switch(net)
	data := make([]gatesym.Gate, 4)
	for i := range data {
		data[i] = gatesym.Switch(net)
	}
	out := blocks.Register(data, clock, false, false)

	data[0].Write(true)
	data[1].Write(false)
	data[2].Write(true)
	data[3].Write(true)
	net.Drain()

	clock.Write(true)
	net.Drain()
	clock.Write(false)
	net.Drain()

	value := 0
	for i, bit := range out {
		if bit.Read() {
			value |= 1 << i
		}
	}
	fmt.Printf("Latched value: %d\n", value)

	fmt.Println()
}

// ExampleTruthTable demonstrates truth table generation for a compiled
// circuit, comparing a half adder's sum and carry across all inputs.
func ExampleTruthTable() {
	fmt.Println("=== Truth Table Generation ===")

	net := gatesym.NewNetwork()
	x := gatesym.Switch(net)
	y := gatesym.Switch(net)
	sum, carry := blocks.HalfAdder(x, y)

	table := blocks.GenerateTruthTable(
		[]string{"x", "y"}, []gatesym.Gate{x, y},
		[]string{"sum", "carry"}, []gatesym.Gate{sum, carry},
	)
	fmt.Print(table.String())

	fmt.Println()
}

// ExampleLogicalLaws demonstrates logical law verification by compiling
// each law as a circuit and exhausting its inputs, using expr.Tautology
// and expr.Contradiction.
func ExampleLogicalLaws() {
	fmt.Println("=== Logical Laws Verification ===")

	deMorgan, _ := expr.CheckLaw("!(A & B)", "!A | !B", []string{"A", "B"})
	fmt.Printf("De Morgan's Law is a tautology: %v\n", deMorgan)

	distributive, _ := expr.CheckLaw("A & (B | C)", "(A & B) | (A & C)", []string{"A", "B", "C"})
	fmt.Printf("Distributive Law is a tautology: %v\n", distributive)

	excludedMiddle, _ := expr.Tautology("A | !A", []string{"A"})
	fmt.Printf("Law of excluded middle is a tautology: %v\n", excludedMiddle)

	contradiction, _ := expr.Contradiction("A & !A", []string{"A"})
	fmt.Printf("A && !A is a contradiction: %v\n", contradiction)

	fmt.Println()
}

// ExampleFluentInterface demonstrates the Drive fluent builder, the
// circuit-backed analogue of a pure-bool evaluator chain.
func ExampleFluentInterface() {
	fmt.Println("=== Fluent Interface ===")

	net := gatesym.NewNetwork()
	result1 := gatesym.NewDrive(net, true).And(gatesym.Tie(net, false)).Or(gatesym.Tie(net, true)).Result()
	fmt.Printf("Drive(true).And(false).Or(true): %v\n", result1)

	complex := gatesym.NewDrive(net, true).
		And(gatesym.Tie(net, false)). // false
		Or(gatesym.Tie(net, true)).   // true
		Xor(gatesym.Tie(net, false)). // true
		And(gatesym.Tie(net, true)).  // true
		Not().                        // false
		Or(gatesym.Tie(net, true)).   // true
		Result()

	fmt.Printf("Complex chain result: %v\n", complex)

	fmt.Println()
}

// ExampleExpressionCompiler demonstrates parsing a boolean expression and
// compiling it into a real circuit, then re-checking the same expression
// string's output through expr.EvaluateExpression's own throwaway circuit.
func ExampleExpressionCompiler() {
	fmt.Println("=== Expression Compiler ===")

	ast, err := expr.Parse("(A & B) | !C")
	if err != nil {
		fmt.Printf("parse error: %v\n", err)
		return
	}

	net := gatesym.NewNetwork()
	a := gatesym.Switch(net)
	b := gatesym.Switch(net)
	c := gatesym.Switch(net)
	a.Write(true)
	b.Write(false)
	c.Write(false)

	out, err := expr.Compile(net, ast, map[string]gatesym.Gate{"A": a, "B": b, "C": c})
	if err != nil {
		fmt.Printf("compile error: %v\n", err)
		return
	}
	net.Drain()

	direct, _ := expr.EvaluateExpression("(A & B) | !C", map[string]bool{"A": true, "B": false, "C": false})
	fmt.Printf("compiled circuit: %v, independently-compiled evaluator: %v\n", out.Read(), direct)

	fmt.Println()
}

// ExampleBenchmark demonstrates timing a handful of named circuits.
func ExampleBenchmark() {
	fmt.Println("=== Benchmark ===")

	b := gatesym.NewBenchmark()
	b.Add("and-true-true", func(net *gatesym.Network) gatesym.Gate {
		return gatesym.And(gatesym.Tie(net, true), gatesym.Tie(net, true))
	})
	b.Add("nor-chain", func(net *gatesym.Network) gatesym.Gate {
		return gatesym.Not(gatesym.Not(gatesym.Switch(net)))
	})
	b.Run()

	for _, r := range b.Results {
		fmt.Printf("%s: value=%v steps=%d\n", r.Name, r.Value, r.Steps)
	}

	fmt.Println()
}

// ExampleErrorHandling demonstrates how an invalid expression is reported.
func ExampleErrorHandling() {
	fmt.Println("=== Error Handling ===")

	_, err := expr.Parse("A & ")
	if err != nil {
		fmt.Printf("Error occurred: %v\n", err)

		var syntaxErr *expr.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Printf("Operation: %s\n", syntaxErr.Op)
			fmt.Printf("Message: %s\n", syntaxErr.Message)
		}
	}

	fmt.Println()
}

// main runs all the examples to demonstrate the gatesym package's capabilities.
func main() {
	fmt.Println("Gatesym Package Examples")
	fmt.Println("========================")
	fmt.Println()

	ExampleBasicGates()
	ExampleRippleAdder()
	ExampleRegister()
	ExampleTruthTable()
	ExampleLogicalLaws()
	ExampleFluentInterface()
	ExampleExpressionCompiler()
	ExampleBenchmark()
	ExampleErrorHandling()

	fmt.Println("All examples completed successfully!")
}
