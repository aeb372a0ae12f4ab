// Command gatesym drives small NOR-gate circuits from the command line:
// add two integers through a ripple adder, evaluate a boolean expression
// for one assignment of its variables, or benchmark a handful of built-in
// circuits.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Main(); err != nil {
		fmt.Fprintln(os.Stderr, "gatesym:", err)
		os.Exit(1)
	}
}
