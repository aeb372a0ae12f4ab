package blocks

import (
	"fmt"
	"strings"

	"github.com/xDarkicex/gatesym/gate"
)

// TruthTableRow is one input assignment and the resulting output readings
// for a circuit driven through switches.
type TruthTableRow struct {
	Inputs  map[string]bool
	Outputs []bool
}

// TruthTable is the full enumeration of a circuit's behavior over its
// input switches.
type TruthTable struct {
	InputNames  []string
	OutputNames []string
	Rows        []TruthTableRow
}

// GenerateTruthTable drives inputs through every combination of values,
// draining the network and reading outputs after each, and records the
// result. Adapted from the teacher's classical/truthtable.go
// GenerateTruthTable, retargeted from a pure func(...bool) bool to an
// actual core.Network: instead of calling a boolean function, it writes
// switches and drains.
func GenerateTruthTable(inputNames []string, inputs []gate.Gate, outputNames []string, outputs []gate.Gate) *TruthTable {
	if len(inputNames) != len(inputs) {
		panic("blocks.GenerateTruthTable: inputNames/inputs length mismatch")
	}
	if len(outputNames) != len(outputs) {
		panic("blocks.GenerateTruthTable: outputNames/outputs length mismatch")
	}
	if len(inputs) == 0 {
		panic("blocks.GenerateTruthTable: at least one input required")
	}
	net := inputs[0].Network()

	n := len(inputs)
	numRows := 1 << n
	table := &TruthTable{
		InputNames:  append([]string(nil), inputNames...),
		OutputNames: append([]string(nil), outputNames...),
		Rows:        make([]TruthTableRow, numRows),
	}

	for i := 0; i < numRows; i++ {
		rowInputs := make(map[string]bool, n)
		for j, in := range inputs {
			value := (i>>j)&1 == 1
			in.Write(value)
			rowInputs[inputNames[j]] = value
		}
		net.Drain()

		rowOutputs := make([]bool, len(outputs))
		for j, out := range outputs {
			rowOutputs[j] = out.Read()
		}

		table.Rows[i] = TruthTableRow{Inputs: rowInputs, Outputs: rowOutputs}
	}

	return table
}

// String formats the table the way the teacher's classical.TruthTable
// does: one fixed-width column per input, then per output.
func (tt *TruthTable) String() string {
	if len(tt.Rows) == 0 {
		return "Empty truth table\n"
	}

	var b strings.Builder
	for _, name := range tt.InputNames {
		fmt.Fprintf(&b, "%-8s", name)
	}
	for _, name := range tt.OutputNames {
		fmt.Fprintf(&b, "%-8s", name)
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 8*(len(tt.InputNames)+len(tt.OutputNames))))
	b.WriteString("\n")

	for _, row := range tt.Rows {
		for _, name := range tt.InputNames {
			b.WriteString(boolCell(row.Inputs[name]))
		}
		for _, v := range row.Outputs {
			b.WriteString(boolCell(v))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func boolCell(v bool) string {
	if v {
		return fmt.Sprintf("%-8s", "T")
	}
	return fmt.Sprintf("%-8s", "F")
}
