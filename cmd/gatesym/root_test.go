package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// runCmd builds and executes the same command tree Main does, with args
// and output redirected so tests don't touch os.Args/os.Exit, and returns
// the captured output and the command's error.
func runCmd(args ...string) (string, error) {
	var buf bytes.Buffer
	oldArgs := cliArgsForTest
	defer func() { cliArgsForTest = oldArgs }()
	cliArgsForTest = args

	err := mainWithOutput(&buf)
	return buf.String(), err
}

func TestAdderCommand(t *testing.T) {
	a := assert.New(t)
	out, err := runCmd("adder", "5", "3")
	a.NoError(err)
	a.Contains(out, "5 + 3 = 8")
}

func TestEvalCommand(t *testing.T) {
	a := assert.New(t)
	out, err := runCmd("eval", "A & B", "--var", "A=1", "--var", "B=1")
	a.NoError(err)
	a.Contains(out, "true")

	out, err = runCmd("eval", "A & B", "--var", "A=1", "--var", "B=0")
	a.NoError(err)
	a.Contains(out, "false")
}

func TestEvalCommandRejectsBadVar(t *testing.T) {
	a := assert.New(t)
	_, err := runCmd("eval", "A", "--var", "nope")
	a.Error(err)
}

func TestBenchCommand(t *testing.T) {
	a := assert.New(t)
	out, err := runCmd("bench")
	a.NoError(err)
	a.Contains(out, "8-bit ripple add")
	a.Contains(out, "8-bit register load")
}

func TestVersionCommand(t *testing.T) {
	a := assert.New(t)
	out, err := runCmd("version")
	a.NoError(err)
	a.Contains(out, "gatesym version")
}
