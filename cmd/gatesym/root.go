package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xDarkicex/gatesym"
	"github.com/xDarkicex/gatesym/blocks"
	"github.com/xDarkicex/gatesym/expr"
)

var buildID = "dev"

// cliArgsForTest, when non-nil, overrides os.Args[1:] for tests that drive
// the command tree without touching process-global state.
var cliArgsForTest []string

// Main is the entry point for the gatesym tool, invoked from main().
func Main() error {
	return mainWithOutput(os.Stdout)
}

// mainWithOutput builds the command tree and executes it with out as both
// stdout and stderr, so tests can capture output without redirecting the
// real process streams.
func mainWithOutput(out io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	if cliArgsForTest != nil {
		rootCmd.SetArgs(cliArgsForTest)
	}
	return rootCmd.Execute()
}

func newRootCmd() *cobra.Command {
	var cfg config
	var width int
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "gatesym",
		Short: "simulate NOR-gate circuits from the command line",
		Example: `
gatesym adder 5 3
  Adds 5 and 3 through an N-bit ripple adder and prints the sum and carry.

gatesym eval "(A & B) | !C" --var A=1 --var B=0 --var C=1
  Evaluates a boolean expression through a compiled circuit.

gatesym bench
  Times a handful of built-in circuits.
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			if width == 0 {
				if cfg.Width > 0 {
					width = cfg.Width
				} else {
					width = 8
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "gatesym.toml",
		"path to an optional config file")
	rootCmd.PersistentFlags().IntVarP(&width, "width", "w", 0,
		"word width in bits for the adder command (default 8, or config's width)")

	rootCmd.AddCommand(newAdderCmd(&width))
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newBenchCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gatesym version %s; %s\n", buildID, runtime.Version())
		},
	})

	return rootCmd
}

func newAdderCmd(width *int) *cobra.Command {
	return &cobra.Command{
		Use:   "adder A B",
		Short: "add two unsigned integers through an N-bit ripple adder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var a, b int
			if _, err := fmt.Sscanf(args[0], "%d", &a); err != nil {
				return fmt.Errorf("invalid operand %q: %w", args[0], err)
			}
			if _, err := fmt.Sscanf(args[1], "%d", &b); err != nil {
				return fmt.Errorf("invalid operand %q: %w", args[1], err)
			}

			net := gatesym.NewNetwork()
			aBits := make([]gatesym.Gate, *width)
			bBits := make([]gatesym.Gate, *width)
			for i := range aBits {
				aBits[i] = gatesym.Switch(net)
				bBits[i] = gatesym.Switch(net)
				aBits[i].Write(a&(1<<i) != 0)
				bBits[i].Write(b&(1<<i) != 0)
			}
			zero := gatesym.Tie(net, false)

			sum, carryOut := blocks.RippleAdd(aBits, bBits, zero)
			net.Drain()

			total := 0
			for i, bit := range sum {
				if bit.Read() {
					total |= 1 << i
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d + %d = %d (carry out: %v)\n", a, b, total, carryOut.Read())
			return nil
		},
	}
}

func newEvalCmd() *cobra.Command {
	var vars []string
	cmd := &cobra.Command{
		Use:   "eval EXPRESSION",
		Short: "compile a boolean expression into a circuit and evaluate it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ast, err := expr.Parse(args[0])
			if err != nil {
				return err
			}

			net := gatesym.NewNetwork()
			switches := map[string]gatesym.Gate{}
			assignments, err := parseAssignments(vars)
			if err != nil {
				return err
			}
			for name, value := range assignments {
				sw := gatesym.Switch(net)
				sw.Write(value)
				switches[name] = sw
			}

			out, err := expr.Compile(net, ast, switches)
			if err != nil {
				return err
			}
			net.Drain()
			fmt.Fprintln(cmd.OutOrStdout(), out.Read())
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, "variable assignment NAME=0|1, repeatable")
	return cmd
}

func parseAssignments(vars []string) (map[string]bool, error) {
	out := make(map[string]bool, len(vars))
	for _, v := range vars {
		name, rawValue, ok := strings.Cut(v, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q, want NAME=0|1", v)
		}
		value, err := strconv.Atoi(rawValue)
		if err != nil {
			return nil, fmt.Errorf("invalid --var %q, want NAME=0|1", v)
		}
		out[name] = value != 0
	}
	return out, nil
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "time a handful of built-in circuits",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := gatesym.NewBenchmark()
			b.Add("8-bit ripple add", func(net *gatesym.Network) gatesym.Gate {
				aBits := make([]gatesym.Gate, 8)
				bBits := make([]gatesym.Gate, 8)
				for i := range aBits {
					aBits[i] = gatesym.Tie(net, i%2 == 0)
					bBits[i] = gatesym.Tie(net, i%3 == 0)
				}
				sum, _ := blocks.RippleAdd(aBits, bBits, gatesym.Tie(net, false))
				return sum[0]
			})
			b.Add("8-bit register load", func(net *gatesym.Network) gatesym.Gate {
				data := make([]gatesym.Gate, 8)
				for i := range data {
					data[i] = gatesym.Tie(net, true)
				}
				clock := gatesym.Switch(net)
				out := blocks.Register(data, clock, false, false)
				clock.Write(true)
				net.Drain()
				clock.Write(false)
				return out[0]
			})
			b.Run()

			for _, r := range b.Results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s value=%-5v steps=%-4d %v\n", r.Name, r.Value, r.Steps, r.Duration)
			}
			return nil
		},
	}
}
