package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var (
	// Version can be set with the Go linker.
	Version = "master"

	expressions []string

	rootCmd = &cobra.Command{
		Use:     "numcalc [file...]",
		Short:   "numcalc is a reverse Polish calculator on exact numbers",
		Version: Version,
		Long: `numcalc is a reverse Polish calculator built on an exact numeric tower.

Integers and fractions compute exactly at any size: dividing 1 by 3
pushes the rational 1/3, and 2 600 ^ pushes all 181 digits of 2^600.
Decimal inputs use fixed-point arithmetic while they fit and fall back
to floating point when they must.

Operators: + - * / % ^
Stack words: p (print top), n (pop and print), f (print stack),
c (clear), d (duplicate), r (swap), z (push depth), sum (fold stack)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newCalc(cmd.OutOrStdout())

			for _, expr := range expressions {
				if err := c.EvalLine(expr); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "numcalc:", err)
				}
			}
			for _, name := range args {
				if err := evalFile(c, name, cmd.ErrOrStderr()); err != nil {
					return err
				}
			}

			if len(expressions) == 0 && len(args) == 0 {
				return repl(c)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.Flags().StringArrayVarP(&expressions, "expression", "e",
		nil, "evaluate expression and continue")
}

// evalFile evaluates a script line by line. A failing line is reported
// and the rest of the script still runs, like dc. Lines starting with
// '#' are comments.
func evalFile(c *calc, name string, errw io.Writer) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := c.EvalLine(line); err != nil {
			fmt.Fprintf(errw, "numcalc: %s: %s\n", name, err)
		}
	}
	return s.Err()
}

// repl reads and evaluates lines until EOF, Ctrl-C, or the word q.
func repl(c *calc) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	for {
		line, err := cli.Prompt("> ")
		switch err {
		case nil:
		case liner.ErrPromptAborted, io.EOF:
			return nil
		default:
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "q" {
			return nil
		}

		cli.AppendHistory(line)
		if err := c.EvalLine(line); err != nil {
			fmt.Fprintln(os.Stderr, "numcalc:", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "numcalc:", err)
		os.Exit(1)
	}
}
