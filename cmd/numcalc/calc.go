package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/exactvalues/numeric"
)

var errUnderflow = errors.New("stack underflow")

// calc is a reverse Polish calculator over the numeric tower.
// Numbers push themselves; operators pop their operands and push the
// result. Division of integers yields exact rationals, so a session
// never loses precision unless a floating value enters the stack.
type calc struct {
	stack []numeric.Number
	out   io.Writer
}

func newCalc(out io.Writer) *calc {
	return &calc{out: out}
}

func (c *calc) push(x numeric.Number) {
	c.stack = append(c.stack, x)
}

func (c *calc) pop() (numeric.Number, error) {
	if len(c.stack) == 0 {
		return numeric.Number{}, errUnderflow
	}
	x := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return x, nil
}

// EvalLine evaluates one line of whitespace-separated tokens.
// Evaluation stops at the first failing token; the stack keeps the
// state it had before that token.
func (c *calc) EvalLine(line string) error {
	for _, tok := range strings.Fields(line) {
		if err := c.eval(tok); err != nil {
			return fmt.Errorf("%q: %w", tok, err)
		}
	}
	return nil
}

func (c *calc) eval(tok string) error {
	switch tok {
	case "+":
		return c.binary(numeric.Number.Add)
	case "-":
		return c.binary(numeric.Number.Sub)
	case "*":
		return c.binary(numeric.Number.Mul)
	case "/":
		return c.binary(numeric.Number.Quo)
	case "%":
		return c.binary(numeric.Number.Rem)
	case "^":
		return c.binary(numeric.Number.Pow)

	// Print the value on top of the stack
	case "p":
		if len(c.stack) == 0 {
			return errUnderflow
		}
		fmt.Fprintln(c.out, c.stack[len(c.stack)-1])
		return nil

	// Pop and print
	case "n":
		x, err := c.pop()
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, x)
		return nil

	// Print the whole stack, top first
	case "f":
		for i := len(c.stack) - 1; i >= 0; i-- {
			fmt.Fprintln(c.out, c.stack[i])
		}
		return nil

	// Clear the stack
	case "c":
		c.stack = c.stack[:0]
		return nil

	// Duplicate the value on top of the stack
	case "d":
		if len(c.stack) == 0 {
			return errUnderflow
		}
		c.push(c.stack[len(c.stack)-1])
		return nil

	// Reverse the top two values
	case "r":
		if len(c.stack) < 2 {
			return errUnderflow
		}
		n := len(c.stack)
		c.stack[n-1], c.stack[n-2] = c.stack[n-2], c.stack[n-1]
		return nil

	// Push the stack depth
	case "z":
		c.push(numeric.NewNumber(int64(len(c.stack))))
		return nil

	// Replace the stack with the sum of its values
	case "sum":
		c.sum()
		return nil
	}

	x, err := numeric.ParseNumber(tok)
	if err != nil {
		return err
	}
	c.push(x)
	return nil
}

// binary pops the top two values and pushes op(second, top).
func (c *calc) binary(op func(numeric.Number, numeric.Number) numeric.Number) error {
	b, err := c.pop()
	if err != nil {
		return err
	}
	a, err := c.pop()
	if err != nil {
		return err
	}
	c.push(op(a, b))
	return nil
}

// sum folds the whole stack into a single value. When every entry has
// an exact rational value the fold goes through [numeric.Sum], which
// defers reduction across terms; NaN and infinite entries force a
// plain left fold instead.
func (c *calc) sum() {
	qs := make([]numeric.Rational, 0, len(c.stack))
	for _, x := range c.stack {
		q, ok := x.Rational()
		if !ok {
			qs = nil
			break
		}
		qs = append(qs, q)
	}

	if qs != nil {
		c.stack = c.stack[:0]
		c.push(numeric.Sum(qs...).Number())
		return
	}

	acc := numeric.Number{}
	for _, x := range c.stack {
		acc = acc.Add(x)
	}
	c.stack = c.stack[:0]
	c.push(acc)
}
