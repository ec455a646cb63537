/*
Package numeric implements a tower of immutable numeric types that stay
exact for as long as exactness is possible: arbitrary-precision
rationals, a fixed/floating hybrid that resists decimal rounding error,
and tagged unions that automatically hold a value in the cheapest exact
representation it fits.

# Types

The tower is built bottom-up from two independent leaves:

  - [Rational]: an arbitrary-precision fraction. Arithmetic returns
    unreduced results; [Rational.Reduce] produces the canonical form and
    [Expr] defers that reduction across a chained expression.
  - [Hybrid]: a number held either as a bounded base-10 fixed-point
    decimal (exact) or as a float64 (wide range, rounding error).
    Fixed point is preferred whenever the value fits it losslessly, so
    Hybrid addition of 0.1 and 0.2 is exactly 0.3.

and two unions that compose them:

  - [IntFloat]: an arbitrary-precision integer or a [Hybrid], preferring
    the integer whenever the value is whole and exactly known.
  - [Number]: an [IntFloat] or a [Rational], the top of the tower.

# Promotion lattice

Binary operations on [Number] pick the result representation by the
dominance ordering integer < rational < float:

	| left             | right            | result                        |
	| ---------------- | ---------------- | ----------------------------- |
	| integer          | integer          | integer (rational for uneven  |
	|                  |                  | division)                     |
	| integer/rational | integer/rational | rational, whole results       |
	|                  |                  | demoted to integer            |
	| anything         | float            | float                         |

[IntFloat] differs from [Number] in exactly one edge: it has no rational
middle layer, so uneven integer division promotes straight to floating
point and loses exactness.

# Special values

A [Rational] with a zero denominator is the undefined value. It
propagates through arithmetic like a quiet NaN and is never equal to
anything, including itself. Fixed-point overflow in a [Hybrid] is
recovered internally by falling back to floating point and is never
reported. Malformed parse input and unsupported dynamic types in
[NumberOf] are the only conditions surfaced as errors.

# Operations

Every type supports arithmetic (Add, Sub, Mul, Quo, Rem, Pow, Neg),
exact comparison (Cmp, Equal) that never converts to floating point when
both operands are exact, parsing and formatting (Parse*, String, text
marshalling), and a matrix of named conversions (Int64, Uint64, Float64,
BigInt, Decimal, and lifts between the tower's types). Narrowing
conversions truncate towards zero.

All types are immutable value types: every operation returns a new
value, nothing is mutated after construction, and all values are safe
for concurrent use by multiple goroutines without synchronization.
*/
package numeric
