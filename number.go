package numeric

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Number type is a representation of a general number: the top of the
// tower. The zero value is the integer 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A number holds exactly one of two payloads:
//
//   - An [IntFloat]: an exact integer or a floating value.
//   - A [Rational]: an exact fraction.
//
// Together these give three effective representations forming the
// promotion lattice integer < rational < float. Binary operations pick
// the result representation by dominance:
//
//   - If either operand is a float, the result is a float.
//   - Otherwise the operands are exact, the operation is computed in
//     rational arithmetic, and a whole result demotes to an integer.
//
// The rational middle layer is what separates Number from [IntFloat]:
// dividing the integers 1 and 3 yields the exact rational 1/3, never the
// floating 0.333….
type Number struct {
	form numForm
	val  IntFloat
	rat  Rational
}

// numForm identifies the active payload of a Number.
type numForm uint8

const (
	numIntFloat numForm = iota
	numRat
)

var (
	errInvalidNumber   = errors.New("invalid number")
	errUnsupportedType = errors.New("unsupported type")
)

// NewNumber returns a number holding the integer i.
func NewNumber(i int64) Number {
	return Number{val: NewIntFloat(i)}
}

// NewNumberFromBig returns a number holding the integer n.
// The argument is copied and may be mutated afterwards.
func NewNumberFromBig(n *big.Int) Number {
	return Number{val: NewIntFloatFromBig(n)}
}

// NewNumberFromFloat64 returns a number equal to f.
// Whole values demote to the integer representation; everything else is
// a float. A float64 never promotes to a rational, as its value is
// already the result of binary rounding.
func NewNumberFromFloat64(f float64) Number {
	return Number{val: NewIntFloatFromFloat64(f)}
}

// NewNumberFromIntFloat returns a number holding x.
func NewNumberFromIntFloat(x IntFloat) Number {
	return Number{val: x}
}

// NewNumberFromRational returns a number equal to q.
// A whole q demotes to the integer representation; the undefined value
// and proper fractions keep the rational payload. The rational is
// reduced on the way in, so the number's text form is canonical.
func NewNumberFromRational(q Rational) Number {
	return numberFromRational(q)
}

// numberFromRational reduces q and demotes whole values to integers.
func numberFromRational(q Rational) Number {
	r := q.Reduce()
	if r.IsUndef() {
		return Number{form: numRat, rat: r}
	}
	if r.denRef().cmp(bintOne) == 0 {
		n := new(bint)
		n.setBint(r.numRef())
		return Number{val: IntFloat{form: ifInt, num: n}}
	}
	return Number{form: numRat, rat: r}
}

// IsFloat returns true if the floating representation is active.
func (x Number) IsFloat() bool {
	return x.form == numIntFloat && !x.val.IsInt()
}

// IsInt returns true if the integer representation is active.
func (x Number) IsInt() bool {
	return x.form == numIntFloat && x.val.IsInt()
}

// IsRational returns true if the rational representation is active.
func (x Number) IsRational() bool {
	return x.form == numRat
}

// IsUndef returns true if x holds the undefined rational value.
func (x Number) IsUndef() bool {
	return x.form == numRat && x.rat.IsUndef()
}

// IsZero returns true if x == 0.
func (x Number) IsZero() bool {
	if x.form == numRat {
		return x.rat.IsZero()
	}
	return x.val.IsZero()
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0, x is NaN, or x is undefined
//	+1 if x > 0
func (x Number) Sign() int {
	if x.form == numRat {
		return x.rat.Sign()
	}
	return x.val.Sign()
}

// rational returns the exact rational view of x.
// Must not be called on a float-dominant number.
func (x Number) rational() Rational {
	if x.form == numRat {
		return x.rat
	}
	n := new(bint)
	n.setBint(x.val.numRef())
	d := new(bint)
	d.setInt64(1)
	return newRational(n, d)
}

// intFloat returns the IntFloat view of x, converting a rational payload
// through its floating value.
func (x Number) intFloat() IntFloat {
	if x.form == numIntFloat {
		return x.val
	}
	f, _ := x.rat.Float64()
	return IntFloat{form: ifFloat, flt: NewHybridFromFloat64(f)}
}

// exact reports whether x is an integer or a rational, the
// representations that dominance keeps out of floating point.
func (x Number) exact() bool {
	return x.form == numRat || x.val.IsInt()
}

// Add returns the sum of x and y.
// Exact operands produce an exact result: integer when whole, rational
// otherwise. A float operand makes the result a float.
func (x Number) Add(y Number) Number {
	if x.exact() && y.exact() {
		return numberFromRational(x.rational().Add(y.rational()))
	}
	return Number{val: x.intFloat().Add(y.intFloat())}
}

// Sub returns the difference of x and y.
// Representation selection follows [Number.Add].
func (x Number) Sub(y Number) Number {
	if x.exact() && y.exact() {
		return numberFromRational(x.rational().Sub(y.rational()))
	}
	return Number{val: x.intFloat().Sub(y.intFloat())}
}

// Mul returns the product of x and y.
// Representation selection follows [Number.Add].
func (x Number) Mul(y Number) Number {
	if x.exact() && y.exact() {
		return numberFromRational(x.rational().Mul(y.rational()))
	}
	return Number{val: x.intFloat().Mul(y.intFloat())}
}

// Quo returns the quotient of x and y.
// The quotient of exact operands is exact: two integers that divide
// evenly stay integer, and any other exact division yields a rational.
// Exact division by zero yields the undefined value. A float operand
// makes the result a float, where division by zero yields an infinity
// or NaN.
func (x Number) Quo(y Number) Number {
	if x.exact() && y.exact() {
		return numberFromRational(x.rational().Quo(y.rational()))
	}
	return Number{val: x.intFloat().Quo(y.intFloat())}
}

// Rem returns the remainder of x and y under the truncating convention:
// the sign of a non-zero remainder follows the dividend.
func (x Number) Rem(y Number) Number {
	if x.exact() && y.exact() {
		return numberFromRational(x.rational().Rem(y.rational()))
	}
	return Number{val: x.intFloat().Rem(y.intFloat())}
}

// Neg returns x with the opposite sign.
func (x Number) Neg() Number {
	if x.form == numRat {
		return Number{form: numRat, rat: x.rat.Neg()}
	}
	return Number{val: x.val.Neg()}
}

// Pow returns x raised to the power of y.
//
// If both operands are exact and the exponent is a whole number whose
// value and negation both fit the platform int, the power is computed
// exactly: the numerator and denominator of the base are raised
// separately, and a negative exponent inverts the base. A float on
// either side, a fractional exponent, or an exponent at or beyond the
// edge of the platform int range all delegate to the floating
// [IntFloat.Pow].
func (x Number) Pow(y Number) Number {
	if x.exact() && y.exact() {
		e := y.rational().Reduce()
		if e.IsWhole() {
			w := e.truncBint()
			if w.isInt64() && int64(int(w.int64())) == w.int64() && int(w.int64()) != math.MinInt {
				return numberFromRational(x.rational().Pow(int(w.int64())))
			}
		}
	}
	return Number{val: x.intFloat().Pow(y.intFloat())}
}

// Abs returns the absolute value of x.
func (x Number) Abs() Number {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// Exact operands compare by cross-multiplication and never lose
// precision; comparisons involving a float follow [IntFloat.Cmp].
// The undefined value and NaN order below every defined value.
func (x Number) Cmp(y Number) int {
	if x.exact() && y.exact() {
		return x.rational().Cmp(y.rational())
	}
	return x.intFloat().Cmp(y.intFloat())
}

// Equal returns true if x and y represent the same numeric value,
// regardless of representation. The undefined value and NaN are not
// equal to anything, including themselves.
func (x Number) Equal(y Number) bool {
	if x.exact() && y.exact() {
		return x.rational().Equal(y.rational())
	}
	return x.intFloat().Equal(y.intFloat())
}

// Max returns the larger of x and y.
func (x Number) Max(y Number) Number {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns the smaller of x and y.
func (x Number) Min(y Number) Number {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// ParseNumber converts a string to a number.
// Integers parse exactly at any length; "N/D" parses as a rational
// (reduced, with whole values demoted to integers); everything else
// parses per [ParseHybrid].
func ParseNumber(s string) (Number, error) {
	if n, ok := parseBintString(s); ok {
		return Number{val: IntFloat{form: ifInt, num: n}}, nil
	}
	if strings.ContainsRune(s, '/') {
		q, err := ParseRational(s)
		if err != nil {
			return Number{}, fmt.Errorf("parsing %q: %w", s, errInvalidNumber)
		}
		return numberFromRational(q), nil
	}
	h, err := ParseHybrid(s)
	if err != nil {
		return Number{}, fmt.Errorf("parsing %q: %w", s, errInvalidNumber)
	}
	return Number{val: NewIntFloatFromHybrid(h)}, nil
}

// String method implements the [fmt.Stringer] interface.
// Integers format as plain decimal digits, rationals as "N/D", and
// floats per [Hybrid.String].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Number) String() string {
	if x.form == numRat {
		return x.rat.String()
	}
	return x.val.String()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see function [ParseNumber].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Number) UnmarshalText(text []byte) error {
	var err error
	*x, err = ParseNumber(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Number.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Number) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}
