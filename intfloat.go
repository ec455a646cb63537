package numeric

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// IntFloat type is a representation of a number that is an
// arbitrary-precision integer whenever it can be.
// The zero value is the integer 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// An IntFloat holds exactly one of two representations:
//
//   - Integer: an arbitrary-precision integer. Always exact.
//   - Float: a [Hybrid], used for values with a fractional part and for
//     magnitudes beyond any practical integer.
//
// Construction and arithmetic prefer the integer representation whenever
// the value is a whole number that is exactly known. Dividing two
// integers stays integer only when the division is even; otherwise the
// result moves to the float representation and exactness is lost.
// (Contrast with [Number], which promotes uneven integer division to an
// exact [Rational] instead.)
type IntFloat struct {
	form ifForm
	num  *bint // nil is 0
	flt  Hybrid
}

// ifForm identifies the active representation of an IntFloat.
type ifForm uint8

const (
	ifInt ifForm = iota
	ifFloat
)

// NewIntFloat returns an IntFloat holding the integer i.
func NewIntFloat(i int64) IntFloat {
	n := new(bint)
	n.setInt64(i)
	return IntFloat{form: ifInt, num: n}
}

// NewIntFloatFromBig returns an IntFloat holding the integer n.
// The argument is copied and may be mutated afterwards.
// A nil argument is treated as 0.
func NewIntFloatFromBig(n *big.Int) IntFloat {
	z := new(bint)
	if n != nil {
		z.setBig(n)
	}
	return IntFloat{form: ifInt, num: z}
}

// NewIntFloatFromHybrid returns an IntFloat equal to x.
// A fixed-point x holding a whole number demotes to the exact integer
// representation; everything else keeps x as the float variant.
func NewIntFloatFromHybrid(x Hybrid) IntFloat {
	if x.form == hybridFixed {
		if n, ok := bintFromFixed(x.fixed); ok {
			return IntFloat{form: ifInt, num: n}
		}
	}
	return IntFloat{form: ifFloat, flt: x}
}

// NewIntFloatFromFloat64 returns an IntFloat equal to f,
// demoting whole values to the integer representation.
func NewIntFloatFromFloat64(f float64) IntFloat {
	return NewIntFloatFromHybrid(NewHybridFromFloat64(f))
}

// bintFromFixed converts a fixed-point decimal holding a whole number to
// an integer. It reports false if d has a fractional part.
func bintFromFixed(d apd.Decimal) (*bint, bool) {
	if d.Exponent < 0 {
		var r apd.Decimal
		cond, err := fixedCtx.RoundToIntegralExact(&r, &d)
		if err != nil || cond&apd.Inexact != 0 {
			return nil, false
		}
		d = r
	}
	n := new(bint)
	n.setBig(d.Coeff.MathBigInt())
	if d.Exponent > 0 {
		n.lsh(n, int(d.Exponent))
	}
	if d.Negative {
		n.neg(n)
	}
	return n, true
}

// hybridFromBint converts an integer to a hybrid: fixed point when the
// integer fits the fixed bounds, floating point otherwise.
func hybridFromBint(n *bint) Hybrid {
	d, cond, err := apd.NewFromString(n.string())
	if err == nil && cond == 0 {
		return NewHybridFromDecimal(*d)
	}
	return Hybrid{form: hybridFloat, float: n.float64()}
}

// numRef returns a read-only view of the integer payload.
func (x IntFloat) numRef() *bint {
	if x.num == nil {
		return bintZero
	}
	return x.num
}

// IsInt returns true if the integer representation is active.
func (x IntFloat) IsInt() bool {
	return x.form == ifInt
}

// IsZero returns true if x == 0.
func (x IntFloat) IsZero() bool {
	if x.form == ifInt {
		return x.numRef().isZero()
	}
	return x.flt.IsZero()
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0 or x is NaN
//	+1 if x > 0
func (x IntFloat) Sign() int {
	if x.form == ifInt {
		return x.numRef().sign()
	}
	return x.flt.Sign()
}

// Hybrid returns the float-variant view of x.
// For integers beyond the fixed-point bounds the view is the nearest
// float64, which may be inexact.
func (x IntFloat) Hybrid() Hybrid {
	if x.form == ifFloat {
		return x.flt
	}
	return hybridFromBint(x.numRef())
}

// Add returns the sum of x and y.
// The sum of two integers is an exact integer; otherwise the operands
// are added as hybrids and a whole result demotes back to integer.
func (x IntFloat) Add(y IntFloat) IntFloat {
	if x.form == ifInt && y.form == ifInt {
		z := new(bint)
		z.add(x.numRef(), y.numRef())
		return IntFloat{form: ifInt, num: z}
	}
	return NewIntFloatFromHybrid(x.Hybrid().Add(y.Hybrid()))
}

// Sub returns the difference of x and y.
// Representation selection follows [IntFloat.Add].
func (x IntFloat) Sub(y IntFloat) IntFloat {
	if x.form == ifInt && y.form == ifInt {
		z := new(bint)
		z.sub(x.numRef(), y.numRef())
		return IntFloat{form: ifInt, num: z}
	}
	return NewIntFloatFromHybrid(x.Hybrid().Sub(y.Hybrid()))
}

// Mul returns the product of x and y.
// Representation selection follows [IntFloat.Add].
func (x IntFloat) Mul(y IntFloat) IntFloat {
	if x.form == ifInt && y.form == ifInt {
		z := new(bint)
		z.mul(x.numRef(), y.numRef())
		return IntFloat{form: ifInt, num: z}
	}
	return NewIntFloatFromHybrid(x.Hybrid().Mul(y.Hybrid()))
}

// Quo returns the quotient of x and y.
// Integer division stays integer only when the remainder is zero;
// an uneven quotient promotes to the float representation.
// Division by zero follows the hybrid rules and yields an infinity
// or NaN, never an error.
func (x IntFloat) Quo(y IntFloat) IntFloat {
	if x.form == ifInt && y.form == ifInt && !y.numRef().isZero() {
		q := new(bint)
		r := getBint()
		defer putBint(r)
		q.quoRem(x.numRef(), y.numRef(), r)
		if r.isZero() {
			return IntFloat{form: ifInt, num: q}
		}
	}
	return NewIntFloatFromHybrid(x.Hybrid().Quo(y.Hybrid()))
}

// Rem returns the remainder of x and y under the truncating convention:
// the sign of a non-zero remainder follows the dividend.
func (x IntFloat) Rem(y IntFloat) IntFloat {
	if x.form == ifInt && y.form == ifInt && !y.numRef().isZero() {
		z := new(bint)
		z.rem(x.numRef(), y.numRef())
		return IntFloat{form: ifInt, num: z}
	}
	return NewIntFloatFromHybrid(x.Hybrid().Rem(y.Hybrid()))
}

// Neg returns x with the opposite sign.
func (x IntFloat) Neg() IntFloat {
	if x.form == ifInt {
		z := new(bint)
		z.neg(x.numRef())
		return IntFloat{form: ifInt, num: z}
	}
	return IntFloat{form: ifFloat, flt: x.flt.Neg()}
}

// Pow returns x raised to the power of y.
//
// An integer base with a non-negative integer exponent is raised
// exactly, no matter how large the result: 2 to the 600th power is an
// exact 181-digit integer. A negative exponent, or a float operand on
// either side, computes in floating point. An exponent whose magnitude
// does not fit the platform int degenerates to a signed infinity, with
// the sign determined by the sign of the base and the parity of the
// exponent (trivial bases 0, 1 and -1 keep their trivial powers).
func (x IntFloat) Pow(y IntFloat) IntFloat {
	if x.form == ifInt && y.form == ifInt {
		e := y.numRef()
		if !e.isInt64() || e.int64() > math.MaxInt || e.int64() < math.MinInt {
			return powHugeExp(x.numRef(), e)
		}
		if e.sign() >= 0 {
			z := new(bint)
			z.exp(x.numRef(), e)
			return IntFloat{form: ifInt, num: z}
		}
	}
	return NewIntFloatFromHybrid(x.Hybrid().Pow(y.Hybrid()))
}

// powHugeExp resolves base^exp for exponents beyond the platform int
// range, where computing digits is hopeless and only the limit matters.
func powHugeExp(base, exp *bint) IntFloat {
	neg := base.sign() < 0 && exp.isOdd()

	// Trivial bases
	switch {
	case base.isZero():
		if exp.sign() < 0 {
			return NewIntFloatFromFloat64(math.Inf(1))
		}
		return NewIntFloat(0)
	case base.cmpAbs(bintOne) == 0:
		if neg {
			return NewIntFloat(-1)
		}
		return NewIntFloat(1)
	}

	// |base| > 1
	if exp.sign() < 0 {
		f := 0.0
		if neg {
			f = math.Copysign(0, -1)
		}
		return NewIntFloatFromFloat64(f)
	}
	f := math.Inf(1)
	if neg {
		f = math.Inf(-1)
	}
	return NewIntFloatFromFloat64(f)
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// Two integers compare exactly; mixed comparisons route through the
// float view, which regains exactness where the hybrid comparison can.
// NaN ordering follows [Hybrid.Cmp].
func (x IntFloat) Cmp(y IntFloat) int {
	if x.form == ifInt && y.form == ifInt {
		return x.numRef().cmp(y.numRef())
	}
	return x.Hybrid().Cmp(y.Hybrid())
}

// Equal returns true if x and y represent the same numeric value,
// regardless of representation. NaN is not equal to anything,
// including itself.
func (x IntFloat) Equal(y IntFloat) bool {
	if x.form == ifInt && y.form == ifInt {
		return x.numRef().cmp(y.numRef()) == 0
	}
	return x.Hybrid().Equal(y.Hybrid())
}

// ParseIntFloat converts a string to an IntFloat.
// A string of decimal digits with an optional sign parses as an exact
// integer of any length. Everything else parses per [ParseHybrid], with
// whole results demoted to the integer representation.
func ParseIntFloat(s string) (IntFloat, error) {
	if n, ok := parseBintString(s); ok {
		return IntFloat{form: ifInt, num: n}, nil
	}
	h, err := ParseHybrid(s)
	if err != nil {
		return IntFloat{}, err
	}
	return NewIntFloatFromHybrid(h), nil
}

// String method implements the [fmt.Stringer] interface.
// Integers format as plain decimal digits; floats format per
// [Hybrid.String].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x IntFloat) String() string {
	if x.form == ifInt {
		return x.numRef().string()
	}
	return x.flt.String()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see function [ParseIntFloat].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *IntFloat) UnmarshalText(text []byte) error {
	var err error
	*x, err = ParseIntFloat(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [IntFloat.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x IntFloat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}
