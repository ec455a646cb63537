package numeric

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Hybrid type is a representation of a number that is exact whenever it
// can be, and approximate when it must be.
// The zero value is the numeric value of 0, held in fixed point.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A hybrid holds exactly one of two representations:
//
//   - Fixed point: a base-10 decimal with at most [FixedPrec] significant
//     digits and at most [FixedScale] digits after the decimal point.
//     Exact, but bounded.
//   - Floating point: a float64. Wider range, but subject to binary
//     rounding error.
//
// Construction and arithmetic prefer the fixed representation and fall
// back to floating point only when the fixed range or precision is
// exceeded. The fallback happens internally and is never reported:
// overflowing a fixed-point addition yields a floating-point sum, not an
// error. A hybrid therefore always holds a value, and the only way to
// observe which representation is active is [Hybrid.IsFixed].
type Hybrid struct {
	form  hybridForm
	fixed apd.Decimal
	float float64
}

// hybridForm identifies the active representation of a Hybrid.
type hybridForm uint8

const (
	hybridFixed hybridForm = iota
	hybridFloat
)

const (
	// FixedPrec is the maximum number of significant decimal digits of
	// the fixed-point representation.
	FixedPrec = 29

	// FixedScale is the maximum number of digits after the decimal point
	// of the fixed-point representation. It is also the largest adjusted
	// exponent, so fixed-point values lie in (-10^29, 10^29).
	FixedScale = 28
)

// fixedCtx bounds every fixed-point operation.
// Results that leave these bounds raise conditions which the hybrid
// arithmetic turns into a floating-point fallback.
var fixedCtx = apd.Context{
	Precision:   FixedPrec,
	MaxExponent: FixedScale,
	MinExponent: -FixedScale,
	Rounding:    apd.RoundHalfEven,
}

// fallbackConds are the apd conditions that abandon the fixed-point path.
const fallbackConds = apd.Overflow |
	apd.Underflow |
	apd.Subnormal |
	apd.Inexact |
	apd.Clamped |
	apd.DivisionByZero |
	apd.DivisionImpossible |
	apd.DivisionUndefined |
	apd.InvalidOperation

var errInvalidHybrid = errors.New("invalid number")

// NewHybridFromInt64 returns a hybrid holding i in fixed point.
// Every int64 is exactly representable.
func NewHybridFromInt64(i int64) Hybrid {
	return Hybrid{form: hybridFixed, fixed: *apd.New(i, 0)}
}

// NewHybridFromFloat64 returns a hybrid equal to f.
//
// The conversion to fixed point is strict: f is converted to fixed point
// and back, and the fixed representation is kept only if the round trip
// reproduces f exactly. Otherwise, and for NaN and infinities, the
// floating representation is kept. The fixed path is therefore only ever
// taken when it is lossless.
func NewHybridFromFloat64(f float64) Hybrid {
	if d, ok := fixedFromFloat64(f); ok {
		return Hybrid{form: hybridFixed, fixed: d}
	}
	return Hybrid{form: hybridFloat, float: f}
}

// NewHybridFromDecimal returns a hybrid equal to d.
// A finite d within the fixed bounds is held in fixed point; anything
// else, including NaN and infinite decimals, is held in floating point.
func NewHybridFromDecimal(d apd.Decimal) Hybrid {
	if d.Form == apd.Finite {
		var r apd.Decimal
		cond, err := fixedCtx.Round(&r, &d)
		if err == nil && cond&fallbackConds == 0 {
			return Hybrid{form: hybridFixed, fixed: r}
		}
	}
	f, _ := d.Float64()
	return Hybrid{form: hybridFloat, float: f}
}

// fixedFromFloat64 attempts the strict float64 to fixed-point conversion.
func fixedFromFloat64(f float64) (apd.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return apd.Decimal{}, false
	}
	var d apd.Decimal
	if _, err := d.SetFloat64(f); err != nil {
		return apd.Decimal{}, false
	}
	var r apd.Decimal
	cond, err := fixedCtx.Round(&r, &d)
	if err != nil || cond&fallbackConds != 0 {
		return apd.Decimal{}, false
	}
	back, err := r.Float64()
	if err != nil || back != f {
		return apd.Decimal{}, false
	}
	return r, true
}

// IsFixed returns true if the fixed-point representation is active.
func (x Hybrid) IsFixed() bool {
	return x.form == hybridFixed
}

// IsZero returns true if x == 0.
func (x Hybrid) IsZero() bool {
	if x.form == hybridFixed {
		return x.fixed.IsZero()
	}
	return x.float == 0
}

// IsNaN returns true if x holds a floating-point NaN.
func (x Hybrid) IsNaN() bool {
	return x.form == hybridFloat && math.IsNaN(x.float)
}

// IsInf returns true if x holds a floating-point infinity.
func (x Hybrid) IsInf() bool {
	return x.form == hybridFloat && math.IsInf(x.float, 0)
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0 or x is NaN
//	+1 if x > 0
func (x Hybrid) Sign() int {
	if x.form == hybridFixed {
		return x.fixed.Sign()
	}
	switch {
	case x.float < 0:
		return -1
	case x.float > 0:
		return 1
	}
	return 0
}

// Float64 returns the floating-point view of x.
// For the fixed representation the view is the nearest float64, which
// may be inexact.
func (x Hybrid) Float64() float64 {
	if x.form == hybridFloat {
		return x.float
	}
	f, err := x.fixed.Float64()
	if err != nil {
		// A bounded fixed value always has a float64 neighbour.
		return math.NaN()
	}
	return f
}

// Neg returns x with the opposite sign.
func (x Hybrid) Neg() Hybrid {
	if x.form == hybridFixed {
		var r apd.Decimal
		r.Neg(&x.fixed)
		return Hybrid{form: hybridFixed, fixed: r}
	}
	return Hybrid{form: hybridFloat, float: -x.float}
}

// Abs returns the absolute value of x.
func (x Hybrid) Abs() Hybrid {
	if x.Sign() >= 0 && !x.IsNaN() {
		return x
	}
	return x.Neg()
}

// binary computes a hybrid operation. If both operands are fixed, the
// fixed operation is attempted first; any condition in fallbackConds not
// explicitly allowed switches to the floating operation.
func (x Hybrid) binary(y Hybrid, allow apd.Condition,
	fixedOp func(d, a, b *apd.Decimal) (apd.Condition, error),
	floatOp func(a, b float64) float64,
) Hybrid {
	if x.form == hybridFixed && y.form == hybridFixed {
		var r apd.Decimal
		cond, err := fixedOp(&r, &x.fixed, &y.fixed)
		if err == nil && cond&fallbackConds&^allow == 0 {
			return Hybrid{form: hybridFixed, fixed: r}
		}
	}
	return Hybrid{form: hybridFloat, float: floatOp(x.Float64(), y.Float64())}
}

// Add returns the sum of x and y.
// The sum is fixed if both operands are fixed and the exact sum fits the
// fixed range; otherwise it is floating.
func (x Hybrid) Add(y Hybrid) Hybrid {
	return x.binary(y, 0, fixedCtx.Add, func(a, b float64) float64 { return a + b })
}

// Sub returns the difference of x and y.
// Representation selection follows [Hybrid.Add].
func (x Hybrid) Sub(y Hybrid) Hybrid {
	return x.binary(y, 0, fixedCtx.Sub, func(a, b float64) float64 { return a - b })
}

// Mul returns the product of x and y.
// Representation selection follows [Hybrid.Add].
func (x Hybrid) Mul(y Hybrid) Hybrid {
	return x.binary(y, 0, fixedCtx.Mul, func(a, b float64) float64 { return a * b })
}

// Quo returns the quotient of x and y.
// A fixed quotient may be rounded to [FixedPrec] digits; quotients whose
// magnitude leaves the fixed range, and division by zero, fall back to
// floating point, where division by zero yields an infinity or NaN.
func (x Hybrid) Quo(y Hybrid) Hybrid {
	return x.binary(y, apd.Inexact, fixedCtx.Quo, func(a, b float64) float64 { return a / b })
}

// Rem returns the remainder of integer division of x by y, with the sign
// of x. Remainders that cannot be computed in fixed point fall back to
// [math.Mod].
func (x Hybrid) Rem(y Hybrid) Hybrid {
	return x.binary(y, 0, fixedCtx.Rem, math.Mod)
}

// Pow returns x raised to the power of y, computed in floating point.
// Exact exponentiation of fixed operands is the concern of the types
// above Hybrid in the tower, which only delegate here when the floating
// semantics are wanted.
func (x Hybrid) Pow(y Hybrid) Hybrid {
	return Hybrid{form: hybridFloat, float: math.Pow(x.Float64(), y.Float64())}
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// If exactly one operand is floating, Cmp first attempts the strict
// fixed-point conversion of that operand so that two exact values are
// compared exactly; only if the conversion fails are both operands
// compared as float64.
// NaN is ordered below every other value, and two NaNs compare as 0.
// Use [Hybrid.Equal] for NaN-like equality semantics.
func (x Hybrid) Cmp(y Hybrid) int {
	// Special case: NaN operands
	switch {
	case x.IsNaN() && y.IsNaN():
		return 0
	case x.IsNaN():
		return -1
	case y.IsNaN():
		return 1
	}

	// Cross-variant operands: try to regain exactness
	if x.form == hybridFloat && y.form == hybridFixed {
		if d, ok := fixedFromFloat64(x.float); ok {
			return d.Cmp(&y.fixed)
		}
	}
	if x.form == hybridFixed && y.form == hybridFloat {
		if d, ok := fixedFromFloat64(y.float); ok {
			return x.fixed.Cmp(&d)
		}
	}

	if x.form == hybridFixed && y.form == hybridFixed {
		return x.fixed.Cmp(&y.fixed)
	}

	// Floating comparison
	a, b := x.Float64(), y.Float64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal returns true if x and y represent the same numeric value,
// regardless of representation. NaN is not equal to anything,
// including itself.
func (x Hybrid) Equal(y Hybrid) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return x.Cmp(y) == 0
}

// ParseHybrid converts a string to a hybrid.
//
// Both representations are attempted. If the fixed-point and the
// floating-point parse both succeed and agree numerically, the exact
// fixed-point result is preferred. If only one succeeds, it is used:
// "NaN", "Inf" and values beyond the fixed range parse as floating
// point. If neither succeeds, an error is returned.
func ParseHybrid(s string) (Hybrid, error) {
	d, fixedOK := parseFixedString(s)
	f, ferr := strconv.ParseFloat(s, 64)
	switch {
	case fixedOK && ferr == nil:
		if df, err := d.Float64(); err == nil && df == f {
			return Hybrid{form: hybridFixed, fixed: d}, nil
		}
		return Hybrid{form: hybridFloat, float: f}, nil
	case fixedOK:
		return Hybrid{form: hybridFixed, fixed: d}, nil
	case ferr == nil:
		return Hybrid{form: hybridFloat, float: f}, nil
	}
	return Hybrid{}, fmt.Errorf("parsing %q: %w", s, errInvalidHybrid)
}

// parseFixedString parses s as an exactly representable fixed-point
// decimal. Values that are not finite or do not fit the fixed bounds
// without loss are rejected.
func parseFixedString(s string) (apd.Decimal, bool) {
	d, cond, err := apd.NewFromString(s)
	if err != nil || cond != 0 || d.Form != apd.Finite {
		return apd.Decimal{}, false
	}
	var r apd.Decimal
	cond, err = fixedCtx.Round(&r, d)
	if err != nil || cond&fallbackConds != 0 {
		return apd.Decimal{}, false
	}
	return r, true
}

// String method implements the [fmt.Stringer] interface and returns the
// canonical textual form of whichever representation is active: plain
// decimal notation for fixed point, and the shortest round-trippable
// form for floating point.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Hybrid) String() string {
	if x.form == hybridFixed {
		return x.fixed.Text('f')
	}
	return strconv.FormatFloat(x.float, 'g', -1, 64)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see function [ParseHybrid].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Hybrid) UnmarshalText(text []byte) error {
	var err error
	*x, err = ParseHybrid(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Hybrid.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Hybrid) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}
