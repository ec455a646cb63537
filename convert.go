package numeric

import (
	"fmt"
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// This file is the conversion surface of the tower. All conversions are
// named functions or methods; there are no implicit conversions, so the
// cost and the possible loss of a conversion stay visible at every call
// site. Narrowing conversions truncate towards zero. Conversions to
// machine integers report failure instead of wrapping around, and
// smaller widths are the caller's plain Go conversion from the int64 or
// uint64 endpoint.

// Float64 returns the nearest float64 to q, and true if the conversion
// is exact. The undefined value converts to NaN.
func (q Rational) Float64() (float64, bool) {
	if q.IsUndef() {
		return math.NaN(), false
	}
	f, exact := new(big.Rat).SetFrac(q.numRef().big(), q.denRef().big()).Float64()
	return f, exact
}

// Int64 returns q truncated towards zero, and true if the truncated
// value fits in an int64.
func (q Rational) Int64() (int64, bool) {
	if q.IsUndef() {
		return 0, false
	}
	w := q.truncBint()
	if !w.isInt64() {
		return 0, false
	}
	return w.int64(), true
}

// Uint64 returns q truncated towards zero, and true if the truncated
// value fits in a uint64.
func (q Rational) Uint64() (uint64, bool) {
	if q.IsUndef() {
		return 0, false
	}
	w := q.truncBint()
	if !w.isUint64() {
		return 0, false
	}
	return w.uint64(), true
}

// BigInt returns q truncated towards zero.
// It reports false for the undefined value.
func (q Rational) BigInt() (*big.Int, bool) {
	if q.IsUndef() {
		return nil, false
	}
	return q.truncBint().big(), true
}

// Decimal returns q as a fixed-point decimal, and true if the
// conversion is exact within the fixed bounds.
func (q Rational) Decimal() (apd.Decimal, bool) {
	if q.IsUndef() {
		return apd.Decimal{}, false
	}
	n, _, err := apd.NewFromString(q.numRef().string())
	if err != nil {
		return apd.Decimal{}, false
	}
	d, _, err := apd.NewFromString(q.denRef().string())
	if err != nil {
		return apd.Decimal{}, false
	}
	var r apd.Decimal
	cond, err := fixedCtx.Quo(&r, n, d)
	if err != nil || cond&fallbackConds != 0 {
		return apd.Decimal{}, false
	}
	return r, true
}

// Hybrid returns q as a hybrid: fixed point when the exact decimal
// expansion of q fits the fixed bounds, floating point otherwise.
// The undefined value converts to a floating NaN.
func (q Rational) Hybrid() Hybrid {
	if d, ok := q.Decimal(); ok {
		return Hybrid{form: hybridFixed, fixed: d}
	}
	f, _ := q.Float64()
	return Hybrid{form: hybridFloat, float: f}
}

// IntFloat returns q as an IntFloat: an exact integer when q is whole,
// the hybrid view otherwise.
func (q Rational) IntFloat() IntFloat {
	if q.IsWhole() {
		return IntFloat{form: ifInt, num: q.truncBint()}
	}
	return NewIntFloatFromHybrid(q.Hybrid())
}

// Number returns q lifted to the top of the tower, reduced, with whole
// values demoted to integers.
func (q Rational) Number() Number {
	return numberFromRational(q)
}

// Rational returns the exact rational value of x.
// It reports false for NaN and infinities, which have no rational value.
func (x Hybrid) Rational() (Rational, bool) {
	if x.form == hybridFixed {
		q, err := NewRationalFromDecimal(x.fixed)
		if err != nil {
			return Rational{}, false
		}
		return q, true
	}
	q, err := NewRationalFromFloat64(x.float)
	if err != nil {
		return Rational{}, false
	}
	return q, true
}

// Int64 returns x truncated towards zero, and true if the truncated
// value fits in an int64.
func (x Hybrid) Int64() (int64, bool) {
	q, ok := x.Rational()
	if !ok {
		return 0, false
	}
	return q.Int64()
}

// Uint64 returns x truncated towards zero, and true if the truncated
// value fits in a uint64.
func (x Hybrid) Uint64() (uint64, bool) {
	q, ok := x.Rational()
	if !ok {
		return 0, false
	}
	return q.Uint64()
}

// BigInt returns x truncated towards zero.
// It reports false for NaN and infinities.
func (x Hybrid) BigInt() (*big.Int, bool) {
	q, ok := x.Rational()
	if !ok {
		return nil, false
	}
	return q.BigInt()
}

// Decimal returns the fixed-point value of x, attempting the strict
// conversion when the floating representation is active.
func (x Hybrid) Decimal() (apd.Decimal, bool) {
	if x.form == hybridFixed {
		var r apd.Decimal
		r.Set(&x.fixed)
		return r, true
	}
	return fixedFromFloat64(x.float)
}

// IntFloat returns x lifted into the integer-or-float union, with whole
// fixed values demoted to exact integers.
func (x Hybrid) IntFloat() IntFloat {
	return NewIntFloatFromHybrid(x)
}

// Number returns x lifted to the top of the tower.
func (x Hybrid) Number() Number {
	return Number{val: NewIntFloatFromHybrid(x)}
}

// Float64 returns the floating-point view of x.
// An integer beyond the float64 range converts to an infinity.
func (x IntFloat) Float64() float64 {
	if x.form == ifInt {
		return x.numRef().float64()
	}
	return x.flt.Float64()
}

// Int64 returns x truncated towards zero, and true if the truncated
// value fits in an int64.
func (x IntFloat) Int64() (int64, bool) {
	if x.form == ifInt {
		if !x.numRef().isInt64() {
			return 0, false
		}
		return x.numRef().int64(), true
	}
	return x.flt.Int64()
}

// Uint64 returns x truncated towards zero, and true if the truncated
// value fits in a uint64.
func (x IntFloat) Uint64() (uint64, bool) {
	if x.form == ifInt {
		if !x.numRef().isUint64() {
			return 0, false
		}
		return x.numRef().uint64(), true
	}
	return x.flt.Uint64()
}

// BigInt returns x truncated towards zero.
// It reports false for NaN and infinities.
// The returned value is a copy and may be mutated.
func (x IntFloat) BigInt() (*big.Int, bool) {
	if x.form == ifInt {
		return new(big.Int).Set(x.numRef().big()), true
	}
	return x.flt.BigInt()
}

// Rational returns the exact rational value of x.
// It reports false for NaN and infinities.
func (x IntFloat) Rational() (Rational, bool) {
	if x.form == ifInt {
		n := new(bint)
		n.setBint(x.numRef())
		d := new(bint)
		d.setInt64(1)
		return newRational(n, d), true
	}
	return x.flt.Rational()
}

// Decimal returns x as a fixed-point decimal, and true if the
// conversion is exact within the fixed bounds.
func (x IntFloat) Decimal() (apd.Decimal, bool) {
	return x.Hybrid().Decimal()
}

// Number returns x lifted to the top of the tower.
func (x IntFloat) Number() Number {
	return Number{val: x}
}

// Float64 returns the floating-point view of x.
// The undefined value converts to NaN.
func (x Number) Float64() float64 {
	if x.form == numRat {
		f, _ := x.rat.Float64()
		return f
	}
	return x.val.Float64()
}

// Int64 returns x truncated towards zero, and true if the truncated
// value fits in an int64.
func (x Number) Int64() (int64, bool) {
	if x.form == numRat {
		return x.rat.Int64()
	}
	return x.val.Int64()
}

// Uint64 returns x truncated towards zero, and true if the truncated
// value fits in a uint64.
func (x Number) Uint64() (uint64, bool) {
	if x.form == numRat {
		return x.rat.Uint64()
	}
	return x.val.Uint64()
}

// BigInt returns x truncated towards zero.
// It reports false for NaN, infinities and the undefined value.
func (x Number) BigInt() (*big.Int, bool) {
	if x.form == numRat {
		return x.rat.BigInt()
	}
	return x.val.BigInt()
}

// Rational returns the exact rational value of x.
// It reports false for NaN and infinities.
func (x Number) Rational() (Rational, bool) {
	if x.form == numRat {
		return x.rat, true
	}
	return x.val.Rational()
}

// IntFloat returns the integer-or-float view of x.
// A rational payload converts through its floating value, losing
// exactness; this is the lattice's one deliberately lossy edge and it
// is only taken on request.
func (x Number) IntFloat() IntFloat {
	return x.intFloat()
}

// Hybrid returns the hybrid view of x.
func (x Number) Hybrid() Hybrid {
	return x.intFloat().Hybrid()
}

// Decimal returns x as a fixed-point decimal, and true if the
// conversion is exact within the fixed bounds.
func (x Number) Decimal() (apd.Decimal, bool) {
	if x.form == numRat {
		return x.rat.Decimal()
	}
	return x.val.Decimal()
}

// NumberOf converts a value of any supported dynamic type to a Number.
// Supported types are the Go machine numbers, strings in any format
// accepted by [ParseNumber], big and fixed-point integers and decimals,
// and every type of the tower itself.
//
// NumberOf returns an error wrapping errUnsupportedType for anything
// else; unlike the silent promotions inside the tower, feeding it an
// unsupported type is a caller bug, not a numeric condition.
func NumberOf(v any) (Number, error) {
	switch n := v.(type) {
	case int:
		return NewNumber(int64(n)), nil
	case int8:
		return NewNumber(int64(n)), nil
	case int16:
		return NewNumber(int64(n)), nil
	case int32:
		return NewNumber(int64(n)), nil
	case int64:
		return NewNumber(n), nil
	case uint:
		return NewNumberFromBig(new(big.Int).SetUint64(uint64(n))), nil
	case uint8:
		return NewNumber(int64(n)), nil
	case uint16:
		return NewNumber(int64(n)), nil
	case uint32:
		return NewNumber(int64(n)), nil
	case uint64:
		return NewNumberFromBig(new(big.Int).SetUint64(n)), nil
	case float32:
		return NewNumberFromFloat64(float64(n)), nil
	case float64:
		return NewNumberFromFloat64(n), nil
	case string:
		return ParseNumber(n)
	case *big.Int:
		return NewNumberFromBig(n), nil
	case apd.Decimal:
		return NewHybridFromDecimal(n).Number(), nil
	case *apd.Decimal:
		return NewHybridFromDecimal(*n).Number(), nil
	case Rational:
		return numberFromRational(n), nil
	case Expr:
		return numberFromRational(n.Rational()), nil
	case Hybrid:
		return n.Number(), nil
	case IntFloat:
		return n.Number(), nil
	case Number:
		return n, nil
	}
	return Number{}, fmt.Errorf("converting %T: %w", v, errUnsupportedType)
}
