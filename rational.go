package numeric

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Rational type is a representation of an arbitrary-precision fraction.
// The zero value is the numeric value of 0, represented as 0/1.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A rational is a pair of arbitrary-precision integers:
//
//   - Numerator: carries the combined sign after [Rational.NormalizeSign].
//   - Denominator: zero only for the undefined value (see below).
//
// Rationals are not kept in lowest terms between operations.
// Arithmetic returns unreduced results, so 1/2 + 1/2 is 2/2, not 1.
// Call [Rational.Reduce] to obtain the canonical form, in which the
// numerator and denominator are coprime and the denominator is positive.
// Comparison and equality never depend on the representation, only on
// the numeric value.
//
// A rational with a zero denominator is the undefined value.
// Undefined propagates through arithmetic like a quiet NaN: it is never
// equal to anything, including itself, and [Rational.Cmp] orders it below
// every defined value to keep sorting total.
type Rational struct {
	num *bint // nil is 0
	den *bint // nil is 1
}

var (
	errInvalidRational = errors.New("invalid rational")
	errInvalidFloat    = errors.New("invalid floating-point value")
)

// newRational assembles a rational from owned *bint values.
// The arguments must not be retained or mutated by the caller.
func newRational(num, den *bint) Rational {
	return Rational{num: num, den: den}
}

// NewRational returns a rational equal to num / den.
// The result is not reduced, so NewRational(4, 2) is 4/2, not 2.
// NewRational(n, 0) returns the undefined value for any n.
func NewRational(num, den int64) Rational {
	n := new(bint)
	n.setInt64(num)
	d := new(bint)
	d.setInt64(den)
	return newRational(n, d)
}

// NewRationalFromBig returns a rational equal to num / den.
// The arguments are copied and may be mutated afterwards.
// A nil numerator is treated as 0 and a nil denominator as 1.
func NewRationalFromBig(num, den *big.Int) Rational {
	var n, d *bint
	if num != nil {
		n = new(bint)
		n.setBig(num)
	}
	if den != nil {
		d = new(bint)
		d.setBig(den)
	}
	return newRational(n, d)
}

// undefRational returns the canonical undefined value 0/0.
func undefRational() Rational {
	return newRational(new(bint), new(bint))
}

// numRef returns a read-only view of the numerator.
func (q Rational) numRef() *bint {
	if q.num == nil {
		return bintZero
	}
	return q.num
}

// denRef returns a read-only view of the denominator.
func (q Rational) denRef() *bint {
	if q.den == nil {
		return bintOne
	}
	return q.den
}

var (
	bintZero = mustParseBint("0")
	bintOne  = mustParseBint("1")
)

// Num returns the numerator of q.
// The returned value is a copy and may be mutated.
func (q Rational) Num() *big.Int {
	return new(big.Int).Set(q.numRef().big())
}

// Den returns the denominator of q.
// The returned value is a copy and may be mutated.
func (q Rational) Den() *big.Int {
	return new(big.Int).Set(q.denRef().big())
}

// IsUndef returns true if q is the undefined value.
func (q Rational) IsUndef() bool {
	return q.denRef().isZero()
}

// IsZero returns true if q == 0.
// The undefined value is not zero.
func (q Rational) IsZero() bool {
	return q.numRef().isZero() && !q.IsUndef()
}

// IsWhole returns true if q is an integer.
// The undefined value is not whole.
func (q Rational) IsWhole() bool {
	if q.IsUndef() {
		return false
	}
	r := getBint()
	defer putBint(r)
	r.rem(q.numRef(), q.denRef())
	return r.isZero()
}

// Sign returns:
//
//	-1 if q < 0
//	 0 if q == 0 or q is undefined
//	+1 if q > 0
func (q Rational) Sign() int {
	return q.numRef().sign() * q.denRef().sign()
}

// NormalizeSign returns q with the combined sign moved onto the numerator,
// so that the denominator is non-negative.
// Unlike [Rational.Reduce] it does not divide by the GCD, so the numeric
// value and the magnitude of both parts are unchanged.
func (q Rational) NormalizeSign() Rational {
	if q.denRef().sign() >= 0 {
		return q
	}
	n := new(bint)
	n.neg(q.numRef())
	d := new(bint)
	d.neg(q.denRef())
	return newRational(n, d)
}

// Reduce returns q in canonical form: the numerator and denominator are
// divided by their GCD, and the sign is carried by the numerator.
//
// Two values have dedicated canonical forms:
//
//   - zero reduces to 0/1;
//   - the undefined value reduces to 0/0.
//
// Reduce is idempotent.
func (q Rational) Reduce() Rational {
	// Special case: undefined
	if q.IsUndef() {
		return undefRational()
	}

	// Special case: zero numerator
	if q.numRef().isZero() {
		return Rational{}
	}

	// General case
	q = q.NormalizeSign()
	g := getBint()
	defer putBint(g)
	g.gcd(q.numRef(), q.denRef())
	n := new(bint)
	n.quo(q.numRef(), g)
	d := new(bint)
	d.quo(q.denRef(), g)
	return newRational(n, d)
}

// Add returns the unreduced sum of q and r.
// If either operand is undefined, the result is undefined.
func (q Rational) Add(r Rational) Rational {
	if q.IsUndef() || r.IsUndef() {
		return undefRational()
	}
	q = q.NormalizeSign()
	r = r.NormalizeSign()

	// Fast path: equal denominators
	if q.denRef().cmp(r.denRef()) == 0 {
		n := new(bint)
		n.add(q.numRef(), r.numRef())
		d := new(bint)
		d.setBint(q.denRef())
		return newRational(n, d)
	}

	// General case: cross-multiplication
	n := new(bint)
	n.mul(q.numRef(), r.denRef())
	t := getBint()
	defer putBint(t)
	t.mul(r.numRef(), q.denRef())
	n.add(n, t)
	d := new(bint)
	d.mul(q.denRef(), r.denRef())
	return newRational(n, d)
}

// Sub returns the unreduced difference of q and r.
// If either operand is undefined, the result is undefined.
func (q Rational) Sub(r Rational) Rational {
	return q.Add(r.Neg())
}

// Mul returns the unreduced product of q and r.
// If either operand is undefined, the result is undefined.
func (q Rational) Mul(r Rational) Rational {
	n := new(bint)
	n.mul(q.numRef(), r.numRef())
	d := new(bint)
	d.mul(q.denRef(), r.denRef())
	return newRational(n, d)
}

// Quo returns the unreduced quotient of q and r.
// Division by zero yields the undefined value, not an error.
func (q Rational) Quo(r Rational) Rational {
	if q.IsUndef() || r.IsUndef() {
		return undefRational()
	}
	n := new(bint)
	n.mul(q.numRef(), r.denRef())
	d := new(bint)
	d.mul(q.denRef(), r.numRef())
	return newRational(n, d)
}

// Rem returns the remainder of q and r under the truncating convention:
//
//	q.Rem(r) = q - q.Quo(r).Trunc() * r
//
// The sign of the result follows the dividend, matching Go's % operator,
// so 50/1 rem 9/1 is 5 and -50/1 rem 9/1 is -5.
func (q Rational) Rem(r Rational) Rational {
	if q.IsUndef() || r.IsUndef() || r.numRef().isZero() {
		return undefRational()
	}
	w := q.Quo(r).Trunc()
	return q.Sub(w.Mul(r))
}

// Pow returns q raised to the power of exp.
// The numerator and denominator are raised separately, so the result of an
// exact operand is exact. A negative exponent inverts q and raises it to
// the absolute exponent. q.Pow(0) is 1/1 for every defined q.
func (q Rational) Pow(exp int) Rational {
	if q.IsUndef() {
		return undefRational()
	}

	// Special case: zero exponent
	if exp == 0 {
		return NewRational(1, 1)
	}

	// Negative exponent: invert the base
	// The negation is done on the big integer, as -exp overflows
	// when exp is the smallest int.
	num, den := q.numRef(), q.denRef()
	e := getBint()
	defer putBint(e)
	e.setInt64(int64(exp))
	if exp < 0 {
		num, den = den, num
		e.neg(e)
	}
	n := new(bint)
	n.exp(num, e)
	d := new(bint)
	d.exp(den, e)
	return newRational(n, d)
}

// Neg returns q with the opposite sign.
func (q Rational) Neg() Rational {
	n := new(bint)
	n.neg(q.numRef())
	d := new(bint)
	d.setBint(q.denRef())
	return newRational(n, d)
}

// Abs returns the absolute value of q.
// Both the numerator and the denominator come out non-negative.
func (q Rational) Abs() Rational {
	n := new(bint)
	n.abs(q.numRef())
	d := new(bint)
	d.abs(q.denRef())
	return newRational(n, d)
}

// Inc returns the unreduced sum q + 1.
func (q Rational) Inc() Rational {
	return q.Add(NewRational(1, 1))
}

// Dec returns the unreduced difference q - 1.
func (q Rational) Dec() Rational {
	return q.Sub(NewRational(1, 1))
}

// truncBint returns the integer part of q truncated towards zero.
func (q Rational) truncBint() *bint {
	w := new(bint)
	w.quo(q.numRef(), q.denRef())
	return w
}

// Trunc returns the integer part of q, rounded towards zero.
func (q Rational) Trunc() Rational {
	if q.IsUndef() {
		return undefRational()
	}
	d := new(bint)
	d.setInt64(1)
	return newRational(q.truncBint(), d)
}

// Floor returns the largest integer value less than or equal to q.
func (q Rational) Floor() Rational {
	if q.IsUndef() {
		return undefRational()
	}
	w := q.Trunc()
	if q.Sign() < 0 && !q.IsWhole() {
		w = w.Dec()
	}
	return w
}

// Ceil returns the smallest integer value greater than or equal to q.
func (q Rational) Ceil() Rational {
	if q.IsUndef() {
		return undefRational()
	}
	w := q.Trunc()
	if q.Sign() > 0 && !q.IsWhole() {
		w = w.Inc()
	}
	return w
}

// Align returns q and r scaled to the common denominator
// |q.Den() * r.Den()|, preserving the value and sign of each.
// Neither result is reduced.
// If either operand is undefined, both results are undefined.
func Align(q, r Rational) (Rational, Rational) {
	if q.IsUndef() || r.IsUndef() {
		return undefRational(), undefRational()
	}
	q = q.NormalizeSign()
	r = r.NormalizeSign()

	qn := new(bint)
	qn.mul(q.numRef(), r.denRef())
	qd := new(bint)
	qd.mul(q.denRef(), r.denRef())
	rn := new(bint)
	rn.mul(r.numRef(), q.denRef())
	rd := new(bint)
	rd.setBint(qd)
	return newRational(qn, qd), newRational(rn, rd)
}

// Cmp compares q and r numerically and returns:
//
//	-1 if q < r
//	 0 if q == r
//	+1 if q > r
//
// The comparison cross-multiplies the operands and never converts to
// floating point, so it is exact for any magnitude.
// The undefined value is ordered below every defined value, and two
// undefined values compare as 0. Use [Rational.Equal] for NaN-like
// equality semantics.
func (q Rational) Cmp(r Rational) int {
	// Special case: undefined operands
	switch {
	case q.IsUndef() && r.IsUndef():
		return 0
	case q.IsUndef():
		return -1
	case r.IsUndef():
		return 1
	}

	// Special case: different signs
	switch {
	case q.Sign() > r.Sign():
		return 1
	case q.Sign() < r.Sign():
		return -1
	}

	// General case: cross-multiplication
	q = q.NormalizeSign()
	r = r.NormalizeSign()
	x := getBint()
	defer putBint(x)
	y := getBint()
	defer putBint(y)
	x.mul(q.numRef(), r.denRef())
	y.mul(r.numRef(), q.denRef())
	return x.cmp(y)
}

// Equal returns true if q and r represent the same numeric value.
// 1/2 and 2/4 are equal. The undefined value is not equal to anything,
// including itself.
func (q Rational) Equal(r Rational) bool {
	if q.IsUndef() || r.IsUndef() {
		return false
	}
	return q.Cmp(r) == 0
}

// Max returns the larger of q and r.
func (q Rational) Max(r Rational) Rational {
	if q.Cmp(r) >= 0 {
		return q
	}
	return r
}

// Min returns the smaller of q and r.
func (q Rational) Min(r Rational) Rational {
	if q.Cmp(r) <= 0 {
		return q
	}
	return r
}

// NewRationalFromFloat64 converts a float64 to an exactly equal rational.
// The conversion goes through the shortest decimal expansion that
// round-trips through float64, so converting the result back with
// [Rational.Float64] returns f unchanged for every finite f.
//
// NewRationalFromFloat64 returns an error if f is NaN or an infinity.
func NewRationalFromFloat64(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, fmt.Errorf("converting %v: %w", f, errInvalidFloat)
	}
	// The shortest round-trip form has no exponent when formatted
	// with the 'f' verb, only an optional sign, digits, and a point.
	s := strconv.FormatFloat(f, 'f', -1, 64)
	q, err := parseDecimalString(s)
	if err != nil {
		return Rational{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return q, nil
}

// NewRationalFromDecimal converts a fixed-point decimal to an exactly
// equal rational. The conversion never loses precision: a coefficient c
// with exponent -e becomes c/10^e.
//
// NewRationalFromDecimal returns an error if d is not finite.
func NewRationalFromDecimal(d apd.Decimal) (Rational, error) {
	if d.Form != apd.Finite {
		return Rational{}, fmt.Errorf("converting %q: %w", d.String(), errInvalidFloat)
	}
	n := new(bint)
	n.setBig(d.Coeff.MathBigInt())
	if d.Negative {
		n.neg(n)
	}
	den := new(bint)
	switch {
	case d.Exponent >= 0:
		n.lsh(n, int(d.Exponent))
		den.setInt64(1)
	default:
		den.lsh(bintOne, int(-d.Exponent))
	}
	return newRational(n, den), nil
}

// parseDecimalString converts plain decimal notation, such as "-123.45",
// into the rational -12345/100.
func parseDecimalString(s string) (Rational, error) {
	whole, frac, _ := strings.Cut(s, ".")
	digits := whole + frac
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Rational{}, errInvalidRational
	}
	num := new(bint)
	num.setBig(n)
	den := new(bint)
	den.lsh(bintOne, len(frac))
	return newRational(num, den), nil
}

// ParseRational converts a string to a rational.
// The input string must be in one of the following formats:
//
//	3/4
//	-3/4
//	+7
//	42
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign     ::= '+' | '-'
//	digits   ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	integer  ::= [sign] digits
//	rational ::= integer ['/' integer]
//
// A bare integer is parsed with an implicit denominator of 1.
// The result is not reduced: "4/2" parses to 4/2.
// "0/0" parses to the undefined value.
func ParseRational(s string) (Rational, error) {
	ns, ds, found := strings.Cut(s, "/")
	n, ok := parseBintString(ns)
	if !ok {
		return Rational{}, fmt.Errorf("parsing %q: invalid numerator: %w", s, errInvalidRational)
	}
	d := new(bint)
	d.setInt64(1)
	if found {
		d, ok = parseBintString(ds)
		if !ok {
			return Rational{}, fmt.Errorf("parsing %q: invalid denominator: %w", s, errInvalidRational)
		}
	}
	return newRational(n, d), nil
}

// parseBintString converts a signed digit string to a *bint,
// rejecting anything big.Int would accept beyond base-10 integers,
// such as underscores or hexadecimal prefixes.
func parseBintString(s string) (*bint, bool) {
	body := strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	if body == "" {
		return nil, false
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return nil, false
		}
	}
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return (*bint)(z), true
}

// String method implements the [fmt.Stringer] interface and returns the
// "{numerator}/{denominator}" representation of q.
// The output reflects the current representation: an unreduced value
// formats unreduced, so String after arithmetic may print 2/2 rather
// than 1/1 unless [Rational.Reduce] was called first.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (q Rational) String() string {
	return q.numRef().string() + "/" + q.denRef().string()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see function [ParseRational].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (q *Rational) UnmarshalText(text []byte) error {
	var err error
	*q, err = ParseRational(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Rational.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (q Rational) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}
