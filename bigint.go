package numeric

import (
	"fmt"
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = [...]*bint{
	mustParseBint("1"),
	mustParseBint("10"),
	mustParseBint("100"),
	mustParseBint("1000"),
	mustParseBint("10000"),
	mustParseBint("100000"),
	mustParseBint("1000000"),
	mustParseBint("10000000"),
	mustParseBint("100000000"),
	mustParseBint("1000000000"),
	mustParseBint("10000000000"),
	mustParseBint("100000000000"),
	mustParseBint("1000000000000"),
	mustParseBint("10000000000000"),
	mustParseBint("100000000000000"),
	mustParseBint("1000000000000000"),
	mustParseBint("10000000000000000"),
	mustParseBint("100000000000000000"),
	mustParseBint("1000000000000000000"),
	mustParseBint("10000000000000000000"),
	mustParseBint("100000000000000000000"),
	mustParseBint("1000000000000000000000"),
	mustParseBint("10000000000000000000000"),
	mustParseBint("100000000000000000000000"),
	mustParseBint("1000000000000000000000000"),
	mustParseBint("10000000000000000000000000"),
	mustParseBint("100000000000000000000000000"),
	mustParseBint("1000000000000000000000000000"),
	mustParseBint("10000000000000000000000000000"),
	mustParseBint("100000000000000000000000000000"),
}

// mustParseBint converts a string to *bint, panicking on error.
// Use only for package variable initialization and test code!
func mustParseBint(s string) *bint {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Errorf("mustParseBint(%q) failed: parsing error", s))
	}
	return (*bint)(z)
}

func (z *bint) big() *big.Int {
	return (*big.Int)(z)
}

func (z *bint) sign() int {
	return z.big().Sign()
}

func (z *bint) cmp(x *bint) int {
	return z.big().Cmp(x.big())
}

func (z *bint) cmpAbs(x *bint) int {
	return z.big().CmpAbs(x.big())
}

func (z *bint) string() string {
	return z.big().String()
}

func (z *bint) setBint(x *bint) {
	z.big().Set(x.big())
}

func (z *bint) setBig(x *big.Int) {
	z.big().Set(x)
}

func (z *bint) setInt64(x int64) {
	z.big().SetInt64(x)
}

func (z *bint) isZero() bool {
	return z.big().Sign() == 0
}

func (z *bint) isOdd() bool {
	return z.big().Bit(0) != 0
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	z.big().Add(x.big(), y.big())
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	z.big().Sub(x.big(), y.big())
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) {
	z.big().Neg(x.big())
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) {
	z.big().Abs(x.big())
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	// Copying x, y to prevent heap allocations.
	if z == x {
		b := getBint()
		defer putBint(b)
		b.setBint(x)
		x = b
	}
	if z == y {
		b := getBint()
		defer putBint(b)
		b.setBint(y)
		y = b
	}
	z.big().Mul(x.big(), y.big())
}

// quo calculates z = x / y, truncated towards zero.
func (z *bint) quo(x, y *bint) {
	// Passing r to prevent heap allocations.
	r := getBint()
	defer putBint(r)
	z.quoRem(x, y, r)
}

// quoRem calculates z = x / y truncated towards zero, r = x - y * z.
// The remainder has the same sign as x.
func (z *bint) quoRem(x, y, r *bint) {
	z.big().QuoRem(x.big(), y.big(), r.big())
}

// rem calculates z = x - y * (x / y), with x / y truncated towards zero.
func (z *bint) rem(x, y *bint) {
	q := getBint()
	defer putBint(q)
	q.quoRem(x, y, z)
}

// gcd calculates z = gcd(x, y).
// The result is always non-negative, regardless of the signs of x and y.
func (z *bint) gcd(x, y *bint) {
	z.big().GCD(nil, nil, x.big(), y.big())
}

// exp calculates z = x^y.
// If y is negative, the result is unpredictable.
func (z *bint) exp(x, y *bint) {
	z.big().Exp(x.big(), y.big(), nil)
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	x := getBint()
	defer putBint(x)
	x.setInt64(10)
	y := getBint()
	defer putBint(y)
	y.setInt64(int64(power))
	z.exp(x, y)
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.mul(x, y)
}

func (z *bint) isInt64() bool {
	return z.big().IsInt64()
}

func (z *bint) int64() int64 {
	return z.big().Int64()
}

func (z *bint) isUint64() bool {
	return z.big().IsUint64()
}

func (z *bint) uint64() uint64 {
	return z.big().Uint64()
}

// float64 converts z to the nearest float64.
// Values beyond the float64 range convert to an infinity.
func (z *bint) float64() float64 {
	f, _ := new(big.Float).SetInt(z.big()).Float64()
	return f
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
