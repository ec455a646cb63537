package numeric

import "fmt"

// MustParseRational is like [ParseRational] but panics if the string
// cannot be parsed. It simplifies safe initialization of global
// variables holding rationals.
func MustParseRational(s string) Rational {
	q, err := ParseRational(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseRational(%q) failed: %v", s, err))
	}
	return q
}

// MustParseHybrid is like [ParseHybrid] but panics if the string cannot
// be parsed. It simplifies safe initialization of global variables
// holding hybrids.
func MustParseHybrid(s string) Hybrid {
	x, err := ParseHybrid(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseHybrid(%q) failed: %v", s, err))
	}
	return x
}

// MustParseIntFloat is like [ParseIntFloat] but panics if the string
// cannot be parsed.
func MustParseIntFloat(s string) IntFloat {
	x, err := ParseIntFloat(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseIntFloat(%q) failed: %v", s, err))
	}
	return x
}

// MustParseNumber is like [ParseNumber] but panics if the string cannot
// be parsed.
func MustParseNumber(s string) Number {
	x, err := ParseNumber(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseNumber(%q) failed: %v", s, err))
	}
	return x
}

// MustNumberOf is like [NumberOf] but panics on unsupported types.
func MustNumberOf(v any) Number {
	x, err := NumberOf(v)
	if err != nil {
		panic(fmt.Sprintf("MustNumberOf(%v) failed: %v", v, err))
	}
	return x
}

// MustRationalFromFloat64 is like [NewRationalFromFloat64] but panics
// if f is NaN or an infinity.
func MustRationalFromFloat64(f float64) Rational {
	q, err := NewRationalFromFloat64(f)
	if err != nil {
		panic(fmt.Sprintf("MustRationalFromFloat64(%v) failed: %v", f, err))
	}
	return q
}
