package numeric

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/cockroachdb/apd/v3"
)

func TestRational_Float64(t *testing.T) {
	tests := []struct {
		q         string
		want      float64
		wantExact bool
	}{
		{"1/2", 0.5, true},
		{"-3/4", -0.75, true},
		{"7/1", 7, true},
		{"1/3", 1.0 / 3.0, false},
		{"1/10", 0.1, false},
	}
	for _, tt := range tests {
		q := MustParseRational(tt.q)
		got, exact := q.Float64()
		if got != tt.want || exact != tt.wantExact {
			t.Errorf("%q.Float64() = %v, %v, want %v, %v", q, got, exact, tt.want, tt.wantExact)
		}
	}

	f, ok := MustParseRational("0/0").Float64()
	if !math.IsNaN(f) || ok {
		t.Errorf("0/0.Float64() = %v, %v, want NaN, false", f, ok)
	}
}

func TestRational_Int64(t *testing.T) {
	tests := []struct {
		q      string
		want   int64
		wantOK bool
	}{
		{"7/2", 3, true},
		{"-7/2", -3, true},
		{"6/2", 3, true},
		{"1/3", 0, true},
		{"9223372036854775807/1", math.MaxInt64, true},
		{"9223372036854775808/1", 0, false},
		{"0/0", 0, false},
	}
	for _, tt := range tests {
		q := MustParseRational(tt.q)
		got, ok := q.Int64()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%q.Int64() = %v, %v, want %v, %v", q, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRational_Uint64(t *testing.T) {
	tests := []struct {
		q      string
		want   uint64
		wantOK bool
	}{
		{"7/2", 3, true},
		{"18446744073709551615/1", math.MaxUint64, true},
		{"18446744073709551616/1", 0, false},
		{"-1/1", 0, false},
		{"-1/2", 0, true},
	}
	for _, tt := range tests {
		q := MustParseRational(tt.q)
		got, ok := q.Uint64()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%q.Uint64() = %v, %v, want %v, %v", q, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRational_BigInt(t *testing.T) {
	q := MustParseRational("-7/2")
	got, ok := q.BigInt()
	if !ok || got.String() != "-3" {
		t.Errorf("%q.BigInt() = %v, %v, want -3, true", q, got, ok)
	}

	if _, ok := MustParseRational("0/0").BigInt(); ok {
		t.Errorf("0/0.BigInt() reported ok")
	}
}

func TestRational_Decimal(t *testing.T) {
	tests := []struct {
		q      string
		want   string
		wantOK bool
	}{
		{"1/4", "0.25", true},
		{"-1/8", "-0.125", true},
		{"50/2", "25", true},
		{"1/3", "", false},
		{"0/0", "", false},
	}
	for _, tt := range tests {
		q := MustParseRational(tt.q)
		got, ok := q.Decimal()
		if ok != tt.wantOK {
			t.Errorf("%q.Decimal() ok = %v, want %v", q, ok, tt.wantOK)
			continue
		}
		if ok && got.Text('f') != tt.want {
			t.Errorf("%q.Decimal() = %q, want %q", q, got.Text('f'), tt.want)
		}
	}
}

func TestRational_Hybrid(t *testing.T) {
	got := MustParseRational("1/4").Hybrid()
	if !got.IsFixed() || got.String() != "0.25" {
		t.Errorf("1/4.Hybrid() = %q (fixed=%v), want 0.25 fixed", got, got.IsFixed())
	}

	got = MustParseRational("1/3").Hybrid()
	if got.IsFixed() || got.Float64() != 1.0/3.0 {
		t.Errorf("1/3.Hybrid() = %q (fixed=%v), want float 1/3", got, got.IsFixed())
	}

	got = MustParseRational("0/0").Hybrid()
	if !got.IsNaN() {
		t.Errorf("0/0.Hybrid() = %q, want NaN", got)
	}
}

func TestRational_IntFloat(t *testing.T) {
	got := MustParseRational("6/2").IntFloat()
	if !got.IsInt() || got.String() != "3" {
		t.Errorf("6/2.IntFloat() = %q (int=%v), want 3", got, got.IsInt())
	}

	got = MustParseRational("1/2").IntFloat()
	if got.IsInt() || got.String() != "0.5" {
		t.Errorf("1/2.IntFloat() = %q (int=%v), want 0.5", got, got.IsInt())
	}
}

func TestHybrid_Rational(t *testing.T) {
	q, ok := MustParseHybrid("0.25").Rational()
	if !ok || q.String() != "25/100" {
		t.Errorf("0.25.Rational() = %q, %v, want 25/100, true", q, ok)
	}

	q, ok = NewHybridFromFloat64(1e300).Rational()
	if !ok {
		t.Fatalf("1e300.Rational() reported not ok")
	}
	if f, _ := q.Float64(); f != 1e300 {
		t.Errorf("1e300.Rational() round trip = %v", f)
	}

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, ok := NewHybridFromFloat64(f).Rational(); ok {
			t.Errorf("Rational() of %v reported ok", f)
		}
	}
}

func TestHybrid_Int64(t *testing.T) {
	tests := []struct {
		x      string
		want   int64
		wantOK bool
	}{
		{"3.75", 3, true},
		{"-3.75", -3, true},
		{"42", 42, true},
		{"1e300", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tt := range tests {
		x := MustParseHybrid(tt.x)
		got, ok := x.Int64()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%q.Int64() = %v, %v, want %v, %v", x, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestHybrid_Decimal(t *testing.T) {
	x := MustParseHybrid("0.25")
	d, ok := x.Decimal()
	if !ok || d.Text('f') != "0.25" {
		t.Errorf("0.25.Decimal() = %q, %v", d.Text('f'), ok)
	}

	if _, ok := NewHybridFromFloat64(1e300).Decimal(); ok {
		t.Errorf("1e300.Decimal() reported ok")
	}
}

func TestIntFloat_Float64(t *testing.T) {
	tests := []struct {
		x    string
		want float64
	}{
		{"5", 5},
		{"-5", -5},
		{"2.5", 2.5},
		{pow2to600, math.Ldexp(1, 600)},
	}
	for _, tt := range tests {
		x := MustParseIntFloat(tt.x)
		if got := x.Float64(); got != tt.want {
			t.Errorf("%q.Float64() = %v, want %v", x, got, tt.want)
		}
	}
}

func TestIntFloat_Int64(t *testing.T) {
	tests := []struct {
		x      string
		want   int64
		wantOK bool
	}{
		{"-42", -42, true},
		{"3.75", 3, true},
		{pow2to600, 0, false},
		{"NaN", 0, false},
	}
	for _, tt := range tests {
		x := MustParseIntFloat(tt.x)
		got, ok := x.Int64()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%q.Int64() = %v, %v, want %v, %v", x, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestIntFloat_BigInt(t *testing.T) {
	x := MustParseIntFloat("42")
	got, ok := x.BigInt()
	if !ok || got.String() != "42" {
		t.Fatalf("42.BigInt() = %v, %v", got, ok)
	}

	// The returned value is a copy.
	got.SetInt64(7)
	if x.String() != "42" {
		t.Errorf("BigInt() aliases the payload: %q", x)
	}
}

func TestIntFloat_Rational(t *testing.T) {
	q, ok := MustParseIntFloat("5").Rational()
	if !ok || q.String() != "5/1" {
		t.Errorf("5.Rational() = %q, %v, want 5/1, true", q, ok)
	}

	q, ok = MustParseIntFloat("0.5").Rational()
	if !ok || q.String() != "5/10" {
		t.Errorf("0.5.Rational() = %q, %v, want 5/10, true", q, ok)
	}

	if _, ok := MustParseIntFloat("NaN").Rational(); ok {
		t.Errorf("NaN.Rational() reported ok")
	}
}

func TestNumber_conversions(t *testing.T) {
	x := MustParseNumber("7/2")
	if got, ok := x.Int64(); !ok || got != 3 {
		t.Errorf("7/2.Int64() = %v, %v, want 3, true", got, ok)
	}
	if got, ok := x.BigInt(); !ok || got.String() != "3" {
		t.Errorf("7/2.BigInt() = %v, %v, want 3, true", got, ok)
	}
	if got := x.Float64(); got != 3.5 {
		t.Errorf("7/2.Float64() = %v, want 3.5", got)
	}
	if q, ok := x.Rational(); !ok || q.String() != "7/2" {
		t.Errorf("7/2.Rational() = %q, %v", q, ok)
	}
	if d, ok := x.Decimal(); !ok || d.Text('f') != "3.5" {
		t.Errorf("7/2.Decimal() = %q, %v", d.Text('f'), ok)
	}

	undef := MustParseNumber("0/0")
	if !math.IsNaN(undef.Float64()) {
		t.Errorf("0/0.Float64() = %v, want NaN", undef.Float64())
	}
	if _, ok := undef.BigInt(); ok {
		t.Errorf("0/0.BigInt() reported ok")
	}
}

func TestNumber_IntFloat_lossy(t *testing.T) {
	x := MustParseNumber("1/3")
	got := x.IntFloat()
	if got.IsInt() {
		t.Fatalf("1/3.IntFloat() is an integer")
	}
	if f := got.Float64(); f != 1.0/3.0 {
		t.Errorf("1/3.IntFloat().Float64() = %v, want %v", f, 1.0/3.0)
	}
}

func TestNumberOf(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			v    any
			want string
		}{
			{int(42), "42"},
			{int8(-7), "-7"},
			{int16(-300), "-300"},
			{int32(1 << 30), "1073741824"},
			{int64(math.MinInt64), "-9223372036854775808"},
			{uint(7), "7"},
			{uint8(255), "255"},
			{uint16(65535), "65535"},
			{uint32(1 << 31), "2147483648"},
			{uint64(math.MaxUint64), "18446744073709551615"},
			{float32(1.5), "1.5"},
			{float64(2.5), "2.5"},
			{float64(4), "4"},
			{"3/4", "3/4"},
			{"2/4", "1/2"},
			{pow2to600, pow2to600},
			{new(big.Int).Lsh(big.NewInt(1), 100), "1267650600228229401496703205376"},
			{*apd.New(314, -2), "3.14"},
			{apd.New(314, -2), "3.14"},
			{NewRational(2, 4), "1/2"},
			{NewRational(1, 4).Expr().Add(NewRational(1, 4)), "1/2"},
			{NewHybridFromInt64(9), "9"},
			{MustParseIntFloat("2.5"), "2.5"},
			{MustParseNumber("1/3"), "1/3"},
		}
		for _, tt := range tests {
			got, err := NumberOf(tt.v)
			if err != nil {
				t.Errorf("NumberOf(%v) failed: %v", tt.v, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("NumberOf(%v) = %q, want %q", tt.v, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]any{
			"nil":    nil,
			"struct": struct{}{},
			"slice":  []int{1},
			"bool":   true,
		}
		for name, v := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NumberOf(v)
				if !errors.Is(err, errUnsupportedType) {
					t.Errorf("NumberOf(%v) error = %v, want %v", v, err, errUnsupportedType)
				}
			})
		}
	})
}
