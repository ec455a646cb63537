package numeric

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestHybrid_ZeroValue(t *testing.T) {
	got := Hybrid{}
	if !got.IsFixed() {
		t.Errorf("Hybrid{}.IsFixed() = false, want true")
	}
	if !got.IsZero() {
		t.Errorf("Hybrid{}.IsZero() = false, want true")
	}
	if got.String() != "0" {
		t.Errorf("Hybrid{}.String() = %q, want %q", got, "0")
	}
}

func TestNewHybridFromFloat64(t *testing.T) {
	tests := []struct {
		f         float64
		wantFixed bool
	}{
		{0, true},
		{1, true},
		{-1, true},
		{0.5, true},
		{0.1, true},
		{1.0 / 3.0, true},
		{1e28, true},
		{-1e28, true},
		{1e29, false},
		{1e300, false},
		{5e-324, false},
		{1e-40, false},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}
	for _, tt := range tests {
		got := NewHybridFromFloat64(tt.f)
		if got.IsFixed() != tt.wantFixed {
			t.Errorf("NewHybridFromFloat64(%v).IsFixed() = %v, want %v", tt.f, got.IsFixed(), tt.wantFixed)
		}
		if f := got.Float64(); f != tt.f && !math.IsNaN(tt.f) {
			t.Errorf("NewHybridFromFloat64(%v).Float64() = %v", tt.f, f)
		}
	}
}

func TestHybrid_Add(t *testing.T) {
	t.Run("exact decimals", func(t *testing.T) {
		x := NewHybridFromFloat64(0.1)
		y := NewHybridFromFloat64(0.2)
		got := x.Add(y)
		if !got.IsFixed() {
			t.Errorf("0.1 + 0.2 is not fixed")
		}
		if got.String() != "0.3" {
			t.Errorf("0.1 + 0.2 = %q, want %q", got, "0.3")
		}
		if !got.Equal(NewHybridFromFloat64(0.3)) {
			t.Errorf("0.1 + 0.2 != 0.3")
		}
	})

	t.Run("overflow", func(t *testing.T) {
		a := NewHybridFromFloat64(math.Ldexp(1, 90))
		if !a.IsFixed() {
			t.Fatalf("2^90 is not fixed")
		}
		got := a.Mul(a)
		if got.IsFixed() {
			t.Errorf("2^90 * 2^90 stayed fixed")
		}
		if f := got.Float64(); f != math.Ldexp(1, 180) {
			t.Errorf("2^90 * 2^90 = %v, want %v", f, math.Ldexp(1, 180))
		}
	})

	t.Run("float operand", func(t *testing.T) {
		x := NewHybridFromFloat64(1e300)
		got := x.Add(x)
		if got.IsFixed() {
			t.Errorf("1e300 + 1e300 is fixed")
		}
		if f := got.Float64(); f != 2e300 {
			t.Errorf("1e300 + 1e300 = %v, want %v", f, 2e300)
		}
	})
}

func TestHybrid_Sub(t *testing.T) {
	x := NewHybridFromFloat64(0.3)
	y := NewHybridFromFloat64(0.1)
	got := x.Sub(y)
	if !got.IsFixed() || got.String() != "0.2" {
		t.Errorf("0.3 - 0.1 = %q (fixed=%v), want %q", got, got.IsFixed(), "0.2")
	}
}

func TestHybrid_Quo(t *testing.T) {
	tests := []struct {
		x, y      string
		want      string
		wantFixed bool
	}{
		{"1", "4", "0.25", true},
		{"1", "3", "0." + strings.Repeat("3", 29), true},
		{"10", "2", "5", true},
		{"-1", "8", "-0.125", true},
	}
	for _, tt := range tests {
		x := MustParseHybrid(tt.x)
		y := MustParseHybrid(tt.y)
		got := x.Quo(y)
		if got.IsFixed() != tt.wantFixed {
			t.Errorf("%q.Quo(%q).IsFixed() = %v, want %v", x, y, got.IsFixed(), tt.wantFixed)
		}
		if got.String() != tt.want {
			t.Errorf("%q.Quo(%q) = %q, want %q", x, y, got, tt.want)
		}
	}

	t.Run("division by zero", func(t *testing.T) {
		got := NewHybridFromInt64(1).Quo(Hybrid{})
		if !got.IsInf() {
			t.Errorf("1 / 0 = %q, want an infinity", got)
		}
		got = NewHybridFromInt64(-1).Quo(Hybrid{})
		if !got.IsInf() || got.Sign() != -1 {
			t.Errorf("-1 / 0 = %q, want a negative infinity", got)
		}
		got = Hybrid{}.Quo(Hybrid{})
		if !got.IsNaN() {
			t.Errorf("0 / 0 = %q, want NaN", got)
		}
	})
}

func TestHybrid_Rem(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"7.5", "2", "1.5"},
		{"-7.5", "2", "-1.5"},
		{"7.5", "-2", "1.5"},
		{"50", "9", "5"},
		{"-50", "9", "-5"},
	}
	for _, tt := range tests {
		x := MustParseHybrid(tt.x)
		y := MustParseHybrid(tt.y)
		got := x.Rem(y)
		if !got.IsFixed() || got.String() != tt.want {
			t.Errorf("%q.Rem(%q) = %q (fixed=%v), want %q", x, y, got, got.IsFixed(), tt.want)
		}
	}

	got := NewHybridFromInt64(1).Rem(Hybrid{})
	if !got.IsNaN() {
		t.Errorf("1 Rem 0 = %q, want NaN", got)
	}
}

func TestHybrid_Pow(t *testing.T) {
	tests := []struct {
		x, y string
		want float64
	}{
		{"2", "10", 1024},
		{"2", "0.5", math.Sqrt2},
		{"2", "-1", 0.5},
		{"9", "0.5", 3},
	}
	for _, tt := range tests {
		x := MustParseHybrid(tt.x)
		y := MustParseHybrid(tt.y)
		got := x.Pow(y)
		if got.IsFixed() {
			t.Errorf("%q.Pow(%q) is fixed", x, y)
		}
		if f := got.Float64(); f != tt.want {
			t.Errorf("%q.Pow(%q) = %v, want %v", x, y, f, tt.want)
		}
	}
}

func TestHybrid_Cmp(t *testing.T) {
	nan := NewHybridFromFloat64(math.NaN())
	inf := NewHybridFromFloat64(math.Inf(1))

	// Both operands floating: 1e300/1e300 stays on the float path.
	floatOne := NewHybridFromFloat64(1e300).Quo(NewHybridFromFloat64(1e300))
	if floatOne.IsFixed() {
		t.Fatalf("1e300 / 1e300 is fixed")
	}

	tests := []struct {
		name string
		x, y Hybrid
		want int
	}{
		{"fixed eq", NewHybridFromInt64(3), MustParseHybrid("3.0"), 0},
		{"fixed lt", NewHybridFromInt64(2), NewHybridFromInt64(3), -1},
		{"fixed gt", MustParseHybrid("0.3"), MustParseHybrid("0.2"), 1},
		{"cross eq", floatOne, NewHybridFromInt64(1), 0},
		{"cross lt", floatOne, NewHybridFromInt64(2), -1},
		{"float lt", NewHybridFromFloat64(1e300), inf, -1},
		{"nan below", nan, NewHybridFromFloat64(math.Inf(-1)), -1},
		{"nan above", NewHybridFromInt64(0), nan, 1},
		{"nan nan", nan, nan, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.x.Cmp(tt.y)
			if got != tt.want {
				t.Errorf("%q.Cmp(%q) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHybrid_Equal(t *testing.T) {
	nan := NewHybridFromFloat64(math.NaN())
	tests := []struct {
		x, y Hybrid
		want bool
	}{
		{NewHybridFromInt64(3), MustParseHybrid("3.00"), true},
		{NewHybridFromInt64(3), NewHybridFromInt64(4), false},
		{nan, nan, false},
		{nan, NewHybridFromInt64(0), false},
	}
	for _, tt := range tests {
		got := tt.x.Equal(tt.y)
		if got != tt.want {
			t.Errorf("%q.Equal(%q) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestParseHybrid(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s         string
			wantFixed bool
			want      string
		}{
			{"0", true, "0"},
			{"0.1", true, "0.1"},
			{"-3.14", true, "-3.14"},
			{"9e27", true, "9000000000000000000000000000"},
			{"12345678901234567890123456789", true, "12345678901234567890123456789"},
			{"1e29", false, "1e+29"},
			{"1e-40", false, "1e-40"},
			{"NaN", false, "NaN"},
			{"Inf", false, "+Inf"},
			{"-Inf", false, "-Inf"},
		}
		for _, tt := range tests {
			got, err := ParseHybrid(tt.s)
			if err != nil {
				t.Errorf("ParseHybrid(%q) failed: %v", tt.s, err)
				continue
			}
			if got.IsFixed() != tt.wantFixed {
				t.Errorf("ParseHybrid(%q).IsFixed() = %v, want %v", tt.s, got.IsFixed(), tt.wantFixed)
			}
			if got.String() != tt.want {
				t.Errorf("ParseHybrid(%q) = %q, want %q", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"empty":    "",
			"letters":  "abc",
			"fraction": "1/2",
			"spaces":   " 1",
		}
		for name, s := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseHybrid(s)
				if !errors.Is(err, errInvalidHybrid) {
					t.Errorf("ParseHybrid(%q) error = %v, want %v", s, err, errInvalidHybrid)
				}
			})
		}
	})
}

func TestHybrid_TextMarshalling(t *testing.T) {
	tests := []string{"0", "0.1", "-3.14", "1e-40", "NaN", "+Inf"}
	for _, s := range tests {
		x := MustParseHybrid(s)
		b, err := x.MarshalText()
		if err != nil {
			t.Errorf("%q.MarshalText() failed: %v", x, err)
			continue
		}
		var y Hybrid
		if err := y.UnmarshalText(b); err != nil {
			t.Errorf("UnmarshalText(%q) failed: %v", b, err)
			continue
		}
		if y.String() != x.String() || y.IsFixed() != x.IsFixed() {
			t.Errorf("round trip of %q = %q (fixed=%v)", x, y, y.IsFixed())
		}
	}
}
