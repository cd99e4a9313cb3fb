package arith

import (
	"errors"
	"math"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 3, want: "3.0"},
		{in: -2.5, want: "-2.5"},
		{in: 1e15, want: "1000000000000000.0"},
		{in: 1e16, want: "1e+16"},
		{in: 1.5e-5, want: "1.5e-05"},
		{in: 0.0001, want: "0.0001"},
		{in: math.Inf(1), want: "inf"},
		{in: math.Inf(-1), want: "-inf"},
		{in: math.NaN(), want: "nan"},
		{in: math.Copysign(0, -1), want: "-0.0"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Fatalf("formatFloat(%v)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCheckedArithmetic(t *testing.T) {
	if _, err := addChecked(math.MaxInt64, 1); !errors.Is(err, errOverflow) {
		t.Fatalf("add overflow not detected")
	}
	if _, err := subChecked(math.MinInt64, 1); !errors.Is(err, errOverflow) {
		t.Fatalf("sub overflow not detected")
	}
	if _, err := mulChecked(math.MinInt64, -1); !errors.Is(err, errOverflow) {
		t.Fatalf("mul overflow not detected")
	}
	if v, err := mulChecked(math.MinInt64, 1); err != nil || v != math.MinInt64 {
		t.Fatalf("mul by one: v=%d err=%v", v, err)
	}
	if v, err := mulChecked(-3, 7); err != nil || v != -21 {
		t.Fatalf("mul: v=%d err=%v", v, err)
	}
	if _, err := negChecked(math.MinInt64); !errors.Is(err, errOverflow) {
		t.Fatalf("neg overflow not detected")
	}
}

func TestNumberKinds(t *testing.T) {
	n, err := Eval("4*2")
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if !n.IsInt() || n.Int64() != 8 {
		t.Fatalf("4*2 kind=%v value=%v", n.Kind(), n.Int64())
	}

	n, err = Eval("4/2")
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if n.Kind() != KindFloat || n.Float64() != 2 {
		t.Fatalf("4/2 kind=%v value=%v", n.Kind(), n.Float64())
	}
}
