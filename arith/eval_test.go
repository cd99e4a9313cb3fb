package arith

import (
	"errors"
	"math"
	"testing"
)

func TestEval_Results(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "1+2", want: "3"},
		{in: "2+3*4", want: "14"},
		{in: "2*3+4", want: "10"},
		{in: "10-4-3", want: "3"},
		{in: "8/4/2", want: "1.0"},
		{in: "6/2", want: "3.0"},
		{in: "7/2", want: "3.5"},
		{in: "1/3", want: "0.3333333333333333"},
		{in: "0.1+0.2", want: "0.30000000000000004"},
		{in: "-5+3", want: "-2"},
		{in: "5--3", want: "8"},
		{in: "5*-2", want: "-10"},
		{in: "+-+4", want: "-4"},
		{in: "3.5*2", want: "7.0"},
		{in: ".5+5.", want: "5.5"},
		{in: "00+0", want: "0"},
		{in: "05.5", want: "5.5"},
		{in: "9999999999999999*10", want: "99999999999999990"},
		{in: "9223372036854775807+1", want: "9.223372036854776e+18"},
		{in: "100000000*100000000", want: "10000000000000000"},
		{in: "100000000.0*100000000", want: "1e+16"},
		{in: "1/100000", want: "1e-05"},
		{in: "1/10000", want: "0.0001"},
		{in: "0-0.0", want: "0.0"},
		{in: "2**3", want: "8"},
		{in: "2**3**2", want: "512"},
		{in: "-2**2", want: "-4"},
		{in: "2*-3**2", want: "-18"},
		{in: "2**-1", want: "0.5"},
		{in: "2**-2", want: "0.25"},
		{in: "4**0.5", want: "2.0"},
		{in: "0**0", want: "1"},
		{in: "2**64", want: "1.8446744073709552e+19"},
		{in: "8//3", want: "2"},
		{in: "7//2*2", want: "6"},
		{in: "-7//2", want: "-4"},
		{in: "7//-2", want: "-4"},
		{in: "7.5//2", want: "3.0"},
		{in: "-7.5//2", want: "-4.0"},
		{in: "1+9//4**2", want: "1"},
	}

	for _, tt := range tests {
		got, err := Eval(tt.in)
		if err != nil {
			t.Fatalf("Eval(%q) error: %v", tt.in, err)
		}
		if got.String() != tt.want {
			t.Fatalf("Eval(%q)=%s, want %s", tt.in, got.String(), tt.want)
		}
	}
}

func TestEval_SanitizesBeforeParsing(t *testing.T) {
	got, err := Eval("1 + 2 x (3)")
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	// "x", spaces and parentheses are dropped, leaving "1+23".
	if got.String() != "24" {
		t.Fatalf("Eval=%s, want 24", got.String())
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{in: "", want: ErrEmpty},
		{in: "abc", want: ErrEmpty},
		{in: "5/0", want: ErrDivByZero},
		{in: "5/0.0", want: ErrDivByZero},
		{in: "1+2/0*3", want: ErrDivByZero},
		{in: "0/0", want: ErrDivByZero},
		{in: "5+", want: ErrSyntax},
		{in: "*5", want: ErrSyntax},
		{in: "0//0", want: ErrDivByZero},
		{in: "5//0.0", want: ErrDivByZero},
		{in: "0**-1", want: ErrDivByZero},
		{in: "0.0**-2", want: ErrDivByZero},
		{in: "2***3", want: ErrSyntax},
		{in: "8///2", want: ErrSyntax},
		{in: "2**", want: ErrSyntax},
		{in: "**2", want: ErrSyntax},
		{in: ".", want: ErrSyntax},
		{in: "1.2.3", want: ErrSyntax},
		{in: "07", want: ErrSyntax},
		{in: "1+07", want: ErrSyntax},
		{in: "-", want: ErrSyntax},
	}

	for _, tt := range tests {
		_, err := Eval(tt.in)
		if !errors.Is(err, tt.want) {
			t.Fatalf("Eval(%q) err=%v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestEval_DivByZeroIsNotSyntax(t *testing.T) {
	_, err := Eval("1/0")
	if errors.Is(err, ErrSyntax) {
		t.Fatalf("division by zero reported as syntax error: %v", err)
	}
}

func TestEval_SanitizeIdempotent(t *testing.T) {
	inputs := []string{"1+2", "a1b+c2", "3/0", "((4))*5", "x", "1..2"}
	for _, in := range inputs {
		a, errA := Eval(in)
		b, errB := Eval(Sanitize(in))
		if (errA == nil) != (errB == nil) {
			t.Fatalf("%q: err mismatch %v vs %v", in, errA, errB)
		}
		if errA == nil && a.String() != b.String() {
			t.Fatalf("%q: %s vs %s", in, a.String(), b.String())
		}
	}
}

func TestEval_HugeLiteralBecomesInf(t *testing.T) {
	lit := "1"
	for i := 0; i < 400; i++ {
		lit += "0"
	}
	got, err := Eval(lit + ".5")
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if !math.IsInf(got.Float64(), 1) || got.String() != "inf" {
		t.Fatalf("got %s", got.String())
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "12+3", want: "12+3"},
		{in: " 1 + 2 ", want: "1+2"},
		{in: "sin(3)", want: "3"},
		{in: "1e+16", want: "1+16"},
		{in: "½+ü", want: "+"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Fatalf("Sanitize(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}
