package arith

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errOverflow = errors.New("overflow")

// Kind tells whether a Number holds an exact integer or a float.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
)

// Number is an evaluation result.
type Number struct {
	kind Kind
	i    int64
	f    float64
}

func Int(i int64) Number { return Number{kind: KindInt, i: i} }

func Float(f float64) Number { return Number{kind: KindFloat, f: f} }

func (n Number) Kind() Kind { return n.kind }

func (n Number) IsInt() bool { return n.kind == KindInt }

// Int64 returns the integer value; it is only meaningful when IsInt is true.
func (n Number) Int64() int64 { return n.i }

func (n Number) Float64() float64 {
	if n.kind == KindInt {
		return float64(n.i)
	}
	return n.f
}

// String formats n the way the display shows it: integers plainly, floats with
// the shortest round-trip digits and a trailing ".0" when integral.
func (n Number) String() string {
	if n.kind == KindInt {
		return strconv.FormatInt(n.i, 10)
	}
	return formatFloat(n.f)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp := 0
	if i := strings.IndexByte(sci, 'e'); i >= 0 {
		exp, _ = strconv.Atoi(sci[i+1:])
	}
	// Fixed notation for exponents in [-4, 16).
	if exp < -4 || exp >= 16 {
		return sci
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func addChecked(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, errOverflow
	}
	return a + b, nil
}

func subChecked(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, errOverflow
	}
	return a - b, nil
}

func mulChecked(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		if a == 1 {
			return b, nil
		}
		if b == 1 {
			return a, nil
		}
		return 0, errOverflow
	}
	c := a * b
	if c/b != a {
		return 0, errOverflow
	}
	return c, nil
}

func negChecked(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, errOverflow
	}
	return -a, nil
}

func floorDivChecked(a, b int64) (int64, error) {
	if a == math.MinInt64 && b == -1 {
		return 0, errOverflow
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q, nil
}

func powChecked(base, exp int64) (int64, error) {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			r, err := mulChecked(result, base)
			if err != nil {
				return 0, err
			}
			result = r
		}
		exp >>= 1
		if exp > 0 {
			b, err := mulChecked(base, base)
			if err != nil {
				return 0, err
			}
			base = b
		}
	}
	return result, nil
}
