package arith

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmpty is returned when nothing is left to evaluate after sanitizing.
	ErrEmpty = errors.New("empty expression")
	// ErrSyntax marks a malformed expression.
	ErrSyntax = errors.New("syntax error")
	// ErrDivByZero marks a division whose divisor evaluated to zero.
	ErrDivByZero = errors.New("division by zero")
)

// Eval sanitizes s and evaluates what remains.
func Eval(s string) (Number, error) {
	ex, err := Parse(Sanitize(s))
	if err != nil {
		return Number{}, err
	}
	return EvalNode(ex)
}

// EvalNode evaluates a tree returned by Parse.
func EvalNode(n Node) (Number, error) {
	switch n := n.(type) {
	case nodeNumber:
		return n.v, nil
	case nodeUnary:
		x, err := EvalNode(n.x)
		if err != nil {
			return Number{}, err
		}
		if n.op == "+" {
			return x, nil
		}
		return neg(x), nil
	case nodeBinary:
		a, err := EvalNode(n.left)
		if err != nil {
			return Number{}, err
		}
		b, err := EvalNode(n.right)
		if err != nil {
			return Number{}, err
		}
		return binary(n.op, a, b)
	case nil:
		return Number{}, ErrEmpty
	default:
		return Number{}, fmt.Errorf("%w: unknown node %T", ErrSyntax, n)
	}
}

func neg(x Number) Number {
	if x.IsInt() {
		if v, err := negChecked(x.i); err == nil {
			return Int(v)
		}
	}
	return Float(-x.Float64())
}

func binary(op string, a, b Number) (Number, error) {
	switch op {
	case "/":
		d := b.Float64()
		if d == 0 {
			return Number{}, ErrDivByZero
		}
		return Float(a.Float64() / d), nil
	case "//":
		return floorDiv(a, b)
	case "**":
		return pow(a, b)
	}

	if a.IsInt() && b.IsInt() {
		var (
			v   int64
			err error
		)
		switch op {
		case "+":
			v, err = addChecked(a.i, b.i)
		case "-":
			v, err = subChecked(a.i, b.i)
		case "*":
			v, err = mulChecked(a.i, b.i)
		default:
			return Number{}, fmt.Errorf("%w: unknown operator %q", ErrSyntax, op)
		}
		if err == nil {
			return Int(v), nil
		}
		// int64 overflow falls through to float arithmetic.
	}

	x, y := a.Float64(), b.Float64()
	switch op {
	case "+":
		return Float(x + y), nil
	case "-":
		return Float(x - y), nil
	case "*":
		return Float(x * y), nil
	}
	return Number{}, fmt.Errorf("%w: unknown operator %q", ErrSyntax, op)
}

// floorDiv rounds the quotient toward negative infinity. Two integers give
// an integer, anything else a float.
func floorDiv(a, b Number) (Number, error) {
	if b.Float64() == 0 {
		return Number{}, ErrDivByZero
	}
	if a.IsInt() && b.IsInt() {
		if v, err := floorDivChecked(a.i, b.i); err == nil {
			return Int(v), nil
		}
	}
	return Float(floorDivFloat(a.Float64(), b.Float64())), nil
}

func floorDivFloat(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	q := math.Floor(div)
	if div-q > 0.5 {
		q++
	}
	return q
}

// pow raises a to b. A non-negative integer exponent on an integer base
// stays an integer until it overflows; a negative exponent yields a float.
func pow(a, b Number) (Number, error) {
	if a.Float64() == 0 && b.Float64() < 0 {
		return Number{}, ErrDivByZero
	}
	if a.IsInt() && b.IsInt() && b.i >= 0 {
		if v, err := powChecked(a.i, b.i); err == nil {
			return Int(v), nil
		}
	}
	return Float(math.Pow(a.Float64(), b.Float64())), nil
}
