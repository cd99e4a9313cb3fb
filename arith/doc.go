// Package arith sanitizes and evaluates the calculator's infix expressions.
//
// Input is first filtered down to digits, '.', and the operators + - * /. The remaining
// text is parsed with conventional precedence, including the doubled operators ** (power)
// and // (floor division) that the filter lets through, and evaluated with integer results
// kept exact until a division, a negative exponent or an int64 overflow turns them into floats.
package arith
