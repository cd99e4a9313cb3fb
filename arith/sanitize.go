package arith

import "strings"

// Allowed lists every rune that survives Sanitize.
const Allowed = "0123456789.+-*/"

// IsAllowed reports whether r is a digit, '.', or one of the four operators.
func IsAllowed(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '.', r == '+', r == '-', r == '*', r == '/':
		return true
	}
	return false
}

// Sanitize drops every rune outside Allowed.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if IsAllowed(r) {
			return r
		}
		return -1
	}, s)
}
