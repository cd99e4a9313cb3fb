package arith

import (
	"fmt"
	"strconv"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPow
	tokFloorDiv
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}
	}

	start := l.i
	switch l.s[l.i] {
	case '+':
		l.i++
		return token{kind: tokPlus, text: "+", pos: start}
	case '-':
		l.i++
		return token{kind: tokMinus, text: "-", pos: start}
	case '*':
		if l.peek(1) == '*' {
			l.i += 2
			return token{kind: tokPow, text: "**", pos: start}
		}
		l.i++
		return token{kind: tokStar, text: "*", pos: start}
	case '/':
		if l.peek(1) == '/' {
			l.i += 2
			return token{kind: tokFloorDiv, text: "//", pos: start}
		}
		l.i++
		return token{kind: tokSlash, text: "/", pos: start}
	}

	ch := l.s[l.i]
	if ch == '.' || isDigit(ch) {
		l.i = scanNumber(l.s, l.i)
		if l.i == start {
			l.i++
			return token{kind: tokInvalid, text: l.s[start:l.i], pos: start}
		}
		return token{kind: tokNumber, text: l.s[start:l.i], pos: start}
	}

	l.i++
	return token{kind: tokInvalid, text: l.s[start:l.i], pos: start}
}

func (l *lexer) peek(off int) byte {
	if l.i+off >= len(l.s) {
		return 0
	}
	return l.s[l.i+off]
}

// scanNumber consumes digits with at most one '.' and requires at least one digit.
func scanNumber(s string, i int) int {
	start := i
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return start
	}
	return i
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Node is a parsed expression.
type Node interface {
	node()
}

type nodeNumber struct {
	v Number
}

type nodeUnary struct {
	op string
	x  Node
}

type nodeBinary struct {
	op    string
	left  Node
	right Node
}

func (nodeNumber) node() {}
func (nodeUnary) node()  {}
func (nodeBinary) node() {}

type parser struct {
	l   lexer
	cur token
}

// Parse builds an expression tree from already sanitized text.
func Parse(s string) (Node, error) {
	if s == "" {
		return nil, ErrEmpty
	}
	p := &parser{l: lexer{s: s}}
	p.next()

	ex, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, p.unexpected()
	}
	return ex, nil
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) unexpected() error {
	if p.cur.kind == tokEOF {
		return fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	return fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, p.cur.text, p.cur.pos)
}

func (p *parser) parseSum() (Node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash || p.cur.kind == tokFloorDiv {
		op := p.cur.text
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePower()
}

// parsePower binds tighter than a unary sign on its left and is
// right-associative: -2**2 is -(2**2), 2**3**2 is 2**(3**2).
func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokPow {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return nodeBinary{op: "**", left: base, right: exp}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	if p.cur.kind != tokNumber {
		return nil, p.unexpected()
	}
	tok := p.cur
	n, err := parseLiteral(tok.text)
	if err != nil {
		return nil, fmt.Errorf("%w at %d", err, tok.pos)
	}
	p.next()
	return nodeNumber{v: n}, nil
}

func parseLiteral(txt string) (Number, error) {
	isFloat := false
	for i := 0; i < len(txt); i++ {
		if txt[i] == '.' {
			isFloat = true
			break
		}
	}

	if !isFloat {
		if len(txt) > 1 && txt[0] == '0' && !allZeros(txt) {
			return Number{}, fmt.Errorf("%w: leading zeros in %q", ErrSyntax, txt)
		}
		if i, err := strconv.ParseInt(txt, 10, 64); err == nil {
			return Int(i), nil
		}
	}

	// Out-of-range literals still yield ±Inf or 0 alongside ErrRange.
	f, err := strconv.ParseFloat(txt, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return Float(f), nil
		}
		return Number{}, fmt.Errorf("%w: bad number %q", ErrSyntax, txt)
	}
	return Float(f), nil
}

func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
