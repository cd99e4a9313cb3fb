package arith

import "testing"

func TestParse_Precedence(t *testing.T) {
	ex, err := Parse("1+2*3-4/2")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	// ((1 + (2*3)) - (4/2))
	top, ok := ex.(nodeBinary)
	if !ok || top.op != "-" {
		t.Fatalf("top=%#v, want '-'", ex)
	}
	left, ok := top.left.(nodeBinary)
	if !ok || left.op != "+" {
		t.Fatalf("left=%#v, want '+'", top.left)
	}
	if mul, ok := left.right.(nodeBinary); !ok || mul.op != "*" {
		t.Fatalf("left.right=%#v, want '*'", left.right)
	}
	if div, ok := top.right.(nodeBinary); !ok || div.op != "/" {
		t.Fatalf("right=%#v, want '/'", top.right)
	}
}

func TestParse_LeftAssociative(t *testing.T) {
	ex, err := Parse("8-3-2")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	top := ex.(nodeBinary)
	if _, ok := top.left.(nodeBinary); !ok {
		t.Fatalf("8-3-2 should group as (8-3)-2, got %#v", ex)
	}
	if _, ok := top.right.(nodeNumber); !ok {
		t.Fatalf("right operand should be a number, got %#v", top.right)
	}
}

func TestParse_PowerRightAssociative(t *testing.T) {
	ex, err := Parse("-2**3**2")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	// -(2 ** (3 ** 2))
	un, ok := ex.(nodeUnary)
	if !ok || un.op != "-" {
		t.Fatalf("top=%#v, want unary '-'", ex)
	}
	top, ok := un.x.(nodeBinary)
	if !ok || top.op != "**" {
		t.Fatalf("operand=%#v, want '**'", un.x)
	}
	if _, ok := top.left.(nodeNumber); !ok {
		t.Fatalf("base should be a number, got %#v", top.left)
	}
	if right, ok := top.right.(nodeBinary); !ok || right.op != "**" {
		t.Fatalf("exponent=%#v, want '**'", top.right)
	}
}

func TestLexer_Operators(t *testing.T) {
	l := lexer{s: "2**3//4***/"}
	var got []string
	for {
		tok := l.next()
		if tok.kind == tokEOF {
			break
		}
		got = append(got, tok.text)
	}
	want := []string{"2", "**", "3", "//", "4", "**", "*", "/"}
	if len(got) != len(want) {
		t.Fatalf("tokens=%q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tokens=%q, want %q", got, want)
		}
	}
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "12.5+.5", want: []string{"12.5", "+", ".5"}},
		{in: "5.", want: []string{"5."}},
		{in: "1.2.3", want: []string{"1.2", ".3"}},
	}
	for _, tt := range tests {
		l := lexer{s: tt.in}
		var got []string
		for {
			tok := l.next()
			if tok.kind == tokEOF {
				break
			}
			got = append(got, tok.text)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("lex(%q)=%q, want %q", tt.in, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("lex(%q)=%q, want %q", tt.in, got, tt.want)
			}
		}
	}
}
