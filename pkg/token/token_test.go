package token

import (
	"math"
	"testing"
)

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{New(LeftParen, 0), "("},
		{New(Comma, 0), ","},
		{New(BangEqual, 0), "!="},
		{New(LessEqual, 2), "<="},
		{NewIdentifier("count", 1), "count"},
		{NewString("foo", 0), `"foo"`},
		{NewNumber(123, 0), "123"},
		{NewNumber(45.67, 0), "45.67"},
		{New(While, 0), "while"},
		{New(Eof, 9), "<EOF>"},
	}
	for _, tc := range cases {
		if got := tc.tok.String(); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.tok.Kind, tc.want, got)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	for _, word := range []string{"and", "class", "else", "false", "for", "fun", "if", "nil", "or", "print", "return", "super", "this", "true", "var", "while"} {
		kind, ok := LookupKeyword(word)
		if !ok {
			t.Fatalf("expected %q to be reserved", word)
		}
		if kind < And || kind > While {
			t.Fatalf("expected %s to be a keyword kind", kind)
		}
		if got := New(kind, 0).String(); got != word {
			t.Fatalf("expected keyword text %q, got %q", word, got)
		}
	}
	if _, ok := LookupKeyword("variable"); ok {
		t.Fatalf("did not expect 'variable' to be reserved")
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		3:           "3",
		-5:          "-5",
		0.5:         "0.5",
		1.25:        "1.25",
		math.Inf(1): "inf",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Fatalf("FormatNumber(%v): expected %q, got %q", in, want, got)
		}
	}
	if got := FormatNumber(math.NaN()); got != "NaN" {
		t.Fatalf("expected NaN, got %q", got)
	}
}

func TestNamePanicsForNonIdentifier(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-identifier token")
		}
	}()
	_ = New(Plus, 0).Name()
}
