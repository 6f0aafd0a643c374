package kaleido

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []Token
	}{
		{"empty", "", nil},
		{"spaces", " \t \r\n ", nil},
		{"def", "def func(x) x + 1;", []Token{
			{Kind: TokenDef, Pos: 1},
			{Kind: TokenIdent, Text: "func", Pos: 5},
			{Kind: TokenOpen, Pos: 9},
			{Kind: TokenIdent, Text: "x", Pos: 10},
			{Kind: TokenClose, Pos: 11},
			{Kind: TokenIdent, Text: "x", Pos: 13},
			{Kind: TokenOp, Text: "+", Pos: 15},
			{Kind: TokenNumber, Num: 1, Pos: 17},
			{Kind: TokenDelim, Pos: 18},
		}},
		{"extern", "extern sin(x);", []Token{
			{Kind: TokenExtern, Pos: 1},
			{Kind: TokenIdent, Text: "sin", Pos: 8},
			{Kind: TokenOpen, Pos: 11},
			{Kind: TokenIdent, Text: "x", Pos: 12},
			{Kind: TokenClose, Pos: 13},
			{Kind: TokenDelim, Pos: 14},
		}},
		{"call", "add(1, 2)", []Token{
			{Kind: TokenIdent, Text: "add", Pos: 1},
			{Kind: TokenOpen, Pos: 4},
			{Kind: TokenNumber, Num: 1, Pos: 5},
			{Kind: TokenComma, Pos: 6},
			{Kind: TokenNumber, Num: 2, Pos: 8},
			{Kind: TokenClose, Pos: 9},
		}},
		{"decimal", "1.5", []Token{
			{Kind: TokenNumber, Num: 1.5, Pos: 1},
		}},
		{"trailing-dot", "2.", []Token{
			{Kind: TokenNumber, Num: 2, Pos: 1},
		}},
		{"double-dot", "1.5.5", []Token{
			{Kind: TokenNumber, Num: 1.5, Pos: 1},
			{Kind: TokenOp, Text: ".", Pos: 4},
			{Kind: TokenNumber, Num: 5, Pos: 5},
		}},
		{"leading-dot", ".5", []Token{
			{Kind: TokenOp, Text: ".", Pos: 1},
			{Kind: TokenNumber, Num: 5, Pos: 2},
		}},
		{"ident-digits", "a1 1a", []Token{
			{Kind: TokenIdent, Text: "a1", Pos: 1},
			{Kind: TokenNumber, Num: 1, Pos: 4},
			{Kind: TokenIdent, Text: "a", Pos: 5},
		}},
		{"keyword-prefix", "define externs", []Token{
			{Kind: TokenIdent, Text: "define", Pos: 1},
			{Kind: TokenIdent, Text: "externs", Pos: 8},
		}},
		{"catchall", "x $ <", []Token{
			{Kind: TokenIdent, Text: "x", Pos: 1},
			{Kind: TokenOp, Text: "$", Pos: 3},
			{Kind: TokenOp, Text: "<", Pos: 5},
		}},
		{"underscore", "_x", []Token{
			{Kind: TokenOp, Text: "_", Pos: 1},
			{Kind: TokenIdent, Text: "x", Pos: 2},
		}},
		{"unicode-ident", "π2", []Token{
			{Kind: TokenIdent, Text: "π2", Pos: 1},
		}},
		{"comment", "# note\na", []Token{
			{Kind: TokenIdent, Text: "a", Pos: 8},
		}},
		{"comment-inline", "1 # rest\n2", []Token{
			{Kind: TokenNumber, Num: 1, Pos: 1},
			{Kind: TokenNumber, Num: 2, Pos: 10},
		}},
		{"comment-only", "# one\n# two", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Tokenize(c.src)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("tokenizing %q:\nwant %v\ngot  %v", c.src, c.want, got)
			}
		})
	}
}

// TestCommentStripping checks that removing comments is line-scoped: the
// token stream of commented source matches the stream of the source with
// comment lines blanked out.
func TestCommentStripping(t *testing.T) {
	cases := []struct {
		name string
		src  string
		bare string
	}{
		{"line", "# somebody \na", "           \na"},
		{"tail", "x + 1 # add one\n", "x + 1          \n"},
		{"hash-only", "#\n#\ny", " \n \ny"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Tokenize(c.src)
			want := Tokenize(c.bare)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("tokenizing %q:\nwant %v\ngot  %v", c.src, want, got)
			}
		})
	}
}
