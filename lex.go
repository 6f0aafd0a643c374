package kaleido

import (
	"errors"
	"strconv"
	"unicode"
)

// TokenKind classifies a lexical token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenDef is the def keyword.
	TokenDef
	// TokenExtern is the extern keyword.
	TokenExtern
	// TokenDelim is the ; separating top-level items.
	TokenDelim
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
	// TokenComma is the argument and parameter separator.
	TokenComma
	// TokenIdent is a name; Text holds it.
	TokenIdent
	// TokenOp is a single-character operator; Text holds its symbol.
	TokenOp
	// TokenNumber is a numeric literal; Num holds its value.
	TokenNumber
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "none"
	case TokenDef:
		return "def"
	case TokenExtern:
		return "extern"
	case TokenDelim:
		return "delimiter"
	case TokenOpen:
		return "open paren"
	case TokenClose:
		return "close paren"
	case TokenComma:
		return "comma"
	case TokenIdent:
		return "identifier"
	case TokenOp:
		return "operator"
	case TokenNumber:
		return "number"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is one immutable lexical unit.
type Token struct {
	// Text is the name of an identifier or the symbol of an operator. It is
	// empty for every other kind.
	Text string
	// Num is the value of a number token.
	Num float64
	// Pos is the 1-based rune offset of the token in the source.
	Pos int
	// Kind is the token's lexical category.
	Kind TokenKind
}

func (t Token) String() string {
	switch t.Kind {
	case TokenDef:
		return `keyword "def"`
	case TokenExtern:
		return `keyword "extern"`
	case TokenDelim:
		return `";"`
	case TokenOpen:
		return `"("`
	case TokenClose:
		return `")"`
	case TokenComma:
		return `","`
	case TokenIdent:
		return "identifier " + strconv.Quote(t.Text)
	case TokenOp:
		return "operator " + strconv.Quote(t.Text)
	case TokenNumber:
		return "number " + strconv.FormatFloat(t.Num, 'g', -1, 64)
	default:
		return t.Kind.String()
	}
}

// Tokenize converts source text into its tokens, in source order. Comments,
// from # to the end of the line, and whitespace produce no tokens. Tokenize
// accepts arbitrary input: any character that fits no other category becomes
// a single-character operator token.
func Tokenize(src string) []Token {
	var toks []Token
	r := []rune(src)
	i := 0
	for i < len(r) {
		c := r[i]
		switch {
		case c == '#':
			for i < len(r) && r[i] != '\n' {
				i++
			}
		case unicode.IsSpace(c):
			i++
		case unicode.IsLetter(c):
			// Maximal munch: a letter followed by digits is one identifier,
			// never an identifier and a number.
			start := i
			for i < len(r) && isWord(r[i]) {
				i++
			}
			tok := Token{Pos: start + 1}
			switch text := string(r[start:i]); text {
			case "def":
				tok.Kind = TokenDef
			case "extern":
				tok.Kind = TokenExtern
			default:
				tok.Kind = TokenIdent
				tok.Text = text
			}
			toks = append(toks, tok)
		case isDigit(c):
			start := i
			for i < len(r) && isDigit(r[i]) {
				i++
			}
			if i < len(r) && r[i] == '.' {
				i++
				for i < len(r) && isDigit(r[i]) {
					i++
				}
			}
			text := string(r[start:i])
			v, err := strconv.ParseFloat(text, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				// The scanned run is digits with at most one dot, so this is
				// unreachable. Out-of-range runs saturate to infinity.
				panic("kaleido: invalid number " + strconv.Quote(text) + ": " + err.Error())
			}
			toks = append(toks, Token{Kind: TokenNumber, Num: v, Pos: start + 1})
		case c == ';':
			toks = append(toks, Token{Kind: TokenDelim, Pos: i + 1})
			i++
		case c == '(':
			toks = append(toks, Token{Kind: TokenOpen, Pos: i + 1})
			i++
		case c == ')':
			toks = append(toks, Token{Kind: TokenClose, Pos: i + 1})
			i++
		case c == ',':
			toks = append(toks, Token{Kind: TokenComma, Pos: i + 1})
			i++
		default:
			toks = append(toks, Token{Kind: TokenOp, Text: string(c), Pos: i + 1})
			i++
		}
	}
	return toks
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
