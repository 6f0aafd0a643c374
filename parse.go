package kaleido

import (
	"strconv"
	"unicode/utf8"
)

// program   := { item }
// item      := "def" prototype expr | "extern" prototype | ";" | expr
// prototype := ident "(" [ ident { "," ident } ] ")"
// expr      := primary { operator expr }      (precedence climbed)
// primary   := number | ident [ "(" [ expr { "," expr } ] ")" ] | "(" expr ")"

// Parser turns token sequences into AST nodes. Its only state is the
// operator precedence table injected at construction, so a Parser is
// read-only and safe to share; each Parse call descends over its own token
// stream independently.
type Parser struct {
	prec map[string]uint
}

// Option configures a Parser.
type Option interface {
	option(p *Parser)
}

type (
	opopt struct {
		sym  string
		prec uint
	}
	tableopt map[string]uint
)

func (o opopt) option(p *Parser) {
	p.prec[o.sym] = o.prec
}

func (o tableopt) option(p *Parser) {
	for k, v := range o {
		p.prec[k] = v
	}
}

// Operator gives a single-character operator symbol a binding power. Higher
// powers bind tighter. Adding an operator already in the table replaces its
// power. Panics if sym is not exactly one character.
func Operator(sym string, prec uint) Option {
	if utf8.RuneCountInString(sym) != 1 {
		panic("kaleido: operator must be a single character: " + strconv.Quote(sym))
	}
	return opopt{sym, prec}
}

// Table applies Operator for every entry of ops.
func Table(ops map[string]uint) Option {
	o := make(tableopt, len(ops))
	for k, v := range ops {
		if utf8.RuneCountInString(k) != 1 {
			panic("kaleido: operator must be a single character: " + strconv.Quote(k))
		}
		o[k] = v
	}
	return o
}

// New creates a Parser. The default table gives * and / binding power 40 and
// + and - binding power 20; options may add or override operators.
func New(opts ...Option) *Parser {
	p := &Parser{prec: map[string]uint{
		"*": 40,
		"/": 40,
		"+": 20,
		"-": 20,
	}}
	for _, opt := range opts {
		opt.option(p)
	}
	return p
}

// Precedence returns the binding power of an operator symbol and whether the
// symbol is in the parser's table.
func (p *Parser) Precedence(sym string) (uint, bool) {
	prec, ok := p.prec[sym]
	return prec, ok
}

// cursor is a forward cursor over a token sequence with O(1) peek and
// advance.
type cursor struct {
	toks []Token
	k    int
}

func (c *cursor) peek() (Token, bool) {
	if c.k >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[c.k], true
}

func (c *cursor) next() (Token, bool) {
	tok, ok := c.peek()
	if ok {
		c.k++
	}
	return tok, ok
}

func (c *cursor) eof() error {
	col := 0
	if n := len(c.toks); n > 0 {
		col = c.toks[n-1].Pos
	}
	return &EOFError{Col: col}
}

// Parse consumes tokens and produces the top-level nodes in source order.
// Delimiters separate items; a bare expression becomes an anonymous Function
// with an empty name and no parameters. The first malformed construct aborts
// the whole parse with a ParseError: no partial node sequence is returned
// and no recovery is attempted.
func (p *Parser) Parse(tokens []Token) ([]Node, error) {
	c := &cursor{toks: tokens}
	var nodes []Node
	for {
		tok, ok := c.peek()
		if !ok {
			return nodes, nil
		}
		switch tok.Kind {
		case TokenDef:
			c.next()
			fn, err := p.parseFunction(c)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, fn)
		case TokenExtern:
			c.next()
			proto, err := p.parsePrototype(c)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, Extern{Proto: proto})
		case TokenDelim:
			c.next()
		default:
			body, err := p.parseExpr(c)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, Function{Body: body})
		}
	}
}

// ParseString tokenizes src and parses the result.
func (p *Parser) ParseString(src string) ([]Node, error) {
	return p.Parse(Tokenize(src))
}

func (p *Parser) parseFunction(c *cursor) (Function, error) {
	proto, err := p.parsePrototype(c)
	if err != nil {
		return Function{}, err
	}
	// The body is one expression; it is not delimiter-terminated.
	body, err := p.parseExpr(c)
	if err != nil {
		return Function{}, err
	}
	return Function{Proto: proto, Body: body}, nil
}

func (p *Parser) parsePrototype(c *cursor) (Prototype, error) {
	tok, ok := c.next()
	if !ok {
		return Prototype{}, c.eof()
	}
	if tok.Kind != TokenIdent {
		return Prototype{}, &TokenError{Tok: tok}
	}
	proto := Prototype{Name: tok.Text}
	if err := expect(c, TokenOpen); err != nil {
		return Prototype{}, err
	}
	if tok, ok := c.peek(); ok && tok.Kind == TokenClose {
		c.next()
		return proto, nil
	}
	for {
		tok, ok := c.next()
		if !ok {
			return Prototype{}, c.eof()
		}
		if tok.Kind != TokenIdent {
			return Prototype{}, &TokenError{Tok: tok}
		}
		proto.Params = append(proto.Params, tok.Text)
		tok, ok = c.next()
		switch {
		case !ok:
			return Prototype{}, c.eof()
		case tok.Kind == TokenClose:
			return proto, nil
		case tok.Kind == TokenComma:
			// Next parameter.
		default:
			return Prototype{}, &TokenError{Tok: tok}
		}
	}
}

func expect(c *cursor, kind TokenKind) error {
	tok, ok := c.next()
	if !ok {
		return c.eof()
	}
	if tok.Kind != kind {
		return &TokenError{Tok: tok}
	}
	return nil
}

// parseExpr parses one full expression: a primary followed by operator
// suffixes folded by precedence climbing.
func (p *Parser) parseExpr(c *cursor) (Expr, error) {
	lhs, err := p.parsePrimary(c)
	if err != nil {
		return nil, err
	}
	return p.parseRHS(c, 0, lhs)
}

// parseRHS folds binary operator suffixes onto lhs. It consumes operators
// with binding power at least min, parses a primary right operand, and
// absorbs any strictly tighter-binding suffix into that operand before
// folding, so equal-precedence chains nest to the left. An operator with no
// binding power is an error, never the end of the expression.
func (p *Parser) parseRHS(c *cursor, min uint, lhs Expr) (Expr, error) {
	for {
		tok, ok := c.peek()
		if !ok || tok.Kind != TokenOp {
			return lhs, nil
		}
		prec, ok := p.prec[tok.Text]
		if !ok {
			return nil, &OperatorError{Col: tok.Pos, Operator: tok.Text}
		}
		if prec < min {
			return lhs, nil
		}
		c.next()
		rhs, err := p.parsePrimary(c)
		if err != nil {
			return nil, err
		}
		if next, ok := c.peek(); ok && next.Kind == TokenOp {
			nextprec, ok := p.prec[next.Text]
			if !ok {
				return nil, &OperatorError{Col: next.Pos, Operator: next.Text}
			}
			if nextprec > prec {
				rhs, err = p.parseRHS(c, prec+1, rhs)
				if err != nil {
					return nil, err
				}
			}
		}
		lhs = Binary{Op: tok.Text, Left: lhs, Right: rhs}
	}
}

func (p *Parser) parsePrimary(c *cursor) (Expr, error) {
	tok, ok := c.next()
	if !ok {
		return nil, c.eof()
	}
	switch tok.Kind {
	case TokenNumber:
		return Literal{Value: tok.Num}, nil
	case TokenIdent:
		if open, ok := c.peek(); !ok || open.Kind != TokenOpen {
			return Variable{Name: tok.Text}, nil
		}
		c.next()
		args, err := p.parseArgs(c)
		if err != nil {
			return nil, err
		}
		return Call{Callee: tok.Text, Args: args}, nil
	case TokenOpen:
		e, err := p.parseExpr(c)
		if err != nil {
			return nil, err
		}
		if err := expect(c, TokenClose); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, &TokenError{Tok: tok}
	}
}

// parseArgs parses the comma-separated call arguments after the open paren,
// through the matching close paren. Each argument is a full expression.
func (p *Parser) parseArgs(c *cursor) ([]Expr, error) {
	if tok, ok := c.peek(); ok && tok.Kind == TokenClose {
		c.next()
		return nil, nil
	}
	var args []Expr
	for {
		a, err := p.parseExpr(c)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		tok, ok := c.next()
		switch {
		case !ok:
			return nil, c.eof()
		case tok.Kind == TokenClose:
			return args, nil
		case tok.Kind == TokenComma:
			// Next argument.
		default:
			return nil, &TokenError{Tok: tok}
		}
	}
}
