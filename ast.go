package kaleido

import (
	"strconv"
	"strings"
)

// Prototype is a function signature: a name and its ordered parameter names.
// Every parameter and the return value are the language's one numeric type.
// The parser does not require parameter names to be unique; see Check.
type Prototype struct {
	Name   string
	Params []string
}

func (p Prototype) String() string {
	var b strings.Builder
	p.write(&b)
	return b.String()
}

func (p Prototype) write(b *strings.Builder) {
	b.WriteString(p.Name)
	b.WriteByte('(')
	for i, name := range p.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
	}
	b.WriteByte(')')
}

// Expr is a node in an expression tree. An expression is a strict tree: each
// node exclusively owns its children. The concrete types are Literal,
// Variable, Binary, and Call.
//
// Every Expr prints a canonical, fully parenthesized form that parses back
// to a structurally identical tree.
type Expr interface {
	write(b *strings.Builder)
}

// Literal is a numeric literal.
type Literal struct {
	Value float64
}

// Variable is a reference to a parameter or variable by name.
type Variable struct {
	Name string
}

// Binary applies a single-character infix operator to two operands.
type Binary struct {
	Op          string
	Left, Right Expr
}

// Call applies a named function to zero or more argument expressions.
type Call struct {
	Callee string
	Args   []Expr
}

func (l Literal) write(b *strings.Builder) {
	// The 'f' format never produces an exponent, which the tokenizer could
	// not read back.
	b.WriteString(strconv.FormatFloat(l.Value, 'f', -1, 64))
}

func (v Variable) write(b *strings.Builder) {
	b.WriteString(v.Name)
}

func (n Binary) write(b *strings.Builder) {
	b.WriteByte('(')
	n.Left.write(b)
	b.WriteByte(' ')
	b.WriteString(n.Op)
	b.WriteByte(' ')
	n.Right.write(b)
	b.WriteByte(')')
}

func (c Call) write(b *strings.Builder) {
	b.WriteString(c.Callee)
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.write(b)
	}
	b.WriteByte(')')
}

func (l Literal) String() string  { return exprString(l) }
func (v Variable) String() string { return exprString(v) }
func (n Binary) String() string   { return exprString(n) }
func (c Call) String() string     { return exprString(c) }

func exprString(e Expr) string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

// Node is a top-level item produced by the parser, in source order: either a
// Function or an Extern.
type Node interface {
	write(b *strings.Builder)
	item()
}

// Function is a function definition: a prototype and a single body
// expression. A bare top-level expression parses as an anonymous Function
// with an empty name and no parameters.
type Function struct {
	Proto Prototype
	Body  Expr
}

// Extern declares the signature of a function implemented elsewhere.
type Extern struct {
	Proto Prototype
}

func (f Function) item() {}
func (e Extern) item()   {}

// Anonymous reports whether f wraps a bare top-level expression.
func (f Function) Anonymous() bool {
	return f.Proto.Name == "" && len(f.Proto.Params) == 0
}

func (f Function) write(b *strings.Builder) {
	if f.Anonymous() {
		f.Body.write(b)
		return
	}
	b.WriteString("def ")
	f.Proto.write(b)
	b.WriteByte(' ')
	f.Body.write(b)
}

func (e Extern) write(b *strings.Builder) {
	b.WriteString("extern ")
	e.Proto.write(b)
}

func (f Function) String() string {
	var b strings.Builder
	f.write(&b)
	return b.String()
}

func (e Extern) String() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}
