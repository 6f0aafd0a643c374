package kaleido

import "strconv"

// ParseError is an error with position information. Every error the parser
// reports implements ParseError.
type ParseError interface {
	error
	// Pos returns the 1-based rune offset of the token that caused the
	// error, or 0 when the input was empty.
	Pos() int
}

// TokenError indicates a token that is not valid in its grammar position.
type TokenError struct {
	// Tok is the offending token.
	Tok Token
}

func (err *TokenError) Error() string {
	return errpos(err.Tok.Pos, "invalid token "+err.Tok.String())
}

func (err *TokenError) Pos() int {
	return err.Tok.Pos
}

// OperatorError indicates an operator token whose symbol has no configured
// binding power.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the symbol with no binding power.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "invalid operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// EOFError indicates that the token stream was exhausted while the grammar
// required more input.
type EOFError struct {
	// Col is the position of the last token of the input, or 0 if the input
	// was empty.
	Col int
}

func (err *EOFError) Error() string {
	return errpos(err.Col, "unexpected end of input")
}

func (err *EOFError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ ParseError = (*TokenError)(nil)
	_ ParseError = (*OperatorError)(nil)
	_ ParseError = (*EOFError)(nil)
)
