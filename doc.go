// Package kaleido implements the front end of a tiny expression-oriented
// language: a tokenizer and a precedence-climbing parser that turn source
// text into a sequence of function definitions, extern declarations, and
// anonymous top-level expressions.
//
// The language has a single numeric type. A program is a sequence of items
// separated by semicolons: "def name(params) body" defines a function,
// "extern name(params)" declares one, and a bare expression becomes an
// anonymous zero-parameter function so a consumer can evaluate it
// immediately.
//
// Operators are single characters with configurable binding powers, so a
// Parser can be extended with custom operators such as ^. The parser does no
// semantic checking; duplicate parameters and undefined names are left to
// the consumer. Context is one such consumer, an arbitrary-precision
// interpreter over the parsed nodes, and Check reports the semantic
// diagnostics the parser deliberately skips.
package kaleido
