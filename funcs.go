package kaleido

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a builtin function over reals that an extern declaration can bind.
// The function must set r to its result and should not use the value of r
// otherwise.
type Func interface {
	// Call evaluates the function on args, which has length Arity(). Call
	// must not modify the elements of args.
	Call(ctx *Context, args []*big.Float, r *big.Float) error

	// Arity returns the number of parameters the function takes. An extern
	// declaration whose parameter list has a different length is rejected.
	Arity() int
}

// builtins is the registry of functions available to extern declarations.
// Trigonometric functions are bridged through float64, so their results
// carry float64 precision regardless of the context's.
var builtins = map[string]Func{
	"exp": Monadic(bigfloat.Exp),
	"ln":  Monadic(bigfloat.Log),
	"log": Monadic(func(out, in *big.Float) *big.Float {
		bigfloat.Log(out, in)
		in.SetFloat64(10).SetPrec(out.Prec())
		bigfloat.Log(in, in)
		return out.Quo(out, in)
	}),
	"sqrt": Monadic((*big.Float).Sqrt),
	"pow":  Dyadic(bigfloat.Pow),

	"sin":  Monadic(floatfn(math.Sin)),
	"cos":  Monadic(floatfn(math.Cos)),
	"tan":  Monadic(floatfn(math.Tan)),
	"atan": Monadic(floatfn(math.Atan)),

	// constants
	"pi": Niladic(bigfloat.Pi),
	"e": Niladic(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}),
}

// Builtins lists the names an extern declaration can bind, with the number
// of parameters each takes.
func Builtins() map[string]int {
	m := make(map[string]int, len(builtins))
	for k, f := range builtins {
		m[k] = f.Arity()
	}
	return m
}

// floatfn lifts a float64 function to big.Float operands.
func floatfn(f func(float64) float64) func(out, in *big.Float) *big.Float {
	return func(out, in *big.Float) *big.Float {
		x, _ := in.Float64()
		return out.SetFloat64(f(x))
	}
}

// domain recovers a panic from a function called outside its domain and
// converts it to the returned error. Any other panic value propagates.
func domain(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(error)
	if !ok {
		panic(r)
	}
	if errors.As(e, &DomainError{}) || errors.As(e, &big.ErrNaN{}) {
		*err = e
		return
	}
	panic(e)
}

type monadic struct {
	f func(out, in *big.Float) *big.Float
}

func (m monadic) Call(ctx *Context, args []*big.Float, r *big.Float) (err error) {
	defer domain(&err)
	r.SetPrec(ctx.Prec())
	m.f(r, args[0])
	return nil
}

func (m monadic) Arity() int {
	return 1
}

// Monadic wraps a function of one variable into a Func. f must set out to
// its result; its return value is always ignored. If f is called on an
// argument outside its domain, it should panic with an error of type
// big.ErrNaN, or one that unwraps to it.
func Monadic(f func(out, in *big.Float) *big.Float) Func {
	return monadic{f}
}

type dyadic struct {
	f func(out, a, b *big.Float) *big.Float
}

func (d dyadic) Call(ctx *Context, args []*big.Float, r *big.Float) (err error) {
	defer domain(&err)
	r.SetPrec(ctx.Prec())
	d.f(r, args[0], args[1])
	return nil
}

func (d dyadic) Arity() int {
	return 2
}

// Dyadic wraps a function of two variables into a Func, under the same
// contract as Monadic.
func Dyadic(f func(out, a, b *big.Float) *big.Float) Func {
	return dyadic{f}
}

type niladic struct {
	f func(out *big.Float) *big.Float
}

func (n niladic) Call(ctx *Context, args []*big.Float, r *big.Float) error {
	r.SetPrec(ctx.Prec())
	n.f(r)
	return nil
}

func (n niladic) Arity() int {
	return 0
}

// Niladic wraps a function of zero variables, generally a function which
// computes a constant, into a Func. f must set out to its result; its return
// value is always ignored. Unlike Monadic, the wrapped function is expected
// never to panic.
func Niladic(f func(out *big.Float) *big.Float) Func {
	return niladic{f}
}

// DomainError is an error returned when a function is called on arguments
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Func is a name identifying the function.
	Func string
}

func (err DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + strconv.Quote(err.Func)
	}
	return r
}
