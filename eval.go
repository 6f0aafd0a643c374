package kaleido

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Context executes parsed nodes: an Extern binds a builtin signature, a
// named Function becomes callable, and an anonymous Function is evaluated
// immediately. Arithmetic is big.Float at the context's precision. A Context
// is not safe to use concurrently.
//
// Execution errors (NameError, FuncError, ArityError, OpError, DomainError)
// are a separate namespace from the parser's; parsing never produces them.
type Context struct {
	prec  uint
	vars  map[string]*big.Float
	decls map[string]Func
	defs  map[string]Function
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  *big.Float
	}
	varsopt map[string]*big.Float
	precopt uint
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}
func (precopt) ctxOption() {}

// SetVar sets the value of a variable in the context. Variables are visible
// to every evaluation, underneath any parameter bindings.
func SetVar(name string, val *big.Float) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]*big.Float) ContextOption {
	return varsopt(vars)
}

// Prec sets the precision of calculations.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new execution context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{
		prec:  64,
		vars:  make(map[string]*big.Float),
		decls: make(map[string]Func),
		defs:  make(map[string]Function),
	}
	// Apply the last precision first so variable values copy at the right
	// precision.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			ctx.prec = uint(p)
			break
		}
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case varopt:
			ctx.vars[opt.name] = new(big.Float).SetPrec(ctx.prec).Set(opt.val)
		case varsopt:
			for k, v := range opt {
				ctx.vars[k] = new(big.Float).SetPrec(ctx.prec).Set(v)
			}
		case precopt:
			// Already done.
		default:
			panic("kaleido: unknown option type")
		}
	}
	return ctx
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, val *big.Float) *Context {
	ctx.vars[name] = new(big.Float).SetPrec(ctx.prec).Set(val)
	return ctx
}

// Lookup returns a copy of the value of a variable. If there is no such
// variable in the context, then the result is nil.
func (ctx *Context) Lookup(name string) *big.Float {
	v := ctx.vars[name]
	if v == nil {
		return nil
	}
	return new(big.Float).Copy(v)
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Exec executes one node. An Extern registers the builtin of that name for
// calls; a named Function defines it; an anonymous Function is evaluated
// immediately and its value returned. The result is nil for any node that is
// not an anonymous function.
func (ctx *Context) Exec(n Node) (*big.Float, error) {
	switch n := n.(type) {
	case Extern:
		fn, ok := builtins[n.Proto.Name]
		if !ok {
			return nil, &FuncError{Name: n.Proto.Name}
		}
		if fn.Arity() != len(n.Proto.Params) {
			return nil, &ArityError{Name: n.Proto.Name, Want: fn.Arity(), Got: len(n.Proto.Params)}
		}
		ctx.decls[n.Proto.Name] = fn
		return nil, nil
	case Function:
		if n.Anonymous() {
			return ctx.eval(n.Body, nil)
		}
		ctx.defs[n.Proto.Name] = n
		return nil, nil
	default:
		panic("kaleido: unknown node type")
	}
}

// Run executes nodes in order and returns the value of the last anonymous
// function, or nil if there was none.
func (ctx *Context) Run(nodes []Node) (*big.Float, error) {
	var last *big.Float
	for _, n := range nodes {
		r, err := ctx.Exec(n)
		if err != nil {
			return nil, err
		}
		if r != nil {
			last = r
		}
	}
	return last, nil
}

func (ctx *Context) new() *big.Float {
	return new(big.Float).SetPrec(ctx.prec)
}

// eval evaluates an expression under an environment of parameter bindings.
// Bindings shadow context variables.
func (ctx *Context) eval(e Expr, env map[string]*big.Float) (*big.Float, error) {
	switch e := e.(type) {
	case Literal:
		return ctx.new().SetFloat64(e.Value), nil
	case Variable:
		if v, ok := env[e.Name]; ok {
			return new(big.Float).Copy(v), nil
		}
		if v, ok := ctx.vars[e.Name]; ok {
			return new(big.Float).Copy(v), nil
		}
		return nil, &NameError{Name: e.Name}
	case Binary:
		l, err := ctx.eval(e.Left, env)
		if err != nil {
			return nil, err
		}
		r, err := ctx.eval(e.Right, env)
		if err != nil {
			return nil, err
		}
		return ctx.binary(e.Op, l, r)
	case Call:
		args := make([]*big.Float, len(e.Args))
		for i, a := range e.Args {
			v, err := ctx.eval(a, env)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return ctx.call(e.Callee, args)
	default:
		panic("kaleido: unknown expression type")
	}
}

func (ctx *Context) binary(op string, l, r *big.Float) (*big.Float, error) {
	out := ctx.new()
	switch op {
	case "+":
		return out.Add(l, r), nil
	case "-":
		return out.Sub(l, r), nil
	case "*":
		return out.Mul(l, r), nil
	case "/":
		// Guard against invalid divisions, 0/0 or inf/inf.
		if l.Sign() == 0 && r.Sign() == 0 || l.IsInf() && r.IsInf() {
			return nil, &DomainError{X: r, Func: "/"}
		}
		return out.Quo(l, r), nil
	case "^":
		// Guard against invalid exponentiations, i.e. negative base.
		if l.Signbit() {
			return nil, &DomainError{X: l, Func: "^"}
		}
		return bigfloat.Pow(out, l, r), nil
	default:
		return nil, &OpError{Op: op}
	}
}

func (ctx *Context) call(name string, args []*big.Float) (*big.Float, error) {
	if fn, ok := ctx.defs[name]; ok {
		if len(fn.Proto.Params) != len(args) {
			return nil, &ArityError{Name: name, Want: len(fn.Proto.Params), Got: len(args)}
		}
		// Duplicate parameter names are legal; the rightmost wins.
		env := make(map[string]*big.Float, len(args))
		for i, param := range fn.Proto.Params {
			env[param] = args[i]
		}
		return ctx.eval(fn.Body, env)
	}
	if fn, ok := ctx.decls[name]; ok {
		if fn.Arity() != len(args) {
			return nil, &ArityError{Name: name, Want: fn.Arity(), Got: len(args)}
		}
		r := ctx.new()
		if err := fn.Call(ctx, args, r); err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, &FuncError{Name: name}
}

// NameError is an error from a reference to a variable that is bound neither
// as a parameter nor in the context.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable " + strconv.Quote(err.Name)
}

// FuncError is an error from a call to a function that is neither defined
// nor declared, or from an extern declaration naming an unknown builtin.
type FuncError struct {
	// Name is the function name.
	Name string
}

func (err *FuncError) Error() string {
	return "unknown function " + strconv.Quote(err.Name)
}

// ArityError is an error from a call or extern declaration whose argument
// count does not match the function's parameter count.
type ArityError struct {
	// Name is the function name.
	Name string
	// Want is the number of parameters the function takes.
	Want int
	// Got is the number of arguments supplied.
	Got int
}

func (err *ArityError) Error() string {
	return "cannot call " + err.Name + " with " + strconv.Itoa(err.Got) +
		" arguments (takes " + strconv.Itoa(err.Want) + ")"
}

// OpError is an error from evaluating a binary operator the context has no
// arithmetic for.
type OpError struct {
	// Op is the operator symbol.
	Op string
}

func (err *OpError) Error() string {
	return "unknown binary operator " + strconv.Quote(err.Op)
}
