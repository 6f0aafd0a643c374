package kaleido_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/kaleidolang/kaleido"
)

func TestBuiltins(t *testing.T) {
	want := map[string]int{
		"exp": 1, "ln": 1, "log": 1, "sqrt": 1, "pow": 2,
		"sin": 1, "cos": 1, "tan": 1, "atan": 1,
		"pi": 0, "e": 0,
	}
	got := kaleido.Builtins()
	for name, arity := range want {
		if g, ok := got[name]; !ok {
			t.Errorf("no builtin named %q", name)
		} else if g != arity {
			t.Errorf("builtin %q: want arity %d, got %d", name, arity, g)
		}
	}
}

func TestBuiltinValues(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"pow", "extern pow(x, y); pow(2, 10)", 1024},
		{"sqrt", "extern sqrt(x); sqrt(16)", 4},
		{"ln-one", "extern ln(x); ln(1)", 0},
		{"log", "extern log(x); log(1000)", 3},
		{"exp-zero", "extern exp(x); exp(0)", 1},
		{"pi", "extern pi(); pi()", math.Pi},
		{"e", "extern e(); e()", math.E},
		{"sin-zero", "extern sin(x); sin(0)", 0},
		{"cos-zero", "extern cos(x); cos(0)", 1},
		{"tan-zero", "extern tan(x); tan(0)", 0},
		{"atan-zero", "extern atan(x); atan(0)", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := run(t, c.src)
			if f, _ := r.Float64(); f != c.want {
				t.Errorf("running %q: want %g, got %g", c.src, c.want, r)
			}
		})
	}
}

func TestFuncPrec(t *testing.T) {
	// Results from builtins take the context's precision, not the default.
	r := run(t, "extern pow(x, y); pow(2, 0.5)", kaleido.Prec(128))
	if r.Prec() != 128 {
		t.Errorf("want result at precision 128, got %d", r.Prec())
	}
}

func TestMonadicDomain(t *testing.T) {
	fn := kaleido.Monadic((*big.Float).Sqrt)
	if fn.Arity() != 1 {
		t.Fatalf("want arity 1, got %d", fn.Arity())
	}
	ctx := kaleido.NewContext()
	r := new(big.Float)
	err := fn.Call(ctx, []*big.Float{big.NewFloat(-1)}, r)
	if err == nil {
		t.Error("no error from sqrt of a negative")
	}
}

func TestNiladic(t *testing.T) {
	fn := kaleido.Niladic(func(out *big.Float) *big.Float { return out.SetFloat64(7) })
	if fn.Arity() != 0 {
		t.Fatalf("want arity 0, got %d", fn.Arity())
	}
	r := new(big.Float)
	if err := fn.Call(kaleido.NewContext(), nil, r); err != nil {
		t.Fatal(err)
	}
	if r.Cmp(big.NewFloat(7)) != 0 {
		t.Errorf("want 7, got %v", r)
	}
}

func TestDomainErrorMessage(t *testing.T) {
	err := kaleido.DomainError{X: big.NewFloat(-1), Func: "sqrt"}
	if got := err.Error(); got != `-1 outside domain of "sqrt"` {
		t.Errorf("wrong message: %q", got)
	}
	err = kaleido.DomainError{X: big.NewFloat(-1)}
	if got := err.Error(); got != "-1 outside domain" {
		t.Errorf("wrong message: %q", got)
	}
}
