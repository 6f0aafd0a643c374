package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/kaleidolang/kaleido"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		with         [][2]string
		echo, lint   bool
		prec         int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.IntVar(&prec, "p", 64, "precision of calculations in bits")
	flag.BoolVar(&echo, "echo", false, "print parsed items")
	flag.BoolVar(&lint, "lint", false, "print diagnostics for the parsed program")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	src, err := source(inname, flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	p := kaleido.New(kaleido.Operator("^", 60))
	nodes, err := p.ParseString(src)
	if err != nil {
		log.Fatal(err)
	}
	if echo {
		for _, n := range nodes {
			fmt.Printf("%v;\n", n)
		}
	}
	if lint {
		for _, is := range kaleido.Check(nodes) {
			fmt.Printf("%s: %s: %s\n", is.Level, is.Path, is.Message)
		}
	}

	opts := []kaleido.ContextOption{kaleido.Prec(uint(prec))}
	for _, d := range with {
		v, ok := new(big.Float).SetPrec(uint(prec)).SetString(d[1])
		if !ok {
			log.Fatalf("bad value for %s: %q", d[0], d[1])
		}
		opts = append(opts, kaleido.SetVar(d[0], v))
	}
	ctx := kaleido.NewContext(opts...)

	verb += "\n"
	for _, n := range nodes {
		r, err := ctx.Exec(n)
		if err != nil {
			log.Fatal(err)
		}
		if r != nil {
			fmt.Printf(verb, r)
		}
	}
}

// source assembles the program text: remaining arguments joined by spaces,
// or the contents of the input file or stdin.
func source(inname string, args []string) (string, error) {
	if len(args) > 0 && inname == "" {
		return strings.Join(args, " "), nil
	}
	if inname == "" || inname == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(inname)
	return string(b), err
}
