package kaleido_test

import (
	"reflect"
	"testing"

	"github.com/kaleidolang/kaleido"
)

func TestCheck(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		codes []string
	}{
		{"clean", "def add(x, y) x + y; extern sqrt(x); add(sqrt(4), 1)", nil},
		{"dup-param", "def f(x, x) x;", []string{"duplicate_param"}},
		{"dup-extern-param", "extern pow(x, x);", []string{"duplicate_param"}},
		{"redefinition", "def f(x) x; def f(y) y;", []string{"redefinition"}},
		{"extern-shadows-def", "def sqrt(x) x; extern sqrt(x);", []string{"redefinition"}},
		{"undefined-call", "f(1)", []string{"undefined_function"}},
		{"undefined-in-def", "def g(x) f(x);", []string{"undefined_function"}},
		{"arity", "def f(x) x; f(1, 2)", []string{"arity_mismatch"}},
		{"arity-nested", "def f(x) x; f(f())", []string{"arity_mismatch"}},
		{"several", "def f(x, x) f(x, x, x);", []string{"duplicate_param", "arity_mismatch"}},
		{"forward-call", "f(1); def f(x) x;", nil},
		{"recursive", "def f(x) f(x);", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			nodes, err := kaleido.New().ParseString(c.src)
			if err != nil {
				t.Fatalf("parsing %q: %v", c.src, err)
			}
			var codes []string
			for _, is := range kaleido.Check(nodes) {
				codes = append(codes, is.Code)
			}
			if !reflect.DeepEqual(codes, c.codes) {
				t.Errorf("checking %q: want %v, got %v", c.src, c.codes, codes)
			}
		})
	}
}

func TestCheckIssueDetail(t *testing.T) {
	nodes, err := kaleido.New().ParseString("def f(x, x) x;")
	if err != nil {
		t.Fatal(err)
	}
	issues := kaleido.Check(nodes)
	if len(issues) != 1 {
		t.Fatalf("want 1 issue, got %v", issues)
	}
	is := issues[0]
	if is.Level != kaleido.IssueError {
		t.Errorf("want level %q, got %q", kaleido.IssueError, is.Level)
	}
	if is.Path != "f: x" {
		t.Errorf("want path %q, got %q", "f: x", is.Path)
	}
}

func TestCheckAnonymousPath(t *testing.T) {
	nodes, err := kaleido.New().ParseString("missing(1)")
	if err != nil {
		t.Fatal(err)
	}
	issues := kaleido.Check(nodes)
	if len(issues) != 1 {
		t.Fatalf("want 1 issue, got %v", issues)
	}
	if issues[0].Path != "missing" {
		t.Errorf("want bare path %q, got %q", "missing", issues[0].Path)
	}
}
