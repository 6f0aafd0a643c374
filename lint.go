package kaleido

import "strconv"

// IssueLevel represents severity of a diagnostic.
type IssueLevel string

const (
	// IssueError indicates a construct that cannot execute meaningfully.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a construct that is suspect but executable.
	IssueWarning IssueLevel = "warning"
)

// Issue represents one diagnostic about a parsed program.
type Issue struct {
	Level   IssueLevel // Severity level
	Code    string     // Machine-readable code
	Message string     // Issue message
	Path    string     // Name of the affected function or parameter
}

// Check reports the semantic diagnostics the parser deliberately leaves to
// its consumer: duplicate parameter names, names defined or declared more
// than once, calls to names no item in the program defines or declares, and
// calls whose argument count does not match the known signature. Check never
// mutates the nodes, and parsing never depends on it.
func Check(nodes []Node) []Issue {
	var out []Issue

	arity := make(map[string]int)
	for _, n := range nodes {
		var proto Prototype
		switch n := n.(type) {
		case Extern:
			proto = n.Proto
		case Function:
			if n.Anonymous() {
				continue
			}
			proto = n.Proto
		default:
			continue
		}
		if _, ok := arity[proto.Name]; ok {
			out = append(out, Issue{Level: IssueWarning, Code: "redefinition", Message: "name defined more than once", Path: proto.Name})
		}
		arity[proto.Name] = len(proto.Params)
	}

	for _, n := range nodes {
		switch n := n.(type) {
		case Extern:
			out = append(out, checkParams(n.Proto)...)
		case Function:
			out = append(out, checkParams(n.Proto)...)
			path := ""
			if !n.Anonymous() {
				path = n.Proto.Name + ": "
			}
			out = append(out, checkCalls(n.Body, arity, path)...)
		}
	}

	return out
}

// checkParams reports duplicate parameter names. The grammar accepts them
// and the evaluator binds the rightmost, which is rarely what was meant.
func checkParams(p Prototype) []Issue {
	var out []Issue
	seen := make(map[string]struct{}, len(p.Params))
	for _, name := range p.Params {
		if _, ok := seen[name]; ok {
			out = append(out, Issue{Level: IssueError, Code: "duplicate_param", Message: "duplicate parameter name", Path: p.Name + ": " + name})
			continue
		}
		seen[name] = struct{}{}
	}
	return out
}

func checkCalls(e Expr, arity map[string]int, path string) []Issue {
	switch e := e.(type) {
	case Binary:
		out := checkCalls(e.Left, arity, path)
		return append(out, checkCalls(e.Right, arity, path)...)
	case Call:
		var out []Issue
		want, ok := arity[e.Callee]
		switch {
		case !ok:
			out = append(out, Issue{Level: IssueWarning, Code: "undefined_function", Message: "call to undefined function", Path: path + e.Callee})
		case want != len(e.Args):
			msg := "call with " + strconv.Itoa(len(e.Args)) + " arguments (takes " + strconv.Itoa(want) + ")"
			out = append(out, Issue{Level: IssueWarning, Code: "arity_mismatch", Message: msg, Path: path + e.Callee})
		}
		for _, a := range e.Args {
			out = append(out, checkCalls(a, arity, path)...)
		}
		return out
	}
	return nil
}
