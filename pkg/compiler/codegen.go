package compiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/syntheon/boolnet/pkg/boolexpr"
)

// CodeGenerator turns a parsed Boolean-expression program into a
// self-contained Go program: a package main that reads "name=0/1" pairs off
// os.Args, evaluates every assignment's expression under that input, and
// prints "name value" for each output in source order. Compiler.Compile
// hands the generated text to go build the same way the teacher's
// CodeGenerator fed lambda-compiled Go code to it.
type CodeGenerator struct {
	SourceFile string
	SourceText string
}

// Generate renders assignments as Go source. Unlike the interaction-net
// translation this replaces, there is no runtime graph to build: each
// output is a single boolean expression over named inputs, so the
// generated program just computes and prints it directly.
func (g CodeGenerator) Generate(assignments []boolexpr.Assignment) string {
	names := inputNames(assignments)

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated from %s; DO NOT EDIT.\n", g.SourceFile)
	b.WriteString("package main\n\n")
	b.WriteString("import (\n\t\"fmt\"\n\t\"os\"\n\t\"strings\"\n)\n\n")
	b.WriteString("func main() {\n")
	b.WriteString("\tin := map[string]bool{}\n")
	b.WriteString("\tfor _, arg := range os.Args[1:] {\n")
	b.WriteString("\t\tparts := strings.SplitN(arg, \"=\", 2)\n")
	b.WriteString("\t\tif len(parts) != 2 {\n\t\t\tcontinue\n\t\t}\n")
	b.WriteString("\t\tin[parts[0]] = parts[1] == \"1\" || parts[1] == \"true\"\n")
	b.WriteString("\t}\n")
	for _, name := range names {
		fmt.Fprintf(&b, "\t_ = in[%q]\n", name)
	}
	b.WriteString("\n")

	for _, a := range assignments {
		fmt.Fprintf(&b, "\t%s := %s\n", goIdent(a.Name), exprToGo(a.Expr))
		fmt.Fprintf(&b, "\tfmt.Println(%q, %s)\n", a.Name, goIdent(a.Name))
	}
	b.WriteString("}\n")
	return b.String()
}

// inputNames collects every distinct variable referenced across
// assignments, sorted for deterministic generated output.
func inputNames(assignments []boolexpr.Assignment) []string {
	seen := make(map[string]bool)
	var names []string
	var walk func(e boolexpr.Expr)
	walk = func(e boolexpr.Expr) {
		switch v := e.(type) {
		case boolexpr.Var:
			if !seen[v.Name] {
				seen[v.Name] = true
				names = append(names, v.Name)
			}
		case boolexpr.Not:
			walk(v.X)
		case boolexpr.And:
			walk(v.L)
			walk(v.R)
		case boolexpr.Or:
			walk(v.L)
			walk(v.R)
		case boolexpr.Xor:
			walk(v.L)
			walk(v.R)
		}
	}
	for _, a := range assignments {
		walk(a.Expr)
	}
	sort.Strings(names)
	return names
}

// goIdent prefixes a source identifier so a PO name can never collide with
// the generated preamble's own locals (in, arg, parts).
func goIdent(name string) string {
	return "out_" + name
}

func exprToGo(e boolexpr.Expr) string {
	switch v := e.(type) {
	case boolexpr.Var:
		return fmt.Sprintf("in[%q]", v.Name)
	case boolexpr.Const:
		if v.Value {
			return "true"
		}
		return "false"
	case boolexpr.Not:
		return fmt.Sprintf("!(%s)", exprToGo(v.X))
	case boolexpr.And:
		return fmt.Sprintf("(%s && %s)", exprToGo(v.L), exprToGo(v.R))
	case boolexpr.Or:
		return fmt.Sprintf("(%s || %s)", exprToGo(v.L), exprToGo(v.R))
	case boolexpr.Xor:
		return fmt.Sprintf("(%s != %s)", exprToGo(v.L), exprToGo(v.R))
	default:
		return "false"
	}
}
