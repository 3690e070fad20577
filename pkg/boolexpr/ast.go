// Package boolexpr compiles a small textual Boolean-expression language
// into a network.Ntk, standing in for the original's BLIF/Verilog readers
// (original_source/src/base/cba/cbaReadBlif.c, cbaReadVer.c) with a format
// far simpler than either: a sequence of semicolon-terminated output
// assignments over the usual logic operators, with free layout. The package is grounded on the teacher's lambda-term
// front-end (pkg/lambda: ast.go/parser.go/translate.go) — same
// token/recursive-descent/AST-walk shape, generalized from lambda terms
// with variable capture to loop-free Boolean expressions with none.
package boolexpr

import "fmt"

// Expr is a node of a parsed Boolean expression.
type Expr interface {
	fmt.Stringer
}

// Var is a named input signal, declared implicitly by its first use.
type Var struct{ Name string }

func (v Var) String() string { return v.Name }

// Const is a literal 0 or 1.
type Const struct{ Value bool }

func (c Const) String() string {
	if c.Value {
		return "1"
	}
	return "0"
}

// Not is logical negation.
type Not struct{ X Expr }

func (n Not) String() string { return fmt.Sprintf("!%s", n.X) }

// And is logical conjunction.
type And struct{ L, R Expr }

func (a And) String() string { return fmt.Sprintf("(%s & %s)", a.L, a.R) }

// Or is logical disjunction.
type Or struct{ L, R Expr }

func (o Or) String() string { return fmt.Sprintf("(%s | %s)", o.L, o.R) }

// Xor is logical exclusive-or.
type Xor struct{ L, R Expr }

func (x Xor) String() string { return fmt.Sprintf("(%s ^ %s)", x.L, x.R) }

// Assignment binds a single PO name to the expression driving it, the
// language's only statement form ("out = a & !b;").
type Assignment struct {
	Name string
	Expr Expr
}
