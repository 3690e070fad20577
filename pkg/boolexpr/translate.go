package boolexpr

import (
	"fmt"

	"github.com/syntheon/boolnet/pkg/network"
)

// Compile parses src and builds a fresh Strash/AIG network.Ntk realizing
// every assignment as a named PO, auto-declaring a PI the first time a
// variable name is referenced — the translation counterpart of
// pkg/lambda's ToDeltaNet/buildTerm, generalized from building interaction
// nets out of lambda terms (with their variable-capture bookkeeping) to
// building an AIG out of loop-free Boolean expressions (names simply
// resolve to a PI, no capture to track).
func Compile(src string) (*network.Ntk, error) {
	assignments, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return Build(assignments)
}

// Build translates an already-parsed program into a network.
func Build(assignments []Assignment) (*network.Ntk, error) {
	n, err := network.Alloc(network.NtkKindStrash, network.FuncKindAIG)
	if err != nil {
		return nil, err
	}

	vars := make(map[string]network.Ref)
	seenOutputs := make(map[string]bool)

	for _, a := range assignments {
		if seenOutputs[a.Name] {
			return nil, fmt.Errorf("boolexpr: output %q assigned more than once", a.Name)
		}
		seenOutputs[a.Name] = true

		ref, err := build(n, a.Expr, vars)
		if err != nil {
			return nil, err
		}

		po := n.CreatePO()
		if err := n.SetName(po, a.Name); err != nil {
			return nil, err
		}
		n.AddFanin(po, ref)
	}

	n.ComputeLevels()
	return n, nil
}

func build(n *network.Ntk, expr Expr, vars map[string]network.Ref) (network.Ref, error) {
	switch e := expr.(type) {
	case Var:
		if ref, ok := vars[e.Name]; ok {
			return ref, nil
		}
		pi := n.CreatePI()
		if err := n.SetName(pi, e.Name); err != nil {
			return network.NilRef, err
		}
		vars[e.Name] = pi.Ref()
		return pi.Ref(), nil
	case Const:
		if e.Value {
			return n.Const1(), nil
		}
		return n.Const1().Not(), nil
	case Not:
		x, err := build(n, e.X, vars)
		if err != nil {
			return network.NilRef, err
		}
		return x.Not(), nil
	case And:
		l, err := build(n, e.L, vars)
		if err != nil {
			return network.NilRef, err
		}
		r, err := build(n, e.R, vars)
		if err != nil {
			return network.NilRef, err
		}
		return n.AIGAnd(l, r), nil
	case Or:
		l, err := build(n, e.L, vars)
		if err != nil {
			return network.NilRef, err
		}
		r, err := build(n, e.R, vars)
		if err != nil {
			return network.NilRef, err
		}
		return n.AIGOr(l, r), nil
	case Xor:
		l, err := build(n, e.L, vars)
		if err != nil {
			return network.NilRef, err
		}
		r, err := build(n, e.R, vars)
		if err != nil {
			return network.NilRef, err
		}
		return n.AIGXor(l, r), nil
	default:
		return network.NilRef, fmt.Errorf("boolexpr: unhandled expression type %T", expr)
	}
}
