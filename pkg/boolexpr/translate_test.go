package boolexpr

import (
	"testing"

	"github.com/syntheon/boolnet/pkg/network"
)

func TestCompileFullAdder(t *testing.T) {
	n, err := Compile(`
sum = a ^ b ^ c;
carry = (a & b) | (b & c) | (a & c);
`)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if err := n.Check(); err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	sum := n.FindCo("sum")
	carry := n.FindCo("carry")
	if sum == nil || carry == nil {
		t.Fatalf("expected both sum and carry outputs, got sum=%v carry=%v", sum, carry)
	}

	for mask := 0; mask < 8; mask++ {
		av, bv, cv := mask&1 != 0, mask&2 != 0, mask&4 != 0
		assign := map[network.ObjID]bool{
			n.FindCi("a").ID(): av,
			n.FindCi("b").ID(): bv,
			n.FindCi("c").ID(): cv,
		}
		gotSum := n.EvalRef(sum.FaninRef(0), assign)
		gotCarry := n.EvalRef(carry.FaninRef(0), assign)

		count := 0
		for _, v := range []bool{av, bv, cv} {
			if v {
				count++
			}
		}
		wantSum := count%2 == 1
		wantCarry := count >= 2
		if gotSum != wantSum {
			t.Errorf("mask=%d: sum=%v want %v", mask, gotSum, wantSum)
		}
		if gotCarry != wantCarry {
			t.Errorf("mask=%d: carry=%v want %v", mask, gotCarry, wantCarry)
		}
	}
}

func TestCompileConstantsAndNegation(t *testing.T) {
	n, err := Compile("out = !(a & 1) | 0;\n")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	out := n.FindCo("out")
	if out == nil {
		t.Fatalf("expected output %q", "out")
	}
	for _, av := range []bool{true, false} {
		got := n.EvalRef(out.FaninRef(0), map[network.ObjID]bool{n.FindCi("a").ID(): av})
		if got == av {
			t.Errorf("a=%v: got %v, expected negation", av, got)
		}
	}
}

func TestCompileRejectsDuplicateOutput(t *testing.T) {
	_, err := Compile("out = a; out = b;")
	if err == nil {
		t.Fatalf("expected an error for a doubly-assigned output")
	}
}

func TestCompileRejectsMalformedProgram(t *testing.T) {
	cases := []string{
		"out = a &;",
		"out a;",
		"out = (a;",
	}
	for _, src := range cases {
		if _, err := Compile(src); err == nil {
			t.Errorf("expected parse error for %q", src)
		}
	}
}
