// Command boolcc reads a Boolean-expression program from a file argument
// or stdin, compiles it to an AIG, balances it, and reports structured
// stats — the same file-or-stdin/parse/build/reduce/print-stats shape as
// the teacher's cmd/godnet driver, generalized from lambda-term reduction
// to Boolean-network construction.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/syntheon/boolnet/pkg/boolexpr"
	"github.com/syntheon/boolnet/pkg/network"
)

func main() {
	var input []byte
	var err error

	if len(os.Args) > 1 {
		input, err = os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	start := time.Now()

	n, err := boolexpr.Compile(string(input))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compile error: %v\n", err)
		os.Exit(1)
	}

	if err := n.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Check error: %v\n", err)
		os.Exit(1)
	}

	balanced, err := n.Balance()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Balance error: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	zero := make(map[network.ObjID]bool)
	for _, po := range balanced.COs() {
		v := balanced.EvalRef(po.FaninRef(0), zero)
		fmt.Printf("%s = %v\n", po.Name(), v)
	}

	fmt.Fprintf(os.Stderr, "\nStats:\n")
	fmt.Fprintf(os.Stderr, "Time: %v\n", elapsed)
	fmt.Fprintf(os.Stderr, "PIs: %d\n", balanced.Count(network.ObjTypePI))
	fmt.Fprintf(os.Stderr, "POs: %d\n", balanced.Count(network.ObjTypePO))
	fmt.Fprintf(os.Stderr, "Nodes: %d\n", balanced.Count(network.ObjTypeNode))
	fmt.Fprintf(os.Stderr, "Depth: %d\n", balanced.ComputeLevels())
}
