// Command boolctl builds a couple of small Boolean networks, runs the C6
// transforms over them, and reports structured stats — the same
// build/reduce/print-stats shape as the teacher's cmd/godnet driver,
// generalized from lambda-term reduction to AIG structural hashing and
// balancing.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/syntheon/boolnet/pkg/extern"
	"github.com/syntheon/boolnet/pkg/network"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	n, err := network.Alloc(network.NtkKindStrash, network.FuncKindAIG)
	if err != nil {
		log.Fatal().Err(err).Msg("alloc network")
	}
	n.SetLogger(log)
	n.Name = "demo"

	a := n.CreatePI()
	mustName(n, a, "a")
	b := n.CreatePI()
	mustName(n, b, "b")
	c := n.CreatePI()
	mustName(n, c, "c")

	// sum = a xor b xor c; carry = majority(a,b,c)
	sum := n.AIGXor(n.AIGXor(a.Ref(), b.Ref()), c.Ref())
	carry := n.AIGOr(n.AIGOr(n.AIGAnd(a.Ref(), b.Ref()), n.AIGAnd(b.Ref(), c.Ref())), n.AIGAnd(a.Ref(), c.Ref()))

	sumPo := n.CreatePO()
	mustName(n, sumPo, "sum")
	n.AddFanin(sumPo, sum)
	carryPo := n.CreatePO()
	mustName(n, carryPo, "carry")
	n.AddFanin(carryPo, carry)

	start := time.Now()
	depth := n.ComputeLevels()
	if err := n.Check(); err != nil {
		log.Fatal().Err(err).Msg("check failed")
	}

	balanced, err := n.Balance()
	if err != nil {
		log.Fatal().Err(err).Msg("balance failed")
	}
	elapsed := time.Since(start)

	log.Info().
		Int("pis", n.Count(network.ObjTypePI)).
		Int("pos", n.Count(network.ObjTypePO)).
		Int("nodes", n.Count(network.ObjTypeNode)).
		Int("depth", depth).
		Dur("elapsed", elapsed).
		Msg("built full adder AIG")

	sat := extern.NewBruteForceSAT()
	balanced.SAT = sat
	miter, err := network.Miter(n, balanced)
	if err != nil {
		log.Fatal().Err(err).Msg("miter failed")
	}
	miterPo := miter.COs()[len(miter.COs())-1]
	driverRef := miterPo.FaninRef(0)
	constZero, err := sat.CheckConstZero(miter, driverRef)
	if err != nil {
		log.Fatal().Err(err).Msg("sat check failed")
	}

	log.Info().
		Bool("equivalent", constZero).
		Int("balanced_nodes", balanced.Count(network.ObjTypeNode)).
		Msg("checked pre/post-balance equivalence")
}

func mustName(n *network.Ntk, obj *network.Obj, name string) {
	if err := n.SetName(obj, name); err != nil {
		panic(err)
	}
}
