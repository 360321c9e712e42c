package main

import (
	_ "embed"

	"github.com/dylemma/aoc"
	"github.com/dylemma/aoc/valves"
	"tailscale.com/util/deephash"
)

func main() {
	aoc.Run(2022, source, &solver{
		solvers: make(map[deephash.Sum]*valves.Solver),
	})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle

	// solvers caches the precomputed distances per network, so both parts
	// share them for the sample and for the real input.
	solvers map[deephash.Sum]*valves.Solver
}

func (s solver) valveSolver() *valves.Solver {
	n := valves.MustParse(s.Input())
	h := n.Hash()
	if vs, ok := s.solvers[h]; ok {
		return vs
	}
	vs := aoc.MustGet(valves.NewSolver(n))
	s.solvers[h] = vs
	return vs
}

/*
want=1651

Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
*/
func (s solver) D16p1() any {
	out := s.valveSolver().Best(30)
	s.Debugf("me: %v", out.Paths[0])
	return out.Total
}

// want=1707
func (s solver) D16p2() any {
	out := s.valveSolver().BestPair(26)
	s.Debugf("me: %v", out.Paths[0])
	s.Debugf("elephant: %v", out.Paths[1])
	return out.Total
}
