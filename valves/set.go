package valves

import "math/bits"

// Set is a set of flow valves, by their index in a Solver.
type Set uint64

// maxValves is the most flow valves a Set can hold.
const maxValves = 64

func (s Set) Has(i int) bool { return s&(1<<i) != 0 }

func (s Set) With(i int) Set { return s | 1<<i }

func (s Set) Without(i int) Set { return s &^ (1 << i) }

func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

func (s Set) SubsetOf(o Set) bool { return s&^o == 0 }

func (s Set) Disjoint(o Set) bool { return s&o == 0 }

// Each calls f with every index in s, lowest first.
func (s Set) Each(f func(i int)) {
	for s != 0 {
		i := bits.TrailingZeros64(uint64(s))
		f(i)
		s &= s - 1
	}
}
