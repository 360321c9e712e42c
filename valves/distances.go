package valves

import (
	"errors"
	"fmt"

	"github.com/dylemma/aoc"
)

var ErrUnreachable = errors.New("relevant valve unreachable")

// Distances holds the walking time in minutes between every ordered pair
// of relevant valves.
type Distances struct {
	relevant []ID
	dist     map[aoc.Edge[ID]]int
}

// ComputeDistances runs a breadth-first search from every relevant valve.
// Any valve may be walked through on the way.
func ComputeDistances(n *Network) (*Distances, error) {
	g := n.Graph()
	d := &Distances{
		relevant: n.Relevant(),
		dist:     make(map[aoc.Edge[ID]]int),
	}
	for _, a := range d.relevant {
		hops := g.Distances(a)
		for _, b := range d.relevant {
			h, ok := hops[b]
			if !ok {
				return nil, fmt.Errorf("%w: %s -> %s", ErrUnreachable, a, b)
			}
			d.dist[aoc.Edge[ID]{A: a, B: b}] = h
		}
	}
	return d, nil
}

// Relevant returns the valves the table covers, sorted by ID.
func (d *Distances) Relevant() []ID {
	return d.relevant
}

// Between returns the minutes needed to walk from a to b. ok is false if
// either valve is not relevant.
func (d *Distances) Between(a, b ID) (minutes int, ok bool) {
	minutes, ok = d.dist[aoc.Edge[ID]{A: a, B: b}]
	return minutes, ok
}
