// Package valves finds the most pressure a team of one or two actors can
// release from a network of valves before a deadline.
//
// A network is parsed from lines like
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//
// Every tunnel takes one minute to walk and opening a valve takes one more.
// Only the start valve and valves with a positive flow rate matter to the
// search; the rest are just corridors.
package valves

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/dylemma/aoc"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// ID is a valve label, such as "AA".
type ID string

// Start is the valve every actor begins at.
const Start ID = "AA"

// Valve is one room of the network.
type Valve struct {
	ID      ID
	Rate    int
	Tunnels []ID
}

// Network is an immutable set of valves keyed by ID.
type Network struct {
	Start  ID
	Valves map[ID]Valve
}

var (
	ErrDanglingTunnel = errors.New("tunnel leads to unknown valve")
	ErrNoStart        = errors.New("no start valve")
)

// ParseError reports an input line that is not a valve description.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: malformed valve %q", e.Line, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

var valveRx = regexp.MustCompile(`^Valve ([A-Z]{2}) has flow rate=(\d+); tunnels? leads? to valves? ([A-Z]{2}(?:, [A-Z]{2})*)$`)

// Parse reads a network from its text description. Blank lines are
// ignored.
func Parse(input []byte) (*Network, error) {
	n := &Network{
		Start:  Start,
		Valves: make(map[ID]Valve),
	}
	s := bufio.NewScanner(bytes.NewReader(input))
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		m := valveRx.FindStringSubmatch(text)
		if m == nil {
			return nil, &ParseError{Line: line, Text: text}
		}
		rate, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		v := Valve{
			ID:   ID(m[1]),
			Rate: rate,
		}
		for _, t := range strings.Split(m[3], ", ") {
			v.Tunnels = append(v.Tunnels, ID(t))
		}
		if _, dup := n.Valves[v.ID]; dup {
			return nil, &ParseError{Line: line, Text: text, Err: fmt.Errorf("duplicate valve %s", v.ID)}
		}
		n.Valves[v.ID] = v
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	for _, v := range n.Valves {
		for _, t := range v.Tunnels {
			if _, ok := n.Valves[t]; !ok {
				return nil, fmt.Errorf("%w: %s -> %s", ErrDanglingTunnel, v.ID, t)
			}
		}
	}
	if _, ok := n.Valves[n.Start]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoStart, n.Start)
	}
	return n, nil
}

// MustParse is like Parse but panics on error.
func MustParse(input []byte) *Network {
	return aoc.MustGet(Parse(input))
}

// Relevant returns the start valve and every valve with a positive flow
// rate, sorted by ID.
func (n *Network) Relevant() []ID {
	var out []ID
	for _, id := range maps.Keys(n.Valves) {
		if id == n.Start || n.Valves[id].Rate > 0 {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// Graph returns the tunnels as a graph with one arc of weight 1 per
// tunnel.
func (n *Network) Graph() *aoc.Graph[ID] {
	var g aoc.Graph[ID]
	for id, v := range n.Valves {
		g.AddNode(id)
		for _, t := range v.Tunnels {
			g.AddArc(id, t, 1)
		}
	}
	return &g
}

// Hash returns a digest of the network's contents. Networks parsed from
// the same valves hash equal regardless of line order.
func (n *Network) Hash() deephash.Sum {
	return deephash.Hash(n)
}
