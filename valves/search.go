package valves

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dylemma/aoc"
	"github.com/rs/zerolog/log"
)

var ErrTooManyValves = errors.New("too many valves with flow")

// StepKind says what an actor does during a Step.
type StepKind int

const (
	Open StepKind = iota // walk to a valve and open it
	Wait                 // stand still until the deadline
)

// Step is one action taken by an actor. Duration counts every minute the
// step takes, including the minute spent opening the valve.
type Step struct {
	Kind     StepKind
	Valve    ID
	Duration int
}

func (s Step) String() string {
	if s.Kind == Wait {
		return fmt.Sprintf("wait (+%d)", s.Duration)
	}
	return fmt.Sprintf("open %s (+%d)", s.Valve, s.Duration)
}

// State is an actor partway through its plan. States are values; moving
// returns a new State and leaves the old one untouched.
type State struct {
	Minute   int
	Limit    int
	Position int // index of the valve the actor stands at, see Solver.ID
	Closed   Set // flow valves this actor may still open
	Released int // pressure released so far
	Rate     int // pressure released per minute by the valves opened so far
	Path     []Step
}

// Done reports whether st is at the deadline.
func (st State) Done() bool {
	return st.Minute >= st.Limit
}

func (st State) then(step Step) []Step {
	// Clip forces append to copy, so sibling branches never share a
	// backing array.
	return append(slices.Clip(st.Path), step)
}

func (st State) wait() State {
	d := st.Limit - st.Minute
	next := st
	next.Minute = st.Limit
	next.Released += st.Rate * d
	next.Path = st.then(Step{Kind: Wait, Duration: d})
	return next
}

// Solver searches a network. Flow valves are numbered 0..n-1 so they fit
// in a Set; the start valve is numbered n unless it has flow itself.
type Solver struct {
	ids   []ID
	rates []int
	dist  [][]int
	start int
	flow  Set
}

// NewSolver precomputes the distances between the relevant valves of n.
func NewSolver(n *Network) (*Solver, error) {
	d, err := ComputeDistances(n)
	if err != nil {
		return nil, err
	}
	s := &Solver{start: -1}
	for _, id := range d.Relevant() {
		if r := n.Valves[id].Rate; r > 0 {
			s.ids = append(s.ids, id)
			s.rates = append(s.rates, r)
		}
	}
	if len(s.ids) > maxValves {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(s.ids), maxValves)
	}
	for i, id := range s.ids {
		s.flow = s.flow.With(i)
		if id == n.Start {
			s.start = i
		}
	}
	if s.start == -1 {
		s.start = len(s.ids)
		s.ids = append(s.ids, n.Start)
		s.rates = append(s.rates, 0)
	}

	s.dist = make([][]int, len(s.ids))
	for i, a := range s.ids {
		s.dist[i] = make([]int, len(s.ids))
		for j, b := range s.ids {
			s.dist[i][j], _ = d.Between(a, b)
		}
	}
	log.Debug().Int("valves", len(n.Valves)).Int("flow", s.flow.Len()).Msg("solver ready")
	return s, nil
}

// ID returns the valve with index i.
func (s *Solver) ID(i int) ID {
	return s.ids[i]
}

// Flow returns the set of every valve with flow.
func (s *Solver) Flow() Set {
	return s.flow
}

// Initial returns an actor at the start valve at minute 0 that may open
// the valves in closed.
func (s *Solver) Initial(limit int, closed Set) State {
	return State{
		Limit:    limit,
		Position: s.start,
		Closed:   closed & s.flow,
	}
}

func (s *Solver) open(st State, v int) (State, bool) {
	cost := s.dist[st.Position][v] + 1
	if st.Minute+cost > st.Limit {
		return State{}, false
	}
	next := st
	next.Minute += cost
	next.Released += st.Rate * cost
	next.Rate += s.rates[v]
	next.Position = v
	next.Closed = st.Closed.Without(v)
	next.Path = st.then(Step{Kind: Open, Valve: s.ids[v], Duration: cost})
	return next, true
}

// Moves returns the states reachable from st in one step: waiting out the
// clock first, then opening each closed valve that can be reached and
// opened before the deadline, in valve order. A state at the deadline has
// no moves.
func (s *Solver) Moves(st State) []State {
	if st.Done() {
		return nil
	}
	moves := []State{st.wait()}
	st.Closed.Each(func(v int) {
		if next, ok := s.open(st, v); ok {
			moves = append(moves, next)
		}
	})
	for _, m := range moves {
		if m.Minute <= st.Minute {
			panic(fmt.Sprintf("valves: move %v does not advance the clock past minute %d", m.Path[len(m.Path)-1], st.Minute))
		}
	}
	return moves
}

// Explore walks every plan that starts at st depth first and calls yield
// with each finished state. Plans are visited in the order Moves returns
// them. Exploring stops early if yield returns false.
func (s *Solver) Explore(st State, yield func(State) bool) {
	stack := aoc.NewStack(st)
	stack.While(func(st State) bool {
		if st.Done() {
			return yield(st)
		}
		moves := s.Moves(st)
		for i := len(moves) - 1; i >= 0; i-- {
			stack.Push(moves[i])
		}
		return true
	})
}
