package valves

import (
	"errors"
	"fmt"

	"github.com/dylemma/aoc"
	"github.com/rs/zerolog/log"
)

var ErrActors = errors.New("unsupported number of actors")

// Outcome is the best plan found, one path per actor.
type Outcome struct {
	Total int
	Paths [][]Step
}

type leaf struct {
	best     State
	explored int
}

func (s *Solver) bestFrom(st State) leaf {
	var l leaf
	s.Explore(st, func(t State) bool {
		if l.explored == 0 || t.Released > l.best.Released {
			l.best = t
		}
		l.explored++
		return true
	})
	return l
}

// Best returns the most pressure one actor can release in limit minutes.
// The first moves are explored in parallel. Ties go to the plan found
// first.
func (s *Solver) Best(limit int) Outcome {
	root := s.Initial(limit, s.flow)
	branches := s.Moves(root)
	if len(branches) == 0 {
		branches = []State{root}
	}
	l := aoc.ParallelMapFold(branches, s.bestFrom, func(acc, l leaf) leaf {
		if acc.explored == 0 || l.best.Released > acc.best.Released {
			acc.best = l.best
		}
		acc.explored += l.explored
		return acc
	}, leaf{})
	log.Debug().Int("limit", limit).Int("explored", l.explored).Int("best", l.best.Released).Msg("single actor search")
	return Outcome{
		Total: l.best.Released,
		Paths: [][]Step{l.best.Path},
	}
}

// bestByOpened explores every single-actor plan and keeps the best one for
// each set of opened valves, in the order the sets were first seen.
func (s *Solver) bestByOpened(limit int) (table []State, explored int) {
	index := make(map[Set]int)
	s.Explore(s.Initial(limit, s.flow), func(t State) bool {
		explored++
		i, ok := index[t.Closed]
		if !ok {
			index[t.Closed] = len(table)
			table = append(table, t)
		} else if t.Released > table[i].Released {
			table[i] = t
		}
		return true
	})
	return table, explored
}

// BestPair returns the most pressure two actors working together can
// release in limit minutes. Both start at the start valve and never open
// the same valve.
//
// For each of my plans the partner may only open what I left closed. A
// partner's search limited to a set of valves finds exactly the plans of
// the unlimited search whose opened valves fit in that set, so one search
// serves both actors. The partner's best per closed set is memoized.
func (s *Solver) BestPair(limit int) Outcome {
	table, explored := s.bestByOpened(limit)

	memo := make(map[Set]State)
	partner := func(closed Set) State {
		if p, ok := memo[closed]; ok {
			return p
		}
		var p State
		found := false
		for _, t := range table {
			opened := s.flow &^ t.Closed
			if !opened.SubsetOf(closed) {
				continue
			}
			if !found || t.Released > p.Released {
				p, found = t, true
			}
		}
		if !found {
			// Unreachable: the plan that opens nothing fits any set.
			panic("valves: no partner plan")
		}
		memo[closed] = p
		return p
	}

	var best Outcome
	for i, me := range table {
		p := partner(me.Closed)
		if total := aoc.Sum(me.Released, p.Released); i == 0 || total > best.Total {
			best = Outcome{
				Total: total,
				Paths: [][]Step{me.Path, p.Path},
			}
		}
	}
	log.Debug().Int("limit", limit).Int("explored", explored).Int("opened_sets", len(table)).Int("memo", len(memo)).Int("best", best.Total).Msg("dual actor search")
	return best
}

// MaxPressure returns the best outcome for one or two actors.
func (s *Solver) MaxPressure(limit, actors int) (Outcome, error) {
	switch actors {
	case 1:
		return s.Best(limit), nil
	case 2:
		return s.BestPair(limit), nil
	}
	return Outcome{}, fmt.Errorf("%w: %d", ErrActors, actors)
}

// Solve parses input and returns the best outcome for actors working for
// limit minutes.
func Solve(input []byte, limit, actors int) (Outcome, error) {
	n, err := Parse(input)
	if err != nil {
		return Outcome{}, err
	}
	s, err := NewSolver(n)
	if err != nil {
		return Outcome{}, err
	}
	return s.MaxPressure(limit, actors)
}
