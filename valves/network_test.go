package valves

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

func TestParse(t *testing.T) {
	n, err := Parse([]byte(example))
	require.NoError(t, err)

	assert.Equal(t, Start, n.Start)
	assert.Len(t, n.Valves, 10)
	assert.Equal(t, Valve{ID: "DD", Rate: 20, Tunnels: []ID{"CC", "AA", "EE"}}, n.Valves["DD"])
	assert.Equal(t, Valve{ID: "HH", Rate: 22, Tunnels: []ID{"GG"}}, n.Valves["HH"])
	assert.Equal(t, []ID{"AA", "BB", "CC", "DD", "EE", "HH", "JJ"}, n.Relevant())
}

func TestParseSkipsBlankLines(t *testing.T) {
	n, err := Parse([]byte("\n" + strings.ReplaceAll(example, "\n", "\n\n")))
	require.NoError(t, err)
	assert.Len(t, n.Valves, 10)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int // 0 if the error is not a ParseError
		is    error
	}{
		{
			name:  "malformed",
			input: "Valve AA has flow rate=0; tunnels lead to valves BB\nValve BB has no flow\n",
			line:  2,
		},
		{
			name:  "negative rate",
			input: "Valve AA has flow rate=-1; tunnels lead to valves AA\n",
			line:  1,
		},
		{
			name:  "duplicate",
			input: "Valve AA has flow rate=0; tunnel leads to valve AA\nValve AA has flow rate=1; tunnel leads to valve AA\n",
			line:  2,
		},
		{
			name:  "dangling",
			input: "Valve AA has flow rate=0; tunnels lead to valves BB, ZZ\nValve BB has flow rate=1; tunnel leads to valve AA\n",
			is:    ErrDanglingTunnel,
		},
		{
			name:  "no start",
			input: "Valve BB has flow rate=1; tunnel leads to valve CC\nValve CC has flow rate=1; tunnel leads to valve BB\n",
			is:    ErrNoStart,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, n)
			var pe *ParseError
			if tt.line != 0 {
				require.True(t, errors.As(err, &pe), "got %T", err)
				assert.Equal(t, tt.line, pe.Line)
				assert.Contains(t, err.Error(), pe.Text)
				return
			}
			assert.False(t, errors.As(err, &pe))
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse([]byte("nonsense")) })
}

func TestHash(t *testing.T) {
	a := MustParse([]byte(example))
	b := MustParse([]byte(example))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a, b)

	lines := strings.Split(strings.TrimSpace(example), "\n")
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	reversed := MustParse([]byte(strings.Join(lines, "\n")))
	assert.Equal(t, a.Hash(), reversed.Hash())

	changed := MustParse([]byte(strings.Replace(example, "rate=13", "rate=14", 1)))
	assert.NotEqual(t, a.Hash(), changed.Hash())
}

func TestGraph(t *testing.T) {
	g := MustParse([]byte(example)).Graph()
	assert.Len(t, g.Nodes, 10)
	assert.Equal(t, map[ID]int{"GG": 1}, g.Edges["HH"])
	assert.Equal(t, 1, g.Edges["AA"]["II"])
}
