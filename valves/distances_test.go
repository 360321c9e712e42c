package valves

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistancesLine(t *testing.T) {
	// AA - BB - CC - DD, only the ends are relevant.
	n := MustParse([]byte(`Valve AA has flow rate=0; tunnel leads to valve BB
Valve BB has flow rate=0; tunnels lead to valves AA, CC
Valve CC has flow rate=0; tunnels lead to valves BB, DD
Valve DD has flow rate=7; tunnel leads to valve CC
`))
	d, err := ComputeDistances(n)
	require.NoError(t, err)

	assert.Equal(t, []ID{"AA", "DD"}, d.Relevant())
	for _, tt := range []struct {
		a, b ID
		want int
	}{
		{"AA", "DD", 3},
		{"DD", "AA", 3},
		{"AA", "AA", 0},
	} {
		got, ok := d.Between(tt.a, tt.b)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.a, tt.b)
	}
	_, ok := d.Between("AA", "BB")
	assert.False(t, ok, "BB has no flow")
}

func TestDistancesExample(t *testing.T) {
	d, err := ComputeDistances(MustParse([]byte(example)))
	require.NoError(t, err)

	want := map[[2]ID]int{
		{"AA", "BB"}: 1,
		{"AA", "DD"}: 1,
		{"AA", "JJ"}: 2,
		{"AA", "HH"}: 5,
		{"BB", "JJ"}: 3,
		{"HH", "JJ"}: 7,
		{"EE", "CC"}: 2,
		{"JJ", "HH"}: 7,
	}
	for k, w := range want {
		got, ok := d.Between(k[0], k[1])
		require.True(t, ok)
		assert.Equal(t, w, got, "%s -> %s", k[0], k[1])
	}
	for _, a := range d.Relevant() {
		for _, b := range d.Relevant() {
			got, _ := d.Between(a, b)
			if a == b {
				assert.Zero(t, got)
			} else {
				assert.GreaterOrEqual(t, got, 1)
			}
		}
	}
}

func TestDistancesUnreachable(t *testing.T) {
	tests := map[string]string{
		"disconnected": `Valve AA has flow rate=0; tunnel leads to valve CC
Valve CC has flow rate=0; tunnel leads to valve AA
Valve BB has flow rate=5; tunnel leads to valve DD
Valve DD has flow rate=0; tunnel leads to valve BB
`,
		"one way": `Valve AA has flow rate=0; tunnel leads to valve BB
Valve BB has flow rate=5; tunnel leads to valve BB
`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			n := MustParse([]byte(input))
			_, err := ComputeDistances(n)
			assert.ErrorIs(t, err, ErrUnreachable)
			_, err = NewSolver(n)
			assert.ErrorIs(t, err, ErrUnreachable)
		})
	}
}

func TestTooManyValves(t *testing.T) {
	var ids []string
	for a := 'B'; a <= 'Z' && len(ids) < maxValves+1; a++ {
		for b := 'A'; b <= 'Z' && len(ids) < maxValves+1; b++ {
			ids = append(ids, string([]rune{a, b}))
		}
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Valve AA has flow rate=0; tunnel leads to valve %s\n", ids[0])
	for i, id := range ids {
		prev := "AA"
		if i > 0 {
			prev = ids[i-1]
		}
		next := prev
		if i+1 < len(ids) {
			next = ids[i+1]
		}
		fmt.Fprintf(&sb, "Valve %s has flow rate=1; tunnels lead to valves %s, %s\n", id, prev, next)
	}
	n := MustParse([]byte(sb.String()))
	_, err := NewSolver(n)
	assert.ErrorIs(t, err, ErrTooManyValves)
}
