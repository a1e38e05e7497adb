package routing

import (
	"context"
	"sort"
	"testing"

	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBFS(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D", "E"}, []testEdge{
		{"A", "B", 10}, {"B", "C", 10}, {"D", "E", 5},
	})
	ca := NewConnectivityAnalyzer(g)

	testCases := []struct {
		name  string
		start string
		want  []string
	}{
		{name: "chain", start: "A", want: []string{"A", "B", "C"}},
		{name: "from middle", start: "B", want: []string{"A", "B", "C"}},
		{name: "other component", start: "E", want: []string{"D", "E"}},
		{name: "unknown start", start: "ZZZ", want: []string{"ZZZ"}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ca.BFS(tt.start).Codes())
		})
	}
}

func TestBFSIsolatedVertex(t *testing.T) {
	g := buildGraph(t, []string{"A"}, nil)
	assert.Equal(t, []string{"A"}, NewConnectivityAnalyzer(g).BFS("A").Codes())
}

func TestIsConnectedTwoComponents(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, []testEdge{
		{"A", "B", 10}, {"C", "D", 20},
	})

	connected, components := NewConnectivityAnalyzer(g).IsConnected()
	assert.False(t, connected)
	require.Len(t, components, 2)

	got := make([][]string, 0, len(components))
	for _, c := range components {
		got = append(got, c.Codes())
	}
	assert.ElementsMatch(t, [][]string{{"A", "B"}, {"C", "D"}}, got)
}

func TestIsConnectedSingleComponent(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, []testEdge{
		{"A", "B", 100}, {"B", "C", 50}, {"A", "C", 200},
	})

	connected, components := NewConnectivityAnalyzer(g).IsConnected()
	assert.True(t, connected)
	require.Len(t, components, 1)
	assert.Equal(t, []string{"A", "B", "C"}, components[0].Codes())
}

func TestIsConnectedEmptyGraph(t *testing.T) {
	connected, components := NewConnectivityAnalyzer(da.NewGraph()).IsConnected()
	assert.True(t, connected)
	assert.Empty(t, components)
}

func TestIsConnectedCancelled(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewConnectivityAnalyzer(g).IsConnectedContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConnectivityProperties(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGraph(t, seed, 120, 110)
		ca := NewConnectivityAnalyzer(g)

		for _, s := range g.GetAllVertexCodes()[:10] {
			oracle := reachableByDFS(g, s)
			got := ca.BFS(s)
			assert.Equal(t, len(oracle), got.Size())
			for code := range oracle {
				assert.True(t, got.Contains(code))
			}
		}

		connected, components := ca.IsConnected()
		assert.Equal(t, len(components) == 1, connected)

		seen := make(map[string]int)
		total := 0
		for _, c := range components {
			total += c.Size()
			for code := range c {
				seen[code]++
			}
		}
		assert.Equal(t, g.NumberOfVertices(), total)
		assert.Len(t, seen, g.NumberOfVertices())
		for code, count := range seen {
			assert.Equalf(t, 1, count, "vertex %s is in more than one component", code)
		}

		sizes := make([]int, 0, len(components))
		for _, c := range components {
			sizes = append(sizes, c.Size())
		}
		sort.Ints(sizes)
		assert.Positive(t, sizes[0])
	}
}
