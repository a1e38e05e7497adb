package routing

import (
	"fmt"
	"math/rand"
	"testing"

	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/stretchr/testify/require"
)

type testEdge struct {
	u, v   string
	weight float64
}

func buildGraph(t *testing.T, vertices []string, edges []testEdge) *da.Graph {
	t.Helper()
	g := da.NewGraphWithSize(len(vertices))
	for _, code := range vertices {
		g.AddVertex(code, code+" airport", code+" city", "country", 0, 0)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.weight))
	}
	return g
}

// randomGraph builds a sparse graph with a few isolated clusters.
func randomGraph(t *testing.T, seed int64, n, m int) *da.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vertices := make([]string, n)
	for i := range vertices {
		vertices[i] = fmt.Sprintf("V%03d", i)
	}
	edges := make([]testEdge, 0, m)
	for i := 0; i < m; i++ {
		u := rng.Intn(n)
		v := rng.Intn(n)
		if u == v {
			continue
		}
		// integral weights keep sums exact
		edges = append(edges, testEdge{u: vertices[u], v: vertices[v], weight: float64(1 + rng.Intn(5000))})
	}
	return buildGraph(t, vertices, edges)
}

// reachableByDFS is an independent reachability oracle.
func reachableByDFS(g *da.Graph, start string) map[string]bool {
	seen := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		g.ForNeighborsOf(u, func(v string, _ float64) {
			if !seen[v] {
				seen[v] = true
				stack = append(stack, v)
			}
		})
	}
	return seen
}
