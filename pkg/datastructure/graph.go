package datastructure

import (
	"errors"
	"math"
)

var (
	ErrNegativeWeight = errors.New("edge weight must be a non-negative number")
)

// Vertex is an airport. immutable once inserted into the graph.
type Vertex struct {
	code    string
	name    string
	city    string
	country string
	lat     float64
	lon     float64
}

func NewVertex(code, name, city, country string, lat, lon float64) Vertex {
	return Vertex{
		code:    code,
		name:    name,
		city:    city,
		country: country,
		lat:     lat,
		lon:     lon,
	}
}

func (v Vertex) GetCode() string {
	return v.code
}

func (v Vertex) GetName() string {
	return v.name
}

func (v Vertex) GetCity() string {
	return v.city
}

func (v Vertex) GetCountry() string {
	return v.country
}

func (v Vertex) GetLat() float64 {
	return v.lat
}

func (v Vertex) GetLon() float64 {
	return v.lon
}

// Graph is an undirected weighted graph of airports.
// adjacency[u][v] == adjacency[v][u] for every stored pair, and the key set of adjacency
// is always equal to the key set of vertices.
type Graph struct {
	vertices  map[string]Vertex
	adjacency map[string]map[string]float64
	order     []string // vertex codes in insertion order
	numEdges  int
}

func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]Vertex),
		adjacency: make(map[string]map[string]float64),
		order:     make([]string, 0),
	}
}

func NewGraphWithSize(numVertices int) *Graph {
	return &Graph{
		vertices:  make(map[string]Vertex, numVertices),
		adjacency: make(map[string]map[string]float64, numVertices),
		order:     make([]string, 0, numVertices),
	}
}

// AddVertex. insert airport metadata. the first insertion of a code wins, later calls with the same code are no-ops.
func (g *Graph) AddVertex(code, name, city, country string, lat, lon float64) {
	if _, ok := g.vertices[code]; ok {
		return
	}
	g.vertices[code] = NewVertex(code, name, city, country, lat, lon)
	g.adjacency[code] = make(map[string]float64)
	g.order = append(g.order, code)
}

// AddEdge. set the weight of the undirected edge u-v. re-adding an existing pair overwrites its weight.
// the edge is silently dropped if u or v is not a vertex of the graph.
func (g *Graph) AddEdge(u, v string, weight float64) error {
	if weight < 0 || math.IsNaN(weight) {
		return ErrNegativeWeight
	}

	uNeighbors, ok := g.adjacency[u]
	if !ok {
		return nil
	}
	vNeighbors, ok := g.adjacency[v]
	if !ok {
		return nil
	}

	if _, exists := uNeighbors[v]; !exists {
		g.numEdges++
	}
	uNeighbors[v] = weight
	vNeighbors[u] = weight
	return nil
}

func (g *Graph) GetVertexInfo(code string) (Vertex, bool) {
	v, ok := g.vertices[code]
	return v, ok
}

func (g *Graph) HasVertex(code string) bool {
	_, ok := g.vertices[code]
	return ok
}

// GetAllVertexCodes returns a copy of the vertex codes in insertion order.
func (g *Graph) GetAllVertexCodes() []string {
	codes := make([]string, len(g.order))
	copy(codes, g.order)
	return codes
}

func (g *Graph) GetWeight(u, v string) (float64, bool) {
	w, ok := g.adjacency[u][v]
	return w, ok
}

func (g *Graph) GetDegree(u string) int {
	return len(g.adjacency[u])
}

// ForNeighborsOf calls handle for every neighbor of u. iteration order is unspecified.
func (g *Graph) ForNeighborsOf(u string, handle func(v string, weight float64)) {
	for v, w := range g.adjacency[u] {
		handle(v, w)
	}
}

// ForVertices calls handle for every vertex in insertion order.
func (g *Graph) ForVertices(handle func(v Vertex)) {
	for _, code := range g.order {
		handle(g.vertices[code])
	}
}

func (g *Graph) NumberOfVertices() int {
	return len(g.order)
}

// NumberOfEdges returns the number of undirected edges.
func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}
