package routing

import (
	"sort"
)

// VertexSet is a set of airport codes.
type VertexSet map[string]struct{}

func NewVertexSet(codes ...string) VertexSet {
	set := make(VertexSet, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}

func (s VertexSet) Add(code string) {
	s[code] = struct{}{}
}

func (s VertexSet) Contains(code string) bool {
	_, ok := s[code]
	return ok
}

func (s VertexSet) Size() int {
	return len(s)
}

// Codes returns the members sorted ascending.
func (s VertexSet) Codes() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// MSTEdge is a tree edge, source is the endpoint that was already in the tree when the edge was taken.
type MSTEdge struct {
	source string
	dest   string
	weight float64
}

func NewMSTEdge(source, dest string, weight float64) MSTEdge {
	return MSTEdge{source: source, dest: dest, weight: weight}
}

func (e MSTEdge) GetSource() string {
	return e.source
}

func (e MSTEdge) GetDest() string {
	return e.dest
}

func (e MSTEdge) GetWeight() float64 {
	return e.weight
}

type RankedAirport struct {
	code     string
	distance float64
}

func NewRankedAirport(code string, distance float64) RankedAirport {
	return RankedAirport{code: code, distance: distance}
}

func (r RankedAirport) GetCode() string {
	return r.code
}

func (r RankedAirport) GetDistance() float64 {
	return r.distance
}
