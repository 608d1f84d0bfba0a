package simple

import (
	"github.com/charmbracelet/log"

	"github.com/geoknoesis/rdf-commons/rdf"
)

// Graph is a hash set of triples.
type Graph struct {
	set[rdf.Triple, rdf.TriplePattern]
}

var _ rdf.Graph = (*Graph)(nil)

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return newGraph(nil)
}

func newGraph(logger *log.Logger) *Graph {
	return &Graph{set: newSet[rdf.Triple, rdf.TriplePattern]("graph", logger)}
}
