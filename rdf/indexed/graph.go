package indexed

import (
	"github.com/charmbracelet/log"

	"github.com/geoknoesis/rdf-commons/rdf"
)

var tripleLayout = layout[rdf.Triple, rdf.TriplePattern]{
	positions: func(t rdf.Triple) key {
		return key{rdf.TermKey(t.S), rdf.TermKey(t.P), rdf.TermKey(t.O)}
	},
	bindings: func(p rdf.TriplePattern) (key, [4]bool) {
		var k key
		var bound [4]bool
		if p.S != nil {
			k[0], bound[0] = rdf.TermKey(p.S), true
		}
		if !p.P.IsZero() {
			k[1], bound[1] = rdf.TermKey(p.P), true
		}
		if p.O != nil {
			k[2], bound[2] = rdf.TermKey(p.O), true
		}
		return k, bound
	},
	perms: map[string][4]int{
		"spo": {0, 1, 2, 3},
		"pos": {1, 2, 0, 3},
		"osp": {2, 0, 1, 3},
	},
	order: []string{"spo", "pos", "osp"},
}

// Graph is a B-tree indexed set of triples.
type Graph struct {
	store[rdf.Triple, rdf.TriplePattern]
}

var _ rdf.Graph = (*Graph)(nil)

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return newGraph(nil)
}

func newGraph(logger *log.Logger) *Graph {
	return &Graph{store: newStore("graph", tripleLayout, logger)}
}
