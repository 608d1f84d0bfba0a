package indexed

import (
	"github.com/charmbracelet/log"

	"github.com/geoknoesis/rdf-commons/rdf"
)

var quadLayout = layout[rdf.Quad, rdf.QuadPattern]{
	positions: func(q rdf.Quad) key {
		return key{graphKey(q.G), rdf.TermKey(q.S), rdf.TermKey(q.P), rdf.TermKey(q.O)}
	},
	bindings: func(p rdf.QuadPattern) (key, [4]bool) {
		k, bound := tripleLayout.bindings(p.TriplePattern())
		k = key{"", k[0], k[1], k[2]}
		bound = [4]bool{false, bound[0], bound[1], bound[2]}
		if name, ok := p.G.Name(); ok {
			k[0], bound[0] = graphKey(name), true
		}
		return k, bound
	},
	perms: map[string][4]int{
		"gspo": {0, 1, 2, 3},
		"spog": {1, 2, 3, 0},
		"posg": {2, 3, 1, 0},
		"ospg": {3, 1, 2, 0},
	},
	order: []string{"gspo", "spog", "posg", "ospg"},
}

// graphKey is "" for the default graph, which sorts before every name.
func graphKey(g rdf.Subject) string {
	if g == nil {
		return ""
	}
	return rdf.TermKey(g)
}

// Dataset is a B-tree indexed set of quads.
type Dataset struct {
	store[rdf.Quad, rdf.QuadPattern]
}

var _ rdf.Dataset = (*Dataset)(nil)

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return newDataset(nil)
}

func newDataset(logger *log.Logger) *Dataset {
	return &Dataset{store: newStore("dataset", quadLayout, logger)}
}

// DefaultGraph returns a live view of the default graph.
func (d *Dataset) DefaultGraph() rdf.Graph {
	return rdf.NewGraphView(d, nil)
}

// Graph returns a live view of the graph named name.
func (d *Dataset) Graph(name rdf.Subject) rdf.Graph {
	return rdf.NewGraphView(d, name)
}

// UnionGraph returns a live view of all graphs merged.
func (d *Dataset) UnionGraph() rdf.Graph {
	return rdf.NewUnionView(d)
}

// GraphNames walks the GSPO index, which groups quads by graph, and
// yields each name once.
func (d *Dataset) GraphNames() *rdf.Stream[rdf.Subject] {
	quads := d.Match(rdf.QuadPattern{})
	return rdf.NewStream(func(yield func(rdf.Subject) bool) error {
		var last rdf.Subject
		for q := range quads.All() {
			if q.G == nil || q.G == last {
				continue
			}
			last = q.G
			if !yield(q.G) {
				return nil
			}
		}
		return quads.Err()
	})
}
