package simple

import (
	"github.com/charmbracelet/log"

	"github.com/geoknoesis/rdf-commons/rdf"
)

// Dataset is a hash set of quads.
type Dataset struct {
	set[rdf.Quad, rdf.QuadPattern]
}

var _ rdf.Dataset = (*Dataset)(nil)

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return newDataset(nil)
}

func newDataset(logger *log.Logger) *Dataset {
	return &Dataset{set: newSet[rdf.Quad, rdf.QuadPattern]("dataset", logger)}
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

// GraphNames streams the distinct named graph names.
func (d *Dataset) GraphNames() *rdf.Stream[rdf.Subject] {
	return rdf.GraphNames(d)
}
