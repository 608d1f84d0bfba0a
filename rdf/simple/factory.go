package simple

import "github.com/geoknoesis/rdf-commons/rdf"

// Factory creates terms and hash-set containers.
type Factory struct {
	*rdf.TermFactory
}

var _ rdf.Factory = (*Factory)(nil)

// NewFactory returns a factory with a fresh blank node salt unless
// rdf.OptSalt is given.
func NewFactory(opts ...rdf.Option) *Factory {
	return &Factory{TermFactory: rdf.NewTermFactory(opts...)}
}

// NewGraph returns an empty graph logging to the factory logger.
func (f *Factory) NewGraph() (rdf.Graph, error) {
	return newGraph(f.Logger()), nil
}

// NewDataset returns an empty dataset logging to the factory logger.
func (f *Factory) NewDataset() (rdf.Dataset, error) {
	return newDataset(f.Logger()), nil
}
