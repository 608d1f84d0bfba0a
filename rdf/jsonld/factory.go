package jsonld

import (
	"context"
	"fmt"

	ld "github.com/piprate/json-gold/ld"

	"github.com/geoknoesis/rdf-commons/rdf"
)

// Factory creates terms and containers stored in json-gold datasets.
//
// Blank nodes come from the embedded TermFactory. Their names double as
// native labels, so they keep their identity when written to and read back
// from a native dataset.
type Factory struct {
	*rdf.TermFactory
	conv converter
}

var _ rdf.Factory = (*Factory)(nil)

// NewFactory returns a factory with a fresh blank node salt unless
// rdf.OptSalt is given.
func NewFactory(opts ...rdf.Option) *Factory {
	terms := rdf.NewTermFactory(opts...)
	return &Factory{
		TermFactory: terms,
		conv:        converter{terms: terms, mapper: rdf.NewLabelMapper(terms.Salt())},
	}
}

// NewGraph returns the default graph of a new dataset. Closing the graph
// closes the dataset.
func (f *Factory) NewGraph() (rdf.Graph, error) {
	ds := newDataset(f, nil)
	return &ownedGraph{Graph: ds.DefaultGraph(), ds: ds}, nil
}

// ownedGraph is a default graph view that owns its dataset.
type ownedGraph struct {
	rdf.Graph
	ds *Dataset
}

func (g *ownedGraph) Close() error { return g.ds.Close() }

// NewDataset returns an empty dataset.
func (f *Factory) NewDataset() (rdf.Dataset, error) {
	return newDataset(f, nil), nil
}

// Wrap adapts an existing native dataset. Duplicate native quads are
// dropped.
func (f *Factory) Wrap(native *ld.RDFDataset, opts ...DatasetOption) *Dataset {
	return newDataset(f, native, opts...)
}

// ParseNQuads reads an N-Quads document with json-gold's parser. Language
// tags may use either case.
func (f *Factory) ParseNQuads(input string, opts ...DatasetOption) (*Dataset, error) {
	serializer := &ld.NQuadRDFSerializer{}
	native, err := serializer.Parse(lowerLangTags(input))
	if err != nil {
		return nil, fmt.Errorf("jsonld: parse N-Quads: %w", err)
	}
	return newDataset(f, native, opts...), nil
}

// Load expands a JSON-LD document to RDF. doc is any value json-gold
// accepts as input: a decoded JSON value or a document URL. base resolves
// relative IRIs and may be empty.
func (f *Factory) Load(ctx context.Context, doc any, base string, opts ...DatasetOption) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	proc := ld.NewJsonLdProcessor()
	result, err := proc.ToRDF(doc, ld.NewJsonLdOptions(base))
	if err != nil {
		return nil, fmt.Errorf("jsonld: to RDF: %w", err)
	}
	native, ok := result.(*ld.RDFDataset)
	if !ok {
		return nil, fmt.Errorf("jsonld: unexpected ToRDF result %T", result)
	}
	return newDataset(f, native, opts...), nil
}
