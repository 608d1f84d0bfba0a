// Package jsonld implements the rdf containers on top of the dataset type of
// github.com/piprate/json-gold.
//
// A Dataset can wrap a dataset produced by the JSON-LD processor (Load), by
// json-gold's N-Quads parser (ParseNQuads) or by any other code (Wrap), and
// exposes it through the same interfaces as the other backends. Blank node
// labels of the native dataset are mapped into the factory's namespace; a
// blank node from another factory is stored under a label hashed from its
// unique reference.
//
// Native statements that are not valid RDF, such as the generalized
// triples json-gold emits on request, cannot be returned as rdf.Quad values.
// Streams that reach one end with an *rdf.ConversionError.
package jsonld
