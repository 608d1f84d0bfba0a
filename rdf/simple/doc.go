// Package simple provides the reference backend: hash-set graphs and
// datasets built on the rdf package's own term types.
//
// Blank nodes come from the factory salt, so two factories never mint
// colliding blank nodes. Containers are not safe for concurrent use.
//
//	f := simple.NewFactory()
//	g, _ := f.NewGraph()
//	s, _ := f.IRI("http://example.org/s")
//	p, _ := f.IRI("http://example.org/p")
//	o, _ := f.Literal("hello")
//	_ = g.Add(rdf.Triple{S: s, P: p, O: o})
package simple
