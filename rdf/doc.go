// Package rdf provides a backend-neutral RDF 1.1 model: terms, statements,
// graphs and datasets, with the interfaces storage backends implement.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// The model is small and value-based:
//   - Terms: IRI, BlankNode and Literal form a closed set behind Term. Terms
//     are comparable, so == is term equality and terms work as map keys.
//   - Statements: Triple and Quad. A Quad with a nil graph name lives in the
//     default graph; Quad.AsTriple drops the graph name.
//   - Containers: Graph and Dataset share the GraphLike contract. Datasets
//     expose live graph views (DefaultGraph, Graph, UnionGraph).
//   - Backends: a Factory builds terms and empty containers. Subpackages
//     simple, indexed and jsonld provide interchangeable implementations,
//     and rdftest holds the conformance suite they all pass.
//
// Blank node identity is scoped by the Salt of the factory that made the
// node: the same name in the same factory gives equal nodes, and nodes from
// different factories never collide, even after being copied between
// backends.
//
// Example (building a dataset):
//
//	f := simple.NewFactory()
//	ds, _ := f.NewDataset()
//	alice, _ := f.NamedBlankNode("alice")
//	name, _ := f.IRI("http://xmlns.com/foaf/0.1/name")
//	lit, _ := f.LangLiteral("Alice", "en")
//	q, _ := f.Quad(nil, alice, name, lit)
//	_ = ds.Add(q)
//
//	for t := range ds.DefaultGraph().Match(rdf.TriplePattern{S: alice}).All() {
//	    fmt.Println(t)
//	}
//
// Retrieval returns a single-use Stream. Iterate it once and check Err.
//
// Errors are classified with Code. Invalid input matches ErrInvalidArgument
// with errors.Is; optional operations a backend lacks match ErrNotSupported.
//
// Containers are not safe for concurrent use.
package rdf
