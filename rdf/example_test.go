package rdf_test

import (
	"fmt"

	"github.com/geoknoesis/rdf-commons/rdf"
	"github.com/geoknoesis/rdf-commons/rdf/simple"
)

func Example() {
	f := simple.NewFactory()
	ds, _ := f.NewDataset()
	defer ds.Close()

	s, _ := f.IRI("http://example.org/alice")
	p, _ := f.IRI("http://xmlns.com/foaf/0.1/name")
	o, _ := f.LangLiteral("Alice", "EN")
	g, _ := f.IRI("http://example.org/people")

	q, _ := f.Quad(g, s, p, o)
	_ = ds.Add(q)
	_ = ds.Add(q)

	fmt.Println(ds.Size())
	fmt.Println(q)
	for t := range ds.Graph(g).Match(rdf.TriplePattern{P: p}).All() {
		fmt.Println(t.O)
	}

	// Output:
	// 1
	// <http://example.org/alice> <http://xmlns.com/foaf/0.1/name> "Alice"@en <http://example.org/people> .
	// "Alice"@en
}

func ExampleDataset_UnionGraph() {
	f := simple.NewFactory()
	ds, _ := f.NewDataset()
	s, _ := f.IRI("urn:s")
	p, _ := f.IRI("urn:p")
	g, _ := f.IRI("urn:g")
	t, _ := f.Triple(s, p, s)

	_ = ds.DefaultGraph().Add(t)
	_ = ds.Graph(g).Add(t)

	fmt.Println(ds.Size(), ds.UnionGraph().Size())
	// Output: 2 1
}
