// Package rdftest is a conformance suite for rdf backends.
//
// A backend runs it from its own tests:
//
//	func TestConformance(t *testing.T) {
//	    rdftest.Run(t, func(opts ...rdf.Option) rdf.Factory {
//	        return mybackend.NewFactory(opts...)
//	    })
//	}
package rdftest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdf-commons/rdf"
)

// NewFactory builds a fresh factory instance with its own salt.
type NewFactory func(opts ...rdf.Option) rdf.Factory

// Run runs every conformance check against the backend built by newFactory.
func Run(t *testing.T, newFactory NewFactory) {
	t.Helper()
	tests := []struct {
		name string
		fn   func(*testing.T, NewFactory)
	}{
		{"LiteralEquality", LiteralEquality},
		{"InvalidTerms", InvalidTerms},
		{"BlankNodeScope", BlankNodeScope},
		{"QuadTripleEquality", QuadTripleEquality},
		{"GraphSetSemantics", GraphSetSemantics},
		{"WildcardLaw", WildcardLaw},
		{"RemoveByPattern", RemoveByPattern},
		{"DatasetDefaultGraph", DatasetDefaultGraph},
		{"NamedGraphViews", NamedGraphViews},
		{"UnionGraphLaw", UnionGraphLaw},
		{"UnionGraphWrites", UnionGraphWrites},
		{"GraphNames", GraphNames},
		{"StreamSingleUse", StreamSingleUse},
		{"ForeignBlankNodes", ForeignBlankNodes},
		{"Clear", Clear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newFactory)
		})
	}
}

// LiteralEquality checks that literals are equal iff lexical form,
// datatype and case-folded language tag are equal.
func LiteralEquality(t *testing.T, newFactory NewFactory) {
	f := newFactory()
	xsdInt := iri(t, f, rdf.XSDInteger)
	xsdString := iri(t, f, rdf.XSDString)

	plain, err := f.Literal("1")
	require.NoError(t, err)
	typedString, err := f.TypedLiteral("1", xsdString)
	require.NoError(t, err)
	typedInt, err := f.TypedLiteral("1", xsdInt)
	require.NoError(t, err)
	upper, err := f.LangLiteral("chat", "EN-GB")
	require.NoError(t, err)
	lower, err := f.LangLiteral("chat", "en-gb")
	require.NoError(t, err)
	french, err := f.LangLiteral("chat", "fr")
	require.NoError(t, err)

	assert.Equal(t, plain, typedString, "plain literal is xsd:string")
	assert.NotEqual(t, plain, typedInt)
	assert.Equal(t, upper, lower, "language tags compare case-insensitively")
	assert.NotEqual(t, lower, french)
	assert.NotEqual(t, rdf.Term(plain), rdf.Term(lower))

	lang, ok := upper.Language()
	require.True(t, ok)
	assert.Equal(t, "en-gb", lang)
	assert.Equal(t, rdf.RDFLangString, upper.Datatype().Value())
	assert.Equal(t, `"chat"@en-gb`, upper.String())
	assert.Equal(t, `"1"^^<`+rdf.XSDInteger+`>`, typedInt.String())
	assert.Equal(t, `"1"`, plain.String())
}

// InvalidTerms checks that malformed input fails at construction time.
func InvalidTerms(t *testing.T, newFactory NewFactory) {
	f := newFactory()

	_, err := f.IRI("http://example.org/a b")
	require.ErrorIs(t, err, rdf.ErrInvalidArgument)
	assert.Equal(t, rdf.ErrCodeInvalidIRI, rdf.Code(err))

	_, err = f.IRI("")
	require.ErrorIs(t, err, rdf.ErrInvalidArgument)

	_, err = f.LangLiteral("x", "not a tag")
	require.ErrorIs(t, err, rdf.ErrInvalidArgument)
	assert.Equal(t, rdf.ErrCodeInvalidLiteral, rdf.Code(err))

	_, err = f.LangLiteral("x", "")
	require.ErrorIs(t, err, rdf.ErrInvalidArgument)

	_, err = f.TypedLiteral("x", iri(t, f, rdf.RDFLangString))
	require.ErrorIs(t, err, rdf.ErrInvalidArgument)

	_, err = f.NamedBlankNode("")
	require.ErrorIs(t, err, rdf.ErrInvalidArgument)
	assert.Equal(t, rdf.ErrCodeInvalidBlankNode, rdf.Code(err))

	_, err = f.Triple(nil, iri(t, f, "urn:p"), iri(t, f, "urn:o"))
	require.ErrorIs(t, err, rdf.ErrInvalidArgument)
}

// BlankNodeScope checks blank node identity within and across factories.
func BlankNodeScope(t *testing.T, newFactory NewFactory) {
	f1, f2 := newFactory(), newFactory()

	a1, err := f1.NamedBlankNode("x")
	require.NoError(t, err)
	a2, err := f1.NamedBlankNode("x")
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
	assert.Equal(t, rdf.TermKey(a1), rdf.TermKey(a2))
	seen := map[rdf.Term]int{a1: 1}
	assert.Equal(t, 1, seen[a2], "equal blank nodes are equal map keys")

	b, err := f2.NamedBlankNode("x")
	require.NoError(t, err)
	assert.NotEqual(t, a1, b, "same name in different factories")

	y, err := f1.NamedBlankNode("y")
	require.NoError(t, err)
	assert.NotEqual(t, a1, y)

	fresh1, err := f1.BlankNode()
	require.NoError(t, err)
	fresh2, err := f1.BlankNode()
	require.NoError(t, err)
	assert.NotEqual(t, fresh1, fresh2)
	assert.NotEqual(t, a1, fresh1)
	assert.NotEmpty(t, fresh1.Label())
}

// QuadTripleEquality checks that equal quads project to equal triples and
// that a quad never equals a triple.
func QuadTripleEquality(t *testing.T, newFactory NewFactory) {
	f := newFactory()
	s, p, o := iri(t, f, "urn:s"), iri(t, f, "urn:p"), iri(t, f, "urn:o")
	g1, g2 := iri(t, f, "urn:g1"), iri(t, f, "urn:g2")

	q1, err := f.Quad(g1, s, p, o)
	require.NoError(t, err)
	q2, err := f.Quad(g1, s, p, o)
	require.NoError(t, err)
	q3, err := f.Quad(g2, s, p, o)
	require.NoError(t, err)
	tr, err := f.Triple(s, p, o)
	require.NoError(t, err)

	assert.Equal(t, q1, q2)
	assert.Equal(t, q1.AsTriple(), q2.AsTriple())
	assert.NotEqual(t, q1, q3)
	assert.Equal(t, q1.AsTriple(), q3.AsTriple(), "projection drops the graph name")
	assert.Equal(t, tr, q1.AsTriple())
	assert.NotEqual(t, any(q1), any(tr))
}

// GraphSetSemantics checks idempotent add and remove and size counting.
func GraphSetSemantics(t *testing.T, newFactory NewFactory) {
	f := newFactory()
	g := newGraph(t, f)
	tr := triple(t, f, "urn:s", "urn:p", "urn:o")

	require.False(t, g.Contains(tr))
	require.NoError(t, g.Add(tr))
	assert.True(t, g.Contains(tr))
	assert.Equal(t, 1, g.Size())

	require.NoError(t, g.Add(tr))
	assert.Equal(t, 1, g.Size(), "second add is a no-op")

	other := triple(t, f, "urn:s", "urn:p", "urn:o2")
	require.NoError(t, g.Remove(other))
	assert.Equal(t, 1, g.Size(), "removing an absent triple is a no-op")

	require.NoError(t, g.Remove(tr))
	assert.False(t, g.Contains(tr))
	assert.Equal(t, 0, g.Size())
	require.NoError(t, g.Remove(tr))

	assert.Error(t, g.Add(rdf.Triple{}), "zero triple is rejected")
}

// WildcardLaw checks that Match with a bound predicate returns exactly the
// statements of Stream with that predicate.
func WildcardLaw(t *testing.T, newFactory NewFactory) {
	f := newFactory()
	g := newGraph(t, f)
	for _, spo := range [][3]string{
		{"urn:a", "urn:p", "urn:b"},
		{"urn:a", "urn:q", "urn:b"},
		{"urn:b", "urn:p", "urn:c"},
		{"urn:c", "urn:r", "urn:a"},
		{"urn:c", "urn:p", "urn:c"},
	} {
		require.NoError(t, g.Add(triple(t, f, spo[0], spo[1], spo[2])))
	}
	p := iri(t, f, "urn:p")

	all, err := g.Stream().Collect()
	require.NoError(t, err)
	require.Len(t, all, 5)
	var want []rdf.Triple
	for _, tr := range all {
		if tr.P == p {
			want = append(want, tr)
		}
	}

	got, err := g.Match(rdf.TriplePattern{P: p}).Collect()
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)

	everything, err := g.Match(rdf.TriplePattern{}).Collect()
	require.NoError(t, err)
	assert.ElementsMatch(t, all, everything)

	bySubject, err := g.Match(rdf.TriplePattern{S: iri(t, f, "urn:c")}).Count()
	require.NoError(t, err)
	assert.Equal(t, 2, bySubject)

	byObject, err := g.Match(rdf.TriplePattern{O: iri(t, f, "urn:b")}).Count()
	require.NoError(t, err)
	assert.Equal(t, 2, byObject)

	exact, err := g.Match(rdf.TriplePattern{S: iri(t, f, "urn:c"), P: p, O: iri(t, f, "urn:c")}).Count()
	require.NoError(t, err)
	assert.Equal(t, 1, exact)

	assert.True(t, g.ContainsMatching(rdf.TriplePattern{P: iri(t, f, "urn:r")}))
	assert.False(t, g.ContainsMatching(rdf.TriplePattern{P: iri(t, f, "urn:missing")}))
}

// RemoveByPattern checks wildcard removal.
func RemoveByPattern(t *testing.T, newFactory NewFactory) {
	f := newFactory()
	g := newGraph(t, f)
	require.NoError(t, g.Add(triple(t, f, "urn:s1", "urn:p", "urn:o")))
	require.NoError(t, g.Add(triple(t, f, "urn:s2", "urn:p", "urn:o")))
	require.NoError(t, g.Add(triple(t, f, "urn:s3", "urn:p", "urn:o")))
	require.Equal(t, 3, g.Size())

	n, err := g.RemoveMatching(rdf.TriplePattern{P: iri(t, f, "urn:p")})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, g.Size())

	n, err = g.RemoveMatching(rdf.TriplePattern{P: iri(t, f, "urn:p")})
	require.NoError(t, err)
	assert.Zero(t, n)
}

// DatasetDefaultGraph checks that a quad with no graph name shows up in the
// default graph view.
func DatasetDefaultGraph(t *testing.T, newFactory NewFactory) {
	f := newFactory()
	b, err := f.NamedBlankNode("x")
	require.NoError(t, err)
	ds := newDataset(t, f)
	p, o := iri(t, f, "urn:p"), iri(t, f, "urn:o")

	q, err := f.Quad(nil, b, p, o)
	require.NoError(t, err)
	require.NoError(t, ds.Add(q))

	tr, err := f.Triple(b, p, o)
	require.NoError(t, err)
	assert.True(t, ds.Graph(nil).Contains(tr))
	assert.True(t, ds.DefaultGraph().Contains(tr))
	assert.True(t, ds.Contains(q))
	assert.Equal(t, 1, ds.Size())

	got, err := ds.Match(rdf.QuadPattern{G: rdf.DefaultGraph, S: b}).Collect()
	require.NoError(t, err)
	assert.Equal(t, []rdf.Quad{q}, got)
}

// NamedGraphViews checks that views write to and read from their graph.
func NamedGraphViews(t *testing.T, newFactory NewFactory) {
	f := newFactory()
	ds := newDataset(t, f)
	g1 := iri(t, f, "urn:g1")
	tr := triple(t, f, "urn:s", "urn:p", "urn:o")

	view := ds.Graph(g1)
	require.NoError(t, view.Add(tr))
	assert.True(t, ds.Contains(tr.InGraph(g1)))
	assert.False(t, ds.Contains(tr.InGraph(nil)))
	assert.False(t, ds.DefaultGraph().Contains(tr))
	assert.Equal(t, 1, view.Size())
	assert.Equal(t, 0, ds.DefaultGraph().Size())

	inG1, err := ds.Match(rdf.QuadPattern{G: rdf.InGraph(g1)}).Count()
	require.NoError(t, err)
	assert.Equal(t, 1, inG1)

	require.NoError(t, view.Remove(tr))
	assert.Equal(t, 0, ds.Size())
	require.NoError(t, view.Close())
}

// UnionGraphLaw checks that the union view collapses duplicates across
// graphs.
func UnionGraphLaw(t *testing.T, newFactory NewFactory) {
	f := newFactory()
	ds := newDataset(t, f)
	g1 := iri(t, f, "urn:g1")
	t1 := triple(t, f, "urn:s", "urn:p", "urn:o1")
	t2 := triple(t, f, "urn:s", "urn:p", "urn:o2")

	require.NoError(t, ds.Add(t1.InGraph(nil)))
	require.NoError(t, ds.Add(t1.InGraph(g1)))
	require.NoError(t, ds.Add(t2.InGraph(g1)))
	require.Equal(t, 3, ds.Size())

	union := ds.UnionGraph()
	assert.Equal(t, 2, union.Size())
	got, err := union.Stream().Collect()
	require.NoError(t, err)
	assert.ElementsMatch(t, []rdf.Triple{t1, t2}, got)
	assert.True(t, union.Contains(t2))
}

// UnionGraphWrites checks the write policy of the union view: additions go
// to the default graph and removals apply to every graph.
func UnionGraphWrites(t *testing.T, newFactory NewFactory) {
	f := newFactory()
	ds := newDataset(t, f)
	g1, g2 := iri(t, f, "urn:g1"), iri(t, f, "urn:g2")
	tr := triple(t, f, "urn:s", "urn:p", "urn:o")
	union := ds.UnionGraph()

	require.NoError(t, union.Add(tr))
	assert.True(t, ds.Contains(tr.InGraph(nil)))

	require.NoError(t, ds.Add(tr.InGraph(g1)))
	require.NoError(t, ds.Add(tr.InGraph(g2)))
	require.Equal(t, 3, ds.Size())

	require.NoError(t, union.Remove(tr))
	assert.Equal(t, 0, ds.Size())

	require.NoError(t, ds.Add(tr.InGraph(g1)))
	require.NoError(t, ds.Add(tr.InGraph(g2)))
	n, err := union.RemoveMatching(rdf.TriplePattern{S: tr.S})
	require.NoError(t, err)
	assert.Equal(t, 1, n, "the union counts the triple once")
	assert.Equal(t, 0, ds.Size())
}

// GraphNames checks that only non-empty named graphs are listed.
func GraphNames(t *testing.T, newFactory NewFactory) {
	f := newFactory()
	ds := newDataset(t, f)
	g1 := iri(t, f, "urn:g1")
	g2, err := f.NamedBlankNode("g2")
	require.NoError(t, err)
	t1 := triple(t, f, "urn:s", "urn:p", "urn:o1")
	t2 := triple(t, f, "urn:s", "urn:p", "urn:o2")

	require.NoError(t, ds.Add(t1.InGraph(nil)))
	require.NoError(t, ds.Add(t1.InGraph(g1)))
	require.NoError(t, ds.Add(t2.InGraph(g1)))
	require.NoError(t, ds.Add(t2.InGraph(g2)))

	names, err := ds.GraphNames().Collect()
	require.NoError(t, err)
	assert.ElementsMatch(t, []rdf.Subject{g1, g2}, names)

	require.NoError(t, ds.Graph(g2).Clear())
	names, err = ds.GraphNames().Collect()
	require.NoError(t, err)
	assert.Equal(t, []rdf.Subject{g1}, names)
}

// StreamSingleUse checks that a retrieval stream cannot be replayed.
func StreamSingleUse(t *testing.T, newFactory NewFactory) {
	f := newFactory()
	g := newGraph(t, f)
	require.NoError(t, g.Add(triple(t, f, "urn:s", "urn:p", "urn:o")))

	s := g.Stream()
	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.Count()
	assert.Zero(t, n)
	require.ErrorIs(t, err, rdf.ErrStreamConsumed)
	assert.Equal(t, rdf.ErrCodeInvalidState, rdf.Code(err))

	fresh, err := g.Stream().Count()
	require.NoError(t, err)
	assert.Equal(t, 1, fresh, "each call returns a new stream")
}

// ForeignBlankNodes checks that blank nodes from another factory keep
// their identity in the backend, even when both use the same name, and that
// names which are not valid labels survive a round trip.
func ForeignBlankNodes(t *testing.T, newFactory NewFactory) {
	f := newFactory()
	foreign := rdf.NewTermFactory()
	ds := newDataset(t, f)
	p, o := iri(t, f, "urn:p"), iri(t, f, "urn:o")

	local, err := f.NamedBlankNode("b0")
	require.NoError(t, err)
	other, err := foreign.NamedBlankNode("b0")
	require.NoError(t, err)
	require.NotEqual(t, local, other)
	spaced, err := f.NamedBlankNode("b 0")
	require.NoError(t, err)

	qLocal, err := f.Quad(nil, local, p, o)
	require.NoError(t, err)
	qOther, err := f.Quad(other, other, p, o)
	require.NoError(t, err)
	require.NoError(t, ds.Add(qLocal))
	qSpaced, err := f.Quad(nil, spaced, p, o)
	require.NoError(t, err)
	require.NoError(t, ds.Add(qOther))
	require.NoError(t, ds.Add(qOther))
	require.NoError(t, ds.Add(qSpaced))

	assert.Equal(t, 3, ds.Size())
	assert.True(t, ds.Contains(qOther))
	assert.True(t, ds.Contains(qSpaced))
	got, err := ds.Stream().Collect()
	require.NoError(t, err)
	assert.ElementsMatch(t, []rdf.Quad{qLocal, qOther, qSpaced}, got)

	names, err := ds.GraphNames().Collect()
	require.NoError(t, err)
	assert.Equal(t, []rdf.Subject{other}, names)
}

// Clear checks that Clear empties containers and views.
func Clear(t *testing.T, newFactory NewFactory) {
	f := newFactory()
	ds := newDataset(t, f)
	g1 := iri(t, f, "urn:g1")
	tr := triple(t, f, "urn:s", "urn:p", "urn:o")
	require.NoError(t, ds.Add(tr.InGraph(nil)))
	require.NoError(t, ds.Add(tr.InGraph(g1)))

	require.NoError(t, ds.DefaultGraph().Clear())
	assert.Equal(t, 1, ds.Size())
	require.NoError(t, ds.Clear())
	assert.Equal(t, 0, ds.Size())
	assert.False(t, ds.ContainsMatching(rdf.QuadPattern{}))

	g := newGraph(t, f)
	require.NoError(t, g.Add(tr))
	require.NoError(t, g.Clear())
	assert.Equal(t, 0, g.Size())
}

func iri(t *testing.T, f rdf.Factory, value string) rdf.IRI {
	t.Helper()
	i, err := f.IRI(value)
	require.NoError(t, err)
	return i
}

func triple(t *testing.T, f rdf.Factory, s, p, o string) rdf.Triple {
	t.Helper()
	tr, err := f.Triple(iri(t, f, s), iri(t, f, p), iri(t, f, o))
	require.NoError(t, err)
	return tr
}

func newGraph(t *testing.T, f rdf.Factory) rdf.Graph {
	t.Helper()
	g, err := f.NewGraph()
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func newDataset(t *testing.T, f rdf.Factory) rdf.Dataset {
	t.Helper()
	ds, err := f.NewDataset()
	require.NoError(t, err)
	t.Cleanup(func() { _ = ds.Close() })
	return ds
}
