package indexed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdf-commons/rdf"
	"github.com/geoknoesis/rdf-commons/rdf/rdftest"
)

func TestConformance(t *testing.T) {
	rdftest.Run(t, func(opts ...rdf.Option) rdf.Factory {
		return NewFactory(opts...)
	})
}

func mustIRI(t *testing.T, f *Factory, v string) rdf.IRI {
	t.Helper()
	i, err := f.IRI(v)
	require.NoError(t, err)
	return i
}

func TestPlanPicksLongestPrefix(t *testing.T) {
	f := NewFactory()
	g := newGraph(nil)
	a, p := mustIRI(t, f, "urn:a"), mustIRI(t, f, "urn:p")

	tests := []struct {
		name    string
		pattern rdf.TriplePattern
		index   string
		prefix  int
	}{
		{"none", rdf.TriplePattern{}, "spo", 0},
		{"subject", rdf.TriplePattern{S: a}, "spo", 1},
		{"predicate", rdf.TriplePattern{P: p}, "pos", 1},
		{"object", rdf.TriplePattern{O: a}, "osp", 1},
		{"subject object", rdf.TriplePattern{S: a, O: a}, "osp", 2},
		{"all", rdf.TriplePattern{S: a, P: p, O: a}, "spo", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix, n := g.plan(tt.pattern)
			assert.Equal(t, tt.index, ix.name)
			assert.Equal(t, tt.prefix, n)
		})
	}
}

func TestDatasetIndexesAgree(t *testing.T) {
	f := NewFactory()
	ds := newDataset(nil)
	g1, g2 := mustIRI(t, f, "urn:g1"), mustIRI(t, f, "urn:g2")
	s, p, o := mustIRI(t, f, "urn:s"), mustIRI(t, f, "urn:p"), mustIRI(t, f, "urn:o")
	lit, err := f.LangLiteral("x", "en")
	require.NoError(t, err)

	for _, g := range []rdf.Subject{nil, g1, g2} {
		for _, obj := range []rdf.Term{o, lit} {
			q, err := f.Quad(g, s, p, obj)
			require.NoError(t, err)
			require.NoError(t, ds.Add(q))
		}
	}
	require.Equal(t, 6, ds.Size())
	for _, ix := range ds.indexes {
		assert.Equal(t, 6, ix.tree.Len(), ix.name)
	}

	n, err := ds.Match(rdf.QuadPattern{O: lit}).Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = ds.Match(rdf.QuadPattern{G: rdf.DefaultGraph, O: lit}).Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	removed, err := ds.RemoveMatching(rdf.QuadPattern{G: rdf.InGraph(g1)})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	for _, ix := range ds.indexes {
		assert.Equal(t, 4, ix.tree.Len(), ix.name)
	}
}

func TestConcurrentModification(t *testing.T) {
	f := NewFactory()
	g, err := f.NewGraph()
	require.NoError(t, err)
	p := mustIRI(t, f, "urn:p")
	for _, v := range []string{"urn:a", "urn:b", "urn:c"} {
		tr, err := f.Triple(mustIRI(t, f, v), p, p)
		require.NoError(t, err)
		require.NoError(t, g.Add(tr))
	}

	s := g.Stream()
	seen := 0
	for tr := range s.All() {
		seen++
		require.NoError(t, g.Remove(tr))
	}
	assert.Equal(t, 1, seen)
	require.ErrorIs(t, s.Err(), rdf.ErrConcurrentModification)
	assert.Equal(t, rdf.ErrCodeConcurrentModification, rdf.Code(s.Err()))
	assert.Equal(t, 2, g.Size())
}

func TestClosedGraph(t *testing.T) {
	f := NewFactory()
	g, err := f.NewGraph()
	require.NoError(t, err)
	p := mustIRI(t, f, "urn:p")
	tr, err := f.Triple(p, p, p)
	require.NoError(t, err)

	require.NoError(t, g.Close())
	assert.ErrorIs(t, g.Add(tr), rdf.ErrClosed)
	_, err = g.RemoveMatching(rdf.TriplePattern{})
	assert.ErrorIs(t, err, rdf.ErrClosed)
	assert.False(t, g.ContainsMatching(rdf.TriplePattern{}))
}
