package rdf_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdf-commons/rdf"
	"github.com/geoknoesis/rdf-commons/rdf/indexed"
	"github.com/geoknoesis/rdf-commons/rdf/jsonld"
	"github.com/geoknoesis/rdf-commons/rdf/simple"
)

type fixture struct {
	f      rdf.Factory
	ds     rdf.Dataset
	g1, g2 rdf.IRI
	t1, t2 rdf.Triple
}

func newFixture(t *testing.T, f rdf.Factory) fixture {
	t.Helper()
	ds, err := f.NewDataset()
	require.NoError(t, err)
	mk := func(v string) rdf.IRI {
		i, err := f.IRI(v)
		require.NoError(t, err)
		return i
	}
	x := fixture{f: f, ds: ds, g1: mk("urn:g1"), g2: mk("urn:g2")}
	x.t1, err = f.Triple(mk("urn:s"), mk("urn:p"), mk("urn:o1"))
	require.NoError(t, err)
	x.t2, err = f.Triple(mk("urn:s"), mk("urn:p"), mk("urn:o2"))
	require.NoError(t, err)
	return x
}

func TestViewsAreLive(t *testing.T) {
	for name, f := range map[string]rdf.Factory{
		"simple":  simple.NewFactory(),
		"indexed": indexed.NewFactory(),
	} {
		t.Run(name, func(t *testing.T) {
			x := newFixture(t, f)
			named := x.ds.Graph(x.g1)
			union := x.ds.UnionGraph()
			assert.Equal(t, 0, union.Size())

			require.NoError(t, x.ds.Add(x.t1.InGraph(x.g1)))
			assert.True(t, named.Contains(x.t1), "view sees writes made after it was created")
			assert.True(t, union.Contains(x.t1))
			assert.False(t, x.ds.Graph(x.g2).Contains(x.t1))

			require.NoError(t, named.Add(x.t2))
			require.NoError(t, union.Add(x.t2))
			assert.Equal(t, 3, x.ds.Size())
			assert.Equal(t, 2, union.Size())
			assert.Equal(t, 1, x.ds.DefaultGraph().Size())

			n, err := named.RemoveMatching(rdf.TriplePattern{O: x.t2.O})
			require.NoError(t, err)
			assert.Equal(t, 1, n)
			assert.True(t, x.ds.DefaultGraph().Contains(x.t2), "named view removal stays in its graph")
		})
	}
}

func TestSinks(t *testing.T) {
	x := newFixture(t, simple.NewFactory())
	quads := []rdf.Quad{x.t1.InGraph(nil), x.t1.InGraph(x.g1), x.t2.InGraph(x.g2)}

	ds, err := x.f.NewDataset()
	require.NoError(t, err)
	n, err := rdf.CopyQuads(rdf.SliceStream(quads), rdf.DatasetSink(ds))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, ds.Size())

	def, err := x.f.NewGraph()
	require.NoError(t, err)
	_, err = rdf.CopyQuads(rdf.SliceStream(quads), rdf.DefaultGraphSink(def))
	require.NoError(t, err)
	assert.Equal(t, 1, def.Size())

	union, err := x.f.NewGraph()
	require.NoError(t, err)
	_, err = rdf.CopyQuads(rdf.SliceStream(quads), rdf.UnionGraphSink(union))
	require.NoError(t, err)
	assert.Equal(t, 2, union.Size())

	copied, err := x.f.NewGraph()
	require.NoError(t, err)
	n, err = rdf.CopyTriples(union.Stream(), copied)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, copied.Size())

	require.NoError(t, ds.Close())
	_, err = rdf.CopyQuads(rdf.SliceStream(quads), rdf.DatasetSink(ds))
	assert.ErrorIs(t, err, rdf.ErrClosed)
}

func TestCrossBackendCopy(t *testing.T) {
	from := newFixture(t, simple.NewFactory())
	b, err := from.f.NamedBlankNode("x")
	require.NoError(t, err)
	q, err := from.f.Quad(b, b, from.t1.P, from.t1.O)
	require.NoError(t, err)
	require.NoError(t, from.ds.Add(q))
	require.NoError(t, from.ds.Add(from.t2.InGraph(nil)))

	to, err := indexed.NewFactory().NewDataset()
	require.NoError(t, err)
	n, err := rdf.CopyQuads(from.ds.Stream(), rdf.DatasetSink(to))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, to.Contains(q))

	names, err := to.GraphNames().Collect()
	require.NoError(t, err)
	assert.Equal(t, []rdf.Subject{b}, names)
}

func TestSharedSaltAcrossBackends(t *testing.T) {
	salt := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	base := rdf.NewTermFactory(rdf.OptSalt(salt))
	want, err := base.NamedBlankNode("x")
	require.NoError(t, err)

	for name, f := range map[string]rdf.Factory{
		"simple":  simple.NewFactory(rdf.OptSalt(salt)),
		"indexed": indexed.NewFactory(rdf.OptSalt(salt)),
		"jsonld":  jsonld.NewFactory(rdf.OptSalt(salt)),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := f.NamedBlankNode("x")
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	f := jsonld.NewFactory(rdf.OptSalt(salt))
	ds, err := f.ParseNQuads("_:x <urn:p> <urn:o> .\n")
	require.NoError(t, err)
	p, err := base.IRI("urn:p")
	require.NoError(t, err)
	assert.True(t, ds.ContainsMatching(rdf.QuadPattern{S: want, P: p}),
		"native label x is the shared named node x")
}
