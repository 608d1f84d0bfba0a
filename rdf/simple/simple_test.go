package simple

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

func TestRemoveDuringIteration(t *testing.T) {
	f := NewFactory()
	g := NewGraph()
	for _, o := range []string{"urn:a", "urn:b", "urn:c"} {
		obj, err := f.IRI(o)
		require.NoError(t, err)
		tr, err := f.Triple(obj, obj, obj)
		require.NoError(t, err)
		require.NoError(t, g.Add(tr))
	}

	s := g.Stream()
	for tr := range s.All() {
		require.NoError(t, g.Remove(tr))
	}
	require.NoError(t, s.Err())
	assert.Equal(t, 0, g.Size())
}

func TestClosedDataset(t *testing.T) {
	f := NewFactory()
	ds, err := f.NewDataset()
	require.NoError(t, err)
	p, err := f.IRI("urn:p")
	require.NoError(t, err)
	q, err := f.Quad(nil, p, p, p)
	require.NoError(t, err)
	require.NoError(t, ds.Add(q))

	require.NoError(t, ds.Close())
	require.NoError(t, ds.Close())
	assert.ErrorIs(t, ds.Add(q), rdf.ErrClosed)
	assert.False(t, ds.Contains(q))
	_, err = ds.Stream().Collect()
	assert.Equal(t, rdf.ErrCodeClosed, rdf.Code(err))
}

func TestSetKeysByStatementValue(t *testing.T) {
	f := NewFactory()
	s, err := f.IRI("urn:s")
	require.NoError(t, err)
	g, err := f.IRI("urn:g")
	require.NoError(t, err)
	upper, err := f.LangLiteral("hello", "EN")
	require.NoError(t, err)
	lower, err := f.LangLiteral("hello", "en")
	require.NoError(t, err)

	ds := NewDataset()
	for _, q := range []rdf.Quad{
		{S: s, P: s, O: upper},
		{S: s, P: s, O: lower},
		{G: g, S: s, P: s, O: lower},
		{G: g, S: s, P: s, O: upper},
	} {
		require.NoError(t, ds.Add(q))
	}
	assert.Equal(t, 2, ds.Size())
	assert.True(t, ds.Contains(rdf.Quad{S: s, P: s, O: upper}))
	assert.True(t, ds.Contains(rdf.Quad{G: g, S: s, P: s, O: lower}))

	require.NoError(t, ds.Remove(rdf.Quad{G: g, S: s, P: s, O: upper}))
	assert.Equal(t, 1, ds.Size())
	assert.False(t, ds.Contains(rdf.Quad{G: g, S: s, P: s, O: lower}))
}
