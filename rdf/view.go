package rdf

import (
	"io"

	"github.com/charmbracelet/log"
)

// graphView is a Graph backed by a live Dataset. It holds no statements of
// its own; every call translates to a dataset operation filtered by graph.
type graphView struct {
	ds     Dataset
	graph  GraphMatch
	logger *log.Logger
}

// loggerOf returns the logger of ds when it exposes one.
func loggerOf(ds Dataset) *log.Logger {
	if l, ok := ds.(interface{ Logger() *log.Logger }); ok && l.Logger() != nil {
		return l.Logger()
	}
	return log.New(io.Discard)
}

// NewGraphView returns a live view of the graph named name in ds, or of the
// default graph when name is nil. Writes add quads in that graph.
func NewGraphView(ds Dataset, name Subject) Graph {
	return &graphView{ds: ds, graph: InGraph(name), logger: loggerOf(ds)}
}

// NewUnionView returns a live view of the union of every graph in ds.
// Duplicate triples across graphs appear once, so Size and Stream scan the
// whole dataset. Add writes to the default graph; Remove removes the triple
// from every graph.
func NewUnionView(ds Dataset) Graph {
	return &graphView{ds: ds, graph: AnyGraph, logger: loggerOf(ds)}
}

func (v *graphView) union() bool { return v.graph.IsAny() }

// target is the graph name new triples are written to.
func (v *graphView) target() Subject {
	name, _ := v.graph.Name()
	return name
}

func (v *graphView) Add(t Triple) error {
	return v.ds.Add(t.InGraph(v.target()))
}

func (v *graphView) Remove(t Triple) error {
	if t.Validate() != nil {
		return nil
	}
	if v.union() {
		_, err := v.ds.RemoveMatching(TriplePattern{S: t.S, P: t.P, O: t.O}.InGraph(AnyGraph))
		return err
	}
	return v.ds.Remove(t.InGraph(v.target()))
}

func (v *graphView) RemoveMatching(p TriplePattern) (int, error) {
	if v.union() {
		// Count distinct triples, not the quads carrying them.
		matches, err := v.Match(p).Collect()
		if err != nil {
			return 0, err
		}
		if _, err := v.ds.RemoveMatching(p.InGraph(AnyGraph)); err != nil {
			return 0, err
		}
		return len(matches), nil
	}
	return v.ds.RemoveMatching(p.InGraph(v.graph))
}

func (v *graphView) Clear() error {
	_, err := v.ds.RemoveMatching(QuadPattern{G: v.graph})
	return err
}

func (v *graphView) Contains(t Triple) bool {
	if t.Validate() != nil {
		return false
	}
	return v.ContainsMatching(TriplePattern{S: t.S, P: t.P, O: t.O})
}

func (v *graphView) ContainsMatching(p TriplePattern) bool {
	return v.ds.ContainsMatching(p.InGraph(v.graph))
}

// Size counts the triples of the view. If the dataset ends the scan with an
// error, the error is logged and the count so far is returned.
func (v *graphView) Size() int {
	n, err := v.Stream().Count()
	if err != nil {
		v.logger.Warn("graph view size is partial", "count", n, "err", err)
	}
	return n
}

func (v *graphView) Stream() *Stream[Triple] {
	return v.Match(TriplePattern{})
}

func (v *graphView) Match(p TriplePattern) *Stream[Triple] {
	triples := MapStream(v.ds.Match(p.InGraph(v.graph)), Quad.AsTriple)
	if v.union() {
		return Distinct(triples)
	}
	return triples
}

// Close is a no-op: the dataset owns the resources behind the view.
func (v *graphView) Close() error { return nil }
