package rdf

// QuadHandler accepts quads in push mode. Parsers and other producers hand
// their output to a QuadHandler one quad at a time.
type QuadHandler interface {
	Handle(Quad) error
}

// QuadHandlerFunc adapts a function to a QuadHandler.
type QuadHandlerFunc func(Quad) error

// Handle calls the underlying function.
func (h QuadHandlerFunc) Handle(q Quad) error { return h(q) }

// DatasetSink returns a handler adding every quad to d as is.
func DatasetSink(d Dataset) QuadHandler {
	return QuadHandlerFunc(d.Add)
}

// DefaultGraphSink returns a handler adding the triples of default-graph
// quads to g. Quads in named graphs are dropped.
func DefaultGraphSink(g Graph) QuadHandler {
	return QuadHandlerFunc(func(q Quad) error {
		if !q.InDefaultGraph() {
			return nil
		}
		return g.Add(q.AsTriple())
	})
}

// UnionGraphSink returns a handler adding the triple of every quad to g,
// merging all graphs.
func UnionGraphSink(g Graph) QuadHandler {
	return QuadHandlerFunc(func(q Quad) error {
		return g.Add(q.AsTriple())
	})
}

// CopyQuads feeds every quad of s to h and returns how many were handed
// over.
func CopyQuads(s *Stream[Quad], h QuadHandler) (int, error) {
	n := 0
	err := s.ForEach(func(q Quad) error {
		if err := h.Handle(q); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}

// CopyTriples adds every triple of s to g.
func CopyTriples(s *Stream[Triple], g Graph) (int, error) {
	return CopyQuads(MapStream(s, func(t Triple) Quad { return t.InGraph(nil) }), DefaultGraphSink(g))
}
