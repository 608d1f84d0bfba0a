package rdf

// GraphMatch selects the graph position of a QuadPattern. The zero value
// matches every graph.
type GraphMatch struct {
	set  bool
	name Subject
}

var (
	// AnyGraph matches quads in every graph.
	AnyGraph = GraphMatch{}
	// DefaultGraph matches quads in the default graph only.
	DefaultGraph = GraphMatch{set: true}
)

// InGraph matches quads in the graph named name. A nil name selects the
// default graph.
func InGraph(name Subject) GraphMatch {
	return GraphMatch{set: true, name: name}
}

// IsAny reports whether m matches every graph.
func (m GraphMatch) IsAny() bool { return !m.set }

// Name returns the selected graph name; nil means the default graph. ok is
// false when m matches every graph.
func (m GraphMatch) Name() (name Subject, ok bool) { return m.name, m.set }

// Matches reports whether a quad with graph name g is selected.
func (m GraphMatch) Matches(g Subject) bool {
	return !m.set || m.name == g
}

func (m GraphMatch) String() string {
	switch {
	case !m.set:
		return "any graph"
	case m.name == nil:
		return "default graph"
	default:
		return m.name.String()
	}
}

// TriplePattern is a single-statement wildcard query. A nil subject or
// object, or a zero predicate, matches every value in that position.
type TriplePattern struct {
	S Subject
	P IRI
	O Term
}

// Matches reports whether t satisfies the pattern.
func (p TriplePattern) Matches(t Triple) bool {
	return (p.S == nil || p.S == t.S) &&
		(p.P.IsZero() || p.P == t.P) &&
		(p.O == nil || p.O == t.O)
}

// InGraph extends the pattern with a graph selection.
func (p TriplePattern) InGraph(g GraphMatch) QuadPattern {
	return QuadPattern{G: g, S: p.S, P: p.P, O: p.O}
}

// QuadPattern is the dataset counterpart of TriplePattern. The zero value
// matches every quad.
type QuadPattern struct {
	G GraphMatch
	S Subject
	P IRI
	O Term
}

// Matches reports whether q satisfies the pattern.
func (p QuadPattern) Matches(q Quad) bool {
	return p.G.Matches(q.G) && p.TriplePattern().Matches(q.AsTriple())
}

// TriplePattern drops the graph selection.
func (p QuadPattern) TriplePattern() TriplePattern {
	return TriplePattern{S: p.S, P: p.P, O: p.O}
}

// GraphLike is the container contract shared by graphs and datasets: a
// mutable set of unique statements of type S queried with patterns of type P.
//
// Add and Remove are idempotent. RemoveMatching removes every statement the
// pattern matches and returns how many were removed. Size counts distinct
// statements. Stream and Match return fresh single-use streams; iterating
// while mutating the container is undefined unless a backend documents
// otherwise.
//
// Containers are not safe for concurrent use. Operations other than Close
// are undefined after Close.
type GraphLike[S Triple | Quad, P TriplePattern | QuadPattern] interface {
	Add(stmt S) error
	Remove(stmt S) error
	RemoveMatching(pattern P) (int, error)
	Clear() error
	Contains(stmt S) bool
	ContainsMatching(pattern P) bool
	Size() int
	Stream() *Stream[S]
	Match(pattern P) *Stream[S]
	Close() error
}

// Graph is a set of triples.
type Graph interface {
	GraphLike[Triple, TriplePattern]
}

// Dataset is a set of quads partitioned into a default graph and named
// graphs.
type Dataset interface {
	GraphLike[Quad, QuadPattern]

	// DefaultGraph returns a live view of the default graph.
	DefaultGraph() Graph
	// Graph returns a live view of the graph named name; nil selects the
	// default graph.
	Graph(name Subject) Graph
	// UnionGraph returns a live view merging every graph, with duplicate
	// triples collapsed. Writes go to the default graph; removals apply to
	// every graph.
	UnionGraph() Graph
	// GraphNames streams the distinct names of non-empty named graphs.
	GraphNames() *Stream[Subject]
}

// RemoveMatching removes every statement of c matched by pattern. Matches
// are collected before any removal so no stream is open while c changes.
func RemoveMatching[S Triple | Quad, P TriplePattern | QuadPattern](c GraphLike[S, P], pattern P) (int, error) {
	matches, err := c.Match(pattern).Collect()
	if err != nil {
		return 0, err
	}
	for i, stmt := range matches {
		if err := c.Remove(stmt); err != nil {
			return i, err
		}
	}
	return len(matches), nil
}

// GraphNames streams the distinct graph names of quads in d. It scans
// every quad; backends with a graph index should answer directly.
func GraphNames(d Dataset) *Stream[Subject] {
	names := d.Match(QuadPattern{}).Filter(func(q Quad) bool { return q.G != nil })
	return Distinct(MapStream(names, func(q Quad) Subject { return q.G }))
}
