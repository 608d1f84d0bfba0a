package indexed

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/btree"

	"github.com/geoknoesis/rdf-commons/rdf"
)

// degree of every B-tree index.
const degree = 32

// statement is the type set of values a store can hold.
type statement interface {
	rdf.Triple | rdf.Quad
	Validate() error
}

// pattern is a wildcard query over statements of type S.
type pattern[S any] interface {
	rdf.TriplePattern | rdf.QuadPattern
	Matches(S) bool
}

// key holds the term keys of a statement in the order of one index.
// Unused positions are "".
type key [4]string

func (k key) less(o key) bool {
	for i := range k {
		if k[i] != o[i] {
			return k[i] < o[i]
		}
	}
	return false
}

type entry[S any] struct {
	key  key
	stmt S
}

// index orders statements by the positions listed in perm.
type index[S any] struct {
	name string
	perm [4]int
	tree *btree.BTreeG[entry[S]]
}

func newIndex[S any](name string, perm [4]int) *index[S] {
	return &index[S]{
		name: name,
		perm: perm,
		tree: btree.NewG(degree, func(a, b entry[S]) bool { return a.key.less(b.key) }),
	}
}

func (ix *index[S]) keyOf(positions key) key {
	var k key
	for i, p := range ix.perm {
		k[i] = positions[p]
	}
	return k
}

// layout tells a store how to take statements and patterns apart.
type layout[S any, P any] struct {
	// positions returns the term keys of a statement by position.
	positions func(S) key
	// bindings returns the term keys a pattern fixes and which positions
	// it fixes.
	bindings func(P) (key, [4]bool)
	// perms lists the index orders; the first is the primary index.
	perms map[string][4]int
	order []string
}

// store is a set of statements kept in several B-tree indexes, one per
// position order, so any pattern can be answered by a range scan over the
// index whose leading positions the pattern binds.
type store[S statement, P pattern[S]] struct {
	layout  layout[S, P]
	indexes []*index[S]
	size    int
	mods    uint64
	kind    string
	logger  *log.Logger
	closed  bool
}

func newStore[S statement, P pattern[S]](kind string, l layout[S, P], logger *log.Logger) store[S, P] {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := store[S, P]{layout: l, kind: kind, logger: logger}
	for _, name := range l.order {
		s.indexes = append(s.indexes, newIndex[S](name, l.perms[name]))
	}
	return s
}

func (s *store[S, P]) primary() *index[S] { return s.indexes[0] }

func (s *store[S, P]) Add(stmt S) error {
	if s.closed {
		return rdf.ErrClosed
	}
	if err := stmt.Validate(); err != nil {
		return err
	}
	positions := s.layout.positions(stmt)
	if s.primary().tree.Has(entry[S]{key: s.primary().keyOf(positions)}) {
		return nil
	}
	for _, ix := range s.indexes {
		ix.tree.ReplaceOrInsert(entry[S]{key: ix.keyOf(positions), stmt: stmt})
	}
	s.size++
	s.mods++
	return nil
}

func (s *store[S, P]) Remove(stmt S) error {
	if s.closed {
		return rdf.ErrClosed
	}
	if stmt.Validate() != nil {
		return nil
	}
	s.remove(s.layout.positions(stmt))
	return nil
}

func (s *store[S, P]) remove(positions key) {
	if _, ok := s.primary().tree.Delete(entry[S]{key: s.primary().keyOf(positions)}); !ok {
		return
	}
	for _, ix := range s.indexes[1:] {
		ix.tree.Delete(entry[S]{key: ix.keyOf(positions)})
	}
	s.size--
	s.mods++
}

// RemoveMatching collects the matches before touching any index.
func (s *store[S, P]) RemoveMatching(p P) (int, error) {
	if s.closed {
		return 0, rdf.ErrClosed
	}
	matches, err := s.Match(p).Collect()
	if err != nil {
		return 0, err
	}
	for _, stmt := range matches {
		s.remove(s.layout.positions(stmt))
	}
	s.logger.Debug("removed matching statements", "container", s.kind, "count", len(matches))
	return len(matches), nil
}

func (s *store[S, P]) Clear() error {
	if s.closed {
		return rdf.ErrClosed
	}
	s.logger.Debug("clearing", "container", s.kind, "size", s.size)
	for _, ix := range s.indexes {
		ix.tree.Clear(false)
	}
	s.size = 0
	s.mods++
	return nil
}

func (s *store[S, P]) Contains(stmt S) bool {
	if s.closed || stmt.Validate() != nil {
		return false
	}
	return s.primary().tree.Has(entry[S]{key: s.primary().keyOf(s.layout.positions(stmt))})
}

func (s *store[S, P]) ContainsMatching(p P) bool {
	_, ok, err := s.Match(p).First()
	return ok && err == nil
}

func (s *store[S, P]) Size() int { return s.size }

// Logger returns the logger the container reports to.
func (s *store[S, P]) Logger() *log.Logger { return s.logger }

func (s *store[S, P]) Stream() *rdf.Stream[S] {
	var all P
	return s.Match(all)
}

// Match range-scans the index with the longest bound prefix and filters
// the remaining positions. Mutating the store while the stream is being
// consumed ends the stream with rdf.ErrConcurrentModification.
func (s *store[S, P]) Match(p P) *rdf.Stream[S] {
	return rdf.NewStream(func(yield func(S) bool) error {
		if s.closed {
			return rdf.ErrClosed
		}
		ix, prefix := s.plan(p)
		pivot := entry[S]{key: ix.keyOf(s.bindingsOnly(p))}
		start := s.mods
		var err error
		ix.tree.AscendGreaterOrEqual(pivot, func(e entry[S]) bool {
			for i := 0; i < prefix; i++ {
				if e.key[i] != pivot.key[i] {
					return false
				}
			}
			if !p.Matches(e.stmt) {
				return true
			}
			if !yield(e.stmt) {
				return false
			}
			if s.mods != start {
				err = rdf.ErrConcurrentModification
				return false
			}
			return true
		})
		return err
	})
}

// bindingsOnly returns the bound term keys of p with "" in free positions,
// the lowest possible key for the scan.
func (s *store[S, P]) bindingsOnly(p P) key {
	keys, bound := s.layout.bindings(p)
	for i := range keys {
		if !bound[i] {
			keys[i] = ""
		}
	}
	return keys
}

// plan picks the index whose leading positions p binds the most and
// returns it with the length of that bound prefix.
func (s *store[S, P]) plan(p P) (*index[S], int) {
	_, bound := s.layout.bindings(p)
	best, bestLen := s.indexes[0], -1
	for _, ix := range s.indexes {
		n := 0
		for _, pos := range ix.perm {
			if !bound[pos] {
				break
			}
			n++
		}
		if n > bestLen {
			best, bestLen = ix, n
		}
	}
	return best, bestLen
}

func (s *store[S, P]) Close() error {
	if s.closed {
		return nil
	}
	s.logger.Debug("closing", "container", s.kind, "size", s.size)
	for _, ix := range s.indexes {
		ix.tree.Clear(false)
	}
	s.closed = true
	return nil
}
