package simple

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/geoknoesis/rdf-commons/rdf"
)

// statement is the type set of values a set can hold.
type statement interface {
	rdf.Triple | rdf.Quad
	Validate() error
}

// pattern is a wildcard query over statements of type S.
type pattern[S any] interface {
	rdf.TriplePattern | rdf.QuadPattern
	Matches(S) bool
}

// set is a hash set of statements. Graph and Dataset are its two
// instantiations. Items are keyed by the statement boxed in an interface:
// every term kind is a comparable struct, so == on the boxed value is
// statement equality.
type set[S statement, P pattern[S]] struct {
	items  map[any]S
	kind   string
	logger *log.Logger
	closed bool
}

func newSet[S statement, P pattern[S]](kind string, logger *log.Logger) set[S, P] {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return set[S, P]{items: make(map[any]S), kind: kind, logger: logger}
}

func (s *set[S, P]) Add(stmt S) error {
	if s.closed {
		return rdf.ErrClosed
	}
	if err := stmt.Validate(); err != nil {
		return err
	}
	s.items[stmt] = stmt
	return nil
}

func (s *set[S, P]) Remove(stmt S) error {
	if s.closed {
		return rdf.ErrClosed
	}
	delete(s.items, stmt)
	return nil
}

func (s *set[S, P]) RemoveMatching(p P) (int, error) {
	if s.closed {
		return 0, rdf.ErrClosed
	}
	n, err := rdf.RemoveMatching[S, P](s, p)
	s.logger.Debug("removed matching statements", "container", s.kind, "count", n)
	return n, err
}

func (s *set[S, P]) Clear() error {
	if s.closed {
		return rdf.ErrClosed
	}
	s.logger.Debug("clearing", "container", s.kind, "size", len(s.items))
	clear(s.items)
	return nil
}

func (s *set[S, P]) Contains(stmt S) bool {
	_, ok := s.items[stmt]
	return ok
}

func (s *set[S, P]) ContainsMatching(p P) bool {
	for _, stmt := range s.items {
		if p.Matches(stmt) {
			return true
		}
	}
	return false
}

func (s *set[S, P]) Size() int { return len(s.items) }

// Logger returns the logger the container reports to.
func (s *set[S, P]) Logger() *log.Logger { return s.logger }

func (s *set[S, P]) Stream() *rdf.Stream[S] {
	var all P
	return s.Match(all)
}

// Match scans the set lazily. Removing statements during iteration is
// permitted; statements added during iteration may or may not be seen.
func (s *set[S, P]) Match(p P) *rdf.Stream[S] {
	return rdf.NewStream(func(yield func(S) bool) error {
		if s.closed {
			return rdf.ErrClosed
		}
		for _, stmt := range s.items {
			if p.Matches(stmt) && !yield(stmt) {
				return nil
			}
		}
		return nil
	})
}

func (s *set[S, P]) Close() error {
	if s.closed {
		return nil
	}
	s.logger.Debug("closing", "container", s.kind, "size", len(s.items))
	s.closed = true
	s.items = nil
	return nil
}
