package rdf

import "iter"

// Stream is a lazy, finite, single-use sequence of values returned by graph
// and dataset retrieval methods. No work happens until it is consumed.
//
// A Stream may be iterated once. A second iteration yields nothing and Err
// reports ErrStreamConsumed. A backend may end iteration early with an error
// (for example ErrConcurrentModification), which Err also reports.
//
// Streams are not safe for concurrent use.
//
//	for t := range g.Stream().All() {
//	    // process t
//	}
//	if err := s.Err(); err != nil {
//	    // handle error
//	}
type Stream[T any] struct {
	seq  func(yield func(T) bool) error
	used bool
	err  error
}

// NewStream returns a stream backed by seq. seq must stop when yield returns
// false and may return an error to end the stream abnormally.
func NewStream[T any](seq func(yield func(T) bool) error) *Stream[T] {
	return &Stream[T]{seq: seq}
}

// StreamOf returns a stream over an iterator.
func StreamOf[T any](seq iter.Seq[T]) *Stream[T] {
	return NewStream(func(yield func(T) bool) error {
		seq(yield)
		return nil
	})
}

// SliceStream returns a stream over items.
func SliceStream[T any](items []T) *Stream[T] {
	return NewStream(func(yield func(T) bool) error {
		for _, item := range items {
			if !yield(item) {
				return nil
			}
		}
		return nil
	})
}

// ErrorStream returns a stream that yields nothing and reports err.
func ErrorStream[T any](err error) *Stream[T] {
	return NewStream(func(func(T) bool) error { return err })
}

// All returns the values of the stream for use with range.
func (s *Stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.used {
			if s.err == nil {
				s.err = ErrStreamConsumed
			}
			return
		}
		s.used = true
		if err := s.seq(yield); err != nil {
			s.err = err
		}
	}
}

// Err returns the error that ended the stream, if any.
func (s *Stream[T]) Err() error { return s.err }

// ForEach calls fn for each value, stopping at the first error.
func (s *Stream[T]) ForEach(fn func(T) error) error {
	for v := range s.All() {
		if err := fn(v); err != nil {
			return err
		}
	}
	return s.err
}

// Collect drains the stream into a slice.
func (s *Stream[T]) Collect() ([]T, error) {
	var out []T
	for v := range s.All() {
		out = append(out, v)
	}
	if s.err != nil {
		return nil, s.err
	}
	return out, nil
}

// Count drains the stream and returns the number of values.
func (s *Stream[T]) Count() (int, error) {
	n := 0
	for range s.All() {
		n++
	}
	return n, s.err
}

// First returns the first value, if any, and stops the stream.
func (s *Stream[T]) First() (T, bool, error) {
	for v := range s.All() {
		return v, true, nil
	}
	var zero T
	return zero, false, s.err
}

// Filter returns a stream of the values for which keep returns true.
// The returned stream consumes s.
func (s *Stream[T]) Filter(keep func(T) bool) *Stream[T] {
	return NewStream(func(yield func(T) bool) error {
		for v := range s.All() {
			if keep(v) && !yield(v) {
				return nil
			}
		}
		return s.err
	})
}

// MapStream returns a stream applying fn to each value of s.
func MapStream[T, U any](s *Stream[T], fn func(T) U) *Stream[U] {
	return NewStream(func(yield func(U) bool) error {
		for v := range s.All() {
			if !yield(fn(v)) {
				return nil
			}
		}
		return s.err
	})
}

// Distinct returns a stream that drops values already seen. Memory grows
// with the number of distinct values.
func Distinct[T comparable](s *Stream[T]) *Stream[T] {
	seen := make(map[T]struct{})
	return s.Filter(func(v T) bool {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
		return true
	})
}
