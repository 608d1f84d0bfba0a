package rdf

import (
	"errors"
	"slices"
	"testing"
)

func TestStreamSingleUse(t *testing.T) {
	s := SliceStream([]int{1, 2, 3})
	got, err := s.Collect()
	if err != nil || !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("Collect() = %v, %v", got, err)
	}
	got, err = s.Collect()
	if !errors.Is(err, ErrStreamConsumed) || got != nil {
		t.Errorf("second Collect() = %v, %v", got, err)
	}
	if Code(s.Err()) != ErrCodeInvalidState {
		t.Errorf("Code() = %s", Code(s.Err()))
	}
}

func TestStreamLaziness(t *testing.T) {
	pulled := 0
	s := NewStream(func(yield func(int) bool) error {
		for i := 0; i < 10; i++ {
			pulled++
			if !yield(i) {
				return nil
			}
		}
		return nil
	})
	if pulled != 0 {
		t.Fatal("stream did work before being consumed")
	}
	v, ok, err := s.First()
	if err != nil || !ok || v != 0 {
		t.Errorf("First() = %v, %v, %v", v, ok, err)
	}
	if pulled != 1 {
		t.Errorf("pulled %d values, want 1", pulled)
	}
}

func TestStreamError(t *testing.T) {
	boom := errors.New("boom")
	s := NewStream(func(yield func(int) bool) error {
		if !yield(1) {
			return nil
		}
		return boom
	})
	n, err := s.Count()
	if n != 1 || !errors.Is(err, boom) {
		t.Errorf("Count() = %d, %v", n, err)
	}

	if _, err := ErrorStream[int](boom).Collect(); !errors.Is(err, boom) {
		t.Errorf("ErrorStream Collect() error = %v", err)
	}

	stop := errors.New("stop")
	err = SliceStream([]int{1, 2}).ForEach(func(int) error { return stop })
	if !errors.Is(err, stop) {
		t.Errorf("ForEach() error = %v", err)
	}
}

func TestStreamCombinators(t *testing.T) {
	even := SliceStream([]int{1, 2, 2, 3, 4, 4}).Filter(func(v int) bool { return v%2 == 0 })
	got, err := Distinct(MapStream(even, func(v int) int { return v * 10 })).Collect()
	if err != nil || !slices.Equal(got, []int{20, 40}) {
		t.Errorf("got %v, %v", got, err)
	}

	seq := StreamOf(slices.Values([]string{"a", "b"}))
	n, err := seq.Count()
	if n != 2 || err != nil {
		t.Errorf("StreamOf Count() = %d, %v", n, err)
	}

	_, ok, err := SliceStream[int](nil).First()
	if ok || err != nil {
		t.Errorf("First() on empty stream = %v, %v", ok, err)
	}
}
