package generator

import "iter"

// Source is the pull side of any exhaustible sequence: Next advances it and
// reports whether a value is available, Value returns that value.
// *Generator satisfies Source.
type Source[T any] interface {
	Next() bool
	Value() T
}

// FromSlice returns a Source traversing s in order.
func FromSlice[T any](s []T) Source[T] {
	return &sliceSource[T]{slice: s, index: -1}
}

type sliceSource[T any] struct {
	slice []T
	index int
}

func (s *sliceSource[T]) Next() bool {
	s.index++
	return s.index < len(s.slice)
}

func (s *sliceSource[T]) Value() T {
	return s.slice[s.index]
}

// FromSeq returns a Source traversing a range-over-func sequence.
func FromSeq[T any](seq iter.Seq[T]) Source[T] {
	next, stop := iter.Pull(seq)
	return &seqSource[T]{next: next, stop: stop}
}

type seqSource[T any] struct {
	next  func() (T, bool)
	stop  func()
	value T
}

func (s *seqSource[T]) Next() bool {
	v, ok := s.next()
	if !ok {
		s.stop()
		return false
	}
	s.value = v
	return true
}

func (s *seqSource[T]) Value() T {
	return s.value
}

// Collect drains src and returns its remaining values as a slice.
func Collect[T any](src Source[T]) []T {
	var values []T
	for src.Next() {
		values = append(values, src.Value())
	}
	return values
}
