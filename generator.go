// Package generator runs a producer function on a dedicated goroutine and
// exposes the values it yields as a pull iterator, without the consumer
// writing any synchronization code.
//
// The two sides are coupled by a handshake: each call to Next registers a
// demand for exactly one value, and the producer's Yield blocks until such a
// demand exists. The producer therefore never runs more than one un-pulled
// value ahead of the consumer.
package generator

import (
	"iter"
	"runtime"
	"sync/atomic"
)

// Generator is the consumer half of the handshake. It owns the receiving
// side of the delivery channel and the join handle of the producer
// goroutine.
//
// A Generator is not safe for concurrent use by multiple consumers.
type Generator[T any] struct {
	demand *atomic.Uint64
	items  <-chan T
	w      *worker // nil once the producer goroutine has been joined
	value  T
	err    error
}

// New starts f on a new goroutine and returns a Generator pulling the
// values it yields. f is invoked exactly once; it receives a Yielder bound
// to the returned Generator and should not retain it after returning.
//
// No value is produced until the first call to Next.
func New[T any](f func(*Yielder[T])) *Generator[T] {
	demand := new(atomic.Uint64)
	items := make(chan T, 1)
	quit := make(chan struct{})

	y := &Yielder[T]{demand: demand, items: items, quit: quit}
	w := spawn(f, y)

	g := &Generator[T]{demand: demand, items: items, w: w}
	// If the consumer drops the Generator while the producer is parked in
	// Yield, no demand can ever wake it again; the counter alone carries no
	// abandonment signal. The cleanup closes quit so the wait loop in Yield
	// can bail out instead of spinning forever.
	runtime.AddCleanup(g, func(quit chan struct{}) { close(quit) }, quit)
	return g
}

// Next advances the generator by one value. It returns true if a value was
// produced, in which case Value returns it, and false once the producer has
// returned. After returning false once, Next keeps returning false.
//
// Next blocks until the producer yields or returns; a producer that does
// neither blocks Next indefinitely. That is back-pressure, not an error.
func (g *Generator[T]) Next() bool {
	if g.w == nil {
		return false
	}
	if g.w.finished() {
		// The producer returned on its own. A correctly terminating
		// producer never sends without a matched demand, so no buffered
		// value is left to drain at this point.
		g.err = g.w.join()
		g.w = nil
		return false
	}
	g.demand.Add(1)
	v, ok := <-g.items
	if !ok {
		// The sending side was closed while we were waiting.
		g.err = g.w.join()
		g.w = nil
		return false
	}
	g.value = v
	return true
}

// Value returns the value produced by the last successful call to Next. It
// is undefined before the first call to Next or after Next returned false.
func (g *Generator[T]) Value() T { return g.value }

// Err returns a *PanicError if the producer function panicked, and nil
// otherwise. It is meaningful only once Next has returned false.
func (g *Generator[T]) Err() error { return g.err }

// All returns the remaining values as a range-over-func sequence.
//
// Breaking out of the range loop leaves the producer parked; it is released
// when the Generator is garbage collected.
func (g *Generator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for g.Next() {
			if !yield(g.Value()) {
				return
			}
		}
	}
}
