package generator

import (
	"iter"
	"runtime"
	"sync/atomic"
)

// Yielder is the producer half of the handshake. It is created by New,
// handed to the producer function, and owns the sending side of the
// delivery channel; consumers never see it.
type Yielder[T any] struct {
	demand *atomic.Uint64
	items  chan T
	quit   <-chan struct{}
}

// Yield hands one value to the consumer. It blocks until a call to Next is
// outstanding on the consumer side, which bounds the producer to one value
// ahead of the consumer.
//
// The wait is a spin: Yield repeatedly loads the demand counter and yields
// the processor in between, rather than parking on a second blocking
// primitive. If the Generator has been garbage collected while the producer
// waits, Yield terminates the producer goroutine with runtime.Goexit;
// deferred calls in the producer function still run.
func (y *Yielder[T]) Yield(v T) {
	for y.demand.Load() == 0 {
		select {
		case <-y.quit:
			runtime.Goexit()
		default:
			runtime.Gosched()
		}
	}
	y.demand.Add(^uint64(0))
	y.items <- v
}

// YieldFrom yields every value of src in order, with the same per-value
// blocking as Yield. A *Generator is itself a Source, so a producer can
// splice in the whole sequence of a nested generator.
func (y *Yielder[T]) YieldFrom(src Source[T]) {
	for src.Next() {
		y.Yield(src.Value())
	}
}

// YieldSeq yields every value of seq in order.
func (y *Yielder[T]) YieldSeq(seq iter.Seq[T]) {
	for v := range seq {
		y.Yield(v)
	}
}
