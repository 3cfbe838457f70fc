package generator

import (
	"fmt"
	"runtime/debug"
)

// worker is the join handle for the goroutine running a producer function.
type worker struct {
	done chan struct{}
	err  error // written before done is closed
}

// spawn runs f(y) on a new goroutine. The delivery channel owned by y is
// closed when f returns, which is the only termination signal the consumer
// side observes; the done channel closes last so that join sees err.
func spawn[T any](f func(*Yielder[T]), y *Yielder[T]) *worker {
	w := &worker{done: make(chan struct{})}
	go func() {
		defer close(w.done)
		defer close(y.items)
		defer func() {
			if v := recover(); v != nil {
				w.err = &PanicError{Value: v, Stack: debug.Stack()}
			}
		}()
		f(y)
	}()
	return w
}

// finished reports whether the goroutine has returned, without blocking.
func (w *worker) finished() bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}

// join waits for the goroutine to return and reports how it ended.
func (w *worker) join() error {
	<-w.done
	return w.err
}

// A PanicError is reported by Generator.Err when the producer function
// panicked instead of returning.
type PanicError struct {
	Value any    // the value passed to panic
	Stack []byte // the producer goroutine's stack at the point of the panic
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("generator: producer panicked: %v", e.Value)
}
