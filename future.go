// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package icrud

import (
	"context"
	"fmt"
)

// Future is the eventual outcome of an asynchronous computation.
// It settles exactly once, either fulfilled with a value or rejected with
// an error, and never changes afterwards.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// PanicError is the rejection of a Future whose computation panicked.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("icrud: panic in future: %v", e.Value)
}

// Go runs f on a new goroutine and returns a Future of its result.
// A panic in f rejects the Future with a [*PanicError] holding the
// recovered value.
func Go[T any](f func() (T, error)) *Future[T] {
	fut := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(fut.done)
		defer func() {
			if r := recover(); r != nil {
				var zero T
				fut.val, fut.err = zero, &PanicError{Value: r}
			}
		}()
		fut.val, fut.err = f()
	}()
	return fut
}

// Resolved returns a Future already fulfilled with v.
func Resolved[T any](v T) *Future[T] {
	fut := &Future[T]{done: make(chan struct{}), val: v}
	close(fut.done)
	return fut
}

// Rejected returns a Future already rejected with err.
func Rejected[T any](err error) *Future[T] {
	fut := &Future[T]{done: make(chan struct{}), err: err}
	close(fut.done)
	return fut
}

// Done returns a channel closed when the Future settles.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Wait blocks until the Future settles and returns its outcome.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// Await is Wait bounded by ctx. When ctx ends first it returns ctx.Err();
// the computation behind the Future keeps running.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
