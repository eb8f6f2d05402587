// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package icrud

import "context"

// AsyncExecutor is an [Executor] whose effects complete in the future.
// It is the interpreter consumed by [RunAsync].
type AsyncExecutor[I, D any] interface {
	GetByID(ctx context.Context, id I) *Future[D]
	GetAll(ctx context.Context) *Future[[]D]
	Update(ctx context.Context, id I, doc D) *Future[Unit]
	Create(ctx context.Context, doc D) *Future[I]
}

// Async adapts a synchronous executor: every effect runs on its own
// goroutine. The driver still waits for each effect before issuing the
// next, so x sees at most one call at a time per run.
func Async[I, D any](x Executor[I, D]) AsyncExecutor[I, D] {
	return asyncExecutor[I, D]{x: x}
}

type asyncExecutor[I, D any] struct {
	x Executor[I, D]
}

func (a asyncExecutor[I, D]) GetByID(ctx context.Context, id I) *Future[D] {
	return Go(func() (D, error) { return a.x.GetByID(ctx, id) })
}

func (a asyncExecutor[I, D]) GetAll(ctx context.Context) *Future[[]D] {
	return Go(func() ([]D, error) { return a.x.GetAll(ctx) })
}

func (a asyncExecutor[I, D]) Update(ctx context.Context, id I, doc D) *Future[Unit] {
	return Go(func() (Unit, error) { return Unit{}, a.x.Update(ctx, id, doc) })
}

func (a asyncExecutor[I, D]) Create(ctx context.Context, doc D) *Future[I] {
	return Go(func() (I, error) { return a.x.Create(ctx, doc) })
}

// ResolveAsync performs op against x and returns a Future of the
// continuation's result. With R = Program[I, D, A] this is one step of
// [RunAsync].
func ResolveAsync[I, D, R any](ctx context.Context, x AsyncExecutor[I, D], op Op[I, D, R]) *Future[R] {
	return Go(func() (R, error) { return op.await(ctx, x) })
}

// RunAsync drives p to completion against an asynchronous executor and
// returns a Future of its result.
//
// Operations are issued strictly one at a time in program order: each step
// waits for the previous effect to settle, even when [Zip] or [Sequence]
// combined programs that do not depend on each other. The first rejected
// effect rejects the returned Future and no further operation is issued.
// A panic in a continuation or in an effect run by [Async] rejects the
// Future with a [*PanicError]. There is no cancellation: discarding the
// Future does not stop effects already issued. ctx is passed to every
// effect untouched.
func RunAsync[I, D, A any](ctx context.Context, x AsyncExecutor[I, D], p Program[I, D, A]) *Future[A] {
	if p.op == nil {
		return Resolved(p.value)
	}
	return Go(func() (A, error) {
		for p.op != nil {
			next, err := p.op.await(ctx, x)
			if err != nil {
				var zero A
				return zero, err
			}
			p = next
		}
		return p.value, nil
	})
}
