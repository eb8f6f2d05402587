// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package icrud_test

import (
	"context"
	"fmt"

	"code.hybscloud.com/icrud"
)

type driverFunc[I, D, A any] func(context.Context, icrud.Executor[I, D], icrud.Program[I, D, A]) (A, error)

type namedDriver[I, D, A any] struct {
	name string
	run  driverFunc[I, D, A]
}

// drivers lists every way of running a program against a synchronous
// executor, each adapted to its own contract.
func drivers[I, D, A any]() []namedDriver[I, D, A] {
	return []namedDriver[I, D, A]{
		{name: "Eval", run: icrud.Eval[I, D, A]},
		{name: "Run", run: icrud.Run[I, D, A]},
		{name: "RunAsync", run: runAsync[I, D, A]},
		{name: "Step", run: runStepped[I, D, A]},
	}
}

func runAsync[I, D, A any](ctx context.Context, x icrud.Executor[I, D], p icrud.Program[I, D, A]) (A, error) {
	return icrud.RunAsync(ctx, icrud.Async(x), p).Wait()
}

// runStepped drives p through the stepping boundary, resolving each
// request by hand.
func runStepped[I, D, A any](ctx context.Context, x icrud.Executor[I, D], p icrud.Program[I, D, A]) (A, error) {
	v, susp := icrud.Step(p)
	for susp != nil {
		out, err := perform(ctx, x, susp.Request())
		if err != nil {
			susp.Discard()
			var zero A
			return zero, err
		}
		v, susp, err = susp.Resume(out)
		if err != nil {
			var zero A
			return zero, err
		}
	}
	return v, nil
}

func perform[I, D any](ctx context.Context, x icrud.Executor[I, D], req icrud.Request[I, D]) (icrud.Resumed, error) {
	switch req.Kind {
	case icrud.KindGetByID:
		return x.GetByID(ctx, req.ID)
	case icrud.KindGetAll:
		return x.GetAll(ctx)
	case icrud.KindUpdate:
		return icrud.Unit{}, x.Update(ctx, req.ID, req.Doc)
	case icrud.KindCreate:
		return x.Create(ctx, req.Doc)
	}
	panic(fmt.Sprintf("unexpected kind %v", req.Kind))
}

// sumFrom fetches n, n-1, ..., 1 and adds up the documents.
// The chain is built lazily, one operation per step.
func sumFrom(n, acc int) icrud.Program[int, int, int] {
	if n == 0 {
		return icrud.Finished[int, int](acc)
	}
	return icrud.GetByIDThen(n, func(doc int) icrud.Program[int, int, int] {
		return sumFrom(n-1, acc+doc)
	})
}

type doc struct {
	Title string
	Views int
}
