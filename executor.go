// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package icrud

import (
	"context"
	"errors"
	"fmt"
)

// ErrOutcomeType is returned when an erased outcome does not have the type
// the pending operation expects.
var ErrOutcomeType = errors.New("icrud: outcome has wrong type")

// Executor performs the real side effect of each operation kind.
//
// An Executor is the caller-supplied interpreter for [Eval] and [Run].
// The operation, not the executor, applies the continuation: an Executor
// returns only the outcome of the effect, which keeps one implementation
// valid for programs of every result type. Executors may be impure; the
// drivers return their errors unchanged.
type Executor[I, D any] interface {
	GetByID(ctx context.Context, id I) (D, error)
	GetAll(ctx context.Context) ([]D, error)
	Update(ctx context.Context, id I, doc D) error
	Create(ctx context.Context, doc D) (I, error)
}

// Resolve performs op against x and returns the continuation's result.
// With R = Program[I, D, A] this is one step of the trampolined driver.
func Resolve[I, D, R any](ctx context.Context, x Executor[I, D], op Op[I, D, R]) (R, error) {
	return op.resolve(ctx, x)
}

// Funcs is an Executor built from one function per operation kind.
// Calling an effect whose function is nil panics.
type Funcs[I, D any] struct {
	GetByIDFunc func(ctx context.Context, id I) (D, error)
	GetAllFunc  func(ctx context.Context) ([]D, error)
	UpdateFunc  func(ctx context.Context, id I, doc D) error
	CreateFunc  func(ctx context.Context, doc D) (I, error)
}

var _ Executor[int, string] = Funcs[int, string]{}

func (f Funcs[I, D]) GetByID(ctx context.Context, id I) (D, error) { return f.GetByIDFunc(ctx, id) }
func (f Funcs[I, D]) GetAll(ctx context.Context) ([]D, error)      { return f.GetAllFunc(ctx) }
func (f Funcs[I, D]) Update(ctx context.Context, id I, doc D) error {
	return f.UpdateFunc(ctx, id, doc)
}
func (f Funcs[I, D]) Create(ctx context.Context, doc D) (I, error) { return f.CreateFunc(ctx, doc) }

// ExecutorFunc is an Executor dispatching every operation through a single
// function, in the manner of a handler switching on the request kind.
//
// The returned outcome must be a D for GetByID, a []D for GetAll and an I
// for Create; the outcome of an Update is ignored. Any other type yields an
// error wrapping [ErrOutcomeType].
//
// Example:
//
//	x := icrud.ExecutorFunc[string, string](func(ctx context.Context, req icrud.Request[string, string]) (icrud.Resumed, error) {
//	    switch req.Kind {
//	    case icrud.KindGetByID:
//	        return "doc:" + req.ID, nil
//	    case icrud.KindCreate:
//	        return "new-id", nil
//	    default:
//	        return nil, nil
//	    }
//	})
type ExecutorFunc[I, D any] func(ctx context.Context, req Request[I, D]) (Resumed, error)

var _ Executor[int, string] = ExecutorFunc[int, string](nil)

func (f ExecutorFunc[I, D]) GetByID(ctx context.Context, id I) (D, error) {
	v, err := f(ctx, Request[I, D]{Kind: KindGetByID, ID: id})
	if err != nil {
		var zero D
		return zero, err
	}
	return assertOutcome[D](KindGetByID, v)
}

func (f ExecutorFunc[I, D]) GetAll(ctx context.Context) ([]D, error) {
	v, err := f(ctx, Request[I, D]{Kind: KindGetAll})
	if err != nil {
		return nil, err
	}
	return assertOutcome[[]D](KindGetAll, v)
}

func (f ExecutorFunc[I, D]) Update(ctx context.Context, id I, doc D) error {
	_, err := f(ctx, Request[I, D]{Kind: KindUpdate, ID: id, Doc: doc})
	return err
}

func (f ExecutorFunc[I, D]) Create(ctx context.Context, doc D) (I, error) {
	v, err := f(ctx, Request[I, D]{Kind: KindCreate, Doc: doc})
	if err != nil {
		var zero I
		return zero, err
	}
	return assertOutcome[I](KindCreate, v)
}

// assertOutcome recovers the concrete outcome type of an erased value.
// Nil completion convention: a nil outcome stands for the zero T, so a nil
// pointer or interface document cannot be told apart from "absent".
func assertOutcome[T any](k Kind, v Resumed) (T, error) {
	if v == nil {
		var zero T
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s expects %T, got %T", ErrOutcomeType, k, zero, v)
	}
	return t, nil
}
