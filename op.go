// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package icrud

import (
	"context"
	"fmt"
	"strconv"
)

// Kind identifies which of the four operation variants is active.
type Kind uint8

const (
	KindGetByID Kind = iota + 1
	KindGetAll
	KindUpdate
	KindCreate
)

func (k Kind) String() string {
	switch k {
	case KindGetByID:
		return "GetByID"
	case KindGetAll:
		return "GetAll"
	case KindUpdate:
		return "Update"
	case KindCreate:
		return "Create"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Unit is the outcome of an Update.
type Unit = struct{}

// Resumed is the type-erased outcome of a single operation: a document for
// GetByID, a document slice for GetAll, Unit for Update, an identifier for
// Create.
type Resumed any

// Request is the continuation-free view of an operation.
// ID is meaningful for GetByID and Update, Doc for Update and Create.
type Request[I, D any] struct {
	Kind Kind
	ID   I
	Doc  D
}

// Op is a single unit of work paired with a continuation producing R.
//
// Op is sealed: the only implementations are [GetByIDOp], [GetAllOp],
// [UpdateOp] and [CreateOp]. Every per-variant behaviour is an unexported
// method, so a new variant does not compile until all of them exist.
type Op[I, D, R any] interface {
	Kind() Kind
	Request() Request[I, D]

	// resolve performs the effect on x and feeds the outcome to the continuation.
	resolve(ctx context.Context, x Executor[I, D]) (R, error)
	// await is resolve against an asynchronous executor.
	await(ctx context.Context, x AsyncExecutor[I, D]) (R, error)
	// feed applies the continuation to an erased outcome.
	feed(v Resumed) (R, error)
}

// GetByIDOp fetches one document by identifier.
type GetByIDOp[I, D, R any] struct {
	ID   I
	Next func(D) R
}

// GetAllOp fetches every document.
type GetAllOp[I, D, R any] struct {
	Next func([]D) R
}

// UpdateOp overwrites the document stored at ID.
type UpdateOp[I, D, R any] struct {
	ID   I
	Doc  D
	Next func() R
}

// CreateOp inserts a document and yields its assigned identifier.
type CreateOp[I, D, R any] struct {
	Doc  D
	Next func(I) R
}

// NewGetByIDOp returns a GetByID operation continuing with next.
func NewGetByIDOp[I, D, R any](id I, next func(D) R) Op[I, D, R] {
	return GetByIDOp[I, D, R]{ID: id, Next: next}
}

// NewGetAllOp returns a GetAll operation continuing with next.
func NewGetAllOp[I, D, R any](next func([]D) R) Op[I, D, R] {
	return GetAllOp[I, D, R]{Next: next}
}

// NewUpdateOp returns an Update operation continuing with next.
func NewUpdateOp[I, D, R any](id I, doc D, next func() R) Op[I, D, R] {
	return UpdateOp[I, D, R]{ID: id, Doc: doc, Next: next}
}

// NewCreateOp returns a Create operation continuing with next.
func NewCreateOp[I, D, R any](doc D, next func(I) R) Op[I, D, R] {
	return CreateOp[I, D, R]{Doc: doc, Next: next}
}

func (GetByIDOp[I, D, R]) Kind() Kind { return KindGetByID }
func (GetAllOp[I, D, R]) Kind() Kind  { return KindGetAll }
func (UpdateOp[I, D, R]) Kind() Kind  { return KindUpdate }
func (CreateOp[I, D, R]) Kind() Kind  { return KindCreate }

func (o GetByIDOp[I, D, R]) Request() Request[I, D] {
	return Request[I, D]{Kind: KindGetByID, ID: o.ID}
}

func (o GetAllOp[I, D, R]) Request() Request[I, D] {
	return Request[I, D]{Kind: KindGetAll}
}

func (o UpdateOp[I, D, R]) Request() Request[I, D] {
	return Request[I, D]{Kind: KindUpdate, ID: o.ID, Doc: o.Doc}
}

func (o CreateOp[I, D, R]) Request() Request[I, D] {
	return Request[I, D]{Kind: KindCreate, Doc: o.Doc}
}

func (o GetByIDOp[I, D, R]) resolve(ctx context.Context, x Executor[I, D]) (R, error) {
	doc, err := x.GetByID(ctx, o.ID)
	if err != nil {
		var zero R
		return zero, err
	}
	return o.Next(doc), nil
}

func (o GetAllOp[I, D, R]) resolve(ctx context.Context, x Executor[I, D]) (R, error) {
	docs, err := x.GetAll(ctx)
	if err != nil {
		var zero R
		return zero, err
	}
	return o.Next(docs), nil
}

func (o UpdateOp[I, D, R]) resolve(ctx context.Context, x Executor[I, D]) (R, error) {
	if err := x.Update(ctx, o.ID, o.Doc); err != nil {
		var zero R
		return zero, err
	}
	return o.Next(), nil
}

func (o CreateOp[I, D, R]) resolve(ctx context.Context, x Executor[I, D]) (R, error) {
	id, err := x.Create(ctx, o.Doc)
	if err != nil {
		var zero R
		return zero, err
	}
	return o.Next(id), nil
}

func (o GetByIDOp[I, D, R]) await(ctx context.Context, x AsyncExecutor[I, D]) (R, error) {
	doc, err := x.GetByID(ctx, o.ID).Wait()
	if err != nil {
		var zero R
		return zero, err
	}
	return o.Next(doc), nil
}

func (o GetAllOp[I, D, R]) await(ctx context.Context, x AsyncExecutor[I, D]) (R, error) {
	docs, err := x.GetAll(ctx).Wait()
	if err != nil {
		var zero R
		return zero, err
	}
	return o.Next(docs), nil
}

func (o UpdateOp[I, D, R]) await(ctx context.Context, x AsyncExecutor[I, D]) (R, error) {
	if _, err := x.Update(ctx, o.ID, o.Doc).Wait(); err != nil {
		var zero R
		return zero, err
	}
	return o.Next(), nil
}

func (o CreateOp[I, D, R]) await(ctx context.Context, x AsyncExecutor[I, D]) (R, error) {
	id, err := x.Create(ctx, o.Doc).Wait()
	if err != nil {
		var zero R
		return zero, err
	}
	return o.Next(id), nil
}

func (o GetByIDOp[I, D, R]) feed(v Resumed) (R, error) {
	doc, err := assertOutcome[D](KindGetByID, v)
	if err != nil {
		var zero R
		return zero, err
	}
	return o.Next(doc), nil
}

func (o GetAllOp[I, D, R]) feed(v Resumed) (R, error) {
	docs, err := assertOutcome[[]D](KindGetAll, v)
	if err != nil {
		var zero R
		return zero, err
	}
	return o.Next(docs), nil
}

// feed accepts any value for Update; the outcome carries no information.
func (o UpdateOp[I, D, R]) feed(Resumed) (R, error) {
	return o.Next(), nil
}

func (o CreateOp[I, D, R]) feed(v Resumed) (R, error) {
	id, err := assertOutcome[I](KindCreate, v)
	if err != nil {
		var zero R
		return zero, err
	}
	return o.Next(id), nil
}

// unknownOp panics for an operation outside the sealed variant set.
//
//go:noinline
func unknownOp(op any) {
	panic(fmt.Sprintf("icrud: unknown operation %T", op))
}

// MapOp returns an operation of the same variant carrying the same data,
// whose continuation is f composed after the original one.
func MapOp[I, D, A, B any](op Op[I, D, A], f func(A) B) Op[I, D, B] {
	switch o := op.(type) {
	case GetByIDOp[I, D, A]:
		return GetByIDOp[I, D, B]{ID: o.ID, Next: func(doc D) B { return f(o.Next(doc)) }}
	case GetAllOp[I, D, A]:
		return GetAllOp[I, D, B]{Next: func(docs []D) B { return f(o.Next(docs)) }}
	case UpdateOp[I, D, A]:
		return UpdateOp[I, D, B]{ID: o.ID, Doc: o.Doc, Next: func() B { return f(o.Next()) }}
	case CreateOp[I, D, A]:
		return CreateOp[I, D, B]{Doc: o.Doc, Next: func(id I) B { return f(o.Next(id)) }}
	default:
		unknownOp(op)
		return nil
	}
}
