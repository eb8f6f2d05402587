// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package query is a fluent facade over [icrud] programs.
//
// A [Query] wraps one program. Verbs chained on a Query run after it and
// discard its result:
//
//	q := query.GetByID[string, Doc]("a").
//	    GetByID("b").
//	    Update("b", Doc{Name: "merged"})
//	_, err := q.Run(ctx, store)
//
// Go methods cannot declare their own type parameters, so combinators that
// change the result type are package functions: [Map], [AndThen], [Zip],
// [Then].
package query

import (
	"context"

	"code.hybscloud.com/icrud"
)

// Query is a chainable wrapper around an [icrud.Program].
type Query[I, D, A any] struct {
	p icrud.Program[I, D, A]
}

// From wraps an existing program.
func From[I, D, A any](p icrud.Program[I, D, A]) Query[I, D, A] {
	return Query[I, D, A]{p: p}
}

// Program returns the wrapped program.
func (q Query[I, D, A]) Program() icrud.Program[I, D, A] { return q.p }

// GetByID starts a query fetching the document at id.
func GetByID[I, D any](id I) Query[I, D, D] {
	return From(icrud.GetByID[I, D](id))
}

// GetAll starts a query fetching every document.
func GetAll[I, D any]() Query[I, D, []D] {
	return From(icrud.GetAll[I, D]())
}

// Update starts a query overwriting the document at id.
func Update[I, D any](id I, doc D) Query[I, D, icrud.Unit] {
	return From(icrud.Update(id, doc))
}

// Create starts a query inserting doc.
func Create[I, D any](doc D) Query[I, D, I] {
	return From(icrud.Create[I](doc))
}

// Finished starts a query that performs nothing and yields a.
func Finished[I, D, A any](a A) Query[I, D, A] {
	return From(icrud.Finished[I, D](a))
}

// GetByID fetches the document at id after q.
func (q Query[I, D, A]) GetByID(id I) Query[I, D, D] {
	return From(icrud.Then(q.p, icrud.GetByID[I, D](id)))
}

// GetAll fetches every document after q.
func (q Query[I, D, A]) GetAll() Query[I, D, []D] {
	return From(icrud.Then(q.p, icrud.GetAll[I, D]()))
}

// Update overwrites the document at id after q.
func (q Query[I, D, A]) Update(id I, doc D) Query[I, D, icrud.Unit] {
	return From(icrud.Then(q.p, icrud.Update(id, doc)))
}

// Create inserts doc after q.
func (q Query[I, D, A]) Create(doc D) Query[I, D, I] {
	return From(icrud.Then(q.p, icrud.Create[I](doc)))
}

// Map applies f to the result of q.
func Map[I, D, A, B any](q Query[I, D, A], f func(A) B) Query[I, D, B] {
	return From(icrud.Map(q.p, f))
}

// AndThen continues q with the query f builds from its result.
func AndThen[I, D, A, B any](q Query[I, D, A], f func(A) Query[I, D, B]) Query[I, D, B] {
	return From(icrud.AndThen(q.p, func(a A) icrud.Program[I, D, B] { return f(a).p }))
}

// AndThenProgram is AndThen for a continuation returning a raw program.
func AndThenProgram[I, D, A, B any](q Query[I, D, A], f func(A) icrud.Program[I, D, B]) Query[I, D, B] {
	return From(icrud.AndThen(q.p, f))
}

// Zip pairs the results of q and r; q's operations come first.
func Zip[I, D, A, B any](q Query[I, D, A], r Query[I, D, B]) Query[I, D, icrud.Pair[A, B]] {
	return From(icrud.Zip(q.p, r.p))
}

// ZipProgram is Zip with a raw program on the right.
func ZipProgram[I, D, A, B any](q Query[I, D, A], p icrud.Program[I, D, B]) Query[I, D, icrud.Pair[A, B]] {
	return From(icrud.Zip(q.p, p))
}

// Then yields b once q has run, discarding q's result.
func Then[I, D, A, B any](q Query[I, D, A], b B) Query[I, D, B] {
	return From(icrud.Then(q.p, icrud.Finished[I, D](b)))
}

// Sequence collects the results of qs in order; see [icrud.Sequence] for
// the order operations run in.
func Sequence[I, D, A any](qs ...Query[I, D, A]) Query[I, D, []A] {
	ps := make([]icrud.Program[I, D, A], len(qs))
	for i, q := range qs {
		ps[i] = q.p
	}
	return From(icrud.Sequence(ps))
}

// Eval runs q with the recursive driver, [icrud.Eval].
func (q Query[I, D, A]) Eval(ctx context.Context, x icrud.Executor[I, D]) (A, error) {
	return icrud.Eval(ctx, x, q.p)
}

// Run runs q with the trampolined driver, [icrud.Run].
func (q Query[I, D, A]) Run(ctx context.Context, x icrud.Executor[I, D]) (A, error) {
	return icrud.Run(ctx, x, q.p)
}

// RunAsync runs q with the asynchronous driver, [icrud.RunAsync].
func (q Query[I, D, A]) RunAsync(ctx context.Context, x icrud.AsyncExecutor[I, D]) *icrud.Future[A] {
	return icrud.RunAsync(ctx, x, q.p)
}

// Step starts stepping q, see [icrud.Step].
func (q Query[I, D, A]) Step() (A, *icrud.Suspension[I, D, A]) {
	return icrud.Step(q.p)
}
