// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package icrud describes CRUD workflows as inert data and interprets them
// later with a pluggable executor.
//
// A [Program] is either finished, holding its result, or pending on one
// operation whose continuation yields the next Program. Building a Program
// performs no I/O; a driver walks it and asks a caller-supplied [Executor]
// for the outcome of each operation.
//
// # Design Philosophy
//
// icrud provides:
//   - A closed set of four operations, each carrying its own continuation
//   - Combinators that rearrange programs without running them
//   - Three drivers sharing one executor contract
//
// Identifier and document types are opaque type parameters (I, D). icrud
// does not persist, validate, retry or wrap anything in a transaction;
// those belong to the executor.
//
// # Operations
//
// [Op] is sealed. Its four variants are:
//
//   - [GetByIDOp]: fetch one document, continue with func(D) R
//   - [GetAllOp]: fetch all documents, continue with func([]D) R
//   - [UpdateOp]: overwrite a document, continue with func() R
//   - [CreateOp]: insert a document, continue with func(I) R
//
// Constructors [NewGetByIDOp], [NewGetAllOp], [NewUpdateOp], [NewCreateOp].
// [MapOp] composes a function after an operation's continuation.
// [Op.Request] gives the continuation-free [Request] view.
//
// # Programs
//
//   - [Finished]: a program that performs nothing
//   - [Suspend]: a program pending on an operation
//   - [GetByID], [GetAll], [Update], [Create]: one-operation programs
//   - [GetByIDThen], [GetAllThen], [UpdateThen], [CreateThen]: with an explicit continuation
//
// # Combinators
//
// Minimal monad operations:
//
//   - [Finished]: unit
//   - [AndThen]: bind; the next program may depend on the previous result
//
// Derived operations:
//
//   - [Map]: transform the result
//   - [Then]: sequence, discarding the first result
//   - [Zip]: pair two results, left program first
//   - [Sequence], [Traverse]: list of programs to program of a list; results in
//     input order, operations from the last program to the first
//
// # Drivers
//
// All drivers take the executor per call and return executor errors
// unchanged; icrud defines no error of its own for a failed operation.
//
//   - [Eval]: eager structural recursion; stack grows with the chain
//   - [Run]: trampolined loop; constant stack for any chain length
//   - [RunAsync]: the trampoline against an [AsyncExecutor], returning a [Future]
//
// [RunAsync] never overlaps operations: each one waits for the previous
// effect to settle, including across [Zip] and [Sequence].
//
// # Executors
//
//   - [Executor]: GetByID, GetAll, Update, Create returning outcomes
//   - [Funcs]: an Executor from four functions
//   - [ExecutorFunc]: an Executor from one function switching on [Request.Kind]
//   - [AsyncExecutor], [Async]: the future-returning form and an adapter
//   - [Resolve], [ResolveAsync]: one operation against an executor
//
// # Stepping Boundary
//
// [Step] pauses at each pending operation instead of calling an executor,
// for event loops that resolve operations themselves.
// Affine semantics: each [Suspension] may be resumed at most once.
//
//   - [Suspension.Request]: the pending operation
//   - [Suspension.Resume]: feed the outcome (panics on reuse)
//   - [Suspension.TryResume]: non-panicking variant
//   - [Suspension.Discard]: drop without resuming
//
// # Example
//
//	type Doc struct{ Name string; Views int }
//
//	bump := icrud.AndThen(icrud.GetByID[string, Doc]("home"), func(d Doc) icrud.Program[string, Doc, icrud.Unit] {
//		d.Views++
//		return icrud.Update("home", d)
//	})
//
//	_, err := icrud.Run(ctx, store, bump)
package icrud
