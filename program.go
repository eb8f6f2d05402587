// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package icrud

// Program is an inert description of a CRUD workflow producing A.
//
// A Program is either finished, holding its value, or pending on one
// operation whose continuation yields the next Program. Programs are
// immutable; every combinator returns a new one. The zero value is a
// finished Program holding the zero A.
type Program[I, D, A any] struct {
	value A
	op    Op[I, D, Program[I, D, A]]
}

// Finished lifts a value into a Program that performs no operations.
func Finished[I, D, A any](a A) Program[I, D, A] {
	return Program[I, D, A]{value: a}
}

// Suspend wraps an operation as a pending Program.
func Suspend[I, D, A any](op Op[I, D, Program[I, D, A]]) Program[I, D, A] {
	return Program[I, D, A]{op: op}
}

// Done reports whether p is finished.
func (p Program[I, D, A]) Done() bool { return p.op == nil }

// Value returns the value of a finished Program.
// The second result is false when p is still pending.
func (p Program[I, D, A]) Value() (A, bool) {
	if p.op != nil {
		var zero A
		return zero, false
	}
	return p.value, true
}

// Op returns the pending operation, or nil when p is finished.
func (p Program[I, D, A]) Op() Op[I, D, Program[I, D, A]] { return p.op }

// GetByIDThen fetches the document at id and continues with k.
func GetByIDThen[I, D, A any](id I, k func(D) Program[I, D, A]) Program[I, D, A] {
	return Suspend(NewGetByIDOp(id, k))
}

// GetByID fetches the document at id.
func GetByID[I, D any](id I) Program[I, D, D] {
	return GetByIDThen(id, Finished[I, D, D])
}

// GetAllThen fetches every document and continues with k.
func GetAllThen[I, D, A any](k func([]D) Program[I, D, A]) Program[I, D, A] {
	return Suspend(NewGetAllOp[I](k))
}

// GetAll fetches every document.
func GetAll[I, D any]() Program[I, D, []D] {
	return GetAllThen(Finished[I, D, []D])
}

// UpdateThen overwrites the document at id and continues with k.
func UpdateThen[I, D, A any](id I, doc D, k func() Program[I, D, A]) Program[I, D, A] {
	return Suspend(NewUpdateOp(id, doc, k))
}

// Update overwrites the document at id.
func Update[I, D any](id I, doc D) Program[I, D, Unit] {
	return UpdateThen(id, doc, finishedUnit[I, D])
}

// CreateThen inserts doc and continues with its new identifier.
func CreateThen[I, D, A any](doc D, k func(I) Program[I, D, A]) Program[I, D, A] {
	return Suspend(NewCreateOp(doc, k))
}

// Create inserts doc and yields its new identifier.
func Create[I, D any](doc D) Program[I, D, I] {
	return CreateThen(doc, Finished[I, D, I])
}

// finishedUnit is a named continuation so Update does not allocate a closure.
func finishedUnit[I, D any]() Program[I, D, Unit] {
	return Program[I, D, Unit]{}
}
