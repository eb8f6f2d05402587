// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package icrud

import "sync/atomic"

// Stepping boundary for external runtimes.
// Step yields control at each pending operation instead of calling an
// executor, for event loops that resolve operations themselves.

// Suspension is a program paused on one operation.
//
// Suspension enforces affine semantics: Resume may be called at most once.
// Calling Resume twice panics. Use Discard to explicitly abandon a suspension.
type Suspension[I, D, A any] struct {
	used atomic.Uintptr
	op   Op[I, D, Program[I, D, A]]
}

// Request returns the pending operation without its continuation.
func (s *Suspension[I, D, A]) Request() Request[I, D] { return s.op.Request() }

// Kind returns the kind of the pending operation.
func (s *Suspension[I, D, A]) Kind() Kind { return s.op.Kind() }

// Resume feeds the outcome of the pending operation to its continuation
// and steps the resulting program.
// Returns (value, nil, nil) on completion or (zero, next, nil) at the next
// operation. An outcome of the wrong type returns an error wrapping
// [ErrOutcomeType] and consumes the suspension.
// Panics if the suspension has already been resumed or discarded.
func (s *Suspension[I, D, A]) Resume(v Resumed) (A, *Suspension[I, D, A], error) {
	if s.used.Add(1) != 1 {
		panic("icrud: suspension resumed twice")
	}
	return s.resume(v)
}

// TryResume is Resume without the panic.
// ok is false, with everything else zero, if s was already used.
func (s *Suspension[I, D, A]) TryResume(v Resumed) (a A, next *Suspension[I, D, A], ok bool, err error) {
	if s.used.Add(1) != 1 {
		return a, nil, false, nil
	}
	a, next, err = s.resume(v)
	return a, next, true, err
}

// Discard marks the suspension as consumed without resuming.
func (s *Suspension[I, D, A]) Discard() {
	s.used.Store(1)
}

func (s *Suspension[I, D, A]) resume(v Resumed) (A, *Suspension[I, D, A], error) {
	next, err := s.op.feed(v)
	if err != nil {
		var zero A
		return zero, nil, err
	}
	a, susp := Step(next)
	return a, susp, nil
}

// Step returns p's value if p is finished, or a suspension on its pending
// operation.
//
// Example:
//
//	v, susp := icrud.Step(p)
//	for susp != nil {
//	    out := resolve(susp.Request())
//	    v, susp, err = susp.Resume(out)
//	}
func Step[I, D, A any](p Program[I, D, A]) (A, *Suspension[I, D, A]) {
	if p.op == nil {
		return p.value, nil
	}
	var zero A
	return zero, &Suspension[I, D, A]{op: p.op}
}
