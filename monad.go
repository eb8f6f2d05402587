// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package icrud

import "slices"

// Monad operations for programs.
//
// Minimal definition: Finished (unit) and AndThen (bind).
// Map, Then, Zip and Sequence are derived; Map is kept separate from
// AndThen so that a pure transformation does not build a Finished per step.
// None of them performs an operation: they only rearrange the tree.

// Map applies a pure function to the eventual result of p.
func Map[I, D, A, B any](p Program[I, D, A], f func(A) B) Program[I, D, B] {
	if p.op == nil {
		return Finished[I, D](f(p.value))
	}
	return Suspend(MapOp(p.op, func(next Program[I, D, A]) Program[I, D, B] {
		return Map(next, f)
	}))
}

// AndThen sequences two programs (monadic bind).
// The program returned by f may depend on p's result, which is not known
// until a driver has resolved every operation of p.
func AndThen[I, D, A, B any](p Program[I, D, A], f func(A) Program[I, D, B]) Program[I, D, B] {
	if p.op == nil {
		return f(p.value)
	}
	return Suspend(MapOp(p.op, func(next Program[I, D, A]) Program[I, D, B] {
		return AndThen(next, f)
	}))
}

// Then sequences two programs, discarding the first result.
func Then[I, D, A, B any](p Program[I, D, A], q Program[I, D, B]) Program[I, D, B] {
	return AndThen(p, func(A) Program[I, D, B] { return q })
}

// Pair is a two-element tuple.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Zip pairs the results of p and q.
// Every operation of p comes before every operation of q in the resulting
// program; nothing runs until a driver walks it.
func Zip[I, D, A, B any](p Program[I, D, A], q Program[I, D, B]) Program[I, D, Pair[A, B]] {
	return AndThen(p, func(a A) Program[I, D, Pair[A, B]] {
		return Map(q, func(b B) Pair[A, B] { return Pair[A, B]{Fst: a, Snd: b} })
	})
}

// Sequence turns a list of programs into one program producing the list
// of their results, in input order.
//
// Each element is paired with the sequence of the elements before it, so
// operations run from the last program to the first: Sequence([p0, p1, p2])
// issues p2's operations, then p1's, then p0's. Results are accumulated in
// an immutable list, so the returned program can be run repeatedly without
// the result slices sharing storage. ps is copied; later changes to it do
// not affect the returned program.
func Sequence[I, D, A any](ps []Program[I, D, A]) Program[I, D, []A] {
	return sequenceFrom(slices.Clone(ps), len(ps), nil)
}

// Traverse applies f to every element of xs and sequences the programs.
func Traverse[I, D, X, A any](xs []X, f func(X) Program[I, D, A]) Program[I, D, []A] {
	ps := make([]Program[I, D, A], len(xs))
	for i, x := range xs {
		ps[i] = f(x)
	}
	return Sequence(ps)
}

// results is a persistent list of sequence results. Programs run last to
// first and each result is pushed in front, so the list is in input order.
type results[A any] struct {
	head A
	tail *results[A]
	n    int
}

func (r *results[A]) push(a A) *results[A] {
	n := 1
	if r != nil {
		n = r.n + 1
	}
	return &results[A]{head: a, tail: r, n: n}
}

func (r *results[A]) slice() []A {
	if r == nil {
		return []A{}
	}
	out := make([]A, 0, r.n)
	for ; r != nil; r = r.tail {
		out = append(out, r.head)
	}
	return out
}

// sequenceFrom runs ps[i-1] and continues with the programs before it.
func sequenceFrom[I, D, A any](ps []Program[I, D, A], i int, acc *results[A]) Program[I, D, []A] {
	if i == 0 {
		return Finished[I, D](acc.slice())
	}
	return AndThen(ps[i-1], func(a A) Program[I, D, []A] {
		return sequenceFrom(ps, i-1, acc.push(a))
	})
}
