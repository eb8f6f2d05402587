// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package icrud

import "context"

// outcome carries a recursive evaluation result through a continuation,
// whose signature has no room for an error.
type outcome[A any] struct {
	value A
	err   error
}

// Eval drives p to completion by structural recursion.
//
// At a pending operation, Eval first rewrites the continuation so that it
// evaluates whatever Program it yields, then resolves the rewritten
// operation against x, so resolving one operation yields the final value
// of the whole remaining program. The executor contract is the same as for
// [Run]; only the shape of the walk differs. Recursion depth equals the
// number of operations left, so prefer [Run] for long chains.
func Eval[I, D, A any](ctx context.Context, x Executor[I, D], p Program[I, D, A]) (A, error) {
	if p.op == nil {
		return p.value, nil
	}
	op := MapOp(p.op, func(next Program[I, D, A]) outcome[A] {
		v, err := Eval(ctx, x, next)
		return outcome[A]{value: v, err: err}
	})
	out, err := op.resolve(ctx, x)
	if err != nil {
		var zero A
		return zero, err
	}
	return out.value, out.err
}
