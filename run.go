// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package icrud

import "context"

// Run drives p to completion against x and returns its result.
//
// Run is a trampoline: each pending operation is resolved into the next
// Program and the loop continues from there, so stack usage does not grow
// with the length of the operation chain. The first executor error stops
// the run and is returned unchanged.
func Run[I, D, A any](ctx context.Context, x Executor[I, D], p Program[I, D, A]) (A, error) {
	for p.op != nil {
		next, err := p.op.resolve(ctx, x)
		if err != nil {
			var zero A
			return zero, err
		}
		p = next
	}
	return p.value, nil
}
