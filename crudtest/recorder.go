// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crudtest

import (
	"context"
	"sync"

	"code.hybscloud.com/icrud"
)

// Recorder forwards every effect to an inner executor and remembers the
// requests in call order. It is safe for concurrent use.
type Recorder[I, D any] struct {
	next  icrud.Executor[I, D]
	mu    sync.Mutex
	calls []icrud.Request[I, D]
}

// Record wraps x.
func Record[I, D any](x icrud.Executor[I, D]) *Recorder[I, D] {
	return &Recorder[I, D]{next: x}
}

// Calls returns the requests seen so far.
func (r *Recorder[I, D]) Calls() []icrud.Request[I, D] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]icrud.Request[I, D], len(r.calls))
	copy(out, r.calls)
	return out
}

// Kinds returns the kinds of the requests seen so far.
func (r *Recorder[I, D]) Kinds() []icrud.Kind {
	calls := r.Calls()
	kinds := make([]icrud.Kind, len(calls))
	for i, c := range calls {
		kinds[i] = c.Kind
	}
	return kinds
}

// Len returns the number of requests seen so far.
func (r *Recorder[I, D]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *Recorder[I, D]) record(req icrud.Request[I, D]) {
	r.mu.Lock()
	r.calls = append(r.calls, req)
	r.mu.Unlock()
}

func (r *Recorder[I, D]) GetByID(ctx context.Context, id I) (D, error) {
	r.record(icrud.Request[I, D]{Kind: icrud.KindGetByID, ID: id})
	return r.next.GetByID(ctx, id)
}

func (r *Recorder[I, D]) GetAll(ctx context.Context) ([]D, error) {
	r.record(icrud.Request[I, D]{Kind: icrud.KindGetAll})
	return r.next.GetAll(ctx)
}

func (r *Recorder[I, D]) Update(ctx context.Context, id I, doc D) error {
	r.record(icrud.Request[I, D]{Kind: icrud.KindUpdate, ID: id, Doc: doc})
	return r.next.Update(ctx, id, doc)
}

func (r *Recorder[I, D]) Create(ctx context.Context, doc D) (I, error) {
	r.record(icrud.Request[I, D]{Kind: icrud.KindCreate, Doc: doc})
	return r.next.Create(ctx, doc)
}
