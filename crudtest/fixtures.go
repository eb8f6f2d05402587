// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crudtest

import (
	"context"

	"code.hybscloud.com/icrud"
)

// Echo returns an executor whose documents are identifiers: GetByID yields
// the requested id, GetAll yields nothing, Update succeeds and Create
// yields the document it was given.
func Echo[I any]() icrud.Executor[I, I] {
	return icrud.Funcs[I, I]{
		GetByIDFunc: func(_ context.Context, id I) (I, error) { return id, nil },
		GetAllFunc:  func(context.Context) ([]I, error) { return []I{}, nil },
		UpdateFunc:  func(context.Context, I, I) error { return nil },
		CreateFunc:  func(_ context.Context, doc I) (I, error) { return doc, nil },
	}
}

// FailOn wraps x so that every operation of the given kind returns err
// without reaching x.
func FailOn[I, D any](x icrud.Executor[I, D], kind icrud.Kind, err error) icrud.Executor[I, D] {
	return icrud.Funcs[I, D]{
		GetByIDFunc: func(ctx context.Context, id I) (D, error) {
			if kind == icrud.KindGetByID {
				var zero D
				return zero, err
			}
			return x.GetByID(ctx, id)
		},
		GetAllFunc: func(ctx context.Context) ([]D, error) {
			if kind == icrud.KindGetAll {
				return nil, err
			}
			return x.GetAll(ctx)
		},
		UpdateFunc: func(ctx context.Context, id I, doc D) error {
			if kind == icrud.KindUpdate {
				return err
			}
			return x.Update(ctx, id, doc)
		},
		CreateFunc: func(ctx context.Context, doc D) (I, error) {
			if kind == icrud.KindCreate {
				var zero I
				return zero, err
			}
			return x.Create(ctx, doc)
		},
	}
}
