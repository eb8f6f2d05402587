// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package icrud_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/icrud"
	"code.hybscloud.com/icrud/crudtest"
)

func TestFinished(t *testing.T) {
	p := icrud.Finished[string, doc](42)
	assert.True(t, p.Done())
	assert.Nil(t, p.Op())
	v, ok := p.Value()
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestZeroProgramIsFinished(t *testing.T) {
	var p icrud.Program[string, doc, int]
	assert.True(t, p.Done())
	v, ok := p.Value()
	assert.True(t, ok)
	assert.Zero(t, v)
}

func TestPendingProgram(t *testing.T) {
	p := icrud.GetByID[string, doc]("k")
	assert.False(t, p.Done())
	_, ok := p.Value()
	assert.False(t, ok)
	require.NotNil(t, p.Op())
	assert.Equal(t, icrud.Request[string, doc]{Kind: icrud.KindGetByID, ID: "k"}, p.Op().Request())
}

func TestSuspend(t *testing.T) {
	op := icrud.NewGetAllOp[int](func(ds []int) icrud.Program[int, int, int] {
		return icrud.Finished[int, int](len(ds))
	})
	p := icrud.Suspend(op)
	assert.Equal(t, icrud.KindGetAll, p.Op().Kind())
}

func TestSingleOperationPrograms(t *testing.T) {
	ctx := context.Background()
	mem := crudtest.NewMemory[int, doc](crudtest.Counter())
	mem.Seed(7, doc{Title: "seeded"})

	got, err := icrud.Run(ctx, mem, icrud.GetByID[int, doc](7))
	require.NoError(t, err)
	assert.Equal(t, doc{Title: "seeded"}, got)

	id, err := icrud.Run(ctx, mem, icrud.Create[int](doc{Title: "new"}))
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	unit, err := icrud.Run(ctx, mem, icrud.Update(7, doc{Title: "changed", Views: 3}))
	require.NoError(t, err)
	assert.Equal(t, icrud.Unit{}, unit)

	all, err := icrud.Run(ctx, mem, icrud.GetAll[int, doc]())
	require.NoError(t, err)
	assert.Equal(t, []doc{{Title: "changed", Views: 3}, {Title: "new"}}, all)
}

func TestExplicitContinuations(t *testing.T) {
	ctx := context.Background()
	mem := crudtest.NewMemory[int, doc](crudtest.Counter())

	p := icrud.CreateThen(doc{Title: "a"}, func(id int) icrud.Program[int, doc, string] {
		return icrud.UpdateThen(id, doc{Title: "b"}, func() icrud.Program[int, doc, string] {
			return icrud.GetByIDThen(id, func(d doc) icrud.Program[int, doc, string] {
				return icrud.GetAllThen(func(all []doc) icrud.Program[int, doc, string] {
					return icrud.Finished[int, doc](d.Title + string(rune('0'+len(all))))
				})
			})
		})
	})

	got, err := icrud.Run(ctx, mem, p)
	require.NoError(t, err)
	assert.Equal(t, "b1", got)
}

func TestProgramIsInert(t *testing.T) {
	rec := crudtest.Record(crudtest.Echo[int]())
	p := icrud.AndThen(icrud.GetByID[int, int](1), func(d int) icrud.Program[int, int, icrud.Unit] {
		return icrud.Update(d, d)
	})
	_ = icrud.Map(p, func(icrud.Unit) int { return 0 })
	assert.Zero(t, rec.Len())
}
