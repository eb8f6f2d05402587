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
)

func newDispatcher(seen *[]icrud.Request[string, string]) icrud.ExecutorFunc[string, string] {
	return func(_ context.Context, req icrud.Request[string, string]) (icrud.Resumed, error) {
		*seen = append(*seen, req)
		switch req.Kind {
		case icrud.KindGetByID:
			return "doc:" + req.ID, nil
		case icrud.KindGetAll:
			return []string{"x", "y"}, nil
		case icrud.KindCreate:
			return "id:" + req.Doc, nil
		default:
			return nil, nil
		}
	}
}

func TestExecutorFunc(t *testing.T) {
	var seen []icrud.Request[string, string]
	x := newDispatcher(&seen)

	p := icrud.AndThen(icrud.GetByID[string, string]("a"), func(d string) icrud.Program[string, string, string] {
		return icrud.CreateThen(d, func(id string) icrud.Program[string, string, string] {
			return icrud.UpdateThen(id, d, func() icrud.Program[string, string, string] {
				return icrud.Map(icrud.GetAll[string, string](), func(all []string) string {
					return id + "|" + all[0] + all[1]
				})
			})
		})
	})

	got, err := icrud.Run(context.Background(), x, p)
	require.NoError(t, err)
	assert.Equal(t, "id:doc:a|xy", got)
	assert.Equal(t, []icrud.Request[string, string]{
		{Kind: icrud.KindGetByID, ID: "a"},
		{Kind: icrud.KindCreate, Doc: "doc:a"},
		{Kind: icrud.KindUpdate, ID: "id:doc:a", Doc: "doc:a"},
		{Kind: icrud.KindGetAll},
	}, seen)
}

func TestExecutorFuncOutcomeType(t *testing.T) {
	// 3.5 matches none of the expected outcome types.
	x := icrud.ExecutorFunc[string, int](func(context.Context, icrud.Request[string, int]) (icrud.Resumed, error) {
		return 3.5, nil
	})

	_, err := x.GetByID(context.Background(), "a")
	require.ErrorIs(t, err, icrud.ErrOutcomeType)
	assert.Contains(t, err.Error(), "GetByID")

	_, err = x.GetAll(context.Background())
	require.ErrorIs(t, err, icrud.ErrOutcomeType)

	_, err = x.Create(context.Background(), 1)
	require.ErrorIs(t, err, icrud.ErrOutcomeType)
	assert.Contains(t, err.Error(), "Create")

	// Update ignores its outcome.
	require.NoError(t, x.Update(context.Background(), "a", 1))
}

func TestExecutorFuncNilOutcomeIsZero(t *testing.T) {
	x := icrud.ExecutorFunc[string, int](func(context.Context, icrud.Request[string, int]) (icrud.Resumed, error) {
		return nil, nil
	})
	v, err := x.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Zero(t, v)

	id, err := x.Create(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestExecutorFuncError(t *testing.T) {
	x := icrud.ExecutorFunc[string, int](func(context.Context, icrud.Request[string, int]) (icrud.Resumed, error) {
		return 5, errBoom
	})
	_, err := x.GetByID(context.Background(), "a")
	assert.ErrorIs(t, err, errBoom)
	assert.ErrorIs(t, x.Update(context.Background(), "a", 1), errBoom)
}

func TestFuncs(t *testing.T) {
	var updated []string
	x := icrud.Funcs[string, string]{
		GetByIDFunc: func(_ context.Context, id string) (string, error) { return id + "!", nil },
		GetAllFunc:  func(context.Context) ([]string, error) { return []string{"z"}, nil },
		UpdateFunc: func(_ context.Context, id, d string) error {
			updated = append(updated, id+"="+d)
			return nil
		},
		CreateFunc: func(_ context.Context, d string) (string, error) { return "n" + d, nil },
	}

	got, err := icrud.Run(context.Background(), x, icrud.Zip(icrud.GetByID[string, string]("q"), icrud.Create[string]("d")))
	require.NoError(t, err)
	assert.Equal(t, icrud.Pair[string, string]{Fst: "q!", Snd: "nd"}, got)

	_, err = icrud.Run(context.Background(), x, icrud.Update("k", "v"))
	require.NoError(t, err)
	assert.Equal(t, []string{"k=v"}, updated)
}
