// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package icrud_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/icrud"
)

func TestStepFinished(t *testing.T) {
	v, susp := icrud.Step(icrud.Finished[int, string](42))
	assert.Nil(t, susp)
	assert.Equal(t, 42, v)
}

func TestStepChain(t *testing.T) {
	// Create, then read back and update.
	p := icrud.CreateThen("draft", func(id int) icrud.Program[int, string, string] {
		return icrud.GetByIDThen(id, func(d string) icrud.Program[int, string, string] {
			return icrud.Then(icrud.Update(id, d+"!"), icrud.Finished[int, string](d))
		})
	})

	_, susp := icrud.Step(p)
	require.NotNil(t, susp)
	assert.Equal(t, icrud.KindCreate, susp.Kind())
	assert.Equal(t, "draft", susp.Request().Doc)

	_, susp, err := susp.Resume(9)
	require.NoError(t, err)
	require.NotNil(t, susp)
	assert.Equal(t, icrud.Request[int, string]{Kind: icrud.KindGetByID, ID: 9}, susp.Request())

	_, susp, err = susp.Resume("stored")
	require.NoError(t, err)
	require.NotNil(t, susp)
	assert.Equal(t, icrud.Request[int, string]{Kind: icrud.KindUpdate, ID: 9, Doc: "stored!"}, susp.Request())

	v, susp, err := susp.Resume(icrud.Unit{})
	require.NoError(t, err)
	assert.Nil(t, susp)
	assert.Equal(t, "stored", v)
}

func TestStepGetAll(t *testing.T) {
	_, susp := icrud.Step(icrud.GetAll[int, string]())
	require.NotNil(t, susp)
	v, next, err := susp.Resume([]string{"a", "b"})
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestSuspensionResumeTwicePanics(t *testing.T) {
	_, susp := icrud.Step(icrud.GetByID[int, int](1))
	require.NotNil(t, susp)
	_, _, err := susp.Resume(1)
	require.NoError(t, err)

	assert.PanicsWithValue(t, "icrud: suspension resumed twice", func() {
		_, _, _ = susp.Resume(2)
	})
}

func TestSuspensionTryResume(t *testing.T) {
	_, susp := icrud.Step(icrud.GetByID[int, int](1))
	v, next, ok, err := susp.TryResume(5)
	require.True(t, ok)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, 5, v)

	v, next, ok, err = susp.TryResume(6)
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.Nil(t, next)
	assert.Zero(t, v)
}

func TestSuspensionDiscard(t *testing.T) {
	_, susp := icrud.Step(icrud.Create[int]("d"))
	susp.Discard()
	_, _, ok, _ := susp.TryResume(1)
	assert.False(t, ok)
	assert.Panics(t, func() { _, _, _ = susp.Resume(1) })
}

func TestSuspensionWrongOutcome(t *testing.T) {
	_, susp := icrud.Step(icrud.GetByID[int, string](1))
	_, next, err := susp.Resume(3)
	require.ErrorIs(t, err, icrud.ErrOutcomeType)
	assert.Nil(t, next)

	_, create := icrud.Step(icrud.Create[int]("d"))
	require.NotNil(t, create)
	_, _, err = create.Resume("not an id")
	require.ErrorIs(t, err, icrud.ErrOutcomeType)
}
