package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutListAddAssignsDistinctColors(t *testing.T) {
	var cl CutList
	a, err := cl.Add("A", "", 0.3, 2, 1.0)
	require.NoError(t, err)
	b, err := cl.Add("B", "Kupfer", 0.5, 1, 1.0)
	require.NoError(t, err)

	assert.Len(t, cl, 2)
	assert.NotEmpty(t, a.ColorTag)
	assert.NotEqual(t, a.ColorTag, b.ColorTag)
	assert.Equal(t, "Kupfer", cl[1].MaterialLabel)
}

func TestCutListAddRejectsInvalidDimensions(t *testing.T) {
	var cl CutList

	_, err := cl.Add("zero", "", 0, 2, 1.0)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = cl.Add("neg", "", 0.3, -1, 1.0)
	require.Error(t, err)

	_, err = cl.Add("wide", "", 1.2, 1, 1.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "120,0 cm")

	assert.Empty(t, cl)
}

func TestCutListAddAcceptsExactRollWidth(t *testing.T) {
	var cl CutList
	_, err := cl.Add("full", "", 1.0, 3, 1.0)
	assert.NoError(t, err)
}

func TestCutListUpdate(t *testing.T) {
	var cl CutList
	c, err := cl.Add("A", "", 0.3, 2, 1.0)
	require.NoError(t, err)

	require.NoError(t, cl.Update(c.ID, "A2", "Blei", 0.4, 3, 1.0))
	assert.Equal(t, "A2", cl[0].Label)
	assert.Equal(t, "Blei", cl[0].MaterialLabel)
	assert.Equal(t, 0.4, cl[0].Width)
	assert.Equal(t, 3.0, cl[0].Length)
	assert.Equal(t, c.ColorTag, cl[0].ColorTag)

	assert.Error(t, cl.Update("missing", "x", "", 0.1, 1, 1.0))
	assert.Error(t, cl.Update(c.ID, "x", "", 2.0, 1, 1.0))
}

func TestCutListRemoveAndFind(t *testing.T) {
	var cl CutList
	a, _ := cl.Add("A", "", 0.3, 2, 1.0)
	b, _ := cl.Add("B", "", 0.3, 2, 1.0)

	assert.Equal(t, 1, cl.Find(b.ID))
	assert.True(t, cl.Remove(a.ID))
	assert.False(t, cl.Remove(a.ID))
	assert.Equal(t, 0, cl.Find(b.ID))
	assert.Equal(t, -1, cl.Find(a.ID))
}

func TestCutListCloneIsIndependent(t *testing.T) {
	cl := CutList{NewCutRequest("A", 0.3, 2)}
	cp := cl.Clone()
	cp[0].Label = "changed"
	assert.Equal(t, "A", cl[0].Label)

	var empty CutList
	assert.Nil(t, empty.Clone())
}

func TestCutListTotalArea(t *testing.T) {
	cl := CutList{
		NewCutRequest("A", 0.3, 16),
		NewCutRequest("B", 0.5, 2),
	}
	assert.InDelta(t, 5.8, cl.TotalArea(), 1e-9)
}
