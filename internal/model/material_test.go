package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMaterialCatalog(t *testing.T) {
	mc := DefaultMaterialCatalog()
	assert.Len(t, mc.Materials, 7)

	m := mc.FindByKey("kupfer")
	require.NotNil(t, m)
	assert.Equal(t, "Kupfer", m.Name)
	assert.Equal(t, 85.0, m.PricePerM2)

	assert.Nil(t, mc.FindByKey("gold"))
}

func TestMaterialCatalogFindByName(t *testing.T) {
	mc := DefaultMaterialCatalog()
	m := mc.FindByName("stahlblech VERZINKT")
	require.NotNil(t, m)
	assert.Equal(t, 18.0, m.PricePerM2)
}

func TestMaterialCatalogAddReplacesSameKey(t *testing.T) {
	mc := DefaultMaterialCatalog()
	mc.Add(Material{Key: "blei", Name: "Blei", PricePerM2: 70})
	assert.Len(t, mc.Materials, 7)
	assert.Equal(t, 70.0, mc.FindByKey("blei").PricePerM2)

	custom := NewMaterial("Bitumenbahn", 12.5)
	assert.Len(t, custom.Key, 8)
	mc.Add(custom)
	assert.Len(t, mc.Materials, 8)
	assert.Contains(t, mc.Names(), "Bitumenbahn")
}

func TestMaterialCatalogRemove(t *testing.T) {
	mc := DefaultMaterialCatalog()
	assert.True(t, mc.Remove("prefa"))
	assert.False(t, mc.Remove("prefa"))
	assert.Len(t, mc.Materials, 6)
}
