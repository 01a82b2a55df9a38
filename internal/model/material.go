package model

import (
	"strings"

	"github.com/google/uuid"
)

// Material is a reusable material template with its price per square meter.
type Material struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	PricePerM2 float64 `json:"price_per_m2"`
}

// NewMaterial creates a user-defined material with a generated key.
func NewMaterial(name string, pricePerM2 float64) Material {
	return Material{
		Key:        uuid.New().String()[:8],
		Name:       name,
		PricePerM2: pricePerM2,
	}
}

// MaterialCatalog holds the material templates offered when setting up a roll.
type MaterialCatalog struct {
	Materials []Material `json:"materials"`
}

// DefaultMaterialCatalog returns the built-in sheet metal templates.
func DefaultMaterialCatalog() MaterialCatalog {
	return MaterialCatalog{
		Materials: []Material{
			{Key: "kupfer", Name: "Kupfer", PricePerM2: 85},
			{Key: "titanzink", Name: "Titanzink", PricePerM2: 45},
			{Key: "blei", Name: "Blei", PricePerM2: 60},
			{Key: "aluminium", Name: "Aluminium", PricePerM2: 25},
			{Key: "stahlblech", Name: "Stahlblech verzinkt", PricePerM2: 18},
			{Key: "edelstahl", Name: "Edelstahl", PricePerM2: 55},
			{Key: "prefa", Name: "PREFA Aluminium", PricePerM2: 75},
		},
	}
}

// FindByKey returns a pointer to the material with the given key, or nil.
func (mc *MaterialCatalog) FindByKey(key string) *Material {
	for i := range mc.Materials {
		if mc.Materials[i].Key == key {
			return &mc.Materials[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first material with the given name
// (case-insensitive), or nil.
func (mc *MaterialCatalog) FindByName(name string) *Material {
	for i := range mc.Materials {
		if strings.EqualFold(mc.Materials[i].Name, name) {
			return &mc.Materials[i]
		}
	}
	return nil
}

// Names returns the material names for UI dropdowns.
func (mc *MaterialCatalog) Names() []string {
	names := make([]string, len(mc.Materials))
	for i, m := range mc.Materials {
		names[i] = m.Name
	}
	return names
}

// Add appends a material. A material whose key is already present replaces
// the existing entry.
func (mc *MaterialCatalog) Add(m Material) {
	if existing := mc.FindByKey(m.Key); existing != nil {
		*existing = m
		return
	}
	mc.Materials = append(mc.Materials, m)
}

// Remove deletes the material with the given key. Returns true if found.
func (mc *MaterialCatalog) Remove(key string) bool {
	for i, m := range mc.Materials {
		if m.Key == key {
			mc.Materials = append(mc.Materials[:i], mc.Materials[i+1:]...)
			return true
		}
	}
	return false
}
