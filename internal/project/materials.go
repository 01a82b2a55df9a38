package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/toolbox/internal/model"
)

// DefaultMaterialsPath returns the default file path for the material
// catalog. This is located at ~/.toolbox/materials.json.
func DefaultMaterialsPath() string {
	return filepath.Join(DefaultConfigDir(), "materials.json")
}

// SaveMaterials writes the material catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveMaterials(path string, catalog model.MaterialCatalog) error {
	return writeJSON(path, catalog)
}

// LoadMaterials reads the material catalog from the specified JSON file.
// If the file does not exist, it returns the built-in catalog and saves it.
func LoadMaterials(path string) (model.MaterialCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			catalog := model.DefaultMaterialCatalog()
			if saveErr := SaveMaterials(path, catalog); saveErr != nil {
				return catalog, saveErr
			}
			return catalog, nil
		}
		return model.MaterialCatalog{}, err
	}
	var catalog model.MaterialCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return model.MaterialCatalog{}, fmt.Errorf("failed to parse materials file: %w", err)
	}
	return catalog, nil
}

// LoadOrCreateMaterials loads the catalog from the default path.
// If the file does not exist, it creates one with the built-in materials.
func LoadOrCreateMaterials() (model.MaterialCatalog, string, error) {
	path := DefaultMaterialsPath()
	catalog, err := LoadMaterials(path)
	return catalog, path, err
}

// ImportMaterials reads a catalog from a user-specified JSON file and
// merges it into the existing one. Imported entries replace existing
// entries with the same key.
func ImportMaterials(path string, existing model.MaterialCatalog) (model.MaterialCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.MaterialCatalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, fmt.Errorf("failed to parse materials file: %w", err)
	}

	merged := model.MaterialCatalog{
		Materials: append([]model.Material(nil), existing.Materials...),
	}
	for _, m := range imported.Materials {
		if m.Key == "" || m.Name == "" {
			continue
		}
		merged.Add(m)
	}
	return merged, nil
}
