package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/LumenWall/internal/catalog"
)

// DefaultUserModelsPath returns the default file path for user-added
// catalog models. This is located at ~/.lumenwall/models.json.
func DefaultUserModelsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".lumenwall", "models.json"), nil
}

// SaveUserModels writes the user catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveUserModels(path string, models []catalog.ModelRecord) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(models, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadUserModels reads the user catalog from the specified JSON file.
// A missing file means no user models and is not an error.
func LoadUserModels(path string) ([]catalog.ModelRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []catalog.ModelRecord{}, nil
		}
		return nil, err
	}
	var models []catalog.ModelRecord
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, err
	}
	return models, nil
}

// LoadOrCreateUserModels loads the user catalog from the default path.
func LoadOrCreateUserModels() ([]catalog.ModelRecord, string, error) {
	path, err := DefaultUserModelsPath()
	if err != nil {
		return []catalog.ModelRecord{}, "", err
	}
	models, err := LoadUserModels(path)
	return models, path, err
}

// MergeModels appends imported records to an existing user catalog,
// skipping duplicate IDs and names already present.
func MergeModels(existing, imported []catalog.ModelRecord) []catalog.ModelRecord {
	ids := make(map[string]bool, len(existing))
	names := make(map[string]bool, len(existing))
	for _, m := range existing {
		ids[m.ID] = true
		names[m.Name] = true
	}

	for _, m := range imported {
		if ids[m.ID] || names[m.Name] {
			continue
		}
		existing = append(existing, m)
		ids[m.ID] = true
		names[m.Name] = true
	}

	return existing
}

// FullCatalog returns the built-in models followed by the user models.
// Built-in entries win ID and name collisions.
func FullCatalog(userModels []catalog.ModelRecord) []catalog.ModelRecord {
	return MergeModels(append([]catalog.ModelRecord{}, catalog.Models...), userModels)
}
