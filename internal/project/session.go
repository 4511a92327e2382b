package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/LumenWall/internal/catalog"
	"github.com/piwi3910/LumenWall/internal/model"
)

// sessionVersion is bumped on incompatible session file changes.
const sessionVersion = 1

// Session is the on-disk form of a configuration session.
type Session struct {
	Version       int                        `json:"version"`
	Name          string                     `json:"name,omitempty"`
	Configuration model.DisplayConfiguration `json:"configuration"`
}

// SaveSession writes a configuration session to the specified JSON file.
func SaveSession(path string, cfg model.DisplayConfiguration, name string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	session := Session{
		Version:       sessionVersion,
		Name:          name,
		Configuration: cfg,
	}
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSession reads a configuration session from the specified JSON
// file. The selected model is re-ingested from its stored record so the
// typed spec never drifts from the parser.
func LoadSession(path string) (model.DisplayConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.DisplayConfiguration{}, err
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return model.DisplayConfiguration{}, fmt.Errorf("cannot parse session file: %w", err)
	}
	if session.Version > sessionVersion {
		return model.DisplayConfiguration{}, fmt.Errorf("session file version %d is newer than supported version %d",
			session.Version, sessionVersion)
	}

	cfg := session.Configuration
	if cfg.Model != nil {
		spec := catalog.Ingest(cfg.Model.Record)
		cfg.Model = &spec
		cfg.BaseUnit = spec.BaseUnit
	}
	return cfg, nil
}
