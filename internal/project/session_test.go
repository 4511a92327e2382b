package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/LumenWall/internal/catalog"
	"github.com/piwi3910/LumenWall/internal/model"
)

func configuredSession(t *testing.T) model.DisplayConfiguration {
	t.Helper()
	record := catalog.FindModelByID("lw-p25-in")
	if record == nil {
		t.Fatal("built-in model lw-p25-in not found")
	}
	cfg := model.NewDisplayConfiguration()
	cfg.SelectModel(*record)
	cfg.SetScreenSize(catalog.Dimensions{Width: 2, Height: 1.5})
	return cfg
}

func TestSaveAndLoadSession(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lobby.json")

	cfg := configuredSession(t)
	if err := SaveSession(path, cfg, "Lobby wall"); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	loaded, err := LoadSession(path)
	if err != nil {
		t.Fatalf("LoadSession failed: %v", err)
	}

	if !loaded.Configured() {
		t.Fatal("loaded session should be configured")
	}
	if loaded.Model.Record.ID != "lw-p25-in" {
		t.Errorf("expected model lw-p25-in, got %s", loaded.Model.Record.ID)
	}
	if loaded.Screen != cfg.Screen {
		t.Errorf("expected screen %+v, got %+v", cfg.Screen, loaded.Screen)
	}
	if loaded.Wall != cfg.Wall {
		t.Errorf("expected wall %+v, got %+v", cfg.Wall, loaded.Wall)
	}

	// The spec must come from re-ingestion, not from stored floats.
	want := catalog.Ingest(loaded.Model.Record)
	if loaded.BaseUnit != want.BaseUnit {
		t.Errorf("expected re-ingested base unit %+v, got %+v", want.BaseUnit, loaded.BaseUnit)
	}
}

func TestSaveSessionUnconfigured(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")

	cfg := model.NewDisplayConfiguration()
	if err := SaveSession(path, cfg, ""); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	loaded, err := LoadSession(path)
	if err != nil {
		t.Fatalf("LoadSession failed: %v", err)
	}
	if loaded.Configured() {
		t.Error("expected unconfigured session")
	}
	if loaded.Wall.Width != model.DefaultWallWidth {
		t.Errorf("expected default wall width, got %f", loaded.Wall.Width)
	}
}

func TestLoadSessionMissingFile(t *testing.T) {
	_, err := LoadSession(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing session file")
	}
}

func TestLoadSessionInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSession(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadSessionNewerVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "future.json")
	data := []byte(`{"version":99,"configuration":{}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSession(path); err == nil {
		t.Fatal("expected error for newer session version")
	}
}
