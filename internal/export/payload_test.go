package export

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/LumenWall/internal/catalog"
	"github.com/piwi3910/LumenWall/internal/model"
)

func configuredSession() model.DisplayConfiguration {
	cfg := model.NewDisplayConfiguration()
	cfg.SelectModel(catalog.ModelRecord{
		Name:              "Test P2.5",
		Family:            catalog.FamilyCabinet,
		PixelPitch:        "P2.5",
		CabinetSize:       "640*480mm",
		CabinetWeight:     "7.8kg/pcs",
		CabinetResolution: "256x192",
		PowerConsumption:  "Max: 500W/m², Average: 300W/m²",
	})
	cfg.SetScreenSize(catalog.Dimensions{Width: 2, Height: 1.5})
	return cfg
}

func testContact() Contact {
	return Contact{
		Project: "Lobby Wall",
		Name:    "A. Installer",
		Phone:   "+31 6 1234 5678",
		Email:   "install@example.com",
	}
}

func TestSnapshotUnconfigured(t *testing.T) {
	cfg := model.NewDisplayConfiguration()
	assert.Nil(t, Snapshot(&cfg, testContact()))
}

func TestSnapshotFormattedFields(t *testing.T) {
	cfg := configuredSession()
	payload := Snapshot(&cfg, testContact())
	require.NotNil(t, payload)

	// 4x4 grid of 640x480mm cabinets: 2.56m x 1.92m actual.
	assert.Equal(t, "2.560", payload.ScreenConfig.Width)
	assert.Equal(t, "1.920", payload.ScreenConfig.Height)
	assert.Equal(t, "4.915", payload.ScreenConfig.Area)
	assert.Equal(t, "5.0", payload.WallConfig.Width)
	assert.Equal(t, "3.0", payload.WallConfig.Height)
	assert.Equal(t, 16, payload.Calculations.TotalUnits)
	assert.False(t, payload.IsVideoWall)
	assert.Len(t, payload.Reference, 8)

	pv := payload.Calculations.ProcessedValues
	assert.Equal(t, "124.8 kg", pv.TotalWeight)
	// Max 500 W/m² x 4.9152 m² = 2457.6 W, budgeted up to 2.5 kW.
	assert.Equal(t, "2.500 W", pv.MaxPower)
	assert.Equal(t, "1.500 W", pv.AveragePower)
	assert.Equal(t, "4096 x 3072 px", pv.Resolution)
	assert.Equal(t, "4 : 3", pv.AspectRatio)
	assert.Equal(t, "Cabinet", pv.UnitLabel)
}

func TestSnapshotProcessorRecommendation(t *testing.T) {
	cfg := configuredSession()
	payload := Snapshot(&cfg, testContact())
	require.NotNil(t, payload)

	// Nominal 2m x 1.5m on a 256x192 cabinet: round(2/0.64)=3,
	// round(1.5/0.48)=3, 768x576 = 442k px -> TB40 suffices.
	pv := payload.Calculations.ProcessedValues
	assert.Equal(t, "TB40", pv.Processor)
	assert.Equal(t, "lan", pv.ConnectionType)
}

func TestSnapshotComponentsPerFamily(t *testing.T) {
	cfg := model.NewDisplayConfiguration()
	cfg.SelectModel(catalog.ModelRecord{
		Name:       "VW Test",
		Family:     catalog.FamilyVideoWall,
		UnitSizeMM: "1,209.6 (W) x 680.4 (H)",
		Resolution: "1920x1080",
	})
	payload := Snapshot(&cfg, Contact{})
	require.NotNil(t, payload)

	assert.True(t, payload.IsVideoWall)
	assert.Equal(t, "videowall-spec", payload.Components.SpecConfig)
	assert.Equal(t, "videowall-default", payload.Components.SpecDefault)
	// Panels publish no weight: the field is omitted, not "0 kg".
	assert.Empty(t, payload.Calculations.ProcessedValues.TotalWeight)
}

func TestSnapshotIsImmutable(t *testing.T) {
	cfg := configuredSession()
	payload := Snapshot(&cfg, testContact())
	require.NotNil(t, payload)

	before := payload.ScreenConfig.Width
	cfg.StepScreenWidth(1)
	assert.Equal(t, before, payload.ScreenConfig.Width, "snapshot must not track live state")
}

func TestPayloadWireFormat(t *testing.T) {
	cfg := configuredSession()
	payload := Snapshot(&cfg, testContact())
	require.NotNil(t, payload)

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{
		"reference", "contact", "display_type", "model_data", "is_video_wall",
		"screen_config", "wall_config", "calculations", "components",
	} {
		assert.Contains(t, decoded, key)
	}

	// Display fields travel as pre-formatted strings, not floats.
	screen := decoded["screen_config"].(map[string]any)
	_, isString := screen["width"].(string)
	assert.True(t, isString, "screen width must be a formatted string")
}
