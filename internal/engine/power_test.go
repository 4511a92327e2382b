package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/LumenWall/internal/catalog"
)

func TestPowerDrawScalesByArea(t *testing.T) {
	spec := cabinetSpec()
	draw := PowerDraw(spec, 16, 4.0)
	assert.InDelta(t, 2000, draw.Max, 1e-9)
	assert.InDelta(t, 1200, draw.Average, 1e-9)
}

func TestPowerDrawVideoWallScalesByUnits(t *testing.T) {
	vw := catalog.Ingest(catalog.ModelRecord{
		Family:           catalog.FamilyVideoWall,
		UnitSizeMM:       "1,209.6 (W) x 680.4 (H)",
		Resolution:       "1920x1080",
		PowerConsumption: "Max: 190W/m², Average: 110W/m²",
	})
	draw := PowerDraw(vw, 6, 4.94)
	assert.InDelta(t, 1140, draw.Max, 1e-9)
	assert.InDelta(t, 660, draw.Average, 1e-9)
}

func TestFormatPowerRoundsUpToBudgetStep(t *testing.T) {
	s, ok := FormatPower(2000, false)
	assert.True(t, ok)
	assert.Equal(t, "2.000 W", s)

	s, ok = FormatPower(2100, false)
	assert.True(t, ok)
	assert.Equal(t, "2.500 W", s)

	s, ok = FormatPower(499, false)
	assert.True(t, ok)
	assert.Equal(t, "500 W", s)
}

func TestFormatPowerVideoWallKeepsRatedValue(t *testing.T) {
	s, ok := FormatPower(1140, true)
	assert.True(t, ok)
	assert.Equal(t, "1.140 W", s)

	s, ok = FormatPower(660.4, true)
	assert.True(t, ok)
	assert.Equal(t, "660 W", s)
}

func TestFormatPowerOmitsNonPositive(t *testing.T) {
	_, ok := FormatPower(0, false)
	assert.False(t, ok)
	_, ok = FormatPower(-5, true)
	assert.False(t, ok)
}
