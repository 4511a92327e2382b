package catalog

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseDimensionsForms(t *testing.T) {
	cases := []struct {
		in   string
		w, h float64
	}{
		{"640 (W) x 480 (H)", 0.64, 0.48},
		{"640*480mm", 0.64, 0.48},
		{"640x480", 0.64, 0.48},
		{"1,209.6 (W) x 680.4 (H)", 1.2096, 0.6804},
		{"500*500mm", 0.5, 0.5},
		{"960 x 960 mm", 0.96, 0.96},
	}
	for _, c := range cases {
		got := ParseDimensions(c.in)
		if !almostEqual(got.Width, c.w) || !almostEqual(got.Height, c.h) {
			t.Errorf("ParseDimensions(%q) = %+v, want {%g %g}", c.in, got, c.w, c.h)
		}
	}
}

func TestParseDimensionsUnparsable(t *testing.T) {
	for _, in := range []string{"", "custom", "wide"} {
		got := ParseDimensions(in)
		if got.Width != 0 || got.Height != 0 {
			t.Errorf("ParseDimensions(%q) = %+v, want zero", in, got)
		}
	}
}

func TestParseWeight(t *testing.T) {
	if got := ParseWeight("7.8kg/pcs"); !almostEqual(got, 7.8) {
		t.Errorf("expected 7.8, got %g", got)
	}
	if got := ParseWeight("approx. 12kg"); !almostEqual(got, 12) {
		t.Errorf("expected 12, got %g", got)
	}
	if got := ParseWeight("n/a"); got != 0 {
		t.Errorf("expected 0 for unparsable weight, got %g", got)
	}
}

func TestParseResolutionSeparators(t *testing.T) {
	cases := []struct {
		in   string
		w, h int
	}{
		{"256x192", 256, 192},
		{"1920 X 1080", 1920, 1080},
		{"3840×2160", 3840, 2160},
		{"128-128", 128, 128},
	}
	for _, c := range cases {
		got := ParseResolution(c.in)
		if got.Width != c.w || got.Height != c.h {
			t.Errorf("ParseResolution(%q) = %+v, want {%d %d}", c.in, got, c.w, c.h)
		}
	}
	if got := ParseResolution("full HD"); !got.IsZero() {
		t.Errorf("expected zero resolution, got %+v", got)
	}
}

func TestParsePowerConsumption(t *testing.T) {
	p := ParsePowerConsumption("Max: 500W/m², Average: 300W/m²")
	if p.Max != 500 || p.Average != 300 {
		t.Errorf("unexpected rating %+v", p)
	}

	// Casing and separator variants from older datasheets.
	p = ParsePowerConsumption("max: 800W/m²; average: 270W/m²")
	if p.Max != 800 || p.Average != 270 {
		t.Errorf("unexpected rating %+v", p)
	}

	p = ParsePowerConsumption("450W typical")
	if p.Max != 0 || p.Average != 0 {
		t.Errorf("expected zero rating, got %+v", p)
	}
}

func TestBaseDimensionsPrecedence(t *testing.T) {
	// Cabinet size wins over module size when both are published.
	r := ModelRecord{CabinetSize: "640*480mm", ModuleSize: "320*160mm"}
	got := BaseDimensions(r)
	if !almostEqual(got.Width, 0.64) || !almostEqual(got.Height, 0.48) {
		t.Errorf("expected cabinet size, got %+v", got)
	}

	r = ModelRecord{ModuleSize: "320*160mm"}
	got = BaseDimensions(r)
	if !almostEqual(got.Width, 0.32) || !almostEqual(got.Height, 0.16) {
		t.Errorf("expected module size, got %+v", got)
	}

	r = ModelRecord{UnitSizeMM: "1,209.6 (W) x 680.4 (H)"}
	got = BaseDimensions(r)
	if !almostEqual(got.Width, 1.2096) || !almostEqual(got.Height, 0.6804) {
		t.Errorf("expected panel size, got %+v", got)
	}

	if got := BaseDimensions(ModelRecord{}); !got.IsZero() {
		t.Errorf("expected zero for empty record, got %+v", got)
	}
}

func TestWeightFieldPrecedence(t *testing.T) {
	r := ModelRecord{CabinetWeight: "7.8kg/pcs", ModuleWeight: "0.4kg/pcs"}
	if w, ok := WeightField(r); !ok || w != "7.8kg/pcs" {
		t.Errorf("expected cabinet weight, got %q (%v)", w, ok)
	}

	r = ModelRecord{ModuleWeight: "0.4kg/pcs"}
	if w, ok := WeightField(r); !ok || w != "0.4kg/pcs" {
		t.Errorf("expected module weight, got %q (%v)", w, ok)
	}

	// Video wall panels publish no weight.
	if _, ok := WeightField(ModelRecord{}); ok {
		t.Error("expected no weight field")
	}
}

func TestResolutionFieldPrecedence(t *testing.T) {
	r := ModelRecord{CabinetResolution: "256x192", ModuleResolution: "32x16", Resolution: "1920x1080"}
	if got := ResolutionField(r); got != "256x192" {
		t.Errorf("expected cabinet resolution, got %q", got)
	}
	r.CabinetResolution = ""
	if got := ResolutionField(r); got != "32x16" {
		t.Errorf("expected module resolution, got %q", got)
	}
	r.ModuleResolution = ""
	if got := ResolutionField(r); got != "1920x1080" {
		t.Errorf("expected generic resolution, got %q", got)
	}
}

func TestIngest(t *testing.T) {
	r := ModelRecord{
		Name:              "Test P2.5",
		Family:            FamilyCabinet,
		CabinetSize:       "640*480mm",
		CabinetWeight:     "7.8kg/pcs",
		CabinetResolution: "256x192",
		PowerConsumption:  "Max: 500W/m², Average: 300W/m²",
	}
	spec := Ingest(r)

	if !almostEqual(spec.BaseUnit.Width, 0.64) || !almostEqual(spec.BaseUnit.Height, 0.48) {
		t.Errorf("unexpected base unit %+v", spec.BaseUnit)
	}
	if !almostEqual(spec.UnitWeight, 7.8) {
		t.Errorf("unexpected weight %g", spec.UnitWeight)
	}
	if spec.UnitResolution.Width != 256 || spec.UnitResolution.Height != 192 {
		t.Errorf("unexpected resolution %+v", spec.UnitResolution)
	}
	if spec.Power.Max != 500 || spec.Power.Average != 300 {
		t.Errorf("unexpected power %+v", spec.Power)
	}
}

func TestIngestMalformedDegradesToZero(t *testing.T) {
	spec := Ingest(ModelRecord{Name: "Broken", CabinetSize: "call for specs"})
	if !spec.BaseUnit.IsZero() {
		t.Errorf("expected zero base unit, got %+v", spec.BaseUnit)
	}
	if spec.UnitWeight != 0 || !spec.UnitResolution.IsZero() {
		t.Error("expected zero-valued spec fields")
	}
}
