// Package catalog holds the product reference data for the configurator:
// LED display model records, processor records, and the parsing/ingestion
// layer that turns free-form catalog strings into typed numeric specs.
package catalog

import "github.com/google/uuid"

// DisplayFamily identifies which physical tile a model is built from.
type DisplayFamily int

const (
	FamilyCabinet   DisplayFamily = iota // LED cabinet based (indoor/outdoor fixed)
	FamilyModule                         // bare LED module based
	FamilyVideoWall                      // LCD video wall panel
)

func (f DisplayFamily) String() string {
	switch f {
	case FamilyModule:
		return "Module"
	case FamilyVideoWall:
		return "Video Wall"
	default:
		return "Cabinet"
	}
}

// ModelRecord is a raw catalog entry as published in the product sheets.
// All physical values are free-form display strings; they are parsed once
// by Ingest and never re-parsed at query time. Fields are optional except
// the size field appropriate to the display family.
type ModelRecord struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Family            DisplayFamily `json:"family"`
	PixelPitch        string        `json:"pixel_pitch,omitempty"`
	Inch              string        `json:"inch,omitempty"`
	CabinetSize       string        `json:"cabinet_size,omitempty"`
	ModuleSize        string        `json:"module_size,omitempty"`
	UnitSizeMM        string        `json:"unit_size_mm,omitempty"`
	CabinetWeight     string        `json:"cabinet_weight,omitempty"`
	ModuleWeight      string        `json:"module_weight,omitempty"`
	CabinetResolution string        `json:"cabinet_resolution,omitempty"`
	ModuleResolution  string        `json:"module_resolution,omitempty"`
	Resolution        string        `json:"resolution,omitempty"`
	PowerConsumption  string        `json:"power_consumption,omitempty"`
	Brightness        string        `json:"brightness,omitempty"`
	RefreshRate       string        `json:"refresh_rate,omitempty"`
}

// NewModelRecord creates a record with a generated ID.
func NewModelRecord(name string, family DisplayFamily) ModelRecord {
	return ModelRecord{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Family: family,
	}
}

// IsVideoWall reports whether the record belongs to the video-wall family.
// Video wall power is rated per panel rather than per square meter, and
// panels carry no published weight.
func (r ModelRecord) IsVideoWall() bool {
	return r.Family == FamilyVideoWall
}

// Dimensions is a physical width/height pair in meters.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero reports whether either dimension is unset.
func (d Dimensions) IsZero() bool {
	return d.Width <= 0 || d.Height <= 0
}

// Area returns width times height in square meters.
func (d Dimensions) Area() float64 {
	return d.Width * d.Height
}

// Resolution is a pixel width/height pair.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsZero reports whether either axis is unset.
func (r Resolution) IsZero() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Pixels returns the total pixel count.
func (r Resolution) Pixels() int {
	return r.Width * r.Height
}

// PowerRating holds parsed power-consumption figures. The unit depends on
// the display family: watts per square meter for LED cabinets/modules,
// watts per panel for video walls.
type PowerRating struct {
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// ModelSpec is the typed, parse-once view of a ModelRecord. All numeric
// fields are derived exactly once at ingestion; the raw record is kept
// for display-only strings (pixel pitch, brightness, refresh rate).
type ModelSpec struct {
	Record         ModelRecord `json:"record"`
	BaseUnit       Dimensions  `json:"base_unit"`       // meters
	UnitWeight     float64     `json:"unit_weight"`     // kg per unit, 0 when unpublished
	UnitResolution Resolution  `json:"unit_resolution"` // pixels per unit
	Power          PowerRating `json:"power"`
}

// Ingest parses a raw record into a ModelSpec. Malformed or missing
// fields degrade to zero values; a spec with a zero BaseUnit is treated
// as unconfigured by every consumer rather than being an error.
func Ingest(r ModelRecord) ModelSpec {
	spec := ModelSpec{
		Record:         r,
		BaseUnit:       BaseDimensions(r),
		UnitResolution: ParseResolution(ResolutionField(r)),
		Power:          ParsePowerConsumption(r.PowerConsumption),
	}
	if w, ok := WeightField(r); ok {
		spec.UnitWeight = ParseWeight(w)
	}
	return spec
}

// IsVideoWall mirrors the record-level check for callers holding a spec.
func (s ModelSpec) IsVideoWall() bool {
	return s.Record.IsVideoWall()
}
