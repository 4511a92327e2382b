package engine

import (
	"math"

	"github.com/piwi3910/LumenWall/internal/catalog"
)

// ResolutionMode selects how the screen size is driven: directly by the
// user (Custom) or derived from a target pixel resolution (FHD/UHD).
type ResolutionMode string

const (
	ModeCustom ResolutionMode = "Custom"
	ModeFHD    ResolutionMode = "FHD"
	ModeUHD    ResolutionMode = "UHD"
)

// TargetResolution returns the pixel target for a mode, or false for
// Custom (no target; the user drives the size).
func (m ResolutionMode) TargetResolution() (catalog.Resolution, bool) {
	switch m {
	case ModeFHD:
		return catalog.Resolution{Width: 1920, Height: 1080}, true
	case ModeUHD:
		return catalog.Resolution{Width: 3840, Height: 2160}, true
	}
	return catalog.Resolution{}, false
}

// UnitsForResolution computes how many units are needed per axis to
// reach the target pixel resolution, rounding up with a floor of one
// unit. A model without a usable per-unit resolution yields {1, 1}.
func UnitsForResolution(spec catalog.ModelSpec, target catalog.Resolution) UnitCount {
	unit := spec.UnitResolution
	if unit.IsZero() {
		return UnitCount{Horizontal: 1, Vertical: 1}
	}

	h := int(math.Ceil(float64(target.Width) / float64(unit.Width)))
	v := int(math.Ceil(float64(target.Height) / float64(unit.Height)))
	if h < 1 {
		h = 1
	}
	if v < 1 {
		v = 1
	}
	return UnitCount{Horizontal: h, Vertical: v}
}

// ScreenSizeFromResolution derives the real screen size in meters that
// satisfies the mode's pixel target: required units times base unit size
// per axis. In Custom mode the current size is returned unchanged — the
// caller must not override the user's screen size.
func ScreenSizeFromResolution(spec catalog.ModelSpec, mode ResolutionMode, current catalog.Dimensions) catalog.Dimensions {
	target, ok := mode.TargetResolution()
	if !ok {
		return current
	}

	count := UnitsForResolution(spec, target)
	return catalog.Dimensions{
		Width:  float64(count.Horizontal) * spec.BaseUnit.Width,
		Height: float64(count.Vertical) * spec.BaseUnit.Height,
	}
}

// TargetResolutionInfo describes how close a unit grid gets to a mode's
// pixel target. Actual is the resolution really achieved after rounding
// up to whole units; it is always componentwise >= Target and may exceed
// it.
type TargetResolutionInfo struct {
	Target          catalog.Resolution `json:"target"`
	Actual          catalog.Resolution `json:"actual"`
	Units           UnitCount          `json:"units"`
	ModelResolution catalog.Resolution `json:"model_resolution"`
}

// ResolutionInfoFor computes the TargetResolutionInfo for a mode, or nil
// in Custom mode where no target exists.
func ResolutionInfoFor(spec catalog.ModelSpec, mode ResolutionMode) *TargetResolutionInfo {
	target, ok := mode.TargetResolution()
	if !ok {
		return nil
	}

	count := UnitsForResolution(spec, target)
	return &TargetResolutionInfo{
		Target: target,
		Actual: catalog.Resolution{
			Width:  spec.UnitResolution.Width * count.Horizontal,
			Height: spec.UnitResolution.Height * count.Vertical,
		},
		Units:           count,
		ModelResolution: spec.UnitResolution,
	}
}
