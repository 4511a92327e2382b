// Package engine contains the pure derivation core of the configurator:
// unit counting, quantized screen sizing, weight/power/resolution
// aggregation and the meters-to-pixels geometry shared by the live
// canvas and the PDF export. Every function is a side-effect-free
// transform of its inputs and is safe to re-run on every state change.
package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/LumenWall/internal/catalog"
)

// UnitCount is the number of base units per axis. Never zero: even an
// empty requested screen quotes at least one unit each way.
type UnitCount struct {
	Horizontal int `json:"horizontal"`
	Vertical   int `json:"vertical"`
}

// Total returns the number of physical units in the grid.
func (u UnitCount) Total() int {
	return u.Horizontal * u.Vertical
}

// countEpsilon absorbs float64 noise in meter-to-unit ratios. A screen
// sized at an exact unit multiple (for example 7 units of 0.64 m, which
// stores as 4.4800000000000004) must count as 7 units, not 8.
const countEpsilon = 1e-9

// unitsCovering is the epsilon-tolerant ceil of span/base.
func unitsCovering(span, base float64) int {
	return int(math.Ceil(span/base - countEpsilon))
}

// UnitsThatFit returns how many whole base units fit within a span,
// tolerating float noise at exact multiples. Zero base yields 0.
func UnitsThatFit(span, base float64) int {
	if base <= 0 {
		return 0
	}
	return int(span/base + countEpsilon)
}

// UnitCountFor computes how many base units are needed to cover the
// requested screen size, rounding up per axis with a floor of one unit.
// A zero base dimension (model not configured yet) yields {1, 1} rather
// than dividing by zero.
func UnitCountFor(screen, base catalog.Dimensions) UnitCount {
	if base.Width <= 0 || base.Height <= 0 {
		return UnitCount{Horizontal: 1, Vertical: 1}
	}

	h := unitsCovering(screen.Width, base.Width)
	v := unitsCovering(screen.Height, base.Height)
	if h < 1 {
		h = 1
	}
	if v < 1 {
		v = 1
	}
	return UnitCount{Horizontal: h, Vertical: v}
}

// ActualScreenSize returns the unit-quantized screen size: the requested
// size rounded up to whole base units per axis. This is the authoritative
// rendered size; the requested ScreenSpec is only ever a lower bound.
func ActualScreenSize(screen, base catalog.Dimensions) catalog.Dimensions {
	count := UnitCountFor(screen, base)
	return catalog.Dimensions{
		Width:  float64(count.Horizontal) * base.Width,
		Height: float64(count.Vertical) * base.Height,
	}
}

// TotalWeight returns the installed weight in kilograms, or 0 when the
// model publishes no weight (video wall panels).
func TotalWeight(spec catalog.ModelSpec, totalUnits int) float64 {
	if totalUnits <= 0 {
		return 0
	}
	return spec.UnitWeight * float64(totalUnits)
}

// ResolutionPerUnit scales the model's per-unit resolution by the total
// unit count. Both axes are multiplied by the full grid count, not by
// the per-axis counts, so for non-square grids the value is not the true
// aggregate resolution in either axis. The quote sheets have always been
// produced with this arithmetic, so it is kept as is.
// TODO: confirm with product whether per-axis scaling was intended.
func ResolutionPerUnit(spec catalog.ModelSpec, totalUnits int) catalog.Resolution {
	if totalUnits <= 0 {
		return catalog.Resolution{}
	}
	return catalog.Resolution{
		Width:  spec.UnitResolution.Width * totalUnits,
		Height: spec.UnitResolution.Height * totalUnits,
	}
}

// AspectRatio reduces a pixel resolution to a "W : H" display string via
// GCD, e.g. 1920x1080 becomes "16 : 9". Returns "N/A" when either axis
// is zero.
func AspectRatio(res catalog.Resolution) string {
	if res.Width <= 0 || res.Height <= 0 {
		return "N/A"
	}
	d := gcd(res.Width, res.Height)
	return fmt.Sprintf("%d : %d", res.Width/d, res.Height/d)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// CalculationResult aggregates every derived figure for one
// configuration. It is recomputed on demand and never stored.
type CalculationResult struct {
	UnitCount         UnitCount          `json:"unit_count"`
	TotalUnits        int                `json:"total_units"`
	ActualScreenSize  catalog.Dimensions `json:"actual_screen_size"`
	ResolutionPerUnit catalog.Resolution `json:"resolution_per_unit"`
	TotalWeight       float64            `json:"total_weight"`
	BaseDimensions    catalog.Dimensions `json:"base_dimensions"`
}

// Results assembles the full CalculationResult for a model and requested
// screen size. Returns nil when no model is selected or its base unit
// failed to parse; callers branch on nil to render the unconfigured
// state.
func Results(spec *catalog.ModelSpec, screen catalog.Dimensions) *CalculationResult {
	if spec == nil || spec.BaseUnit.IsZero() {
		return nil
	}

	count := UnitCountFor(screen, spec.BaseUnit)
	total := count.Total()

	return &CalculationResult{
		UnitCount:         count,
		TotalUnits:        total,
		ActualScreenSize:  ActualScreenSize(screen, spec.BaseUnit),
		ResolutionPerUnit: ResolutionPerUnit(*spec, total),
		TotalWeight:       TotalWeight(*spec, total),
		BaseDimensions:    spec.BaseUnit,
	}
}

// Reference wall used for content scaling: the default 5m x 3m wall
// rendered at its base pixel size.
const (
	referenceDisplayWidth  = 1000.0 // px
	referenceDisplayHeight = 600.0  // px
)

// ImageScale returns the uniform scale-to-fit factor for rendering
// content against the reference wall, preserving the wall's aspect
// ratio. Zero wall dimensions yield 0.
func ImageScale(wallWidth, wallHeight float64) float64 {
	if wallWidth <= 0 || wallHeight <= 0 {
		return 0
	}
	return math.Min(referenceDisplayWidth/wallWidth, referenceDisplayHeight/wallHeight)
}

// ValidateScreenSize clamps a requested screen size to the base unit
// floor per axis. Pure clamping: invalid values are corrected, never
// rejected.
func ValidateScreenSize(screen, base catalog.Dimensions) catalog.Dimensions {
	return catalog.Dimensions{
		Width:  math.Max(base.Width, screen.Width),
		Height: math.Max(base.Height, screen.Height),
	}
}

// MinWallDimension is the smallest wall edge the configurator accepts.
const MinWallDimension = 1.0 // meters

// ValidateWallSize clamps a wall size to the 1m floor per axis.
func ValidateWallSize(wall catalog.Dimensions) catalog.Dimensions {
	return catalog.Dimensions{
		Width:  math.Max(MinWallDimension, wall.Width),
		Height: math.Max(MinWallDimension, wall.Height),
	}
}
