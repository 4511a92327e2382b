// Package model holds the mutable configurator state. The spec follows a
// single-source-of-truth design: DisplayConfiguration owns wall, screen
// and base-unit dimensions, every mutation validates before assignment,
// and all derived figures are recomputed on demand through the engine
// package.
package model

import (
	"github.com/piwi3910/LumenWall/internal/catalog"
	"github.com/piwi3910/LumenWall/internal/engine"
)

// Default wall dimensions on startup and after a reset.
const (
	DefaultWallWidth  = 5.0 // meters
	DefaultWallHeight = 3.0 // meters
)

// WallStep is the increment for the wall stepper controls.
const WallStep = 0.1 // meters

// DisplayConfiguration is the aggregate state of one configuration
// session. Zero values for Model/BaseUnit/Screen represent the
// unconfigured state before a model is selected.
type DisplayConfiguration struct {
	Wall     catalog.Dimensions    `json:"wall"`
	Screen   catalog.Dimensions    `json:"screen"` // requested nominal size
	BaseUnit catalog.Dimensions    `json:"base_unit"`
	Mode     engine.ResolutionMode `json:"mode"`
	Offset   engine.PixelOffset    `json:"offset"` // manual drag, px from center

	Model *catalog.ModelSpec `json:"model,omitempty"`

	// ContentSource is an opaque reference to the preview content
	// (image path or URL); the engine never inspects it.
	ContentSource string `json:"content_source,omitempty"`
}

// NewDisplayConfiguration returns the startup state: default wall, no
// model selected.
func NewDisplayConfiguration() DisplayConfiguration {
	return DisplayConfiguration{
		Wall: catalog.Dimensions{Width: DefaultWallWidth, Height: DefaultWallHeight},
		Mode: engine.ModeCustom,
	}
}

// Configured reports whether a model with a usable base unit has been
// selected. Every derivation gate checks this before dividing.
func (c *DisplayConfiguration) Configured() bool {
	return c.Model != nil && !c.BaseUnit.IsZero()
}

// SelectModel ingests a catalog record, replaces the base unit wholesale
// and resets the screen to exactly one unit. The drag offset is cleared.
func (c *DisplayConfiguration) SelectModel(record catalog.ModelRecord) {
	spec := catalog.Ingest(record)
	c.Model = &spec
	c.BaseUnit = spec.BaseUnit
	c.Screen = spec.BaseUnit
	c.Mode = engine.ModeCustom
	c.Offset = engine.PixelOffset{}
	c.applyMode()
}

// Reset returns the configuration to the unconfigured startup state.
func (c *DisplayConfiguration) Reset() {
	*c = NewDisplayConfiguration()
}

// UnitCount derives the base-unit grid for the current request.
func (c *DisplayConfiguration) UnitCount() engine.UnitCount {
	return engine.UnitCountFor(c.Screen, c.BaseUnit)
}

// ActualScreenSize derives the unit-quantized screen size, the
// authoritative rendered size.
func (c *DisplayConfiguration) ActualScreenSize() catalog.Dimensions {
	if !c.Configured() {
		return catalog.Dimensions{}
	}
	return engine.ActualScreenSize(c.Screen, c.BaseUnit)
}

// Results assembles the full calculation aggregate, or nil when
// unconfigured.
func (c *DisplayConfiguration) Results() *engine.CalculationResult {
	if !c.Configured() {
		return nil
	}
	return engine.Results(c.Model, c.Screen)
}

// SetScreenSize requests a nominal screen size. The request is clamped
// to the base-unit floor per axis. Ignored in FHD/UHD mode where the
// size is derived from the pixel target and read-only to the user.
func (c *DisplayConfiguration) SetScreenSize(size catalog.Dimensions) {
	if !c.Configured() || c.Mode != engine.ModeCustom {
		return
	}
	c.Screen = c.clampScreenToWall(engine.ValidateScreenSize(size, c.BaseUnit))
}

// StepScreenWidth grows or shrinks the requested width by whole base
// units. Custom mode only.
func (c *DisplayConfiguration) StepScreenWidth(delta int) {
	c.stepScreen(delta, 0)
}

// StepScreenHeight grows or shrinks the requested height by whole base
// units. Custom mode only.
func (c *DisplayConfiguration) StepScreenHeight(delta int) {
	c.stepScreen(0, delta)
}

func (c *DisplayConfiguration) stepScreen(dx, dy int) {
	if !c.Configured() || c.Mode != engine.ModeCustom {
		return
	}
	c.Screen = c.clampScreenToWall(engine.ValidateScreenSize(catalog.Dimensions{
		Width:  c.Screen.Width + float64(dx)*c.BaseUnit.Width,
		Height: c.Screen.Height + float64(dy)*c.BaseUnit.Height,
	}, c.BaseUnit))
}

// clampScreenToWall caps a requested screen size so the unit-quantized
// actual size still fits the wall. The cap is computed in whole units,
// not meters, so float noise at exact unit multiples cannot push the
// quantized size past the wall. When the wall cannot hold even one unit
// the one-unit floor wins; the wall setters then refuse to shrink below
// it.
func (c *DisplayConfiguration) clampScreenToWall(size catalog.Dimensions) catalog.Dimensions {
	maxUnitsW := engine.UnitsThatFit(c.Wall.Width, c.BaseUnit.Width)
	maxUnitsH := engine.UnitsThatFit(c.Wall.Height, c.BaseUnit.Height)
	count := engine.UnitCountFor(size, c.BaseUnit)

	if maxUnitsW >= 1 && count.Horizontal > maxUnitsW {
		size.Width = float64(maxUnitsW) * c.BaseUnit.Width
	}
	if maxUnitsH >= 1 && count.Vertical > maxUnitsH {
		size.Height = float64(maxUnitsH) * c.BaseUnit.Height
	}
	return size
}

// SetWallWidth sets the wall width, clamped to the 1m floor and to the
// current actual screen width. A shrink below the screen is rejected by
// clamping, never applied transiently: the screen-fits-in-wall invariant
// holds after every mutation.
func (c *DisplayConfiguration) SetWallWidth(width float64) {
	validated := engine.ValidateWallSize(catalog.Dimensions{Width: width, Height: c.Wall.Height})
	if actual := c.ActualScreenSize(); validated.Width < actual.Width {
		validated.Width = actual.Width
	}
	c.Wall.Width = validated.Width
}

// SetWallHeight sets the wall height with the same clamping rules as
// SetWallWidth.
func (c *DisplayConfiguration) SetWallHeight(height float64) {
	validated := engine.ValidateWallSize(catalog.Dimensions{Width: c.Wall.Width, Height: height})
	if actual := c.ActualScreenSize(); validated.Height < actual.Height {
		validated.Height = actual.Height
	}
	c.Wall.Height = validated.Height
}

// StepWallWidth adjusts the wall width by stepper increments.
func (c *DisplayConfiguration) StepWallWidth(delta int) {
	c.SetWallWidth(c.Wall.Width + float64(delta)*WallStep)
}

// StepWallHeight adjusts the wall height by stepper increments.
func (c *DisplayConfiguration) StepWallHeight(delta int) {
	c.SetWallHeight(c.Wall.Height + float64(delta)*WallStep)
}

// SetResolutionMode switches between Custom sizing and pixel-target
// modes. Entering FHD/UHD derives the screen size from the target;
// returning to Custom keeps the derived size as the new request.
func (c *DisplayConfiguration) SetResolutionMode(mode engine.ResolutionMode) {
	c.Mode = mode
	c.applyMode()
}

func (c *DisplayConfiguration) applyMode() {
	if !c.Configured() {
		return
	}
	if _, targeted := c.Mode.TargetResolution(); !targeted {
		return
	}
	c.Screen = engine.ScreenSizeFromResolution(*c.Model, c.Mode, c.Screen)

	// The derived size is read-only to the user, so the wall grows to
	// keep the screen-fits-in-wall invariant instead of clamping the
	// screen.
	if actual := c.ActualScreenSize(); actual.Width > c.Wall.Width || actual.Height > c.Wall.Height {
		c.Wall.Width = max(c.Wall.Width, actual.Width)
		c.Wall.Height = max(c.Wall.Height, actual.Height)
	}
}

// MoveScreen applies a drag offset, clamped so the rendered screen stays
// within the given container.
func (c *DisplayConfiguration) MoveScreen(offset engine.PixelOffset, container engine.PixelSize) {
	image := engine.ScreenImageSize(container, c.Wall, c.ActualScreenSize())
	c.Offset = engine.ClampOffset(offset, container, image)
}

// ResetPosition recenters the screen.
func (c *DisplayConfiguration) ResetPosition() {
	c.Offset = engine.PixelOffset{}
}
