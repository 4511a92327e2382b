package engine

import (
	"math"

	"github.com/piwi3910/LumenWall/internal/catalog"
)

// DeviceClass selects the rendering surface tier. The live canvas picks
// one from the window size; the PDF export always renders at the
// desktop tier so the document matches the on-screen preview.
type DeviceClass int

const (
	DeviceMobile DeviceClass = iota
	DeviceTablet
	DeviceDesktop
)

// Maximum container bounds per device class, in pixels.
const (
	mobileMaxWidth   = 340.0
	mobileMaxHeight  = 260.0
	tabletMaxWidth   = 620.0
	tabletMaxHeight  = 420.0
	desktopMaxWidth  = 900.0
	desktopMaxHeight = 540.0
)

// Minimum on-screen height of the human silhouette per device class, so
// the scale reference stays visible on very tall walls.
const (
	mobileMinSilhouette  = 24.0
	tabletMinSilhouette  = 32.0
	desktopMinSilhouette = 40.0
)

func (d DeviceClass) maxBounds() (w, h float64) {
	switch d {
	case DeviceMobile:
		return mobileMaxWidth, mobileMaxHeight
	case DeviceTablet:
		return tabletMaxWidth, tabletMaxHeight
	default:
		return desktopMaxWidth, desktopMaxHeight
	}
}

func (d DeviceClass) minSilhouette() float64 {
	switch d {
	case DeviceMobile:
		return mobileMinSilhouette
	case DeviceTablet:
		return tabletMinSilhouette
	default:
		return desktopMinSilhouette
	}
}

// PixelSize is a rendered size in pixels.
type PixelSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PixelOffset is a rendered position in pixels.
type PixelOffset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ContainerSize fits the wall into the device's maximum bounds while
// preserving the wall's aspect ratio: fit by width first, and when the
// resulting height overflows, refit by height instead.
func ContainerSize(wall catalog.Dimensions, device DeviceClass) PixelSize {
	maxW, maxH := device.maxBounds()
	if wall.Width <= 0 || wall.Height <= 0 {
		return PixelSize{Width: maxW, Height: maxH}
	}

	width := maxW
	height := width * (wall.Height / wall.Width)
	if height > maxH {
		height = maxH
		width = height * (wall.Width / wall.Height)
	}
	return PixelSize{Width: width, Height: height}
}

// screenSafetyMargin keeps the rendered screen off the container edge.
const screenSafetyMargin = 0.95

// ScreenImageSize maps the actual screen size onto the rendered wall
// container: container times the screen/wall ratio per axis, clamped to
// 95% of the container. When one axis is clamped the other is recomputed
// from the screen's own aspect ratio so the image never distorts.
func ScreenImageSize(container PixelSize, wall, screen catalog.Dimensions) PixelSize {
	if wall.Width <= 0 || wall.Height <= 0 || screen.Width <= 0 || screen.Height <= 0 {
		return PixelSize{}
	}

	width := container.Width * (screen.Width / wall.Width)
	height := container.Height * (screen.Height / wall.Height)

	maxW := container.Width * screenSafetyMargin
	maxH := container.Height * screenSafetyMargin
	aspect := screen.Width / screen.Height

	if width > maxW {
		width = maxW
		height = width / aspect
	}
	if height > maxH {
		height = maxH
		width = height * aspect
	}
	return PixelSize{Width: width, Height: height}
}

// SideMeasurements is the leftover wall space around a centered screen,
// in meters, used for the dashed measurement annotations.
type SideMeasurements struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Measurements returns the remaining wall on each side of a centered
// screen: (wall - screen) / 2 per axis. Negative values are clamped to
// zero (the screen never legitimately exceeds the wall).
func Measurements(wall, screen catalog.Dimensions) SideMeasurements {
	horizontal := math.Max(0, (wall.Width-screen.Width)/2)
	vertical := math.Max(0, (wall.Height-screen.Height)/2)
	return SideMeasurements{
		Left:   horizontal,
		Right:  horizontal,
		Top:    vertical,
		Bottom: vertical,
	}
}

// humanHeight is the real-world height of the scale silhouette.
const humanHeight = 1.7 // meters

// SilhouetteHeight returns the rendered pixel height of the human-scale
// silhouette, floored to the device minimum so it stays visible on tall
// walls.
func SilhouetteHeight(containerHeight, wallHeight float64, device DeviceClass) float64 {
	if wallHeight <= 0 {
		return device.minSilhouette()
	}
	h := containerHeight * (humanHeight / wallHeight)
	return math.Max(device.minSilhouette(), h)
}

// BezelLines holds the divider positions between units on the rendered
// screen image, as fractional offsets across each axis in (0, 1). A grid
// of N units has N-1 dividers.
type BezelLines struct {
	Vertical   []float64 `json:"vertical"`   // between horizontal units
	Horizontal []float64 `json:"horizontal"` // between vertical units
}

// BezelLinesFor computes evenly spaced divider fractions for a unit
// grid.
func BezelLinesFor(count UnitCount) BezelLines {
	var lines BezelLines
	for i := 1; i < count.Horizontal; i++ {
		lines.Vertical = append(lines.Vertical, float64(i)/float64(count.Horizontal))
	}
	for i := 1; i < count.Vertical; i++ {
		lines.Horizontal = append(lines.Horizontal, float64(i)/float64(count.Vertical))
	}
	return lines
}

// ClampOffset restricts a screen drag offset so the rendered image stays
// fully inside the container. The offset is measured from the centered
// position.
func ClampOffset(offset PixelOffset, container, image PixelSize) PixelOffset {
	maxX := (container.Width - image.Width) / 2
	maxY := (container.Height - image.Height) / 2
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	return PixelOffset{
		X: math.Max(-maxX, math.Min(maxX, offset.X)),
		Y: math.Max(-maxY, math.Min(maxY, offset.Y)),
	}
}
