package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/LumenWall/internal/catalog"
	"github.com/piwi3910/LumenWall/internal/engine"
	"github.com/piwi3910/LumenWall/internal/model"
)

var (
	wallFillColor     = color.NRGBA{R: 236, G: 236, B: 236, A: 255}
	wallBorderColor   = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	screenFillColor   = color.NRGBA{R: 20, G: 20, B: 30, A: 255}
	screenBorderColor = color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	bezelColor        = color.NRGBA{R: 70, G: 70, B: 80, A: 255}
	measureColor      = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	silhouetteColor   = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
)

// WallCanvas renders the wall, the unit-quantized screen with its bezel
// grid, side measurements and a human silhouette for scale. Dragging the
// canvas moves the screen within the wall.
type WallCanvas struct {
	widget.BaseWidget
	cfg    *model.DisplayConfiguration
	device engine.DeviceClass

	// OnChanged fires after a drag mutates the configuration.
	OnChanged func()
}

func NewWallCanvas(cfg *model.DisplayConfiguration, device engine.DeviceClass) *WallCanvas {
	wc := &WallCanvas{cfg: cfg, device: device}
	wc.ExtendBaseWidget(wc)
	return wc
}

func (wc *WallCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newWallCanvasRenderer(wc)
}

// Dragged moves the screen by the drag delta, clamped to the wall.
func (wc *WallCanvas) Dragged(ev *fyne.DragEvent) {
	if !wc.cfg.Configured() {
		return
	}
	container := engine.ContainerSize(wc.cfg.Wall, wc.device)
	wc.cfg.MoveScreen(engine.PixelOffset{
		X: wc.cfg.Offset.X + float64(ev.Dragged.DX),
		Y: wc.cfg.Offset.Y + float64(ev.Dragged.DY),
	}, container)
	wc.Refresh()
	if wc.OnChanged != nil {
		wc.OnChanged()
	}
}

func (wc *WallCanvas) DragEnd() {}

type wallCanvasRenderer struct {
	wc      *WallCanvas
	objects []fyne.CanvasObject
}

func newWallCanvasRenderer(wc *WallCanvas) *wallCanvasRenderer {
	r := &wallCanvasRenderer{wc: wc}
	r.rebuild()
	return r
}

func (r *wallCanvasRenderer) rebuild() {
	r.objects = nil

	cfg := r.wc.cfg
	container := engine.ContainerSize(cfg.Wall, r.wc.device)
	containerSize := fyne.NewSize(float32(container.Width), float32(container.Height))

	// Wall background and border
	bg := canvas.NewRectangle(wallFillColor)
	bg.Resize(containerSize)
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = wallBorderColor
	border.StrokeWidth = 2
	border.Resize(containerSize)
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	if !cfg.Configured() {
		hint := canvas.NewText("Select a display model to begin", measureColor)
		hint.TextSize = 14
		hint.Move(fyne.NewPos(float32(container.Width)/2-100, float32(container.Height)/2-10))
		r.objects = append(r.objects, hint)
		return
	}

	actual := cfg.ActualScreenSize()
	image := engine.ScreenImageSize(container, cfg.Wall, actual)

	screenX := float32((container.Width-image.Width)/2 + cfg.Offset.X)
	screenY := float32((container.Height-image.Height)/2 + cfg.Offset.Y)
	screenSize := fyne.NewSize(float32(image.Width), float32(image.Height))

	// Screen surface
	screen := canvas.NewRectangle(screenFillColor)
	screen.Resize(screenSize)
	screen.Move(fyne.NewPos(screenX, screenY))
	r.objects = append(r.objects, screen)

	r.drawBezels(cfg.UnitCount(), screenX, screenY, screenSize)

	screenBorder := canvas.NewRectangle(color.Transparent)
	screenBorder.StrokeColor = screenBorderColor
	screenBorder.StrokeWidth = 2
	screenBorder.Resize(screenSize)
	screenBorder.Move(fyne.NewPos(screenX, screenY))
	r.objects = append(r.objects, screenBorder)

	r.drawMeasurements(cfg.Wall, actual, container, screenX, screenY, screenSize)
	r.drawSilhouette(container)
}

// drawBezels draws the divider lines between units on the screen image.
func (r *wallCanvasRenderer) drawBezels(count engine.UnitCount, x, y float32, size fyne.Size) {
	lines := engine.BezelLinesFor(count)
	for _, frac := range lines.Vertical {
		line := canvas.NewLine(bezelColor)
		line.StrokeWidth = 1
		lx := x + size.Width*float32(frac)
		line.Position1 = fyne.NewPos(lx, y)
		line.Position2 = fyne.NewPos(lx, y+size.Height)
		r.objects = append(r.objects, line)
	}
	for _, frac := range lines.Horizontal {
		line := canvas.NewLine(bezelColor)
		line.StrokeWidth = 1
		ly := y + size.Height*float32(frac)
		line.Position1 = fyne.NewPos(x, ly)
		line.Position2 = fyne.NewPos(x+size.Width, ly)
		r.objects = append(r.objects, line)
	}
}

// drawMeasurements annotates the leftover wall space around the screen.
func (r *wallCanvasRenderer) drawMeasurements(wall, actual catalog.Dimensions, container engine.PixelSize, screenX, screenY float32, screenSize fyne.Size) {
	m := engine.Measurements(wall, actual)
	midY := screenY + screenSize.Height/2
	midX := screenX + screenSize.Width/2

	if m.Left > 0.005 {
		line := canvas.NewLine(measureColor)
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(0, midY)
		line.Position2 = fyne.NewPos(screenX, midY)
		r.objects = append(r.objects, line)

		label := canvas.NewText(fmt.Sprintf("%.2f m", m.Left), measureColor)
		label.TextSize = 10
		label.Move(fyne.NewPos(screenX/2-16, midY-14))
		r.objects = append(r.objects, label)
	}

	if m.Top > 0.005 {
		line := canvas.NewLine(measureColor)
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(midX, 0)
		line.Position2 = fyne.NewPos(midX, screenY)
		r.objects = append(r.objects, line)

		label := canvas.NewText(fmt.Sprintf("%.2f m", m.Top), measureColor)
		label.TextSize = 10
		label.Move(fyne.NewPos(midX+4, screenY/2-6))
		r.objects = append(r.objects, label)
	}

	wallLabel := canvas.NewText(
		fmt.Sprintf("Wall %.1f x %.1f m", wall.Width, wall.Height), measureColor)
	wallLabel.TextSize = 10
	wallLabel.Move(fyne.NewPos(4, float32(container.Height)-16))
	r.objects = append(r.objects, wallLabel)
}

// drawSilhouette places a 1.70 m human figure at the bottom-right of the
// wall for scale.
func (r *wallCanvasRenderer) drawSilhouette(container engine.PixelSize) {
	height := float32(engine.SilhouetteHeight(container.Height, r.wc.cfg.Wall.Height, r.wc.device))
	headSize := height * 0.22
	bodyWidth := height * 0.3

	baseX := float32(container.Width) - bodyWidth - 8
	baseY := float32(container.Height)

	head := canvas.NewCircle(silhouetteColor)
	head.Resize(fyne.NewSize(headSize, headSize))
	head.Move(fyne.NewPos(baseX+(bodyWidth-headSize)/2, baseY-height))
	r.objects = append(r.objects, head)

	body := canvas.NewRectangle(silhouetteColor)
	body.Resize(fyne.NewSize(bodyWidth, height-headSize-2))
	body.Move(fyne.NewPos(baseX, baseY-height+headSize+2))
	r.objects = append(r.objects, body)
}

func (r *wallCanvasRenderer) Layout(size fyne.Size)        {}
func (r *wallCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *wallCanvasRenderer) Destroy()                     {}
func (r *wallCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *wallCanvasRenderer) MinSize() fyne.Size {
	container := engine.ContainerSize(r.wc.cfg.Wall, r.wc.device)
	return fyne.NewSize(float32(container.Width), float32(container.Height))
}
