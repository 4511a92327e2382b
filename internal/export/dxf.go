package export

import (
	"fmt"

	"github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"
	dxftable "github.com/yofu/dxf/table"

	"github.com/piwi3910/LumenWall/internal/engine"
)

// ExportDXF writes an installation drawing for the configured wall:
// wall outline, screen rectangle and the cabinet grid, with dimension
// texts. Coordinates are millimeters with the wall's bottom-left corner
// at the origin, the convention installers expect from site drawings.
func ExportDXF(path string, payload *Payload) error {
	if payload == nil {
		return fmt.Errorf("configuration incomplete, nothing to export")
	}

	wallW := payload.Wall.Width * 1000
	wallH := payload.Wall.Height * 1000
	screen := payload.Calculations.ActualScreenSize
	screenW := screen.Width * 1000
	screenH := screen.Height * 1000

	// Screen centered on the wall.
	screenX := (wallW - screenW) / 2
	screenY := (wallH - screenH) / 2

	drawing := dxf.NewDrawing()

	if _, err := drawing.AddLayer("WALL", dxfcolor.White, dxftable.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add wall layer: %w", err)
	}
	drawing.LwPolyline(true,
		[]float64{0, 0},
		[]float64{wallW, 0},
		[]float64{wallW, wallH},
		[]float64{0, wallH},
	)

	if _, err := drawing.AddLayer("SCREEN", dxfcolor.Green, dxftable.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add screen layer: %w", err)
	}
	drawing.LwPolyline(true,
		[]float64{screenX, screenY},
		[]float64{screenX + screenW, screenY},
		[]float64{screenX + screenW, screenY + screenH},
		[]float64{screenX, screenY + screenH},
	)

	// Cabinet grid as individual divider lines.
	if _, err := drawing.AddLayer("GRID", dxfcolor.Cyan, dxftable.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add grid layer: %w", err)
	}
	lines := engine.BezelLinesFor(payload.Calculations.UnitCount)
	for _, fx := range lines.Vertical {
		x := screenX + screenW*fx
		drawing.Line(x, screenY, 0, x, screenY+screenH, 0)
	}
	for _, fy := range lines.Horizontal {
		y := screenY + screenH*fy
		drawing.Line(screenX, y, 0, screenX+screenW, y, 0)
	}

	if _, err := drawing.AddLayer("DIMENSIONS", dxfcolor.Yellow, dxftable.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add dimension layer: %w", err)
	}
	textHeight := wallH / 40
	drawing.Text(fmt.Sprintf("WALL %.0f x %.0f mm", wallW, wallH),
		0, -2*textHeight, 0, textHeight)
	drawing.Text(fmt.Sprintf("SCREEN %.0f x %.0f mm (%d x %d %ss)",
		screenW, screenH,
		payload.Calculations.UnitCount.Horizontal, payload.Calculations.UnitCount.Vertical,
		payload.Calculations.ProcessedValues.UnitLabel),
		0, -4*textHeight, 0, textHeight)
	drawing.Text("REF "+payload.Reference, 0, -6*textHeight, 0, textHeight)

	if err := drawing.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF: %w", err)
	}
	return nil
}
