package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/LumenWall/internal/catalog"
	"github.com/piwi3910/LumenWall/internal/engine"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 8.0
)

// ExportPDF generates the specification/quote document for an export
// payload: a wall diagram page followed by a specification page with the
// quote reference QR code.
func ExportPDF(path string, payload *Payload) error {
	if payload == nil {
		return fmt.Errorf("configuration incomplete, nothing to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderDiagramPage(pdf, payload)

	pdf.AddPage()
	if err := renderSpecPage(pdf, payload); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// renderDiagramPage draws the wall with the configured screen, bezel
// grid, measurement annotations and the human-scale silhouette. The
// proportions come from the same geometry module as the live canvas.
func renderDiagramPage(pdf *fpdf.Fpdf, payload *Payload) {
	wall := payload.Wall
	screen := payload.Calculations.ActualScreenSize

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s — %s m x %s m wall", payload.ModelData.Name,
		payload.WallConfig.Width, payload.WallConfig.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Subtitle line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	sub := fmt.Sprintf("Screen: %s x %s m | Units: %d x %d (%d total)",
		payload.ScreenConfig.Width, payload.ScreenConfig.Height,
		payload.Calculations.UnitCount.Horizontal, payload.Calculations.UnitCount.Vertical,
		payload.Calculations.TotalUnits)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, sub, "", 0, "L", false, 0, "")

	// Wall container scaled into the page draw area. The shared desktop
	// geometry keeps the page consistent with the on-screen preview.
	container := engine.ContainerSize(wall, engine.DeviceDesktop)
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight/2 - drawAreaTop
	scale := drawWidth / container.Width
	if container.Height*scale > drawHeight {
		scale = drawHeight / container.Height
	}

	wallW := container.Width * scale
	wallH := container.Height * scale
	wallX := marginLeft + (drawWidth-wallW)/2
	wallY := drawAreaTop

	// Wall background
	pdf.SetFillColor(235, 235, 230)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.4)
	pdf.Rect(wallX, wallY, wallW, wallH, "FD")

	// Screen rectangle, centered
	image := engine.ScreenImageSize(container, wall, screen)
	screenW := image.Width * scale
	screenH := image.Height * scale
	screenX := wallX + (wallW-screenW)/2
	screenY := wallY + (wallH-screenH)/2

	pdf.SetFillColor(30, 30, 36)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Rect(screenX, screenY, screenW, screenH, "FD")

	// Bezel grid between units
	lines := engine.BezelLinesFor(payload.Calculations.UnitCount)
	pdf.SetDrawColor(90, 90, 96)
	pdf.SetLineWidth(0.2)
	for _, fx := range lines.Vertical {
		x := screenX + screenW*fx
		pdf.Line(x, screenY, x, screenY+screenH)
	}
	for _, fy := range lines.Horizontal {
		y := screenY + screenH*fy
		pdf.Line(screenX, y, screenX+screenW, y)
	}

	drawMeasurements(pdf, payload, wall, wallX, wallY, wallW, wallH, screenX, screenY, screenW, screenH)
	drawSilhouette(pdf, container, wall.Height, scale, wallX, wallY, wallH)
}

// drawMeasurements adds the leftover-wall annotations around the screen
// and the overall wall dimensions outside the rectangle.
func drawMeasurements(pdf *fpdf.Fpdf, payload *Payload, wall catalog.Dimensions,
	wallX, wallY, wallW, wallH, screenX, screenY, screenW, screenH float64) {

	m := engine.Measurements(wall, payload.Calculations.ActualScreenSize)

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetDrawColor(150, 150, 150)
	pdf.SetLineWidth(0.15)
	pdf.SetDashPattern([]float64{1.2, 1.2}, 0)

	midY := screenY + screenH/2
	midX := screenX + screenW/2

	if m.Left > 0.005 {
		pdf.Line(wallX, midY, screenX, midY)
		pdf.Line(wallX+wallW, midY, screenX+screenW, midY)
		leftLabel := fmt.Sprintf("%.2f m", m.Left)
		pdf.SetXY(wallX+1, midY-4)
		pdf.CellFormat(pdf.GetStringWidth(leftLabel), 3, leftLabel, "", 0, "L", false, 0, "")
		pdf.SetXY(screenX+screenW+1, midY-4)
		pdf.CellFormat(pdf.GetStringWidth(leftLabel), 3, leftLabel, "", 0, "L", false, 0, "")
	}
	if m.Top > 0.005 {
		pdf.Line(midX, wallY, midX, screenY)
		pdf.Line(midX, wallY+wallH, midX, screenY+screenH)
		topLabel := fmt.Sprintf("%.2f m", m.Top)
		pdf.SetXY(midX+1, wallY+(screenY-wallY)/2-1.5)
		pdf.CellFormat(pdf.GetStringWidth(topLabel), 3, topLabel, "", 0, "L", false, 0, "")
		pdf.SetXY(midX+1, screenY+screenH+(wallY+wallH-screenY-screenH)/2-1.5)
		pdf.CellFormat(pdf.GetStringWidth(topLabel), 3, topLabel, "", 0, "L", false, 0, "")
	}
	pdf.SetDashPattern([]float64{}, 0)

	// Overall wall dimensions
	pdf.SetFont("Helvetica", "", 8)
	widthLabel := payload.WallConfig.Width + " m"
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(wallX+(wallW-wLabelW)/2, wallY+wallH+2)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := payload.WallConfig.Height + " m"
	pdf.TransformBegin()
	pdf.TransformRotate(90, wallX-3, wallY+wallH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(wallX-3-hLabelW/2, wallY+wallH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawSilhouette renders the 1.7m human scale reference beside the wall.
func drawSilhouette(pdf *fpdf.Fpdf, container engine.PixelSize, wallHeight, scale, wallX, wallY, wallH float64) {
	h := engine.SilhouetteHeight(container.Height, wallHeight, engine.DeviceDesktop) * scale
	w := h * 0.3
	x := wallX - w - 6
	y := wallY + wallH - h

	// Head
	pdf.SetFillColor(120, 120, 120)
	r := w * 0.25
	pdf.Circle(x+w/2, y+r, r, "F")
	// Body
	pdf.RoundedRect(x+w*0.2, y+r*2.2, w*0.6, h-r*2.2, w*0.1, "1234", "F")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(x-2, y+h+1)
	pdf.CellFormat(w+4, 3, "1.70 m", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderSpecPage draws the specification and quote tables plus the
// reference QR code.
func renderSpecPage(pdf *fpdf.Fpdf, payload *Payload) error {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Display Specification", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	y = renderKeyValues(pdf, "Project", y, []row{
		{"Reference", payload.Reference},
		{"Project", payload.Contact.Project},
		{"Contact", payload.Contact.Name},
		{"Phone", payload.Contact.Phone},
		{"Email", payload.Contact.Email},
	})

	calc := payload.Calculations
	pv := calc.ProcessedValues
	y = renderKeyValues(pdf, "Configuration", y, []row{
		{"Model", payload.ModelData.Name},
		{"Display Type", payload.DisplayType},
		{"Wall", fmt.Sprintf("%s x %s m", payload.WallConfig.Width, payload.WallConfig.Height)},
		{"Screen", fmt.Sprintf("%s x %s m", payload.ScreenConfig.Width, payload.ScreenConfig.Height)},
		{"Screen Area", payload.ScreenConfig.Area + " m²"},
		{fmt.Sprintf("%ss", pv.UnitLabel), fmt.Sprintf("%d x %d (%d total)",
			calc.UnitCount.Horizontal, calc.UnitCount.Vertical, calc.TotalUnits)},
	})

	specRows := []row{
		{"Resolution", pv.Resolution},
		{"Aspect Ratio", pv.AspectRatio},
	}
	if pv.TotalWeight != "" {
		specRows = append(specRows, row{"Total Weight", pv.TotalWeight})
	}
	if pv.MaxPower != "" {
		specRows = append(specRows, row{"Max Power", pv.MaxPower})
	}
	if pv.AveragePower != "" {
		specRows = append(specRows, row{"Average Power", pv.AveragePower})
	}
	if pv.Processor != "" {
		specRows = append(specRows, row{"Processor", pv.Processor})
	}
	if pv.ConnectionType != "" {
		specRows = append(specRows, row{"Connection", pv.ConnectionType})
	}
	if payload.ModelData.PixelPitch != "" {
		specRows = append(specRows, row{"Pixel Pitch", payload.ModelData.PixelPitch})
	}
	if payload.ModelData.Brightness != "" {
		specRows = append(specRows, row{"Brightness", payload.ModelData.Brightness})
	}
	if payload.ModelData.RefreshRate != "" {
		specRows = append(specRows, row{"Refresh Rate", payload.ModelData.RefreshRate})
	}
	renderKeyValues(pdf, "Specifications", y, specRows)

	if err := drawReferenceQR(pdf, payload); err != nil {
		return err
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4,
		"Generated by LumenWall - LED Display Wall Configurator", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}

type row struct {
	label string
	value string
}

// renderKeyValues draws a titled label/value block and returns the next
// free y position. Empty values are skipped.
func renderKeyValues(pdf *fpdf.Fpdf, title string, y float64, rows []row) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, title, "", 0, "L", false, 0, "")
	y += 9

	for _, r := range rows {
		if r.value == "" {
			continue
		}
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 6, r.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(100, 6, r.value, "", 0, "L", false, 0, "")
		y += 7
	}
	return y + 5
}

// drawReferenceQR encodes the quote summary as JSON into a QR code in
// the top right corner of the spec page.
func drawReferenceQR(pdf *fpdf.Fpdf, payload *Payload) error {
	summary := map[string]string{
		"reference": payload.Reference,
		"model":     payload.ModelData.Name,
		"wall":      payload.WallConfig.Width + "x" + payload.WallConfig.Height,
		"screen":    payload.ScreenConfig.Width + "x" + payload.ScreenConfig.Height,
		"units":     fmt.Sprintf("%d", payload.Calculations.TotalUnits),
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal quote summary: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	const qrSize = 24.0
	imgName := "qr_" + payload.Reference
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, pageWidth-marginRight-qrSize, marginTop+14, qrSize, qrSize,
		false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(pageWidth-marginRight-qrSize, marginTop+14+qrSize)
	pdf.CellFormat(qrSize, 3, payload.Reference, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}
