package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/LumenWall/internal/catalog"
)

// PowerDrawResult holds the computed installation power figures in watts.
type PowerDrawResult struct {
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// PowerDraw scales a model's power rating to the configured screen.
// Video wall panels are rated per physical unit, so power scales by unit
// count; LED cabinets and modules are rated per square meter, so power
// scales by screen area.
func PowerDraw(spec catalog.ModelSpec, totalUnits int, screenArea float64) PowerDrawResult {
	if spec.IsVideoWall() {
		n := float64(totalUnits)
		return PowerDrawResult{
			Max:     spec.Power.Max * n,
			Average: spec.Power.Average * n,
		}
	}
	return PowerDrawResult{
		Max:     spec.Power.Max * screenArea,
		Average: spec.Power.Average * screenArea,
	}
}

// powerBudgetStep is the installer power budgeting granularity: LED wall
// supply circuits are provisioned in 500 W increments.
const powerBudgetStep = 500.0

// FormatPower renders a watt value for the spec sheet. Video wall power
// is shown as rated; LED wall power is rounded up to the next 500 W step
// for installation budgeting. Non-positive power returns ok=false so the
// caller omits the field instead of printing "0 W".
func FormatPower(power float64, isVideoWall bool) (string, bool) {
	if power <= 0 {
		return "", false
	}

	watts := math.Round(power)
	if !isVideoWall {
		watts = math.Ceil(power/powerBudgetStep) * powerBudgetStep
	}
	return formatWatts(watts), true
}

// formatWatts renders a watt value with dot thousands separators, e.g.
// 12500 -> "12.500 W".
func formatWatts(watts float64) string {
	n := int64(watts)
	s := fmt.Sprintf("%d", n)
	if n < 1000 {
		return s + " W"
	}

	var out []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digit)
	}
	return string(out) + " W"
}
