package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// Catalog strings come in a handful of loosely standardized encodings
// copied from vendor datasheets. The patterns below are deliberately
// permissive: a string that matches none of them parses to zero, which
// downstream code treats as "not configured".
var (
	// "1,209.6 (W) x 680.4 (H)" — video wall panels, values in mm.
	labeledSizeRe = regexp.MustCompile(`([\d,]+(?:\.\d+)?)\s*\(W\)\s*[xX×]\s*([\d,]+(?:\.\d+)?)\s*\(H\)`)

	// "640*480mm", "640x480", "960 x 960 mm" — cabinets and modules.
	plainSizeRe = regexp.MustCompile(`([\d,]+(?:\.\d+)?)\s*[*xX×]\s*([\d,]+(?:\.\d+)?)\s*(?:mm)?`)

	weightRe = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

	// "256x192", "1920 × 1080", "3840-2160" — pixel resolutions.
	resolutionRe = regexp.MustCompile(`(?i)(\d+)\s*[xX×*\-–]\s*(\d+)`)

	// "Max: 500W/m², Average: 300W/m²" (separator and casing vary).
	powerRe = regexp.MustCompile(`(?i)Max:\s*(\d+)\s*W/m².*?Average[;:]?\s*(\d+)\s*W/m²`)
)

// ParseDimensions parses a physical size string into meters. Three
// encodings are accepted: "640 (W) x 480 (H)", "640*480mm" and
// "640x480" (optional mm suffix, optional thousands commas). The raw
// numbers are millimeters in every encoding, so results are divided by
// 1000. Unparsable input yields {0, 0}.
func ParseDimensions(sizeString string) Dimensions {
	s := strings.TrimSpace(sizeString)
	if s == "" {
		return Dimensions{}
	}

	if m := labeledSizeRe.FindStringSubmatch(s); m != nil {
		return Dimensions{
			Width:  parseMillimeters(m[1]),
			Height: parseMillimeters(m[2]),
		}
	}

	if m := plainSizeRe.FindStringSubmatch(s); m != nil {
		return Dimensions{
			Width:  parseMillimeters(m[1]),
			Height: parseMillimeters(m[2]),
		}
	}

	return Dimensions{}
}

func parseMillimeters(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v / 1000.0
}

// ParseWeight extracts the first decimal number from a weight string such
// as "7.8kg/pcs" and returns it in kilograms. Returns 0 when no number
// is present.
func ParseWeight(weightString string) float64 {
	m := weightRe.FindStringSubmatch(weightString)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseResolution extracts an "<int> x <int>" pixel pair. The separator
// is tolerant of x/X/×/*/dash variants. Returns {0, 0} on failure.
func ParseResolution(resolutionString string) Resolution {
	m := resolutionRe.FindStringSubmatch(resolutionString)
	if m == nil {
		return Resolution{}
	}
	w, errW := strconv.Atoi(m[1])
	h, errH := strconv.Atoi(m[2])
	if errW != nil || errH != nil {
		return Resolution{}
	}
	return Resolution{Width: w, Height: h}
}

// ParsePowerConsumption parses a "Max: 500W/m², Average: 300W/m²" style
// string. Returns {0, 0} when the pattern does not match.
func ParsePowerConsumption(powerString string) PowerRating {
	m := powerRe.FindStringSubmatch(powerString)
	if m == nil {
		return PowerRating{}
	}
	max, _ := strconv.ParseFloat(m[1], 64)
	avg, _ := strconv.ParseFloat(m[2], 64)
	return PowerRating{Max: max, Average: avg}
}

// BaseDimensions selects and parses the record's physical unit size.
// Precedence is cabinet over module over video-wall panel: a record that
// publishes both a cabinet and a module size is configured by cabinet.
func BaseDimensions(r ModelRecord) Dimensions {
	switch {
	case r.CabinetSize != "":
		return ParseDimensions(r.CabinetSize)
	case r.ModuleSize != "":
		return ParseDimensions(r.ModuleSize)
	case r.UnitSizeMM != "":
		return ParseDimensions(r.UnitSizeMM)
	}
	return Dimensions{}
}

// WeightField returns the raw weight string for the record, preferring
// cabinet weight over module weight. Video wall panels publish no weight;
// the second return is false when no field is present.
func WeightField(r ModelRecord) (string, bool) {
	switch {
	case r.CabinetWeight != "":
		return r.CabinetWeight, true
	case r.ModuleWeight != "":
		return r.ModuleWeight, true
	}
	return "", false
}

// ResolutionField returns the raw per-unit resolution string, preferring
// cabinet over module over the generic video-wall resolution field.
func ResolutionField(r ModelRecord) string {
	switch {
	case r.CabinetResolution != "":
		return r.CabinetResolution
	case r.ModuleResolution != "":
		return r.ModuleResolution
	}
	return r.Resolution
}
