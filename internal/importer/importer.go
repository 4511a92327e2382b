// Package importer provides CSV and Excel import of model catalog
// records. It supports automatic delimiter detection, flexible column
// mapping and case-insensitive header recognition, so vendor price
// lists can be loaded without reshaping.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/LumenWall/internal/catalog"
)

// ImportResult holds the records and diagnostics of an import run.
type ImportResult struct {
	Models   []catalog.ModelRecord
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the
// data. -1 marks an absent column.
type ColumnMapping struct {
	Name             int
	Family           int
	PixelPitch       int
	CabinetSize      int
	ModuleSize       int
	UnitSize         int
	CabinetWeight    int
	ModuleWeight     int
	CabinetRes       int
	ModuleRes        int
	Resolution       int
	PowerConsumption int
	Brightness       int
	RefreshRate      int
}

// headerAliases maps canonical column roles to their accepted aliases
// (all lowercase).
var headerAliases = map[string][]string{
	"name":        {"name", "model", "model name", "product", "type"},
	"family":      {"family", "display type", "category", "kind"},
	"pitch":       {"pixel pitch", "pitch", "pixel_pitch"},
	"cabinetsize": {"cabinet size", "cabinet_size", "cabinet dimensions"},
	"modulesize":  {"module size", "module_size", "module dimensions"},
	"unitsize":    {"unit size", "unit_size_mm", "panel size", "display size"},
	"cabinetwt":   {"cabinet weight", "cabinet_weight"},
	"modulewt":    {"module weight", "module_weight"},
	"cabinetres":  {"cabinet resolution", "cabinet_resolution"},
	"moduleres":   {"module resolution", "module_resolution"},
	"resolution":  {"resolution", "panel resolution", "native resolution"},
	"power":       {"power", "power consumption", "power_consumption"},
	"brightness":  {"brightness", "nits"},
	"refresh":     {"refresh rate", "refresh_rate", "refresh"},
}

// DetectCSVDelimiter determines the most likely CSV delimiter by trying
// comma, semicolon, tab and pipe; the candidate producing the most
// consistent multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping. The
// match is case-insensitive against the known aliases. Returns false
// when the row does not look like a header.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name: -1, Family: -1, PixelPitch: -1,
		CabinetSize: -1, ModuleSize: -1, UnitSize: -1,
		CabinetWeight: -1, ModuleWeight: -1,
		CabinetRes: -1, ModuleRes: -1, Resolution: -1,
		PowerConsumption: -1, Brightness: -1, RefreshRate: -1,
	}

	set := func(target *int, i int) {
		if *target == -1 {
			*target = i
		}
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "name":
					set(&mapping.Name, i)
				case "family":
					set(&mapping.Family, i)
				case "pitch":
					set(&mapping.PixelPitch, i)
				case "cabinetsize":
					set(&mapping.CabinetSize, i)
				case "modulesize":
					set(&mapping.ModuleSize, i)
				case "unitsize":
					set(&mapping.UnitSize, i)
				case "cabinetwt":
					set(&mapping.CabinetWeight, i)
				case "modulewt":
					set(&mapping.ModuleWeight, i)
				case "cabinetres":
					set(&mapping.CabinetRes, i)
				case "moduleres":
					set(&mapping.ModuleRes, i)
				case "resolution":
					set(&mapping.Resolution, i)
				case "power":
					set(&mapping.PowerConsumption, i)
				case "brightness":
					set(&mapping.Brightness, i)
				case "refresh":
					set(&mapping.RefreshRate, i)
				}
			}
		}
	}

	return mapping, isHeader
}

// parseFamily converts a display family string to a DisplayFamily.
func parseFamily(s string) (catalog.DisplayFamily, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cabinet", "led", "led cabinet", "indoor", "outdoor", "":
		return catalog.FamilyCabinet, true
	case "module", "led module":
		return catalog.FamilyModule, true
	case "video wall", "videowall", "vw", "lcd":
		return catalog.FamilyVideoWall, true
	default:
		return catalog.FamilyCabinet, false
	}
}

// getCell safely retrieves a trimmed cell value; out-of-range or
// negative indices yield "".
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseRow extracts a ModelRecord from a row. Returns the record, an
// error message and a warning message; error and record are mutually
// exclusive.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (catalog.ModelRecord, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		return catalog.ModelRecord{}, fmt.Sprintf("%s: Missing model name", rowLabel), ""
	}

	var warning string
	family, ok := parseFamily(getCell(row, mapping.Family))
	if !ok {
		warning = fmt.Sprintf("%s: Unknown display family '%s', defaulting to Cabinet",
			rowLabel, getCell(row, mapping.Family))
	}

	record := catalog.NewModelRecord(name, family)
	record.PixelPitch = getCell(row, mapping.PixelPitch)
	record.CabinetSize = getCell(row, mapping.CabinetSize)
	record.ModuleSize = getCell(row, mapping.ModuleSize)
	record.UnitSizeMM = getCell(row, mapping.UnitSize)
	record.CabinetWeight = getCell(row, mapping.CabinetWeight)
	record.ModuleWeight = getCell(row, mapping.ModuleWeight)
	record.CabinetResolution = getCell(row, mapping.CabinetRes)
	record.ModuleResolution = getCell(row, mapping.ModuleRes)
	record.Resolution = getCell(row, mapping.Resolution)
	record.PowerConsumption = getCell(row, mapping.PowerConsumption)
	record.Brightness = getCell(row, mapping.Brightness)
	record.RefreshRate = getCell(row, mapping.RefreshRate)

	// A record that parses to no usable base unit can never be
	// configured; reject it here instead of surfacing a dead entry.
	if catalog.BaseDimensions(record).IsZero() {
		return catalog.ModelRecord{}, fmt.Sprintf("%s: No parsable unit size for '%s'", rowLabel, name), ""
	}

	return record, "", warning
}

// ImportCSV imports model records from a CSV file with automatic
// delimiter detection.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports model records from a CSV reader with a
// known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports model records from the first sheet of an Excel
// file.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import path for CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	if !hasHeader {
		result.Errors = append(result.Errors,
			"No recognizable header row found; expected columns like Name, Cabinet Size, Power")
		return result
	}
	if mapping.Name == -1 {
		result.Errors = append(result.Errors, "Missing required column: Name")
		return result
	}
	if mapping.CabinetSize == -1 && mapping.ModuleSize == -1 && mapping.UnitSize == -1 {
		result.Errors = append(result.Errors,
			"Missing size column: need one of Cabinet Size, Module Size or Unit Size")
		return result
	}

	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+2)
		record, errMsg, warnMsg := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warnMsg != "" {
			result.Warnings = append(result.Warnings, warnMsg)
		}
		result.Models = append(result.Models, record)
	}

	if len(result.Models) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
	}

	return result
}
