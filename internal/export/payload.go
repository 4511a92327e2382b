// Package export turns a display configuration into its external
// artifacts: the immutable quote payload, the multi-page PDF spec sheet
// and the DXF installation drawing. All derived numbers come from the
// same engine calls as the live canvas so the documents always match the
// preview.
package export

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/piwi3910/LumenWall/internal/catalog"
	"github.com/piwi3910/LumenWall/internal/engine"
	"github.com/piwi3910/LumenWall/internal/model"
)

// Contact holds the quote form fields supplied at export time.
type Contact struct {
	Project string `json:"project"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ScreenConfig carries the screen figures pre-formatted for display:
// meters with three decimals, area in square meters.
type ScreenConfig struct {
	Width  string `json:"width"`
	Height string `json:"height"`
	Area   string `json:"area"`
}

// WallConfig carries the wall figures formatted to one decimal.
type WallConfig struct {
	Width  string `json:"width"`
	Height string `json:"height"`
}

// ProcessedValues holds every display-ready derived string. Numeric
// fields destined for rendering are formatted here exactly once; the PDF
// layer never formats numbers itself.
type ProcessedValues struct {
	TotalWeight    string `json:"total_weight,omitempty"`
	MaxPower       string `json:"max_power,omitempty"`
	AveragePower   string `json:"average_power,omitempty"`
	Resolution     string `json:"resolution"`
	AspectRatio    string `json:"aspect_ratio"`
	Processor      string `json:"processor,omitempty"`
	ConnectionType string `json:"connection_type,omitempty"`
	UnitLabel      string `json:"unit_label"`
}

// Calculations is the derived block of the payload.
type Calculations struct {
	UnitCount         engine.UnitCount   `json:"unit_count"`
	TotalUnits        int                `json:"total_units"`
	ActualScreenSize  catalog.Dimensions `json:"actual_screen_size"`
	ResolutionPerUnit catalog.Resolution `json:"resolution_per_unit"`
	TotalWeight       float64            `json:"total_weight"`
	BaseDimensions    catalog.Dimensions `json:"base_dimensions"`
	ProcessedValues   ProcessedValues    `json:"processed_values"`
}

// Components names which presentation variant the document renderer
// uses for the display family.
type Components struct {
	SpecConfig  string `json:"spec_config"`
	SpecDefault string `json:"spec_default"`
}

// Payload is the immutable export snapshot. Once built it never re-syncs
// with the live configuration; the PDF and DXF renderers consume it as
// is.
type Payload struct {
	Reference    string              `json:"reference"`
	Contact      Contact             `json:"contact"`
	DisplayType  string              `json:"display_type"`
	ModelData    catalog.ModelRecord `json:"model_data"`
	IsVideoWall  bool                `json:"is_video_wall"`
	ScreenConfig ScreenConfig        `json:"screen_config"`
	WallConfig   WallConfig          `json:"wall_config"`
	Calculations Calculations        `json:"calculations"`
	Components   Components          `json:"components"`

	// Wall keeps the unformatted dimensions for the document renderers;
	// the serialized contract carries only the formatted strings.
	Wall catalog.Dimensions `json:"-"`
}

// Snapshot builds the export payload for the current configuration.
// Returns nil when the configuration is incomplete; the caller surfaces
// the validation message.
func Snapshot(cfg *model.DisplayConfiguration, contact Contact) *Payload {
	results := cfg.Results()
	if results == nil {
		return nil
	}
	spec := *cfg.Model

	actual := results.ActualScreenSize
	draw := engine.PowerDraw(spec, results.TotalUnits, actual.Area())

	processed := ProcessedValues{
		Resolution: fmt.Sprintf("%d x %d px",
			results.ResolutionPerUnit.Width, results.ResolutionPerUnit.Height),
		AspectRatio: engine.AspectRatio(results.ResolutionPerUnit),
		UnitLabel:   spec.Record.Family.String(),
	}
	if results.TotalWeight > 0 {
		processed.TotalWeight = fmt.Sprintf("%.1f kg", results.TotalWeight)
	}
	if s, ok := engine.FormatPower(draw.Max, spec.IsVideoWall()); ok {
		processed.MaxPower = s
	}
	if s, ok := engine.FormatPower(draw.Average, spec.IsVideoWall()); ok {
		processed.AveragePower = s
	}

	current := catalog.CurrentResolution(spec, cfg.Screen)
	rec := catalog.Recommend(catalog.Processors, current.Pixels())
	processed.Processor = rec.String()
	if rec.Status == catalog.Found {
		processed.ConnectionType = string(rec.Connection.Type)
	}

	return &Payload{
		Reference:   uuid.New().String()[:8],
		Contact:     contact,
		DisplayType: spec.Record.Family.String(),
		ModelData:   spec.Record,
		IsVideoWall: spec.IsVideoWall(),
		ScreenConfig: ScreenConfig{
			Width:  fmt.Sprintf("%.3f", actual.Width),
			Height: fmt.Sprintf("%.3f", actual.Height),
			Area:   fmt.Sprintf("%.3f", actual.Area()),
		},
		WallConfig: WallConfig{
			Width:  fmt.Sprintf("%.1f", cfg.Wall.Width),
			Height: fmt.Sprintf("%.1f", cfg.Wall.Height),
		},
		Calculations: Calculations{
			UnitCount:         results.UnitCount,
			TotalUnits:        results.TotalUnits,
			ActualScreenSize:  results.ActualScreenSize,
			ResolutionPerUnit: results.ResolutionPerUnit,
			TotalWeight:       results.TotalWeight,
			BaseDimensions:    results.BaseDimensions,
			ProcessedValues:   processed,
		},
		Components: componentsFor(spec.Record.Family),
		Wall:       cfg.Wall,
	}
}

// componentsFor selects the presentation variant pair per display
// family.
func componentsFor(family catalog.DisplayFamily) Components {
	switch family {
	case catalog.FamilyVideoWall:
		return Components{SpecConfig: "videowall-spec", SpecDefault: "videowall-default"}
	case catalog.FamilyModule:
		return Components{SpecConfig: "module-spec", SpecDefault: "module-default"}
	default:
		return Components{SpecConfig: "cabinet-spec", SpecDefault: "cabinet-default"}
	}
}
