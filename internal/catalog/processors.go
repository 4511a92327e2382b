package catalog

import (
	"math"
	"sort"
)

// ProcessorSeries groups video processors by market tier.
type ProcessorSeries string

const (
	SeriesVX ProcessorSeries = "VX" // all-in-one controllers, mid tier
	SeriesH  ProcessorSeries = "H"  // splicing processors, premium tier
	SeriesTB ProcessorSeries = "TB" // multimedia players, entry tier
)

// ConnectionType is a processor output technology. Each carries its own
// pixel-capacity ceiling.
type ConnectionType string

const (
	ConnectionLAN      ConnectionType = "lan"
	ConnectionFiber    ConnectionType = "fiber"
	ConnectionEnhanced ConnectionType = "enhanced"
)

// Processor is a static catalog entry describing a video processor and
// the pixel capacity of each of its output connection types. Entries are
// read-only reference data, never mutated at runtime.
type Processor struct {
	ID            int                    `json:"id"`
	Name          string                 `json:"name"`
	Series        ProcessorSeries        `json:"series"`
	MaxResolution map[ConnectionType]int `json:"max_resolution"`
}

// Connection pairs a connection type with its pixel capacity.
type Connection struct {
	Type     ConnectionType `json:"type"`
	Capacity int            `json:"capacity"`
}

// ConnectionTypes lists the processor's connections sorted ascending by
// capacity (ties broken by type name for determinism).
func (p Processor) ConnectionTypes() []Connection {
	conns := make([]Connection, 0, len(p.MaxResolution))
	for t, c := range p.MaxResolution {
		conns = append(conns, Connection{Type: t, Capacity: c})
	}
	sort.Slice(conns, func(i, j int) bool {
		if conns[i].Capacity != conns[j].Capacity {
			return conns[i].Capacity < conns[j].Capacity
		}
		return conns[i].Type < conns[j].Type
	})
	return conns
}

// HighestCapacity returns the maximum pixel capacity across the
// processor's connection types.
func (p Processor) HighestCapacity() int {
	best := 0
	for _, c := range p.MaxResolution {
		if c > best {
			best = c
		}
	}
	return best
}

// Supports reports whether the processor can drive the given total pixel
// resolution on at least one of its connections.
func (p Processor) Supports(resolution int) bool {
	return resolution <= p.HighestCapacity()
}

// BestConnectionType picks the smallest connection whose capacity still
// covers the resolution. When none covers it the largest available
// connection is returned as a best effort.
func (p Processor) BestConnectionType(resolution int) Connection {
	conns := p.ConnectionTypes()
	if len(conns) == 0 {
		return Connection{}
	}
	for _, c := range conns {
		if resolution <= c.Capacity {
			return c
		}
	}
	return conns[len(conns)-1]
}

// AvailableProcessors filters the catalog for processors compatible with
// the given resolution using tiered selection: whenever any entry/mid
// tier processor (TB or VX series) suffices, the premium H series is
// suppressed entirely; the H series only surfaces when it is the only
// compatible option. The result is sorted ascending by catalog ID.
func AvailableProcessors(processors []Processor, resolution int) []Processor {
	var standard, premium []Processor
	for _, p := range processors {
		if !p.Supports(resolution) {
			continue
		}
		if p.Series == SeriesH {
			premium = append(premium, p)
		} else {
			standard = append(standard, p)
		}
	}

	result := standard
	if len(result) == 0 {
		result = premium
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// RecommendationStatus tags the outcome of a processor recommendation.
type RecommendationStatus int

const (
	// NotConfigured means no resolution has been computed yet (display
	// not configured); the UI should omit the processor row entirely.
	NotConfigured RecommendationStatus = iota
	// Incompatible means a positive resolution exceeds every catalog
	// entry's highest capacity.
	Incompatible
	// Found means a concrete processor was selected.
	Found
)

// Recommendation is the result of a processor lookup. Exactly one of the
// three states applies; Processor and Connection are only set for Found.
type Recommendation struct {
	Status     RecommendationStatus
	Processor  *Processor
	Connection Connection
}

// String renders the recommendation for display and export. The
// Incompatible wording is part of the export payload contract.
func (r Recommendation) String() string {
	switch r.Status {
	case Found:
		return r.Processor.Name
	case Incompatible:
		return "no compatible processor"
	default:
		return ""
	}
}

// Recommend selects the lowest-ID processor from the tiered compatible
// set. A zero or negative resolution yields NotConfigured; a positive
// resolution no catalog entry can drive yields Incompatible.
func Recommend(processors []Processor, resolution int) Recommendation {
	if resolution <= 0 {
		return Recommendation{Status: NotConfigured}
	}
	available := AvailableProcessors(processors, resolution)
	if len(available) == 0 {
		return Recommendation{Status: Incompatible}
	}
	best := available[0]
	return Recommendation{
		Status:     Found,
		Processor:  &best,
		Connection: best.BestConnectionType(resolution),
	}
}

// CurrentResolution computes the total pixel resolution of a screen of
// the given size built from the given base unit, for processor sizing.
// Unit counts are rounded to nearest here, not rounded up as in the unit
// count calculator; the two deliberately stay distinct (processor sizing
// follows the nominal requested screen, quoting follows the quantized
// one).
func CurrentResolution(spec ModelSpec, screen Dimensions) Resolution {
	if spec.BaseUnit.IsZero() || spec.UnitResolution.IsZero() {
		return Resolution{}
	}

	unitsH := int(math.Round(screen.Width / spec.BaseUnit.Width))
	unitsV := int(math.Round(screen.Height / spec.BaseUnit.Height))

	return Resolution{
		Width:  spec.UnitResolution.Width * unitsH,
		Height: spec.UnitResolution.Height * unitsV,
	}
}
