package catalog

// Built-in model catalog. Values follow the vendor datasheets verbatim,
// including their free-form unit strings; Ingest turns them into typed
// specs. User-imported records are merged on top of these at load time.
var Models = []ModelRecord{
	{
		ID:                "lw-p18-in",
		Name:              "Lumen P1.8 Indoor",
		Family:            FamilyCabinet,
		PixelPitch:        "P1.8",
		CabinetSize:       "640*480mm",
		CabinetWeight:     "8.4kg/pcs",
		CabinetResolution: "344x258",
		PowerConsumption:  "Max: 600W/m², Average: 200W/m²",
		Brightness:        "800 nits",
		RefreshRate:       "3840Hz",
	},
	{
		ID:                "lw-p25-in",
		Name:              "Lumen P2.5 Indoor",
		Family:            FamilyCabinet,
		PixelPitch:        "P2.5",
		CabinetSize:       "640*480mm",
		CabinetWeight:     "7.8kg/pcs",
		CabinetResolution: "256x192",
		PowerConsumption:  "Max: 500W/m², Average: 300W/m²",
		Brightness:        "1000 nits",
		RefreshRate:       "3840Hz",
	},
	{
		ID:                "lw-p39-out",
		Name:              "Lumen P3.9 Outdoor",
		Family:            FamilyCabinet,
		PixelPitch:        "P3.9",
		CabinetSize:       "500*500mm",
		CabinetWeight:     "9.5kg/pcs",
		CabinetResolution: "128x128",
		PowerConsumption:  "Max: 800W/m², Average: 270W/m²",
		Brightness:        "4500 nits",
		RefreshRate:       "3840Hz",
	},
	{
		ID:               "lw-p10-mod",
		Name:             "Lumen P10 Module",
		Family:           FamilyModule,
		PixelPitch:       "P10",
		ModuleSize:       "320*160mm",
		ModuleWeight:     "0.45kg/pcs",
		ModuleResolution: "32x16",
		PowerConsumption: "Max: 900W/m², Average: 300W/m²",
		Brightness:       "6500 nits",
	},
	{
		ID:               "lw-vw55",
		Name:             "Lumen VW55 Video Wall",
		Family:           FamilyVideoWall,
		Inch:             "55",
		UnitSizeMM:       "1,209.6 (W) x 680.4 (H)",
		Resolution:       "1920x1080",
		PowerConsumption: "Max: 190W/m², Average: 110W/m²", // per panel, scales by unit count
		Brightness:       "500 nits",
	},
	{
		ID:               "lw-vw46",
		Name:             "Lumen VW46 Video Wall",
		Family:           FamilyVideoWall,
		Inch:             "46",
		UnitSizeMM:       "1,018.2 (W) x 572.8 (H)",
		Resolution:       "1920x1080",
		PowerConsumption: "Max: 160W/m², Average: 95W/m²",
		Brightness:       "450 nits",
	},
}

// FindModelByID returns a pointer to the built-in model with the given
// ID, or nil.
func FindModelByID(id string) *ModelRecord {
	for i := range Models {
		if Models[i].ID == id {
			return &Models[i]
		}
	}
	return nil
}

// FindModelByName returns a pointer to the first built-in model with the
// given name, or nil.
func FindModelByName(name string) *ModelRecord {
	for i := range Models {
		if Models[i].Name == name {
			return &Models[i]
		}
	}
	return nil
}

// ModelNames returns the built-in model names for UI dropdowns.
func ModelNames() []string {
	names := make([]string, len(Models))
	for i, m := range Models {
		names[i] = m.Name
	}
	return names
}

// Built-in processor catalog. Capacities are total drivable pixels per
// connection type.
var Processors = []Processor{
	{
		ID:     1,
		Name:   "TB40",
		Series: SeriesTB,
		MaxResolution: map[ConnectionType]int{
			ConnectionLAN: 1300000,
		},
	},
	{
		ID:     2,
		Name:   "TB60",
		Series: SeriesTB,
		MaxResolution: map[ConnectionType]int{
			ConnectionLAN: 2300000,
		},
	},
	{
		ID:     3,
		Name:   "VX400",
		Series: SeriesVX,
		MaxResolution: map[ConnectionType]int{
			ConnectionLAN: 2600000,
		},
	},
	{
		ID:     4,
		Name:   "VX600",
		Series: SeriesVX,
		MaxResolution: map[ConnectionType]int{
			ConnectionLAN: 3900000,
		},
	},
	{
		ID:     5,
		Name:   "VX1000",
		Series: SeriesVX,
		MaxResolution: map[ConnectionType]int{
			ConnectionLAN:   6500000,
			ConnectionFiber: 6500000,
		},
	},
	{
		ID:     6,
		Name:   "VX16s",
		Series: SeriesVX,
		MaxResolution: map[ConnectionType]int{
			ConnectionLAN:      10400000,
			ConnectionEnhanced: 13000000,
		},
	},
	{
		ID:     7,
		Name:   "H2",
		Series: SeriesH,
		MaxResolution: map[ConnectionType]int{
			ConnectionLAN:   13000000,
			ConnectionFiber: 26000000,
		},
	},
	{
		ID:     8,
		Name:   "H5",
		Series: SeriesH,
		MaxResolution: map[ConnectionType]int{
			ConnectionLAN:   26000000,
			ConnectionFiber: 65000000,
		},
	},
	{
		ID:     9,
		Name:   "H9",
		Series: SeriesH,
		MaxResolution: map[ConnectionType]int{
			ConnectionLAN:   39000000,
			ConnectionFiber: 130000000,
		},
	},
}
