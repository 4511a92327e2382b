package model

// AppConfig holds application-wide preferences and defaults.
type AppConfig struct {
	// Defaults applied to new configuration sessions
	DefaultWallWidth  float64 `json:"default_wall_width"`
	DefaultWallHeight float64 `json:"default_wall_height"`
	DefaultModelID    string  `json:"default_model_id"`

	// Application preferences
	RecentExports []string `json:"recent_exports"`
	Theme         string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultWallWidth:  DefaultWallWidth,
		DefaultWallHeight: DefaultWallHeight,
		RecentExports:     []string{},
		Theme:             "system",
	}
}

// NewConfiguration creates a configuration session seeded with the
// user's saved wall defaults.
func (c AppConfig) NewConfiguration() DisplayConfiguration {
	cfg := NewDisplayConfiguration()
	if c.DefaultWallWidth >= 1 {
		cfg.Wall.Width = c.DefaultWallWidth
	}
	if c.DefaultWallHeight >= 1 {
		cfg.Wall.Height = c.DefaultWallHeight
	}
	return cfg
}

// RememberExport prepends a path to the recent exports list, keeping the
// newest ten unique entries.
func (c *AppConfig) RememberExport(path string) {
	recent := []string{path}
	for _, p := range c.RecentExports {
		if p != path && len(recent) < 10 {
			recent = append(recent, p)
		}
	}
	c.RecentExports = recent
}
