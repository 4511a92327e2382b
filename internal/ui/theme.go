package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// LumenWallTheme wraps the default Fyne theme with sizing tuned for the
// configurator layout: the canvas dominates the window, so the control
// column gets slightly larger text than a data-grid app would but tight
// padding to leave room for the preview.
type LumenWallTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	pinned  bool
}

// ThemeForPreference maps the saved theme preference ("light", "dark",
// anything else meaning system) to a theme instance.
func ThemeForPreference(pref string) *LumenWallTheme {
	t := &LumenWallTheme{base: theme.DefaultTheme()}
	switch pref {
	case "light":
		t.variant = theme.VariantLight
		t.pinned = true
	case "dark":
		t.variant = theme.VariantDark
		t.pinned = true
	}
	return t
}

// Color resolves against the pinned variant when the user chose one,
// otherwise the system variant passes through.
func (t *LumenWallTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.pinned {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

func (t *LumenWallTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *LumenWallTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size overrides keep the control column compact without shrinking the
// spec summary below comfortable reading size.
func (t *LumenWallTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 7
	default:
		return t.base.Size(name)
	}
}
