package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// KioskTheme defines a touch-oriented theme for the shell with enlarged
// padding and text sizes suitable for a wall-mounted panel
type KioskTheme struct{}

// NewKioskTheme creates a new kiosk theme
func NewKioskTheme() fyne.Theme {
	return &KioskTheme{}
}

// Color returns theme colors
func (t *KioskTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for saved files
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for failures
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for progress fill
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *KioskTheme) Font(style fyne.TextStyle) fyne.Resource {
	// Use default theme fonts
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *KioskTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	// Use default theme icons
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with touch adjustments
func (t *KioskTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6 // Increased from default 4
	case theme.SizeNameInnerPadding:
		return 10 // Increased from default 8
	case theme.SizeNameText:
		return 15 // Increased from default 14
	case theme.SizeNameHeadingText:
		return 20 // Increased from default 18
	case theme.SizeNameSubHeadingText:
		return 17 // Increased from default 16
	case theme.SizeNameScrollBar:
		return 20 // Increased from default 16 for finger use
	case theme.SizeNameInputRadius:
		return 5 // Keep default 5
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
