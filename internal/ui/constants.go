package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconBack   = "←"
	IconReload = "⟳"
	IconError  = "❌"
)

// Layout sizing
const (
	ProgressBarHeight float32 = 4
	LogoSize          float32 = 96

	ShellMinWidth  float32 = 360
	ShellMinHeight float32 = 480

	// Touch target minimum size (panel hardware is finger-operated)
	MinTouchTargetSize float32 = 44
)

// Delays
const (
	// LoadEndGraceDelay keeps the finished progress bar visible briefly so
	// fast loads do not flicker.
	LoadEndGraceDelay = 300 * time.Millisecond
)
