package tui

// Color constants for the cram TUI theme
const (
	// Base colors
	ColorAppBackground  = ""        // use terminal default background
	ColorCardBackground = "#121F18" // dark green
	ColorBorder         = "#2E4A3D" // muted green-grey

	// Text colors
	ColorPrimaryText   = "#E8F0EA" // field labels, user input, titles
	ColorSecondaryText = "#A8BCAE" // subtle green-tinted grey
	ColorDisabledText  = "#6B7A70" // disabled/muted text
	ColorHelpText      = "240"     // dark grey for help text

	// Accent colors (green theme)
	ColorAccentMain   = "#34D399" // logo, accents, active borders
	ColorAccentBright = "#6EE7B7" // highlights, current field

	// State colors
	ColorError   = "#EF4444" // validation errors
	ColorSuccess = "#22C55E" // success, confirmations
	ColorWarning = "#F59E0B" // overdue, warnings
)
