package tui

// Color constants for the bankt TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#101B2D" // Dark blue
	ColorBorder         = "#34415A" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#ADB7C9" // Secondary text
	ColorDisabledText  = "#687085" // Disabled/muted text
	ColorPlaceholder   = "#ADB7C9" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Teal theme)
	ColorAccentMain   = "#0EA5E9" // Logo, accent elements, active borders
	ColorAccentBright = "#67E8F9" // Hover, highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings, overdraft notices
)
