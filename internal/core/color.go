package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// FromRGB maps normalized RGB components (0..1) to the nearest predefined
// terminal color. Blueprint shapes carry free-form colors; the screen buffer
// only knows this palette.
func FromRGB(r, g, b float64) Color {
	const hi = 0.66
	const lo = 0.33

	switch {
	case r >= hi && g >= lo && g < hi && b < lo:
		return ColorOrange
	case r >= hi && g >= hi && b >= hi:
		return ColorBrightWhite
	case r >= hi && g >= hi:
		return ColorBrightYellow
	case g >= hi && b >= hi:
		return ColorBrightCyan
	case r >= hi && b >= hi:
		return ColorBrightMagenta
	case r >= hi:
		return ColorBrightRed
	case g >= hi:
		return ColorBrightGreen
	case b >= hi:
		return ColorBrightBlue
	case r >= lo && g >= lo && b >= lo:
		return ColorGray
	case r >= lo && g >= lo:
		return ColorYellow
	case g >= lo && b >= lo:
		return ColorCyan
	case r >= lo && b >= lo:
		return ColorMagenta
	case r >= lo:
		return ColorRed
	case g >= lo:
		return ColorGreen
	case b >= lo:
		return ColorBlue
	default:
		return ColorDefault
	}
}
