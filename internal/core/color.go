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
	ColorOrange
	ColorGray
)

// Palette lists the brick colors by visual variant.
var Palette = []Color{
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorCyan,
	ColorBlue,
	ColorMagenta,
	ColorWhite,
}

// VariantColor returns the palette color for a brick variant, wrapping around.
func VariantColor(variant int) Color {
	if variant < 0 {
		return ColorDefault
	}
	return Palette[variant%len(Palette)]
}
