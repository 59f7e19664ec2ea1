package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used for the HUD and tiles. Tile colors run from cool to hot as
// the tile value grows.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorYellow
	ColorOrange
	ColorRed
	ColorMagenta
	ColorBlue
	ColorCyan
	ColorGreen
	ColorBrightYellow
	ColorBrightWhite
)

// tilePalette orders the colors used for increasing tile ranks.
var tilePalette = []Color{
	ColorWhite,        // 2
	ColorBrightWhite,  // 4
	ColorYellow,       // 8
	ColorOrange,       // 16
	ColorRed,          // 32
	ColorMagenta,      // 64
	ColorBlue,         // 128
	ColorCyan,         // 256
	ColorGreen,        // 512
	ColorBrightYellow, // 1024 and above
}

// TileColor returns the color for a tile of the given rank.
// Rank 0 (no tile) is drawn in gray.
func TileColor(rank uint8) Color {
	if rank == 0 {
		return ColorGray
	}
	i := int(rank) - 1
	if i >= len(tilePalette) {
		i = len(tilePalette) - 1
	}
	return tilePalette[i]
}
