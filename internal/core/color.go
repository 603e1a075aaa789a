package core

// Color is a palette slot for a screen cell. The platform decides how each
// slot looks; games only pick the slot.
type Color uint8

// Palette slots used by the game.
const (
	ColorDefault Color = iota
	ColorTitle
	ColorMuted
	ColorGrid
	ColorWin
	ColorLoss
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper // anything above 2048
)

// TileColor returns the palette slot for a tile value.
// Empty cells use ColorDefault.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorDefault
	}
	c := ColorTile2
	for v := 2; v < value; v *= 2 {
		c++
		if c == ColorTileSuper {
			break
		}
	}
	return c
}
