package core

// RGB is a 24-bit pixel color, matching the RGB888 framebuffer layout of the
// LED matrix panels the games were originally tuned for.
type RGB struct {
	R, G, B uint8
}

// Common colors shared across games. Game-specific palettes live in the
// game packages.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Gray  = RGB{50, 50, 50}
	Gold  = RGB{255, 215, 0}
)
