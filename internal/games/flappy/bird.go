package flappy

import "github.com/ledcade/ledcade/internal/core"

// Sprite colors
var (
	colTail = core.RGB{R: 255, G: 140, B: 140}
	colWing = core.RGB{R: 255, G: 165, B: 0}
	colBody = core.RGB{R: 255, G: 255, B: 50}
	colBeak = core.RGB{R: 255, G: 215, B: 0}
	colPipe = core.RGB{R: 0, G: 255, B: 0}
	colBoom = core.RGB{R: 255, G: 0, B: 0}
)

// birdPattern is the 8x4 sprite: 0 blank, 1 tail, 2 wing, 3 body, 4 beak.
var birdPattern = [4][8]uint8{
	{0, 1, 0, 2, 3, 3, 3, 4},
	{1, 1, 2, 3, 3, 3, 4, 4},
	{1, 1, 2, 3, 3, 3, 4, 4},
	{0, 1, 0, 2, 3, 3, 3, 0},
}

var birdColors = map[uint8]core.RGB{
	1: colTail,
	2: colWing,
	3: colBody,
	4: colBeak,
}

const (
	birdW = 8
	birdH = 4
)

// drawBird paints the sprite with its top-left at (x, y).
func drawBird(dst *core.Frame, x, y int) {
	for dy, row := range birdPattern {
		for dx, cell := range row {
			if cell != 0 {
				dst.Set(x+dx, y+dy, birdColors[cell])
			}
		}
	}
}

// drawBoom paints the 3x3 blast mark centered at (cx, cy).
func drawBoom(dst *core.Frame, cx, cy int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			dst.Set(cx+dx, cy+dy, colBoom)
		}
	}
}
