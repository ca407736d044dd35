package breakout

import (
	"github.com/ledcade/ledcade/internal/config"
	"github.com/ledcade/ledcade/internal/core"
)

// brickPalette is cycled by (col+row) so diagonals share a color.
var brickPalette = []core.RGB{
	{R: 255, G: 0, B: 0},     // red
	{R: 255, G: 128, B: 0},   // orange
	{R: 255, G: 255, B: 0},   // yellow
	{R: 0, G: 255, B: 0},     // green
	{R: 0, G: 255, B: 255},   // cyan
	{R: 0, G: 128, B: 255},   // azure
	{R: 128, G: 0, B: 255},   // violet
	{R: 255, G: 0, B: 255},   // magenta
}

// Brick is a single destructible cell of the wall. Bricks keep their
// creation order (row-major) for the whole session; collision resolution
// consumes the earliest-created brick first.
type Brick struct {
	Rect  core.Rect
	Color core.RGB
}

// buildBricks lays out the full wall row-major: cols bricks per row, each
// arenaW/cols wide, rows deep starting at topY with rowPitch vertical step.
func buildBricks(cfg config.BreakoutBricks, arenaW int) []Brick {
	brickW := arenaW / cfg.Cols
	bricks := make([]Brick, 0, cfg.Rows*cfg.Cols)

	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			bricks = append(bricks, Brick{
				Rect: core.Rect{
					X: col * brickW,
					Y: cfg.TopY + row*cfg.RowPitch,
					W: brickW,
					H: cfg.Height,
				},
				Color: brickPalette[(col+row)%len(brickPalette)],
			})
		}
	}
	return bricks
}

// brickRects extracts the hitboxes in creation order.
func brickRects(bricks []Brick) []core.Rect {
	rects := make([]core.Rect, len(bricks))
	for i, b := range bricks {
		rects[i] = b.Rect
	}
	return rects
}
