package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ledcade/ledcade/internal/core"
)

// halfBlock packs two pixel rows into one terminal row: the character's
// foreground is the top pixel, its background the bottom one. A 64x32
// frame therefore fits a 64x16 terminal area with square-ish pixels.
const halfBlock = '▀'

// styleCache avoids rebuilding lipgloss styles for recurring color pairs.
var styleCache = map[[2]core.RGB]lipgloss.Style{}

func pairStyle(top, bottom core.RGB) lipgloss.Style {
	pair := [2]core.RGB{top, bottom}
	if s, ok := styleCache[pair]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor(top))).
		Background(lipgloss.Color(hexColor(bottom)))
	styleCache[pair] = s
	return s
}

func hexColor(c core.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RenderFrame converts a frame to a styled string for terminal display.
// Adjacent columns sharing the same color pair are grouped into one styled
// run to keep the ANSI output small.
func RenderFrame(f *core.Frame) string {
	var sb strings.Builder
	sb.Grow(f.Width() * f.Height() * 2)

	for y := 0; y < f.Height(); y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < f.Width() {
			top := f.Get(x, y)
			bottom := f.Get(x, y+1)

			runLen := 0
			for x+runLen < f.Width() &&
				f.Get(x+runLen, y) == top &&
				f.Get(x+runLen, y+1) == bottom {
				runLen++
			}

			run := strings.Repeat(string(halfBlock), runLen)
			sb.WriteString(pairStyle(top, bottom).Render(run))
			x += runLen
		}
	}
	return sb.String()
}
