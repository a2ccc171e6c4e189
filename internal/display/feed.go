package display

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Hexagonal-Zero/internal/game"
)

const (
	feedPanelWidth = 240
	feedLineHeight = 15
	feedRecent     = 3 // newest entries drawn highlighted
)

var toneColors = map[game.Tone]color.RGBA{
	game.ToneInfo:  {R: 170, G: 190, B: 210, A: 255},
	game.ToneScore: {R: 120, G: 220, B: 140, A: 255},
	game.ToneBomb:  {R: 250, G: 190, B: 80, A: 255},
	game.ToneWarn:  {R: 240, G: 100, B: 90, A: 255},
}

// drawFeed renders the feed panel on the right side of the screen, newest
// line at the bottom.
func drawFeed(screen *ebiten.Image, f *game.Feed, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, feedPanelWidth, float32(panelH), color.RGBA{R: 12, G: 14, B: 20, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 60, B: 80, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, feedPanelWidth, 18, color.RGBA{R: 22, G: 28, B: 40, A: 255}, false)
	drawText(screen, "FEED", panelX+8, 3, color.RGBA{R: 200, G: 210, B: 230, A: 255})
	vector.StrokeLine(screen, float32(panelX), 18, float32(panelX+feedPanelWidth), 18, 1.0, color.RGBA{R: 50, G: 60, B: 90, A: 200}, false)

	maxVisible := (panelH - 26) / feedLineHeight
	visible := f.Last(maxVisible)

	y := 22
	for i, e := range visible {
		recent := i >= len(visible)-feedRecent
		if recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 36, B: 52, A: 160}, false)
		}
		dot := toneColors[e.Tone]
		vector.FillRect(screen, float32(panelX+5), float32(y+5), 3, 5, dot, false)
		col := color.NRGBA{R: dot.R, G: dot.G, B: dot.B, A: 255}
		if !recent {
			col.A = 150
		}
		drawText(screen, fmt.Sprintf("%5d %s", e.Tick, e.Message), panelX+12, y+1, col)
		y += feedLineHeight
	}
}
