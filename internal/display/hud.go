package display

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Hexagonal-Zero/internal/game"
)

// hudScale is the integer upscale applied to HUD text.
const hudScale = 2

var (
	hudText   = color.RGBA{R: 225, G: 232, B: 240, A: 255}
	hudDim    = color.RGBA{R: 140, G: 150, B: 165, A: 255}
	hudAlert  = color.RGBA{R: 250, G: 200, B: 90, A: 255}
	hudPanel  = color.RGBA{R: 8, G: 10, B: 16, A: 200}
	hudStroke = color.RGBA{R: 60, G: 80, B: 110, A: 180}
)

// hudLines returns the status lines and, when help is on, the key legend.
func hudLines(s *game.Session, help bool) (status, legend []string) {
	status = []string{
		fmt.Sprintf("LEVEL %d  SCORE %d", s.Level(), s.Score()),
		fmt.Sprintf("MOVES %d/%d  COMBO x%d", s.MovesLeft(), s.Config().Board.Moves, s.Combo()),
	}
	if s.State() != game.StateIdle && s.State() != game.StateHexSelected {
		status = append(status, s.State().String())
	}
	if !help {
		return status, []string{"[Tab] keys"}
	}
	legend = []string{
		"[+/-] rotate  [H] hint",
		"[N] new level  [M] music",
		"[C] copy report  [Q] quit",
	}
	return status, legend
}

// drawHUD renders the status box top-left and the legend bottom-left into
// hudBuf at 1x, then blits it scaled.
func (g *Game) drawHUD(screen *ebiten.Image) {
	status, legend := hudLines(g.session, g.showHelp)

	g.hudBuf.Clear()
	bufH := g.height / hudScale
	drawBox(g.hudBuf, status, 4, 4, hudText)
	if msg := g.session.Message(); msg != "" {
		drawText(g.hudBuf, msg, 8, 4+len(status)*lineH+14, hudAlert)
	}
	drawBox(g.hudBuf, legend, 4, bufH-len(legend)*lineH-12, hudDim)

	if res, ok := g.session.Result(); ok {
		g.drawBanner(res)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	screen.DrawImage(g.hudBuf, op)
}

func drawBox(dst *ebiten.Image, lines []string, x, y int, col color.RGBA) {
	const padX, padY = 5, 4
	maxW := 0
	for _, l := range lines {
		if w := textWidth(l); w > maxW {
			maxW = w
		}
	}
	w := float32(maxW + padX*2)
	h := float32(len(lines)*lineH + padY*2)
	vector.FillRect(dst, float32(x), float32(y), w, h, hudPanel, false)
	vector.StrokeRect(dst, float32(x), float32(y), w, h, 1, hudStroke, false)
	for i, l := range lines {
		drawText(dst, l, x+padX, y+padY+i*lineH, col)
	}
}

// drawBanner centres the game-over summary over the board.
func (g *Game) drawBanner(res game.Result) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("score %d  rating %s", res.Score, res.Rating),
		fmt.Sprintf("max combo x%d  removed %d", res.MaxCombo, res.Removed),
		fmt.Sprintf("next level in %.0fs", g.session.GameOverRemaining()),
	}
	maxW := 0
	for _, l := range lines {
		if w := textWidth(l); w > maxW {
			maxW = w
		}
	}
	x := (g.boardW/hudScale - maxW) / 2
	y := (g.height/hudScale - len(lines)*lineH) / 2
	drawBox(g.hudBuf, lines, x, y, hudAlert)
}
