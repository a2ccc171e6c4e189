// Package display is the windowed front end: an ebiten.Game that steps a
// game.Session on a fixed clock and draws it with a side feed panel.
package display

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Hexagonal-Zero/internal/game"
)

var background = color.RGBA{R: 16, G: 18, B: 26, A: 255}

// Game adapts a Session to ebiten.
type Game struct {
	session *game.Session
	clock   *game.Clock
	log     zerolog.Logger
	now     func() time.Time
	last    time.Time

	width  int
	height int
	boardW int // board area width; the feed panel takes the rest

	hudBuf   *ebiten.Image
	showHelp bool
	quit     bool

	cursorX, cursorY int
	touches          []ebiten.TouchID
}

// New builds the front end for s.
func New(s *game.Session, logger zerolog.Logger) *Game {
	cfg := s.Config()
	g := &Game{
		session:  s,
		clock:    game.NewClock(cfg.Timing.FPS),
		log:      logger.With().Str("component", "display").Logger(),
		now:      time.Now,
		width:    cfg.Window.Width + feedPanelWidth,
		height:   cfg.Window.Height,
		boardW:   cfg.Window.Width,
		showHelp: true,
		cursorX:  -1,
		cursorY:  -1,
	}
	g.last = g.now()
	g.hudBuf = ebiten.NewImage(g.width/hudScale, g.height/hudScale)
	return g
}

// Size returns the window size the game lays out to.
func (g *Game) Size() (int, int) { return g.width, g.height }

func (g *Game) Update() error {
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}

	now := g.now()
	elapsed := now.Sub(g.last).Seconds()
	g.last = now
	for n := g.clock.Advance(elapsed); n > 0; n-- {
		g.session.Step(g.clock.Step())
	}
	return nil
}

func (g *Game) viewport() viewport {
	return newViewport(0, 0, g.boardW, g.height, g.session.MaxCoord(), g.session.Angle())
}

// pointer converts a screen pixel to board coordinates.
func (g *Game) pointer(sx, sy int) (float64, float64) {
	return g.session.ViewToBoard(g.viewport().toView(sx, sy))
}

// keyBinding maps any of keys to an action, fired on the press edge.
type keyBinding struct {
	keys []ebiten.Key
	fn   func(*Game)
}

var bindings = []keyBinding{
	{[]ebiten.Key{ebiten.KeyEqual, ebiten.KeyKPAdd}, func(g *Game) { g.session.RotateManual(false) }},
	{[]ebiten.Key{ebiten.KeyMinus, ebiten.KeyKPSubtract}, func(g *Game) { g.session.RotateManual(true) }},
	{[]ebiten.Key{ebiten.KeyH}, func(g *Game) { g.session.Hint() }},
	{[]ebiten.Key{ebiten.KeyN}, func(g *Game) { g.session.Restart() }},
	{[]ebiten.Key{ebiten.KeyC}, func(g *Game) {
		if err := g.session.CopyReport(); err != nil {
			g.log.Debug().Err(err).Msg("report not copied")
		}
	}},
	{[]ebiten.Key{ebiten.KeyM}, func(g *Game) { g.session.ToggleMusic() }},
	{[]ebiten.Key{ebiten.KeyTab}, func(g *Game) { g.showHelp = !g.showHelp }},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, func(g *Game) { g.quit = true }},
}

// handleInput feeds pointer and key edges to the session.
func (g *Game) handleInput() {
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				b.fn(g)
				break
			}
		}
	}

	mx, my := ebiten.CursorPosition()
	if mx != g.cursorX || my != g.cursorY {
		g.cursorX, g.cursorY = mx, my
		if mx < g.boardW {
			g.session.PointerMove(g.pointer(mx, my))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && mx < g.boardW {
		g.session.PointerDown(g.pointer(mx, my))
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		tx, ty := ebiten.TouchPosition(id)
		if tx < g.boardW {
			g.session.PointerDown(g.pointer(tx, ty))
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	c := &canvas{dst: screen, vp: g.viewport()}
	g.session.Render(c)

	drawFeed(screen, g.session.Feed, g.boardW, g.height)
	g.drawHUD(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
