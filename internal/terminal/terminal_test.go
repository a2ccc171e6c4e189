package terminal

import (
	"image/color"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Hexagonal-Zero/internal/board"
	"github.com/Garsondee/Hexagonal-Zero/internal/game"
	"github.com/Garsondee/Hexagonal-Zero/internal/hex"
)

func newTestApp(t *testing.T, opts ...game.SessionOption) (*App, tcell.SimulationScreen, *game.TestSession) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(100, 40)
	ts := game.NewTestSession(append([]game.SessionOption{game.WithSize(3)}, opts...)...)
	return New(sim, ts.Session, zerolog.Nop()), sim, ts
}

func TestCellViewRoundTrip(t *testing.T) {
	for _, angle := range []float64{0, math.Pi / 3, 4 * math.Pi / 3} {
		v := newCellView(0, 0, 80, 40, hex.Spacing*3, angle)
		for a := -2; a <= 2; a++ {
			for c := -2; c <= 2; c++ {
				p := hex.Axial(a, c)
				if p.Ring() >= 3 {
					continue
				}
				col, row := v.toCell(hex.CubeToPixel(p))
				vx, vy := v.toView(col, row)
				x, y := hex.Rotate(vx, vy, -angle)
				if got := hex.PixelToAxial(x, y); got != p {
					t.Fatalf("angle %.2f: %+v came back as %+v", angle, p, got)
				}
			}
		}
	}
}

func TestDrawShowsEveryTile(t *testing.T) {
	app, sim, ts := newTestApp(t)
	app.draw()
	cells, _, _ := sim.GetContents()
	tiles := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == '●' {
			tiles++
		}
	}
	if tiles != ts.Grid().Count() {
		t.Fatalf("expected %d tiles on screen, got %d", ts.Grid().Count(), tiles)
	}
}

func TestMouseSelectsAndSwaps(t *testing.T) {
	app, _, ts := newTestApp(t)
	v := app.boardView()

	click := func(p hex.Cube) {
		col, row := v.toCell(hex.CubeToPixel(p))
		app.handleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
		app.handleEvent(tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone))
	}

	click(hex.Axial(0, 0))
	if ts.State() != game.StateHexSelected || ts.Locked() != ts.Grid().Get(0, 0) {
		t.Fatalf("expected (0,0) selected, state %s", ts.State())
	}
	click(hex.Axial(1, 0))
	if ts.State() != game.StateHexSwap {
		t.Fatalf("expected a swap, state %s", ts.State())
	}
}

func TestHeldButtonClicksOnce(t *testing.T) {
	app, _, ts := newTestApp(t)
	col, row := app.boardView().toCell(0, 0)
	app.handleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	app.handleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	if ts.Events.Count("input", "select") != 1 || ts.Events.Count("input", "ignored") != 0 {
		t.Fatal("a held button should press only once")
	}
}

func TestKeys(t *testing.T) {
	app, _, ts := newTestApp(t)
	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	if ts.State() != game.StateRotating {
		t.Fatalf("expected rotation, state %s", ts.State())
	}
	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	if !ts.MusicOn() {
		t.Fatal("m should toggle music")
	}
	if app.quit {
		t.Fatal("quit too early")
	}
	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if !app.quit {
		t.Fatal("q should quit")
	}
}

func TestGlyphs(t *testing.T) {
	g := board.NewGeometry(0, 0, board.ShapeCircle, color.RGBA{A: 255})
	if glyph(g) != '●' {
		t.Fatalf("unexpected glyph %q", glyph(g))
	}
	g.Resize(0.2)
	if glyph(g) != '·' {
		t.Fatal("shrunk tiles should fade to a dot")
	}
	if stripeRune(0) != '═' || stripeRune(math.Pi/2) != '║' || stripeRune(math.Pi) != '═' {
		t.Fatal("unexpected stripe runes")
	}
}

func TestTintFadesToBackground(t *testing.T) {
	c := color.RGBA{R: 200, G: 40, B: 90, A: 255}
	if tint(c, 1) != tcell.NewRGBColor(200, 40, 90) {
		t.Fatal("full scale should keep the colour")
	}
	if tint(c, 0) != background {
		t.Fatal("zero scale should match the background")
	}
}

func TestFeedTruncatesByRune(t *testing.T) {
	app, sim, ts := newTestApp(t)
	ts.SetMessage(strings.Repeat("é", feedWidth*2))
	app.draw()

	cells, cw, ch := sim.GetContents()
	x := cw - feedWidth + 1
	var line []rune
	for row := statusRows + 1; row < ch && line == nil; row++ {
		if c := cells[row*cw+x]; len(c.Runes) == 0 || c.Runes[0] != 'é' {
			continue
		}
		for col := x; col < cw; col++ {
			c := cells[row*cw+col]
			if len(c.Runes) == 0 || c.Runes[0] == ' ' {
				break
			}
			line = append(line, c.Runes[0])
		}
	}
	if line == nil {
		t.Fatal("message not found in the feed column")
	}
	got := string(line)
	if !utf8.ValidString(got) || strings.ContainsRune(got, utf8.RuneError) {
		t.Fatalf("feed line is not valid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != feedWidth-2 {
		t.Fatalf("expected %d runes, got %d: %q", feedWidth-2, n, got)
	}
}
