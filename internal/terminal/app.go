// Package terminal is the text-mode front end: the same game.Session driven
// by tcell mouse and key events and drawn as glyphs.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Hexagonal-Zero/internal/game"
)

const (
	statusRows = 2
	feedWidth  = 34
	feedMinW   = 80 // narrower terminals drop the feed column
)

var (
	textStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(225, 232, 240)).Background(background)
	dimStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(140, 150, 165)).Background(background)
	alertStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(250, 200, 90)).Background(background)
)

// App runs a session on a tcell screen.
type App struct {
	screen  tcell.Screen
	session *game.Session
	clock   *game.Clock
	log     zerolog.Logger

	buttons tcell.ButtonMask
	quit    bool
}

// New wraps an initialised screen. The caller owns Fini.
func New(screen tcell.Screen, s *game.Session, logger zerolog.Logger) *App {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return &App{
		screen:  screen,
		session: s,
		clock:   game.NewClock(s.Config().Timing.FPS),
		log:     logger.With().Str("component", "terminal").Logger(),
	}
}

// NewScreen creates and initialises the terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

// Run polls events on a goroutine and steps and redraws on a ticker until
// the player quits.
func (a *App) Run() {
	ticker := time.NewTicker(a.clock.Duration())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	a.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			a.handleEvent(ev)
			if a.quit {
				return
			}
		case now := <-ticker.C:
			elapsed := now.Sub(last).Seconds()
			last = now
			for n := a.clock.Advance(elapsed); n > 0; n-- {
				a.session.Step(a.clock.Step())
			}
			a.draw()
		}
	}
}

// boardView is the cell view of the board area for the current size.
func (a *App) boardView() cellView {
	w, h := a.screen.Size()
	if w >= feedMinW {
		w -= feedWidth
	}
	return newCellView(0, statusRows, w, h-statusRows-1, a.session.MaxCoord(), a.session.Angle())
}

func (a *App) pointer(col, row int) (float64, float64) {
	return a.session.ViewToBoard(a.boardView().toView(col, row))
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		col, row := ev.Position()
		a.session.PointerMove(a.pointer(col, row))
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && a.buttons&tcell.Button1 == 0 {
			a.session.PointerDown(a.pointer(col, row))
		}
		a.buttons = ev.Buttons()
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch ev.Rune() {
	case '+', '=':
		a.session.RotateManual(false)
	case '-', '_':
		a.session.RotateManual(true)
	case 'h', 'H':
		a.session.Hint()
	case 'n', 'N':
		a.session.Restart()
	case 'c', 'C':
		if err := a.session.CopyReport(); err != nil {
			a.log.Debug().Err(err).Msg("report not copied")
		}
	case 'm', 'M':
		a.session.ToggleMusic()
	case 'q', 'Q':
		a.quit = true
	}
}

func (a *App) draw() {
	a.screen.Fill(' ', tcell.StyleDefault.Background(background))
	a.session.Render(&canvas{screen: a.screen, view: a.boardView()})
	a.drawStatus()
	if w, _ := a.screen.Size(); w >= feedMinW {
		a.drawFeed(w - feedWidth)
	}
	a.screen.Show()
}

func (a *App) drawStatus() {
	s := a.session
	putString(a.screen, 1, 0, fmt.Sprintf("LEVEL %d  SCORE %d  MOVES %d/%d  COMBO x%d",
		s.Level(), s.Score(), s.MovesLeft(), s.Config().Board.Moves, s.Combo()), textStyle)

	line := "+/- rotate  h hint  n new  c copy  m music  q quit"
	style := dimStyle
	if res, ok := s.Result(); ok {
		line = fmt.Sprintf("GAME OVER  score %d  rating %s  next level in %.0fs", res.Score, res.Rating, s.GameOverRemaining())
		style = alertStyle
	} else if msg := s.Message(); msg != "" {
		line = msg
		style = alertStyle
	}
	putString(a.screen, 1, 1, line, style)
}

func (a *App) drawFeed(x int) {
	_, h := a.screen.Size()
	putString(a.screen, x+1, statusRows, "FEED", dimStyle)
	entries := a.session.Feed.Last(h - statusRows - 2)
	for i, e := range entries {
		msg := runewidth.Truncate(e.Message, feedWidth-2, "")
		putString(a.screen, x+1, statusRows+1+i, msg, toneStyles[e.Tone])
	}
}

var toneStyles = map[game.Tone]tcell.Style{
	game.ToneInfo:  dimStyle,
	game.ToneScore: tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 220, 140)).Background(background),
	game.ToneBomb:  alertStyle,
	game.ToneWarn:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(240, 100, 90)).Background(background),
}

// putString writes str from column x, advancing by each rune's cell width.
func putString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
}
