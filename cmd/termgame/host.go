package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/application/system"
	"github.com/younwookim/overworld/internal/domain/entity"
	"github.com/younwookim/overworld/internal/infrastructure/logger"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionRestart
)

// keyBinding maps a key press to a move, an attack or a host action
type keyBinding struct {
	dir    entity.Direction
	attack bool
	action action
}

func bindKey(key tcell.Key, r rune) keyBinding {
	switch key {
	case tcell.KeyUp:
		return keyBinding{dir: entity.DirUp}
	case tcell.KeyDown:
		return keyBinding{dir: entity.DirDown}
	case tcell.KeyLeft:
		return keyBinding{dir: entity.DirLeft}
	case tcell.KeyRight:
		return keyBinding{dir: entity.DirRight}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return keyBinding{action: actionQuit}
	case tcell.KeyEnter:
		return keyBinding{action: actionRestart}
	case tcell.KeyRune:
	default:
		return keyBinding{}
	}

	switch r {
	case 'w', 'k':
		return keyBinding{dir: entity.DirUp}
	case 's', 'j':
		return keyBinding{dir: entity.DirDown}
	case 'a', 'h':
		return keyBinding{dir: entity.DirLeft}
	case 'd', 'l':
		return keyBinding{dir: entity.DirRight}
	case ' ', 'f':
		return keyBinding{attack: true}
	case 'p':
		return keyBinding{action: actionPause}
	case 'r', 'z':
		return keyBinding{action: actionRestart}
	case 'q':
		return keyBinding{action: actionQuit}
	default:
		return keyBinding{}
	}
}

// host runs a session in a terminal.
// Terminals report presses but not releases, so every press queues input for the next tick.
type host struct {
	screen  tcell.Screen
	session *system.Session
	pending system.Input
	quit    bool
	log     *logrus.Entry
}

func newHost(screen tcell.Screen, session *system.Session) *host {
	return &host{
		screen:  screen,
		session: session,
		log:     logger.For("termgame"),
	}
}

func (h *host) handleKey(key tcell.Key, r rune) {
	b := bindKey(key, r)

	switch b.action {
	case actionQuit:
		h.quit = true
		return
	case actionPause:
		h.session.TogglePause()
		return
	case actionRestart:
		if h.session.State().Status.Ended() {
			if err := h.session.Restart(); err != nil {
				h.log.WithError(err).Error("restart failed")
			}
			h.pending = system.Input{}
		}
		return
	}

	if b.dir != entity.DirNone {
		h.pending.Move = b.dir
	}
	if b.attack {
		h.pending.Attack = true
	}
}

// tick advances the session if due and consumes the queued input
func (h *host) tick(now time.Time) bool {
	if !h.session.Update(now, h.pending) {
		return false
	}
	h.pending = system.Input{}
	return true
}

func (h *host) run() {
	ticker := time.NewTicker(h.session.TickInterval())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	}()

	h.draw()
	for !h.quit {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				h.handleKey(ev.Key(), ev.Rune())
			case *tcell.EventResize:
				h.screen.Sync()
			}
			h.draw()

		case now := <-ticker.C:
			if h.tick(now) {
				h.draw()
			}
		}
	}
}

var (
	styleDefault = tcell.StyleDefault
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleSword   = tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true)
	styleRandom  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleFollow  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleRupee   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleHeart   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

var tileStyles = map[entity.TileType]tcell.Style{
	entity.TileGrass:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
	entity.TileWater:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
	entity.TileTree:     tcell.StyleDefault.Foreground(tcell.ColorDarkGreen),
	entity.TileSand:     tcell.StyleDefault.Foreground(tcell.ColorYellow),
	entity.TileMountain: tcell.StyleDefault.Foreground(tcell.ColorGray),
}

var facingGlyphs = map[entity.Direction]rune{
	entity.DirUp:    '^',
	entity.DirDown:  'v',
	entity.DirLeft:  '<',
	entity.DirRight: '>',
}

// cellAt returns what to show at pos. Player beats enemies beats items beats terrain.
func cellAt(gs state.GameState, pos entity.Position) (rune, tcell.Style) {
	p := gs.Player
	if p.Position == pos {
		return facingGlyphs[p.Direction], stylePlayer
	}
	if p.Attacking && p.AttackTarget() == pos {
		return '*', styleSword
	}
	for _, e := range gs.Enemies {
		if e.Position == pos {
			if e.MovePattern == entity.PatternFollow {
				return 'E', styleFollow
			}
			return 'e', styleRandom
		}
	}
	for _, item := range gs.Items {
		if !item.Collected && item.Position == pos {
			if item.Type == entity.ItemHeart {
				return '+', styleHeart
			}
			return '$', styleRupee
		}
	}
	tile, ok := gs.Map.TileAt(pos)
	if !ok {
		return ' ', styleDefault
	}
	return tile.Type.Glyph(), tileStyles[tile.Type]
}

func statusLine(gs state.GameState, paused bool) string {
	line := fmt.Sprintf("HP %d  Rupees %d  Enemies %d  Tick %d",
		gs.Player.Health, gs.Player.Rupees, len(gs.Enemies), gs.Tick)

	switch {
	case paused:
		line += "  [PAUSED]"
	case gs.Status == state.StatusVictorious:
		line += fmt.Sprintf("  VICTORY! score %d - r to play again", gs.Score)
	case gs.Status == state.StatusDefeated:
		line += fmt.Sprintf("  GAME OVER score %d - r to play again", gs.Score)
	}
	return line
}

const helpLine = "arrows/wasd move  space attack  p pause  q quit"

func (h *host) draw() {
	gs := h.session.State()
	h.screen.Clear()

	for y := 0; y < gs.Map.Height; y++ {
		for x := 0; x < gs.Map.Width; x++ {
			r, style := cellAt(gs, entity.Position{X: x, Y: y})
			h.screen.SetContent(2*x, y, r, nil, style)
		}
	}

	drawText(h.screen, 0, gs.Map.Height+1, statusLine(gs, h.session.Paused()))
	drawText(h.screen, 0, gs.Map.Height+2, helpLine)
	h.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, styleDefault)
	}
}
