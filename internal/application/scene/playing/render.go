package playing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/overworld/internal/application/state"
	"github.com/younwookim/overworld/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorGrass    = color.RGBA{76, 153, 0, 255}
	colorWater    = color.RGBA{30, 100, 200, 255}
	colorTree     = color.RGBA{20, 80, 20, 255}
	colorSand     = color.RGBA{220, 200, 120, 255}
	colorMountain = color.RGBA{120, 110, 100, 255}
	colorPlayer   = color.RGBA{40, 160, 60, 255}
	colorSword    = color.RGBA{230, 230, 240, 255}
	colorRandom   = color.RGBA{200, 60, 60, 255}
	colorFollow   = color.RGBA{170, 40, 170, 255}
	colorFacing   = color.RGBA{20, 20, 20, 255}
	colorRupee    = color.RGBA{40, 220, 120, 255}
	colorHeart    = color.RGBA{230, 40, 60, 255}
	colorHeartOff = color.RGBA{70, 40, 40, 255}
)

func tileColor(t entity.TileType) color.Color {
	switch t {
	case entity.TileWater:
		return colorWater
	case entity.TileTree:
		return colorTree
	case entity.TileSand:
		return colorSand
	case entity.TileMountain:
		return colorMountain
	default:
		return colorGrass
	}
}

// Draw renders the scene (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	gs := p.session.State()
	p.drawTiles(screen, gs.Map)
	p.drawItems(screen, gs.ActiveItems())
	p.drawEnemies(screen, gs.Enemies)
	p.drawPlayer(screen, gs.Player)
	p.drawUI(screen, gs)

	switch {
	case p.session.Paused():
		p.drawPauseOverlay(screen)
	case gs.Status.Ended():
		p.drawGameOverOverlay(screen, gs.Outcome())
	}
}

// cell returns the screen rectangle origin of a grid position
func (p *Playing) cell(pos entity.Position) (float64, float64) {
	return float64(pos.X * p.tileSize), float64(pos.Y * p.tileSize)
}

func (p *Playing) drawTiles(screen *ebiten.Image, m entity.Map) {
	ts := float64(p.tileSize)
	for _, tile := range m.Tiles {
		x, y := p.cell(tile.Position)
		ebitenutil.DrawRect(screen, x, y, ts, ts, tileColor(tile.Type))
	}
}

func (p *Playing) drawItems(screen *ebiten.Image, items []entity.Item) {
	ts := float64(p.tileSize)
	size := ts / 3
	for _, item := range items {
		x, y := p.cell(item.Position)
		c := colorRupee
		if item.Type == entity.ItemHeart {
			c = colorHeart
		}
		ebitenutil.DrawRect(screen, x+(ts-size)/2, y+(ts-size)/2, size, size, c)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, enemies []entity.Enemy) {
	for _, enemy := range enemies {
		c := colorRandom
		if enemy.MovePattern == entity.PatternFollow {
			c = colorFollow
		}
		p.drawActor(screen, enemy.Position, enemy.Direction, c)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, player entity.Player) {
	p.drawActor(screen, player.Position, player.Direction, colorPlayer)

	if player.Attacking {
		ts := float64(p.tileSize)
		x, y := p.cell(player.AttackTarget())
		ebitenutil.DrawRect(screen, x+ts/4, y+ts/4, ts/2, ts/2, colorSword)
	}
}

// drawActor draws a body with a small marker on the facing side
func (p *Playing) drawActor(screen *ebiten.Image, pos entity.Position, dir entity.Direction, body color.Color) {
	ts := float64(p.tileSize)
	inset := ts / 8
	x, y := p.cell(pos)
	ebitenutil.DrawRect(screen, x+inset, y+inset, ts-2*inset, ts-2*inset, body)

	dx, dy := dir.Delta()
	marker := ts / 6
	cx := x + ts/2 + float64(dx)*(ts/2-inset-marker/2) - marker/2
	cy := y + ts/2 + float64(dy)*(ts/2-inset-marker/2) - marker/2
	ebitenutil.DrawRect(screen, cx, cy, marker, marker, colorFacing)
}

func (p *Playing) drawUI(screen *ebiten.Image, gs state.GameState) {
	top := float64(p.screenH - hudHeight)

	heart := 10.0
	for i := 0; i < p.config.Rules.PlayerMaxHealth; i++ {
		c := colorHeartOff
		if i < gs.Player.Health {
			c = colorHeart
		}
		ebitenutil.DrawRect(screen, 8+float64(i)*(heart+4), top+6, heart, heart, c)
	}

	status := fmt.Sprintf("Rupees: %d  Enemies: %d", gs.Player.Rupees, len(gs.Enemies))
	ebitenutil.DebugPrintAt(screen, status, 8+p.config.Rules.PlayerMaxHealth*14+8, int(top)+2)
	ebitenutil.DebugPrintAt(screen, helpText(p.replayer != nil), 8, int(top)+16)
}

func helpText(playback bool) string {
	if playback {
		return "REPLAY | ESC: Pause"
	}
	return "Arrows/WASD: Move | Space: Attack | ESC: Pause"
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image, outcome state.Outcome) {
	overlay := color.RGBA{100, 0, 0, 180}
	if outcome.Status == state.StatusVictorious {
		overlay = color.RGBA{0, 80, 0, 180}
	}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := endText(outcome, p.replayer != nil)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-30)
}

func endText(outcome state.Outcome, playback bool) string {
	var sb strings.Builder
	if outcome.Status == state.StatusVictorious {
		sb.WriteString("VICTORY!")
	} else {
		sb.WriteString("GAME OVER")
	}
	fmt.Fprintf(&sb, "\n\nRupees collected: %d", outcome.Score)
	if !playback {
		sb.WriteString("\n\nPress Z to play again")
	}
	return sb.String()
}
