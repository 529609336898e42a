package climber

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/games/climber/sim"
)

// Visual characters for rendering
const (
	ActorChar         = '█'
	SolidChar         = '═'
	FragileChar       = '┄'
	MobileChar        = '≡'
	EnemyChar         = '▓'
	ShotChar          = '•'
	EnemyShotChar     = '*'
	BorderChar        = '│'
	EnergyFullChar    = '●'
	EnergyEmptyChar   = '○'
	minScreenW        = 24
	minScreenH        = 12
	cellAspect        = 2.0 // Terminal cells are about twice as tall as wide
	hudRows           = 1
	fieldBorderColumn = 1
)

// viewport maps world coordinates onto the playfield area of the screen.
type viewport struct {
	left, top  int // Top-left cell of the playfield
	cols, rows int
	fieldW     float64
	fieldH     float64
}

// newViewport fits the field into the screen below the HUD, keeping its
// proportions.
func newViewport(screenW, screenH int, fieldW, fieldH float64) viewport {
	rows := screenH - hudRows
	cols := int(float64(rows) * fieldW / fieldH * cellAspect)
	if maxCols := screenW - 2*fieldBorderColumn; cols > maxCols {
		cols = maxCols
		rows = int(float64(cols) * fieldH / fieldW / cellAspect)
	}
	cols = core.Max(cols, 1)
	rows = core.Max(rows, 1)
	return viewport{
		left:   (screenW - cols) / 2,
		top:    hudRows,
		cols:   cols,
		rows:   rows,
		fieldW: fieldW,
		fieldH: fieldH,
	}
}

// field returns the playfield cells.
func (v viewport) field() core.Rect {
	return core.NewRect(v.left, v.top, v.cols, v.rows)
}

// span converts a world box into an inclusive cell range. Every box covers
// at least one cell. Y is flipped so that world up is screen up.
func (v viewport) span(b core.Box) (x0, x1, y0, y1 int) {
	x0 = int(math.Floor(b.X / v.fieldW * float64(v.cols)))
	x1 = core.Max(x0, int(math.Ceil(b.Right()/v.fieldW*float64(v.cols)))-1)

	r0 := int(math.Floor(b.Y / v.fieldH * float64(v.rows)))
	r1 := core.Max(r0, int(math.Ceil(b.Top()/v.fieldH*float64(v.rows)))-1)

	bottom := v.top + v.rows - 1
	return v.left + x0, v.left + x1, bottom - r1, bottom - r0
}

// fill draws a box clipped to the playfield.
func (v viewport) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	x0, x1, y0, y1 := v.span(b)
	cells := core.NewRect(x0, y0, x1-x0+1, y1-y0+1).Intersect(v.field())
	dst.FillRect(cells, r, c)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.engine == nil {
		return
	}
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	cfg := g.engine.Config()
	v := newViewport(dst.Width(), dst.Height(), cfg.Field.Width, cfg.Field.Height)

	g.renderBorders(dst, v)
	g.renderPlatforms(dst, v)
	g.renderEnemies(dst, v)
	g.renderProjectiles(dst, v)
	g.renderActor(dst, v)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderBorders(dst *core.Screen, v viewport) {
	dst.DrawVLine(v.left-1, v.top, v.rows, BorderChar, core.ColorGray)
	dst.DrawVLine(v.left+v.cols, v.top, v.rows, BorderChar, core.ColorGray)
}

// renderPlatforms draws platforms and the items resting on them.
func (g *Game) renderPlatforms(dst *core.Screen, v viewport) {
	for _, p := range g.engine.Platforms() {
		switch p.Kind {
		case sim.PlatformFragile:
			if !p.Consumed {
				v.fill(dst, p.Box(), FragileChar, core.ColorOrange)
			}
		case sim.PlatformMobileSlow:
			v.fill(dst, p.Box(), MobileChar, core.ColorCyan)
		case sim.PlatformMobileFast:
			v.fill(dst, p.Box(), MobileChar, core.ColorBrightCyan)
		default:
			v.fill(dst, p.Box(), SolidChar, core.ColorWhite)
		}

		if p.Item != nil && p.Item.Active {
			v.fill(dst, p.Item.Box(), p.Item.Kind.Glyph(), itemColor(p.Item.Kind))
		}
	}
}

func itemColor(k sim.ItemKind) core.Color {
	switch k {
	case sim.ItemHazard:
		return core.ColorRed
	case sim.ItemHeal:
		return core.ColorBrightGreen
	case sim.ItemJumpBuff:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightBlue
	}
}

func (g *Game) renderEnemies(dst *core.Screen, v viewport) {
	for _, e := range g.engine.Enemies() {
		v.fill(dst, e.Box(), EnemyChar, core.ColorRed)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, v viewport) {
	for _, pr := range g.engine.Projectiles() {
		if pr.Owner == sim.OwnerEnemy {
			v.fill(dst, pr.Box(), EnemyShotChar, core.ColorMagenta)
		} else {
			v.fill(dst, pr.Box(), ShotChar, core.ColorYellow)
		}
	}
}

func (g *Game) renderActor(dst *core.Screen, v viewport) {
	a := g.engine.Actor()
	c := core.ColorBrightGreen
	switch {
	case g.hitFlash > 0:
		c = core.ColorBrightRed
	case a.BuffMs > 0:
		c = core.ColorYellow
	}
	v.fill(dst, a.Box(), ActorChar, c)
}

// renderHUD draws the score, health, energy and level line.
func (g *Game) renderHUD(dst *core.Screen) {
	cfg := g.engine.Config()
	a := g.engine.Actor()

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.engine.Score()))

	if cfg.Features.Health {
		hp := fmt.Sprintf("HP: %d/%d", a.Health, cfg.Actor.MaxHealth)
		c := core.ColorGreen
		if a.Health*4 <= cfg.Actor.MaxHealth {
			c = core.ColorRed
		}
		dst.DrawTextWithColor((dst.Width()-len(hp))/2, 0, hp, c)
	}

	right := fmt.Sprintf("Lv %.2f", g.engine.Level())
	if a.BuffMs > 0 {
		right = fmt.Sprintf("Jump %.0fs  %s", math.Ceil(a.BuffMs/1000), right)
	}
	x := dst.Width() - len(right) - 1
	dst.DrawText(x, 0, right)

	if cfg.Features.Energy && cfg.Actor.MaxEnergy > 0 {
		pips := energyPips(a.Energy, cfg.Actor.MaxEnergy)
		dst.DrawTextWithColor(x-len([]rune(pips))-2, 0, pips, core.ColorBrightYellow)
	}
}

func energyPips(energy, max int) string {
	var b strings.Builder
	for i := 0; i < max; i++ {
		if i < energy {
			b.WriteRune(EnergyFullChar)
		} else {
			b.WriteRune(EnergyEmptyChar)
		}
	}
	return b.String()
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.engine.GameOver():
		title := "GAME OVER"
		if g.engine.Reason() == sim.ReasonFell {
			title = "YOU FELL"
		}
		subtitle := fmt.Sprintf("Score: %d  Kills: %d  |  Press R to restart", g.engine.Score(), g.engine.Kills())
		g.drawCenteredBox(dst, title, subtitle)

	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case g.engine.Ticks() == 0:
		dst.DrawTextCentered(dst.Height()-1, "A/D or arrows to steer, SPACE to boost")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawTextWithColor(dst.CenterX(title), boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(core.Max(dst.CenterX(subtitle), boxX+1), boxY+3, subtitle)
}
