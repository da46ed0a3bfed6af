package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Minimum screen size for a playable arena.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// Explosion frames, from fresh to fading.
var explosionGlyphs = []string{"\\|/", "-*-", "/|\\", "*", "+", "·", ".", "."}

type spriteSource interface {
	Sprite(v Visual) (Sprite, bool)
}

// viewport maps world coordinates into the arena box below the HUD row.
type viewport struct {
	left, top     int
	width, height int
	half          float64
}

func (v viewport) project(x, y float64) (int, int, bool) {
	if x < -v.half || x > v.half || y < -v.half || y > v.half {
		return 0, 0, false
	}
	col := v.left + int(math.Round((x+v.half)/(2*v.half)*float64(v.width-1)))
	row := v.top + int(math.Round((v.half-y)/(2*v.half)*float64(v.height-1)))
	return col, row, true
}

func (g *Game) render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "Screen too small", core.ColorRed)
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	dst.DrawBox(core.NewRect(0, 1, w, h-1), core.ColorCyan)
	vp := viewport{left: 1, top: 2, width: w - 2, height: h - 3, half: g.cfg.Arena.HalfExtent}

	if sprites, ok := g.visuals.(spriteSource); ok {
		for i := range g.stars.Len() {
			g.drawEntity(dst, vp, sprites, g.stars.At(i), "")
		}
		for i := range g.wave.Len() {
			g.drawEntity(dst, vp, sprites, g.wave.At(i), "")
		}
		for i := range g.bombs.Cap() {
			g.drawEntity(dst, vp, sprites, g.bombs.At(i), "")
		}
		for i := range g.missiles.Cap() {
			g.drawEntity(dst, vp, sprites, g.missiles.At(i), "")
		}
		if g.phase == PhasePlaying || g.phase == PhaseTitle {
			g.drawEntity(dst, vp, sprites, &g.ship, "")
		}
		for s := range g.explosions.Len() {
			g.drawExplosion(dst, vp, sprites, s)
		}
	}

	g.drawHUD(dst)
	g.drawBanner(dst)
}

func (g *Game) drawEntity(dst *core.Screen, vp viewport, sprites spriteSource, e *Entity, text string) {
	if !e.Enabled() {
		return
	}
	sp, ok := sprites.Sprite(e.Visual())
	if !ok {
		return
	}
	col, row, ok := vp.project(e.X(), e.Y())
	if !ok {
		return
	}
	if text == "" {
		text = sp.Text
	}
	n := len([]rune(text))
	x := col - n/2
	if x < vp.left {
		x = vp.left
	}
	if x+n > vp.left+vp.width {
		x = vp.left + vp.width - n
	}
	dst.DrawTextColor(x, row, text, sp.Color)
}

func (g *Game) drawExplosion(dst *core.Screen, vp viewport, sprites spriteSource, s int) {
	if !g.explosions.Active(s) {
		return
	}
	frame := g.explosions.Frame(s)
	strip := g.explosions.Strip(s)
	if frame >= len(strip) {
		return
	}
	glyph := explosionGlyphs[frame*len(explosionGlyphs)/len(strip)]
	g.drawEntity(dst, vp, sprites, &strip[frame], glyph)
}

func (g *Game) drawHUD(dst *core.Screen) {
	lives := fmt.Sprintf("LIVES %d", g.lives)
	score := fmt.Sprintf("SCORE %d", g.score)
	stage := fmt.Sprintf("STAGE %d/%d", g.stage, g.cfg.Gameplay.MaxStage)

	dst.DrawTextColor(1, 0, lives, core.ColorGreen)
	dst.DrawTextCentered(0, score, core.ColorBrightWhite)
	dst.DrawTextColor(dst.Width()-len(stage)-1, 0, stage, core.ColorYellow)
}

func (g *Game) drawBanner(dst *core.Screen) {
	var title, hint string
	var c core.Color
	switch g.phase {
	case PhaseTitle:
		title, hint, c = "I N V A D E R S", "press ENTER to start", core.ColorBrightYellow
	case PhaseStageClear:
		title, hint, c = fmt.Sprintf("STAGE %d CLEAR", g.stage), "press ENTER for the next stage", core.ColorGreen
	case PhaseGameOver:
		title, hint, c = "GAME OVER", "press ENTER to play again", core.ColorBrightRed
	case PhaseComplete:
		title, hint, c = "ALL STAGES COMPLETE", "press ENTER to play again", core.ColorBrightYellow
	default:
		return
	}
	if g.gate.Armed() {
		hint = "get ready..."
	}

	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, title, c)
	dst.DrawTextCentered(mid+1, hint, core.ColorGray)
}
