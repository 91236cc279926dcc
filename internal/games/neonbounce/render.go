package neonbounce

import (
	"fmt"
	"strings"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

// Visual characters for rendering
const (
	BallChar     = '●'
	PaddleChar   = '█'
	ObstacleChar = '▬'
	ShieldChar   = '─'
	GridChar     = '·'
	HeartChar    = '♥'
)

// Trail glyphs from oldest to newest.
var trailGlyphs = []rune{'·', '∙', '•'}

// Particle glyphs from faded to fresh.
var particleGlyphs = []rune{'.', '+', '*'}

// Bracket pairs cycled by power-up rotation.
var spinFrames = [][2]rune{{'[', ']'}, {'<', '>'}, {'(', ')'}, {'{', '}'}}

// Grid spacing in world units.
const gridStep = 100

// Minimum terminal size the playfield is drawn at.
const (
	minScreenW = 40
	minScreenH = 12
)

// hudRows is the number of rows above the playfield.
const hudRows = 1

// viewport maps world coordinates onto screen cells below the HUD.
type viewport struct {
	sx, sy float64
	cols   int
	rows   int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	rows := dst.Height() - hudRows
	return viewport{
		sx:   float64(dst.Width()) / worldW,
		sy:   float64(rows) / worldH,
		cols: dst.Width(),
		rows: rows,
	}
}

func (vp viewport) cell(p core.Vec) (int, int) {
	x := core.Clamp(int(p.X*vp.sx), 0, vp.cols-1)
	y := int(p.Y * vp.sy)
	return x, y + hudRows
}

func (vp viewport) visible(y int) bool {
	return y >= hudRows && y < vp.rows+hudRows
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	RenderView(dst, g.View())
}

// RenderView draws a view into dst. It is split from Render so that a
// captured view can be drawn without the game.
func RenderView(dst *core.Screen, v View) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	vp := newViewport(dst, v.Width, v.Height)

	renderGrid(dst, vp, v)
	renderObstacles(dst, vp, v)
	renderPowerUps(dst, vp, v)
	renderParticles(dst, vp, v)
	renderBalls(dst, vp, v)
	renderPaddle(dst, vp, v)
	renderHUD(dst, v.HUD)
	renderOverlay(dst, v.HUD)
}

func renderGrid(dst *core.Screen, vp viewport, v View) {
	for wy := float64(gridStep); wy < v.Height; wy += gridStep {
		for wx := float64(gridStep); wx < v.Width; wx += gridStep {
			x, y := vp.cell(core.Vec{X: wx, Y: wy})
			dst.SetShaded(x, y, GridChar, core.ColorDarkPurple, core.ShadeDim)
		}
	}
}

func renderObstacles(dst *core.Screen, vp viewport, v View) {
	for _, o := range v.Obstacles {
		x0, y := vp.cell(core.Vec{X: o.Bounds.X, Y: o.Bounds.Y})
		x1, _ := vp.cell(core.Vec{X: o.Bounds.Right(), Y: o.Bounds.Y})
		dst.DrawHLine(x0, y, max(1, x1-x0), ObstacleChar, core.ColorNeonPurple)
	}
}

func renderPowerUps(dst *core.Screen, vp viewport, v View) {
	for _, pu := range v.PowerUps {
		x, y := vp.cell(pu.Bounds.Center())
		if !vp.visible(y) {
			continue
		}
		frame := spinFrames[(pu.Rotation/90)%len(spinFrames)]
		dst.SetColored(x-1, y, frame[0], pu.Color)
		dst.SetColored(x, y, pu.Kind.Glyph(), pu.Color)
		dst.SetColored(x+1, y, frame[1], pu.Color)
	}
}

func renderParticles(dst *core.Screen, vp viewport, v View) {
	for _, p := range v.Particles {
		x, y := vp.cell(p.Pos)
		if !vp.visible(y) {
			continue
		}
		dst.SetShaded(x, y, fadeGlyph(particleGlyphs, p.Opacity), p.Color, fadeShade(p.Opacity))
	}
}

func renderBalls(dst *core.Screen, vp viewport, v View) {
	for _, b := range v.Balls {
		n := len(b.Trail)
		for i, pos := range b.Trail {
			x, y := vp.cell(pos)
			if !vp.visible(y) {
				continue
			}
			// Newer trail points are brighter.
			frac := float64(i+1) / float64(max(1, n))
			dst.SetShaded(x, y, fadeGlyph(trailGlyphs, frac), b.Color, fadeShade(frac))
		}
	}
	for _, b := range v.Balls {
		x, y := vp.cell(b.Pos)
		if vp.visible(y) {
			dst.SetShaded(x, y, BallChar, b.Color, core.ShadeGlow)
		}
	}
}

func renderPaddle(dst *core.Screen, vp viewport, v View) {
	r := v.Paddle.Bounds
	x0, y := vp.cell(core.Vec{X: r.X, Y: r.Y})
	x1, _ := vp.cell(core.Vec{X: r.Right(), Y: r.Y})
	w := max(1, x1-x0)
	shade := core.ShadeNormal
	if v.Paddle.Shield {
		shade = core.ShadeGlow
		for i := range w + 2 {
			dst.SetShaded(x0-1+i, y-1, ShieldChar, core.ColorNeonGreen, core.ShadeGlow)
		}
	}
	for i := range w {
		dst.SetShaded(x0+i, y, PaddleChar, core.ColorNeonPink, shade)
	}
}

type badge struct {
	text  string
	color core.Color
}

// renderHUD draws score, level, lives and combo on the left and the active
// effect badges on the right.
func renderHUD(dst *core.Screen, hud HUD) {
	left := fmt.Sprintf("SCORE %d  LEVEL %d  ", hud.Score, hud.Level)
	dst.DrawTextColored(1, 0, left, core.ColorNeonCyan)
	x := 1 + len(left)
	hearts := strings.Repeat(string(HeartChar), hud.Lives)
	dst.DrawTextColored(x, 0, hearts, core.ColorNeonPink)
	x += hud.Lives
	if hud.Combo > 0 {
		dst.DrawTextColored(x+2, 0, fmt.Sprintf("COMBO x%d", hud.Combo), core.ColorNeonYellow)
	}

	var badges []badge
	if hud.MultiplierActive {
		badges = append(badges, badge{fmt.Sprintf("%dX", hud.Multiplier), core.ColorNeonOrange})
	}
	if hud.SlowTimeActive {
		badges = append(badges, badge{"SLOW", core.ColorNeonPurple})
	}
	if hud.ShieldActive {
		badges = append(badges, badge{"SHIELD", core.ColorNeonGreen})
	}
	right := dst.Width() - 1
	for i := len(badges) - 1; i >= 0; i-- {
		right -= len(badges[i].text)
		dst.DrawTextColored(right, 0, badges[i].text, badges[i].color)
		right--
	}
}

// renderOverlay draws the pause and game-over boxes.
func renderOverlay(dst *core.Screen, hud HUD) {
	switch {
	case hud.GameOver:
		drawCenteredBox(dst, core.ColorNeonPink,
			"GAME OVER",
			fmt.Sprintf("Final Score: %d", hud.Score),
			fmt.Sprintf("Level Reached: %d", hud.Level),
			fmt.Sprintf("Max Combo: %d", hud.MaxCombo),
			"Press SPACE or R to restart",
		)
	case hud.Paused:
		drawCenteredBox(dst, core.ColorNeonCyan, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a bordered message box in the middle of the screen.
func drawCenteredBox(dst *core.Screen, c core.Color, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)
	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextColored(x, boxY+1+i, l, color)
	}
}

// fadeGlyph picks a glyph for a brightness in [0, 1].
func fadeGlyph(glyphs []rune, level float64) rune {
	idx := int(level * float64(len(glyphs)))
	return glyphs[core.Clamp(idx, 0, len(glyphs)-1)]
}

// dimBelow is the fade level under which cells are drawn dim.
const dimBelow = 0.4

func fadeShade(level float64) core.Shade {
	if level < dimBelow {
		return core.ShadeDim
	}
	return core.ShadeNormal
}
