package neonbounce

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t)
	g.score = 120
	g.combo = 3
	g.activatePowerUp(KindPoints2x)
	g.activatePowerUp(KindShield)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	hud := scr.Row(0)
	for _, want := range []string{"SCORE 120", "LEVEL 1", "♥♥♥", "COMBO x3", "2X", "SHIELD"} {
		assert.Contains(t, hud, want)
	}
	assert.NotContains(t, hud, "SLOW", "slow time is off")
}

func TestRenderEntities(t *testing.T) {
	g := newTestGame(t)
	g.Step(noInput())

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	for _, r := range []rune{BallChar, PaddleChar, ObstacleChar} {
		assert.True(t, strings.ContainsRune(scr.String(), r), "screen is missing %q", r)
	}

	// The paddle spans 120 of 1920 world units: 5 of 80 columns.
	paddleRow := -1
	for y := range scr.Height() {
		if strings.Count(scr.Row(y), string(PaddleChar)) == 5 {
			paddleRow = y
		}
	}
	require.GreaterOrEqual(t, paddleRow, 0, "no row holds a 5-cell paddle")
	assert.Equal(t, core.ColorNeonPink, scr.GetCell(40, paddleRow).Color)
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 24)

	g.Step(core.NewInputFrame(core.ActionPause))
	g.Render(scr)
	assert.Contains(t, scr.String(), "PAUSED")

	g.Step(core.NewInputFrame(core.ActionPause))
	g.score = 640
	g.maxCombo = 6
	g.lives = 1
	dropBalls(g)
	g.Step(noInput())
	g.Render(scr)
	for _, want := range []string{"GAME OVER", "Final Score: 640", "Level Reached: 1", "Max Combo: 6"} {
		assert.Contains(t, scr.String(), want)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(20, 8)

	g.Render(scr)

	assert.Contains(t, scr.String(), "Window too small")
}

func TestFadeGlyph(t *testing.T) {
	tests := []struct {
		level float64
		want  rune
	}{
		{0, '.'},
		{0.2, '.'},
		{0.5, '+'},
		{0.99, '*'},
		{1, '*'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fadeGlyph(particleGlyphs, tt.level), "level %v", tt.level)
	}
}

func TestAutopilotFollowsFallingBall(t *testing.T) {
	pilot := NewAutopilot()
	v := View{
		Paddle: PaddleView{Bounds: core.NewRect(900, 1040, 120, 15)},
		Balls: []BallView{
			{Pos: core.Vec{X: 1500, Y: 900}, Vel: core.Vec{Y: -3}},
			{Pos: core.Vec{X: 200, Y: 600}, Vel: core.Vec{Y: 4}},
		},
	}

	in := pilot.Input(v)
	assert.True(t, in.Has(core.ActionLeft), "chase the falling ball on the left")
	assert.False(t, in.Has(core.ActionRight))

	v.Balls[1].Pos.X = 962
	in = pilot.Input(v)
	assert.False(t, in.Has(core.ActionLeft), "hold inside the deadzone")
	assert.False(t, in.Has(core.ActionRight), "hold inside the deadzone")

	v.Balls = nil
	assert.Empty(t, pilot.Input(v).Actions, "idle without balls")
}

// findCell returns the first cell holding r.
func findCell(t *testing.T, scr *core.Screen, r rune) core.Cell {
	t.Helper()
	for y := range scr.Height() {
		for x := range scr.Width() {
			if c := scr.GetCell(x, y); c.Rune == r {
				return c
			}
		}
	}
	require.Failf(t, "rune not drawn", "%q", r)
	return core.Cell{}
}

func TestRenderShades(t *testing.T) {
	g := newTestGame(t)
	g.obstacles = nil
	g.particles = []Particle{
		{Pos: core.Vec{X: 300, Y: 550}, Color: core.ColorNeonPink, Lifetime: 2, Size: 1},
		{Pos: core.Vec{X: 1500, Y: 550}, Color: core.ColorNeonPink, Lifetime: 30, Size: 1},
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	assert.Equal(t, core.ShadeDim, findCell(t, scr, '.').Shade, "dying particle")
	assert.Equal(t, core.ShadeNormal, findCell(t, scr, '*').Shade, "fresh particle")
	assert.Equal(t, core.ShadeGlow, findCell(t, scr, BallChar).Shade)
	assert.Equal(t, core.ShadeDim, findCell(t, scr, GridChar).Shade)
	assert.Equal(t, core.ShadeNormal, findCell(t, scr, PaddleChar).Shade, "unshielded paddle")

	g.activatePowerUp(KindShield)
	scr.Clear()
	g.Render(scr)

	assert.Equal(t, core.ShadeGlow, findCell(t, scr, PaddleChar).Shade, "shielded paddle")
	assert.Equal(t, core.ShadeGlow, findCell(t, scr, ShieldChar).Shade)
}

func TestFadeShade(t *testing.T) {
	assert.Equal(t, core.ShadeDim, fadeShade(0))
	assert.Equal(t, core.ShadeDim, fadeShade(0.39))
	assert.Equal(t, core.ShadeNormal, fadeShade(dimBelow))
	assert.Equal(t, core.ShadeNormal, fadeShade(1))
}
