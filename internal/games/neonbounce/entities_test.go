package neonbounce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/config"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

func TestPaddleStaysOnScreen(t *testing.T) {
	cfg := config.DefaultNeonBounceConfig()
	p := newPaddle(cfg.Paddle, cfg.Screen)
	rng := NewSimpleRNG(7)

	maxX := cfg.Screen.Width - cfg.Paddle.Width
	for i := range 2000 {
		// Long runs in one direction pin the paddle against each wall.
		if (i/150)%2 == 0 && rng.Intn(4) != 0 {
			p.MoveLeft()
		} else {
			p.MoveRight()
		}
		require.GreaterOrEqual(t, p.Pos.X, 0.0, "step %d", i)
		require.LessOrEqual(t, p.Pos.X, maxX, "step %d", i)
	}
}

func TestPaddleStartsCentered(t *testing.T) {
	cfg := config.DefaultNeonBounceConfig()
	p := newPaddle(cfg.Paddle, cfg.Screen)

	assert.Equal(t, core.Vec{X: 900, Y: 1040}, p.Pos)
}

func TestPaddleShieldTimer(t *testing.T) {
	cfg := config.DefaultNeonBounceConfig()
	p := newPaddle(cfg.Paddle, cfg.Screen)

	p.ActivateShield(3)
	for i := range 2 {
		p.Update()
		require.True(t, p.Shield, "shield dropped after %d updates, want 3", i+1)
	}
	p.Update()
	assert.False(t, p.Shield)
	assert.Equal(t, 0, p.ShieldTimer)

	// Extra updates never push the timer negative.
	p.Update()
	assert.Equal(t, 0, p.ShieldTimer)
}

func TestBallTrailKeepsRecentPositions(t *testing.T) {
	cfg := config.DefaultNeonBounceConfig()
	b := newBall(core.Vec{X: 500, Y: 100}, 3, core.ColorNeonCyan, cfg.Ball)

	var seen []core.Vec
	for range 25 {
		b.Update(1, cfg.Physics, cfg.Screen.Width)
		seen = append(seen, b.Pos)

		trail := b.Trail()
		require.LessOrEqual(t, len(trail), cfg.Ball.TrailLength)
		require.Equal(t, seen[max(0, len(seen)-cfg.Ball.TrailLength):], trail)
	}
}

func TestBallGravityAndSlowFactor(t *testing.T) {
	cfg := config.DefaultNeonBounceConfig()

	tests := []struct {
		name   string
		slow   float64
		wantVY float64
		wantY  float64
	}{
		{"normal", 1, 0.5, 100.5},
		{"slowed", 0.3, 0.15, 100.045},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBall(core.Vec{X: 500, Y: 100}, 0, core.ColorNeonCyan, cfg.Ball)
			b.Update(tt.slow, cfg.Physics, cfg.Screen.Width)
			assert.InDelta(t, tt.wantVY, b.Vel.Y, 1e-9)
			assert.InDelta(t, tt.wantY, b.Pos.Y, 1e-9)
		})
	}
}

func TestBallWallBounces(t *testing.T) {
	cfg := config.DefaultNeonBounceConfig()
	r := cfg.Ball.Radius

	t.Run("left wall", func(t *testing.T) {
		b := newBall(core.Vec{X: r + 2, Y: 500}, -10, core.ColorNeonCyan, cfg.Ball)
		b.Update(1, cfg.Physics, cfg.Screen.Width)
		assert.Equal(t, r, b.Pos.X)
		assert.InDelta(t, 8.5, b.Vel.X, 1e-9)
	})

	t.Run("right wall", func(t *testing.T) {
		b := newBall(core.Vec{X: cfg.Screen.Width - r - 2, Y: 500}, 10, core.ColorNeonCyan, cfg.Ball)
		b.Update(1, cfg.Physics, cfg.Screen.Width)
		assert.Equal(t, cfg.Screen.Width-r, b.Pos.X)
		assert.InDelta(t, -8.5, b.Vel.X, 1e-9)
	})

	t.Run("top wall", func(t *testing.T) {
		b := newBall(core.Vec{X: 500, Y: r + 1}, 0, core.ColorNeonCyan, cfg.Ball)
		b.Vel.Y = -10.5
		b.Update(1, cfg.Physics, cfg.Screen.Width)
		assert.Equal(t, r, b.Pos.Y)
		assert.InDelta(t, 8.5, b.Vel.Y, 1e-9, "top wall sends the ball down")
	})

	t.Run("no floor", func(t *testing.T) {
		b := newBall(core.Vec{X: 500, Y: cfg.Screen.Height}, 0, core.ColorNeonCyan, cfg.Ball)
		b.Vel.Y = 5
		b.Update(1, cfg.Physics, cfg.Screen.Width)
		assert.Greater(t, b.Pos.Y, cfg.Screen.Height)
		assert.Greater(t, b.Vel.Y, 0.0)
	})
}

func TestObstacleTurnsAtWalls(t *testing.T) {
	o := Obstacle{Pos: core.Vec{X: 1, Y: 300}, Width: 50, Height: 10, VX: -2}
	o.Update(1920)
	assert.Equal(t, 2.0, o.VX, "left wall")

	o = Obstacle{Pos: core.Vec{X: 1868, Y: 300}, Width: 50, Height: 10, VX: 3}
	o.Update(1920)
	assert.Equal(t, -3.0, o.VX, "right wall")
}

func TestGenerateObstacles(t *testing.T) {
	cfg := config.DefaultNeonBounceConfig()
	rng := NewSimpleRNG(99)

	for level := 1; level <= 8; level++ {
		obs := generateObstacles(nil, level, cfg.Obstacles, cfg.Screen.Width, rng)
		require.Len(t, obs, min(level, 5), "level %d", level)

		scale := 1 + 0.1*float64(level)
		for i, o := range obs {
			assert.GreaterOrEqual(t, o.Pos.X, 100.0, "level %d obstacle %d", level, i)
			assert.LessOrEqual(t, o.Pos.X, 1770.0, "level %d obstacle %d", level, i)
			assert.GreaterOrEqual(t, o.Pos.Y, 200.0, "level %d obstacle %d", level, i)
			assert.LessOrEqual(t, o.Pos.Y, 400.0, "level %d obstacle %d", level, i)
			assert.GreaterOrEqual(t, o.Width, 50.0, "level %d obstacle %d", level, i)
			assert.LessOrEqual(t, o.Width, 100.0, "level %d obstacle %d", level, i)
			assert.Equal(t, 10.0, o.Height)
			assert.GreaterOrEqual(t, o.VX, 1*scale, "level %d obstacle %d", level, i)
			assert.Less(t, o.VX, 3*scale, "level %d obstacle %d", level, i)
		}
	}
}

func TestParticleLifecycle(t *testing.T) {
	cfg := config.DefaultNeonBounceConfig().Particles
	p := newParticle(core.Vec{X: 10, Y: 10}, core.Vec{X: 1}, core.ColorNeonPink, cfg, &stubRand{float: 0.5})

	assert.Equal(t, 2.0, p.Size, "lowest size draw")
	// A 30-tick particle starts at alpha 240, never fully opaque.
	assert.InDelta(t, 240.0/255, p.Opacity(), 1e-9)

	for range cfg.Lifetime - 1 {
		p.Update(cfg)
	}
	require.True(t, p.Alive(), "particle died early")
	assert.Equal(t, 1.0, p.Size, "size floor")
	assert.InDelta(t, 8.0/255, p.Opacity(), 1e-9)

	p.Update(cfg)
	assert.False(t, p.Alive())
	assert.Zero(t, p.Opacity())
}

func TestParticleOpacityCapsAtFull(t *testing.T) {
	cfg := config.DefaultNeonBounceConfig().Particles
	p := newParticle(core.Vec{}, core.Vec{}, core.ColorNeonPink, cfg, &stubRand{float: 0.5})

	p.Lifetime = 32
	assert.Equal(t, 1.0, p.Opacity())
	p.Lifetime = 100
	assert.Equal(t, 1.0, p.Opacity())
}

func TestPowerUpKinds(t *testing.T) {
	seen := make(map[rune]bool)
	for k := KindMultiBall; k < kindCount; k++ {
		assert.NotEqual(t, "?", k.String(), "kind %d has no name", k)
		assert.False(t, seen[k.Glyph()], "kind %s reuses glyph %q", k, k.Glyph())
		seen[k.Glyph()] = true
	}
}

func TestSimpleRNGRanges(t *testing.T) {
	rng := NewSimpleRNG(0)
	for range 1000 {
		f := rng.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)

		n := randInt(rng, 2, 6)
		require.GreaterOrEqual(t, n, 2)
		require.LessOrEqual(t, n, 6)
	}
	assert.Equal(t, 0, rng.Intn(0))
}
