package neonbounce

import (
	"math"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/config"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

// Ball is a bouncing ball with a short position trail.
type Ball struct {
	Pos         core.Vec // Center
	Vel         core.Vec // Units per tick
	Radius      float64
	Color       core.Color
	BounceCount int // Paddle hits, never decreases

	trail    []core.Vec // Oldest first
	trailCap int
}

// newBall creates a ball at pos moving horizontally at vx.
func newBall(pos core.Vec, vx float64, color core.Color, cfg config.BallConfig) *Ball {
	return &Ball{
		Pos:      pos,
		Vel:      core.Vec{X: vx},
		Radius:   cfg.Radius,
		Color:    color,
		trail:    make([]core.Vec, 0, cfg.TrailLength+1),
		trailCap: cfg.TrailLength,
	}
}

// Update applies gravity, moves the ball and bounces it off the side and top edges.
// slow scales both the gravity pull and the displacement.
// The bottom edge is open; falling through it is handled by the game.
func (b *Ball) Update(slow float64, phys config.PhysicsConfig, width float64) {
	b.Vel.Y += phys.Gravity * slow
	b.Pos = b.Pos.Add(b.Vel.Scale(slow))

	b.pushTrail(b.Pos)

	if b.Pos.X <= b.Radius || b.Pos.X >= width-b.Radius {
		b.Vel.X = -b.Vel.X * phys.BounceDamping
		b.Pos.X = core.ClampF(b.Pos.X, b.Radius, width-b.Radius)
	}

	if b.Pos.Y <= b.Radius {
		b.Vel.Y = math.Abs(b.Vel.Y) * phys.BounceDamping
		b.Pos.Y = b.Radius
	}
}

// pushTrail records a position, evicting the oldest beyond capacity.
func (b *Ball) pushTrail(p core.Vec) {
	if b.trailCap <= 0 {
		return
	}
	b.trail = append(b.trail, p)
	if len(b.trail) > b.trailCap {
		copy(b.trail, b.trail[1:])
		b.trail = b.trail[:b.trailCap]
	}
}

// Trail returns a copy of the recorded positions, oldest first.
func (b *Ball) Trail() []core.Vec {
	out := make([]core.Vec, len(b.trail))
	copy(out, b.trail)
	return out
}

// Bounds returns the ball's bounding square.
func (b *Ball) Bounds() core.Rect {
	return core.SquareAround(b.Pos, b.Radius)
}

// Speed returns the magnitude of the velocity.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}
