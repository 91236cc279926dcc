package neonbounce

import (
	"math"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/config"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

// hitsPaddle reports whether the ball's vertical span reaches the paddle band
// while its center lies within the paddle's horizontal span. Edges count.
func hitsPaddle(b *Ball, p *Paddle) bool {
	return b.Pos.Y+b.Radius >= p.Pos.Y &&
		b.Pos.Y-b.Radius <= p.Pos.Y+p.Height &&
		b.Pos.X >= p.Pos.X &&
		b.Pos.X <= p.Pos.X+p.Width
}

// paddleHitPos returns where the ball struck the paddle, 0 at the left edge and 1 at the right.
func paddleHitPos(b *Ball, p *Paddle) float64 {
	if p.Width <= 0 {
		return 0.5
	}
	return core.ClampF((b.Pos.X-p.Pos.X)/p.Width, 0, 1)
}

// bounceAngle maps a hit position to a deflection in radians from vertical.
func bounceAngle(hitPos float64, cfg config.BallConfig) float64 {
	spread := cfg.AngleSpread * math.Pi / 180
	return (hitPos - 0.5) * spread
}

// bounceOffPaddle redirects the ball upward. Speed is kept and the vertical
// component gets the configured boost.
func bounceOffPaddle(b *Ball, p *Paddle, cfg config.BallConfig) {
	angle := bounceAngle(paddleHitPos(b, p), cfg)
	speed := b.Speed()
	b.Vel.X = speed * math.Sin(angle)
	b.Vel.Y = -math.Abs(speed*math.Cos(angle)) * cfg.SpeedBoost
	b.BounceCount++
}

// bounceOffObstacle resolves a ball/obstacle overlap. It reports false when
// the two do not touch.
func bounceOffObstacle(b *Ball, o *Obstacle) bool {
	box := o.Bounds()
	if !b.Bounds().Touches(box) {
		return false
	}
	switch {
	case b.Pos.Y < box.Y:
		b.Vel.Y = -math.Abs(b.Vel.Y)
	case b.Pos.Y > box.Bottom():
		b.Vel.Y = math.Abs(b.Vel.Y)
	default:
		b.Vel.X = -b.Vel.X
	}
	return true
}

// catchesPowerUp reports whether the paddle overlaps a falling power-up.
func catchesPowerUp(p *Paddle, pu *PowerUp) bool {
	return p.Bounds().Touches(pu.Bounds())
}
