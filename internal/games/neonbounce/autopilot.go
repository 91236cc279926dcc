package neonbounce

import (
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

// Autopilot steers the paddle under the most urgent ball. It is used by
// headless runs and tests; its choices depend only on the view it is given.
type Autopilot struct {
	// Deadzone is how far, in world units, the paddle center may sit from
	// the target before the autopilot moves.
	Deadzone float64
}

// NewAutopilot creates an autopilot with a deadzone of a quarter paddle speed.
func NewAutopilot() *Autopilot {
	return &Autopilot{Deadzone: 5}
}

// Input returns the movement intent for the next tick.
func (a *Autopilot) Input(v View) core.InputFrame {
	in := core.NewInputFrame()
	target, ok := a.target(v)
	if !ok || v.HUD.GameOver || v.HUD.Paused {
		return in
	}

	center := v.Paddle.Bounds.Center().X
	switch {
	case target < center-a.Deadzone:
		in.Set(core.ActionLeft)
	case target > center+a.Deadzone:
		in.Set(core.ActionRight)
	}
	return in
}

// target picks the lowest ball that is falling, or the lowest ball overall.
func (a *Autopilot) target(v View) (float64, bool) {
	var best *BallView
	for i := range v.Balls {
		b := &v.Balls[i]
		if best == nil {
			best = b
			continue
		}
		falling, bestFalling := b.Vel.Y > 0, best.Vel.Y > 0
		if falling != bestFalling {
			if falling {
				best = b
			}
			continue
		}
		if b.Pos.Y > best.Pos.Y {
			best = b
		}
	}
	if best == nil {
		return 0, false
	}
	return best.Pos.X, true
}
