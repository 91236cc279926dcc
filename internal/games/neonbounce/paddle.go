package neonbounce

import (
	"math"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/config"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

// Paddle is the player-controlled bar near the bottom of the playfield.
type Paddle struct {
	Pos         core.Vec // Top-left corner
	Width       float64
	Height      float64
	Speed       float64
	Shield      bool
	ShieldTimer int // Ticks left; Shield is true exactly while this is positive

	maxX float64
}

// newPaddle creates a paddle centered horizontally.
func newPaddle(cfg config.PaddleConfig, screen config.ScreenConfig) *Paddle {
	return &Paddle{
		Pos: core.Vec{
			X: math.Floor(screen.Width/2) - math.Floor(cfg.Width/2),
			Y: screen.Height - cfg.BottomOffset,
		},
		Width:  cfg.Width,
		Height: cfg.Height,
		Speed:  cfg.Speed,
		maxX:   screen.Width - cfg.Width,
	}
}

// MoveLeft shifts the paddle left, stopping at the screen edge.
func (p *Paddle) MoveLeft() {
	p.Pos.X = max(0, p.Pos.X-p.Speed)
}

// MoveRight shifts the paddle right, stopping at the screen edge.
func (p *Paddle) MoveRight() {
	p.Pos.X = min(p.maxX, p.Pos.X+p.Speed)
}

// Update counts the shield timer down.
func (p *Paddle) Update() {
	if p.ShieldTimer > 0 {
		p.ShieldTimer--
		if p.ShieldTimer == 0 {
			p.Shield = false
		}
	}
}

// ActivateShield raises the shield for the given number of ticks,
// replacing any time left on an active one.
func (p *Paddle) ActivateShield(ticks int) {
	if ticks <= 0 {
		return
	}
	p.Shield = true
	p.ShieldTimer = ticks
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.Pos.X, p.Pos.Y, p.Width, p.Height)
}
