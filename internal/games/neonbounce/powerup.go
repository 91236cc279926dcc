package neonbounce

import (
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

// Kind identifies a power-up effect.
type Kind int

const (
	KindMultiBall Kind = iota
	KindSlowTime
	KindMegaBounce
	KindShield
	KindPoints2x
	kindCount
)

// String returns the name of the power-up kind.
func (k Kind) String() string {
	switch k {
	case KindMultiBall:
		return "MultiBall"
	case KindSlowTime:
		return "SlowTime"
	case KindMegaBounce:
		return "MegaBounce"
	case KindShield:
		return "Shield"
	case KindPoints2x:
		return "Points2x"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindMultiBall:
		return 'M'
	case KindSlowTime:
		return 'S'
	case KindMegaBounce:
		return 'B'
	case KindShield:
		return 'H'
	case KindPoints2x:
		return '2'
	default:
		return '?'
	}
}

// Color returns the neon color of a power-up kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindMultiBall:
		return core.ColorNeonCyan
	case KindSlowTime:
		return core.ColorNeonPurple
	case KindMegaBounce:
		return core.ColorNeonYellow
	case KindShield:
		return core.ColorNeonGreen
	case KindPoints2x:
		return core.ColorNeonOrange
	default:
		return core.ColorWhite
	}
}

// PowerUp is a falling collectible.
type PowerUp struct {
	Pos      core.Vec // Top-left corner
	Size     float64
	VY       float64
	Kind     Kind
	Rotation int // Degrees, advances 5 per tick for the spinning glyph
}

// Update moves the power-up down.
func (p *PowerUp) Update() {
	p.Pos.Y += p.VY
	p.Rotation = (p.Rotation + 5) % 360
}

// Bounds returns the power-up box.
func (p *PowerUp) Bounds() core.Rect {
	return core.NewRect(p.Pos.X, p.Pos.Y, p.Size, p.Size)
}

// Center returns the middle of the power-up box.
func (p *PowerUp) Center() core.Vec {
	return p.Bounds().Center()
}
