package neonbounce

import (
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/config"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

// Particle is a short-lived spark emitted by collisions and pickups.
type Particle struct {
	Pos      core.Vec
	Vel      core.Vec
	Color    core.Color
	Lifetime int     // Ticks left to live
	Size     float64 // Shrinks every tick, never below 1
}

// newParticle creates a particle with jittered velocity around base.
func newParticle(pos, base core.Vec, color core.Color, cfg config.ParticleConfig, rng Rand) Particle {
	return Particle{
		Pos: pos,
		Vel: core.Vec{
			X: base.X + uniform(rng, -cfg.Jitter, cfg.Jitter),
			Y: base.Y + uniform(rng, -cfg.Jitter, cfg.Jitter),
		},
		Color:    color,
		Lifetime: cfg.Lifetime,
		Size:     float64(randInt(rng, cfg.MinSize, cfg.MaxSize)),
	}
}

// Update advances the particle one tick.
func (p *Particle) Update(cfg config.ParticleConfig) {
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel.Y += cfg.Gravity
	p.Lifetime--
	p.Size = max(1, p.Size-cfg.Shrink)
}

// Alive reports whether the particle should stay on screen.
func (p Particle) Alive() bool {
	return p.Lifetime > 0
}

// Opacity returns the fade level in [0, 1] as min(255, lifetime*8)/255.
// Lifetimes of 32 ticks or more are fully opaque.
func (p Particle) Opacity() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return float64(min(255, p.Lifetime*8)) / 255
}

// burst appends n particles at pos.
func burst(dst []Particle, n int, pos, base core.Vec, color core.Color, cfg config.ParticleConfig, rng Rand) []Particle {
	for range n {
		dst = append(dst, newParticle(pos, base, color, cfg, rng))
	}
	return dst
}
