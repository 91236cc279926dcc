package neonbounce

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

// HUD is the scalar state shown above the playfield.
type HUD struct {
	Score            int
	Level            int
	Lives            int
	Combo            int
	MaxCombo         int
	Multiplier       int
	MultiplierActive bool
	SlowTimeActive   bool
	ShieldActive     bool
	GameOver         bool
	Paused           bool
}

// PaddleView is a read-only copy of the paddle.
type PaddleView struct {
	Bounds      core.Rect
	Shield      bool
	ShieldTicks int
}

// BallView is a read-only copy of a ball.
type BallView struct {
	Pos    core.Vec
	Vel    core.Vec
	Radius float64
	Color  core.Color
	Trail  []core.Vec // Oldest first
}

// ObstacleView is a read-only copy of an obstacle.
type ObstacleView struct {
	Bounds core.Rect
}

// PowerUpView is a read-only copy of a falling power-up.
type PowerUpView struct {
	Bounds   core.Rect
	Kind     Kind
	Color    core.Color
	Rotation int
}

// ParticleView is a read-only copy of a particle.
type ParticleView struct {
	Pos     core.Vec
	Size    float64
	Color   core.Color
	Opacity float64
}

// View is everything a renderer needs after a tick.
// It shares no memory with the game.
type View struct {
	Tick      int
	Width     float64
	Height    float64
	HUD       HUD
	Paddle    PaddleView
	Balls     []BallView
	Obstacles []ObstacleView
	PowerUps  []PowerUpView
	Particles []ParticleView
}

// View returns a copy of the current simulation state.
func (g *Game) View() View {
	v := View{
		Tick:   g.ticks,
		Width:  g.cfg.Screen.Width,
		Height: g.cfg.Screen.Height,
		HUD: HUD{
			Score:            g.score,
			Level:            g.level,
			Lives:            g.lives,
			Combo:            g.combo,
			MaxCombo:         g.maxCombo,
			Multiplier:       g.multiplier,
			MultiplierActive: g.multiplierTimer > 0,
			SlowTimeActive:   g.slowTime,
			GameOver:         g.status == StatusGameOver,
			Paused:           g.status == StatusPaused,
		},
		Balls:     make([]BallView, 0, len(g.balls)),
		Obstacles: make([]ObstacleView, 0, len(g.obstacles)),
		PowerUps:  make([]PowerUpView, 0, len(g.powerUps)),
		Particles: make([]ParticleView, 0, len(g.particles)),
	}

	if g.paddle != nil {
		v.HUD.ShieldActive = g.paddle.Shield
		v.Paddle = PaddleView{
			Bounds:      g.paddle.Bounds(),
			Shield:      g.paddle.Shield,
			ShieldTicks: g.paddle.ShieldTimer,
		}
	}
	for _, b := range g.balls {
		v.Balls = append(v.Balls, BallView{
			Pos:    b.Pos,
			Vel:    b.Vel,
			Radius: b.Radius,
			Color:  b.Color,
			Trail:  b.Trail(),
		})
	}
	for _, o := range g.obstacles {
		v.Obstacles = append(v.Obstacles, ObstacleView{Bounds: o.Bounds()})
	}
	for _, pu := range g.powerUps {
		v.PowerUps = append(v.PowerUps, PowerUpView{
			Bounds:   pu.Bounds(),
			Kind:     pu.Kind,
			Color:    pu.Kind.Color(),
			Rotation: pu.Rotation,
		})
	}
	for _, p := range g.particles {
		v.Particles = append(v.Particles, ParticleView{
			Pos:     p.Pos,
			Size:    p.Size,
			Color:   p.Color,
			Opacity: p.Opacity(),
		})
	}
	return v
}

// Hash returns a digest of the view for determinism checks.
// Floats are hashed by their bit patterns, so equal hashes mean identical runs.
func (v View) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putInt := func(n int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(n)) //#nosec G115 -- hash computation
		_, _ = h.Write(buf[:])
	}
	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = h.Write(buf[:])
	}
	putBool := func(b bool) {
		if b {
			putInt(1)
		} else {
			putInt(0)
		}
	}
	putRect := func(r core.Rect) {
		putFloat(r.X)
		putFloat(r.Y)
		putFloat(r.W)
		putFloat(r.H)
	}

	putInt(v.Tick)
	putInt(v.HUD.Score)
	putInt(v.HUD.Level)
	putInt(v.HUD.Lives)
	putInt(v.HUD.Combo)
	putInt(v.HUD.MaxCombo)
	putInt(v.HUD.Multiplier)
	putBool(v.HUD.SlowTimeActive)
	putBool(v.HUD.ShieldActive)
	putBool(v.HUD.GameOver)
	putBool(v.HUD.Paused)

	putRect(v.Paddle.Bounds)
	putInt(v.Paddle.ShieldTicks)

	putInt(len(v.Balls))
	for _, b := range v.Balls {
		putFloat(b.Pos.X)
		putFloat(b.Pos.Y)
		putFloat(b.Vel.X)
		putFloat(b.Vel.Y)
		putInt(len(b.Trail))
	}
	putInt(len(v.Obstacles))
	for _, o := range v.Obstacles {
		putRect(o.Bounds)
	}
	putInt(len(v.PowerUps))
	for _, pu := range v.PowerUps {
		putRect(pu.Bounds)
		putInt(int(pu.Kind))
	}
	putInt(len(v.Particles))
	for _, p := range v.Particles {
		putFloat(p.Pos.X)
		putFloat(p.Pos.Y)
		putFloat(p.Size)
	}
	return h.Sum64()
}
