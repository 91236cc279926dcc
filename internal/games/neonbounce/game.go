// Package neonbounce implements the Neon Bounce simulation: a gravity-driven
// ball kept alive with a paddle, moving obstacles, falling power-ups and
// particle feedback. The package is pure logic; it draws into a core.Screen
// and never touches the terminal.
package neonbounce

import (
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/config"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

// GameID is the identifier used for stored runs.
const GameID = "neonbounce"

// Status is the top-level state of the simulation.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusGameOver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Colors a MultiBall spawn picks from.
var multiBallPalette = []core.Color{core.ColorNeonCyan, core.ColorNeonPink, core.ColorNeonGreen}

// Option configures a Game.
type Option func(*Game)

// WithRand makes the game draw from r instead of a SimpleRNG seeded on Reset.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.rng = r
		g.fixedRand = true
	}
}

// Game holds the complete simulation state. It is not safe for concurrent use.
type Game struct {
	cfg       config.NeonBounceConfig
	runtime   core.RuntimeConfig
	rng       Rand
	fixedRand bool

	paddle    *Paddle
	balls     []*Ball
	obstacles []Obstacle
	powerUps  []PowerUp
	particles []Particle

	score    int
	level    int
	lives    int
	combo    int
	maxCombo int

	multiplier      int
	multiplierTimer int
	slowTime        bool
	slowTimer       int

	status Status
	ticks  int
	events []core.Event
}

// New creates a game with the given tunables. Call Reset before stepping.
func New(cfg config.NeonBounceConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Bounce"
}

// Config returns the tunables the game runs with.
func (g *Game) Config() config.NeonBounceConfig {
	return g.cfg
}

// Reset initializes or restarts the game for the given runtime.
// The random source is reseeded from runtime.Seed unless one was injected.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if !g.fixedRand || g.rng == nil {
		g.rng = NewSimpleRNG(runtime.Seed)
	}
	g.restart()
}

// restart restores every initial value without touching the random source.
func (g *Game) restart() {
	g.paddle = newPaddle(g.cfg.Paddle, g.cfg.Screen)
	g.balls = []*Ball{g.spawnBall()}
	g.powerUps = g.powerUps[:0]
	g.particles = g.particles[:0]

	g.score = 0
	g.level = 1
	g.lives = g.cfg.Gameplay.Lives
	g.combo = 0
	g.maxCombo = 0

	g.multiplier = 1
	g.multiplierTimer = 0
	g.slowTime = false
	g.slowTimer = 0

	g.status = StatusRunning
	g.ticks = 0

	g.obstacles = generateObstacles(g.obstacles, g.level, g.cfg.Obstacles, g.cfg.Screen.Width, g.rng)
}

// spawnBall creates a fresh ball at the top center.
func (g *Game) spawnBall() *Ball {
	pos := core.Vec{X: g.cfg.Screen.Width / 2, Y: g.cfg.Ball.SpawnY}
	vx := uniform(g.rng, -g.cfg.Ball.MaxSpawnVX, g.cfg.Ball.MaxSpawnVX)
	return newBall(pos, vx, core.ColorNeonCyan, g.cfg.Ball)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.status == StatusGameOver {
		if in.Has(core.ActionRestart) || in.Has(core.ActionJump) {
			g.restart()
			g.emit(core.EventReset, 0, "")
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		if g.status == StatusPaused {
			g.status = StatusRunning
		} else {
			g.status = StatusPaused
		}
	}

	if g.status == StatusPaused {
		return g.result()
	}

	g.tick(in)
	return g.result()
}

// tick runs one Running step in the fixed order the game depends on.
func (g *Game) tick(in core.InputFrame) {
	g.ticks++
	width := g.cfg.Screen.Width

	// Left then right: when both are held the right move lands last.
	if in.Has(core.ActionLeft) {
		g.paddle.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.paddle.MoveRight()
	}
	g.paddle.Update()

	slow := 1.0
	if g.slowTime {
		slow = g.cfg.Physics.SlowFactor
	}

	for _, b := range g.balls {
		b.Update(slow, g.cfg.Physics, width)
		if hitsPaddle(b, g.paddle) {
			g.onPaddleHit(b)
		}
		for i := range g.obstacles {
			if bounceOffObstacle(b, &g.obstacles[i]) {
				g.onObstacleHit(b)
			}
		}
	}

	if g.retireLostBalls() {
		return
	}

	for i := range g.obstacles {
		g.obstacles[i].Update(width)
	}

	g.maybeSpawnPowerUp()
	g.updatePowerUps()
	g.updateParticles()
	g.updateTimers()

	g.maxCombo = max(g.maxCombo, g.combo)

	if g.score > g.level*g.cfg.Scoring.LevelThreshold {
		g.level++
		g.obstacles = generateObstacles(g.obstacles, g.level, g.cfg.Obstacles, width, g.rng)
		g.emit(core.EventLevelUp, g.level, "")
	}
}

func (g *Game) onPaddleHit(b *Ball) {
	bounceOffPaddle(b, g.paddle, g.cfg.Ball)
	g.combo++
	g.score += g.cfg.Scoring.PaddleHit * g.multiplier * (1 + g.combo/g.cfg.Scoring.ComboStep)
	g.particles = burst(g.particles, g.cfg.Particles.PaddleBurst, b.Pos, b.Vel.Scale(0.5), b.Color, g.cfg.Particles, g.rng)
}

func (g *Game) onObstacleHit(b *Ball) {
	g.combo = 0
	g.particles = burst(g.particles, g.cfg.Particles.ObstacleBurst, b.Pos, b.Vel.Scale(1.0/3), core.ColorNeonPurple, g.cfg.Particles, g.rng)
}

// retireLostBalls drops balls below the bottom edge and reports whether the
// game just ended.
func (g *Game) retireLostBalls() bool {
	kept := g.balls[:0]
	for _, b := range g.balls {
		if b.Pos.Y <= g.cfg.Screen.Height {
			kept = append(kept, b)
			continue
		}
		if !g.paddle.Shield {
			g.lives = max(0, g.lives-1)
			g.combo = 0
			g.emit(core.EventLifeLost, g.lives, "")
		}
	}
	clear(g.balls[len(kept):])
	g.balls = kept

	if len(g.balls) > 0 {
		return false
	}
	if g.lives > 0 {
		g.balls = append(g.balls, g.spawnBall())
		return false
	}
	g.status = StatusGameOver
	g.emit(core.EventGameOver, g.score, "")
	return true
}

func (g *Game) maybeSpawnPowerUp() {
	pc := g.cfg.PowerUps
	if g.rng.Float64() >= pc.SpawnChance {
		return
	}
	x := randInt(g.rng, pc.SpawnMargin, int(g.cfg.Screen.Width)-pc.SpawnMargin)
	kind := Kind(g.rng.Intn(int(kindCount)))
	g.powerUps = append(g.powerUps, PowerUp{
		Pos:  core.Vec{X: float64(x), Y: pc.SpawnY},
		Size: pc.Size,
		VY:   pc.FallSpeed,
		Kind: kind,
	})
}

func (g *Game) updatePowerUps() {
	kept := g.powerUps[:0]
	for _, pu := range g.powerUps {
		pu.Update()
		if catchesPowerUp(g.paddle, &pu) {
			g.collect(pu)
			continue
		}
		if pu.Pos.Y > g.cfg.Screen.Height {
			continue
		}
		kept = append(kept, pu)
	}
	g.powerUps = kept
}

// collect applies a caught power-up. The bonus uses the multiplier as it
// stands after the effect, so a caught Points2x pays double at once.
func (g *Game) collect(pu PowerUp) {
	g.activatePowerUp(pu.Kind)
	g.score += g.cfg.Scoring.PowerUpCollect * g.multiplier
	g.particles = burst(g.particles, g.cfg.Particles.PowerUpBurst, pu.Center(), core.Vec{}, pu.Kind.Color(), g.cfg.Particles, g.rng)
	g.emit(core.EventPowerUpCollected, int(pu.Kind), pu.Kind.String())
}

// activatePowerUp applies a power-up effect. Timed effects restart their
// timer instead of stacking.
func (g *Game) activatePowerUp(k Kind) {
	pc := g.cfg.PowerUps
	switch k {
	case KindMultiBall:
		origin := core.Vec{X: g.cfg.Screen.Width / 2, Y: g.cfg.Ball.SpawnY}
		if len(g.balls) > 0 {
			origin = g.balls[0].Pos
		}
		for range pc.MultiBallCount {
			vx := uniform(g.rng, -g.cfg.Ball.MaxSpawnVX, g.cfg.Ball.MaxSpawnVX)
			color := multiBallPalette[g.rng.Intn(len(multiBallPalette))]
			g.balls = append(g.balls, newBall(origin, vx, color, g.cfg.Ball))
		}
	case KindSlowTime:
		g.slowTime = pc.SlowTimeTicks > 0
		g.slowTimer = pc.SlowTimeTicks
	case KindMegaBounce:
		for _, b := range g.balls {
			b.Vel.Y = pc.MegaBounceVY
		}
	case KindShield:
		g.paddle.ActivateShield(pc.ShieldTicks)
	case KindPoints2x:
		if pc.MultiplierTicks > 0 {
			g.multiplier = pc.MultiplierFactor
			g.multiplierTimer = pc.MultiplierTicks
		}
	}
}

func (g *Game) updateParticles() {
	kept := g.particles[:0]
	for _, p := range g.particles {
		p.Update(g.cfg.Particles)
		if p.Alive() {
			kept = append(kept, p)
		}
	}
	g.particles = kept
}

func (g *Game) updateTimers() {
	if g.slowTimer > 0 {
		g.slowTimer--
		if g.slowTimer == 0 {
			g.slowTime = false
		}
	}
	if g.multiplierTimer > 0 {
		g.multiplierTimer--
		if g.multiplierTimer == 0 {
			g.multiplier = 1
		}
	}
}

func (g *Game) emit(kind core.EventKind, value int, label string) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value, Label: label})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		MaxCombo: g.maxCombo,
		Ticks:    g.ticks,
		GameOver: g.status == StatusGameOver,
		Paused:   g.status == StatusPaused,
	}
}

// Status returns whether the game is running, paused or over.
func (g *Game) Status() Status {
	return g.status
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}
