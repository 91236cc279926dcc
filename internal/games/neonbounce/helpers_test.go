package neonbounce

import (
	"testing"

	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/config"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

// stubRand returns the same float every call and cycles through ints.
// With the default float of 0.5 no power-up ever spawns and every jitter is zero.
type stubRand struct {
	float float64
	ints  []int
	next  int
}

func (r *stubRand) Float64() float64 {
	return r.float
}

func (r *stubRand) Intn(n int) int {
	if n <= 0 || len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.next%len(r.ints)]
	r.next++
	return v % n
}

// newTestGame returns a reset game with the default tunables and a stub random source.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultNeonBounceConfig(), WithRand(&stubRand{float: 0.5}))
	g.Reset(core.DefaultConfig())
	return g
}

// noInput is an empty input frame.
func noInput() core.InputFrame {
	return core.NewInputFrame()
}

// dropBalls moves every ball below the bottom edge.
func dropBalls(g *Game) {
	for _, b := range g.balls {
		b.Pos = core.Vec{X: b.Pos.X, Y: g.cfg.Screen.Height + 100}
		b.Vel = core.Vec{}
	}
}
