package neonbounce

import (
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/config"
	"github.com/VishnuHariKaushik/Neon-Bounce-Utimate-Bouncing-Ball-game/internal/core"
)

// Obstacle is a bar patrolling horizontally between the side walls.
type Obstacle struct {
	Pos    core.Vec // Top-left corner
	Width  float64
	Height float64
	VX     float64
}

// Update moves the obstacle and turns it around at either wall.
func (o *Obstacle) Update(screenW float64) {
	o.Pos.X += o.VX
	if o.Pos.X <= 0 || o.Pos.X >= screenW-o.Width {
		o.VX = -o.VX
	}
}

// Bounds returns the obstacle rectangle.
func (o *Obstacle) Bounds() core.Rect {
	return core.NewRect(o.Pos.X, o.Pos.Y, o.Width, o.Height)
}

// obstacleCount returns how many obstacles a level has.
func obstacleCount(level int, cfg config.ObstacleConfig) int {
	return max(0, min(level, cfg.MaxCount))
}

// generateObstacles builds a fresh obstacle set for the level.
// Speed grows with the level while the count is capped.
func generateObstacles(dst []Obstacle, level int, cfg config.ObstacleConfig, screenW float64, rng Rand) []Obstacle {
	dst = dst[:0]
	maxX := int(screenW) - cfg.RightMargin
	for range obstacleCount(level, cfg) {
		x := randInt(rng, cfg.MinX, maxX)
		y := randInt(rng, cfg.MinY, cfg.MaxY)
		w := randInt(rng, cfg.MinWidth, cfg.MaxWidth)
		speed := uniform(rng, cfg.MinSpeed, cfg.MaxSpeed) * (1 + float64(level)*cfg.SpeedPerLevel)
		dst = append(dst, Obstacle{
			Pos:    core.Vec{X: float64(x), Y: float64(y)},
			Width:  float64(w),
			Height: cfg.Height,
			VX:     speed,
		})
	}
	return dst
}
