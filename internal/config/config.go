// Package config provides YAML-based game configuration loading and
// difficulty presets for Neon Bounce.
package config

// NeonBounceConfig contains every tunable of the simulation.
// Distances are world units (pixels of a 1920x1080 playfield), times are ticks.
type NeonBounceConfig struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Ball      BallConfig     `yaml:"ball"`
	Paddle    PaddleConfig   `yaml:"paddle"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	PowerUps  PowerUpConfig  `yaml:"powerups"`
	Particles ParticleConfig `yaml:"particles"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Gameplay  GameplayConfig `yaml:"gameplay"`
}

// ScreenConfig defines the size of the simulated playfield.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines global physics parameters.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	BounceDamping float64 `yaml:"bounce_damping"`
	SlowFactor    float64 `yaml:"slow_factor"`
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	TrailLength int     `yaml:"trail_length"`
	SpawnY      float64 `yaml:"spawn_y"`
	MaxSpawnVX  float64 `yaml:"max_spawn_vx"` // Initial vx is uniform in [-max, max]
	SpeedBoost  float64 `yaml:"speed_boost"`  // Applied to the vertical component on paddle hits
	AngleSpread float64 `yaml:"angle_spread"` // Degrees between the two paddle-edge deflections
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the bottom edge to the paddle top
}

// ObstacleConfig defines how obstacles are generated for a level.
type ObstacleConfig struct {
	MaxCount      int     `yaml:"max_count"`
	Height        float64 `yaml:"height"`
	MinWidth      int     `yaml:"min_width"`
	MaxWidth      int     `yaml:"max_width"`
	MinX          int     `yaml:"min_x"`
	RightMargin   int     `yaml:"right_margin"` // Max x is screen width minus this
	MinY          int     `yaml:"min_y"`
	MaxY          int     `yaml:"max_y"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	SpeedPerLevel float64 `yaml:"speed_per_level"` // Speed is scaled by 1 + level*this
}

// PowerUpConfig defines power-up spawning and effect durations.
type PowerUpConfig struct {
	SpawnChance      float64 `yaml:"spawn_chance"` // Probability per tick
	Size             float64 `yaml:"size"`
	FallSpeed        float64 `yaml:"fall_speed"`
	SpawnY           float64 `yaml:"spawn_y"`
	SpawnMargin      int     `yaml:"spawn_margin"`
	MultiBallCount   int     `yaml:"multiball_count"`
	MegaBounceVY     float64 `yaml:"mega_bounce_vy"`
	SlowTimeTicks    int     `yaml:"slow_time_ticks"`
	ShieldTicks      int     `yaml:"shield_ticks"`
	MultiplierTicks  int     `yaml:"multiplier_ticks"`
	MultiplierFactor int     `yaml:"multiplier_factor"`
}

// ParticleConfig defines particle bursts.
type ParticleConfig struct {
	Lifetime      int     `yaml:"lifetime"`
	MinSize       int     `yaml:"min_size"`
	MaxSize       int     `yaml:"max_size"`
	Shrink        float64 `yaml:"shrink"`
	Gravity       float64 `yaml:"gravity"`
	Jitter        float64 `yaml:"jitter"`
	PaddleBurst   int     `yaml:"paddle_burst"`
	ObstacleBurst int     `yaml:"obstacle_burst"`
	PowerUpBurst  int     `yaml:"powerup_burst"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	PaddleHit      int `yaml:"paddle_hit"`
	ComboStep      int `yaml:"combo_step"` // Every N combo hits raise the per-hit tier
	PowerUpCollect int `yaml:"powerup_collect"`
	LevelThreshold int `yaml:"level_threshold"` // Level advances once score > level*this
}

// GameplayConfig defines lives.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset. Empty input means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
