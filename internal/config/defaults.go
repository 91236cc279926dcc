package config

import (
	_ "embed"
)

//go:embed defaults/neonbounce.yaml
var defaultNeonBounceYAML []byte

// DefaultNeonBounceConfig returns the built-in configuration.
// It mirrors defaults/neonbounce.yaml and is the fallback if the embed fails to parse.
func DefaultNeonBounceConfig() NeonBounceConfig {
	return NeonBounceConfig{
		Screen: ScreenConfig{
			Width:  1920,
			Height: 1080,
		},
		Physics: PhysicsConfig{
			Gravity:       0.5,
			BounceDamping: 0.85,
			SlowFactor:    0.3,
		},
		Ball: BallConfig{
			Radius:      12,
			TrailLength: 10,
			SpawnY:      100,
			MaxSpawnVX:  5,
			SpeedBoost:  1.02,
			AngleSpread: 60, // edges deflect by +-30 degrees
		},
		Paddle: PaddleConfig{
			Width:        120,
			Height:       15,
			Speed:        20,
			BottomOffset: 40,
		},
		Obstacles: ObstacleConfig{
			MaxCount:      5,
			Height:        10,
			MinWidth:      50,
			MaxWidth:      100,
			MinX:          100,
			RightMargin:   150,
			MinY:          200,
			MaxY:          400,
			MinSpeed:      1,
			MaxSpeed:      3,
			SpeedPerLevel: 0.1,
		},
		PowerUps: PowerUpConfig{
			SpawnChance:      0.002,
			Size:             30,
			FallSpeed:        2,
			SpawnY:           -30,
			SpawnMargin:      50,
			MultiBallCount:   2,
			MegaBounceVY:     -20,
			SlowTimeTicks:    300, // 5 seconds at 60 ticks/s
			ShieldTicks:      600, // 10 seconds
			MultiplierTicks:  450, // 7.5 seconds
			MultiplierFactor: 2,
		},
		Particles: ParticleConfig{
			Lifetime:      30,
			MinSize:       2,
			MaxSize:       6,
			Shrink:        0.1,
			Gravity:       0.2,
			Jitter:        3,
			PaddleBurst:   10,
			ObstacleBurst: 5,
			PowerUpBurst:  20,
		},
		Scoring: ScoringConfig{
			PaddleHit:      10,
			ComboStep:      5,
			PowerUpCollect: 50,
			LevelThreshold: 1000,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `config dump` style output.
func DefaultYAML() []byte {
	return defaultNeonBounceYAML
}
