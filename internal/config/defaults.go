package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default configuration.
// Used as the last fallback if the embedded YAML fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			LaneSpacing:     2.0,
			LaneChangeSpeed: 0.1,
			JumpSpeed:       0.3,
			FallSpeed:       0.2,
			JumpHeight:      4.0,
		},
		World: WorldConfig{
			BaseSpeed:      0.2,
			MaxSpeed:       1.0,
			SpeedIncrease:  0.0005,
			RearThreshold:  -20.0,
			GroundSegments: 10,
			SegmentLength:  20.0,
		},
		Obstacles: ObstacleConfig{
			SpawnChance:        0.02,
			SpawnDistance:      100.0,
			CollisionTolerance: 1.5,
			JumpSafeHeight:     2.0,
			ScaleInMillis:      500,
		},
		Scoring: ScoringConfig{
			ObstaclePoints:  10,
			PerfectRunEvery: 10,
			PerfectRunBonus: 50,
		},
		Difficulty: DifficultyConfig{
			Preset: "normal",
		},
	}
}

// DefaultYAML returns the embedded default YAML, for dumping a starter
// config the user can edit.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
