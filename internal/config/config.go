// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

// RunnerConfig contains all tunables for the lane runner.
type RunnerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	World      WorldConfig      `yaml:"world"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines player movement parameters.
// All rates are per simulation tick.
type PhysicsConfig struct {
	LaneSpacing     float64 `yaml:"lane_spacing"`      // World units between lane centers
	LaneChangeSpeed float64 `yaml:"lane_change_speed"` // Exponential smoothing factor toward the lane target
	JumpSpeed       float64 `yaml:"jump_speed"`        // Ascent per tick while jumping
	FallSpeed       float64 `yaml:"fall_speed"`        // Descent per tick while falling
	JumpHeight      float64 `yaml:"jump_height"`       // Apex height at which ascent stops
}

// WorldConfig defines scrolling and ground parameters.
type WorldConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`      // Scroll speed at run start
	MaxSpeed       float64 `yaml:"max_speed"`       // Scroll speed ceiling
	SpeedIncrease  float64 `yaml:"speed_increase"`  // Added to speed every tick
	RearThreshold  float64 `yaml:"rear_threshold"`  // Z behind which objects are recycled/removed
	GroundSegments int     `yaml:"ground_segments"` // Number of pooled ground segments
	SegmentLength  float64 `yaml:"segment_length"`  // Length of one ground segment
}

// WrapSpan returns the distance a recycled ground segment jumps forward:
// the full span covered by the segment pool.
func (w WorldConfig) WrapSpan() float64 {
	return float64(w.GroundSegments) * w.SegmentLength
}

// ObstacleConfig defines spawning and collision parameters.
type ObstacleConfig struct {
	SpawnChance        float64 `yaml:"spawn_chance"`        // Per-tick probability of spawning one obstacle
	SpawnDistance      float64 `yaml:"spawn_distance"`      // Z at which obstacles appear
	CollisionTolerance float64 `yaml:"collision_tolerance"` // Lateral and longitudinal hit distance
	JumpSafeHeight     float64 `yaml:"jump_safe_height"`    // Vertical offset above which obstacles are cleared
	ScaleInMillis      int     `yaml:"scale_in_millis"`     // Duration of the one-shot spawn scale-in
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	ObstaclePoints  int `yaml:"obstacle_points"`   // Points per cleared obstacle
	PerfectRunEvery int `yaml:"perfect_run_every"` // Consecutive clears per bonus
	PerfectRunBonus int `yaml:"perfect_run_bonus"` // Bonus points (arcade mode)
}

// DifficultyConfig selects a default preset applied when no preset is
// given on the command line.
type DifficultyConfig struct {
	Preset string `yaml:"preset"` // "easy", "normal", "hard" or "fixed"
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings map to the
// empty preset, meaning "use the config default".
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	case "fixed":
		return DifficultyFixed
	default:
		return ""
	}
}

// ApplyPreset adjusts speed parameters for a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.World.SpeedIncrease *= 0.5
		cfg.World.MaxSpeed *= 0.75
	case DifficultyNormal:
		// Baseline values as shipped
	case DifficultyHard:
		cfg.World.BaseSpeed *= 1.25
		cfg.World.SpeedIncrease *= 2
	case DifficultyFixed:
		// No ramp: speed stays at base for the whole run
		cfg.World.SpeedIncrease = 0
		cfg.World.MaxSpeed = cfg.World.BaseSpeed
	}
}
