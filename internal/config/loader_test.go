package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	want := DefaultRunnerConfig()
	if cfg.Physics.LaneSpacing != want.Physics.LaneSpacing {
		t.Errorf("lane_spacing = %f, expected %f", cfg.Physics.LaneSpacing, want.Physics.LaneSpacing)
	}
	if cfg.World.BaseSpeed != want.World.BaseSpeed {
		t.Errorf("base_speed = %f, expected %f", cfg.World.BaseSpeed, want.World.BaseSpeed)
	}
	if cfg.Obstacles.SpawnChance != want.Obstacles.SpawnChance {
		t.Errorf("spawn_chance = %f, expected %f", cfg.Obstacles.SpawnChance, want.Obstacles.SpawnChance)
	}
	if cfg.Scoring.PerfectRunBonus != want.Scoring.PerfectRunBonus {
		t.Errorf("perfect_run_bonus = %d, expected %d", cfg.Scoring.PerfectRunBonus, want.Scoring.PerfectRunBonus)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	data := []byte("world:\n  base_speed: 0.4\n  max_speed: 2.0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.World.BaseSpeed != 0.4 {
		t.Errorf("base_speed = %f, expected 0.4", cfg.World.BaseSpeed)
	}
	if cfg.World.MaxSpeed != 2.0 {
		t.Errorf("max_speed = %f, expected 2.0", cfg.World.MaxSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom path")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should fail for malformed YAML")
	}
}

func TestWrapSpan(t *testing.T) {
	w := WorldConfig{GroundSegments: 10, SegmentLength: 20}
	if w.WrapSpan() != 200 {
		t.Errorf("WrapSpan() = %f, expected 200", w.WrapSpan())
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultRunnerConfig()

	t.Run("easy slows the ramp", func(t *testing.T) {
		cfg := base
		ApplyPreset(&cfg, DifficultyEasy)
		if cfg.World.SpeedIncrease >= base.World.SpeedIncrease {
			t.Error("easy should reduce speed_increase")
		}
		if cfg.World.MaxSpeed >= base.World.MaxSpeed {
			t.Error("easy should reduce max_speed")
		}
	})

	t.Run("hard raises base and ramp", func(t *testing.T) {
		cfg := base
		ApplyPreset(&cfg, DifficultyHard)
		if cfg.World.BaseSpeed <= base.World.BaseSpeed {
			t.Error("hard should raise base_speed")
		}
		if cfg.World.SpeedIncrease <= base.World.SpeedIncrease {
			t.Error("hard should raise speed_increase")
		}
	})

	t.Run("fixed disables the ramp", func(t *testing.T) {
		cfg := base
		ApplyPreset(&cfg, DifficultyFixed)
		if cfg.World.SpeedIncrease != 0 {
			t.Error("fixed should zero speed_increase")
		}
		if cfg.World.MaxSpeed != cfg.World.BaseSpeed {
			t.Error("fixed should pin max_speed to base_speed")
		}
	})

	t.Run("empty preset is a no-op", func(t *testing.T) {
		cfg := base
		ApplyPreset(&cfg, "")
		if cfg != base {
			t.Error("empty preset should not modify config")
		}
	})
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"bogus", ""},
		{"", ""},
	}

	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
