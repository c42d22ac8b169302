package game

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/scene"
)

// newTestSession builds a bound, started session with a fixed seed.
// The config can be adjusted by the caller before Start via mod.
func newTestSession(t *testing.T, mod func(*config.RunnerConfig), opts Options) *Session {
	t.Helper()

	cfg := config.DefaultRunnerConfig()
	if mod != nil {
		mod(&cfg)
	}

	s := NewSession(cfg, opts)
	s.Bind(scene.New())
	s.Start(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return s
}

// noSpawns disables random spawning so tests control the obstacle set.
func noSpawns(cfg *config.RunnerConfig) {
	cfg.Obstacles.SpawnChance = 0
}

func TestPhaseTransitions(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewSession(cfg, Options{})

	if s.Phase() != core.PhaseIdle {
		t.Fatalf("new session phase = %v, expected Idle", s.Phase())
	}

	s.Bind(scene.New())
	s.Start(core.RuntimeConfig{TickRate: 60, Seed: 1})
	if s.Phase() != core.PhasePlaying {
		t.Fatalf("phase after Start = %v, expected Playing", s.Phase())
	}

	s.Stop()
	if s.Phase() != core.PhaseIdle {
		t.Fatalf("phase after Stop = %v, expected Idle", s.Phase())
	}

	// Step is a no-op outside Playing
	before := s.Snapshot()
	s.Step(core.NewInputFrame())
	after := s.Snapshot()
	if before != after {
		t.Error("Step should be a no-op while Idle")
	}
}

func TestStepWithoutSceneIsNoOp(t *testing.T) {
	s := NewSession(config.DefaultRunnerConfig(), Options{})
	// No Bind: frame delivery before scene initialization must not fail.
	res := s.Step(core.NewInputFrame())
	if res.State.Tick != 0 {
		t.Error("Step before Bind should not advance the simulation")
	}
}

func TestStartResetsRun(t *testing.T) {
	s := newTestSession(t, noSpawns, Options{})

	// Accumulate some state
	s.spawnObstacleAt(1, 50)
	in := core.NewInputFrame()
	in.Set(core.ActionMoveRight)
	s.Step(in)
	for i := 0; i < 20; i++ {
		s.Step(core.NewInputFrame())
	}
	s.score = 120 // Simulate cleared obstacles

	groundBefore := make([]float64, len(s.ground))
	for i, g := range s.ground {
		groundBefore[i] = g.Z
	}

	s.Start(core.RuntimeConfig{TickRate: 60, Seed: 2})

	snap := s.Snapshot()
	if snap.Score != 0 {
		t.Errorf("score after restart = %d, expected 0", snap.Score)
	}
	if snap.Speed != s.cfg.World.BaseSpeed {
		t.Errorf("speed after restart = %f, expected base %f", snap.Speed, s.cfg.World.BaseSpeed)
	}
	if s.player.Lane != 0 || !s.player.Grounded() {
		t.Error("player should restart at lane 0, grounded")
	}
	if len(s.obstacles) != 0 {
		t.Errorf("restart should clear obstacles, %d remain", len(s.obstacles))
	}

	// Ground segments are recycled, not recreated: positions survive.
	for i, g := range s.ground {
		if g.Z != groundBefore[i] {
			t.Errorf("ground segment %d moved on restart: %f -> %f", i, groundBefore[i], g.Z)
		}
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	s := newTestSession(t, noSpawns, Options{})

	s.spawnObstacleAt(0, 1.0)
	s.Step(core.NewInputFrame())
	if s.Phase() != core.PhaseGameOver {
		t.Fatalf("expected GameOver, got %v", s.Phase())
	}

	s.Start(core.RuntimeConfig{TickRate: 60, Seed: 3})
	if s.Phase() != core.PhasePlaying {
		t.Fatalf("restart from GameOver should enter Playing, got %v", s.Phase())
	}
	if s.Snapshot().Score != 0 {
		t.Error("restart from GameOver should zero the score")
	}
}

func TestPauseToggle(t *testing.T) {
	s := newTestSession(t, noSpawns, Options{})

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	s.Step(pause)
	if !s.Paused() {
		t.Fatal("pause action should pause")
	}

	tickBefore := s.Snapshot().Tick
	s.Step(core.NewInputFrame())
	if s.Snapshot().Tick != tickBefore {
		t.Error("paused session should not advance")
	}

	s.Step(pause)
	if s.Paused() {
		t.Fatal("pause action should unpause")
	}
	s.Step(core.NewInputFrame())
	if s.Snapshot().Tick == tickBefore {
		t.Error("unpaused session should advance")
	}
}

func TestTelemetrySnapshot(t *testing.T) {
	s := newTestSession(t, noSpawns, Options{})

	snap := s.Snapshot()
	if snap.Phase != core.PhasePlaying || snap.Score != 0 {
		t.Errorf("initial snapshot = %+v", snap)
	}

	s.Step(core.NewInputFrame())
	snap = s.Snapshot()
	if snap.Tick != 1 {
		t.Errorf("tick after one step = %d", snap.Tick)
	}
	if snap.Speed <= s.cfg.World.BaseSpeed {
		t.Error("speed should have ramped after one step")
	}
}

func TestDurationSecs(t *testing.T) {
	s := newTestSession(t, noSpawns, Options{})
	for i := 0; i < 120; i++ {
		s.Step(core.NewInputFrame())
	}
	if got := s.DurationSecs(); got != 2 {
		t.Errorf("DurationSecs() after 120 ticks at 60 tps = %d, expected 2", got)
	}
}
