// Package game implements the lane-runner gameplay loop: world scrolling,
// obstacle spawning, player kinematics, collision detection, scoring and
// the difficulty ramp. It owns all simulation state and writes renderable
// transforms into a scene; it never touches the terminal.
package game

import (
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/scene"
)

// Options selects the rule-set variant for a session.
type Options struct {
	// PerfectRunBonus enables the every-Nth-clear bonus (arcade rules).
	PerfectRunBonus bool
}

// Session owns the evolving simulation: player, obstacles, ground
// segments, score and speed. It is driven once per display frame by an
// external scheduler and is strictly single-threaded.
type Session struct {
	cfg  config.RunnerConfig
	opts Options

	sc  *scene.Scene
	rng *rand.Rand

	phase  core.Phase
	paused bool

	score      int
	speed      float64
	perfectRun int // Consecutive clears since the last run start
	cleared    int
	tick       int

	tickRate int

	player    Player
	obstacles []Obstacle
	ground    []GroundSegment
}

// NewSession creates a session in the Idle phase with the given rules.
func NewSession(cfg config.RunnerConfig, opts Options) *Session {
	return &Session{
		cfg:   cfg,
		opts:  opts,
		phase: core.PhaseIdle,
		speed: cfg.World.BaseSpeed,
	}
}

// Bind attaches the scene and creates the persistent renderables: the
// player and the pooled ground segments. Obstacles come and go per run;
// ground segments are recycled, never recreated.
func (s *Session) Bind(sc *scene.Scene) {
	s.sc = sc
	s.player.handle = sc.Spawn(scene.KindPlayer)

	s.ground = make([]GroundSegment, s.cfg.World.GroundSegments)
	for i := range s.ground {
		s.ground[i] = GroundSegment{
			// First segment sits at the rear threshold so the strip
			// covers the player from frame one.
			Z:      float64(i)*s.cfg.World.SegmentLength + s.cfg.World.RearThreshold,
			handle: sc.Spawn(scene.KindGround),
		}
	}
}

// Start transitions Idle or GameOver into Playing: score to zero, speed to
// base, player to lane 0 grounded, all obstacles cleared. Ground segments
// are left in place. The seed makes the run reproducible.
func (s *Session) Start(rt core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(rt.Seed))
	s.tickRate = rt.TickRate
	if s.tickRate <= 0 {
		s.tickRate = core.DefaultConfig().TickRate
	}

	s.score = 0
	s.speed = s.cfg.World.BaseSpeed
	s.perfectRun = 0
	s.cleared = 0
	s.tick = 0
	s.paused = false

	s.player.reset()
	s.clearObstacles()

	s.phase = core.PhasePlaying
	s.publish()
}

// Stop transitions into Idle. The world is deliberately left exactly as
// the last frame rendered it; Start performs the full reset.
func (s *Session) Stop() {
	s.phase = core.PhaseIdle
}

// clearObstacles removes every active obstacle and its renderable.
func (s *Session) clearObstacles() {
	if s.sc != nil {
		for i := range s.obstacles {
			s.sc.Remove(s.obstacles[i].handle)
		}
	}
	s.obstacles = s.obstacles[:0]
}

// Phase returns the current session phase.
func (s *Session) Phase() core.Phase {
	return s.phase
}

// Paused reports whether the simulation is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Snapshot returns the published telemetry for the presentation layer.
func (s *Session) Snapshot() core.Snapshot {
	return core.Snapshot{
		Score:            s.score,
		Speed:            s.speed,
		Phase:            s.phase,
		Paused:           s.paused,
		ObstaclesCleared: s.cleared,
		Tick:             s.tick,
	}
}

// DurationSecs returns the wall-clock length of the run so far, derived
// from the fixed tick rate.
func (s *Session) DurationSecs() int {
	if s.tickRate <= 0 {
		return 0
	}
	return s.tick / s.tickRate
}

// publish writes every live transform to the scene. Fire and forget: the
// renderer reads whenever it likes, the loop never waits on it.
func (s *Session) publish() {
	if s.sc == nil {
		return
	}

	s.sc.SetPosition(s.player.handle, core.Vec3{
		X: s.player.X,
		Y: s.player.VerticalOffset,
	})

	for i := range s.obstacles {
		o := &s.obstacles[i]
		s.sc.SetPosition(o.handle, core.Vec3{
			X: float64(o.Lane) * s.cfg.Physics.LaneSpacing,
			Z: o.Z,
		})
		s.sc.SetScale(o.handle, core.Uniform(o.scale))
	}

	for i := range s.ground {
		s.sc.SetPosition(s.ground[i].handle, core.Vec3{Z: s.ground[i].Z})
	}
}
