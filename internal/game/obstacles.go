package game

import (
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/scene"
)

// Obstacle is one spawned hazard. It scrolls toward the player and is
// removed (scoring once) when it crosses the rear threshold.
type Obstacle struct {
	Lane      int     // Lane index in {-1, 0, 1}, chosen at spawn
	Z         float64 // Longitudinal position, decreasing every frame
	SpawnTick int     // Tick of creation, drives the scale-in animation

	scale     float64 // Current uniform scale, 0..1
	scaleDone bool    // One-shot: once full scale is reached, stop recomputing
	handle    scene.Handle
}

// scrollObstacles moves every obstacle toward the player by speed.
func (s *Session) scrollObstacles(speed float64) {
	for i := range s.obstacles {
		s.obstacles[i].Z -= speed
	}
}

// scaleInTicks converts the configured scale-in duration to ticks at the
// session's fixed step rate.
func (s *Session) scaleInTicks() int {
	ticks := s.cfg.Obstacles.ScaleInMillis * s.tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// animateSpawns advances the one-shot scale-in for young obstacles:
// ease-out-cubic from 0 to 1 over the configured duration, then frozen.
func (s *Session) animateSpawns() {
	dur := s.scaleInTicks()
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if o.scaleDone {
			continue
		}
		progress := float64(s.tick-o.SpawnTick) / float64(dur)
		if progress >= 1 {
			o.scale = 1
			o.scaleDone = true
			continue
		}
		o.scale = core.EaseOutCubic(progress)
	}
}

// maybeSpawn rolls the per-frame spawn chance and, on success, creates one
// obstacle at the spawn distance in a uniformly random lane.
func (s *Session) maybeSpawn() {
	if s.rng.Float64() < s.cfg.Obstacles.SpawnChance {
		s.spawnObstacleAt(s.rng.Intn(3)-1, s.cfg.Obstacles.SpawnDistance)
	}
}

// spawnObstacleAt creates an obstacle in the given lane at longitudinal
// position z and registers its renderable.
func (s *Session) spawnObstacleAt(lane int, z float64) {
	o := Obstacle{
		Lane:      lane,
		Z:         z,
		SpawnTick: s.tick,
	}
	if s.sc != nil {
		o.handle = s.sc.Spawn(scene.KindObstacle)
		s.sc.SetScale(o.handle, core.Uniform(0))
	}
	s.obstacles = append(s.obstacles, o)
}

// cleanupObstacles removes obstacles behind the rear threshold. Each
// removal scores exactly once and advances the perfect-run counter; under
// arcade rules every Nth consecutive clear grants the bonus.
func (s *Session) cleanupObstacles() {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Z < s.cfg.World.RearThreshold {
			if s.sc != nil {
				s.sc.Remove(o.handle)
			}
			s.score += s.cfg.Scoring.ObstaclePoints
			s.cleared++
			s.perfectRun++
			if s.opts.PerfectRunBonus &&
				s.cfg.Scoring.PerfectRunEvery > 0 &&
				s.perfectRun%s.cfg.Scoring.PerfectRunEvery == 0 {
				s.score += s.cfg.Scoring.PerfectRunBonus
			}
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles = kept
}

// checkCollision tests the player against every active obstacle in spawn
// order and reports the first hit. This is a proximity check, not exact
// mesh collision: near-tolerance results are accepted behavior.
func (s *Session) checkCollision() bool {
	tol := s.cfg.Obstacles.CollisionTolerance
	for i := range s.obstacles {
		o := &s.obstacles[i]
		ox := float64(o.Lane) * s.cfg.Physics.LaneSpacing
		if core.AbsF(s.player.X-ox) < tol &&
			core.AbsF(o.Z) < tol &&
			s.player.VerticalOffset < s.cfg.Obstacles.JumpSafeHeight {
			return true
		}
	}
	return false
}
