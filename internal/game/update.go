package game

import "github.com/vovakirdan/lane-runner/internal/core"

// Step runs one frame of the gameplay loop. The order is fixed and load-
// bearing: collision is checked against obstacle positions after this
// frame's world scroll but before this frame's player movement, so player
// motion lags obstacle motion by one frame, matching the reference feel.
//
// Outside the Playing phase, or before a scene is bound, Step is a no-op.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.sc == nil || s.phase != core.PhasePlaying {
		return core.StepResult{State: s.Snapshot()}
	}

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.Snapshot()}
	}

	s.applyIntents(in)
	s.tick++

	// One speed value for the whole frame; the ramp below only affects
	// the next frame.
	speed := s.speed

	// 1. World scroll
	s.scrollGround(speed)
	s.scrollObstacles(speed)

	// 2. Ground recycling
	s.recycleGround()

	// 3. Obstacle spawn-in animation
	s.animateSpawns()

	// 4. Collision: on hit the run ends and the frame exits early; no
	// further state mutation happens, including the speed ramp.
	if s.checkCollision() {
		s.phase = core.PhaseGameOver
		return core.StepResult{State: s.Snapshot()}
	}

	// 5. Obstacle cleanup and scoring
	s.cleanupObstacles()

	// 6. Obstacle spawning
	s.maybeSpawn()

	// 7. Player kinematics
	s.player.step(s.cfg.Physics)

	// 8. Difficulty ramp, applied unconditionally every frame
	s.speed = core.ClampF(s.speed+s.cfg.World.SpeedIncrease, s.cfg.World.BaseSpeed, s.cfg.World.MaxSpeed)

	s.publish()
	return core.StepResult{State: s.Snapshot()}
}

// applyIntents consumes the frame's discrete input intents. Input is only
// honored while playing; unrecognized intents are silently ignored.
func (s *Session) applyIntents(in core.InputFrame) {
	if in.Has(core.ActionMoveLeft) {
		s.player.moveLeft()
	}
	if in.Has(core.ActionMoveRight) {
		s.player.moveRight()
	}
	if in.Has(core.ActionJump) {
		s.player.jump()
	}
}
