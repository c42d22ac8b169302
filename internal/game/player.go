package game

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/scene"
)

// Player is the avatar state. Lane is the authoritative discrete position,
// updated only by input; X chases it with exponential smoothing so the
// avatar glides between lanes instead of snapping.
type Player struct {
	Lane           int     // Target lane index in {-1, 0, 1}
	X              float64 // Smoothed lateral position
	VerticalOffset float64 // Height above ground, never negative
	Jumping        bool    // True while ascending; cleared at the apex

	handle scene.Handle
}

// reset returns the player to lane 0, grounded, not jumping.
func (p *Player) reset() {
	p.Lane = 0
	p.X = 0
	p.VerticalOffset = 0
	p.Jumping = false
}

// Grounded reports whether the player is on the ground.
func (p *Player) Grounded() bool {
	return p.VerticalOffset == 0 && !p.Jumping
}

// moveLeft shifts the target lane one to the left, clamped at -1.
func (p *Player) moveLeft() {
	p.Lane = core.Clamp(p.Lane-1, -1, 1)
}

// moveRight shifts the target lane one to the right, clamped at +1.
func (p *Player) moveRight() {
	p.Lane = core.Clamp(p.Lane+1, -1, 1)
}

// jump starts a jump if the player is grounded. Requests made mid-air,
// ascending or falling, are ignored; there is no double jump.
func (p *Player) jump() {
	if p.Grounded() {
		p.Jumping = true
	}
}

// step advances the kinematics by one tick.
//
// Lateral: x approaches lane*spacing asymptotically; it never exactly
// reaches the target, which is fine within floating epsilon.
// Vertical: ascend at jumpSpeed until the apex height, then fall at
// fallSpeed with the ground as a hard floor.
func (p *Player) step(cfg config.PhysicsConfig) {
	target := float64(p.Lane) * cfg.LaneSpacing
	p.X += (target - p.X) * cfg.LaneChangeSpeed

	if p.Jumping {
		p.VerticalOffset += cfg.JumpSpeed
		if p.VerticalOffset >= cfg.JumpHeight {
			p.Jumping = false
		}
	} else if p.VerticalOffset > 0 {
		p.VerticalOffset -= cfg.FallSpeed
		if p.VerticalOffset < 0 {
			p.VerticalOffset = 0
		}
	}
}
