package game

import "github.com/vovakirdan/lane-runner/internal/scene"

// GroundSegment is one tile of the endless ground strip. Segments are a
// fixed pool: when one passes behind the player it jumps forward by the
// full span of the pool, so relative spacing never drifts.
type GroundSegment struct {
	Z float64 // Longitudinal position

	handle scene.Handle
}

// scrollGround moves every segment toward the player by speed.
func (s *Session) scrollGround(speed float64) {
	for i := range s.ground {
		s.ground[i].Z -= speed
	}
}

// recycleGround wraps segments that crossed the rear threshold. Adding the
// fixed span (segments x length) preserves ordering and spacing over
// arbitrarily many wraps.
func (s *Session) recycleGround() {
	span := s.cfg.World.WrapSpan()
	for i := range s.ground {
		if s.ground[i].Z < s.cfg.World.RearThreshold {
			s.ground[i].Z += span
		}
	}
}
