package game

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
)

func TestLaneClamping(t *testing.T) {
	var p Player
	p.reset()

	p.moveLeft()
	if p.Lane != -1 {
		t.Errorf("lane after one left = %d, expected -1", p.Lane)
	}
	p.moveLeft()
	p.moveLeft()
	if p.Lane != -1 {
		t.Errorf("lane should clamp at -1, got %d", p.Lane)
	}

	p.moveRight()
	p.moveRight()
	if p.Lane != 1 {
		t.Errorf("lane after crossing back = %d, expected 1", p.Lane)
	}
	p.moveRight()
	if p.Lane != 1 {
		t.Errorf("lane should clamp at +1, got %d", p.Lane)
	}
}

func TestLateralSmoothing(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Physics
	var p Player
	p.reset()
	p.moveRight() // Target x = 2

	target := float64(p.Lane) * cfg.LaneSpacing

	p.step(cfg)
	if p.X != target*cfg.LaneChangeSpeed {
		t.Errorf("first step x = %f, expected %f", p.X, target*cfg.LaneChangeSpeed)
	}

	// Convergence is asymptotic: x strictly increases but never reaches
	// the target.
	prev := p.X
	for i := 0; i < 500; i++ {
		p.step(cfg)
		if p.X <= prev {
			t.Fatalf("x not strictly increasing at step %d", i)
		}
		if p.X >= target {
			t.Fatalf("x overshot the lane target at step %d: %f", i, p.X)
		}
		prev = p.X
	}
	if target-p.X > 1e-6 {
		t.Errorf("x should be within epsilon of target after 500 steps, gap %g", target-p.X)
	}
}

func TestJumpApex(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Physics
	var p Player
	p.reset()
	p.jump()
	if !p.Jumping {
		t.Fatal("grounded jump request should start a jump")
	}

	// jumpSpeed 0.3, jumpHeight 4: the apex is reached on frame
	// ceil(4/0.3) = 14.
	for i := 1; i <= 13; i++ {
		p.step(cfg)
		if !p.Jumping {
			t.Fatalf("apex reached too early, at frame %d", i)
		}
	}
	p.step(cfg)
	if p.Jumping {
		t.Error("apex should be reached on frame 14")
	}
	if p.VerticalOffset < cfg.JumpHeight {
		t.Errorf("offset at apex = %f, expected >= %f", p.VerticalOffset, cfg.JumpHeight)
	}
}

func TestFallClampedAtGround(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Physics
	var p Player
	p.reset()
	p.VerticalOffset = 0.1 // Just above ground, not jumping

	p.step(cfg)
	if p.VerticalOffset != 0 {
		t.Errorf("offset should clamp to 0, got %f", p.VerticalOffset)
	}

	p.step(cfg)
	if p.VerticalOffset != 0 {
		t.Errorf("grounded offset must stay 0, got %f", p.VerticalOffset)
	}
}

func TestNoAirJump(t *testing.T) {
	var p Player
	p.reset()

	p.jump()
	p.jump() // Second request while ascending is ignored
	if !p.Jumping {
		t.Fatal("first jump should stick")
	}

	// Falling: above ground with the jump flag cleared
	p.Jumping = false
	p.VerticalOffset = 2
	p.jump()
	if p.Jumping {
		t.Error("jump request while falling should be ignored")
	}
}

func TestJumpFullArc(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Physics
	var p Player
	p.reset()
	p.jump()

	// Run until back on the ground; the arc must terminate and the
	// offset must never go negative.
	for i := 0; i < 200; i++ {
		p.step(cfg)
		if p.VerticalOffset < 0 {
			t.Fatalf("offset went negative at step %d: %f", i, p.VerticalOffset)
		}
		if p.Grounded() {
			return
		}
	}
	t.Error("jump arc never returned to ground")
}
