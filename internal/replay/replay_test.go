package replay

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/core"
)

func TestRecorderSparseFrames(t *testing.T) {
	rt := core.RuntimeConfig{TickRate: 60, Seed: 99}
	rec := NewRecorder("arcade", rt)

	empty := core.NewInputFrame()
	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)

	rec.Observe(empty)
	rec.Observe(jump)
	rec.Observe(empty)
	rec.Observe(empty)
	rec.Observe(jump)

	r := rec.Finish(120)
	if r.Mode != "arcade" || r.Seed != 99 || r.TickRate != 60 {
		t.Errorf("recording header = %+v", r)
	}
	if r.FinalScore != 120 {
		t.Errorf("final score = %d", r.FinalScore)
	}
	if len(r.Frames) != 2 {
		t.Fatalf("recorded %d frames, expected 2 (sparse)", len(r.Frames))
	}
	if r.Frames[0].Tick != 1 || r.Frames[1].Tick != 4 {
		t.Errorf("frame ticks = %d, %d; expected 1, 4", r.Frames[0].Tick, r.Frames[1].Tick)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rec := NewRecorder("classic", core.RuntimeConfig{TickRate: 30, Seed: 7})
	in := core.NewInputFrame()
	in.Set(core.ActionMoveLeft)
	in.Set(core.ActionJump)
	rec.Observe(in)

	original := rec.Finish(40)

	data, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Mode != original.Mode || decoded.Seed != original.Seed {
		t.Errorf("round trip lost header: %+v", decoded)
	}
	if len(decoded.Frames) != 1 || len(decoded.Frames[0].Actions) != 2 {
		t.Errorf("round trip lost frames: %+v", decoded.Frames)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("not json")); err == nil {
		t.Error("Decode should reject malformed data")
	}
}

func TestPlayerReproducesFrames(t *testing.T) {
	rt := core.RuntimeConfig{TickRate: 60, Seed: 5}
	rec := NewRecorder("arcade", rt)

	// Script: jump on ticks 2 and 5, move right on tick 3.
	script := map[int]core.Action{
		2: core.ActionJump,
		3: core.ActionMoveRight,
		5: core.ActionJump,
	}
	for tick := 0; tick < 8; tick++ {
		in := core.NewInputFrame()
		if a, ok := script[tick]; ok {
			in.Set(a)
		}
		rec.Observe(in)
	}

	p := NewPlayer(rec.Finish(0))
	for tick := 0; tick < 8; tick++ {
		in := p.Next()
		want, scripted := script[tick]
		if scripted != in.Has(want) && scripted {
			t.Errorf("tick %d: expected %v in playback", tick, want)
		}
		if !scripted && len(in.Actions) != 0 {
			t.Errorf("tick %d: unexpected actions %v", tick, in.Actions)
		}
	}
	if !p.Done() {
		t.Error("player should be done after consuming all frames")
	}

	// Past the end, playback yields empty frames.
	if extra := p.Next(); len(extra.Actions) != 0 {
		t.Error("exhausted player should return empty frames")
	}
}

func TestPlayerRuntime(t *testing.T) {
	rec := Recording{Mode: "arcade", Seed: 11, TickRate: 60}
	p := NewPlayer(rec)

	rt := p.Runtime(100, 30)
	if rt.Seed != 11 || rt.TickRate != 60 {
		t.Errorf("Runtime() = %+v, seed/tick rate must match the recording", rt)
	}
	if rt.ScreenW != 100 || rt.ScreenH != 30 {
		t.Errorf("Runtime() should take the caller's screen size, got %+v", rt)
	}
	if p.Mode() != "arcade" {
		t.Errorf("Mode() = %q", p.Mode())
	}
}
