package game

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/replay"
	"github.com/vovakirdan/lane-runner/internal/scene"
)

// TestReplayReproducesRun drives a live session while recording, then
// plays the recording into a fresh session and expects the identical
// outcome, including the final score.
func TestReplayReproducesRun(t *testing.T) {
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 31337}

	live := newTestSession(t, nil, Options{PerfectRunBonus: true})
	live.Start(rt)

	rec := replay.NewRecorder("arcade", rt)
	for tick := 0; tick < 1500 && live.Phase() == core.PhasePlaying; tick++ {
		in := core.NewInputFrame()
		if tick%11 == 0 {
			in.Set(core.ActionJump)
		}
		if tick%37 == 0 {
			in.Set(core.ActionMoveRight)
		}
		if tick%53 == 0 {
			in.Set(core.ActionMoveLeft)
		}
		rec.Observe(in.Clone())
		live.Step(in)
	}
	liveSnap := live.Snapshot()
	recording := rec.Finish(liveSnap.Score)

	// Round-trip through the storage encoding as the replay command does.
	data, err := replay.Encode(recording)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := replay.Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	player := replay.NewPlayer(decoded)
	ghost := NewSession(live.cfg, Options{PerfectRunBonus: true})
	ghost.Bind(scene.New())
	ghost.Start(player.Runtime(80, 24))

	for tick := 0; tick < 1500 && ghost.Phase() == core.PhasePlaying; tick++ {
		ghost.Step(player.Next())
	}

	ghostSnap := ghost.Snapshot()
	if ghostSnap != liveSnap {
		t.Errorf("playback diverged:\nlive  %+v\nghost %+v", liveSnap, ghostSnap)
	}
	if ghostSnap.Score != decoded.FinalScore {
		t.Errorf("playback score %d != recorded final score %d", ghostSnap.Score, decoded.FinalScore)
	}
}
