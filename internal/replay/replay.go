// Package replay records the inputs of a run so it can be played back
// deterministically. A recording is just the seed, the tick rate and the
// sparse list of ticks on which actions fired; because the gameplay loop
// is pure and seeded, feeding the same frames back reproduces the run
// exactly, including the final score.
package replay

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Frame is one tick's worth of recorded actions. Ticks with no input are
// not stored.
type Frame struct {
	Tick    int           `json:"tick"`
	Actions []core.Action `json:"actions"`
}

// Recording is a complete, self-contained description of one run.
type Recording struct {
	Mode       string  `json:"mode"`
	Seed       int64   `json:"seed"`
	TickRate   int     `json:"tick_rate"`
	FinalScore int     `json:"final_score"`
	Frames     []Frame `json:"frames"`
}

// Recorder accumulates frames during a live run.
type Recorder struct {
	rec  Recording
	tick int
}

// NewRecorder starts a recording for the given mode and runtime config.
func NewRecorder(mode string, rt core.RuntimeConfig) *Recorder {
	return &Recorder{
		rec: Recording{
			Mode:     mode,
			Seed:     rt.Seed,
			TickRate: rt.TickRate,
		},
	}
}

// Observe captures the input frame for the current tick and advances the
// recorder's clock. Empty frames cost nothing.
func (r *Recorder) Observe(in core.InputFrame) {
	if len(in.Actions) > 0 {
		actions := make([]core.Action, 0, len(in.Actions))
		for a, set := range in.Actions {
			if set {
				actions = append(actions, a)
			}
		}
		// Map iteration order is random; sort for stable encoding.
		sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
		r.rec.Frames = append(r.rec.Frames, Frame{Tick: r.tick, Actions: actions})
	}
	r.tick++
}

// Finish seals the recording with the run's final score and returns it.
func (r *Recorder) Finish(finalScore int) Recording {
	r.rec.FinalScore = finalScore
	return r.rec
}

// Encode serializes a recording for storage.
func Encode(rec Recording) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode recording: %w", err)
	}
	return data, nil
}

// Decode deserializes a stored recording.
func Decode(data []byte) (Recording, error) {
	var rec Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return Recording{}, fmt.Errorf("replay: cannot decode recording: %w", err)
	}
	return rec, nil
}

// Player feeds a recording back one tick at a time.
type Player struct {
	rec  Recording
	tick int
	next int // Index into rec.Frames
}

// NewPlayer creates a player positioned at the start of the recording.
func NewPlayer(rec Recording) *Player {
	return &Player{rec: rec}
}

// Runtime returns the runtime config the recording was made under, with
// the given screen size. Seed and tick rate must match the original run
// for playback to be faithful.
func (p *Player) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: p.rec.TickRate,
		Seed:     p.rec.Seed,
	}
}

// Next returns the input frame for the current tick and advances.
// Past the end of the recording it returns empty frames.
func (p *Player) Next() core.InputFrame {
	in := core.NewInputFrame()
	if p.next < len(p.rec.Frames) && p.rec.Frames[p.next].Tick == p.tick {
		for _, a := range p.rec.Frames[p.next].Actions {
			in.Set(a)
		}
		p.next++
	}
	p.tick++
	return in
}

// Done reports whether all recorded frames have been consumed.
func (p *Player) Done() bool {
	return p.next >= len(p.rec.Frames)
}

// Mode returns the mode ID the recording was made in.
func (p *Player) Mode() string {
	return p.rec.Mode
}
