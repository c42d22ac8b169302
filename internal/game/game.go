package game

import (
	"fmt"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/scene"
)

// Visual characters for rendering
const (
	PlayerHead   = '◆'
	PlayerBody   = '█'
	PlayerShadow = '·'
	LaneDivider  = '·'
	GroundMark   = '─'
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the preset set via CLI.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Runner adapts a Session to the registry.Game interface and projects the
// 3D scene onto the terminal screen.
type Runner struct {
	id      string
	title   string
	opts    Options
	runtime core.RuntimeConfig
	session *Session
	sc      *scene.Scene
}

// NewArcade creates the arcade mode: perfect-run bonuses enabled.
func NewArcade() *Runner {
	return &Runner{
		id:    "arcade",
		title: "Lane Runner",
		opts:  Options{PerfectRunBonus: true},
	}
}

// NewClassic creates the classic mode: plain per-obstacle scoring only.
func NewClassic() *Runner {
	return &Runner{
		id:    "classic",
		title: "Lane Runner (Classic)",
		opts:  Options{},
	}
}

// ID returns the unique mode identifier.
func (r *Runner) ID() string {
	return r.id
}

// Title returns the display name for this mode.
func (r *Runner) Title() string {
	return r.title
}

// Reset initializes or restarts the run.
func (r *Runner) Reset(rt core.RuntimeConfig) {
	r.runtime = rt

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	} else {
		config.ApplyPreset(&cfg, config.ParsePreset(cfg.Difficulty.Preset))
	}

	r.sc = scene.New()
	r.session = NewSession(cfg, r.opts)
	r.session.Bind(r.sc)
	r.session.Start(rt)
}

// Step advances the run by one tick.
func (r *Runner) Step(in core.InputFrame) core.StepResult {
	if r.session == nil {
		return core.StepResult{}
	}
	return r.session.Step(in)
}

// State returns the current published telemetry.
func (r *Runner) State() core.Snapshot {
	if r.session == nil {
		return core.Snapshot{}
	}
	return r.session.Snapshot()
}

// Stop drops the run back to the idle screen without resetting the
// world. The next Reset starts a fresh run.
func (r *Runner) Stop() {
	if r.session != nil {
		r.session.Stop()
	}
}

// Session exposes the underlying session, used by the replay player.
func (r *Runner) Session() *Session {
	return r.session
}

// Render projects the scene onto the screen: lanes become columns, the
// longitudinal axis becomes rows (far obstacles at the top), and jump
// height lifts the avatar off its shadow.
func (r *Runner) Render(dst *core.Screen) {
	dst.Clear()
	if r.session == nil || r.sc == nil {
		return
	}

	snap := r.session.Snapshot()

	laneW := core.Clamp(dst.Width()/8, 4, 12)
	centerX := dst.Width() / 2
	top := 1
	bottom := dst.Height() - 2
	if bottom <= top {
		return
	}

	// Lane dividers: two inner and two outer, framing the three lanes.
	for _, off := range []int{-3 * laneW / 2, -laneW / 2, laneW / 2, 3 * laneW / 2} {
		for y := top; y <= bottom; y++ {
			dst.SetColored(centerX+off, y, LaneDivider, core.ColorGray)
		}
	}

	for _, obj := range r.sc.Objects() {
		switch obj.Kind {
		case scene.KindGround:
			y := r.zToRow(obj.Transform.Position.Z, top, bottom)
			if y >= top && y <= bottom {
				dst.DrawHLine(centerX-3*laneW/2+1, y, 3*laneW-1, GroundMark)
			}
		case scene.KindObstacle:
			r.drawObstacle(dst, obj, laneW, centerX, top, bottom)
		case scene.KindPlayer:
			r.drawPlayer(dst, obj, laneW, centerX, top, bottom)
		}
	}

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))
	speedText := fmt.Sprintf(" Spd: %.2f ", snap.Speed)
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)

	switch {
	case snap.Phase == core.PhaseGameOver:
		r.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	case snap.Paused:
		r.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case snap.Phase == core.PhaseIdle:
		r.drawCenteredMessage(dst, r.title, "Press Enter to start")
	}
}

// zToRow maps a longitudinal position to a screen row: spawn distance at
// the top, rear threshold at the bottom.
func (r *Runner) zToRow(z float64, top, bottom int) int {
	cfg := r.session.cfg
	span := cfg.Obstacles.SpawnDistance - cfg.World.RearThreshold
	t := (z - cfg.World.RearThreshold) / span
	return bottom - int(t*float64(bottom-top))
}

// xToCol maps a lateral position to a screen column.
func (r *Runner) xToCol(x float64, laneW, centerX int) int {
	cfg := r.session.cfg
	return centerX + int(x/cfg.Physics.LaneSpacing*float64(laneW))
}

// drawObstacle renders one obstacle, with the spawn scale-in shown as
// progressively denser shading.
func (r *Runner) drawObstacle(dst *core.Screen, obj scene.Object, laneW, centerX, top, bottom int) {
	y := r.zToRow(obj.Transform.Position.Z, top, bottom)
	if y < top || y > bottom {
		return
	}
	x := r.xToCol(obj.Transform.Position.X, laneW, centerX)

	glyph := '▓'
	switch sc := obj.Transform.Scale.X; {
	case sc < 0.4:
		glyph = '░'
	case sc < 0.8:
		glyph = '▒'
	}

	dst.SetColored(x-1, y, glyph, core.ColorBrightRed)
	dst.SetColored(x, y, glyph, core.ColorBrightRed)
	dst.SetColored(x+1, y, glyph, core.ColorBrightRed)
}

// drawPlayer renders the avatar. Jump height lifts the glyphs while a
// shadow stays on the ground row.
func (r *Runner) drawPlayer(dst *core.Screen, obj scene.Object, laneW, centerX, top, bottom int) {
	groundY := r.zToRow(0, top, bottom)
	x := r.xToCol(obj.Transform.Position.X, laneW, centerX)

	lift := int(obj.Transform.Position.Y / 2)
	y := groundY - lift

	if lift > 0 {
		dst.SetColored(x, groundY, PlayerShadow, core.ColorGray)
	}
	dst.SetColored(x, y-1, PlayerHead, core.ColorBrightYellow)
	dst.SetColored(x, y, PlayerBody, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (r *Runner) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register the rule-set variants with the registry.
func init() {
	registry.Register(registry.Info{
		ID:          "arcade",
		Title:       "Lane Runner",
		Description: "Default rules with perfect-run bonuses",
	}, func() registry.Game { return NewArcade() })

	registry.Register(registry.Info{
		ID:          "classic",
		Title:       "Lane Runner (Classic)",
		Description: "Per-obstacle scoring only, no bonuses",
	}, func() registry.Game { return NewClassic() })
}
