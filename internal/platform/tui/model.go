package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/replay"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// Model is the Bubble Tea model that drives a run: it schedules ticks,
// maps input, records the run for playback and persists the result.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	snapshot   core.Snapshot

	recorder *replay.Recorder
	playback *replay.Player // Non-nil when replaying a stored run

	topSpeed float64
	quitting bool
	runSaved bool // Whether the current game over has been persisted
}

// NewModel creates a model for a live, interactive run.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// NewPlaybackModel creates a model that replays a stored run instead of
// taking keyboard input. Quit keys still work.
func NewPlaybackModel(game registry.Game, player *replay.Player, screenW, screenH int) Model {
	m := NewModel(game, nil, player.Runtime(screenW, screenH))
	m.playback = player
	return m
}

// Init starts the run and kicks off the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.playback == nil {
			if a := m.keyMapper.MapMouse(msg, m.config.ScreenW); a != core.ActionNone {
				m.inputFrame.Set(a)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back drops a finished or paused run onto the idle screen.
	if action == core.ActionBack && (m.snapshot.Phase == core.PhaseGameOver || m.snapshot.Paused) {
		if stopper, ok := m.game.(interface{ Stop() }); ok {
			stopper.Stop()
		}
		return m, nil
	}

	// During playback the recording is the only gameplay input.
	if m.playback != nil {
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart after game over, or start from the idle screen: both begin
	// a fresh run with a fresh seed.
	restart := m.inputFrame.Has(core.ActionRestart) && m.snapshot.Phase == core.PhaseGameOver
	start := m.inputFrame.Has(core.ActionConfirm) && m.snapshot.Phase == core.PhaseIdle
	if restart || start {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.snapshot = m.game.State()
		m.recorder = nil
		m.topSpeed = 0
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	in := m.inputFrame
	if m.playback != nil {
		in = m.playback.Next()
	} else {
		// The recorder observes exactly once per Step call so playback
		// frames line up tick for tick with the live run.
		if m.recorder == nil {
			m.recorder = replay.NewRecorder(m.game.ID(), m.config)
		}
		m.recorder.Observe(in.Clone())
	}

	result := m.game.Step(in)
	m.snapshot = result.State
	if m.snapshot.Speed > m.topSpeed {
		m.topSpeed = m.snapshot.Speed
	}

	if m.snapshot.Phase == core.PhaseGameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the score and the recorded run. Best effort: a
// storage failure never interrupts play.
func (m *Model) saveRun() {
	if m.store == nil || m.playback != nil {
		return
	}

	if m.snapshot.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.snapshot.Score)
	}

	if m.recorder == nil {
		return
	}
	blob, err := replay.Encode(m.recorder.Finish(m.snapshot.Score))
	if err != nil {
		return
	}

	duration := 0
	if m.config.TickRate > 0 {
		duration = m.snapshot.Tick / m.config.TickRate
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunRecord{
		RunID:            fmt.Sprintf("run-%d", time.Now().UnixNano()),
		Mode:             m.game.ID(),
		Score:            m.snapshot.Score,
		TopSpeed:         m.topSpeed,
		ObstaclesCleared: m.snapshot.ObstaclesCleared,
		DurationSecs:     duration,
		Replay:           blob,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a live run.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Touch-zone style controls
	)

	_, err := p.Run()
	return err
}

// RunPlayback starts the Bubble Tea program replaying a stored run.
func RunPlayback(game registry.Game, player *replay.Player, screenW, screenH int) error {
	model := NewPlaybackModel(game, player, screenW, screenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
