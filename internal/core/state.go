package core

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle     Phase = iota // Initial state, no simulation running
	PhasePlaying               // Per-frame update active
	PhaseGameOver              // Collision ended the run
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Snapshot is the telemetry published after every mutating step.
// The presentation layer reads it; it never mutates simulation state.
type Snapshot struct {
	Score            int     // Current score
	Speed            float64 // Current scroll speed
	Phase            Phase   // Session phase
	Paused           bool    // Whether the simulation is paused
	ObstaclesCleared int     // Obstacles passed this run
	Tick             int     // Ticks simulated this run
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State Snapshot
}
