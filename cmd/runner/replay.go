package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/replay"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Watch a stored run",
	Long: `Play back a recorded run exactly as it happened. Run IDs are shown
in 'runner board' under the recent-runs view.

Examples:
  runner replay run-1724580000000000000`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	runID := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	run, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with ID %q\n", runID)
		fmt.Fprintln(os.Stderr, "Run 'runner board' to browse recorded runs.")
		os.Exit(1)
	}
	if len(run.Replay) == 0 {
		fmt.Fprintf(os.Stderr, "Error: run %q has no recording\n", runID)
		os.Exit(1)
	}

	rec, err := replay.Decode(run.Replay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding recording: %v\n", err)
		os.Exit(1)
	}

	player := replay.NewPlayer(rec)
	g, err := registry.Create(player.Mode())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	fmt.Printf("Replaying %s (%s, score %d)\n", run.RunID, run.Mode, run.Score)

	if err := tui.RunPlayback(g, player, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running playback: %v\n", err)
		os.Exit(1)
	}
}
