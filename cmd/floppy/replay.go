package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floppy/internal/audio"
	"github.com/vovakirdan/floppy/internal/config"
	"github.com/vovakirdan/floppy/internal/core"
	"github.com/vovakirdan/floppy/internal/games/floppy"
	"github.com/vovakirdan/floppy/internal/platform/tui"
	"github.com/vovakirdan/floppy/internal/storage"
)

var flagHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a recorded run",
	Long: `Replay a run from the journal with its recorded seed, tick rate and
tuning. The keyboard is ignored except for Q (stop) and Ctrl+S (screenshot).

With --headless the run is stepped without a terminal UI and the final state
hash is printed; it matches the hash of the original session.

Examples:
  floppy replay 3
  floppy replay 3 --headless`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id %q", args[0])
		}
		return replayRun(id)
	},
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Step the run without a terminal UI")
	replayCmd.Flags().BoolVar(&flagMute, "mute", false, "Replay without sound")
}

// replayRun loads a run from the journal and plays it back.
func replayRun(id int64) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	rec, err := store.LoadRun(id)
	store.Close()
	if err != nil {
		return err
	}

	cfg, err := config.Parse(rec.Config)
	if err != nil {
		return fmt.Errorf("run #%d: %w", id, err)
	}
	game := floppy.New(cfg)
	if rec.GameID != game.ID() {
		return fmt.Errorf("run #%d was recorded by %q", id, rec.GameID)
	}

	rt := runtimeConfig()
	rt.Seed = rec.Seed
	rt.TickRate = rec.TickRate

	if flagHeadless {
		return replayHeadless(game, rt, rec)
	}

	logger, logFile, err := fileLogger()
	if err != nil {
		return err
	}
	defer logFile.Close()

	player, err := audio.Open(flagMute, flagVolume)
	if err != nil {
		logger.Warn("audio unavailable, replaying without sound", "err", err)
	}
	defer player.Close()

	logger.Info("replay started", "run", id, "seed", rec.Seed, "steps", rec.Steps)
	state, err := tui.Run(game, tui.Options{
		Runtime: rt,
		Audio:   player,
		Logger:  logger,
		Replay:  tui.NewReplay(rec.Frames),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Run #%d  Score: %d  Level: %d\n", id, state.Score, state.Level)
	return nil
}

// replayHeadless steps every recorded frame and prints the final state.
func replayHeadless(game *floppy.Game, rt core.RuntimeConfig, rec *storage.Recording) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	game.Reset(rt)
	for _, f := range rec.Frames {
		res := game.Step(f)
		for _, e := range res.Events {
			if e.Kind == core.EventDied {
				logger.Info("game over", "score", e.Value, "tick", e.Tick)
			}
		}
		if res.Quit {
			break
		}
	}

	snap := game.Latest()
	fmt.Printf("Run #%d  Seed: %d  Steps: %d\n", rec.ID, rec.Seed, len(rec.Frames))
	fmt.Printf("Score: %d  Level: %d  Phase: %s\n", snap.Score, snap.Level, snap.Phase)
	fmt.Printf("Hash: %016x\n", snap.Hash())
	return nil
}
