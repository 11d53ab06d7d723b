package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/floppy/internal/audio"
	"github.com/vovakirdan/floppy/internal/config"
	"github.com/vovakirdan/floppy/internal/games/floppy"
	"github.com/vovakirdan/floppy/internal/platform/tui"
	"github.com/vovakirdan/floppy/internal/storage"
)

var (
	flagMute     bool
	flagNoRecord bool
	flagWatch    bool
	flagVolume   float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/W/Up - Flap
  P/Esc      - Pause
  M          - Toggle sound
  R          - Restart (after game over)
  Q/E/Ctrl+C - Quit
  Ctrl+S     - Save a screenshot

Each session is recorded to the run journal (see 'floppy runs') unless
--no-record is given. With --watch, edits to the tuning file apply on the
next restart; such sessions are not recorded.

Examples:
  floppy play
  floppy play --seed 42
  floppy play --mute --fps 30
  floppy play --config ./my-floppy.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start without the audio device")
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record this session")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, logFile, err := fileLogger()
	if err != nil {
		return err
	}
	defer logFile.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	rt := runtimeConfig()
	game := floppy.New(cfg)

	player, err := audio.Open(flagMute, flagVolume)
	if err != nil {
		logger.Warn("audio unavailable, playing without sound", "err", err)
	}
	defer player.Close()

	opts := tui.Options{
		Runtime: rt,
		Audio:   player,
		Logger:  logger,
	}

	if flagWatch {
		w, err := startWatcher(logger)
		if err != nil {
			return err
		}
		if w != nil {
			defer w.Close()
			opts.Reloads = w.Reloads
		}
	}

	var store *storage.Store
	if !flagNoRecord && !flagWatch {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open run journal, session will not be recorded", "err", err)
		} else {
			defer store.Close()
			opts.Recorder = tui.NewRecorder()
		}
	}

	state, err := tui.Run(game, opts)
	if err != nil {
		return err
	}

	fmt.Printf("%s - Score: %d  Level: %d\n", game.Title(), state.Score, state.Level)

	if store != nil && opts.Recorder.Len() > 0 {
		id, err := saveRecording(store, game, rt.Seed, rt.TickRate, cfg, opts.Recorder)
		if err != nil {
			logger.Error("could not record session", "err", err)
			return err
		}
		logger.Info("session recorded", "run", id, "steps", opts.Recorder.Len())
		fmt.Printf("Recorded run #%d (seed %d). Replay with 'floppy replay %d'.\n", id, rt.Seed, id)
	}
	return nil
}

// startWatcher watches the tuning file in use.
// It returns nil when only the built-in defaults are in use.
func startWatcher(logger *log.Logger) (*config.Watcher, error) {
	path := config.Resolve(flagConfig)
	if path == "" {
		logger.Warn("--watch ignored: no tuning file in use")
		return nil, nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		return nil, err
	}
	logger.Info("watching tuning file", "path", w.Path())
	return w, nil
}

func saveRecording(store *storage.Store, game *floppy.Game, seed int64, tickRate int, cfg config.FloppyConfig, rec *tui.Recorder) (int64, error) {
	data, err := config.Marshal(cfg)
	if err != nil {
		return 0, err
	}
	return store.SaveRun(storage.Recording{
		Run: storage.Run{
			GameID:   game.ID(),
			Seed:     seed,
			TickRate: tickRate,
			Config:   data,
		},
		Frames: rec.Frames(),
	})
}
