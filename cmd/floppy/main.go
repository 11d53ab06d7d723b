// floppy is a side-scrolling reflex game for the terminal.
//
// Usage:
//
//	floppy play              - Play in the terminal
//	floppy sim               - Run the autopilot headless and print the result
//	floppy runs              - List or browse recorded runs
//	floppy replay <id>       - Replay a recorded run
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom tuning file
//	--db <path>         - Set run journal path (default: ~/.floppy/runs.db)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Log file used while the TUI owns the terminal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floppy",
	Short: "Floppy - flap through the gaps in your terminal",
	Long: `Floppy is a side-scrolling reflex game: flap the flyer through gapped
obstacles and grab pickups for slow motion, a shield or double points.

Every run is deterministic for a seed, so runs can be recorded and replayed.

Available commands:
  play     - Play in the terminal
  sim      - Headless autopilot run
  runs     - List or browse recorded runs
  replay   - Replay a recorded run

Examples:
  floppy play
  floppy play --seed 42 --mute
  floppy sim --seed 42 --ticks 5000
  floppy runs
  floppy replay 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.floppy/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.floppy/floppy.log", "Log file for interactive commands")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}
