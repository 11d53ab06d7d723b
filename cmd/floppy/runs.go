package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/floppy/internal/platform/tui"
	"github.com/vovakirdan/floppy/internal/storage"
)

var (
	flagBrowse bool
	flagLimit  int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `List the runs recorded in the journal, newest first.

With --browse, pick a run interactively: Enter replays it, D deletes it.

Examples:
  floppy runs
  floppy runs --limit 5
  floppy runs --browse`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse runs interactively")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to list")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}

	if flagBrowse {
		w, h := 80, 24
		if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			w, h = tw, th
		}
		id, ok, err := tui.BrowseRuns(store, w, h)
		store.Close()
		if err != nil || !ok {
			return err
		}
		return replayRun(id)
	}
	defer store.Close()

	runs, err := store.Runs(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recorded runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'floppy play' to record the first one.")
		return nil
	}

	fmt.Printf("  %-4s  %-20s  %-6s  %-4s  %s\n", "ID", "Seed", "Steps", "FPS", "Date")
	fmt.Printf("  %-4s  %-20s  %-6s  %-4s  %s\n", "--", "----", "-----", "---", "----")
	for _, r := range runs {
		fmt.Printf("  %-4d  %-20d  %-6d  %-4d  %s\n",
			r.ID, r.Seed, r.Steps, r.TickRate, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println("Run 'floppy replay <id>' to watch a run.")
	return nil
}
