package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rust-overload/internal/registry"
	"github.com/vovakirdan/rust-overload/internal/storage"
)

var (
	flagScoresMode  string
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs for a mode.

Examples:
  rust-overload scores
  rust-overload scores --mode endless --limit 20
  rust-overload scores --mode campaign --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "campaign", "Mode to show: campaign or endless")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history of the mode")
}

func runScores(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagScoresMode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagScoresMode)
		fmt.Fprintln(os.Stderr, "Run 'rust-overload modes' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening run database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(flagScoresMode); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Cleared %s history.\n", flagScoresMode)
		return
	}

	if err := printScores(os.Stdout, store, flagScoresMode, flagScoresLimit); err != nil {
		fatal("%v", err)
	}
}

// printScores writes the top runs and stats of a mode.
func printScores(w io.Writer, store *storage.Store, mode string, limit int) error {
	runs, err := store.TopRuns(mode, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Run History - %s\n\n", mode)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'rust-overload play' to make history!\n")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-7s  %-8s  %-8s  %s\n", "Rank", "Score", "Weapons", "Outcome", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-7s  %-8s  %-8s  %s\n", "----", "-----", "-------", "-------", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-6d  %-7d  %-8s  %-8s  %s\n",
			i+1, r.Score, r.WeaponsRepaired, r.Outcome, r.Duration.String(), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Runs: %d  Victories: %d  Best: %d  Average: %.1f\n",
		stats.Runs, stats.Victories, stats.HighScore, stats.AvgScore)
	return nil
}
