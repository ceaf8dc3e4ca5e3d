package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagHistory bool
	flagLimit   int
	flagClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the ten-entry high score table. With --history, also list
the best recorded runs and aggregate statistics from the run database.

Examples:
  invaders scores
  invaders scores --history --limit 20
  invaders scores --clear-history`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagHistory, "history", false, "Also show run history")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show with --history")
	scoresCmd.Flags().BoolVar(&flagClear, "clear-history", false, "Delete the recorded run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	s, err := openSession(false, false)
	if err != nil {
		return err
	}
	defer s.Close()

	if flagClear {
		if s.svc.Store == nil {
			return errors.New("run history is unavailable")
		}
		if err := s.svc.Store.ClearRuns(historyMode); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	fmt.Println("High Scores")
	fmt.Println()
	fmt.Printf("  %-4s  %-4s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-4s  %s\n", "----", "----", "-----")
	for i, e := range s.svc.Deps.Ledger.Entries() {
		fmt.Printf("  %-4d  %-4s  %06d\n", i+1, e.Initials, e.Score)
	}

	if !flagHistory {
		return nil
	}

	fmt.Println()
	if s.svc.Store == nil {
		fmt.Println("Run history is unavailable.")
		return nil
	}

	runs, err := s.svc.Store.TopRuns(historyMode, flagLimit)
	if err != nil {
		return err
	}
	fmt.Println("Best Runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-4s  %-4s  %-8s  %-4s  %s\n", "Rank", "Name", "Score", "Wave", "Date")
	fmt.Printf("  %-4s  %-4s  %-8s  %-4s  %s\n", "----", "----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-4s  %-8d  %-4d  %s\n", i+1, r.Initials, r.Score, r.Wave, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := s.svc.Store.Stats(historyMode)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Best wave: %d\n",
		stats.Runs, stats.HighScore, stats.AvgScore, stats.BestWave)
	return nil
}

// historyMode is the registry id whose runs are recorded.
const historyMode = "invaders"
