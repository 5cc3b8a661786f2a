package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rliegard/mathegenie/internal/store"
	"github.com/rliegard/mathegenie/internal/ui/theme"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect the result log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResultsList(cmd)
	},
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all logged rounds, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResultsList(cmd)
	},
}

var resultsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate results per topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.TopicStats()
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Println("Noch keine Ergebnisse gespeichert.")
			return nil
		}

		fmt.Printf("%-32s  %-7s  %-9s  %s\n", "Thema", "Runden", "Richtig", "Quote")
		fmt.Println(strings.Repeat("─", 64))
		for _, s := range stats {
			quote := 0.0
			if s.Total > 0 {
				quote = float64(s.Correct) / float64(s.Total) * 100
			}
			fmt.Printf("%-32s  %-7d  %3d/%-5d  %5.1f%%\n", s.Topic, s.Runs, s.Correct, s.Total, quote)
		}
		return nil
	},
}

var resultsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one logged round by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteResult(id); err != nil {
			return err
		}
		fmt.Printf("Ergebnis %d gelöscht.\n", id)
		return nil
	},
}

func init() {
	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsStatsCmd)
	resultsCmd.AddCommand(resultsDeleteCmd)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

func runResultsList(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	results, err := st.ListResults()
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("Noch keine Ergebnisse gespeichert.")
		return nil
	}

	fmt.Printf("%-5s  %-19s  %-28s  %-12s  %-7s  %s\n",
		"ID", "Zeitpunkt", "Thema", "Klasse", "Punkte", "Dauer")
	fmt.Println(strings.Repeat("─", 88))
	for _, r := range results {
		score := fmt.Sprintf("%d/%d", r.Correct, r.Total)
		styled := score
		if r.Accuracy() >= 0.5 {
			styled = theme.Correct.Render(score)
		} else {
			styled = theme.Wrong.Render(score)
		}
		fmt.Printf("%-5d  %-19s  %-28s  %-12s  %-7s  %s\n",
			r.ID, r.Timestamp, r.Topic, r.Class, styled,
			formatDuration(time.Duration(r.Duration*float64(time.Second))))
	}
	return nil
}
