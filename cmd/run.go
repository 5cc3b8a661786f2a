package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rliegard/mathegenie/internal/numfmt"
	"github.com/rliegard/mathegenie/internal/session"
	"github.com/rliegard/mathegenie/internal/store"
	"github.com/rliegard/mathegenie/internal/ui/theme"
	"github.com/spf13/cobra"
)

// newRand builds the random source for a run. Seed 0 means "give me
// fresh problems"; any other seed reproduces the exact run.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// runSession walks the student through the session on stdin/stdout and
// returns the closing summary.
func runSession(s *session.Session) session.Summary {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println(theme.Title.Render(s.Label))
	fmt.Println(theme.Hint.Render(fmt.Sprintf("Zeitlimit: %s  —  leere Eingabe überspringt die Aufgabe", formatDuration(s.Remaining()))))
	fmt.Println()

	for {
		p, ok := s.Next()
		if !ok {
			break
		}

		fmt.Printf("%s\n", theme.Highlight.Render(fmt.Sprintf("Aufgabe %d", p.Seq)))
		fmt.Println(theme.Question.Render(p.Question))
		fmt.Print("Deine Antwort: ")

		if !scanner.Scan() {
			fmt.Println("\n(Eingabe beendet)")
			break
		}

		outcome := s.Submit(scanner.Text())
		switch outcome {
		case session.Correct:
			fmt.Println(theme.Correct.Render("Richtig!"))
		case session.Skipped:
			fmt.Println(theme.Hint.Render("Übersprungen."))
			fmt.Println()
			fmt.Println(p.Solution)
		default:
			fmt.Println(theme.Wrong.Render(fmt.Sprintf("Leider falsch. Richtig wäre: %s", numfmt.Format(p.Answer))))
			fmt.Println()
			fmt.Println(p.Solution)
		}
		fmt.Println()

		if s.Expired() {
			fmt.Println(theme.Wrong.Render("Die Zeit ist um!"))
			break
		}
	}

	sum := s.Summarize()
	printSummary(sum)
	return sum
}

func printSummary(sum session.Summary) {
	fmt.Println(theme.Title.Render("Ergebnis"))
	fmt.Printf("Richtig:       %d von %d\n", sum.Correct, sum.Total)
	if sum.Skipped > 0 {
		fmt.Printf("Übersprungen:  %d\n", sum.Skipped)
	}
	fmt.Printf("Dauer:         %s\n", formatDuration(sum.Duration))
}

// saveSummary logs the run unless saving was disabled.
func saveSummary(cmd *cobra.Command, sum session.Summary) error {
	if noSave, _ := cmd.Flags().GetBool("no-save"); noSave {
		return nil
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	classLabel := fmt.Sprintf("Klasse %s", sum.Level)
	if _, err := st.SaveResult(sum.Label, classLabel, sum.Correct, sum.Total, sum.Duration); err != nil {
		return err
	}
	fmt.Println(theme.Hint.Render("Ergebnis gespeichert."))
	return nil
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
