package cmd

import (
	"github.com/rliegard/mathegenie/internal/curriculum"
	"github.com/rliegard/mathegenie/internal/exam"
	"github.com/rliegard/mathegenie/internal/problemgen"
	"github.com/rliegard/mathegenie/internal/session"
	"github.com/spf13/cobra"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Take a half-year test across all unlocked topics",
	Long: `Take the Halbjahrestest: 23 mixed problems (15 easy, 5 medium,
3 hard) drawn from every topic the class level has unlocked, shuffled,
with a 30 minute time budget.`,
	RunE: runExam,
}

func init() {
	examCmd.Flags().String("level", "5.1", "Class level as year.semester, e.g. '7.1'")
	examCmd.Flags().Int64("seed", 0, "Random seed for a reproducible test (0 = random)")
	examCmd.Flags().Bool("no-save", false, "Do not log the result")
}

func runExam(cmd *cobra.Command, args []string) error {
	levelVal, _ := cmd.Flags().GetString("level")
	seed, _ := cmd.Flags().GetInt64("seed")

	level := curriculum.ParseLevel(levelVal)

	gen := problemgen.New(newRand(seed))
	test := exam.Compose(gen, level)

	sess := session.New("Halbjahrestest", level, test.Problems, session.ExamLimit)

	sum := runSession(sess)
	return saveSummary(cmd, sum)
}
