package cmd

import (
	"fmt"

	"github.com/rliegard/mathegenie/internal/curriculum"
	"github.com/rliegard/mathegenie/internal/problemgen"
	"github.com/rliegard/mathegenie/internal/session"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice round for one topic",
	Long: `Start an interactive practice round for a single topic.

Problems are tailored to the class level and difficulty tier. Answers
use German number notation (comma as decimal separator). The round is
logged to the result database unless --no-save is given.`,
	RunE: runPractice,
}

func init() {
	practiceCmd.Flags().String("topic", "", "Topic to practice, e.g. 'Geometrie' (required)")
	practiceCmd.Flags().String("difficulty", "leicht", "Difficulty tier: leicht, mittel or schwer")
	practiceCmd.Flags().String("level", "5.1", "Class level as year.semester, e.g. '7.1'")
	practiceCmd.Flags().Int("count", 10, "Number of problems")
	practiceCmd.Flags().Int64("seed", 0, "Random seed for a reproducible round (0 = random)")
	practiceCmd.Flags().Bool("no-save", false, "Do not log the result")
	_ = practiceCmd.MarkFlagRequired("topic")
}

func runPractice(cmd *cobra.Command, args []string) error {
	topicVal, _ := cmd.Flags().GetString("topic")
	difficultyVal, _ := cmd.Flags().GetString("difficulty")
	levelVal, _ := cmd.Flags().GetString("level")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetInt64("seed")

	if count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", count)
	}

	level := curriculum.ParseLevel(levelVal)

	topic, err := curriculum.ParseTopic(topicVal)
	if err != nil {
		return err
	}
	if !curriculum.Available(topic, level) {
		return fmt.Errorf("%s ist in Klasse %s noch nicht freigeschaltet", topic.Label(), level)
	}

	difficulty, err := curriculum.ParseDifficulty(difficultyVal)
	if err != nil {
		return err
	}

	gen := problemgen.New(newRand(seed))
	problems := gen.GenerateBatch(level, topic, difficulty, count)

	label := fmt.Sprintf("%s (%s)", topic.Label(), difficulty.Label())
	sess := session.New(label, level, problems, session.TimeLimit(difficulty))

	sum := runSession(sess)
	return saveSummary(cmd, sum)
}
