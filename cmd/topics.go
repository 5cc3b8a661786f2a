package cmd

import (
	"fmt"

	"github.com/rliegard/mathegenie/internal/curriculum"
	"github.com/rliegard/mathegenie/internal/ui/theme"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics and their availability for a class level",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelVal, _ := cmd.Flags().GetString("level")
		level := curriculum.ParseLevel(levelVal)

		fmt.Println(theme.Title.Render(fmt.Sprintf("Themen für Klasse %s", level)))
		for _, topic := range curriculum.AllTopics() {
			if curriculum.Available(topic, level) {
				fmt.Printf("  %s %s\n", theme.Correct.Render("✓"), topic.Label())
			} else {
				fmt.Printf("  %s %s\n", theme.Hint.Render("✗"), theme.Hint.Render(topic.Label()))
			}
		}
		return nil
	},
}

func init() {
	topicsCmd.Flags().String("level", "5.1", "Class level as year.semester, e.g. '7.1'")
}
