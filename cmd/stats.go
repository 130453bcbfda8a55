package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/studiz/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		stats, err := st.EventRepo().ReviewStats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		var accuracy float64
		if stats.QuestionsAnswered > 0 {
			accuracy = float64(stats.CorrectAnswers) / float64(stats.QuestionsAnswered) * 100
		}

		fmt.Println("Study Stats")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Sessions started:    %d\n", stats.SessionsStarted)
		fmt.Printf("Sessions completed:  %d\n", stats.SessionsCompleted)
		fmt.Printf("Questions answered:  %d\n", stats.QuestionsAnswered)
		fmt.Printf("Correct answers:     %d (%.1f%%)\n", stats.CorrectAnswers, accuracy)
		fmt.Printf("Documents ingested:  %d\n", stats.DocumentsIngested)

		answers, err := st.EventRepo().RecentAnswers(ctx, 10)
		if err != nil || len(answers) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Recent Answers")
		fmt.Println(strings.Repeat("─", 40))
		for _, a := range answers {
			mark := "✓"
			if !a.Correct {
				mark = "✗"
			}
			q := a.QuestionText
			if len(q) > 60 {
				q = q[:57] + "..."
			}
			fmt.Printf("%s  %s  %s\n", a.Timestamp.Local().Format("Jan 02 15:04"), mark, q)
		}
		return nil
	},
}
