package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/studiz/internal/docs"
	"github.com/abhisek/studiz/internal/evaluate"
	"github.com/abhisek/studiz/internal/intent"
	"github.com/abhisek/studiz/internal/llm"
	"github.com/abhisek/studiz/internal/quizgen"
	"github.com/abhisek/studiz/internal/review"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <utterance>",
	Short: "Send one utterance to the assistant (no database, no TUI)",
	Long: `Classify and answer a single utterance, printing the reply.

This is a stateless developer tool — no database, no event logging.
Useful for testing intent classification and reply wording.

With --explain, the detected intents and their extracted fields are
printed instead of a reply.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringSlice("docs", nil, "Documents to load before responding")
	askCmd.Flags().Bool("explain", false, "Print the classification instead of a reply")
}

func runAsk(cmd *cobra.Command, args []string) error {
	utterance := strings.Join(args, " ")

	explain, _ := cmd.Flags().GetBool("explain")
	if explain {
		return printClassification(utterance)
	}

	docPaths, _ := cmd.Flags().GetStringSlice("docs")

	library := docs.NewLibrary()
	for _, p := range docPaths {
		if _, err := library.IngestFile(p); err != nil {
			return fmt.Errorf("ingest %s: %w", p, err)
		}
	}

	cfg := review.Config{Library: library}

	// Provider is optional; without one the machine falls back to its
	// unavailable replies.
	ctx := context.Background()
	if provider, err := llm.NewProviderFromEnv(ctx, nil); err == nil {
		cfg.Generator = quizgen.New(provider, quizgen.DefaultConfig())
		cfg.Evaluator = evaluate.New(provider, evaluate.DefaultConfig())
	} else {
		fmt.Fprintln(os.Stderr, "note: no LLM provider configured")
	}

	machine := review.NewMachine(cfg)
	resp := machine.Respond(ctx, utterance)
	fmt.Println(resp.Text)
	return nil
}

func printClassification(utterance string) error {
	res := intent.New().Classify(utterance)

	printIntent := func(marker string, in intent.Intent) {
		fmt.Printf("%s %-18s rank=%d", marker, in.Kind, intent.Priority(in.Kind))
		if in.Answer != "" {
			fmt.Printf("  answer=%q", in.Answer)
		}
		if in.NumQuestions != 0 {
			fmt.Printf("  num_questions=%d", in.NumQuestions)
		}
		if in.QuestionType != "" {
			fmt.Printf("  question_type=%s", in.QuestionType)
		}
		if in.Difficulty != "" {
			fmt.Printf("  difficulty=%s", in.Difficulty)
		}
		if len(in.Topics) > 0 {
			fmt.Printf("  topics=%s", strings.Join(in.Topics, ","))
		}
		if in.TopicExtractionFailed {
			fmt.Print("  topic_extraction_failed")
		}
		fmt.Println()
	}

	printIntent("*", res.Primary)
	for _, in := range res.Additional {
		printIntent(" ", in)
	}
	return nil
}
