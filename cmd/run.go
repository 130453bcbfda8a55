package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/studiz/internal/app"
	"github.com/abhisek/studiz/internal/docs"
	"github.com/abhisek/studiz/internal/evaluate"
	"github.com/abhisek/studiz/internal/llm"
	"github.com/abhisek/studiz/internal/quizgen"
	"github.com/abhisek/studiz/internal/review"
	"github.com/abhisek/studiz/internal/speech"
	"github.com/abhisek/studiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads documents, builds the review pipeline,
// and launches the TUI.
func runApp(cmd *cobra.Command, docPaths []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	library, docCount, err := loadLibrary(ctx, eventRepo, docPaths)
	if err != nil {
		return err
	}

	machineCfg := review.Config{
		Library:  library,
		Speaker:  speech.Noop{},
		Recorder: app.NewRecorder(eventRepo, st.SnapshotRepo()),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Question generation will be unavailable.")
	} else {
		machineCfg.Generator = quizgen.New(provider, quizgen.DefaultConfig())
		machineCfg.Evaluator = evaluate.New(provider, evaluate.DefaultConfig())
	}

	opts := app.Options{
		EventRepo:    eventRepo,
		SnapshotRepo: st.SnapshotRepo(),
		Machine:      review.NewMachine(machineCfg),
		DocCount:     docCount,
	}

	return app.Run(opts)
}

// loadLibrary ingests the given document paths into a fresh library and
// records one document event per file.
func loadLibrary(ctx context.Context, eventRepo store.EventRepo, paths []string) (*docs.Library, int, error) {
	library := docs.NewLibrary()
	count := 0
	for _, p := range paths {
		passages, err := library.IngestFile(p)
		if err != nil {
			return nil, 0, fmt.Errorf("ingest %s: %w", p, err)
		}
		count++
		_ = eventRepo.AppendDocument(ctx, store.DocumentEventData{
			Source:   p,
			Passages: passages,
			Topics:   library.Topics(),
		})
	}
	return library, count, nil
}
