package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/studiz/internal/docs"
	"github.com/abhisek/studiz/internal/store"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <documents...>",
	Short: "Check documents and record their ingestion",
	Long: `Parse the given documents, report their passages and topics, and
record a document event per file. Documents are not persisted; pass
them again when starting a chat session.`,
	Args: cobra.MinimumNArgs(1),
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
		eventRepo := st.EventRepo()

		for _, p := range args {
			library := docs.NewLibrary()
			passages, err := library.IngestFile(p)
			if err != nil {
				return fmt.Errorf("ingest %s: %w", p, err)
			}

			topics := library.Topics()
			fmt.Printf("%s: %d passages", p, passages)
			if len(topics) > 0 {
				fmt.Printf(", topics: %s", strings.Join(topics, ", "))
			}
			fmt.Println()

			_ = eventRepo.AppendDocument(ctx, store.DocumentEventData{
				Source:   p,
				Passages: passages,
				Topics:   topics,
			})
		}
		return nil
	},
}
