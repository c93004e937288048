package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var ingestSession string

var ingestCmd = &cobra.Command{
	Use:   "ingest [pdf-path]",
	Short: "Process a PDF into a searchable index",
	Long: `Extracts text from a PDF, segments it into legal sections, chunks
the sections with overlap, embeds the chunks and publishes a
per-document vector index.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestSession, "session", "s", "", "session to attach the document to (defaults to a new session)")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingestion not configured: set an embedding provider with 'legalchat config'")
	}

	sessionID := ingestSession
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	ctx := context.Background()
	cmd.Printf("Ingesting %s...\n", args[0])

	result, err := ingestService.Ingest(ctx, sessionID, args[0])
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	cmd.Println(headingStyle.Render("Document indexed"))
	cmd.Printf("  ID:       %s\n", result.Document.ID)
	cmd.Printf("  Session:  %s\n", result.Document.SessionID)
	cmd.Printf("  Pages:    %d\n", result.Document.PageCount)
	cmd.Printf("  Sections: %d\n", result.Sections)
	cmd.Printf("  Chunks:   %d (%d indexed)\n", result.Chunks, result.Indexed)
	cmd.Printf("  Tokens:   %d\n", result.TokensUsed)

	if result.Indexed < result.Chunks {
		cmd.Println(errorStyle.Render(fmt.Sprintf(
			"  %d chunks failed to embed and were skipped", result.Chunks-result.Indexed)))
	}
	return nil
}
