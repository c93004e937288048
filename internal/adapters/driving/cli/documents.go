package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var documentsSession string

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Manage ingested documents",
	Long:  `List, inspect, summarise or delete indexed documents.`,
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents in a session",
	Args:  cobra.NoArgs,
	RunE:  runDocumentsList,
}

var documentsInfoCmd = &cobra.Command{
	Use:   "info [doc-id]",
	Short: "Show a document's index summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsInfo,
}

var documentsSectionCmd = &cobra.Command{
	Use:   "section [doc-id] [index]",
	Short: "Print one indexed section",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocumentsSection,
}

var documentsSummariseCmd = &cobra.Command{
	Use:   "summarise [doc-id]",
	Short: "Generate a summary of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsSummarise,
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document and its index",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsDelete,
}

func init() {
	documentsListCmd.Flags().StringVarP(&documentsSession, "session", "s", "", "session to list documents for")

	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsInfoCmd)
	documentsCmd.AddCommand(documentsSectionCmd)
	documentsCmd.AddCommand(documentsSummariseCmd)
	documentsCmd.AddCommand(documentsDeleteCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if docStore == nil {
		return errors.New("document store not configured")
	}
	if documentsSession == "" {
		return errors.New("a session is required: pass --session")
	}

	ctx := context.Background()
	docs, err := docStore.ListDocuments(ctx, documentsSession)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Printf("No documents in session %s.\n", documentsSession)
		return nil
	}

	cmd.Println(headingStyle.Render(fmt.Sprintf("Documents in session %s:", documentsSession)))
	cmd.Println()
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    File:     %s\n", docs[i].Filename)
		cmd.Printf("    Pages:    %d\n", docs[i].PageCount)
		cmd.Printf("    Status:   %s\n", docs[i].Status)
		cmd.Printf("    Uploaded: %s\n", docs[i].UploadedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}
	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentsInfo(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingestion not configured: set an embedding provider with 'legalchat config'")
	}

	ctx := context.Background()
	info, err := ingestService.Info(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get document info: %w", err)
	}

	cmd.Println(headingStyle.Render(info.Filename))
	cmd.Printf("  Pages:    %d\n", info.TotalPages)
	cmd.Printf("  Sections: %d\n", info.TotalSections)
	return nil
}

func runDocumentsSection(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingestion not configured: set an embedding provider with 'legalchat config'")
	}

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid section index %q", args[1])
	}

	ctx := context.Background()
	chunk, err := ingestService.Section(ctx, args[0], index)
	if err != nil {
		return fmt.Errorf("failed to get section: %w", err)
	}

	cmd.Println(headingStyle.Render(chunk.Title))
	cmd.Printf("%s\n", faintStyle.Render(fmt.Sprintf(
		"pages %d-%d, %d tokens", chunk.PageStart, chunk.PageEnd, chunk.TokenCount)))
	cmd.Println()
	cmd.Println(chunk.Content)
	return nil
}

func runDocumentsSummarise(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant not configured")
	}

	ctx := context.Background()
	summary, err := assistantService.Summarise(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to summarise document: %w", err)
	}

	cmd.Println(summary)
	return nil
}

func runDocumentsDelete(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingestion not configured: set an embedding provider with 'legalchat config'")
	}

	ctx := context.Background()
	if err := ingestService.Delete(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Document %s deleted.\n", args[0])
	return nil
}
