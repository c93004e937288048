package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driving"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/services"
)

var (
	searchDocID string
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed documents",
	Long: `Performs semantic search across indexed documents. Intent and
metadata filters (pages, sections) are extracted from the query text
and applied automatically.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchDocID, "doc", "d", "", "restrict search to one document")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 5, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search not configured: set an embedding provider with 'legalchat config'")
	}

	query := args[0]
	ctx := context.Background()

	results, err := searchService.Search(ctx, query, driving.SearchOptions{
		DocumentID: searchDocID,
		Limit:      searchLimit,
		Filters:    services.ExtractFilters(query),
		Intent:     services.ExtractIntent(query),
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchText(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.ScoredChunk) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchText(cmd *cobra.Command, results []domain.ScoredChunk) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println(headingStyle.Render("Results:"))
	cmd.Println()
	for i := range results {
		r := &results[i]
		cmd.Printf("  [%d] %s %s\n", i+1, r.Chunk.Title,
			scoreStyle.Render(fmt.Sprintf("(%.3f)", r.Score)))
		cmd.Printf("      %s\n", faintStyle.Render(fmt.Sprintf(
			"doc %s, pages %d-%d", r.DocumentID, r.Chunk.PageStart, r.Chunk.PageEnd)))
		if r.Stitched {
			cmd.Printf("      %s\n", faintStyle.Render("continuation of previous result"))
		}
		cmd.Printf("      %s\n", snippet(r.Chunk.Content, 160))
		cmd.Println()
	}
	return nil
}

// snippet truncates content for display.
func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
