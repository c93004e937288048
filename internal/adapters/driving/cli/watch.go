package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/akashhguptaa/Legal-ChatBot/internal/logger"
)

var watchSession string

// settleDelay gives the OS time to finish writing a dropped file before
// ingestion opens it.
const settleDelay = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a folder and ingest dropped PDFs",
	Long: `Watches a directory and automatically ingests any PDF created in it.
Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchSession, "session", "s", "", "session to attach documents to (defaults to a new session)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingestion not configured: set an embedding provider with 'legalchat config'")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	sessionID := watchSession
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (session %s). Press Ctrl+C to stop.\n", dir, sessionID)

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) || !isPDF(event.Name) {
				continue
			}

			time.Sleep(settleDelay)

			cmd.Printf("Ingesting %s...\n", event.Name)
			result, err := ingestService.Ingest(ctx, sessionID, event.Name)
			if err != nil {
				cmd.Println(errorStyle.Render(fmt.Sprintf("  failed: %v", err)))
				continue
			}
			cmd.Printf("  indexed %s: %d sections, %d chunks\n",
				result.Document.ID, result.Sections, result.Indexed)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// isPDF filters watch events down to visible PDF files.
func isPDF(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), ".pdf")
}
