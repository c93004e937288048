package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage chat sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionsList,
}

var sessionsHistoryCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "Print a session's conversation",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsHistory,
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsHistoryCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func runSessionsList(cmd *cobra.Command, _ []string) error {
	if docStore == nil {
		return errors.New("document store not configured")
	}

	ctx := context.Background()
	sessions, err := docStore.ListSessions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		cmd.Println("No sessions yet.")
		return nil
	}

	cmd.Println(headingStyle.Render("Sessions:"))
	cmd.Println()
	for i := range sessions {
		cmd.Printf("  %s\n", sessions[i].ID)
		cmd.Printf("    Title:   %s\n", sessions[i].Title)
		cmd.Printf("    Started: %s\n", sessions[i].CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}
	return nil
}

func runSessionsHistory(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant not configured")
	}

	ctx := context.Background()
	messages, err := assistantService.History(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(messages) == 0 {
		cmd.Println("No messages in this session.")
		return nil
	}

	for i := range messages {
		msg := &messages[i]
		label := "You"
		if msg.Role == domain.RoleAssistant {
			label = "Assistant"
		}
		cmd.Println(headingStyle.Render(label))
		cmd.Println(msg.Content)
		cmd.Println()
	}
	return nil
}
