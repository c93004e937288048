package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var askSession string

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about your documents",
	Long: `Routes the question to document retrieval, general legal knowledge
or a hybrid of both, then generates an answer. Both turns are recorded
in the session history.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askSession, "session", "s", "", "session to continue (defaults to a new session)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant not configured")
	}

	sessionID := askSession
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	ctx := context.Background()

	answer, err := assistantService.Ask(ctx, sessionID, args[0])
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	cmd.Println(answer.Text)
	cmd.Println()
	cmd.Println(faintStyle.Render(fmt.Sprintf("route: %s, session: %s", answer.Route, sessionID)))

	if len(answer.Sources) > 0 {
		cmd.Println()
		cmd.Println(headingStyle.Render("Sources:"))
		for i := range answer.Sources {
			src := &answer.Sources[i]
			cmd.Printf("  [%d] %s (pages %d-%d)\n",
				i+1, src.Chunk.Title, src.Chunk.PageStart, src.Chunk.PageEnd)
		}
	}
	return nil
}
