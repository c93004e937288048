package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var routeSession string

var routeCmd = &cobra.Command{
	Use:   "route [query]",
	Short: "Show how a query would be answered",
	Long: `Classifies the query against the session's documents and prints the
answering strategy (document, general or hybrid) without generating
an answer. Useful for tuning queries and debugging routing.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().StringVarP(&routeSession, "session", "s", "", "session whose documents inform the decision")
	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, args []string) error {
	if routerService == nil {
		return errors.New("router not configured")
	}

	ctx := context.Background()

	docs, err := docStore.ListDocuments(ctx, routeSession)
	if err != nil {
		return err
	}

	route := routerService.Route(ctx, args[0], docs)
	cmd.Println(string(route))
	return nil
}
