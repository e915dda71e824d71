package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gardenhelper/internal/cli/formatter"
	"github.com/alexanderramin/gardenhelper/internal/domain"
)

func newResultsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Saved soil test results",
	}

	cmd.AddCommand(
		newResultsListCmd(app),
		newResultsShareCmd(app),
	)

	return cmd
}

func newResultsListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recent soil tests, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.Results == nil {
				return fmt.Errorf("result storage is not configured")
			}
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			results, err := app.Results.ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list results: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResults(results, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of results")
	return cmd
}

func newResultsShareCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "share <id>",
		Short: "Share a saved result with the community",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Results == nil {
				return fmt.Errorf("result storage is not configured")
			}
			if err := app.Results.MarkShared(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("share result %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), domain.MsgResultsShared)
			return nil
		},
	}
}
