package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gardenhelper/internal/cli/formatter"
	"github.com/alexanderramin/gardenhelper/internal/domain"
)

func newScreensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "screens",
		Short: "List the screens --screen accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := make([][]string, 0, len(domain.Screens))
			for _, s := range domain.Screens {
				rows = append(rows, []string{string(s), s.Title(), navKeyFor(s)})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"SCREEN", "TITLE", "KEY"}, rows))
			return nil
		},
	}
}
