package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gardenhelper/internal/cli/formatter"
	"github.com/alexanderramin/gardenhelper/internal/domain"
)

func newLessonCmd() *cobra.Command {
	var width int
	var plain bool

	cmd := &cobra.Command{
		Use:   "lesson",
		Short: `Read the featured lesson, "What Makes Soil Happy?"`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width < 20 {
				return fmt.Errorf("--width must be at least 20, got %d", width)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkdown(domain.FeaturedLesson, width, plain))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80, "Wrap width")
	cmd.Flags().BoolVar(&plain, "plain", false, "Render without colors")
	return cmd
}
