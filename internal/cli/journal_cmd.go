package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gardenhelper/internal/cli/formatter"
)

func newJournalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Back up or restore your garden journal as YAML",
	}

	cmd.AddCommand(
		newJournalExportCmd(app),
		newJournalImportCmd(app),
	)

	return cmd
}

func newJournalExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the profile and every saved result as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.Journal == nil {
				return fmt.Errorf("journal storage is not configured")
			}
			file, err := app.Journal.Export(cmd.Context())
			if err != nil {
				return fmt.Errorf("export journal: %w", err)
			}
			data, err := file.Marshal()
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d results to %s\n", len(file.Results), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "File to write (default stdout)")
	return cmd
}

func newJournalImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the profile and saved results with a journal file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Journal == nil {
				return fmt.Errorf("journal storage is not configured")
			}
			res, err := app.Journal.Import(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("import journal: %w", err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Imported %d results\n\n", res.ResultCount)
			fmt.Fprintln(w, formatter.FormatProfile(res.Profile, app.now()))
			return nil
		},
	}
}
