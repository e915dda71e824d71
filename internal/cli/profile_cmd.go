package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/gardenhelper/internal/cli/formatter"
	"github.com/alexanderramin/gardenhelper/internal/domain"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change your gardener profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
		newProfileResetCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProfile(cmd, app)
			if err != nil {
				return err
			}
			switch format {
			case "text":
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p, app.now()))
			case "yaml":
				out, err := formatter.ProfileYAML(p)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			default:
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or yaml")
	return cmd
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name, location, role string
	var prefs domain.Preferences

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Complete setup or update individual fields",
		Example: `  gardenhelper profile set --name Ana --location temperate
  gardenhelper profile set --large-text --high-contrast=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProfile(cmd, app)
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("name") {
				p.Name = name
			}
			if fs.Changed("location") {
				p.Location = location
			}
			if fs.Changed("role") {
				r, err := domain.ParseRole(role)
				if err != nil {
					return err
				}
				p.Role = r
			}
			p.Preferences = mergePrefFlags(fs, p.Preferences, prefs)

			if err := domain.ValidateSetup(p.Name, p.Location); err != nil {
				return err
			}
			if p.Role == domain.RoleUnset {
				p.Role = domain.RoleBeginner
			}
			if err := app.Profiles.Save(cmd.Context(), p); err != nil {
				return fmt.Errorf("save profile: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "What to call you")
	cmd.Flags().StringVar(&location, "location", "", "Gardening climate")
	cmd.Flags().StringVar(&role, "role", "", "beginner, expert or educator")
	bindPrefFlags(cmd.Flags(), &prefs)
	return cmd
}

func newProfileResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the profile and all saved results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("reset deletes your profile and saved results; re-run with --yes")
			}
			if err := app.Profiles.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("reset profile: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile reset. Run gardenhelper to set up again.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")
	return cmd
}

// prefFlags pairs each accessibility preference with its flag name.
var prefFlags = []struct {
	name  string
	pref  domain.Preference
	usage string
}{
	{"large-text", domain.PrefLargeText, "Bigger, bolder text"},
	{"high-contrast", domain.PrefHighContrast, "High contrast colors"},
	{"voice-guidance", domain.PrefVoiceGuidance, "Spoken guidance"},
}

// bindPrefFlags registers one bool flag per preference on fs.
func bindPrefFlags(fs *pflag.FlagSet, prefs *domain.Preferences) {
	fs.BoolVar(&prefs.LargeText, "large-text", false, prefFlags[0].usage)
	fs.BoolVar(&prefs.HighContrast, "high-contrast", false, prefFlags[1].usage)
	fs.BoolVar(&prefs.VoiceGuidance, "voice-guidance", false, prefFlags[2].usage)
}

// mergePrefFlags copies only the preference flags the user passed onto cur.
func mergePrefFlags(fs *pflag.FlagSet, cur, flags domain.Preferences) domain.Preferences {
	for _, f := range prefFlags {
		if fs.Changed(f.name) {
			cur = cur.With(f.pref, flags.Get(f.pref))
		}
	}
	return cur
}

func loadProfile(cmd *cobra.Command, app *App) (*domain.UserProfile, error) {
	if app.Profiles == nil {
		return nil, fmt.Errorf("profile storage is not configured")
	}
	p, err := app.Profiles.Load(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if p == nil {
		empty := domain.NewUserProfile()
		p = &empty
	}
	return p, nil
}
