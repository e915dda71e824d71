package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexanderramin/gardenhelper/internal/cli/formatter"
	"github.com/alexanderramin/gardenhelper/internal/config"
	"github.com/alexanderramin/gardenhelper/internal/domain"
	"github.com/alexanderramin/gardenhelper/internal/garden"
	"github.com/alexanderramin/gardenhelper/internal/service"
)

// App holds the services and settings shared by every command.
type App struct {
	Profiles service.ProfileService
	Results  service.ResultService
	Journal  service.JournalService
	Config   config.Config
	Logger   *zap.Logger

	// IsInteractive reports whether a terminal is attached. When nil or
	// false the root command prints a summary instead of starting the TUI.
	IsInteractive func() bool

	// Now overrides the wall clock; nil means time.Now.
	Now func() time.Time
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// timings falls back to the defaults when no config was loaded.
func (a *App) timings() garden.Timings {
	if a.Config.Timing == (config.TimingConfig{}) {
		return garden.DefaultTimings()
	}
	return a.Config.Timings()
}

// newController wires a controller to the app's stores.
func (a *App) newController(opts ...garden.Option) *garden.Controller {
	base := []garden.Option{
		garden.WithTimings(a.timings()),
		garden.WithLogger(a.logger().Named("garden")),
		garden.WithClock(a.now),
	}
	if a.Profiles != nil {
		base = append(base, garden.WithProfileStore(a.Profiles))
	}
	if a.Results != nil {
		base = append(base, garden.WithResultRecorder(a.Results))
	}
	return garden.New(append(base, opts...)...)
}

// NewRootCmd creates the top-level "gardenhelper" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var screenName string

	root := &cobra.Command{
		Use:           "gardenhelper",
		Short:         "Friendly soil testing and gardening guide",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := screenName
			if name == "" {
				name = app.Config.UI.StartScreen
			}
			start := domain.ScreenWelcome
			if name != "" {
				s, err := parseScreenArg(name)
				if err != nil {
					return err
				}
				start = s
			}

			if !app.interactive() {
				return printSummary(cmd.Context(), cmd.OutOrStdout(), app)
			}
			return runTUI(cmd.Context(), app, start)
		},
	}
	root.Flags().StringVarP(&screenName, "screen", "s", "", "screen to open on start (see `gardenhelper screens`)")

	root.AddCommand(
		newProfileCmd(app),
		newResultsCmd(app),
		newJournalCmd(app),
		newScreensCmd(),
		newLessonCmd(),
	)
	return root
}

// parseScreenArg resolves a screen name and suggests close matches on typos.
func parseScreenArg(name string) (domain.Screen, error) {
	s, err := domain.ParseScreen(name)
	if err == nil {
		return s, nil
	}
	if hints := domain.SuggestScreen(name, 3); len(hints) > 0 {
		names := make([]string, len(hints))
		for i, h := range hints {
			names[i] = string(h)
		}
		return "", fmt.Errorf("%w (did you mean: %s?)", err, strings.Join(names, ", "))
	}
	return "", err
}

func runTUI(ctx context.Context, app *App, start domain.Screen) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m := newAppModel(ctx, app, app.newController(), start, tickSchedule)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if app.Config.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// printSummary is the non-interactive fallback: profile plus recent results.
func printSummary(ctx context.Context, w io.Writer, app *App) error {
	fmt.Fprintln(w, formatter.Header("🌱 Garden Helper"))

	var profile *domain.UserProfile
	if app.Profiles != nil {
		p, err := app.Profiles.Load(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		profile = p
	}
	if profile == nil {
		empty := domain.NewUserProfile()
		profile = &empty
	}
	fmt.Fprintln(w, formatter.FormatProfile(profile, app.now()))

	if app.Results == nil {
		return nil
	}
	results, err := app.Results.ListRecent(ctx, 5)
	if err != nil {
		return fmt.Errorf("list results: %w", err)
	}
	fmt.Fprintln(w, formatter.FormatResults(results, app.now()))
	return nil
}
