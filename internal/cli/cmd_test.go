package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/gardenhelper/internal/domain"
	"github.com/alexanderramin/gardenhelper/internal/repository"
	"github.com/alexanderramin/gardenhelper/internal/service"
	"github.com/alexanderramin/gardenhelper/internal/testutil"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	profiles := repository.NewSQLiteUserProfileRepo(database)
	results := repository.NewSQLiteSoilResultRepo(database)

	return &App{
		Profiles: service.NewProfileService(profiles, uow),
		Results:  service.NewResultService(results, uow),
		Journal:  service.NewJournalService(profiles, results, uow),
		Now:      func() time.Time { return testNow },
	}
}

// seedProfile saves a completed profile.
func seedProfile(t *testing.T, app *App, opts ...testutil.ProfileOption) *domain.UserProfile {
	t.Helper()
	p := testutil.NewTestProfile("Ana", "temperate", opts...)
	require.NoError(t, app.Profiles.Save(context.Background(), p))
	return p
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stripANSI(buf.String()), err
}

// --- Root command ---

func TestRootCmd_NonInteractivePrintsSummary(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "GARDEN HELPER")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "No saved soil tests yet")
}

func TestRootCmd_NonInteractiveWithoutProfile(t *testing.T) {
	out, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Not set up yet")
}

func TestRootCmd_UnknownScreenSuggests(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "--screen", "dashbord")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownScreen)
	assert.Contains(t, err.Error(), "did you mean: dashboard")
}

func TestRootCmd_UnknownScreenWithoutSuggestion(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "--screen", "zzzzzzzzzzzz")
	require.ErrorIs(t, err, domain.ErrUnknownScreen)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "dashboard")
	assert.Error(t, err)
}

func TestParseScreenArg_ElementIDForm(t *testing.T) {
	s, err := parseScreenArg("testingScreen")
	require.NoError(t, err)
	assert.Equal(t, domain.ScreenTesting, s)
}

// --- profile ---

func TestProfileSet_CompletesSetup(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "profile", "set", "--name", "  Ana  ", "--location", "arid", "--large-text")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")

	p, err := app.Profiles.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "arid", p.Location)
	assert.Equal(t, domain.RoleBeginner, p.Role)
	assert.True(t, p.Preferences.LargeText)
	assert.False(t, p.Preferences.HighContrast)
}

func TestProfileSet_MissingNameIsValidationError(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "profile", "set", "--location", "arid")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "Please enter your name")
}

func TestProfileSet_OnlyChangedPrefsAreTouched(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app, testutil.WithPreferences(domain.Preferences{LargeText: true, VoiceGuidance: true}))

	_, err := executeCmd(t, app, "profile", "set", "--high-contrast", "--voice-guidance=false")
	require.NoError(t, err)

	p, err := app.Profiles.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Preferences{LargeText: true, HighContrast: true}, p.Preferences)
	assert.Equal(t, "Ana", p.Name)
}

func TestProfileSet_UnknownRole(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	_, err := executeCmd(t, app, "profile", "set", "--role", "wizard")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestProfileShow_YAML(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	out, err := executeCmd(t, app, "profile", "show", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Ana")
	assert.Contains(t, out, "location: temperate")
}

func TestProfileShow_BadFormat(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "profile", "show", "-f", "json")
	assert.ErrorContains(t, err, "unknown format")
}

func TestProfileReset_RequiresYes(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	_, err := executeCmd(t, app, "profile", "reset")
	require.Error(t, err)

	_, err = executeCmd(t, app, "profile", "reset", "--yes")
	require.NoError(t, err)

	p, err := app.Profiles.Load(context.Background())
	require.NoError(t, err)
	if p != nil {
		assert.False(t, p.IsSetUp())
	}
}

// --- results ---

func TestResultsList(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.Results.Record(ctx, testutil.NewTestResult(testutil.WithRecordedAt(testNow.Add(-2*time.Hour)))))

	out, err := executeCmd(t, app, "results", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "MOISTURE")
}

func TestResultsList_RejectsBadLimit(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "results", "list", "--limit", "0")
	assert.ErrorContains(t, err, "--limit must be positive")
}

func TestResultsShare(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	r := testutil.NewTestResult()
	require.NoError(t, app.Results.Record(ctx, r))

	out, err := executeCmd(t, app, "results", "share", r.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "shared with the community")

	list, err := app.Results.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Shared)

	_, err = executeCmd(t, app, "results", "share", "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// --- screens and lesson ---

func TestScreensCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "screens")
	require.NoError(t, err)
	for _, s := range domain.Screens {
		assert.Contains(t, out, string(s))
	}
}

func TestLessonCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "lesson", "--plain", "--width", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "What Makes Soil Happy?")

	_, err = executeCmd(t, testApp(t), "lesson", "--width", "5")
	assert.Error(t, err)
}

// --- journal ---

func TestJournal_ExportThenImport(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	seedProfile(t, app)
	require.NoError(t, app.Results.Record(ctx, testutil.NewTestResult(testutil.WithShared())))

	path := filepath.Join(t.TempDir(), "journal.yaml")
	out, err := executeCmd(t, app, "journal", "export", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved 1 results")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Ana")
	assert.Contains(t, string(data), "shared: true")

	fresh := testApp(t)
	out, err = executeCmd(t, fresh, "journal", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 results")
	assert.Contains(t, out, "Ana")

	list, err := fresh.Results.ListRecent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Shared)
}

func TestJournal_ExportToStdout(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	out, err := executeCmd(t, app, "journal", "export")
	require.NoError(t, err)
	assert.Contains(t, out, "version: 1")
	assert.Contains(t, out, "location: temperate")
}

func TestJournal_ExportBeforeSetup(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "journal", "export")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestJournal_ImportInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nprofile:\n  name: Ana\n"), 0o644))

	_, err := executeCmd(t, testApp(t), "journal", "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile.location is required")
}
