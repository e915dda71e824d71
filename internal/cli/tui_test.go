package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/gardenhelper/internal/domain"
	"github.com/alexanderramin/gardenhelper/internal/garden"
	"github.com/alexanderramin/gardenhelper/internal/testutil"
)

func TestTUI_StartsOnWelcome(t *testing.T) {
	d := NewTestDriver(t, testApp(t), domain.ScreenWelcome)

	assert.Equal(t, domain.ScreenWelcome, d.Screen())
	view := d.PlainView()
	assert.Contains(t, view, "Welcome, gardener!")
	assert.Contains(t, view, "New Gardener")
	assert.Contains(t, view, "Garden Educator")
}

func TestTUI_ReturningGardenerSkipsWelcome(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app, testutil.WithPreferences(domain.Preferences{HighContrast: true}))

	d := NewTestDriver(t, app, domain.ScreenWelcome)

	assert.Equal(t, domain.ScreenDashboard, d.Screen())
	assert.True(t, d.State().Flags.HighContrast)
	assert.Contains(t, d.PlainView(), "Good to see you, Ana!")
}

func TestTUI_StartScreenFlag(t *testing.T) {
	d := NewTestDriver(t, testApp(t), domain.ScreenLearning)

	assert.Equal(t, domain.ScreenLearning, d.Screen())
	assert.Contains(t, d.PlainView(), "What Makes Soil Happy?")
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t), domain.ScreenWelcome)
	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlCFromSetup(t *testing.T) {
	d := NewTestDriver(t, testApp(t), domain.ScreenSetup)
	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}

func TestTUI_ButtonFocusWraps(t *testing.T) {
	d := NewTestDriver(t, testApp(t), domain.ScreenWelcome)
	n := len(buttonsFor(d.State()))

	for i := 0; i < n; i++ {
		d.PressTab()
	}
	assert.Equal(t, 0, d.Cursor())

	d.PressUp()
	assert.Equal(t, n-1, d.Cursor())
}

func TestTUI_Onboarding(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app, domain.ScreenWelcome)

	d.Activate("Garden Educator")
	require.Equal(t, domain.ScreenSetup, d.Screen())
	assert.Contains(t, d.PlainView(), "Setting up as: Garden Educator")

	// Missing name: toast, stay on setup.
	d.Send(setupSubmitMsg{Location: "coastal"})
	assert.Equal(t, domain.ScreenSetup, d.Screen())
	assert.Contains(t, d.PlainView(), "Please enter your name")
	require.NotNil(t, d.appModel().setup)
	assert.Equal(t, "coastal", d.appModel().setup.location)

	d.Send(setupSubmitMsg{Name: " Ana ", Location: "coastal", Preferences: domain.Preferences{LargeText: true}})
	assert.Contains(t, d.PlainView(), "Welcome to Garden Helper, Ana!")
	assert.True(t, d.State().Flags.LargeText)
	assert.Equal(t, domain.ScreenSetup, d.Screen())

	d.Advance(2 * time.Second)
	assert.Equal(t, domain.ScreenDashboard, d.Screen())

	p, err := app.Profiles.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, domain.RoleEducator, p.Role)
	assert.True(t, p.Preferences.LargeText)
}

func TestTUI_SetupFormSubmitsOnce(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app, domain.ScreenSetup)
	require.NotNil(t, d.appModel().setup)

	d.Type("Ana")
	d.PressEnter() // name -> climate
	d.PressDown()  // "temperate"
	d.PressEnter() // climate -> preferences
	d.PressEnter() // submit

	toast := d.State().Toast
	assert.Equal(t, uint64(1), toast.Seq)
	assert.Contains(t, toast.Message, "Welcome to Garden Helper, Ana!")
	require.Equal(t, domain.ScreenSetup, d.Screen())
	pending := d.Clock.Pending()

	// Keys pressed during the welcome delay must not complete setup again.
	d.PressKey('x')
	d.PressKey('y')
	d.PressEnter()
	assert.Equal(t, uint64(1), d.State().Toast.Seq)
	assert.Equal(t, pending, d.Clock.Pending())

	d.Advance(2 * time.Second)
	assert.Equal(t, domain.ScreenDashboard, d.Screen())

	p, err := app.Profiles.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, "temperate", p.Location)
}

func TestTUI_EscFromSetupReturnsToWelcome(t *testing.T) {
	d := NewTestDriver(t, testApp(t), domain.ScreenSetup)
	d.PressEsc()
	assert.Equal(t, domain.ScreenWelcome, d.Screen())
}

func TestTUI_NavKeys(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app, domain.ScreenDashboard)

	for k, want := range navKeys {
		d.PressKey(rune(k[0]))
		assert.Equal(t, want, d.Screen(), "key %s", k)
	}

	d.PressKey('2')
	d.PressEsc()
	assert.Equal(t, domain.ScreenDashboard, d.Screen())
}

func TestTUI_NavKeysIgnoredOnWelcome(t *testing.T) {
	d := NewTestDriver(t, testApp(t), domain.ScreenWelcome)
	d.PressKey('3')
	assert.Equal(t, domain.ScreenWelcome, d.Screen())
}

func TestTUI_DashboardShowsReadings(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app, domain.ScreenDashboard)

	view := d.PlainView()
	assert.Contains(t, view, "65%")
	assert.Contains(t, view, "6.8")
	assert.Contains(t, view, "72°F")
	assert.Contains(t, view, "Last checked: 0 minutes ago")
}

func TestTUI_ComingSoonToastDismisses(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app, domain.ScreenDashboard)

	d.Activate("Weather")
	assert.Contains(t, d.PlainView(), domain.MsgComingSoon)

	d.Advance(3 * time.Second)
	assert.False(t, d.State().HasToast())
}

func TestTUI_SoilTestWizard(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app, domain.ScreenTesting)

	assert.Contains(t, d.PlainView(), "Step 1 of 4")
	d.Activate("I'm Ready!")
	require.Equal(t, domain.StepMoisture, d.State().Step)
	assert.Contains(t, d.PlainView(), "--")

	d.Activate("Test Moisture")
	assert.True(t, d.State().Test.Running)
	assert.Contains(t, d.PlainView(), "Testing...")

	// Pressing enter on the disabled button does nothing.
	run := d.State().Test.Run
	d.PressEnter()
	assert.Equal(t, run, d.State().Test.Run)

	d.Advance(5 * time.Second)
	assert.Equal(t, domain.StepPH, d.State().Step)
	assert.Equal(t, 65.0, d.State().Readings[domain.TestMoisture])

	// pH climbs in tenths, so it takes far longer than moisture.
	d.Activate("Test pH")
	d.Advance(30 * time.Second)
	require.Equal(t, domain.StepResults, d.State().Step)
	assert.Contains(t, d.PlainView(), "Your Soil Report")

	d.Activate("Save Results")
	assert.Contains(t, d.PlainView(), domain.MsgResultsSaved)

	d.Advance(2 * time.Second)
	assert.Equal(t, domain.ScreenProgress, d.Screen())
	assert.Contains(t, d.PlainView(), "Your Garden Journey")

	list, err := app.Results.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 65.0, list[0].Moisture)
}

func TestTUI_StepKeys(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app, domain.ScreenTesting)

	d.PressKey(']')
	d.PressKey(']')
	assert.Equal(t, domain.StepPH, d.State().Step)
	d.PressKey('[')
	assert.Equal(t, domain.StepMoisture, d.State().Step)

	d.PressKey('[')
	d.PressKey('[')
	assert.Equal(t, domain.FirstStep, d.State().Step)
}

func TestTUI_HelpModal(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app, domain.ScreenDashboard)

	d.PressKey('?')
	require.Equal(t, garden.ModalHelp, d.State().Modal)
	assert.Contains(t, d.PlainView(), "Need help?")

	d.Activate(domain.HelpOptionText.Label())
	assert.Equal(t, garden.ModalNone, d.State().Modal)
	assert.Contains(t, d.PlainView(), domain.HelpOptionText.Message())

	d.PressKey('?')
	d.PressEsc()
	assert.Equal(t, garden.ModalNone, d.State().Modal)
	assert.Equal(t, domain.ScreenDashboard, d.Screen())
}

func TestTUI_VoiceModalOpensTesting(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app, domain.ScreenDashboard)

	d.PressKey('v')
	require.Equal(t, garden.ModalVoice, d.State().Modal)
	assert.Contains(t, d.PlainView(), "Voice Helper")

	d.Advance(8 * time.Second)
	assert.Contains(t, d.PlainView(), domain.MsgVoiceHeard)

	d.Advance(2 * time.Second)
	assert.Equal(t, garden.ModalNone, d.State().Modal)
	assert.Equal(t, domain.ScreenTesting, d.Screen())
}

func TestTUI_VoiceModalClosedEarlyStaysPut(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app, domain.ScreenDashboard)

	d.PressKey('v')
	d.Advance(time.Second)
	d.PressEsc()
	d.Advance(20 * time.Second)

	assert.Equal(t, domain.ScreenDashboard, d.Screen())
	assert.Equal(t, garden.ModalNone, d.State().Modal)
}

func TestTUI_AccessibilityToggles(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app, domain.ScreenDashboard)

	d.PressKey('c')
	assert.True(t, d.State().Flags.HighContrast)
	assert.True(t, d.appModel().theme.HighContrast)

	d.PressKey('+')
	assert.True(t, d.State().Flags.LargeText)
	assert.Contains(t, d.PlainView(), "G O O D")

	d.PressKey('c')
	assert.False(t, d.State().Flags.HighContrast)
}

func TestTUI_CommunityLike(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app, domain.ScreenCommunity)

	before := d.State().Posts[0].Likes
	d.Activate("Like")
	assert.Equal(t, before+1, d.State().Posts[0].Likes)
	assert.Contains(t, d.PlainView(), domain.PostLike.Message())
}

func TestTUI_LearningStartLesson(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app, domain.ScreenLearning)

	d.Activate("Start Lesson")
	assert.Contains(t, d.PlainView(), "Starting")

	d.Advance(2 * time.Second)
	assert.Contains(t, d.PlainView(), domain.MsgLessonFollowUp)
}
