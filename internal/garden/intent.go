package garden

import "github.com/alexanderramin/gardenhelper/internal/domain"

// Intent is a user action or a fired timer. The set is closed: only types in
// this package implement it.
type Intent interface {
	intentName() string
}

type (
	GoToScreen struct{ Screen domain.Screen }
	GoToStep   struct{ Step domain.Step }
	SelectRole struct{ Role domain.Role }

	CompleteSetup struct {
		Name        string
		Location    string
		Preferences domain.Preferences
	}

	SetPreference struct {
		Pref domain.Preference
		On   bool
	}

	RunTest struct{ Kind domain.TestKind }

	// TestTick advances the test run it was scheduled for. Ticks for a
	// superseded run are ignored.
	TestTick struct{ Run uint64 }

	Notify struct{ Message string }

	// DismissToast hides the toast with the given sequence number, if it is
	// still the one showing.
	DismissToast struct{ Seq uint64 }

	RunQuickAction   struct{ Action domain.QuickAction }
	SaveResults      struct{}
	ShareResults     struct{}
	OpenTool         struct{ Tool domain.Tool }
	AskCommunity     struct{ Help domain.CommunityHelp }
	ChooseHelpOption struct{ Option domain.HelpOption }

	ReactToPost struct {
		PostID string
		Action domain.PostAction
	}

	OpenCategory struct{ Name string }
	StartLesson  struct{}
	OpenModal    struct{ Modal Modal }
	CloseModal   struct{}
	SensorTick   struct{}

	// VoiceTick drives the voice modal simulation. Positive phases cycle the
	// listening phrases; voiceHeard and voiceDone end the session.
	VoiceTick struct {
		Session uint64
		Phase   int
	}
)

func (GoToScreen) intentName() string       { return "go_to_screen" }
func (GoToStep) intentName() string         { return "go_to_step" }
func (SelectRole) intentName() string       { return "select_role" }
func (CompleteSetup) intentName() string    { return "complete_setup" }
func (SetPreference) intentName() string    { return "set_preference" }
func (RunTest) intentName() string          { return "run_test" }
func (TestTick) intentName() string         { return "test_tick" }
func (Notify) intentName() string           { return "notify" }
func (DismissToast) intentName() string     { return "dismiss_toast" }
func (RunQuickAction) intentName() string   { return "quick_action" }
func (SaveResults) intentName() string      { return "save_results" }
func (ShareResults) intentName() string     { return "share_results" }
func (OpenTool) intentName() string         { return "open_tool" }
func (AskCommunity) intentName() string     { return "ask_community" }
func (ChooseHelpOption) intentName() string { return "help_option" }
func (ReactToPost) intentName() string      { return "react_to_post" }
func (OpenCategory) intentName() string     { return "open_category" }
func (StartLesson) intentName() string      { return "start_lesson" }
func (OpenModal) intentName() string        { return "open_modal" }
func (CloseModal) intentName() string       { return "close_modal" }
func (SensorTick) intentName() string       { return "sensor_tick" }
func (VoiceTick) intentName() string        { return "voice_tick" }

// Name returns the stable log name of an intent.
func Name(in Intent) string {
	if in == nil {
		return "<nil>"
	}
	return in.intentName()
}
