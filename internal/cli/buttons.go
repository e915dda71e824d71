package cli

import (
	"github.com/alexanderramin/gardenhelper/internal/domain"
	"github.com/alexanderramin/gardenhelper/internal/garden"
)

// button is a focusable action on a screen or modal.
type button struct {
	label  string
	intent garden.Intent
}

// buttonsFor returns the actions available in the current state, in focus
// order. An open modal replaces the screen's buttons.
func buttonsFor(s garden.State) []button {
	switch s.Modal {
	case garden.ModalHelp:
		out := make([]button, 0, len(domain.HelpOptions))
		for _, o := range domain.HelpOptions {
			out = append(out, button{o.Label(), garden.ChooseHelpOption{Option: o}})
		}
		return out
	case garden.ModalVoice:
		return []button{{"Close", garden.CloseModal{}}}
	}

	switch s.Screen {
	case domain.ScreenWelcome:
		out := make([]button, 0, len(domain.Roles))
		for _, r := range domain.Roles {
			out = append(out, button{r.Label(), garden.SelectRole{Role: r}})
		}
		return out
	case domain.ScreenDashboard:
		return []button{
			{"🔬 Test My Soil", garden.RunQuickAction{Action: domain.QuickTest}},
			{"📚 Learn", garden.RunQuickAction{Action: domain.QuickLearn}},
			{"👥 Community", garden.RunQuickAction{Action: domain.QuickCommunity}},
			{"📈 My Progress", garden.RunQuickAction{Action: domain.QuickProgress}},
			{"🌦 Weather", garden.RunQuickAction{Action: "weather"}},
		}
	case domain.ScreenTesting:
		return testingButtons(s)
	case domain.ScreenProgress:
		return []button{
			{"🔬 Test Again", garden.GoToScreen{Screen: domain.ScreenTesting}},
			{"🏠 Dashboard", garden.GoToScreen{Screen: domain.ScreenDashboard}},
		}
	case domain.ScreenLearning:
		out := []button{{"▶ Start Lesson", garden.StartLesson{}}}
		for _, c := range learningCategories {
			out = append(out, button{c, garden.OpenCategory{Name: c}})
		}
		for _, t := range domain.Tools {
			out = append(out, button{t.Label(), garden.OpenTool{Tool: t}})
		}
		return out
	case domain.ScreenCommunity:
		var out []button
		for _, p := range s.Posts {
			out = append(out,
				button{"❤️ Like " + p.Author, garden.ReactToPost{PostID: p.ID, Action: domain.PostLike}},
				button{"💬 Reply", garden.ReactToPost{PostID: p.ID, Action: domain.PostReply}},
				button{"🔄 Share", garden.ReactToPost{PostID: p.ID, Action: domain.PostShare}},
			)
		}
		for _, h := range domain.CommunityHelps {
			out = append(out, button{h.Label(), garden.AskCommunity{Help: h}})
		}
		return out
	}
	return nil
}

func testingButtons(s garden.State) []button {
	switch s.Step {
	case domain.StepPrepare:
		return []button{{"I'm Ready!", garden.GoToStep{Step: domain.StepMoisture}}}
	case domain.StepMoisture:
		return []button{testButton(s, domain.TestMoisture, "💧 Test Moisture")}
	case domain.StepPH:
		return []button{testButton(s, domain.TestPH, "⚖️ Test pH")}
	case domain.StepResults:
		return []button{
			{"💾 Save Results", garden.SaveResults{}},
			{"📤 Share Results", garden.ShareResults{}},
			{"🔁 Start Over", garden.GoToStep{Step: domain.StepPrepare}},
		}
	}
	return nil
}

// testButton shows the run state of a soil test on its button.
func testButton(s garden.State, kind domain.TestKind, label string) button {
	if s.Test.Kind == kind {
		switch {
		case s.Test.Running:
			return button{"🔄 Testing...", nil}
		case s.Test.Done:
			return button{"✅ Test Complete!", garden.RunTest{Kind: kind}}
		}
	}
	return button{label, garden.RunTest{Kind: kind}}
}

var learningCategories = []string{"🌱 Soil Basics", "🪱 Soil Life", "🍂 Composting", "💧 Watering"}
