package domain

// Canned copy shown by the learning, community and help surfaces. Each table
// is a closed enum with a switch, so adding a value without a message is caught
// by the exhaustiveness tests.

type Tool string

const (
	ToolPHSimulator     Tool = "ph-simulator"
	ToolCreatureSpotter Tool = "creature-spotter"
	ToolCompostMixer    Tool = "compost-mixer"
)

var Tools = []Tool{ToolPHSimulator, ToolCreatureSpotter, ToolCompostMixer}

func (t Tool) Label() string {
	switch t {
	case ToolPHSimulator:
		return "pH Simulator"
	case ToolCreatureSpotter:
		return "Creature Spotter"
	case ToolCompostMixer:
		return "Compost Mixer"
	}
	return string(t)
}

func (t Tool) Message() string {
	switch t {
	case ToolPHSimulator:
		return "pH Simulator is starting up! 🧪 Learn how different materials affect soil acidity."
	case ToolCreatureSpotter:
		return "Creature Spotter is ready! 🔍 Let's find helpful soil creatures."
	case ToolCompostMixer:
		return "Compost Mixer is loading! 🍂 Discover the perfect compost recipe."
	}
	return "Tool is loading..."
}

type CommunityHelp string

const (
	HelpAskQuestion CommunityHelp = "question"
	HelpAskExpert   CommunityHelp = "expert"
	HelpSharePhoto  CommunityHelp = "photo"
)

var CommunityHelps = []CommunityHelp{HelpAskQuestion, HelpAskExpert, HelpSharePhoto}

func (h CommunityHelp) Label() string {
	switch h {
	case HelpAskQuestion:
		return "Ask a Question"
	case HelpAskExpert:
		return "Talk to an Expert"
	case HelpSharePhoto:
		return "Share a Photo"
	}
	return string(h)
}

func (h CommunityHelp) Message() string {
	switch h {
	case HelpAskQuestion:
		return "Question form is opening! ❓ What would you like to ask the community?"
	case HelpAskExpert:
		return "Connecting you with a master gardener! 👨‍🔬 They'll help you soon!"
	case HelpSharePhoto:
		return "Photo sharing is ready! 📸 Show off your garden progress!"
	}
	return "Feature is loading..."
}

// HelpOption is a choice in the emergency help modal.
type HelpOption string

const (
	HelpOptionVoice  HelpOption = "voice"
	HelpOptionText   HelpOption = "text"
	HelpOptionVideo  HelpOption = "video"
	HelpOptionExpert HelpOption = "expert"
)

var HelpOptions = []HelpOption{HelpOptionVoice, HelpOptionText, HelpOptionVideo, HelpOptionExpert}

func (o HelpOption) Label() string {
	switch o {
	case HelpOptionVoice:
		return "Voice Help"
	case HelpOptionText:
		return "Text Chat"
	case HelpOptionVideo:
		return "Video Guide"
	case HelpOptionExpert:
		return "Call an Expert"
	}
	return string(o)
}

func (o HelpOption) Message() string {
	switch o {
	case HelpOptionVoice:
		return `Voice help is starting! 🎤 Say "Help me test soil" or "Show my progress"`
	case HelpOptionText:
		return "Text help is available! 💬 Type your question in the chat box."
	case HelpOptionVideo:
		return "Video guide is loading! 📹 Watch step-by-step instructions."
	case HelpOptionExpert:
		return "Connecting to expert! 👨‍🏫 Master Gardener Mary will help you soon."
	}
	return "Help is on the way..."
}

type PostAction string

const (
	PostLike  PostAction = "like"
	PostReply PostAction = "reply"
	PostShare PostAction = "share"
)

func (a PostAction) Message() string {
	switch a {
	case PostLike:
		return "Thanks for showing love to the community! ❤️"
	case PostReply:
		return "Reply feature coming soon! 💬 Stay tuned!"
	case PostShare:
		return "Post shared successfully! 🔄 Spreading the knowledge!"
	}
	return ""
}

// QuickAction is a dashboard shortcut.
type QuickAction string

const (
	QuickTest      QuickAction = "test"
	QuickLearn     QuickAction = "learn"
	QuickCommunity QuickAction = "community"
	QuickProgress  QuickAction = "progress"
)

// Target returns the screen a quick action opens. ok is false for actions
// that have no screen yet.
func (a QuickAction) Target() (Screen, bool) {
	switch a {
	case QuickTest:
		return ScreenTesting, true
	case QuickLearn:
		return ScreenLearning, true
	case QuickCommunity:
		return ScreenCommunity, true
	case QuickProgress:
		return ScreenProgress, true
	}
	return "", false
}

// Fixed messages emitted by the controller.
const (
	MsgComingSoon       = "Feature coming soon! 🚀"
	MsgCategoryLocked   = "Coming soon! This lesson will be available shortly. 📚✨"
	MsgLessonStart      = `🌟 Starting "What Makes Soil Happy?" - Get ready to discover soil secrets! 🚀`
	MsgLessonFollowUp   = "Interactive lesson coming soon! For now, try our soil testing feature! 🔬"
	MsgResultsSaved     = "Your soil test results have been saved! 💾 Great work!"
	MsgResultsShared    = "Your results have been shared with the community! 📤 Others can learn from your success!"
	MsgResultsSaveError = "We couldn't save your results right now. They are still on screen. 🌱"
	MsgMoistureDone     = "Great job! Your soil moisture is perfect! 💧"
	MsgPHDone           = "Excellent! Your soil pH is just right! ⚖️"
	MsgVoiceHeard       = "I heard: 'Test my soil' - Opening soil testing! 🔬"
)

// VoicePhrases cycle in the voice modal while the helper is "listening".
var VoicePhrases = []string{
	"Listening for your command...",
	"Try saying: 'Test my soil'",
	"Or say: 'Show my progress'",
	"Voice helper is ready! 🎤",
}

// WelcomeMessage is the toast shown when setup completes.
func WelcomeMessage(name string) string {
	return "Welcome to Garden Helper, " + name + "! 🎉 Let's start growing together!"
}

// CompletionMessage is the toast shown when a soil test finishes.
func CompletionMessage(kind TestKind) string {
	if kind == TestPH {
		return MsgPHDone
	}
	return MsgMoistureDone
}

// FeaturedLesson is the markdown body of the learning screen's featured lesson.
const FeaturedLesson = `# What Makes Soil Happy?

Healthy soil is alive. It holds **water**, **air** and **food** for your plants.

## Three things to check

1. **Moisture** - damp like a wrung-out sponge, not soggy.
2. **pH** - most vegetables like 6.0 to 7.0.
3. **Nutrients** - compost feeds the tiny creatures that feed your plants.

> Tip: test your soil in the morning, before watering.
`
