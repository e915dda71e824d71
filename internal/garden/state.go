package garden

import (
	"maps"
	"slices"
	"time"

	"github.com/alexanderramin/gardenhelper/internal/domain"
)

type Modal string

const (
	ModalNone  Modal = ""
	ModalHelp  Modal = "help"
	ModalVoice Modal = "voice"
)

// Toast is the single visible notification. Seq increases with every toast
// so a stale dismiss timer can be told apart from the current one.
type Toast struct {
	Seq     uint64
	Message string
}

// TestRun is the soil test animation shown on the testing screen.
type TestRun struct {
	Kind    domain.TestKind
	Run     uint64
	Value   float64
	Target  float64
	Running bool
	Done    bool
}

// Display renders the current reading the way the gauge shows it.
func (t TestRun) Display() string {
	if !t.Running && !t.Done {
		return "--"
	}
	return domain.FormatReading(t.Kind, t.Value)
}

// Fraction is the completed share of the run in [0,1].
func (t TestRun) Fraction() float64 {
	if t.Target <= 0 {
		if t.Done {
			return 1
		}
		return 0
	}
	return min(t.Value/t.Target, 1)
}

// Flags are presentation-wide switches derived from preferences.
type Flags struct {
	LargeText    bool
	HighContrast bool
}

type Post struct {
	ID     string
	Author string
	Body   string
	Likes  int
}

// State is a snapshot of everything the presentation needs to render.
type State struct {
	Screen domain.Screen
	Step   domain.Step

	Profile domain.UserProfile
	Flags   Flags

	Soil     domain.SoilReading
	Test     TestRun
	Readings map[domain.TestKind]float64 // completed test values

	Toast       Toast
	Modal       Modal
	VoiceStatus string

	Posts       []Post
	LastSavedID string
	LastChecked time.Time
}

// NewState returns the startup state: welcome screen, first step, empty profile.
func NewState(now time.Time) State {
	return State{
		Screen:      domain.ScreenWelcome,
		Step:        domain.FirstStep,
		Profile:     domain.NewUserProfile(),
		Soil:        domain.DefaultSoilReading(),
		Readings:    make(map[domain.TestKind]float64),
		Posts:       seedPosts(),
		LastChecked: now,
	}
}

// IsActive reports whether screen is the visible one.
func (s State) IsActive(screen domain.Screen) bool {
	return s.Screen == screen
}

// IsStepActive reports whether step is the active testing step.
func (s State) IsStepActive(step domain.Step) bool {
	return s.Step == step
}

func (s State) HasToast() bool {
	return s.Toast.Message != ""
}

// Reading returns the completed value for a test, falling back to the live
// sensor value when the test has not been run.
func (s State) Reading(kind domain.TestKind) float64 {
	if v, ok := s.Readings[kind]; ok {
		return v
	}
	return s.Soil.Value(kind)
}

// clone copies the reference-typed fields so snapshots handed to the
// presentation never alias controller state.
func (s State) clone() State {
	s.Readings = maps.Clone(s.Readings)
	s.Posts = slices.Clone(s.Posts)
	if s.Profile.LastCheckedAt != nil {
		t := *s.Profile.LastCheckedAt
		s.Profile.LastCheckedAt = &t
	}
	return s
}

func seedPosts() []Post {
	return []Post{
		{
			ID:     "rosa-tomatoes",
			Author: "Rosa · New Gardener",
			Body:   "My tomatoes finally love their soil! pH went from 5.8 to 6.5 with a little garden lime.",
			Likes:  12,
		},
		{
			ID:     "mary-compost",
			Author: "Master Gardener Mary",
			Body:   "A handful of compost each month keeps the soil creatures happy and busy.",
			Likes:  27,
		},
	}
}
