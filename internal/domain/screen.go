package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Screen string

const (
	ScreenWelcome   Screen = "welcome"
	ScreenSetup     Screen = "setup"
	ScreenDashboard Screen = "dashboard"
	ScreenTesting   Screen = "testing"
	ScreenProgress  Screen = "progress"
	ScreenLearning  Screen = "learning"
	ScreenCommunity Screen = "community"
)

// Screens is the full set of known screens in display order.
var Screens = []Screen{
	ScreenWelcome,
	ScreenSetup,
	ScreenDashboard,
	ScreenTesting,
	ScreenProgress,
	ScreenLearning,
	ScreenCommunity,
}

// NavScreens are the screens reachable from the bottom navigation bar.
var NavScreens = []Screen{
	ScreenDashboard,
	ScreenTesting,
	ScreenProgress,
	ScreenLearning,
	ScreenCommunity,
}

func (s Screen) Valid() bool {
	for _, known := range Screens {
		if s == known {
			return true
		}
	}
	return false
}

// InNav reports whether the screen has a navigation bar entry.
func (s Screen) InNav() bool {
	for _, n := range NavScreens {
		if s == n {
			return true
		}
	}
	return false
}

func (s Screen) Title() string {
	switch s {
	case ScreenWelcome:
		return "Welcome"
	case ScreenSetup:
		return "Setup"
	case ScreenDashboard:
		return "My Garden"
	case ScreenTesting:
		return "Test Soil"
	case ScreenProgress:
		return "Progress"
	case ScreenLearning:
		return "Learn"
	case ScreenCommunity:
		return "Community"
	default:
		return string(s)
	}
}

// ParseScreen normalizes a screen name. Both the short form ("testing") and the
// element-id form ("testingScreen") are accepted, case-insensitively.
func ParseScreen(name string) (Screen, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(n, "screen")
	s := Screen(n)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownScreen, name)
	}
	return s, nil
}

// SuggestScreen returns up to limit known screens closest to name by edit
// distance, skipping anything more than half the input length away.
func SuggestScreen(name string, limit int) []Screen {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || limit <= 0 {
		return nil
	}
	maxDist := max(len(n)/2, 2)

	type scored struct {
		screen Screen
		dist   int
	}
	var candidates []scored
	for _, s := range Screens {
		d := levenshtein.ComputeDistance(n, string(s))
		if d <= maxDist {
			candidates = append(candidates, scored{screen: s, dist: d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	out := make([]Screen, 0, limit)
	for _, c := range candidates {
		if len(out) == limit {
			break
		}
		out = append(out, c.screen)
	}
	return out
}

// Step is a stage of the soil-test wizard on the testing screen.
type Step int

const (
	FirstStep Step = 1
	LastStep  Step = 4
)

const (
	StepPrepare  Step = 1
	StepMoisture Step = 2
	StepPH       Step = 3
	StepResults  Step = 4
)

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s Step) Title() string {
	switch s {
	case StepPrepare:
		return "Get Ready"
	case StepMoisture:
		return "Moisture Test"
	case StepPH:
		return "pH Test"
	case StepResults:
		return "Your Results"
	default:
		return fmt.Sprintf("Step %d", int(s))
	}
}
