package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScreen_AcceptsShortAndElementForms(t *testing.T) {
	cases := map[string]Screen{
		"dashboard":       ScreenDashboard,
		"dashboardScreen": ScreenDashboard,
		"  Testing ":      ScreenTesting,
		"communityScreen": ScreenCommunity,
		"welcome":         ScreenWelcome,
	}
	for in, want := range cases {
		got, err := ParseScreen(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseScreen_Unknown(t *testing.T) {
	_, err := ParseScreen("garage")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownScreen)
}

func TestScreens_AllValidAndTitled(t *testing.T) {
	for _, s := range Screens {
		assert.True(t, s.Valid(), s)
		assert.NotEqual(t, string(s), s.Title(), "screen %q has no title", s)
	}
	assert.False(t, Screen("").Valid())
}

func TestNavScreens_ExcludeOnboarding(t *testing.T) {
	assert.False(t, ScreenWelcome.InNav())
	assert.False(t, ScreenSetup.InNav())
	for _, s := range NavScreens {
		assert.True(t, s.InNav())
	}
}

func TestSuggestScreen_Typos(t *testing.T) {
	assert.Equal(t, []Screen{ScreenDashboard}, SuggestScreen("dashbord", 3))
	assert.Equal(t, ScreenProgress, SuggestScreen("progres", 1)[0])
	assert.Empty(t, SuggestScreen("xylophone", 3))
	assert.Empty(t, SuggestScreen("", 3))
}

func TestStep_Bounds(t *testing.T) {
	assert.False(t, Step(0).Valid())
	assert.False(t, Step(5).Valid())
	for s := FirstStep; s <= LastStep; s++ {
		assert.True(t, s.Valid())
		assert.NotContains(t, s.Title(), "Step ")
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("expert")
	require.NoError(t, err)
	assert.Equal(t, RoleExpert, r)

	r, err = ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleUnset, r)

	_, err = ParseRole("wizard")
	assert.ErrorIs(t, err, ErrUnknownRole)
}
