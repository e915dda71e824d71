package domain

import "fmt"

type Role string

const (
	RoleUnset    Role = ""
	RoleBeginner Role = "beginner"
	RoleExpert   Role = "expert"
	RoleEducator Role = "educator"
)

// Roles lists the selectable roles in the order they are offered on the welcome screen.
var Roles = []Role{RoleBeginner, RoleExpert, RoleEducator}

// ParseRole accepts a role name, or the empty string for an unset role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUnset, RoleBeginner, RoleExpert, RoleEducator:
		return r, nil
	}
	return RoleUnset, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

func (r Role) Label() string {
	switch r {
	case RoleBeginner:
		return "New Gardener"
	case RoleExpert:
		return "Experienced Gardener"
	case RoleEducator:
		return "Garden Educator"
	default:
		return "Not chosen"
	}
}

type NutrientLevel string

const (
	NutrientsLow      NutrientLevel = "low"
	NutrientsModerate NutrientLevel = "moderate"
	NutrientsHigh     NutrientLevel = "high"
)

type TestKind string

const (
	TestMoisture TestKind = "moisture"
	TestPH       TestKind = "ph"
)

// ParseTestKind accepts "moisture" or "ph" (case-sensitive, as stored).
func ParseTestKind(s string) (TestKind, error) {
	switch k := TestKind(s); k {
	case TestMoisture, TestPH:
		return k, nil
	}
	return "", fmt.Errorf("unknown soil test %q", s)
}

type Preference string

const (
	PrefLargeText     Preference = "large_text"
	PrefHighContrast  Preference = "high_contrast"
	PrefVoiceGuidance Preference = "voice_guidance"
)

// Locations are the gardening climates offered by the setup form.
var Locations = []string{"temperate", "tropical", "arid", "continental", "coastal"}
