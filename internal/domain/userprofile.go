package domain

import (
	"strings"
	"time"
)

// DefaultProfileID is the key of the single local profile.
const DefaultProfileID = "default"

type Preferences struct {
	LargeText     bool `yaml:"large_text"`
	HighContrast  bool `yaml:"high_contrast"`
	VoiceGuidance bool `yaml:"voice_guidance"`
}

// Get returns the value of a single preference flag.
func (p Preferences) Get(pref Preference) bool {
	switch pref {
	case PrefLargeText:
		return p.LargeText
	case PrefHighContrast:
		return p.HighContrast
	case PrefVoiceGuidance:
		return p.VoiceGuidance
	}
	return false
}

// With returns a copy of p with one flag changed.
func (p Preferences) With(pref Preference, on bool) Preferences {
	switch pref {
	case PrefLargeText:
		p.LargeText = on
	case PrefHighContrast:
		p.HighContrast = on
	case PrefVoiceGuidance:
		p.VoiceGuidance = on
	}
	return p
}

type UserProfile struct {
	ID            string      `yaml:"-"`
	Name          string      `yaml:"name"`
	Role          Role        `yaml:"role"`
	Location      string      `yaml:"location"`
	Preferences   Preferences `yaml:"preferences"`
	LastCheckedAt *time.Time  `yaml:"last_checked_at,omitempty"`
	UpdatedAt     time.Time   `yaml:"updated_at"`
}

// NewUserProfile returns the empty profile that exists before setup.
func NewUserProfile() UserProfile {
	return UserProfile{ID: DefaultProfileID}
}

// IsSetUp reports whether setup has committed a name and location.
func (p *UserProfile) IsSetUp() bool {
	return p.Name != "" && p.Location != ""
}

// ValidateSetup checks the fields the setup form requires. The name is
// compared after trimming surrounding whitespace.
func ValidateSetup(name, location string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "Please enter your name to continue! 😊"}
	}
	if location == "" {
		return &ValidationError{Field: "location", Message: "Please select your gardening location! 🌍"}
	}
	return nil
}

// DisplayName returns the name used in greetings.
func (p *UserProfile) DisplayName() string {
	if p.Name == "" {
		return "Gardener"
	}
	return p.Name
}
