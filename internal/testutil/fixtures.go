package testutil

import (
	"time"

	"github.com/alexanderramin/gardenhelper/internal/domain"
	"github.com/google/uuid"
)

// Profile options
type ProfileOption func(*domain.UserProfile)

func WithRole(r domain.Role) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Role = r
	}
}

func WithPreferences(prefs domain.Preferences) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Preferences = prefs
	}
}

func WithLastChecked(t time.Time) ProfileOption {
	return func(p *domain.UserProfile) {
		p.LastCheckedAt = &t
	}
}

// NewTestProfile returns a completed-setup profile for the default slot.
func NewTestProfile(name, location string, opts ...ProfileOption) *domain.UserProfile {
	p := &domain.UserProfile{
		ID:        domain.DefaultProfileID,
		Name:      name,
		Role:      domain.RoleBeginner,
		Location:  location,
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result options
type ResultOption func(*domain.SoilTestResult)

func WithRecordedAt(t time.Time) ResultOption {
	return func(r *domain.SoilTestResult) {
		r.RecordedAt = t
	}
}

func WithReading(reading domain.SoilReading) ResultOption {
	return func(r *domain.SoilTestResult) {
		r.Moisture = reading.Moisture
		r.PH = reading.PH
		r.Temperature = reading.Temperature
		r.Nutrients = reading.Nutrients
	}
}

func WithShared() ResultOption {
	return func(r *domain.SoilTestResult) {
		r.Shared = true
	}
}

// NewTestResult returns a saved result with default readings and a fresh ID.
func NewTestResult(opts ...ResultOption) *domain.SoilTestResult {
	d := domain.DefaultSoilReading()
	r := &domain.SoilTestResult{
		ID:          uuid.New().String(),
		Moisture:    d.Moisture,
		PH:          d.PH,
		Temperature: d.Temperature,
		Nutrients:   d.Nutrients,
		RecordedAt:  time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
