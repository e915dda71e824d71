package importer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/gardenhelper/internal/domain"
)

// Journal is a converted journal ready for persistence.
type Journal struct {
	Profile *domain.UserProfile
	Results []*domain.SoilTestResult
}

// Convert transforms a validated JournalFile into domain objects.
// Call ValidateJournal first; Convert assumes the file is valid.
func Convert(j *JournalFile) (*Journal, error) {
	now := time.Now().UTC()

	role := domain.Role(j.Profile.Role)
	if role == domain.RoleUnset {
		role = domain.RoleBeginner
	}
	profile := &domain.UserProfile{
		ID:       domain.DefaultProfileID,
		Name:     strings.TrimSpace(j.Profile.Name),
		Role:     role,
		Location: j.Profile.Location,
		Preferences: domain.Preferences{
			LargeText:     j.Profile.Preferences.LargeText,
			HighContrast:  j.Profile.Preferences.HighContrast,
			VoiceGuidance: j.Profile.Preferences.VoiceGuidance,
		},
		UpdatedAt: now,
	}
	if j.Profile.LastCheckedAt != nil {
		t, err := time.Parse(time.RFC3339, *j.Profile.LastCheckedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing last_checked_at: %w", err)
		}
		t = t.UTC()
		profile.LastCheckedAt = &t
	}

	results := make([]*domain.SoilTestResult, 0, len(j.Results))
	for i, r := range j.Results {
		at, err := time.Parse(time.RFC3339, r.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing results[%d].recorded_at: %w", i, err)
		}
		id := r.ID
		if id == "" {
			id = uuid.New().String()
		}
		nutrients := domain.NutrientLevel(r.Nutrients)
		if nutrients == "" {
			nutrients = domain.NutrientsModerate
		}
		results = append(results, &domain.SoilTestResult{
			ID:          id,
			Moisture:    r.Moisture,
			PH:          r.PH,
			Temperature: r.Temperature,
			Nutrients:   nutrients,
			Shared:      r.Shared,
			RecordedAt:  at.UTC(),
		})

		// The newest result wins over a stale last_checked_at.
		if profile.LastCheckedAt == nil || at.After(*profile.LastCheckedAt) {
			latest := at.UTC()
			profile.LastCheckedAt = &latest
		}
	}

	return &Journal{Profile: profile, Results: results}, nil
}

// Export builds a journal file from stored data. Results are written oldest
// first so the file reads as a diary.
func Export(p *domain.UserProfile, results []*domain.SoilTestResult) *JournalFile {
	j := &JournalFile{
		Version: JournalVersion,
		Profile: ProfileImport{
			Name:     p.Name,
			Role:     string(p.Role),
			Location: p.Location,
			Preferences: PreferencesImport{
				LargeText:     p.Preferences.LargeText,
				HighContrast:  p.Preferences.HighContrast,
				VoiceGuidance: p.Preferences.VoiceGuidance,
			},
		},
	}
	if p.LastCheckedAt != nil {
		s := p.LastCheckedAt.UTC().Format(time.RFC3339)
		j.Profile.LastCheckedAt = &s
	}

	sorted := make([]*domain.SoilTestResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].RecordedAt.Before(sorted[b].RecordedAt)
	})
	for _, r := range sorted {
		j.Results = append(j.Results, ResultImport{
			ID:          r.ID,
			RecordedAt:  r.RecordedAt.UTC().Format(time.RFC3339),
			Moisture:    r.Moisture,
			PH:          r.PH,
			Temperature: r.Temperature,
			Nutrients:   string(r.Nutrients),
			Shared:      r.Shared,
		})
	}
	return j
}
