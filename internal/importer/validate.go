package importer

import (
	"fmt"
	"time"
)

var (
	validRoles     = map[string]bool{"": true, "beginner": true, "expert": true, "educator": true}
	validNutrients = map[string]bool{"": true, "low": true, "moderate": true, "high": true}
)

// ValidateJournal checks the journal for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateJournal(j *JournalFile) []error {
	var errs []error

	if j.Version != 0 && j.Version != JournalVersion {
		errs = append(errs, fmt.Errorf("version: unsupported value %d (want %d)", j.Version, JournalVersion))
	}
	errs = append(errs, validateProfile(&j.Profile)...)
	errs = append(errs, validateResults(j.Results)...)

	return errs
}

func validateProfile(p *ProfileImport) []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("profile.name is required"))
	}
	if p.Location == "" {
		errs = append(errs, fmt.Errorf("profile.location is required"))
	}
	if !validRoles[p.Role] {
		errs = append(errs, fmt.Errorf("profile.role: invalid value %q", p.Role))
	}
	if p.LastCheckedAt != nil {
		if _, err := time.Parse(time.RFC3339, *p.LastCheckedAt); err != nil {
			errs = append(errs, fmt.Errorf("profile.last_checked_at: invalid timestamp %q (expected RFC 3339)", *p.LastCheckedAt))
		}
	}

	return errs
}

func validateResults(results []ResultImport) []error {
	var errs []error
	ids := make(map[string]bool)

	for i, r := range results {
		prefix := fmt.Sprintf("results[%d]", i)

		if r.ID != "" {
			if ids[r.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate %q", prefix, r.ID))
			}
			ids[r.ID] = true
		}
		if r.RecordedAt == "" {
			errs = append(errs, fmt.Errorf("%s.recorded_at is required", prefix))
		} else if _, err := time.Parse(time.RFC3339, r.RecordedAt); err != nil {
			errs = append(errs, fmt.Errorf("%s.recorded_at: invalid timestamp %q (expected RFC 3339)", prefix, r.RecordedAt))
		}
		if r.Moisture < 0 || r.Moisture > 100 {
			errs = append(errs, fmt.Errorf("%s.moisture: %v outside 0-100", prefix, r.Moisture))
		}
		if r.PH < 0 || r.PH > 14 {
			errs = append(errs, fmt.Errorf("%s.ph: %v outside 0-14", prefix, r.PH))
		}
		if !validNutrients[r.Nutrients] {
			errs = append(errs, fmt.Errorf("%s.nutrients: invalid value %q", prefix, r.Nutrients))
		}
	}

	return errs
}
