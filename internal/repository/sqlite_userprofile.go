package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gardenhelper/internal/db"
	"github.com/alexanderramin/gardenhelper/internal/domain"
)

// SQLiteUserProfileRepo implements UserProfileRepo using a SQLite database.
type SQLiteUserProfileRepo struct {
	db db.DBTX
}

func NewSQLiteUserProfileRepo(conn db.DBTX) *SQLiteUserProfileRepo {
	return &SQLiteUserProfileRepo{db: conn}
}

func (r *SQLiteUserProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT id, name, role, location, large_text, high_contrast, voice_guidance,
		last_checked_at, updated_at
		FROM user_profile WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, domain.DefaultProfileID)

	var (
		p                                    domain.UserProfile
		role                                 string
		largeText, highContrast, voiceGuided int
		lastChecked                          sql.NullString
		updatedAt                            string
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&role,
		&p.Location,
		&largeText,
		&highContrast,
		&voiceGuided,
		&lastChecked,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}

	p.Role = domain.Role(role)
	p.Preferences = domain.Preferences{
		LargeText:     intToBool(largeText),
		HighContrast:  intToBool(highContrast),
		VoiceGuidance: intToBool(voiceGuided),
	}
	p.LastCheckedAt = parseNullableTime(lastChecked)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

// Upsert writes the profile in place. It deliberately avoids INSERT OR REPLACE,
// which would delete the row and cascade to saved results.
func (r *SQLiteUserProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	if p.ID == "" {
		p.ID = domain.DefaultProfileID
	}
	query := `INSERT INTO user_profile (id, name, role, location, large_text, high_contrast,
		voice_guidance, last_checked_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			role = excluded.role,
			location = excluded.location,
			large_text = excluded.large_text,
			high_contrast = excluded.high_contrast,
			voice_guidance = excluded.voice_guidance,
			last_checked_at = excluded.last_checked_at,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		string(p.Role),
		p.Location,
		boolToInt(p.Preferences.LargeText),
		boolToInt(p.Preferences.HighContrast),
		boolToInt(p.Preferences.VoiceGuidance),
		nullableTimeToString(p.LastCheckedAt),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}

// TouchLastChecked records when the soil was last tested without rewriting
// the rest of the profile.
func (r *SQLiteUserProfileRepo) TouchLastChecked(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE user_profile SET last_checked_at = ? WHERE id = ?`, formatTime(at), id)
	if err != nil {
		return fmt.Errorf("touching last checked: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("touching last checked: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user profile %s: %w", id, ErrNotFound)
	}
	return nil
}
