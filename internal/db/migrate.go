package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_profile (
		id             TEXT PRIMARY KEY DEFAULT 'default',
		name           TEXT NOT NULL DEFAULT '',
		role           TEXT NOT NULL DEFAULT ''
		               CHECK(role IN ('','beginner','expert','educator')),
		location       TEXT NOT NULL DEFAULT '',
		large_text     INTEGER NOT NULL DEFAULT 0,
		high_contrast  INTEGER NOT NULL DEFAULT 0,
		voice_guidance INTEGER NOT NULL DEFAULT 0,
		updated_at     TEXT NOT NULL DEFAULT ''
	)`,

	// Seed the single local profile so Get never has to special-case first run.
	`INSERT OR IGNORE INTO user_profile (id) VALUES ('default')`,

	`ALTER TABLE user_profile ADD COLUMN last_checked_at TEXT`,

	`CREATE TABLE IF NOT EXISTS soil_test_results (
		id          TEXT PRIMARY KEY,
		profile_id  TEXT NOT NULL DEFAULT 'default'
		            REFERENCES user_profile(id) ON DELETE CASCADE,
		moisture    REAL NOT NULL,
		ph          REAL NOT NULL,
		temperature REAL NOT NULL,
		nutrients   TEXT NOT NULL CHECK(nutrients IN ('low','moderate','high')),
		shared      INTEGER NOT NULL DEFAULT 0,
		recorded_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_results_recorded ON soil_test_results(recorded_at)`,
}
