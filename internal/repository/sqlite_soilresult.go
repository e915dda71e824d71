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

const soilResultColumns = `id, moisture, ph, temperature, nutrients, shared, recorded_at`

// SQLiteSoilResultRepo implements SoilResultRepo using a SQLite database.
type SQLiteSoilResultRepo struct {
	db db.DBTX
}

func NewSQLiteSoilResultRepo(conn db.DBTX) *SQLiteSoilResultRepo {
	return &SQLiteSoilResultRepo{db: conn}
}

func (r *SQLiteSoilResultRepo) Create(ctx context.Context, res *domain.SoilTestResult) error {
	query := `INSERT INTO soil_test_results (` + soilResultColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		res.ID,
		res.Moisture,
		res.PH,
		res.Temperature,
		string(res.Nutrients),
		boolToInt(res.Shared),
		formatTime(res.RecordedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting soil test result: %w", err)
	}
	return nil
}

func (r *SQLiteSoilResultRepo) GetByID(ctx context.Context, id string) (*domain.SoilTestResult, error) {
	query := `SELECT ` + soilResultColumns + ` FROM soil_test_results WHERE id = ?`
	res, err := scanSoilResult(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("soil test result %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning soil test result: %w", err)
	}
	return res, nil
}

// ListRecent returns up to limit results, newest first.
func (r *SQLiteSoilResultRepo) ListRecent(ctx context.Context, limit int) ([]*domain.SoilTestResult, error) {
	if limit <= 0 {
		limit = 10
	}
	return r.list(ctx, `SELECT `+soilResultColumns+` FROM soil_test_results
		ORDER BY recorded_at DESC, id LIMIT ?`, limit)
}

// ListAll returns every result, oldest first.
func (r *SQLiteSoilResultRepo) ListAll(ctx context.Context) ([]*domain.SoilTestResult, error) {
	return r.list(ctx, `SELECT `+soilResultColumns+` FROM soil_test_results
		ORDER BY recorded_at, id`)
}

func (r *SQLiteSoilResultRepo) list(ctx context.Context, query string, args ...any) ([]*domain.SoilTestResult, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing soil test results: %w", err)
	}
	defer rows.Close()

	var out []*domain.SoilTestResult
	for rows.Next() {
		res, err := scanSoilResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning soil test result row: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating soil test results: %w", err)
	}
	return out, nil
}

func (r *SQLiteSoilResultRepo) MarkShared(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE soil_test_results SET shared = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking result shared: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("marking result shared: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("soil test result %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSoilResultRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM soil_test_results`); err != nil {
		return fmt.Errorf("deleting soil test results: %w", err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSoilResult(row rowScanner) (*domain.SoilTestResult, error) {
	var (
		res        domain.SoilTestResult
		nutrients  string
		shared     int
		recordedAt string
	)
	if err := row.Scan(&res.ID, &res.Moisture, &res.PH, &res.Temperature, &nutrients, &shared, &recordedAt); err != nil {
		return nil, err
	}
	res.Nutrients = domain.NutrientLevel(nutrients)
	res.Shared = intToBool(shared)

	t, err := time.Parse(timeLayout, recordedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing recorded_at %q: %w", recordedAt, err)
	}
	res.RecordedAt = t
	return &res, nil
}
