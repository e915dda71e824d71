package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/gardenhelper/internal/db"
)

// FailingTableUoW runs transactions that fail a write to Table, so tests can
// check that a multi-write use case rolls back. Hit picks which write to that
// table fails, counting from 1; zero means the first. Reads are untouched.
type FailingTableUoW struct {
	DB    *sql.DB
	Table string
	Hit   int
	Err   error

	// Writes lists the table of every write attempted, in order.
	Writes []string
}

func (u *FailingTableUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &tableFailer{DBTX: tx, uow: u}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type tableFailer struct {
	db.DBTX
	uow  *FailingTableUoW
	hits int
}

func (f *tableFailer) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	table := writeTarget(query)
	f.uow.Writes = append(f.uow.Writes, table)
	if table == f.uow.Table {
		f.hits++
		if f.hits == max(f.uow.Hit, 1) {
			return nil, f.uow.Err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// writeTarget returns the table named after INTO, UPDATE or FROM.
func writeTarget(query string) string {
	words := strings.Fields(query)
	for i := 0; i+1 < len(words); i++ {
		switch strings.ToUpper(words[i]) {
		case "INTO", "UPDATE", "FROM":
			table, _, _ := strings.Cut(words[i+1], "(")
			return strings.Trim(table, "`\"")
		}
	}
	return ""
}
