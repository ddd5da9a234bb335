package statestore

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Run is one recorded materialization: where it ran, what layout it used,
// and what it created.
type Run struct {
	ID           int64
	RootPath     string
	Source       string
	DirsCreated  int
	FilesCreated int
	CreatedAt    time.Time
}

func RecordRun(ctx context.Context, db *sql.DB, run Run) error {
	if run.RootPath == "" {
		return fmt.Errorf("run root path is required")
	}
	if run.Source == "" {
		return fmt.Errorf("run source is required")
	}
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := db.ExecContext(ctx, `
INSERT INTO runs (root_path, source, dirs_created, files_created, created_at)
VALUES (?, ?, ?, ?, ?)`,
		run.RootPath, run.Source, run.DirsCreated, run.FilesCreated, createdAt.Unix())
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

func ListRuns(ctx context.Context, db *sql.DB, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.QueryContext(ctx, `
SELECT id, root_path, source, dirs_created, files_created, created_at
FROM runs
ORDER BY created_at DESC, id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		var r Run
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.RootPath, &r.Source, &r.DirsCreated, &r.FilesCreated, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}
