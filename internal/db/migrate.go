package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/scotty/internal/domain"
)

// Migrate runs all schema migrations and seeds the past-course catalog.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := seedPastCourses(db); err != nil {
		return fmt.Errorf("seeding past courses: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS recommendation_runs (
		id           TEXT PRIMARY KEY,
		query        TEXT NOT NULL,
		interests    TEXT NOT NULL DEFAULT '',
		raw_response TEXT NOT NULL DEFAULT '',
		parse_path   TEXT NOT NULL DEFAULT 'none'
		             CHECK(parse_path IN ('structured','fallback','none')),
		notice       TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_created ON recommendation_runs(created_at)`,

	`CREATE TABLE IF NOT EXISTS recommended_courses (
		id          TEXT PRIMARY KEY,
		run_id      TEXT NOT NULL REFERENCES recommendation_runs(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		course_id   TEXT NOT NULL DEFAULT '',
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		day         TEXT NOT NULL DEFAULT '',
		start_time  TEXT NOT NULL DEFAULT '',
		end_time    TEXT NOT NULL DEFAULT '',
		location    TEXT NOT NULL DEFAULT '',
		UNIQUE(run_id, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_courses_run ON recommended_courses(run_id)`,

	`CREATE TABLE IF NOT EXISTS past_courses (
		label      TEXT PRIMARY KEY,
		created_at TEXT NOT NULL
	)`,

	// Where the run was requested from: the CLI or the HTTP API.
	`ALTER TABLE recommendation_runs ADD COLUMN source TEXT NOT NULL DEFAULT 'cli'`,
}

// seedPastCourses inserts the default catalog entries. Existing rows,
// including ones a user added, are left untouched.
func seedPastCourses(db *sql.DB) error {
	for _, label := range domain.DefaultPastCourses {
		if _, err := db.Exec(
			`INSERT OR IGNORE INTO past_courses (label, created_at) VALUES (?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))`,
			label,
		); err != nil {
			return fmt.Errorf("inserting %q: %w", label, err)
		}
	}
	return nil
}
