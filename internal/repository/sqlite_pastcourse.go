package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/scotty/internal/db"
	"github.com/alexanderramin/scotty/internal/domain"
)

// SQLitePastCourseRepo implements PastCourseRepo.
type SQLitePastCourseRepo struct {
	db db.DBTX
}

// NewSQLitePastCourseRepo creates a new SQLitePastCourseRepo.
func NewSQLitePastCourseRepo(conn db.DBTX) *SQLitePastCourseRepo {
	return &SQLitePastCourseRepo{db: conn}
}

// List returns the catalog ordered by label.
func (r *SQLitePastCourseRepo) List(ctx context.Context) ([]domain.PastCourse, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT label, created_at FROM past_courses ORDER BY label`)
	if err != nil {
		return nil, fmt.Errorf("listing past courses: %w", err)
	}
	defer rows.Close()

	var out []domain.PastCourse
	for rows.Next() {
		var pc domain.PastCourse
		var createdAt string
		if err := rows.Scan(&pc.Label, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning past course: %w", err)
		}
		if t, err := parseTimestamp(createdAt); err == nil {
			pc.CreatedAt = t
		}
		out = append(out, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating past courses: %w", err)
	}
	return out, nil
}

// Add inserts label. Adding an existing label is a no-op.
func (r *SQLitePastCourseRepo) Add(ctx context.Context, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("past course label is empty")
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO past_courses (label, created_at) VALUES (?, ?)`,
		label, nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting past course: %w", err)
	}
	return nil
}

func (r *SQLitePastCourseRepo) Remove(ctx context.Context, label string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM past_courses WHERE label = ?`, label)
	if err != nil {
		return fmt.Errorf("deleting past course: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("past course %q: %w", label, ErrNotFound)
	}
	return nil
}
