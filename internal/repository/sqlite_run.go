package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/scotty/internal/db"
	"github.com/alexanderramin/scotty/internal/domain"
)

// SQLiteRunRepo implements RunRepo. Build it on a transaction from
// db.UnitOfWork so a run and its courses are written together.
type SQLiteRunRepo struct {
	db db.DBTX
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo.
func NewSQLiteRunRepo(conn db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: conn}
}

func (r *SQLiteRunRepo) Create(ctx context.Context, run *domain.RecommendationRun) error {
	source := run.Source
	if source == "" {
		source = domain.SourceCLI
	}
	query := `INSERT INTO recommendation_runs (id, query, interests, raw_response, parse_path, notice, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.Query,
		run.Interests,
		run.RawResponse,
		string(run.ParsePath),
		run.Notice,
		string(source),
		formatTimestamp(run.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting recommendation run: %w", err)
	}

	courseQuery := `INSERT INTO recommended_courses
		(id, run_id, position, course_id, title, description, day, start_time, end_time, location)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, c := range run.Courses {
		_, err := r.db.ExecContext(ctx, courseQuery,
			uuid.NewString(), run.ID, i,
			c.ID, c.Title, c.Description, c.Day, c.StartTime, c.EndTime, c.Location,
		)
		if err != nil {
			return fmt.Errorf("inserting recommended course %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*domain.RecommendationRun, error) {
	query := `SELECT id, query, interests, raw_response, parse_path, notice, source, created_at
		FROM recommendation_runs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	run, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("recommendation run: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning recommendation run: %w", err)
	}

	run.Courses, err = r.listCourses(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRecent returns up to limit runs, newest first, with their courses.
func (r *SQLiteRunRepo) ListRecent(ctx context.Context, limit int) ([]*domain.RecommendationRun, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, query, interests, raw_response, parse_path, notice, source, created_at
		FROM recommendation_runs ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recommendation runs: %w", err)
	}

	var runs []*domain.RecommendationRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning recommendation run row: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating recommendation runs: %w", err)
	}
	rows.Close()

	// Courses are loaded after the cursor is closed; in-memory databases
	// run on a single connection.
	for _, run := range runs {
		if run.Courses, err = r.listCourses(ctx, run.ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (r *SQLiteRunRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recommendation_runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting recommendation run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("recommendation run: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteRunRepo) listCourses(ctx context.Context, runID string) ([]domain.CourseRecord, error) {
	query := `SELECT course_id, title, description, day, start_time, end_time, location
		FROM recommended_courses WHERE run_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("listing recommended courses: %w", err)
	}
	defer rows.Close()

	var courses []domain.CourseRecord
	for rows.Next() {
		var c domain.CourseRecord
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Day, &c.StartTime, &c.EndTime, &c.Location); err != nil {
			return nil, fmt.Errorf("scanning recommended course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recommended courses: %w", err)
	}
	return courses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.RecommendationRun, error) {
	var run domain.RecommendationRun
	var parsePath, source, createdAt string
	if err := row.Scan(
		&run.ID, &run.Query, &run.Interests, &run.RawResponse, &parsePath, &run.Notice, &source, &createdAt,
	); err != nil {
		return nil, err
	}
	run.ParsePath = domain.ParsePath(parsePath)
	run.Source = domain.RunSource(source)

	t, err := parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	run.CreatedAt = t
	return &run, nil
}
