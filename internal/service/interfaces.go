package service

import (
	"context"
	"io"

	"github.com/alexanderramin/scotty/internal/domain"
)

// RecommendService runs the query, advisor and parse pipeline.
type RecommendService interface {
	Recommend(ctx context.Context, req RecommendRequest) (*RecommendResult, error)
}

// ExportService turns course records into iCalendar files.
type ExportService interface {
	Render(ctx context.Context, rec domain.CourseRecord) (*ExportedCalendar, error)
	RenderAll(ctx context.Context, courses []domain.CourseRecord) ExportResult
	WriteFiles(ctx context.Context, dir string, courses []domain.CourseRecord) (ExportResult, error)
}

// InterestService detects interests in uploaded documents.
type InterestService interface {
	FromDocument(ctx context.Context, r io.ReaderAt, size int64) (domain.InterestSet, error)
	FromFile(ctx context.Context, path string) (domain.InterestSet, error)
	FromText(text string) domain.InterestSet
}

type HistoryService interface {
	List(ctx context.Context, limit int) ([]*domain.RecommendationRun, error)
	Get(ctx context.Context, id string) (*domain.RecommendationRun, error)
	Delete(ctx context.Context, id string) error
}

// CatalogService manages the past-course options.
type CatalogService interface {
	List(ctx context.Context) ([]domain.PastCourse, error)
	Labels(ctx context.Context) ([]string, error)
	Add(ctx context.Context, labels ...string) error
	Remove(ctx context.Context, label string) error
}

// RecommendRequest is one recommend action.
type RecommendRequest struct {
	domain.RecommendationRequest
	Source      domain.RunSource
	SkipHistory bool
}

// RecommendResult carries the advisor answer and whatever could be parsed
// from it. Courses is empty when Notice is set.
type RecommendResult struct {
	RunID     string
	Query     string
	Answer    string
	Courses   []domain.CourseRecord
	ParsePath domain.ParsePath
	Notice    string
	// HistoryErr is set when the run could not be saved. The result is
	// still usable.
	HistoryErr error
}

// ExportedCalendar is one rendered event file.
type ExportedCalendar struct {
	Course   domain.CourseRecord
	FileName string
	Content  string
	Path     string
}

// ExportFailure records a record that could not be turned into an event.
type ExportFailure struct {
	Course domain.CourseRecord
	Err    error
}

// ExportResult lists the outcome per record. A failure never stops the
// remaining records.
type ExportResult struct {
	Calendars []ExportedCalendar
	Failures  []ExportFailure
}
