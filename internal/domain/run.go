package domain

import "time"

// ParsePath records which tier of the response parser produced the records.
type ParsePath string

const (
	ParseStructured ParsePath = "structured"
	ParseFallback   ParsePath = "fallback"
	ParseNone       ParsePath = "none"
)

// RunSource records which front-end requested a run.
type RunSource string

const (
	SourceCLI RunSource = "cli"
	SourceAPI RunSource = "api"
)

// RecommendationRun is one completed recommend request kept for history.
type RecommendationRun struct {
	ID          string
	Query       string
	Interests   string
	RawResponse string
	ParsePath   ParsePath
	Notice      string
	Source      RunSource
	Courses     []CourseRecord
	CreatedAt   time.Time
}

// PastCourse is an option offered in the "already taken" picker.
type PastCourse struct {
	Label     string
	CreatedAt time.Time
}
