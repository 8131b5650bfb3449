package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/scotty/internal/advisor"
	"github.com/alexanderramin/scotty/internal/domain"
)

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Course options
type CourseOption func(*domain.CourseRecord)

func WithDay(day string) CourseOption {
	return func(c *domain.CourseRecord) {
		c.Day = day
	}
}

func WithTimes(start, end string) CourseOption {
	return func(c *domain.CourseRecord) {
		c.StartTime = start
		c.EndTime = end
	}
}

func WithCourseID(id string) CourseOption {
	return func(c *domain.CourseRecord) {
		c.ID = id
	}
}

func NewTestCourse(title string, opts ...CourseOption) domain.CourseRecord {
	c := domain.CourseRecord{
		ID:          "15-440",
		Title:       title,
		Description: "Course suggested for testing.",
		Day:         "Tuesday",
		StartTime:   "10:00",
		EndTime:     "11:20",
		Location:    "GHC 4401",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Run options
type RunOption func(*domain.RecommendationRun)

func WithCourses(courses ...domain.CourseRecord) RunOption {
	return func(r *domain.RecommendationRun) {
		r.Courses = courses
		if len(courses) > 0 {
			r.ParsePath = domain.ParseStructured
			r.Notice = ""
		}
	}
}

func WithCreatedAt(t time.Time) RunOption {
	return func(r *domain.RecommendationRun) {
		r.CreatedAt = t
	}
}

func WithSource(s domain.RunSource) RunOption {
	return func(r *domain.RecommendationRun) {
		r.Source = s
	}
}

func NewTestRun(query string, opts ...RunOption) *domain.RecommendationRun {
	r := &domain.RecommendationRun{
		ID:          uuid.New().String(),
		Query:       query,
		Interests:   "machine learning",
		RawResponse: "no courses",
		ParsePath:   domain.ParseNone,
		Notice:      "nothing to export",
		Source:      domain.SourceCLI,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StubAdvisor returns a canned answer or error and records the queries it saw.
type StubAdvisor struct {
	Response string
	Err      error
	Model    string

	mu      sync.Mutex
	queries []string
}

func (s *StubAdvisor) Answer(_ context.Context, query string) (string, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}

func (s *StubAdvisor) Status(context.Context) advisor.Status {
	model := s.Model
	if model == "" {
		model = "stub"
	}
	return advisor.Status{Ready: s.Err == nil, Model: model}
}

// Queries returns every query passed to Answer.
func (s *StubAdvisor) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.queries))
	copy(out, s.queries)
	return out
}
