package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/scotty/internal/calendar"
	"github.com/alexanderramin/scotty/internal/domain"
)

type exportService struct {
	generator *calendar.Generator
	observer  UseCaseObserver
}

func NewExportService(generator *calendar.Generator, observers ...UseCaseObserver) ExportService {
	return &exportService{
		generator: generator,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *exportService) Render(_ context.Context, rec domain.CourseRecord) (*ExportedCalendar, error) {
	content, err := s.generator.Generate(rec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayTitle(rec), err)
	}
	return &ExportedCalendar{
		Course:   rec,
		FileName: rec.FileName(),
		Content:  content,
	}, nil
}

func (s *exportService) RenderAll(ctx context.Context, courses []domain.CourseRecord) ExportResult {
	var res ExportResult
	for _, rec := range courses {
		cal, err := s.Render(ctx, rec)
		if err != nil {
			res.Failures = append(res.Failures, ExportFailure{Course: rec, Err: err})
			continue
		}
		res.Calendars = append(res.Calendars, *cal)
	}
	return res
}

// WriteFiles renders every course and writes each event to dir. Two
// records with the same file name get numbered suffixes.
func (s *exportService) WriteFiles(ctx context.Context, dir string, courses []domain.CourseRecord) (res ExportResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export-calendars",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"written": len(res.Calendars),
				"failed":  len(res.Failures),
			},
		})
	}()

	if dir == "" {
		dir = "."
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return ExportResult{}, fmt.Errorf("creating export directory: %w", err)
	}

	rendered := s.RenderAll(ctx, courses)
	res.Failures = rendered.Failures

	used := make(map[string]int)
	for _, cal := range rendered.Calendars {
		name := uniqueName(cal.FileName, used)
		path := filepath.Join(dir, name)
		if werr := os.WriteFile(path, []byte(cal.Content), 0o644); werr != nil {
			res.Failures = append(res.Failures, ExportFailure{Course: cal.Course, Err: fmt.Errorf("writing %s: %w", path, werr)})
			continue
		}
		cal.FileName = name
		cal.Path = path
		res.Calendars = append(res.Calendars, cal)
	}
	return res, nil
}

// uniqueName returns name, or name with the first free _N suffix, and marks
// the result as used.
func uniqueName(name string, used map[string]int) string {
	candidate := name
	base := strings.TrimSuffix(name, ".ics")
	for n := 2; used[candidate] > 0; n++ {
		candidate = fmt.Sprintf("%s_%d.ics", base, n)
	}
	used[candidate]++
	return candidate
}

func displayTitle(rec domain.CourseRecord) string {
	if t := strings.TrimSpace(rec.Title); t != "" {
		return t
	}
	return "untitled course"
}
