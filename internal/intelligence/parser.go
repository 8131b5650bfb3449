package intelligence

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/scotty/internal/domain"
	"github.com/alexanderramin/scotty/internal/llm"
)

// NoStructuredDataNotice is shown when neither parse tier recovers a course.
const NoStructuredDataNotice = "The response above contains course suggestions, but calendar export isn't available for this format."

var quotedTitle = regexp.MustCompile(`"([^"]+)"`)

// ParseResult is the outcome of running both parse tiers over an answer.
type ParseResult struct {
	Courses []domain.CourseRecord
	Path    domain.ParsePath
	Notice  string
}

// Empty reports whether no course could be recovered.
func (r ParseResult) Empty() bool { return len(r.Courses) == 0 }

type courseEnvelope struct {
	Courses []json.RawMessage `json:"courses"`
}

// ParseCourses is the strict tier. The answer must be a single JSON object,
// optionally wrapped in code fences and a "json" tag, with a "courses" array.
// Any failure yields an empty slice rather than an error. Fields are copied
// as-is; defaults are the consumer's job.
func ParseCourses(raw string) []domain.CourseRecord {
	env, err := llm.DecodeJSON[courseEnvelope](raw, nil)
	if err != nil {
		return nil
	}

	var out []domain.CourseRecord
	for _, elem := range env.Courses {
		rec, ok := decodeCourse(elem)
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// FallbackCourse is the degraded tier: the first double-quoted substring in
// raw becomes the title of a record filled with sentinel values.
func FallbackCourse(raw string) (domain.CourseRecord, bool) {
	m := quotedTitle.FindStringSubmatch(raw)
	if m == nil {
		return domain.CourseRecord{}, false
	}
	return domain.FallbackCourse(m[1]), true
}

// ExtractCourses runs the strict tier and, only when it recovers nothing,
// the fallback tier.
func ExtractCourses(raw string) ParseResult {
	if courses := ParseCourses(raw); len(courses) > 0 {
		return ParseResult{Courses: courses, Path: domain.ParseStructured}
	}
	if rec, ok := FallbackCourse(raw); ok {
		return ParseResult{Courses: []domain.CourseRecord{rec}, Path: domain.ParseFallback}
	}
	return ParseResult{Path: domain.ParseNone, Notice: NoStructuredDataNotice}
}

// decodeCourse maps one array element onto a CourseRecord. Non-object
// elements and elements without a title are skipped.
func decodeCourse(elem json.RawMessage) (domain.CourseRecord, bool) {
	dec := json.NewDecoder(bytes.NewReader(elem))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return domain.CourseRecord{}, false
	}

	rec := domain.CourseRecord{
		ID:          scalarString(fields["id"]),
		Title:       scalarString(fields["title"]),
		Description: scalarString(fields["description"]),
		Day:         scalarString(fields["day"]),
		StartTime:   scalarString(fields["start_time"]),
		EndTime:     scalarString(fields["end_time"]),
		Location:    scalarString(fields["location"]),
	}
	if strings.TrimSpace(rec.Title) == "" {
		return domain.CourseRecord{}, false
	}
	return rec, true
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
