package domain

import "strings"

// Sentinels applied when the advisor omits a field or only a title could be
// recovered from its answer.
const (
	UnknownCourseID    = "unknown"
	DefaultLocation    = "to be determined"
	DefaultStartTime   = "10:00"
	DefaultEndTime     = "11:20"
	DefaultDescription = "Suggested by advisor based on your resume and interests."
	DefaultCourseDay   = Monday
)

// CourseRecord is one recommended course as recovered from an advisor answer.
// Only Title is guaranteed to be non-empty.
type CourseRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Day         string `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
}

// FallbackCourse builds the degraded record used when only a title is known.
func FallbackCourse(title string) CourseRecord {
	return CourseRecord{
		ID:          UnknownCourseID,
		Title:       title,
		Description: DefaultDescription,
		Day:         string(DefaultCourseDay),
		StartTime:   DefaultStartTime,
		EndTime:     DefaultEndTime,
		Location:    DefaultLocation,
	}
}

// WithDefaults fills empty id, location and description with their sentinels.
// Day and times are left alone so that a missing schedule stays an invalid record.
func (c CourseRecord) WithDefaults() CourseRecord {
	if strings.TrimSpace(c.ID) == "" {
		c.ID = UnknownCourseID
	}
	if strings.TrimSpace(c.Location) == "" {
		c.Location = DefaultLocation
	}
	if strings.TrimSpace(c.Description) == "" {
		c.Description = DefaultDescription
	}
	return c
}

// FileName returns the download name for the record's calendar file.
func (c CourseRecord) FileName() string {
	name := strings.TrimSpace(c.Title)
	if name == "" {
		name = "course"
	}
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ':
			return '_'
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		return r
	}, name)
	return name + ".ics"
}
