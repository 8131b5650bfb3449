package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scotty/internal/domain"
	"github.com/alexanderramin/scotty/internal/service"
)

// FormatAnswer boxes the advisor's raw answer.
func FormatAnswer(answer string) string {
	return RenderBox("Advisor", strings.TrimSpace(answer)) + "\n"
}

// FormatCourses renders recovered course records as a table.
func FormatCourses(courses []domain.CourseRecord) string {
	if len(courses) == 0 {
		return Dim("No courses.") + "\n"
	}
	rows := make([][]string, len(courses))
	for i, c := range courses {
		rows[i] = []string{
			orDash(c.ID),
			Bold(c.Title),
			orDash(c.Day),
			timeSpan(c.StartTime, c.EndTime),
			orDash(c.Location),
		}
	}
	return RenderTable([]string{"ID", "TITLE", "DAY", "TIME", "LOCATION"}, rows)
}

// FormatRecommendation prints the parse outcome below the answer.
func FormatRecommendation(res *service.RecommendResult) string {
	var b strings.Builder
	b.WriteString(FormatAnswer(res.Answer))
	b.WriteString("\n")
	if res.Notice != "" {
		b.WriteString(Warn(res.Notice))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(Header("Recommended courses"))
	b.WriteString("  ")
	b.WriteString(ParsePathBadge(res.ParsePath))
	b.WriteString("\n")
	b.WriteString(FormatCourses(res.Courses))
	return b.String()
}

// FormatExport lists written calendar files and per-record failures.
func FormatExport(res service.ExportResult) string {
	var b strings.Builder
	for _, cal := range res.Calendars {
		where := cal.Path
		if where == "" {
			where = cal.FileName
		}
		b.WriteString(Success(fmt.Sprintf("Calendar event for %s saved to %s", cal.Course.Title, where)))
		b.WriteString("\n")
	}
	for _, f := range res.Failures {
		b.WriteString(Failure(fmt.Sprintf("Could not create calendar event: %v", f.Err)))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatInterests renders a detected interest set.
func FormatInterests(set domain.InterestSet) string {
	if set.Empty() {
		return Dim("No known interests found.") + "\n"
	}
	return StyleBlue.Render("Detected interests: ") + set.String() + "\n"
}

func timeSpan(start, end string) string {
	if start == "" && end == "" {
		return "--"
	}
	return fmt.Sprintf("%s–%s", orDash(start), orDash(end))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "--"
	}
	return s
}
