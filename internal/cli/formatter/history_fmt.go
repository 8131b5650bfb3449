package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/scotty/internal/domain"
)

// FormatHistory lists runs newest first.
func FormatHistory(runs []*domain.RecommendationRun, now time.Time) string {
	if len(runs) == 0 {
		return Dim("No recommendations yet.") + "\n"
	}
	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{
			TruncID(r.ID),
			HumanTimestampFrom(r.CreatedAt, now),
			ParsePathBadge(r.ParsePath),
			fmt.Sprintf("%d", len(r.Courses)),
			Truncate(r.Interests, 40),
		}
	}
	return RenderTable([]string{"ID", "WHEN", "PARSE", "COURSES", "INTERESTS"}, rows)
}

// FormatRun shows one stored run in full.
func FormatRun(r *domain.RecommendationRun) string {
	var b strings.Builder
	b.WriteString(Header("Recommendation run"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("ID:       "), r.ID)
	fmt.Fprintf(&b, "%s %s\n", Dim("Created:  "), r.CreatedAt.UTC().Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "%s %s\n", Dim("Source:   "), r.Source)
	fmt.Fprintf(&b, "%s %s\n", Dim("Interests:"), r.Interests)
	fmt.Fprintf(&b, "%s %s\n\n", Dim("Parse:    "), ParsePathBadge(r.ParsePath))
	b.WriteString(RenderBox("Query", r.Query))
	b.WriteString("\n")
	b.WriteString(FormatAnswer(r.RawResponse))
	b.WriteString("\n")
	if r.Notice != "" {
		b.WriteString(Warn(r.Notice))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(FormatCourses(r.Courses))
	return b.String()
}

// FormatPastCourses lists the catalog labels.
func FormatPastCourses(labels []string) string {
	if len(labels) == 0 {
		return Dim("No past courses.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("Past courses"))
	b.WriteString("\n")
	for _, l := range labels {
		b.WriteString("  • ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}
