package intelligence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/scotty/internal/domain"
)

// NoPastCourses replaces the past-course list when nothing was selected.
const NoPastCourses = "no courses yet"

const queryTemplate = `I'm interested in %s.
I've already taken: %s.
I prefer courses that take %d–%d hours/week and have ratings between %s–%s.
Based on CMU's course catalog, what do you recommend?`

// BuildQuery renders the advisor query. Ranges pass through unvalidated.
func BuildQuery(req domain.RecommendationRequest) string {
	past := NoPastCourses
	if len(req.PastCourses) > 0 {
		past = strings.Join(req.PastCourses, ", ")
	}
	return fmt.Sprintf(queryTemplate,
		req.Interests,
		past,
		req.Hours.Min, req.Hours.Max,
		formatRating(req.Rating.Min), formatRating(req.Rating.Max),
	)
}

// formatRating keeps at least one decimal place: 5 renders as "5.0".
func formatRating(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
