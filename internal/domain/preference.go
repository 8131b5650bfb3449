package domain

// HoursRange bounds the expected weekly workload in hours (domain 1-20).
// Min <= Max is expected but never enforced.
type HoursRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RatingRange bounds the course rating (domain 1.0-5.0).
// Min <= Max is expected but never enforced.
type RatingRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

var (
	DefaultHours  = HoursRange{Min: 5, Max: 10}
	DefaultRating = RatingRange{Min: 3.5, Max: 5.0}
)

// DefaultPastCourses are the catalog entries offered before a user adds their own.
var DefaultPastCourses = []string{
	"15-319: Cloud Computing",
	"15-351: Algorithms",
	"15-213: Computer Systems",
}

// RecommendationRequest carries everything the query builder needs.
type RecommendationRequest struct {
	Interests   string      `json:"interests"`
	PastCourses []string    `json:"past_courses"`
	Hours       HoursRange  `json:"hours"`
	Rating      RatingRange `json:"rating"`
}

// NewRecommendationRequest returns a request with the default preference ranges.
func NewRecommendationRequest(interests string, pastCourses ...string) RecommendationRequest {
	return RecommendationRequest{
		Interests:   interests,
		PastCourses: pastCourses,
		Hours:       DefaultHours,
		Rating:      DefaultRating,
	}
}
