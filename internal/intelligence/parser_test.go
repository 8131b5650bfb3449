package intelligence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/scotty/internal/domain"
)

const twoCourses = `{"courses":[
 {"id":"18-709","title":"Advanced Cloud Computing","description":"Project-based course on scalable distributed systems.","day":"Monday","start_time":"16:00","end_time":"17:50","location":"DH 2315"},
 {"id":"10-601","title":"Introduction to Machine Learning","description":"Core ML methods.","day":"Wednesday","start_time":"09:30","end_time":"10:50","location":"GHC 4401"}
]}`

func TestParseCourses_CopiesFieldsVerbatim(t *testing.T) {
	got := ParseCourses(twoCourses)
	require.Len(t, got, 2)
	assert.Equal(t, domain.CourseRecord{
		ID:          "18-709",
		Title:       "Advanced Cloud Computing",
		Description: "Project-based course on scalable distributed systems.",
		Day:         "Monday",
		StartTime:   "16:00",
		EndTime:     "17:50",
		Location:    "DH 2315",
	}, got[0])
	assert.Equal(t, "10-601", got[1].ID)
	assert.Equal(t, "Wednesday", got[1].Day)
}

func TestParseCourses_FencedMatchesUnwrapped(t *testing.T) {
	plain := ParseCourses(twoCourses)
	fenced := ParseCourses("```json\n" + twoCourses + "\n```")
	bare := ParseCourses("json " + twoCourses)
	assert.Equal(t, plain, fenced)
	assert.Equal(t, plain, bare)
}

func TestParseCourses_MissingKeysLeftEmpty(t *testing.T) {
	got := ParseCourses(`{"courses":[{"title":"Deep Learning","id":10707}]}`)
	require.Len(t, got, 1)
	assert.Equal(t, "10707", got[0].ID)
	assert.Empty(t, got[0].Day)
	assert.Empty(t, got[0].Location)
	assert.Empty(t, got[0].Description)
}

func TestParseCourses_SkipsUnusableElements(t *testing.T) {
	got := ParseCourses(`{"courses":["Robotics", {"id":"x"}, {"title":"Robot Kinematics"}]}`)
	require.Len(t, got, 1)
	assert.Equal(t, "Robot Kinematics", got[0].Title)
}

func TestParseCourses_MalformedYieldsEmpty(t *testing.T) {
	cases := []string{
		"",
		"Sorry, I cannot help.",
		`{"courses": [`,
		`[{"title":"Robotics"}]`,
		`{"courses": "Robotics"}`,
		`{"result": []}`,
		"Here you go: " + twoCourses,
	}
	for _, c := range cases {
		assert.Empty(t, ParseCourses(c), "input %q", c)
	}
}

func TestFallbackCourse_FirstQuotedTitle(t *testing.T) {
	rec, ok := FallbackCourse(`I recommend "Intro to Robotics" and maybe "Computer Vision".`)
	require.True(t, ok)
	assert.Equal(t, domain.CourseRecord{
		ID:          "unknown",
		Title:       "Intro to Robotics",
		Description: domain.DefaultDescription,
		Day:         "Monday",
		StartTime:   "10:00",
		EndTime:     "11:20",
		Location:    "to be determined",
	}, rec)
}

func TestExtractCourses_Structured(t *testing.T) {
	res := ExtractCourses(twoCourses)
	assert.Equal(t, domain.ParseStructured, res.Path)
	assert.Len(t, res.Courses, 2)
	assert.Empty(t, res.Notice)
	assert.False(t, res.Empty())
}

func TestExtractCourses_FallbackActivation(t *testing.T) {
	res := ExtractCourses(`You should take "Intro to Robotics" next term.`)
	assert.Equal(t, domain.ParseFallback, res.Path)
	require.Len(t, res.Courses, 1)
	assert.Equal(t, "Intro to Robotics", res.Courses[0].Title)
	assert.Equal(t, "unknown", res.Courses[0].ID)
}

func TestExtractCourses_FallbackWhenCoursesEmpty(t *testing.T) {
	res := ExtractCourses(`{"courses": []}`)
	assert.Equal(t, domain.ParseFallback, res.Path)
	require.Len(t, res.Courses, 1)
	assert.Equal(t, "courses", res.Courses[0].Title)
}

func TestExtractCourses_NoData(t *testing.T) {
	res := ExtractCourses("I'd suggest looking at robotics courses next term.")
	assert.Equal(t, domain.ParseNone, res.Path)
	assert.True(t, res.Empty())
	assert.Equal(t, NoStructuredDataNotice, res.Notice)
}
