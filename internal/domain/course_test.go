package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackCourse_Sentinels(t *testing.T) {
	c := FallbackCourse("Intro to Robotics")
	assert.Equal(t, "Intro to Robotics", c.Title)
	assert.Equal(t, "unknown", c.ID)
	assert.Equal(t, "Monday", c.Day)
	assert.Equal(t, "10:00", c.StartTime)
	assert.Equal(t, "11:20", c.EndTime)
	assert.Equal(t, "to be determined", c.Location)
	assert.Equal(t, DefaultDescription, c.Description)
}

func TestWithDefaults_FillsOnlyIdentityFields(t *testing.T) {
	c := CourseRecord{Title: "Deep Learning", Day: "Tuesday"}.WithDefaults()
	assert.Equal(t, UnknownCourseID, c.ID)
	assert.Equal(t, DefaultLocation, c.Location)
	assert.Equal(t, DefaultDescription, c.Description)
	assert.Equal(t, "Tuesday", c.Day)
	assert.Empty(t, c.StartTime)
	assert.Empty(t, c.EndTime)
}

func TestWithDefaults_KeepsProvidedValues(t *testing.T) {
	in := CourseRecord{ID: "18-709", Title: "Advanced Cloud Computing", Location: "DH 2315", Description: "Projects."}
	assert.Equal(t, in, in.WithDefaults())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Intro_to_Robotics.ics", CourseRecord{Title: "Intro to Robotics"}.FileName())
	assert.Equal(t, "Systems_IO.ics", CourseRecord{Title: "Systems I/O"}.FileName())
	assert.Equal(t, "course.ics", CourseRecord{}.FileName())
}
