package domain

import (
	"fmt"
	"time"
)

// TermWeeks is the number of weekly occurrences in one academic term.
const TermWeeks = 15

// Recurrence describes a weekly repeat bounded by count.
type Recurrence struct {
	Freq  string
	Count int
	ByDay string
}

// CalendarEvent is derived on demand from one CourseRecord and is never stored.
// Start and End are wall-clock times in the generator's location.
type CalendarEvent struct {
	UID         string
	Stamp       time.Time
	Start       time.Time
	End         time.Time
	Summary     string
	Location    string
	Description string
	Recurrence  Recurrence
}

// String renders the RRULE value, e.g. "FREQ=WEEKLY;COUNT=15;BYDAY=MO".
func (r Recurrence) String() string {
	return fmt.Sprintf("FREQ=%s;COUNT=%d;BYDAY=%s", r.Freq, r.Count, r.ByDay)
}
