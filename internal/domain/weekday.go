package domain

import (
	"strings"
	"time"
)

// Weekday is a teaching day name. Only Monday through Friday are valid.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

// Weekdays lists the teaching days in Monday-first order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayCodes = map[Weekday]string{
	Monday:    "MO",
	Tuesday:   "TU",
	Wednesday: "WE",
	Thursday:  "TH",
	Friday:    "FR",
}

// ParseWeekday matches a day name case-insensitively. Weekend days and
// anything else report false.
func ParseWeekday(s string) (Weekday, bool) {
	s = strings.TrimSpace(s)
	for _, d := range Weekdays {
		if strings.EqualFold(s, string(d)) {
			return d, true
		}
	}
	return "", false
}

// Index returns the position of d in Monday-first order, or -1.
func (d Weekday) Index() int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return -1
}

// Code returns the two-letter iCalendar BYDAY code.
func (d Weekday) Code() string {
	return weekdayCodes[d]
}

// MondayIndex converts a time.Weekday to Monday-first numbering (Monday=0, Sunday=6).
func MondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}
