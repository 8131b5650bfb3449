package calendar

import "errors"

var (
	// ErrInvalidDay is returned for anything other than Monday through Friday.
	ErrInvalidDay = errors.New("Invalid day")
	// ErrInvalidTime is returned when a start or end time is not 24-hour HH:MM.
	ErrInvalidTime = errors.New("invalid time, expected 24-hour HH:MM")
)
