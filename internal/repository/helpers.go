package repository

import "time"

// timestampLayout is how every created_at column is stored.
const timestampLayout = time.RFC3339

// nowUTC returns the current UTC time formatted for storage.
func nowUTC() string {
	return formatTimestamp(time.Now())
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}
