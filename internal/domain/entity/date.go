package entity

import "time"

// DateOf truncates t to its calendar date at midnight UTC.
// Expiration dates are stored as plain dates.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
