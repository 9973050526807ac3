// Package util holds small formatting helpers for log attributes.
package util

import (
	"strconv"
	"strings"
	"time"
)

// FormatDuration renders an interval with at most two units, largest first:
// "45s", "5m10s", "1h30m", "2d". Whole days are only used for exact multiples.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return strconv.Itoa(int(d/time.Second)) + "s"
	}

	const day = 24 * time.Hour
	if d%day == 0 {
		return strconv.Itoa(int(d/day)) + "d"
	}

	units := []struct {
		size   time.Duration
		suffix string
	}{
		{time.Hour, "h"},
		{time.Minute, "m"},
		{time.Second, "s"},
	}

	var b strings.Builder
	parts := 0
	for _, u := range units {
		if parts == 2 {
			break
		}
		n := d / u.size
		if n == 0 && parts == 0 {
			continue
		}
		d -= n * u.size
		parts++
		if n == 0 {
			continue
		}
		b.WriteString(strconv.FormatInt(int64(n), 10))
		b.WriteString(u.suffix)
	}

	return b.String()
}
