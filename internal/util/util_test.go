package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := map[string]struct {
		in   time.Duration
		want string
	}{
		"sub second rounds":   {in: 400 * time.Millisecond, want: "0s"},
		"seconds":             {in: 45 * time.Second, want: "45s"},
		"whole minutes":       {in: 5 * time.Minute, want: "5m"},
		"minutes and seconds": {in: 5*time.Minute + 10*time.Second, want: "5m10s"},
		"whole hours":         {in: time.Hour, want: "1h"},
		"hours and minutes":   {in: 90 * time.Minute, want: "1h30m"},
		"seconds dropped":     {in: time.Hour + 2*time.Minute + 3*time.Second, want: "1h2m"},
		"hour and seconds":    {in: time.Hour + 3*time.Second, want: "1h"},
		"one day":             {in: 24 * time.Hour, want: "1d"},
		"day and a half":      {in: 36 * time.Hour, want: "36h"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}
