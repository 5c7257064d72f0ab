package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"exactly now", now, true},
		{"lower bound inclusive", now.Add(-12 * time.Hour), true},
		{"upper bound inclusive", now.Add(12 * time.Hour), true},
		{"just before lower bound", now.Add(-12*time.Hour - time.Second), false},
		{"just after upper bound", now.Add(12*time.Hour + time.Second), false},
		{"inside past half", now.Add(-6 * time.Hour), true},
		{"inside future half", now.Add(6 * time.Hour), true},
		{"a day ago", now.Add(-24 * time.Hour), false},
		{"a day ahead", now.Add(24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinWindow(tt.start, now))
		})
	}
}

func TestQueryDates(t *testing.T) {
	// 02:00 UTC: the past date lands on the previous calendar day
	now := time.Date(2024, 3, 15, 2, 0, 0, 0, time.UTC)

	past, future := QueryDates(now)

	require.Equal(t, "2024-03-14", past.Format("2006-01-02"))
	require.Equal(t, "2024-03-15", future.Format("2006-01-02"))
}

func TestQueryDatesEvening(t *testing.T) {
	now := time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC)

	past, future := QueryDates(now)

	require.Equal(t, "2024-03-15", past.Format("2006-01-02"))
	require.Equal(t, "2024-03-16", future.Format("2006-01-02"))
}
