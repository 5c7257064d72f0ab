// Package schedule holds the time-window policy that decides which
// episodes belong to the client's display window around "now".
package schedule

import "time"

// WindowRadius is how far the display window extends on each side of
// the current time.
const WindowRadius = 12 * time.Hour

// WithinWindow reports whether start falls inside [now-12h, now+12h].
// Both bounds are inclusive.
func WithinWindow(start, now time.Time) bool {
	lo := now.Add(-WindowRadius)
	hi := now.Add(WindowRadius)
	return !start.Before(lo) && !start.After(hi)
}

// QueryDates returns the two instants whose calendar dates are queried
// upstream: now-12h and now+12h. The server buckets schedules by day,
// so these cover every episode the window can accept; exact filtering
// is done client-side with WithinWindow.
func QueryDates(now time.Time) (past, future time.Time) {
	return now.Add(-WindowRadius), now.Add(WindowRadius)
}
