package utils

import "time"

// Subscription dates are stored as epoch seconds on the account row.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSeconds converts a stored epoch value to UTC time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
