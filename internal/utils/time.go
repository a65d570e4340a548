package utils

import (
	"fmt"
	"time"
)

// FormatDate renders t as a calendar date, or "-" for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 999999999, t.Location())
}

// TimeAgo describes how long before now t happened.
func TimeAgo(t, now time.Time) string {
	duration := now.Sub(t)

	if duration < time.Minute {
		return "just now"
	} else if duration < time.Hour {
		return fmt.Sprintf("%d minutes ago", int(duration.Minutes()))
	} else if duration < 24*time.Hour {
		return fmt.Sprintf("%d hours ago", int(duration.Hours()))
	} else if duration < 7*24*time.Hour {
		return fmt.Sprintf("%d days ago", int(duration.Hours()/24))
	} else if duration < 30*24*time.Hour {
		return fmt.Sprintf("%d weeks ago", int(duration.Hours()/(24*7)))
	} else if duration < 365*24*time.Hour {
		return fmt.Sprintf("%d months ago", int(duration.Hours()/(24*30)))
	}

	return fmt.Sprintf("%d years ago", int(duration.Hours()/(24*365)))
}
