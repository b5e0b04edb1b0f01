// Package report resolves the reporting window and assembles the full
// eco report from the upstream sections.
package report

import (
	"fmt"
	"time"
)

// Window is the resolved reporting window. From and To are the ISO-8601
// start-of-day and end-of-day boundaries; StartDate and EndDate are the
// calendar dates at UTC midnight.
type Window struct {
	From      string
	To        string
	StartDate time.Time
	EndDate   time.Time
	Label     string
	Days      int
}

// ResolveWindow maps a range token to a concrete window ending at now's
// UTC date. Unrecognized tokens, including the empty string, silently
// resolve to 7 days; this never fails.
func ResolveWindow(token string, now time.Time) Window {
	days := 7
	switch token {
	case "7days", "7d":
		days = 7
	case "15days", "15d":
		days = 15
	case "30days", "30d":
		days = 30
	}

	today := now.UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -(days - 1))

	return Window{
		From:      start.Format("2006-01-02T15:04:05") + "Z",
		To:        today.Format("2006-01-02") + "T23:59:59.999999Z",
		StartDate: start,
		EndDate:   today,
		Label:     fmt.Sprintf("Last %d days", days),
		Days:      days,
	}
}
