package service

import (
	"fmt"
	"time"
)

// SeasonStart returns the first day of the season containing now. A season
// opens on the first of startMonth; before that month now belongs to the
// season that opened the previous year.
func SeasonStart(now time.Time, startMonth int) time.Time {
	y := now.Year()
	if int(now.Month()) < startMonth {
		y--
	}
	return time.Date(y, time.Month(startMonth), 1, 0, 0, 0, 0, now.Location())
}

// SeasonLabel names the season opening at start, e.g. "2024-25".
func SeasonLabel(start time.Time) string {
	if start.Month() == time.January {
		return fmt.Sprintf("%d", start.Year())
	}
	return fmt.Sprintf("%d-%02d", start.Year(), (start.Year()+1)%100)
}
