package forecast

import (
	"time"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
)

// maxAnchorDay caps monthly/quarterly anchors so stepping by whole months
// never runs into month-length edge cases.
const maxAnchorDay = 28

// GenerateDates expands a recurrence into the ordered due dates inside the
// closed interval [start, end]. anchorDay <= 0 selects the default anchor
// (1 for MONTHLY, 15 for QUARTERLY); weekly cadences step from start and
// ignore the anchor. An unknown frequency yields just the start date.
func GenerateDates(start, end time.Time, freq models.Frequency, anchorDay int) []time.Time {
	switch freq {
	case models.FrequencyMonthly:
		if anchorDay <= 0 {
			anchorDay = 1
		}
		return anchoredDates(start, end, anchorDay, 1)
	case models.FrequencyQuarterly:
		if anchorDay <= 0 {
			anchorDay = 15
		}
		return anchoredDates(start, end, anchorDay, 3)
	case models.FrequencyWeekly:
		return steppedDates(start, end, 7)
	case models.FrequencyBiweekly:
		return steppedDates(start, end, 14)
	}
	return []time.Time{start}
}

func anchoredDates(start, end time.Time, anchorDay, stepMonths int) []time.Time {
	if anchorDay > maxAnchorDay {
		anchorDay = maxAnchorDay
	}
	first := time.Date(start.Year(), start.Month(), anchorDay, 0, 0, 0, 0, start.Location())
	if first.Before(start) {
		first = first.AddDate(0, stepMonths, 0)
	}
	var dates []time.Time
	for d := first; !d.After(end); d = d.AddDate(0, stepMonths, 0) {
		dates = append(dates, d)
	}
	return dates
}

func steppedDates(start, end time.Time, stepDays int) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, stepDays) {
		dates = append(dates, d)
	}
	return dates
}
