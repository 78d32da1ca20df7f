package forecast

import (
	"testing"
	"time"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateDates_MonthlyAnchor15(t *testing.T) {
	got := GenerateDates(date(2025, 8, 1), date(2026, 1, 31), models.FrequencyMonthly, 15)

	want := []time.Time{
		date(2025, 8, 15), date(2025, 9, 15), date(2025, 10, 15),
		date(2025, 11, 15), date(2025, 12, 15), date(2026, 1, 15),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("date %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGenerateDates_QuarterlyAnchor15(t *testing.T) {
	got := GenerateDates(date(2025, 8, 1), date(2026, 1, 31), models.FrequencyQuarterly, 15)

	// The next quarterly step, 2026-02-15, exceeds the end date.
	want := []time.Time{date(2025, 8, 15), date(2025, 11, 15)}
	if len(got) != 2 {
		t.Fatalf("expected 2 dates, got %d: %v", len(got), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("date %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGenerateDates_AnchorBeforeStartAdvancesOnePeriod(t *testing.T) {
	got := GenerateDates(date(2025, 8, 20), date(2025, 10, 31), models.FrequencyMonthly, 1)

	want := []time.Time{date(2025, 9, 1), date(2025, 10, 1)}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("date %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGenerateDates_AnchorClampedTo28(t *testing.T) {
	got := GenerateDates(date(2025, 1, 1), date(2025, 3, 31), models.FrequencyMonthly, 31)

	want := []time.Time{date(2025, 1, 28), date(2025, 2, 28), date(2025, 3, 28)}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("date %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGenerateDates_WeeklyAndBiweeklyStepFromStart(t *testing.T) {
	weekly := GenerateDates(date(2025, 8, 1), date(2025, 8, 31), models.FrequencyWeekly, 0)
	if len(weekly) != 5 {
		t.Fatalf("expected 5 weekly dates in August, got %d: %v", len(weekly), weekly)
	}
	if !weekly[0].Equal(date(2025, 8, 1)) || !weekly[4].Equal(date(2025, 8, 29)) {
		t.Fatalf("unexpected weekly endpoints: %v", weekly)
	}

	biweekly := GenerateDates(date(2025, 8, 1), date(2025, 8, 31), models.FrequencyBiweekly, 0)
	if len(biweekly) != 3 {
		t.Fatalf("expected 3 biweekly dates in August, got %d: %v", len(biweekly), biweekly)
	}
}

func TestGenerateDates_UnknownFrequencyYieldsStart(t *testing.T) {
	got := GenerateDates(date(2025, 8, 1), date(2025, 8, 31), models.Frequency("ANNUAL"), 0)
	if len(got) != 1 || !got[0].Equal(date(2025, 8, 1)) {
		t.Fatalf("expected single start date, got %v", got)
	}
}

func TestGenerateDates_EmptyWhenFirstOccurrenceExceedsEnd(t *testing.T) {
	got := GenerateDates(date(2025, 8, 20), date(2025, 9, 10), models.FrequencyMonthly, 15)
	if len(got) != 0 {
		t.Fatalf("expected no dates, got %v", got)
	}
}
