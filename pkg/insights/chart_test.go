package insights

import (
	"testing"

	"github.com/fokusly/fokusly/pkg/session"
	"github.com/stretchr/testify/assert"
)

func TestBuildChart_WeekHasSevenWeekdayPoints(t *testing.T) {
	sessions := []session.FocusSession{
		rec("2025-03-04", 25),
		rec("2025-03-10", 25),
		rec("2025-03-10", 30),
	}
	w := WindowFor(WindowWeek, day("2025-03-10"), "", "", nil)

	points := BuildChart(sessions, w, WindowWeek)

	assert.Len(t, points, 7)
	assert.Equal(t, "Tue", points[0].Label)
	assert.Equal(t, "Mon", points[6].Label)
	assert.Equal(t, 1, points[0].Value)
	assert.Equal(t, 2, points[6].Value)
	assert.Equal(t, "2025-03-04", points[0].Date)
}

func TestBuildChart_MonthLabelsByDayOfMonth(t *testing.T) {
	sessions := []session.FocusSession{rec("2025-03-05", 25)}
	w := WindowFor(WindowMonth, day("2025-03-10"), "", "", nil)

	points := BuildChart(sessions, w, WindowMonth)

	assert.Len(t, points, 10)
	assert.Equal(t, "1", points[0].Label)
	assert.Equal(t, "5", points[4].Label)
	assert.Equal(t, 1, points[4].Value)
}

func TestBuildChart_ShortCustomRangeStaysDaily(t *testing.T) {
	sessions := []session.FocusSession{rec("2025-01-05", 25)}
	w := WindowFor(WindowCustom, day("2025-03-10"), "2025-01-01", "2025-01-10", nil)

	points := BuildChart(sessions, w, WindowCustom)

	assert.Len(t, points, 10)
	assert.Equal(t, "01-05", points[4].Label)
	assert.Equal(t, 1, points[4].Value)
}

func TestBuildChart_LongCustomRangeBucketsByWeek(t *testing.T) {
	sessions := []session.FocusSession{
		rec("2025-01-01", 25),
		rec("2025-01-07", 25),
		rec("2025-01-08", 25),
	}
	// 35 days from Jan 1
	w := WindowFor(WindowCustom, day("2025-03-10"), "2025-01-01", "2025-02-04", nil)

	points := BuildChart(sessions, w, WindowCustom)

	assert.Len(t, points, 5)
	assert.Equal(t, "week 1", points[0].Label)
	assert.Equal(t, "week 2", points[1].Label)
	assert.Equal(t, 2, points[0].Value)
	assert.Equal(t, 1, points[1].Value)
}

func TestBuildChart_LifetimeEmitsOnlyActiveMonths(t *testing.T) {
	sessions := []session.FocusSession{
		rec("2025-01-10", 25),
		rec("2025-01-20", 25),
		rec("2025-03-01", 25),
	}
	w := WindowFor(WindowLifetime, day("2025-03-10"), "", "", sessions)

	points := BuildChart(sessions, w, WindowLifetime)

	assert.Len(t, points, 2)
	assert.Equal(t, "1", points[0].Label)
	assert.Equal(t, 2, points[0].Value)
	assert.Equal(t, "3", points[1].Label)
	assert.Equal(t, 1, points[1].Value)
}

func TestBuildChart_EmptyWindowYieldsEmptySlice(t *testing.T) {
	points := BuildChart(nil, TimeWindow{}, WindowCustom)

	assert.NotNil(t, points)
	assert.Empty(t, points)
}

// Per-day chart points must sum back to the aggregate count for the same
// window, for the daily granularities.
func TestBuildChart_RoundTripsWithAggregate(t *testing.T) {
	sessions := []session.FocusSession{
		rec("2025-03-01", 25),
		rec("2025-03-04", 25),
		rec("2025-03-04", 30),
		rec("2025-03-09", 45),
		rec("2025-03-10", 45),
		rec("2025-02-15", 60),
	}

	for _, kind := range []WindowKind{WindowWeek, WindowMonth} {
		w := WindowFor(kind, day("2025-03-10"), "", "", sessions)
		totals, err := Aggregate(sessions, w)
		assert.NoError(t, err)

		sum := 0
		for _, point := range BuildChart(sessions, w, kind) {
			sum += point.Value
		}
		assert.Equal(t, totals.Count, sum, "kind=%s", kind)
	}
}

func TestMonthHeatmap_CoversFullCalendarMonth(t *testing.T) {
	sessions := []session.FocusSession{
		rec("2025-02-10", 25),
		rec("2025-02-10", 30),
		rec("2025-02-20", 45), // after "today", still part of the calendar
	}

	cells := MonthHeatmap(sessions, day("2025-02-15"))

	assert.Len(t, cells, 28)
	assert.Equal(t, "2025-02-01", cells[0].Date)
	assert.Equal(t, 1, cells[0].DayOfMonth)
	assert.Equal(t, 2, cells[9].Sessions)
	assert.Equal(t, 55, cells[9].Minutes)
	assert.Equal(t, 1, cells[19].Sessions)
}

func TestMonthHeatmap_Tiers(t *testing.T) {
	tests := []struct {
		sessions int
		tier     int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{9, 3},
	}
	for _, tt := range tests {
		var sessions []session.FocusSession
		for i := 0; i < tt.sessions; i++ {
			sessions = append(sessions, rec("2025-02-10", 25))
		}

		cells := MonthHeatmap(sessions, day("2025-02-15"))

		assert.Equal(t, tt.tier, cells[9].Tier, "sessions=%d", tt.sessions)
	}
}
