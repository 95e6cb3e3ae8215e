package insights

import (
	"testing"

	"github.com/fokusly/fokusly/pkg/plan"
	"github.com/fokusly/fokusly/pkg/session"
	"github.com/stretchr/testify/assert"
)

func TestCompute_Week(t *testing.T) {
	// given
	sessions := []session.FocusSession{
		rec("2025-03-08", 25),
		rec("2025-03-09", 30),
		rec("2025-03-10", 45),
		rec("2025-03-01", 60), // previous week
	}

	// when
	stats, err := Compute(Input{
		Sessions: sessions,
		Kind:     WindowWeek,
		Today:    day("2025-03-10"),
	})

	// then
	assert.NoError(t, err)
	assert.Equal(t, WindowWeek, stats.Kind)
	assert.Equal(t, 3, stats.TotalSessions)
	assert.Equal(t, 100, stats.TotalMinutes)
	assert.Equal(t, 3, stats.ActiveDays)
	assert.Equal(t, 7, stats.TotalDays)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
	assert.Len(t, stats.Chart, 7)

	// 1 session in the previous week versus 3 now
	assert.Equal(t, 200, stats.Delta.Sessions)

	// the week detail carries achievements but no heatmap or goals
	assert.Len(t, stats.Detail.Achievements, 3)
	assert.Nil(t, stats.Detail.Heatmap)
	assert.Nil(t, stats.Detail.Goals)
}

func TestCompute_MonthCarriesHeatmapAndGoals(t *testing.T) {
	sessions := []session.FocusSession{
		rec("2025-03-05", 450),
		rec("2025-03-06", 450),
	}

	stats, err := Compute(Input{
		Sessions: sessions,
		Kind:     WindowMonth,
		Today:    day("2025-03-10"),
		Goals:    Goals{MonthlyMinutes: 1800, MonthlySessions: 60},
	})

	assert.NoError(t, err)
	assert.Len(t, stats.Detail.Heatmap, 31)
	assert.NotNil(t, stats.Detail.Goals)
	assert.Equal(t, 50, stats.Detail.Goals.MinutesPercent)
	assert.Equal(t, 3, stats.Detail.Goals.SessionsPercent)
	assert.Nil(t, stats.Detail.Achievements)
}

func TestCompute_GoalProgressCapsAtHundred(t *testing.T) {
	sessions := []session.FocusSession{rec("2025-03-05", 500)}

	stats, err := Compute(Input{
		Sessions: sessions,
		Kind:     WindowMonth,
		Today:    day("2025-03-10"),
		Goals:    Goals{MonthlyMinutes: 100, MonthlySessions: 1},
	})

	assert.NoError(t, err)
	assert.Equal(t, 100, stats.Detail.Goals.MinutesPercent)
	assert.Equal(t, 100, stats.Detail.Goals.SessionsPercent)
}

func TestCompute_LifetimeHasZeroDelta(t *testing.T) {
	sessions := []session.FocusSession{
		rec("2024-11-01", 25),
		rec("2025-01-15", 30),
		rec("2025-03-01", 45),
	}

	stats, err := Compute(Input{
		Sessions: sessions,
		Kind:     WindowLifetime,
		Today:    day("2025-03-10"),
	})

	assert.NoError(t, err)
	assert.Equal(t, Comparison{}, stats.Delta)
	assert.Equal(t, 3, stats.TotalSessions)
	// lifetime day count is distinct active days, not the calendar span
	assert.Equal(t, 3, stats.TotalDays)
	assert.Len(t, stats.Chart, 3)
}

func TestCompute_InvalidCustomRangeDegradesToZero(t *testing.T) {
	sessions := []session.FocusSession{rec("2025-03-05", 25)}

	stats, err := Compute(Input{
		Sessions:    sessions,
		Kind:        WindowCustom,
		Today:       day("2025-03-10"),
		CustomStart: "2025-03-10",
		CustomEnd:   "2025-03-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalSessions)
	assert.Equal(t, 0, stats.TotalDays)
	assert.Empty(t, stats.Chart)
	// lifetime history still exists, so the unlock message must not appear
	assert.NotContains(t, stats.Suggestions, SuggestionUnlock)
}

func TestCompute_NoHistoryAtAll(t *testing.T) {
	stats, err := Compute(Input{
		Kind:  WindowWeek,
		Today: day("2025-03-10"),
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalSessions)
	assert.Equal(t, []string{SuggestionUnlock}, stats.Suggestions)
}

func TestCompute_PlanDetailFollowsWindow(t *testing.T) {
	plans := []plan.StudyPlan{
		{Id: "1", Title: "P1", Date: "2025-03-09", StartTime: "07:00", Completed: true, TargetMinutes: 60, CompletedMinutes: 60},
		{Id: "2", Title: "P2", Date: "2025-03-10", StartTime: "19:00", Completed: false, TargetMinutes: 60, CompletedMinutes: 30},
		{Id: "3", Title: "P3", Date: "2025-02-01", StartTime: "09:00", Completed: true},
	}

	stats, err := Compute(Input{
		Sessions: []session.FocusSession{rec("2025-03-09", 25)},
		Plans:    plans,
		Kind:     WindowWeek,
		Today:    day("2025-03-10"),
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.Detail.PlanCompletion.Total)
	assert.Equal(t, 1, stats.Detail.PlanCompletion.Completed)
	assert.Equal(t, 50, stats.Detail.PlanCompletion.Percent)
	assert.Equal(t, 1, stats.Detail.TimeSlots.Morning.Count)
	assert.Equal(t, 1, stats.Detail.TimeSlots.Evening.Count)
	assert.Equal(t, 2, stats.Detail.Progress.PlanCount)
	assert.Equal(t, 75, stats.Detail.Progress.OverallPercent)
}
