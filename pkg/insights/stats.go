package insights

import (
	"time"

	"github.com/fokusly/fokusly/pkg/plan"
	"github.com/fokusly/fokusly/pkg/session"
)

// Comparison holds the percent deltas against the immediately preceding
// window of equal length. Lifetime windows always compare as zero.
type Comparison struct {
	Sessions int
	Minutes  int
}

// GoalProgress is the monthly goal completion, capped at 100.
type GoalProgress struct {
	MinutesPercent  int
	SessionsPercent int
}

// Goals are the monthly targets the progress bars measure against.
type Goals struct {
	MonthlyMinutes  int
	MonthlySessions int
}

// StatsDetail is the detail bundle attached to every computed window.
// Heatmap and goal progress are month-only; achievements are week-only.
type StatsDetail struct {
	Best           BestRecords
	TopSubjects    []SubjectStats
	Quality        QualityStats
	Completion     CompletionBreakdown
	PlanCompletion PlanCompletion
	TimeSlots      TimeSlots
	Progress       Progress
	Heatmap        []HeatmapCell
	Goals          *GoalProgress
	Achievements   []Achievement
}

// TimeRangeStats is the single result structure per (records, window)
// computation. It is a fresh value every time; nothing is mutated in place.
type TimeRangeStats struct {
	Kind          WindowKind
	Window        TimeWindow
	TotalSessions int
	TotalMinutes  int
	ActiveDays    int
	TotalDays     int
	Delta         Comparison
	CurrentStreak int
	LongestStreak int
	Chart         []ChartPoint
	Suggestions   []string
	Detail        *StatsDetail
}

// Input is one analytics request: immutable record snapshots, the window
// selection, and a fixed "today". Today is read once by the caller so a day
// rollover cannot shift boundaries mid-computation.
type Input struct {
	Sessions    []session.FocusSession
	Plans       []plan.StudyPlan
	Kind        WindowKind
	Today       time.Time
	CustomStart string
	CustomEnd   string
	Goals       Goals
}

// Compute assembles the full TimeRangeStats for the input. It is a pure
// function over its arguments; the only error it can surface is the
// defensive ErrInvalidWindow, which indicates a bug rather than bad input.
func Compute(in Input) (TimeRangeStats, error) {
	today := midnight(in.Today)
	window := WindowFor(in.Kind, today, in.CustomStart, in.CustomEnd, in.Sessions)

	totals, err := Aggregate(in.Sessions, window)
	if err != nil {
		return TimeRangeStats{}, err
	}

	lifetime := WindowFor(WindowLifetime, today, "", "", in.Sessions)
	lifetimeTotals, err := Aggregate(in.Sessions, lifetime)
	if err != nil {
		return TimeRangeStats{}, err
	}

	stats := TimeRangeStats{
		Kind:          in.Kind,
		Window:        window,
		TotalSessions: totals.Count,
		TotalMinutes:  totals.TotalMinutes,
		ActiveDays:    totals.ActiveDays,
		TotalDays:     window.DayCount,
		CurrentStreak: CurrentStreak(in.Sessions, today),
		LongestStreak: LongestStreak(in.Sessions),
		Chart:         BuildChart(in.Sessions, window, in.Kind),
	}

	// lifetime has no meaningful predecessor; its delta stays zero
	if in.Kind != WindowLifetime {
		previous := PreviousWindow(window, in.Kind)
		previousTotals, err := Aggregate(in.Sessions, previous)
		if err != nil {
			return TimeRangeStats{}, err
		}
		stats.Delta = Comparison{
			Sessions: PercentChange(previousTotals.Count, totals.Count),
			Minutes:  PercentChange(previousTotals.TotalMinutes, totals.TotalMinutes),
		}
	}

	quality := Quality(in.Sessions)
	detail := &StatsDetail{
		Best:           FindBestRecords(in.Sessions),
		TopSubjects:    TopSubjects(in.Sessions),
		Quality:        quality,
		Completion:     CompletionQuality(in.Sessions),
		PlanCompletion: PlanCompletionRate(in.Plans, window),
		TimeSlots:      PlanTimeSlots(in.Plans, window),
		Progress:       CumulativeProgress(in.Plans, window),
	}

	switch in.Kind {
	case WindowMonth:
		detail.Heatmap = MonthHeatmap(in.Sessions, today)
		detail.Goals = goalProgress(totals, in.Goals)
	case WindowWeek:
		detail.Achievements = WeekAchievements(totals, detail.PlanCompletion)
	}
	stats.Detail = detail

	stats.Suggestions = Suggestions(stats, lifetimeTotals, quality)
	return stats, nil
}

func goalProgress(totals Totals, goals Goals) *GoalProgress {
	progress := &GoalProgress{}
	if goals.MonthlyMinutes > 0 {
		progress.MinutesPercent = cap100(roundPercent(totals.TotalMinutes, goals.MonthlyMinutes))
	}
	if goals.MonthlySessions > 0 {
		progress.SessionsPercent = cap100(roundPercent(totals.Count, goals.MonthlySessions))
	}
	return progress
}

func cap100(percent int) int {
	if percent > 100 {
		return 100
	}
	return percent
}
