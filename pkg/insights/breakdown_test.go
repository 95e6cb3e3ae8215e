package insights

import (
	"testing"

	"github.com/fokusly/fokusly/pkg/plan"
	"github.com/fokusly/fokusly/pkg/session"
	"github.com/stretchr/testify/assert"
)

func subjectRec(date string, minutes int, subject string) session.FocusSession {
	s := rec(date, minutes)
	s.Subject = subject
	return s
}

func completionRec(date string, minutes int, completion int) session.FocusSession {
	s := rec(date, minutes)
	s.CompletionPercent = &completion
	return s
}

func windowPlan(date string, startTime string, completed bool) plan.StudyPlan {
	return plan.StudyPlan{
		Id:        date + "-" + startTime,
		Title:     "Plan",
		Date:      date,
		StartTime: startTime,
		Completed: completed,
	}
}

func TestTopSubjects_RanksByMinutes(t *testing.T) {
	sessions := []session.FocusSession{
		subjectRec("2025-03-01", 50, "Math"),
		subjectRec("2025-03-02", 100, "Physics"),
		subjectRec("2025-03-03", 50, ""), // unlabeled, excluded
	}

	ranked := TopSubjects(sessions)

	assert.Len(t, ranked, 2)
	assert.Equal(t, "Physics", ranked[0].Subject)
	assert.Equal(t, 100, ranked[0].Minutes)
	assert.Equal(t, 67, ranked[0].Percentage)
	assert.Equal(t, "Math", ranked[1].Subject)
	assert.Equal(t, 33, ranked[1].Percentage)
}

func TestTopSubjects_FallsBackToPlanTitle(t *testing.T) {
	s := rec("2025-03-01", 50)
	s.PlanTitle = "Algebra homework"

	ranked := TopSubjects([]session.FocusSession{s})

	assert.Len(t, ranked, 1)
	assert.Equal(t, "Algebra homework", ranked[0].Subject)
}

func TestTopSubjects_CapsAtFive(t *testing.T) {
	var sessions []session.FocusSession
	for i, subject := range []string{"A", "B", "C", "D", "E", "F"} {
		sessions = append(sessions, subjectRec("2025-03-01", (i+1)*10, subject))
	}

	ranked := TopSubjects(sessions)

	assert.Len(t, ranked, 5)
	assert.Equal(t, "F", ranked[0].Subject)
	// "A" with the fewest minutes falls off the ranking
	for _, entry := range ranked {
		assert.NotEqual(t, "A", entry.Subject)
	}
}

func TestQuality_BucketsByLength(t *testing.T) {
	// given 10 sessions, 4 interrupted before 20 minutes
	var sessions []session.FocusSession
	for i := 0; i < 4; i++ {
		sessions = append(sessions, rec("2025-03-01", 10))
	}
	for i := 0; i < 4; i++ {
		sessions = append(sessions, rec("2025-03-02", 25))
	}
	sessions = append(sessions, rec("2025-03-03", 45), rec("2025-03-03", 60))

	// when
	stats := Quality(sessions)

	// then
	assert.Equal(t, 10, stats.TotalSessions)
	assert.Equal(t, 4, stats.Short)
	assert.Equal(t, 4, stats.Standard)
	assert.Equal(t, 2, stats.Long)
	assert.Equal(t, 60, stats.CompletionRate)
	assert.Equal(t, 40, stats.InterruptionRate)
}

func TestQuality_BoundaryLengths(t *testing.T) {
	stats := Quality([]session.FocusSession{
		rec("2025-03-01", 19),
		rec("2025-03-01", 20),
		rec("2025-03-01", 30),
		rec("2025-03-01", 31),
	})

	assert.Equal(t, 1, stats.Short)
	assert.Equal(t, 2, stats.Standard)
	assert.Equal(t, 1, stats.Long)
}

func TestPlanTimeSlots_BucketsByStartHour(t *testing.T) {
	w := WindowFor(WindowCustom, day("2025-03-10"), "2025-03-01", "2025-03-10", nil)
	plans := []plan.StudyPlan{
		windowPlan("2025-03-01", "07:00", true),
		windowPlan("2025-03-02", "11:59", false),
		windowPlan("2025-03-03", "13:00", true),
		windowPlan("2025-03-04", "20:00", false),
		windowPlan("2025-03-05", "02:00", false), // before morning counts as evening
		windowPlan("2025-04-01", "09:00", true),  // outside the window
	}

	slots := PlanTimeSlots(plans, w)

	assert.Equal(t, SlotStats{Count: 2, Completed: 1}, slots.Morning)
	assert.Equal(t, SlotStats{Count: 1, Completed: 1}, slots.Afternoon)
	assert.Equal(t, SlotStats{Count: 2, Completed: 0}, slots.Evening)
}

func TestCumulativeProgress_OnlyCountsPlansWithTargets(t *testing.T) {
	w := WindowFor(WindowCustom, day("2025-03-10"), "2025-03-01", "2025-03-10", nil)
	plans := []plan.StudyPlan{
		{Id: "1", Date: "2025-03-01", TargetMinutes: 60, CompletedMinutes: 30, PomodoroCount: 2},
		{Id: "2", Date: "2025-03-02", TargetMinutes: 40, CompletedMinutes: 40, PomodoroCount: 3},
		{Id: "3", Date: "2025-03-03", TargetMinutes: 0, CompletedMinutes: 10, PomodoroCount: 1},
	}

	progress := CumulativeProgress(plans, w)

	assert.Equal(t, 2, progress.PlanCount)
	assert.Equal(t, 70, progress.OverallPercent)
	assert.Equal(t, 2.5, progress.AvgPomodoros)
}

func TestCompletionQuality_BandsAndAverage(t *testing.T) {
	sessions := []session.FocusSession{
		completionRec("2025-03-01", 25, 100),
		completionRec("2025-03-02", 25, 85),
		completionRec("2025-03-03", 25, 60),
		completionRec("2025-03-04", 25, 30),
		rec("2025-03-05", 25), // no self-report, excluded
	}

	breakdown := CompletionQuality(sessions)

	assert.Equal(t, 4, breakdown.Total)
	assert.Equal(t, 69, breakdown.Average)
	assert.Equal(t, 1, breakdown.Perfect)
	assert.Equal(t, 1, breakdown.High)
	assert.Equal(t, 1, breakdown.Medium)
	assert.Equal(t, 1, breakdown.Low)
}

func TestPlanCompletionRate(t *testing.T) {
	w := WindowFor(WindowCustom, day("2025-03-10"), "2025-03-01", "2025-03-10", nil)
	plans := []plan.StudyPlan{
		windowPlan("2025-03-01", "07:00", true),
		windowPlan("2025-03-02", "07:00", true),
		windowPlan("2025-03-03", "07:00", true),
		windowPlan("2025-03-04", "07:00", false),
	}

	completion := PlanCompletionRate(plans, w)

	assert.Equal(t, 4, completion.Total)
	assert.Equal(t, 3, completion.Completed)
	assert.Equal(t, 75, completion.Percent)
}

func TestPlanCompletionRate_NoPlans(t *testing.T) {
	w := WindowFor(WindowWeek, day("2025-03-10"), "", "", nil)

	completion := PlanCompletionRate(nil, w)

	assert.Equal(t, PlanCompletion{}, completion)
}
