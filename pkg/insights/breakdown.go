package insights

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fokusly/fokusly/pkg/plan"
	"github.com/fokusly/fokusly/pkg/session"
)

// SubjectStats is one entry of the subject ranking.
type SubjectStats struct {
	Subject    string
	Minutes    int
	Sessions   int
	Percentage int
}

// QualityStats is the session-length distribution over the lifetime set.
// Short sessions (under 20 minutes) read as interrupted pomodoros.
type QualityStats struct {
	TotalSessions    int
	Short            int // minutes < 20
	Standard         int // 20 <= minutes <= 30
	Long             int // minutes > 30
	CompletionRate   int // percent of standard+long
	InterruptionRate int // percent of short
}

// SlotStats tracks plans scheduled into one time-of-day slot.
type SlotStats struct {
	Count     int
	Completed int
}

// TimeSlots buckets windowed plans by the hour of their start time:
// morning [6,12), afternoon [12,18), evening otherwise.
type TimeSlots struct {
	Morning   SlotStats
	Afternoon SlotStats
	Evening   SlotStats
}

// Progress is the cumulative progress over windowed plans that carry a
// minute target.
type Progress struct {
	PlanCount      int
	OverallPercent int
	AvgPomodoros   float64 // rounded to one decimal
}

// CompletionBreakdown summarizes self-reported completion quality over
// sessions that recorded one.
type CompletionBreakdown struct {
	Total   int
	Average int
	Perfect int // == 100
	High    int // 80-99
	Medium  int // 50-79
	Low     int // < 50
}

// PlanCompletion is the windowed plan completion rate.
type PlanCompletion struct {
	Total     int
	Completed int
	Percent   int
}

// TopSubjects ranks lifetime sessions by subject (falling back to plan
// title), descending by minutes, top 5. Sessions with neither label are
// excluded.
func TopSubjects(sessions []session.FocusSession) []SubjectStats {
	totalMinutes := 0
	grouped := make(map[string]*SubjectStats)
	var order []string
	for _, s := range sessions {
		if _, ok := validDay(s, time.UTC); !ok {
			continue
		}
		label := s.GroupLabel()
		if label == "" {
			continue
		}
		entry, ok := grouped[label]
		if !ok {
			entry = &SubjectStats{Subject: label}
			grouped[label] = entry
			order = append(order, label)
		}
		entry.Minutes += s.Minutes
		entry.Sessions++
		totalMinutes += s.Minutes
	}

	ranked := make([]SubjectStats, 0, len(order))
	for _, label := range order {
		ranked = append(ranked, *grouped[label])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Minutes > ranked[j].Minutes
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	for i := range ranked {
		ranked[i].Percentage = roundPercent(ranked[i].Minutes, totalMinutes)
	}
	return ranked
}

// Quality buckets the lifetime sessions by length. Zero sessions yield
// all-zero rates.
func Quality(sessions []session.FocusSession) QualityStats {
	stats := QualityStats{}
	for _, s := range sessions {
		if _, ok := validDay(s, time.UTC); !ok {
			continue
		}
		stats.TotalSessions++
		switch {
		case s.Minutes < 20:
			stats.Short++
		case s.Minutes <= 30:
			stats.Standard++
		default:
			stats.Long++
		}
	}
	if stats.TotalSessions > 0 {
		stats.CompletionRate = roundPercent(stats.Standard+stats.Long, stats.TotalSessions)
		stats.InterruptionRate = roundPercent(stats.Short, stats.TotalSessions)
	}
	return stats
}

// PlanTimeSlots buckets the window's plans by the hour of their start time.
func PlanTimeSlots(plans []plan.StudyPlan, w TimeWindow) TimeSlots {
	slots := TimeSlots{}
	for _, p := range plansInWindow(plans, w) {
		hour, ok := startHour(p.StartTime)
		if !ok {
			continue
		}
		var slot *SlotStats
		switch {
		case hour >= 6 && hour < 12:
			slot = &slots.Morning
		case hour >= 12 && hour < 18:
			slot = &slots.Afternoon
		default:
			slot = &slots.Evening
		}
		slot.Count++
		if p.Completed {
			slot.Completed++
		}
	}
	return slots
}

// CumulativeProgress reduces the window's plans with a positive minute
// target to overall progress and mean pomodoro count.
func CumulativeProgress(plans []plan.StudyPlan, w TimeWindow) Progress {
	progress := Progress{}
	targetMinutes, completedMinutes, pomodoros := 0, 0, 0
	for _, p := range plansInWindow(plans, w) {
		if p.TargetMinutes <= 0 {
			continue
		}
		progress.PlanCount++
		targetMinutes += p.TargetMinutes
		completedMinutes += p.CompletedMinutes
		pomodoros += p.PomodoroCount
	}
	if progress.PlanCount > 0 {
		progress.OverallPercent = roundPercent(completedMinutes, targetMinutes)
		progress.AvgPomodoros = math.Round(float64(pomodoros)/float64(progress.PlanCount)*10) / 10
	}
	return progress
}

// CompletionQuality summarizes sessions that recorded a completion percent.
func CompletionQuality(sessions []session.FocusSession) CompletionBreakdown {
	breakdown := CompletionBreakdown{}
	sum := 0
	for _, s := range sessions {
		if _, ok := validDay(s, time.UTC); !ok {
			continue
		}
		if s.CompletionPercent == nil {
			continue
		}
		percent := *s.CompletionPercent
		breakdown.Total++
		sum += percent
		switch {
		case percent == 100:
			breakdown.Perfect++
		case percent >= 80:
			breakdown.High++
		case percent >= 50:
			breakdown.Medium++
		default:
			breakdown.Low++
		}
	}
	if breakdown.Total > 0 {
		breakdown.Average = int(math.Round(float64(sum) / float64(breakdown.Total)))
	}
	return breakdown
}

// PlanCompletionRate computes the windowed plan completion percentage.
// A completed plan counts regardless of its recorded minutes.
func PlanCompletionRate(plans []plan.StudyPlan, w TimeWindow) PlanCompletion {
	completion := PlanCompletion{}
	for _, p := range plansInWindow(plans, w) {
		completion.Total++
		if p.Completed {
			completion.Completed++
		}
	}
	if completion.Total > 0 {
		completion.Percent = roundPercent(completion.Completed, completion.Total)
	}
	return completion
}

func plansInWindow(plans []plan.StudyPlan, w TimeWindow) []plan.StudyPlan {
	if w.IsZero() {
		return nil
	}
	var filtered []plan.StudyPlan
	for _, p := range plans {
		day, err := time.ParseInLocation(plan.DateLayout, p.Date, w.Start.Location())
		if err != nil {
			continue
		}
		if w.Contains(day) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func startHour(startTime string) (int, bool) {
	parts := strings.SplitN(startTime, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
