package insights

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/fokusly/fokusly/pkg/session"
)

// ChartPoint is one labeled bucket of the headline chart. Value is the
// session count for the bucket; Date is the bucket's representative day.
type ChartPoint struct {
	Label string
	Value int
	Date  string
}

// HeatmapCell is a per-calendar-day intensity bucket for the month detail.
type HeatmapCell struct {
	Date       string
	DayOfMonth int
	Minutes    int
	Sessions   int
	Tier       int
}

// BuildChart converts a window's sessions into an ordered point sequence.
// Granularity follows the window kind: daily for week and month, daily or
// 7-day buckets for custom depending on span, and one point per active
// calendar month for lifetime.
func BuildChart(sessions []session.FocusSession, w TimeWindow, kind WindowKind) []ChartPoint {
	if w.IsZero() {
		return []ChartPoint{}
	}

	switch kind {
	case WindowWeek:
		return dailyPoints(sessions, w, func(day time.Time) string {
			return day.Weekday().String()[:3]
		})
	case WindowMonth:
		return dailyPoints(sessions, w, func(day time.Time) string {
			return strconv.Itoa(day.Day())
		})
	case WindowCustom:
		if w.DayCount <= 31 {
			return dailyPoints(sessions, w, func(day time.Time) string {
				return day.Format("01-02")
			})
		}
		return weeklyPoints(sessions, w)
	case WindowLifetime:
		return monthlyPoints(sessions, w)
	}
	return []ChartPoint{}
}

func dailyPoints(sessions []session.FocusSession, w TimeWindow, label func(time.Time) string) []ChartPoint {
	counts := sessionCountPerDay(sessions, w)
	points := make([]ChartPoint, 0, w.DayCount)
	for day := w.Start; !day.After(w.End); day = day.AddDate(0, 0, 1) {
		key := DayKey(day)
		points = append(points, ChartPoint{
			Label: label(day),
			Value: counts[key],
			Date:  key,
		})
	}
	return points
}

func weeklyPoints(sessions []session.FocusSession, w TimeWindow) []ChartPoint {
	counts := sessionCountPerDay(sessions, w)
	var points []ChartPoint
	bucket := 1
	for start := w.Start; !start.After(w.End); start = start.AddDate(0, 0, 7) {
		end := start.AddDate(0, 0, 6)
		if end.After(w.End) {
			end = w.End
		}
		value := 0
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			value += counts[DayKey(day)]
		}
		points = append(points, ChartPoint{
			Label: fmt.Sprintf("week %d", bucket),
			Value: value,
			Date:  DayKey(start),
		})
		bucket++
	}
	return points
}

// monthlyPoints emits one point per calendar month that has at least one
// record, labeled by month number, in chronological order.
func monthlyPoints(sessions []session.FocusSession, w TimeWindow) []ChartPoint {
	counts := make(map[string]int)
	for _, s := range sessions {
		day, ok := validDay(s, w.Start.Location())
		if !ok || !w.Contains(day) {
			continue
		}
		counts[s.Date[:7]]++
	}

	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Strings(months)

	points := make([]ChartPoint, 0, len(months))
	for _, month := range months {
		first, _ := time.Parse(session.DateLayout, month+"-01")
		points = append(points, ChartPoint{
			Label: strconv.Itoa(int(first.Month())),
			Value: counts[month],
			Date:  DayKey(first),
		})
	}
	return points
}

// MonthHeatmap builds one cell per calendar day of today's month, including
// the days still ahead, unlike the elapsed-days truncation the headline
// chart uses. Intensity tiers are fixed: 0 sessions, 1-2, 3-4, 5 and up.
func MonthHeatmap(sessions []session.FocusSession, today time.Time) []HeatmapCell {
	today = midnight(today)
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	lastDay := first.AddDate(0, 1, -1).Day()

	fullMonth := TimeWindow{Start: first, End: first.AddDate(0, 1, -1), DayCount: lastDay}
	minutes := make(map[string]int)
	counts := sessionCountPerDay(sessions, fullMonth)
	for _, s := range sessions {
		day, ok := validDay(s, today.Location())
		if !ok || !fullMonth.Contains(day) {
			continue
		}
		minutes[s.Date] += s.Minutes
	}

	cells := make([]HeatmapCell, 0, lastDay)
	for dayOfMonth := 1; dayOfMonth <= lastDay; dayOfMonth++ {
		key := DayKey(time.Date(today.Year(), today.Month(), dayOfMonth, 0, 0, 0, 0, today.Location()))
		cells = append(cells, HeatmapCell{
			Date:       key,
			DayOfMonth: dayOfMonth,
			Minutes:    minutes[key],
			Sessions:   counts[key],
			Tier:       heatTier(counts[key]),
		})
	}
	return cells
}

func heatTier(sessions int) int {
	switch {
	case sessions == 0:
		return 0
	case sessions <= 2:
		return 1
	case sessions <= 4:
		return 2
	default:
		return 3
	}
}

func sessionCountPerDay(sessions []session.FocusSession, w TimeWindow) map[string]int {
	counts := make(map[string]int)
	for _, s := range sessions {
		day, ok := validDay(s, w.Start.Location())
		if !ok || !w.Contains(day) {
			continue
		}
		counts[s.Date]++
	}
	return counts
}
