package insights

import (
	"sort"
	"time"

	"github.com/fokusly/fokusly/pkg/session"
)

// BestDay is the single calendar day with the most focus minutes.
type BestDay struct {
	Date     string
	Minutes  int
	Sessions int
}

// BestWeek is the best 7-day trailing window anywhere in the history.
type BestWeek struct {
	StartDate string
	EndDate   string
	Minutes   int
	Sessions  int
}

// BestMonth is the calendar month with the most focus minutes.
type BestMonth struct {
	Month    string // YYYY-MM
	Minutes  int
	Sessions int
}

type BestRecords struct {
	Day   BestDay
	Week  BestWeek
	Month BestMonth
}

type dayTotal struct {
	minutes  int
	sessions int
}

// FindBestRecords scans the full lifetime record set for the best single
// day, the best rolling 7-day window, and the best calendar month. Best
// records are always all-time, regardless of the window a caller selected.
func FindBestRecords(sessions []session.FocusSession) BestRecords {
	perDay := make(map[string]dayTotal)
	perMonth := make(map[string]dayTotal)
	for _, s := range sessions {
		if _, ok := validDay(s, time.UTC); !ok {
			continue
		}
		day := perDay[s.Date]
		day.minutes += s.Minutes
		day.sessions++
		perDay[s.Date] = day

		monthKey := s.Date[:7]
		month := perMonth[monthKey]
		month.minutes += s.Minutes
		month.sessions++
		perMonth[monthKey] = month
	}

	return BestRecords{
		Day:   bestDay(perDay),
		Week:  bestWeek(perDay),
		Month: bestMonth(perMonth),
	}
}

func bestDay(perDay map[string]dayTotal) BestDay {
	keys := sortedKeys(perDay)
	best := BestDay{}
	for _, key := range keys {
		// ties resolve to the earliest date
		if perDay[key].minutes > best.Minutes {
			best = BestDay{Date: key, Minutes: perDay[key].minutes, Sessions: perDay[key].sessions}
		}
	}
	return best
}

// bestWeek slides a 7-day trailing window ending at each active day. Only
// days with at least one record anchor a candidate window, so the scan is
// proportional to active days rather than the calendar span.
func bestWeek(perDay map[string]dayTotal) BestWeek {
	keys := sortedKeys(perDay)
	best := BestWeek{}
	for _, key := range keys {
		end, _ := time.Parse(session.DateLayout, key)
		minutes, count := 0, 0
		for offset := 0; offset < 7; offset++ {
			day := perDay[DayKey(end.AddDate(0, 0, -offset))]
			minutes += day.minutes
			count += day.sessions
		}
		if minutes > best.Minutes {
			best = BestWeek{
				StartDate: DayKey(end.AddDate(0, 0, -6)),
				EndDate:   key,
				Minutes:   minutes,
				Sessions:  count,
			}
		}
	}
	return best
}

func bestMonth(perMonth map[string]dayTotal) BestMonth {
	keys := sortedKeys(perMonth)
	best := BestMonth{}
	for _, key := range keys {
		if perMonth[key].minutes > best.Minutes {
			best = BestMonth{Month: key, Minutes: perMonth[key].minutes, Sessions: perMonth[key].sessions}
		}
	}
	return best
}

func sortedKeys(totals map[string]dayTotal) []string {
	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
