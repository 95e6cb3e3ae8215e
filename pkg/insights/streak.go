package insights

import (
	"sort"
	"time"

	"github.com/fokusly/fokusly/pkg/session"
)

// CurrentStreak counts consecutive active days ending today. The count is
// strict: a user with sessions yesterday but none today has a streak of 0.
func CurrentStreak(sessions []session.FocusSession, today time.Time) int {
	days := activeDaySet(sessions)
	if len(days) == 0 {
		return 0
	}

	streak := 0
	for day := midnight(today); ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[DayKey(day)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak finds the longest run of consecutive active days anywhere
// in the history.
func LongestStreak(sessions []session.FocusSession) int {
	days := activeDaySet(sessions)
	if len(days) == 0 {
		return 0
	}

	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	longest, run := 1, 1
	prev, _ := time.Parse(session.DateLayout, keys[0])
	for _, key := range keys[1:] {
		day, _ := time.Parse(session.DateLayout, key)
		if day.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = day
	}
	return longest
}

func activeDaySet(sessions []session.FocusSession) map[string]struct{} {
	days := make(map[string]struct{})
	for _, s := range sessions {
		if _, ok := validDay(s, time.UTC); !ok {
			continue
		}
		days[s.Date] = struct{}{}
	}
	return days
}
