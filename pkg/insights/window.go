package insights

import (
	"time"

	"github.com/fokusly/fokusly/pkg/session"
)

// WindowKind selects the calendar span statistics are computed over.
type WindowKind string

const (
	WindowWeek     WindowKind = "week"
	WindowMonth    WindowKind = "month"
	WindowCustom   WindowKind = "custom"
	WindowLifetime WindowKind = "lifetime"
)

// TimeWindow is an inclusive calendar span normalized to midnight boundaries.
// DayCount is the number of calendar days in the span, except for lifetime
// windows where it counts distinct active days.
type TimeWindow struct {
	Start    time.Time
	End      time.Time
	DayCount int
}

// IsZero reports the explicit empty window: every statistic over it reads
// as zero. Invalid custom ranges and empty lifetimes degrade to this
// instead of failing.
func (w TimeWindow) IsZero() bool {
	return w.DayCount == 0
}

// Contains reports whether the day (midnight-normalized) falls inside the window.
func (w TimeWindow) Contains(day time.Time) bool {
	if w.IsZero() {
		return false
	}
	return !day.Before(w.Start) && !day.After(w.End)
}

// DayKey formats a time as the canonical YYYY-MM-DD grouping key.
func DayKey(t time.Time) string {
	return t.Format(session.DateLayout)
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// calendarDays counts the inclusive calendar days between two midnights.
// The difference is taken over UTC-normalized dates so that a DST
// transition inside the span cannot shift the count.
func calendarDays(start time.Time, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// WindowFor computes the window boundaries for the given kind.
//   - week: the 7 days ending today.
//   - month: the elapsed days of the current month, 1st through today.
//   - custom: [customStart, customEnd]; a missing or inverted range yields
//     the explicit empty window rather than an error.
//   - lifetime: earliest record date through today; DayCount is the number
//     of distinct active days.
func WindowFor(kind WindowKind, today time.Time, customStart string, customEnd string, sessions []session.FocusSession) TimeWindow {
	today = midnight(today)

	switch kind {
	case WindowWeek:
		return TimeWindow{
			Start:    today.AddDate(0, 0, -6),
			End:      today,
			DayCount: 7,
		}
	case WindowMonth:
		return TimeWindow{
			Start:    time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()),
			End:      today,
			DayCount: today.Day(),
		}
	case WindowCustom:
		return customWindow(customStart, customEnd, today.Location())
	case WindowLifetime:
		return lifetimeWindow(sessions, today)
	}
	return TimeWindow{}
}

func customWindow(customStart string, customEnd string, loc *time.Location) TimeWindow {
	if customStart == "" || customEnd == "" {
		return TimeWindow{}
	}
	start, err := time.ParseInLocation(session.DateLayout, customStart, loc)
	if err != nil {
		return TimeWindow{}
	}
	end, err := time.ParseInLocation(session.DateLayout, customEnd, loc)
	if err != nil {
		return TimeWindow{}
	}
	if end.Before(start) {
		return TimeWindow{}
	}
	return TimeWindow{
		Start:    start,
		End:      end,
		DayCount: calendarDays(start, end),
	}
}

func lifetimeWindow(sessions []session.FocusSession, today time.Time) TimeWindow {
	activeDays := make(map[string]struct{})
	earliestKey := ""
	for _, s := range sessions {
		if _, ok := s.ParsedDate(); !ok {
			continue
		}
		activeDays[s.Date] = struct{}{}
		if earliestKey == "" || s.Date < earliestKey {
			earliestKey = s.Date
		}
	}
	if len(activeDays) == 0 {
		return TimeWindow{}
	}
	// Day keys sort chronologically; the key passed parsing above, so it is
	// re-parsed here in today's location to stay on the same calendar day.
	start, _ := time.ParseInLocation(session.DateLayout, earliestKey, today.Location())
	return TimeWindow{
		Start:    start,
		End:      today,
		DayCount: len(activeDays),
	}
}

// PreviousWindow returns the immediately preceding window of identical
// day-length, used as the comparison baseline. The month baseline is the
// equivalent elapsed span of the prior calendar month (1st through the same
// day number, clamped to that month's length), not the full previous month:
// an in-progress month is only compared against the same number of elapsed
// days. Lifetime has no meaningful predecessor and yields the empty window.
func PreviousWindow(w TimeWindow, kind WindowKind) TimeWindow {
	if w.IsZero() || kind == WindowLifetime {
		return TimeWindow{}
	}

	if kind == WindowMonth {
		firstOfMonth := w.Start
		prevFirst := firstOfMonth.AddDate(0, -1, 0)
		lastOfPrev := firstOfMonth.AddDate(0, 0, -1)
		day := w.DayCount
		if day > lastOfPrev.Day() {
			day = lastOfPrev.Day()
		}
		return TimeWindow{
			Start:    prevFirst,
			End:      time.Date(prevFirst.Year(), prevFirst.Month(), day, 0, 0, 0, 0, prevFirst.Location()),
			DayCount: day,
		}
	}

	return TimeWindow{
		Start:    w.Start.AddDate(0, 0, -w.DayCount),
		End:      w.Start.AddDate(0, 0, -1),
		DayCount: w.DayCount,
	}
}
