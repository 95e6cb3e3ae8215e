package insights

import (
	"errors"
	"time"

	"github.com/fokusly/fokusly/pkg/session"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidWindow signals a window whose start lies after its end. Window
// construction never produces one, so hitting this is a programming error,
// not a user-recoverable condition.
var ErrInvalidWindow = errors.New("invalid time window: start after end")

// Totals are the headline numbers over a window.
type Totals struct {
	Count        int
	TotalMinutes int
	ActiveDays   int
}

// Aggregate filters the sessions to the window and reduces them to totals.
// Records with an unparseable date or negative minutes are skipped, never
// fatal. The empty window yields zero totals.
func Aggregate(sessions []session.FocusSession, w TimeWindow) (Totals, error) {
	if w.IsZero() {
		return Totals{}, nil
	}
	if w.Start.After(w.End) {
		return Totals{}, ErrInvalidWindow
	}

	totals := Totals{}
	days := make(map[string]struct{})
	for _, s := range sessions {
		day, ok := validDay(s, w.Start.Location())
		if !ok {
			continue
		}
		if !w.Contains(day) {
			continue
		}
		totals.Count++
		totals.TotalMinutes += s.Minutes
		days[s.Date] = struct{}{}
	}
	totals.ActiveDays = len(days)
	return totals, nil
}

// validDay returns the session's midnight-normalized day in the given
// location, or false for records excluded from all aggregations.
func validDay(s session.FocusSession, loc *time.Location) (time.Time, bool) {
	if s.Minutes < 0 {
		log.Tracef("skipping session %s with negative minutes", s.Id)
		return time.Time{}, false
	}
	day, err := time.ParseInLocation(session.DateLayout, s.Date, loc)
	if err != nil {
		log.Tracef("skipping session %s with malformed date %q", s.Id, s.Date)
		return time.Time{}, false
	}
	return day, true
}
