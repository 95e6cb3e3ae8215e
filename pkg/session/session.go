package session

import "time"

// DateLayout is the canonical calendar-day format used for bucketing.
// A session's Date is the authoritative grouping key; RecordedAt only
// preserves the instant the session was stored.
const DateLayout = "2006-01-02"

type FocusSession struct {
	Id                string
	Date              string // YYYY-MM-DD
	Minutes           int
	RecordedAt        time.Time
	PlanId            string // optional back-reference, never owning
	Subject           string
	PlanTitle         string
	Location          string
	Note              string
	CompletionPercent *int // nil reads as 100
}

// GroupLabel is the label used when ranking sessions by what was studied:
// subject when present, otherwise the plan title. Empty means the session
// is excluded from subject rankings.
func (s FocusSession) GroupLabel() string {
	if s.Subject != "" {
		return s.Subject
	}
	return s.PlanTitle
}

// ParsedDate parses the session's calendar day. The second return value is
// false for malformed dates, which analytics skips rather than fails on.
func (s FocusSession) ParsedDate() (time.Time, bool) {
	t, err := time.Parse(DateLayout, s.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
