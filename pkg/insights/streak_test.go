package insights

import (
	"testing"

	"github.com/fokusly/fokusly/pkg/session"
	"github.com/stretchr/testify/assert"
)

func TestCurrentStreak_SingleDayToday(t *testing.T) {
	sessions := []session.FocusSession{rec("2025-01-01", 25)}

	assert.Equal(t, 1, CurrentStreak(sessions, day("2025-01-01")))
	assert.Equal(t, 1, LongestStreak(sessions))
}

func TestCurrentStreak_GapResetsStreak(t *testing.T) {
	sessions := []session.FocusSession{
		rec("2025-01-01", 25),
		rec("2025-01-02", 25),
		rec("2025-01-03", 25),
		rec("2025-01-05", 25),
	}

	assert.Equal(t, 1, CurrentStreak(sessions, day("2025-01-05")))
	assert.Equal(t, 3, LongestStreak(sessions))
}

func TestCurrentStreak_IsStrictAboutToday(t *testing.T) {
	sessions := []session.FocusSession{
		rec("2025-01-01", 25),
		rec("2025-01-02", 25),
	}

	// no record today means no streak, even with activity yesterday
	assert.Equal(t, 0, CurrentStreak(sessions, day("2025-01-03")))
}

func TestCurrentStreak_MultipleSessionsPerDayCountOnce(t *testing.T) {
	sessions := []session.FocusSession{
		rec("2025-01-01", 25),
		rec("2025-01-02", 25),
		rec("2025-01-02", 30),
		rec("2025-01-02", 45),
	}

	assert.Equal(t, 2, CurrentStreak(sessions, day("2025-01-02")))
}

func TestLongestStreak_NeverBelowCurrentStreak(t *testing.T) {
	sessions := []session.FocusSession{
		rec("2025-01-01", 25),
		rec("2025-01-02", 25),
		rec("2025-01-03", 25),
		rec("2025-01-05", 25),
		rec("2025-01-06", 25),
	}

	for _, today := range []string{"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04", "2025-01-05", "2025-01-06"} {
		current := CurrentStreak(sessions, day(today))
		assert.GreaterOrEqual(t, LongestStreak(sessions), current, "today=%s", today)
	}
}

func TestLongestStreak_EmptyHistory(t *testing.T) {
	assert.Equal(t, 0, LongestStreak(nil))
	assert.Equal(t, 0, CurrentStreak(nil, day("2025-01-01")))
}
