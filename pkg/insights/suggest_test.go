package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestions_NoHistoryUnlockMessageOnly(t *testing.T) {
	stats := TimeRangeStats{Kind: WindowWeek}

	suggestions := Suggestions(stats, Totals{}, QualityStats{})

	assert.Equal(t, []string{"complete one session to unlock suggestions"}, suggestions)
}

func TestSuggestions_InterruptionRuleNeedsFiveSessions(t *testing.T) {
	quality := QualityStats{TotalSessions: 10, Short: 4, InterruptionRate: 40}
	stats := TimeRangeStats{
		Kind:          WindowWeek,
		ActiveDays:    5,
		CurrentStreak: 1,
	}

	// below the threshold the rule stays silent
	few := Suggestions(stats, Totals{Count: 4}, quality)
	assert.Empty(t, few)

	// at the threshold it fires
	enough := Suggestions(stats, Totals{Count: 5}, quality)
	assert.Len(t, enough, 1)
	assert.Contains(t, enough[0], "interruptions")
}

func TestSuggestions_WeekRules(t *testing.T) {
	stats := TimeRangeStats{
		Kind:          WindowWeek,
		ActiveDays:    3,
		CurrentStreak: 0,
	}

	suggestions := Suggestions(stats, Totals{Count: 10}, QualityStats{})

	assert.Len(t, suggestions, 2)
	assert.Contains(t, suggestions[0], "restarts your streak")
	assert.Contains(t, suggestions[1], "3 of 7 days")
}

func TestSuggestions_StreakPraise(t *testing.T) {
	stats := TimeRangeStats{
		Kind:          WindowWeek,
		ActiveDays:    7,
		CurrentStreak: 9,
	}

	suggestions := Suggestions(stats, Totals{Count: 20}, QualityStats{})

	assert.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "9-day streak")
}

func TestSuggestions_CappedAtThree(t *testing.T) {
	// month stats tripping four rules at once
	stats := TimeRangeStats{
		Kind:          WindowMonth,
		ActiveDays:    3,
		TotalDays:     20,
		Delta:         Comparison{Sessions: 30},
		CurrentStreak: 8,
	}
	quality := QualityStats{TotalSessions: 10, InterruptionRate: 50}

	suggestions := Suggestions(stats, Totals{Count: 10}, quality)

	assert.Len(t, suggestions, 3)
}

func TestSuggestions_LifetimeMilestones(t *testing.T) {
	stats := TimeRangeStats{
		Kind:          WindowLifetime,
		LongestStreak: 45,
	}

	suggestions := Suggestions(stats, Totals{Count: 150}, QualityStats{})

	assert.Len(t, suggestions, 2)
	assert.Contains(t, suggestions[0], "30-day streak")
	assert.Contains(t, suggestions[1], "100 focus sessions")
}
