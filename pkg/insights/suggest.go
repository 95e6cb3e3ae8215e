package insights

import "fmt"

// SuggestionUnlock is the single entry returned when no sessions exist yet.
const SuggestionUnlock = "complete one session to unlock suggestions"

const maxSuggestions = 3

// Suggestions evaluates the advisory rule set against the computed stats
// for the active window, the lifetime totals, and the lifetime quality
// distribution. Rules append in a fixed order and the result is capped at
// three entries; there is no reordering by priority.
func Suggestions(stats TimeRangeStats, lifetime Totals, quality QualityStats) []string {
	if lifetime.Count == 0 {
		return []string{SuggestionUnlock}
	}

	var suggestions []string

	switch stats.Kind {
	case WindowWeek:
		if stats.CurrentStreak == 0 {
			suggestions = append(suggestions, "You haven't focused today. A single session now restarts your streak.")
		} else if stats.Delta.Minutes < -20 {
			suggestions = append(suggestions, "Focus time dropped more than 20% versus the previous week. Try to recover last week's pace.")
		}
		if stats.ActiveDays < 5 {
			suggestions = append(suggestions, fmt.Sprintf("You were active on %d of 7 days this week. Aim for at least 5.", stats.ActiveDays))
		}
	case WindowMonth:
		if stats.TotalDays > 0 {
			activeRatio := float64(stats.ActiveDays) / float64(stats.TotalDays)
			if activeRatio < 0.5 {
				suggestions = append(suggestions, "You studied on fewer than half of this month's days. A small daily minimum builds the habit.")
			} else if activeRatio >= 0.8 {
				suggestions = append(suggestions, "Excellent consistency: you were active on most days this month.")
			}
		}
		if stats.Delta.Sessions > 20 {
			suggestions = append(suggestions, "Sessions are up more than 20% over the same span last month. Keep it going.")
		}
	case WindowLifetime:
		if stats.LongestStreak >= 30 {
			suggestions = append(suggestions, "Milestone: a 30-day streak is on your record.")
		}
		if lifetime.Count >= 100 {
			suggestions = append(suggestions, "Milestone: more than 100 focus sessions recorded.")
		}
	}

	if stats.Kind != WindowLifetime {
		if stats.CurrentStreak >= 7 {
			suggestions = append(suggestions, fmt.Sprintf("A %d-day streak. Impressive consistency.", stats.CurrentStreak))
		} else if stats.CurrentStreak >= 3 {
			suggestions = append(suggestions, fmt.Sprintf("Your streak is at %d days. Keep going to reach a full week.", stats.CurrentStreak))
		}
	}

	if lifetime.Count >= 5 && quality.InterruptionRate > 30 {
		suggestions = append(suggestions, "Many sessions end before 20 minutes. Fewer interruptions will raise your completion rate.")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
